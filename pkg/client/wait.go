package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ErrJobTimeout is returned by WaitJob when the job did not complete within
// WaitOptions.Timeout. The job has been cancelled.
var ErrJobTimeout = errors.New("job did not complete before timeout")

// ErrNullResult is returned by WaitJob when RequireResult is set and the job
// succeeded without a result.
var ErrNullResult = errors.New("job returned a null result")

// JobFailedError carries the error payload of a job that completed without
// success.
type JobFailedError struct {
	ID     uuid.UUID
	Result json.RawMessage
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("job %s failed: %s", e.ID, truncate(string(e.Result), 200))
}

// WaitOptions tunes WaitJob. The zero value polls every 500ms without a
// deadline.
type WaitOptions struct {
	PollInterval  time.Duration
	Timeout       time.Duration
	RequireResult bool
}

const defaultPollInterval = 500 * time.Millisecond

const timeoutReason = "reached timeout"

// WaitJob polls the job until it completes and returns its result.
func (c *Client) WaitJob(ctx context.Context, workspace string, id uuid.UUID, opts WaitOptions) (json.RawMessage, error) {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	var deadline <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := c.GetCompletedJobResultMaybe(ctx, workspace, id, nil)
		if err != nil {
			return nil, err
		}
		if res.Completed {
			return finishedResult(id, res, opts.RequireResult)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			reason := timeoutReason
			if _, err := c.CancelQueuedJob(ctx, workspace, id, models.CancelJobRequest{Reason: &reason}); err != nil {
				return nil, fmt.Errorf("cancelling job %s after timeout: %w", id, err)
			}
			return nil, ErrJobTimeout
		case <-ticker.C:
		}
	}
}

func finishedResult(id uuid.UUID, res models.CompletedJobResultMaybe, requireResult bool) (json.RawMessage, error) {
	data, err := json.Marshal(res.Result)
	if err != nil {
		return nil, fmt.Errorf("encoding result of job %s: %w", id, err)
	}
	if res.Success != nil && !*res.Success {
		return nil, &JobFailedError{ID: id, Result: data}
	}
	if requireResult && res.Result == nil {
		return nil, ErrNullResult
	}
	return data, nil
}

// JobState is the coarse lifecycle state of a job.
type JobState string

const (
	JobWaiting   JobState = "Waiting"
	JobRunning   JobState = "Running"
	JobCompleted JobState = "Completed"
)

// JobStatus fetches the job without logs and reports its state.
func (c *Client) JobStatus(ctx context.Context, workspace string, id uuid.UUID) (JobState, error) {
	noLogs := true
	job, err := c.GetJob(ctx, workspace, id, &noLogs)
	if err != nil {
		return "", err
	}
	return StateOf(job), nil
}

// StateOf derives the state from the variant of j.
func StateOf(j models.Job) JobState {
	switch {
	case j.Completed != nil:
		return JobCompleted
	case j.Queued != nil && j.Queued.Running:
		return JobRunning
	}
	return JobWaiting
}
