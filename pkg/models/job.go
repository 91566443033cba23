package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScriptArgs are the named arguments passed to a script or flow.
type ScriptArgs map[string]any

// ExtraPerms maps a user or group owner to its write permission.
type ExtraPerms map[string]bool

// MarshalJSON encodes nil as an empty object; the server rejects null args.
func (a ScriptArgs) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(a))
}

func (p ExtraPerms) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]bool(p))
}

// orEmpty returns s, or an empty slice when s is nil, so required lists
// encode as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// QueuedJob is a job that has not finished yet.
type QueuedJob struct {
	ID                  uuid.UUID   `json:"id"`
	WorkspaceID         *string     `json:"workspace_id,omitempty"`
	ParentJob           *uuid.UUID  `json:"parent_job,omitempty"`
	CreatedBy           *string     `json:"created_by,omitempty"`
	CreatedAt           *time.Time  `json:"created_at,omitempty"`
	StartedAt           *time.Time  `json:"started_at,omitempty"`
	ScheduledFor        *time.Time  `json:"scheduled_for,omitempty"`
	Running             bool        `json:"running"`
	ScriptPath          *string     `json:"script_path,omitempty"`
	ScriptHash          *string     `json:"script_hash,omitempty"`
	Args                ScriptArgs  `json:"args,omitempty"`
	Logs                *string     `json:"logs,omitempty"`
	RawCode             *string     `json:"raw_code,omitempty"`
	Canceled            bool        `json:"canceled"`
	CanceledBy          *string     `json:"canceled_by,omitempty"`
	CanceledReason      *string     `json:"canceled_reason,omitempty"`
	LastPing            *time.Time  `json:"last_ping,omitempty"`
	JobKind             JobKind     `json:"job_kind"`
	SchedulePath        *string     `json:"schedule_path,omitempty"`
	PermissionedAs      string      `json:"permissioned_as"`
	FlowStatus          *FlowStatus `json:"flow_status,omitempty"`
	RawFlow             *FlowValue  `json:"raw_flow,omitempty"`
	IsFlowStep          bool        `json:"is_flow_step"`
	Language            *ScriptLang `json:"language,omitempty"`
	Email               string      `json:"email"`
	VisibleToOwner      bool        `json:"visible_to_owner"`
	MemPeak             *int64      `json:"mem_peak,omitempty"`
	Tag                 string      `json:"tag"`
	Priority            *int64      `json:"priority,omitempty"`
	SelfWaitTimeMs      *float64    `json:"self_wait_time_ms,omitempty"`
	AggregateWaitTimeMs *float64    `json:"aggregate_wait_time_ms,omitempty"`
	Suspend             *float64    `json:"suspend,omitempty"`
	Preprocessed        *bool       `json:"preprocessed,omitempty"`
	Worker              *string     `json:"worker,omitempty"`
}

// CompletedJob is a job that has finished, successfully or not.
type CompletedJob struct {
	ID                  uuid.UUID   `json:"id"`
	WorkspaceID         *string     `json:"workspace_id,omitempty"`
	ParentJob           *uuid.UUID  `json:"parent_job,omitempty"`
	CreatedBy           string      `json:"created_by"`
	CreatedAt           time.Time   `json:"created_at"`
	StartedAt           time.Time   `json:"started_at"`
	DurationMs          int64       `json:"duration_ms"`
	Success             bool        `json:"success"`
	ScriptPath          *string     `json:"script_path,omitempty"`
	ScriptHash          *string     `json:"script_hash,omitempty"`
	Args                ScriptArgs  `json:"args,omitempty"`
	Result              any         `json:"result,omitempty"`
	Logs                *string     `json:"logs,omitempty"`
	Deleted             *bool       `json:"deleted,omitempty"`
	RawCode             *string     `json:"raw_code,omitempty"`
	Canceled            bool        `json:"canceled"`
	CanceledBy          *string     `json:"canceled_by,omitempty"`
	CanceledReason      *string     `json:"canceled_reason,omitempty"`
	JobKind             JobKind     `json:"job_kind"`
	SchedulePath        *string     `json:"schedule_path,omitempty"`
	PermissionedAs      string      `json:"permissioned_as"`
	FlowStatus          *FlowStatus `json:"flow_status,omitempty"`
	RawFlow             *FlowValue  `json:"raw_flow,omitempty"`
	IsFlowStep          bool        `json:"is_flow_step"`
	Language            *ScriptLang `json:"language,omitempty"`
	IsSkipped           bool        `json:"is_skipped"`
	Email               string      `json:"email"`
	VisibleToOwner      bool        `json:"visible_to_owner"`
	MemPeak             *int64      `json:"mem_peak,omitempty"`
	Tag                 string      `json:"tag"`
	Priority            *int64      `json:"priority,omitempty"`
	Labels              []string    `json:"labels,omitempty"`
	SelfWaitTimeMs      *float64    `json:"self_wait_time_ms,omitempty"`
	AggregateWaitTimeMs *float64    `json:"aggregate_wait_time_ms,omitempty"`
	Preprocessed        *bool       `json:"preprocessed,omitempty"`
	Worker              *string     `json:"worker,omitempty"`
}

const (
	jobTypeCompleted = "CompletedJob"
	jobTypeQueued    = "QueuedJob"
)

// Job is either a QueuedJob or a CompletedJob. Exactly one field is set.
type Job struct {
	Queued    *QueuedJob
	Completed *CompletedJob
}

// ID returns the job id of whichever variant is set.
func (j Job) ID() uuid.UUID {
	switch {
	case j.Completed != nil:
		return j.Completed.ID
	case j.Queued != nil:
		return j.Queued.ID
	}
	return uuid.Nil
}

// ParentJob returns the parent flow job id, if any.
func (j Job) ParentJob() *uuid.UUID {
	switch {
	case j.Completed != nil:
		return j.Completed.ParentJob
	case j.Queued != nil:
		return j.Queued.ParentJob
	}
	return nil
}

func (j Job) MarshalJSON() ([]byte, error) {
	switch {
	case j.Completed != nil:
		return marshalTagged(jobTypeCompleted, j.Completed)
	case j.Queued != nil:
		return marshalTagged(jobTypeQueued, j.Queued)
	}
	return nil, fmt.Errorf("empty job")
}

// UnmarshalJSON selects the variant from "type" when present and from the
// shape otherwise: only queued jobs carry "running".
func (j *Job) UnmarshalJSON(b []byte) error {
	var head struct {
		Type    *string         `json:"type"`
		Running json.RawMessage `json:"running"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	queued := head.Running != nil
	if head.Type != nil {
		switch *head.Type {
		case jobTypeQueued:
			queued = true
		case jobTypeCompleted:
			queued = false
		default:
			return fmt.Errorf("unknown job type %q", *head.Type)
		}
	}
	*j = Job{}
	if queued {
		j.Queued = new(QueuedJob)
		return json.Unmarshal(b, j.Queued)
	}
	j.Completed = new(CompletedJob)
	return json.Unmarshal(b, j.Completed)
}

// JobUpdate is the incremental state returned by the getupdate endpoint.
type JobUpdate struct {
	Running    *bool       `json:"running,omitempty"`
	Completed  *bool       `json:"completed,omitempty"`
	NewLogs    *string     `json:"new_logs,omitempty"`
	LogOffset  *int64      `json:"log_offset,omitempty"`
	MemPeak    *int64      `json:"mem_peak,omitempty"`
	FlowStatus *FlowStatus `json:"flow_status,omitempty"`
}

// CompletedJobResultMaybe is the answer of completed/get_result_maybe.
type CompletedJobResultMaybe struct {
	Completed bool  `json:"completed"`
	Result    any   `json:"result"`
	Success   *bool `json:"success,omitempty"`
	Started   *bool `json:"started,omitempty"`
}

// QueueCount is the number of jobs waiting in the queue.
type QueueCount struct {
	DatabaseLength int64  `json:"database_length"`
	Suspended      *int64 `json:"suspended,omitempty"`
}

// CompletedCount is the number of completed jobs kept by the server.
type CompletedCount struct {
	DatabaseLength int64 `json:"database_length"`
}

// ResumeURLs are the approval links of a suspended flow step.
type ResumeURLs struct {
	ApprovalPage string `json:"approvalPage"`
	Resume       string `json:"resume"`
	Cancel       string `json:"cancel"`
}

// CancelJobRequest is the body of the cancel endpoints.
type CancelJobRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// Preview runs unsaved script content.
type Preview struct {
	Content         *string      `json:"content,omitempty"`
	Path            *string      `json:"path,omitempty"`
	Args            ScriptArgs   `json:"args"`
	Language        *ScriptLang  `json:"language,omitempty"`
	Tag             *string      `json:"tag,omitempty"`
	Kind            *PreviewKind `json:"kind,omitempty"`
	DedicatedWorker *bool        `json:"dedicated_worker,omitempty"`
	Lock            *string      `json:"lock,omitempty"`
}

// WorkerPing is the heartbeat of a worker.
type WorkerPing struct {
	Worker             string    `json:"worker"`
	WorkerInstance     string    `json:"worker_instance"`
	LastPing           *float64  `json:"last_ping,omitempty"`
	StartedAt          time.Time `json:"started_at"`
	IP                 string    `json:"ip"`
	JobsExecuted       int64     `json:"jobs_executed"`
	CustomTags         []string  `json:"custom_tags,omitempty"`
	WorkerGroup        string    `json:"worker_group"`
	WmVersion          string    `json:"wm_version"`
	LastJobID          *string   `json:"last_job_id,omitempty"`
	LastJobWorkspaceID *string   `json:"last_job_workspace_id,omitempty"`
	OccupancyRate      *float64  `json:"occupancy_rate,omitempty"`
	OccupancyRate15s   *float64  `json:"occupancy_rate_15s,omitempty"`
	OccupancyRate5m    *float64  `json:"occupancy_rate_5m,omitempty"`
	OccupancyRate30m   *float64  `json:"occupancy_rate_30m,omitempty"`
	Memory             *float64  `json:"memory,omitempty"`
	Vcpus              *float64  `json:"vcpus,omitempty"`
	MemoryUsage        *float64  `json:"memory_usage,omitempty"`
	WmMemoryUsage      *float64  `json:"wm_memory_usage,omitempty"`
}

// QueueMetric is one time series of worker queue metrics.
type QueueMetric struct {
	ID     string        `json:"id"`
	Values []MetricPoint `json:"values"`
}

type MetricPoint struct {
	CreatedAt time.Time `json:"created_at"`
	Value     float64   `json:"value"`
}

// ConcurrencyGroup is a concurrency key and its running job count.
type ConcurrencyGroup struct {
	ConcurrencyKey string  `json:"concurrency_key"`
	TotalRunning   float64 `json:"total_running"`
}

// Input is a saved or historical set of arguments for a runnable.
type Input struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	IsPublic  bool      `json:"is_public"`
	Success   *bool     `json:"success,omitempty"`
}

type CreateInput struct {
	Name string     `json:"name"`
	Args ScriptArgs `json:"args"`
}

type UpdateInput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}
