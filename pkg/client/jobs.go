package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rflorenc/windmill-client/pkg/models"
)

// RunParams controls how a job is enqueued.
type RunParams struct {
	ScheduledFor     *time.Time
	ScheduledInSecs  *int64
	ParentJob        *uuid.UUID
	JobID            *uuid.UUID
	Tag              *string
	CacheTTL         *string
	InvisibleToOwner *bool
	IncludeHeader    *string
}

func (p RunParams) query() url.Values {
	q := url.Values{}
	addParam(q, "scheduled_for", p.ScheduledFor)
	addParam(q, "scheduled_in_secs", p.ScheduledInSecs)
	addParam(q, "parent_job", p.ParentJob)
	addParam(q, "job_id", p.JobID)
	addParam(q, "tag", p.Tag)
	addParam(q, "cache_ttl", p.CacheTTL)
	addParam(q, "invisible_to_owner", p.InvisibleToOwner)
	addParam(q, "include_header", p.IncludeHeader)
	return q
}

// RunWaitParams controls the synchronous run endpoints.
type RunWaitParams struct {
	IncludeHeader *string
	QueueLimit    *string
	JobID         *uuid.UUID
	ParentJob     *uuid.UUID
	Tag           *string
	CacheTTL      *string
}

func (p RunWaitParams) query() url.Values {
	q := url.Values{}
	addParam(q, "include_header", p.IncludeHeader)
	addParam(q, "queue_limit", p.QueueLimit)
	addParam(q, "job_id", p.JobID)
	addParam(q, "parent_job", p.ParentJob)
	addParam(q, "tag", p.Tag)
	addParam(q, "cache_ttl", p.CacheTTL)
	return q
}

// doUUID reads a text body holding a job id.
func (c *Client) doUUID(ctx context.Context, r request) (uuid.UUID, error) {
	text, err := c.doText(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(strings.Trim(strings.TrimSpace(text), `"`))
	if err != nil {
		return uuid.Nil, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return id, nil
}

// RunScriptByPath enqueues the latest version of the script at path.
func (c *Client) RunScriptByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/p/%s", path), query: p.query(), body: args, want: http.StatusCreated})
}

// RunScriptByHash enqueues a specific script version.
func (c *Client) RunScriptByHash(ctx context.Context, workspace, hash string, args models.ScriptArgs, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/h/%s", hash), query: p.query(), body: args, want: http.StatusCreated})
}

// RunFlowByPath enqueues the flow at path.
func (c *Client) RunFlowByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/f/%s", path), query: p.query(), body: args, want: http.StatusCreated})
}

// RestartFlowAtStep reruns flow job id starting at stepID.
func (c *Client) RestartFlowAtStep(ctx context.Context, workspace string, id uuid.UUID, stepID string, branchOrIterationN int64, args models.ScriptArgs, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/jobs/restart/f/%s/from/%s/%s", id, stepID, branchOrIterationN),
		query:  p.query(),
		body:   args,
		want:   http.StatusCreated,
	})
}

// RunScriptPreview runs unsaved script content.
func (c *Client) RunScriptPreview(ctx context.Context, workspace string, body models.Preview, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/preview"), query: p.query(), body: body, want: http.StatusCreated})
}

// RunFlowPreview runs an unsaved flow definition.
func (c *Client) RunFlowPreview(ctx context.Context, workspace string, body models.FlowPreview, p RunParams) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/preview_flow"), query: p.query(), body: body, want: http.StatusCreated})
}

// WorkflowTask is one step started by a workflow-as-code job.
type WorkflowTask struct {
	Args models.ScriptArgs `json:"args"`
}

// RunWorkflowAsCode starts one task of a workflow-as-code job.
func (c *Client) RunWorkflowAsCode(ctx context.Context, workspace string, jobID uuid.UUID, entrypoint string, body WorkflowTask) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/workflow_as_code/%s/%s", jobID, entrypoint), body: body, want: http.StatusCreated})
}

// RawDependencies is the body of jobs/run/dependencies.
type RawDependencies struct {
	RawScripts []RawScriptForDependencies `json:"raw_scripts"`
	Entrypoint string                     `json:"entrypoint"`
	RawDeps    *string                    `json:"raw_deps,omitempty"`
}

type RawScriptForDependencies struct {
	RawCode  string            `json:"raw_code"`
	Path     string            `json:"path"`
	Language models.ScriptLang `json:"language"`
}

// DependenciesResult is the resolved lock file.
type DependenciesResult struct {
	Lock string `json:"lock"`
}

// RunRawScriptDependencies resolves the lockfile of raw script content.
func (c *Client) RunRawScriptDependencies(ctx context.Context, workspace string, body RawDependencies) (DependenciesResult, error) {
	return doJSON[DependenciesResult](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run/dependencies"), body: body, want: http.StatusCreated})
}

// RunWaitResultScriptByPath runs a script and blocks until its result.
func (c *Client) RunWaitResultScriptByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunWaitParams) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run_wait_result/p/%s", path), query: p.query(), body: args, want: http.StatusOK})
}

// RunWaitResultScriptByPathGet passes args as a base64url JSON payload.
func (c *Client) RunWaitResultScriptByPathGet(ctx context.Context, workspace, path string, payload *string, p RunWaitParams) (json.RawMessage, error) {
	q := p.query()
	addParam(q, "payload", payload)
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/run_wait_result/p/%s", path), query: q, want: http.StatusOK})
}

// RunWaitResultFlowByPath runs a flow and blocks until its result is available.
func (c *Client) RunWaitResultFlowByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunWaitParams) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/run_wait_result/f/%s", path), query: p.query(), body: args, want: http.StatusOK})
}

// OpenaiSyncScriptByPath runs a script and wraps its result in an
// OpenAI-compatible envelope.
func (c *Client) OpenaiSyncScriptByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunWaitParams) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/openai_sync/p/%s", path), query: p.query(), body: args, want: http.StatusOK})
}

// OpenaiSyncFlowByPath runs a flow synchronously behind the OpenAI-compatible route.
func (c *Client) OpenaiSyncFlowByPath(ctx context.Context, workspace, path string, args models.ScriptArgs, p RunWaitParams) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/openai_sync/f/%s", path), query: p.query(), body: args, want: http.StatusOK})
}

// ResultByID returns the result of node nodeID inside flow job flowJobID.
func (c *Client) ResultByID(ctx context.Context, workspace string, flowJobID uuid.UUID, nodeID string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/result_by_id/%s/%s", flowJobID, nodeID), want: http.StatusOK})
}

// JobFilter is shared by the job listing endpoints. Not every endpoint
// honors every field.
type JobFilter struct {
	Pagination
	CreatedBy             *string
	Label                 *string
	ParentJob             *uuid.UUID
	ScriptPathExact       *string
	ScriptPathStart       *string
	SchedulePath          *string
	ScriptHash            *string
	StartedBefore         *time.Time
	StartedAfter          *time.Time
	Success               *bool
	ScheduledForBeforeNow *bool
	JobKinds              []models.JobKind
	Suspended             *bool
	Running               *bool
	Args                  *string
	Result                *string
	Tag                   *string
	OrderDesc             *bool
	AllWorkspaces         *bool
	IsNotSchedule         *bool
	IsSkipped             *bool
	IsFlowStep            *bool
	HasNullParent         *bool
}

func (f JobFilter) query() url.Values {
	q := url.Values{}
	f.apply(q)
	addParam(q, "created_by", f.CreatedBy)
	addParam(q, "label", f.Label)
	addParam(q, "parent_job", f.ParentJob)
	addParam(q, "script_path_exact", f.ScriptPathExact)
	addParam(q, "script_path_start", f.ScriptPathStart)
	addParam(q, "schedule_path", f.SchedulePath)
	addParam(q, "script_hash", f.ScriptHash)
	addParam(q, "started_before", f.StartedBefore)
	addParam(q, "started_after", f.StartedAfter)
	addParam(q, "success", f.Success)
	addParam(q, "scheduled_for_before_now", f.ScheduledForBeforeNow)
	addList(q, "job_kinds", f.JobKinds)
	addParam(q, "suspended", f.Suspended)
	addParam(q, "running", f.Running)
	addParam(q, "args", f.Args)
	addParam(q, "result", f.Result)
	addParam(q, "tag", f.Tag)
	addParam(q, "order_desc", f.OrderDesc)
	addParam(q, "all_workspaces", f.AllWorkspaces)
	addParam(q, "is_not_schedule", f.IsNotSchedule)
	addParam(q, "is_skipped", f.IsSkipped)
	addParam(q, "is_flow_step", f.IsFlowStep)
	addParam(q, "has_null_parent", f.HasNullParent)
	return q
}

// ListJobsParams adds the created-or-started window of jobs/list.
type ListJobsParams struct {
	JobFilter
	CreatedOrStartedBefore *time.Time
	CreatedOrStartedAfter  *time.Time
}

// ListQueue lists queued and running jobs.
func (c *Client) ListQueue(ctx context.Context, workspace string, f JobFilter) ([]models.QueuedJob, error) {
	return doJSON[[]models.QueuedJob](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/queue/list"), query: f.query(), want: http.StatusOK})
}

// GetQueueCount counts queued jobs.
func (c *Client) GetQueueCount(ctx context.Context, workspace string, allWorkspaces *bool) (models.QueueCount, error) {
	q := url.Values{}
	addParam(q, "all_workspaces", allWorkspaces)
	return doJSON[models.QueueCount](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/queue/count"), query: q, want: http.StatusOK})
}

// GetCompletedCount counts completed jobs.
func (c *Client) GetCompletedCount(ctx context.Context, workspace string) (models.CompletedCount, error) {
	return doJSON[models.CompletedCount](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/completed/count"), want: http.StatusOK})
}

// CancelAll cancels every queued job and returns their ids.
func (c *Client) CancelAll(ctx context.Context, workspace string) ([]uuid.UUID, error) {
	return doJSON[[]uuid.UUID](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/queue/cancel_all"), want: http.StatusOK})
}

// ListCompletedJobs lists finished jobs.
func (c *Client) ListCompletedJobs(ctx context.Context, workspace string, f JobFilter) ([]models.CompletedJob, error) {
	return doJSON[[]models.CompletedJob](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/completed/list"), query: f.query(), want: http.StatusOK})
}

// ListJobs lists queued and completed jobs together.
func (c *Client) ListJobs(ctx context.Context, workspace string, p ListJobsParams) ([]models.Job, error) {
	q := p.query()
	addParam(q, "created_or_started_before", p.CreatedOrStartedBefore)
	addParam(q, "created_or_started_after", p.CreatedOrStartedAfter)
	return doJSON[[]models.Job](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/list"), query: q, want: http.StatusOK})
}

// GetDBClock returns the database time in milliseconds since the epoch.
func (c *Client) GetDBClock(ctx context.Context) (int64, error) {
	return doJSON[int64](ctx, c, request{method: http.MethodGet, path: "/jobs/db_clock", want: http.StatusOK})
}

// GetJob returns a job in whichever state it is.
func (c *Client) GetJob(ctx context.Context, workspace string, id uuid.UUID, noLogs *bool) (models.Job, error) {
	q := url.Values{}
	addParam(q, "no_logs", noLogs)
	return doJSON[models.Job](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get/%s", id), query: q, want: http.StatusOK})
}

// GetRootJobID returns the id of the top-level job of a flow run.
func (c *Client) GetRootJobID(ctx context.Context, workspace string, id uuid.UUID) (uuid.UUID, error) {
	return c.doUUID(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get_root_job_id/%s", id), want: http.StatusOK})
}

// GetJobLogs returns the full log of a job.
func (c *Client) GetJobLogs(ctx context.Context, workspace string, id uuid.UUID) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get_logs/%s", id), want: http.StatusOK})
}

// GetJobUpdatesParams selects the log window of GetJobUpdates.
type GetJobUpdatesParams struct {
	Running   *bool
	LogOffset *int64
}

// GetJobUpdates returns the state and new log lines of a job since p.LogOffset.
func (c *Client) GetJobUpdates(ctx context.Context, workspace string, id uuid.UUID, p GetJobUpdatesParams) (models.JobUpdate, error) {
	q := url.Values{}
	addParam(q, "running", p.Running)
	addParam(q, "log_offset", p.LogOffset)
	return doJSON[models.JobUpdate](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/getupdate/%s", id), query: q, want: http.StatusOK})
}

// GetLogFileFromStore streams a log file offloaded to object storage. The
// caller closes the reader.
func (c *Client) GetLogFileFromStore(ctx context.Context, workspace, path string) (io.ReadCloser, error) {
	return c.doStream(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get_log_file/%s", path), want: http.StatusOK})
}

// GetFlowDebugInfo returns the raw state of every step of a flow job.
func (c *Client) GetFlowDebugInfo(ctx context.Context, workspace string, id uuid.UUID) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get_flow_debug_info/%s", id), want: http.StatusOK})
}

// GetCompletedJob fetches a finished job.
func (c *Client) GetCompletedJob(ctx context.Context, workspace string, id uuid.UUID) (models.CompletedJob, error) {
	return doJSON[models.CompletedJob](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/completed/get/%s", id), want: http.StatusOK})
}

// GetCompletedJobResult returns the result of a finished job.
func (c *Client) GetCompletedJobResult(ctx context.Context, workspace string, id uuid.UUID) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/completed/get_result/%s", id), want: http.StatusOK})
}

// GetCompletedJobResultMaybe returns the result if the job has completed.
func (c *Client) GetCompletedJobResultMaybe(ctx context.Context, workspace string, id uuid.UUID, getStarted *bool) (models.CompletedJobResultMaybe, error) {
	q := url.Values{}
	addParam(q, "get_started", getStarted)
	return doJSON[models.CompletedJobResultMaybe](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/completed/get_result_maybe/%s", id), query: q, want: http.StatusOK})
}

// DeleteCompletedJob wipes the args, logs and result of a completed job.
func (c *Client) DeleteCompletedJob(ctx context.Context, workspace string, id uuid.UUID) (models.CompletedJob, error) {
	return doJSON[models.CompletedJob](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/jobs/completed/delete/%s", id), want: http.StatusOK})
}

// CancelQueuedJob cancels a queued or running job.
func (c *Client) CancelQueuedJob(ctx context.Context, workspace string, id uuid.UUID, body models.CancelJobRequest) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs_u/queue/cancel/%s", id), body: body, want: http.StatusOK})
}

// CancelPersistentQueuedJobs cancels every queued job of a perpetual script.
func (c *Client) CancelPersistentQueuedJobs(ctx context.Context, workspace, path string, body models.CancelJobRequest) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs_u/queue/cancel_persistent/%s", path), body: body, want: http.StatusOK})
}

// ForceCancelQueuedJob cancels a job even if its worker does not answer.
func (c *Client) ForceCancelQueuedJob(ctx context.Context, workspace string, id uuid.UUID, body models.CancelJobRequest) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs_u/queue/force_cancel/%s", id), body: body, want: http.StatusOK})
}

func approverQuery(approver *string) url.Values {
	q := url.Values{}
	addParam(q, "approver", approver)
	return q
}

// CreateJobSignature signs resume step resumeID of a suspended flow.
func (c *Client) CreateJobSignature(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, approver *string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs/job_signature/%s/%s", id, resumeID), query: approverQuery(approver), want: http.StatusOK})
}

// GetResumeURLs returns the approval and cancel links of a suspended step.
func (c *Client) GetResumeURLs(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, approver *string) (models.ResumeURLs, error) {
	return doJSON[models.ResumeURLs](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/resume_urls/%s/%s", id, resumeID), query: approverQuery(approver), want: http.StatusOK})
}

// ResumeSuspendedJobGet resumes with a base64url JSON payload in the query.
func (c *Client) ResumeSuspendedJobGet(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, signature string, payload, approver *string) (string, error) {
	q := approverQuery(approver)
	addParam(q, "payload", payload)
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/resume/%s/%s/%s", id, resumeID, signature), query: q, want: http.StatusCreated})
}

// ResumeSuspendedJobPost approves a suspended step with a payload.
func (c *Client) ResumeSuspendedJobPost(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, signature string, payload any, approver *string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/jobs_u/resume/%s/%s/%s", id, resumeID, signature),
		query:  approverQuery(approver),
		body:   nullIfNil(payload),
		want:   http.StatusCreated,
	})
}

// SetFlowUserState stores a value in a flow's user state.
func (c *Client) SetFlowUserState(ctx context.Context, workspace string, id uuid.UUID, key string, value any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/flow/user_states/%s/%s", id, key), body: nullIfNil(value), want: http.StatusOK})
}

// GetFlowUserState reads a value from a flow's user state.
func (c *Client) GetFlowUserState(ctx context.Context, workspace string, id uuid.UUID, key string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs/flow/user_states/%s/%s", id, key), want: http.StatusOK})
}

// ResumeSuspended resumes a suspended flow as the caller, without a
// signature.
func (c *Client) ResumeSuspended(ctx context.Context, workspace string, id uuid.UUID, payload any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/jobs/flow/resume/%s", id), body: nullIfNil(payload), want: http.StatusCreated})
}

// CancelSuspendedJobGet rejects a suspended step through its link.
func (c *Client) CancelSuspendedJobGet(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, signature string, approver *string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/cancel/%s/%s/%s", id, resumeID, signature), query: approverQuery(approver), want: http.StatusCreated})
}

// CancelSuspendedJobPost rejects a suspended step with a payload.
func (c *Client) CancelSuspendedJobPost(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, signature string, payload any, approver *string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/jobs_u/cancel/%s/%s/%s", id, resumeID, signature),
		query:  approverQuery(approver),
		body:   nullIfNil(payload),
		want:   http.StatusCreated,
	})
}

// SuspendedJobFlow is the state of a flow waiting for approval.
type SuspendedJobFlow struct {
	Job       models.Job        `json:"job"`
	Approvers []models.Approver `json:"approvers"`
}

// GetSuspendedJobFlow returns the flow job behind a suspended step.
func (c *Client) GetSuspendedJobFlow(ctx context.Context, workspace string, id uuid.UUID, resumeID int64, signature string, approver *string) (SuspendedJobFlow, error) {
	return doJSON[SuspendedJobFlow](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/jobs_u/get_flow/%s/%s/%s", id, resumeID, signature), query: approverQuery(approver), want: http.StatusOK})
}

// JobMetricsRequest selects the metrics of GetJobMetrics.
type JobMetricsRequest struct {
	TimeseriesMaxDatapoints *int64     `json:"timeseries_max_datapoints,omitempty"`
	FromTimestamp           *time.Time `json:"from_timestamp,omitempty"`
	ToTimestamp             *time.Time `json:"to_timestamp,omitempty"`
}

// JobMetrics holds recorded job metrics.
type JobMetrics struct {
	MetricsMetadata   []map[string]any `json:"metrics_metadata,omitempty"`
	ScalarMetrics     []map[string]any `json:"scalar_metrics,omitempty"`
	TimeseriesMetrics []map[string]any `json:"timeseries_metrics,omitempty"`
}

// GetJobMetrics returns the metrics recorded by a job.
func (c *Client) GetJobMetrics(ctx context.Context, workspace string, id uuid.UUID, body JobMetricsRequest) (JobMetrics, error) {
	return doJSON[JobMetrics](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/job_metrics/get/%s", id), body: body, want: http.StatusOK})
}

// nullIfNil keeps a nil payload encoded as JSON null instead of no body.
func nullIfNil(v any) any {
	if v == nil {
		return json.RawMessage("null")
	}
	return v
}
