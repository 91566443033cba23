package models

import "time"

// NewSchedule is the body of schedules/create.
type NewSchedule struct {
	Path                string     `json:"path"`
	Schedule            string     `json:"schedule"`
	CronVersion         *string    `json:"cron_version,omitempty"`
	Timezone            string     `json:"timezone"`
	ScriptPath          string     `json:"script_path"`
	IsFlow              bool       `json:"is_flow"`
	Args                ScriptArgs `json:"args"`
	Enabled             *bool      `json:"enabled,omitempty"`
	OnFailure           *string    `json:"on_failure,omitempty"`
	OnFailureTimes      *float64   `json:"on_failure_times,omitempty"`
	OnFailureExact      *bool      `json:"on_failure_exact,omitempty"`
	OnFailureExtraArgs  ScriptArgs `json:"on_failure_extra_args,omitempty"`
	OnRecovery          *string    `json:"on_recovery,omitempty"`
	OnRecoveryTimes     *float64   `json:"on_recovery_times,omitempty"`
	OnRecoveryExtraArgs ScriptArgs `json:"on_recovery_extra_args,omitempty"`
	OnSuccess           *string    `json:"on_success,omitempty"`
	OnSuccessExtraArgs  ScriptArgs `json:"on_success_extra_args,omitempty"`
	WsErrorHandlerMuted *bool      `json:"ws_error_handler_muted,omitempty"`
	Retry               *Retry     `json:"retry,omitempty"`
	NoFlowOverlap       *bool      `json:"no_flow_overlap,omitempty"`
	Summary             *string    `json:"summary,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Tag                 *string    `json:"tag,omitempty"`
	PausedUntil         *time.Time `json:"paused_until,omitempty"`
}

// EditSchedule is the body of schedules/update. Path and script are fixed.
type EditSchedule struct {
	Schedule            string     `json:"schedule"`
	CronVersion         *string    `json:"cron_version,omitempty"`
	Timezone            string     `json:"timezone"`
	Args                ScriptArgs `json:"args"`
	OnFailure           *string    `json:"on_failure,omitempty"`
	OnFailureTimes      *float64   `json:"on_failure_times,omitempty"`
	OnFailureExact      *bool      `json:"on_failure_exact,omitempty"`
	OnFailureExtraArgs  ScriptArgs `json:"on_failure_extra_args,omitempty"`
	OnRecovery          *string    `json:"on_recovery,omitempty"`
	OnRecoveryTimes     *float64   `json:"on_recovery_times,omitempty"`
	OnRecoveryExtraArgs ScriptArgs `json:"on_recovery_extra_args,omitempty"`
	OnSuccess           *string    `json:"on_success,omitempty"`
	OnSuccessExtraArgs  ScriptArgs `json:"on_success_extra_args,omitempty"`
	WsErrorHandlerMuted *bool      `json:"ws_error_handler_muted,omitempty"`
	Retry               *Retry     `json:"retry,omitempty"`
	NoFlowOverlap       *bool      `json:"no_flow_overlap,omitempty"`
	Summary             *string    `json:"summary,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Tag                 *string    `json:"tag,omitempty"`
	PausedUntil         *time.Time `json:"paused_until,omitempty"`
}

// Schedule is a stored cron trigger for a script or flow.
type Schedule struct {
	Path                string     `json:"path"`
	EditedBy            string     `json:"edited_by"`
	EditedAt            time.Time  `json:"edited_at"`
	Schedule            string     `json:"schedule"`
	Timezone            string     `json:"timezone"`
	Enabled             bool       `json:"enabled"`
	ScriptPath          string     `json:"script_path"`
	IsFlow              bool       `json:"is_flow"`
	Args                ScriptArgs `json:"args,omitempty"`
	ExtraPerms          ExtraPerms `json:"extra_perms"`
	Email               string     `json:"email"`
	Error               *string    `json:"error,omitempty"`
	OnFailure           *string    `json:"on_failure,omitempty"`
	OnFailureTimes      *float64   `json:"on_failure_times,omitempty"`
	OnFailureExact      *bool      `json:"on_failure_exact,omitempty"`
	OnFailureExtraArgs  ScriptArgs `json:"on_failure_extra_args,omitempty"`
	OnRecovery          *string    `json:"on_recovery,omitempty"`
	OnRecoveryTimes     *float64   `json:"on_recovery_times,omitempty"`
	OnRecoveryExtraArgs ScriptArgs `json:"on_recovery_extra_args,omitempty"`
	OnSuccess           *string    `json:"on_success,omitempty"`
	OnSuccessExtraArgs  ScriptArgs `json:"on_success_extra_args,omitempty"`
	WsErrorHandlerMuted *bool      `json:"ws_error_handler_muted,omitempty"`
	Retry               *Retry     `json:"retry,omitempty"`
	Summary             *string    `json:"summary,omitempty"`
	Description         *string    `json:"description,omitempty"`
	NoFlowOverlap       *bool      `json:"no_flow_overlap,omitempty"`
	Tag                 *string    `json:"tag,omitempty"`
	PausedUntil         *time.Time `json:"paused_until,omitempty"`
	CronVersion         *string    `json:"cron_version,omitempty"`
}

// ScheduleJob is the compact job summary attached to ScheduleWJobs.
type ScheduleJob struct {
	ID         string  `json:"id"`
	Success    bool    `json:"success"`
	DurationMs float64 `json:"duration_ms"`
}

// ScheduleWJobs is a schedule with its most recent runs.
type ScheduleWJobs struct {
	Schedule
	Jobs []ScheduleJob `json:"jobs,omitempty"`
}

// SchedulePreviewRequest asks the server for the next ticks of a cron expression.
type SchedulePreviewRequest struct {
	Schedule    string  `json:"schedule"`
	Timezone    string  `json:"timezone"`
	CronVersion *string `json:"cron_version,omitempty"`
}

// SetEnabled is the body of every setenabled endpoint.
type SetEnabled struct {
	Enabled bool `json:"enabled"`
}

// SetDefaultErrorOrRecoveryHandler configures the workspace-wide
// schedule handlers.
type SetDefaultErrorOrRecoveryHandler struct {
	HandlerType            string     `json:"handler_type"`
	OverrideExisting       bool       `json:"override_existing"`
	Path                   *string    `json:"path,omitempty"`
	ExtraArgs              ScriptArgs `json:"extra_args,omitempty"`
	NumberOfOccurence      *int64     `json:"number_of_occurence,omitempty"`
	NumberOfOccurenceExact *bool      `json:"number_of_occurence_exact,omitempty"`
	WorkspaceHandlerMuted  *bool      `json:"workspace_handler_muted,omitempty"`
}
