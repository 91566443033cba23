package models

import "time"

// Policy is the execution policy of an app.
type Policy struct {
	TriggerablesV2  map[string]any    `json:"triggerables_v2,omitempty"`
	ExecutionMode   *AppExecutionMode `json:"execution_mode,omitempty"`
	OnBehalfOf      *string           `json:"on_behalf_of,omitempty"`
	OnBehalfOfEmail *string           `json:"on_behalf_of_email,omitempty"`
	S3Inputs        []any             `json:"s3_inputs,omitempty"`
}

// ListableApp is an app as returned by list.
type ListableApp struct {
	ID            int64            `json:"id"`
	WorkspaceID   string           `json:"workspace_id"`
	Path          string           `json:"path"`
	Summary       string           `json:"summary"`
	Version       int64            `json:"version"`
	ExtraPerms    ExtraPerms       `json:"extra_perms"`
	Starred       *bool            `json:"starred,omitempty"`
	EditedAt      time.Time        `json:"edited_at"`
	ExecutionMode AppExecutionMode `json:"execution_mode"`
}

// AppWithLastVersion is an app with its latest version's definition.
type AppWithLastVersion struct {
	ID          int64      `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Path        string     `json:"path"`
	Summary     string     `json:"summary"`
	Versions    []int64    `json:"versions"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	Value       any        `json:"value"`
	Policy      Policy     `json:"policy"`
	ExtraPerms  ExtraPerms `json:"extra_perms"`
	CustomPath  *string    `json:"custom_path,omitempty"`
}

// AppHistory is one deployed version of an app.
type AppHistory struct {
	Version       int64   `json:"version"`
	DeploymentMsg *string `json:"deployment_msg,omitempty"`
}

type CreateApp struct {
	Path              string  `json:"path"`
	Value             any     `json:"value"`
	Summary           string  `json:"summary"`
	Policy            Policy  `json:"policy"`
	DraftOnly         *bool   `json:"draft_only,omitempty"`
	DeploymentMessage *string `json:"deployment_message,omitempty"`
	CustomPath        *string `json:"custom_path,omitempty"`
}

type EditApp struct {
	Path              *string `json:"path,omitempty"`
	Summary           *string `json:"summary,omitempty"`
	Value             any     `json:"value,omitempty"`
	Policy            *Policy `json:"policy,omitempty"`
	DeploymentMessage *string `json:"deployment_message,omitempty"`
	CustomPath        *string `json:"custom_path,omitempty"`
}

// AuditLog is one recorded action.
type AuditLog struct {
	ID         int64              `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Username   string             `json:"username"`
	Operation  AuditOperation     `json:"operation"`
	ActionKind AuditLogActionKind `json:"action_kind"`
	Resource   *string            `json:"resource,omitempty"`
	Parameters map[string]any     `json:"parameters,omitempty"`
}

// GlobalSetting is one instance-level setting.
type GlobalSetting struct {
	Value any `json:"value"`
}

// Usage is the answer of users/usage and similar counters.
type Usage struct {
	Executions *float64 `json:"executions,omitempty"`
}

// Ptr returns a pointer to v, for filling optional fields inline.
func Ptr[T any](v T) *T {
	return &v
}
