package models

import "time"

// Resource is a typed configuration value stored at a path.
type Resource struct {
	WorkspaceID  *string    `json:"workspace_id,omitempty"`
	Path         string     `json:"path"`
	Description  *string    `json:"description,omitempty"`
	ResourceType string     `json:"resource_type"`
	Value        any        `json:"value,omitempty"`
	IsOAuth      bool       `json:"is_oauth"`
	ExtraPerms   ExtraPerms `json:"extra_perms,omitempty"`
	CreatedBy    *string    `json:"created_by,omitempty"`
	EditedAt     *time.Time `json:"edited_at,omitempty"`
}

// ListableResource is a Resource as returned by list, with link state.
type ListableResource struct {
	WorkspaceID  *string    `json:"workspace_id,omitempty"`
	Path         string     `json:"path"`
	Description  *string    `json:"description,omitempty"`
	ResourceType string     `json:"resource_type"`
	Value        any        `json:"value,omitempty"`
	IsOAuth      bool       `json:"is_oauth"`
	ExtraPerms   ExtraPerms `json:"extra_perms,omitempty"`
	IsExpired    *bool      `json:"is_expired,omitempty"`
	RefreshError *string    `json:"refresh_error,omitempty"`
	IsLinked     bool       `json:"is_linked"`
	IsRefreshed  bool       `json:"is_refreshed"`
	Account      *float64   `json:"account,omitempty"`
	CreatedBy    *string    `json:"created_by,omitempty"`
	EditedAt     *time.Time `json:"edited_at,omitempty"`
}

type CreateResource struct {
	Path         string  `json:"path"`
	Value        any     `json:"value"`
	Description  *string `json:"description,omitempty"`
	ResourceType string  `json:"resource_type"`
}

type EditResource struct {
	Path        *string `json:"path,omitempty"`
	Description *string `json:"description,omitempty"`
	Value       any     `json:"value,omitempty"`
}

// ResourceType is the JSON schema shared by resources of one kind.
type ResourceType struct {
	WorkspaceID     *string    `json:"workspace_id,omitempty"`
	Name            string     `json:"name"`
	Schema          any        `json:"schema,omitempty"`
	Description     *string    `json:"description,omitempty"`
	CreatedBy       *string    `json:"created_by,omitempty"`
	EditedAt        *time.Time `json:"edited_at,omitempty"`
	FormatExtension *string    `json:"format_extension,omitempty"`
}

type EditResourceType struct {
	Schema      any     `json:"schema,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateVariable is the body of variable create.
type CreateVariable struct {
	Path        string     `json:"path"`
	Value       string     `json:"value"`
	IsSecret    bool       `json:"is_secret"`
	Description string     `json:"description"`
	Account     *int64     `json:"account,omitempty"`
	IsOAuth     *bool      `json:"is_oauth,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// EditVariable is the body of variable update. Every field is optional and
// absent fields are left untouched by the server.
type EditVariable struct {
	Path        *string `json:"path,omitempty"`
	Value       *string `json:"value,omitempty"`
	IsSecret    *bool   `json:"is_secret,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListableVariable is a variable as returned by get and list.
type ListableVariable struct {
	WorkspaceID  string     `json:"workspace_id"`
	Path         string     `json:"path"`
	Value        *string    `json:"value,omitempty"`
	IsSecret     bool       `json:"is_secret"`
	Description  *string    `json:"description,omitempty"`
	Account      *int64     `json:"account,omitempty"`
	IsOAuth      *bool      `json:"is_oauth,omitempty"`
	ExtraPerms   ExtraPerms `json:"extra_perms"`
	IsExpired    *bool      `json:"is_expired,omitempty"`
	RefreshError *string    `json:"refresh_error,omitempty"`
	IsLinked     *bool      `json:"is_linked,omitempty"`
	IsRefreshed  *bool      `json:"is_refreshed,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// ContextualVariable is a WM_* variable injected into every job.
type ContextualVariable struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
	IsCustom    bool   `json:"is_custom"`
}

// Capture is a payload recorded while a trigger was in capture mode.
type Capture struct {
	ID           int64              `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	TriggerKind  CaptureTriggerKind `json:"trigger_kind"`
	Payload      any                `json:"payload"`
	TriggerExtra any                `json:"trigger_extra,omitempty"`
}

// CaptureConfig is the capture setup of one trigger kind.
type CaptureConfig struct {
	TriggerConfig  any                `json:"trigger_config,omitempty"`
	TriggerKind    CaptureTriggerKind `json:"trigger_kind"`
	Error          *string            `json:"error,omitempty"`
	LastServerPing *time.Time         `json:"last_server_ping,omitempty"`
}

// S3Resource is the connection info of an S3 bucket. Its wire names are
// camelCase.
type S3Resource struct {
	Bucket    string  `json:"bucket"`
	Region    string  `json:"region"`
	EndPoint  string  `json:"endPoint"`
	UseSSL    bool    `json:"useSSL"`
	AccessKey *string `json:"accessKey,omitempty"`
	SecretKey *string `json:"secretKey,omitempty"`
	PathStyle bool    `json:"pathStyle"`
}

type S3ResourceInfoRequest struct {
	S3ResourcePath *string `json:"s3_resource_path,omitempty"`
}

// WindmillFileMetadata describes an object in workspace storage.
type WindmillFileMetadata struct {
	MimeType     *string    `json:"mime_type,omitempty"`
	SizeInBytes  *int64     `json:"size_in_bytes,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	Expires      *time.Time `json:"expires,omitempty"`
	VersionID    *string    `json:"version_id,omitempty"`
}

// WindmillFilePreview is a server-rendered preview of a stored file.
type WindmillFilePreview struct {
	Msg         *string                `json:"msg,omitempty"`
	Content     *string                `json:"content,omitempty"`
	ContentType FilePreviewContentType `json:"content_type"`
}

// StoredFiles is one page of list_stored_files.
type StoredFiles struct {
	NextMarker         *string     `json:"next_marker,omitempty"`
	WindmillLargeFiles []LargeFile `json:"windmill_large_files"`
	RestrictedAccess   *bool       `json:"restricted_access,omitempty"`
}

// LargeFile is an S3 object reference.
type LargeFile struct {
	S3 string `json:"s3"`
}

// UploadResult is the answer of upload_s3_file.
type UploadResult struct {
	FileKey string `json:"file_key"`
}
