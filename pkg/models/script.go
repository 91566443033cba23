package models

import "time"

// NewScript is the body of script create. Content, Summary, Description,
// Path and Language are required.
type NewScript struct {
	Path                   string         `json:"path"`
	ParentHash             *string        `json:"parent_hash,omitempty"`
	Summary                string         `json:"summary"`
	Description            string         `json:"description"`
	Content                string         `json:"content"`
	Schema                 map[string]any `json:"schema,omitempty"`
	IsTemplate             *bool          `json:"is_template,omitempty"`
	Lock                   *string        `json:"lock,omitempty"`
	Language               ScriptLang     `json:"language"`
	Kind                   *ScriptKind    `json:"kind,omitempty"`
	Tag                    *string        `json:"tag,omitempty"`
	DraftOnly              *bool          `json:"draft_only,omitempty"`
	Envs                   []string       `json:"envs,omitempty"`
	ConcurrentLimit        *int64         `json:"concurrent_limit,omitempty"`
	ConcurrencyTimeWindowS *int64         `json:"concurrency_time_window_s,omitempty"`
	CacheTTL               *float64       `json:"cache_ttl,omitempty"`
	DedicatedWorker        *bool          `json:"dedicated_worker,omitempty"`
	WsErrorHandlerMuted    *bool          `json:"ws_error_handler_muted,omitempty"`
	Priority               *int64         `json:"priority,omitempty"`
	RestartUnlessCancelled *bool          `json:"restart_unless_cancelled,omitempty"`
	Timeout                *int64         `json:"timeout,omitempty"`
	DeleteAfterUse         *bool          `json:"delete_after_use,omitempty"`
	DeploymentMessage      *string        `json:"deployment_message,omitempty"`
	ConcurrencyKey         *string        `json:"concurrency_key,omitempty"`
	VisibleToRunnerOnly    *bool          `json:"visible_to_runner_only,omitempty"`
	NoMainFunc             *bool          `json:"no_main_func,omitempty"`
	Codebase               *string        `json:"codebase,omitempty"`
	HasPreprocessor        *bool          `json:"has_preprocessor,omitempty"`
	OnBehalfOfEmail        *string        `json:"on_behalf_of_email,omitempty"`
}

// NewScriptWithDraft is a deployed script plus its pending draft.
type NewScriptWithDraft struct {
	NewScript
	Draft *NewScript `json:"draft,omitempty"`
	Hash  string     `json:"hash"`
}

// Script is a deployed script version.
type Script struct {
	WorkspaceID            *string        `json:"workspace_id,omitempty"`
	Hash                   string         `json:"hash"`
	Path                   string         `json:"path"`
	ParentHashes           []string       `json:"parent_hashes,omitempty"`
	Summary                string         `json:"summary"`
	Description            string         `json:"description"`
	Content                string         `json:"content"`
	CreatedBy              string         `json:"created_by"`
	CreatedAt              time.Time      `json:"created_at"`
	Archived               bool           `json:"archived"`
	Schema                 map[string]any `json:"schema,omitempty"`
	Deleted                bool           `json:"deleted"`
	IsTemplate             bool           `json:"is_template"`
	ExtraPerms             ExtraPerms     `json:"extra_perms"`
	Lock                   *string        `json:"lock,omitempty"`
	LockErrorLogs          *string        `json:"lock_error_logs,omitempty"`
	Language               ScriptLang     `json:"language"`
	Kind                   ScriptKind     `json:"kind"`
	Starred                bool           `json:"starred"`
	Tag                    *string        `json:"tag,omitempty"`
	HasDraft               *bool          `json:"has_draft,omitempty"`
	DraftOnly              *bool          `json:"draft_only,omitempty"`
	Envs                   []string       `json:"envs,omitempty"`
	ConcurrentLimit        *int64         `json:"concurrent_limit,omitempty"`
	ConcurrencyTimeWindowS *int64         `json:"concurrency_time_window_s,omitempty"`
	ConcurrencyKey         *string        `json:"concurrency_key,omitempty"`
	CacheTTL               *float64       `json:"cache_ttl,omitempty"`
	DedicatedWorker        *bool          `json:"dedicated_worker,omitempty"`
	WsErrorHandlerMuted    *bool          `json:"ws_error_handler_muted,omitempty"`
	Priority               *int64         `json:"priority,omitempty"`
	RestartUnlessCancelled *bool          `json:"restart_unless_cancelled,omitempty"`
	Timeout                *int64         `json:"timeout,omitempty"`
	DeleteAfterUse         *bool          `json:"delete_after_use,omitempty"`
	VisibleToRunnerOnly    *bool          `json:"visible_to_runner_only,omitempty"`
	NoMainFunc             bool           `json:"no_main_func"`
	Codebase               *string        `json:"codebase,omitempty"`
	HasPreprocessor        bool           `json:"has_preprocessor"`
	OnBehalfOfEmail        *string        `json:"on_behalf_of_email,omitempty"`
}

// ScriptHistory is one entry of a script's version history.
type ScriptHistory struct {
	ScriptHash    string  `json:"script_hash"`
	DeploymentMsg *string `json:"deployment_msg,omitempty"`
}

// DeploymentStatus reports whether a script version's lock is resolved.
type DeploymentStatus struct {
	Lock          *string `json:"lock,omitempty"`
	LockErrorLogs *string `json:"lock_error_logs,omitempty"`
}

// NewDraft is the body of drafts/create.
type NewDraft struct {
	Path  string    `json:"path"`
	Typ   DraftKind `json:"typ"`
	Value any       `json:"value,omitempty"`
}

// ScriptListItem extends Script with listing-only metadata.
type ScriptListItem = Script

// MainArgSignature is the parsed signature of a script's main function.
type MainArgSignature struct {
	Type            MainArgSignatureType `json:"type"`
	Error           string               `json:"error"`
	StarArgs        bool                 `json:"star_args"`
	StarKwargs      *bool                `json:"star_kwargs,omitempty"`
	Args            []MainArg            `json:"args"`
	NoMainFunc      *bool                `json:"no_main_func"`
	HasPreprocessor *bool                `json:"has_preprocessor"`
}

// MainArg is one parameter of a main function. Typ keeps the externally
// tagged type description as raw JSON.
type MainArg struct {
	Name       string `json:"name"`
	Typ        any    `json:"typ"`
	HasDefault *bool  `json:"has_default,omitempty"`
	Default    any    `json:"default,omitempty"`
}
