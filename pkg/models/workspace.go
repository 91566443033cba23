package models

import "encoding/json"

// Workspace is a tenant of a Windmill instance.
type Workspace struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Owner  string  `json:"owner"`
	Domain *string `json:"domain,omitempty"`
	Color  *string `json:"color,omitempty"`
}

// CreateWorkspace is the body of workspaces/create.
type CreateWorkspace struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username *string `json:"username,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// UserWorkspace is a workspace as seen by the calling user.
type UserWorkspace struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Color    *string `json:"color,omitempty"`
	Operator *bool   `json:"operator,omitempty"`
	Disabled *bool   `json:"disabled,omitempty"`
}

// UserWorkspaceList is the answer of workspaces/users.
type UserWorkspaceList struct {
	Email      string          `json:"email"`
	Workspaces []UserWorkspace `json:"workspaces"`
}

// WorkspaceDefaultScripts lists the scripts pinned in the workspace home.
type WorkspaceDefaultScripts struct {
	Order                []string          `json:"order,omitempty"`
	Hidden               []string          `json:"hidden,omitempty"`
	DefaultScriptContent map[string]string `json:"default_script_content,omitempty"`
}

// LargeFileStorage is the workspace object-storage configuration.
type LargeFileStorage struct {
	Type                  *LargeFileStorageType `json:"type,omitempty"`
	S3ResourcePath        *string               `json:"s3_resource_path,omitempty"`
	AzureBlobResourcePath *string               `json:"azure_blob_resource_path,omitempty"`
	PublicResource        *bool                 `json:"public_resource,omitempty"`
	SecondaryStorage      map[string]any        `json:"secondary_storage,omitempty"`
}

// GitRepositorySettings is one repository synced with the workspace.
type GitRepositorySettings struct {
	ScriptPath           string              `json:"script_path"`
	GitRepoResourcePath  string              `json:"git_repo_resource_path"`
	UseIndividualBranch  *bool               `json:"use_individual_branch,omitempty"`
	GroupByFolder        *bool               `json:"group_by_folder,omitempty"`
	ExcludeTypesOverride []GitSyncObjectType `json:"exclude_types_override,omitempty"`
}

// WorkspaceGitSyncSettings is the git sync configuration of a workspace.
type WorkspaceGitSyncSettings struct {
	IncludePath  []string                `json:"include_path,omitempty"`
	IncludeType  []GitSyncObjectType     `json:"include_type,omitempty"`
	Repositories []GitRepositorySettings `json:"repositories,omitempty"`
}

// WorkspaceDeployUISettings restricts what the deploy UI may promote.
type WorkspaceDeployUISettings struct {
	IncludePath []string             `json:"include_path,omitempty"`
	IncludeType []DeployUIObjectType `json:"include_type,omitempty"`
}

// WorkspaceSettings is the answer of workspaces/get_settings.
type WorkspaceSettings struct {
	WorkspaceID               *string                    `json:"workspace_id,omitempty"`
	SlackName                 *string                    `json:"slack_name,omitempty"`
	SlackTeamID               *string                    `json:"slack_team_id,omitempty"`
	SlackCommandScript        *string                    `json:"slack_command_script,omitempty"`
	AutoInviteDomain          *string                    `json:"auto_invite_domain,omitempty"`
	AutoInviteOperator        *bool                      `json:"auto_invite_operator,omitempty"`
	AutoAdd                   *bool                      `json:"auto_add,omitempty"`
	Plan                      *string                    `json:"plan,omitempty"`
	Customer                  *string                    `json:"customer,omitempty"`
	Webhook                   *string                    `json:"webhook,omitempty"`
	DeployTo                  *string                    `json:"deploy_to,omitempty"`
	AIConfig                  *AIConfig                  `json:"ai_config,omitempty"`
	ErrorHandler              *string                    `json:"error_handler,omitempty"`
	ErrorHandlerExtraArgs     ScriptArgs                 `json:"error_handler_extra_args,omitempty"`
	ErrorHandlerMutedOnCancel bool                       `json:"error_handler_muted_on_cancel"`
	LargeFileStorage          *LargeFileStorage          `json:"large_file_storage,omitempty"`
	GitSync                   *WorkspaceGitSyncSettings  `json:"git_sync,omitempty"`
	DeployUI                  *WorkspaceDeployUISettings `json:"deploy_ui,omitempty"`
	DefaultApp                *string                    `json:"default_app,omitempty"`
	DefaultScripts            *WorkspaceDefaultScripts   `json:"default_scripts,omitempty"`
	MuteCriticalAlerts        *bool                      `json:"mute_critical_alerts,omitempty"`
	Color                     *string                    `json:"color,omitempty"`
	OperatorSettings          map[string]bool            `json:"operator_settings,omitempty"`
}

// AIConfig selects the AI providers of a workspace.
type AIConfig struct {
	Providers           map[AIProvider]AIProviderConfig `json:"providers,omitempty"`
	DefaultModel        *AIProviderModel                `json:"default_model,omitempty"`
	CodeCompletionModel *AIProviderModel                `json:"code_completion_model,omitempty"`
}

type AIProviderConfig struct {
	ResourcePath string   `json:"resource_path"`
	Models       []string `json:"models"`
}

func (c AIProviderConfig) MarshalJSON() ([]byte, error) {
	type alias AIProviderConfig
	c.Models = orEmpty(c.Models)
	return json.Marshal(alias(c))
}

type AIProviderModel struct {
	Model    string     `json:"model"`
	Provider AIProvider `json:"provider"`
}

// EditErrorHandler sets the workspace error handler.
type EditErrorHandler struct {
	ErrorHandler              *string    `json:"error_handler,omitempty"`
	ErrorHandlerExtraArgs     ScriptArgs `json:"error_handler_extra_args,omitempty"`
	ErrorHandlerMutedOnCancel *bool      `json:"error_handler_muted_on_cancel,omitempty"`
}

// EditDeployTo sets the workspace a deployment promotes to.
type EditDeployTo struct {
	DeployTo *string `json:"deploy_to,omitempty"`
}

// EditLargeFileStorageConfig wraps LargeFileStorage for its update endpoint.
type EditLargeFileStorageConfig struct {
	LargeFileStorage *LargeFileStorage `json:"large_file_storage,omitempty"`
}

// EditGitSyncConfig wraps WorkspaceGitSyncSettings for its update endpoint.
type EditGitSyncConfig struct {
	GitSyncSettings *WorkspaceGitSyncSettings `json:"git_sync_settings,omitempty"`
}

// ChangeWorkspaceName renames a workspace.
type ChangeWorkspaceName struct {
	NewName *string `json:"new_name,omitempty"`
}

// ChangeWorkspaceColor recolors a workspace.
type ChangeWorkspaceColor struct {
	Color *string `json:"color,omitempty"`
}
