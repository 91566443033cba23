package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ListWorkspaces lists the workspaces of the current user.
func (c *Client) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return doJSON[[]models.Workspace](ctx, c, request{method: http.MethodGet, path: "/workspaces/list", want: http.StatusOK})
}

// IsDomainAllowed reports whether the user's email domain may auto-join.
func (c *Client) IsDomainAllowed(ctx context.Context) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: "/workspaces/allowed_domain_auto_invite", want: http.StatusOK})
}

// ListUserWorkspaces returns every workspace the caller belongs to.
func (c *Client) ListUserWorkspaces(ctx context.Context) (models.UserWorkspaceList, error) {
	return doJSON[models.UserWorkspaceList](ctx, c, request{method: http.MethodGet, path: "/workspaces/users", want: http.StatusOK})
}

// ListWorkspacesAsSuperAdmin lists every workspace of the instance.
func (c *Client) ListWorkspacesAsSuperAdmin(ctx context.Context, p Pagination) ([]models.Workspace, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.Workspace](ctx, c, request{method: http.MethodGet, path: "/workspaces/list_as_superadmin", query: q, want: http.StatusOK})
}

// CreateWorkspace creates a workspace and returns its id.
func (c *Client) CreateWorkspace(ctx context.Context, body models.CreateWorkspace) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/workspaces/create", body: body, want: http.StatusCreated})
}

// ExistsWorkspace reports whether a workspace id is taken.
func (c *Client) ExistsWorkspace(ctx context.Context, id string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodPost, path: "/workspaces/exists", body: map[string]string{"id": id}, want: http.StatusOK})
}

// ExistsUsername reports whether a username is taken in a workspace.
func (c *Client) ExistsUsername(ctx context.Context, id, username string) (bool, error) {
	return doJSON[bool](ctx, c, request{
		method: http.MethodPost,
		path:   "/workspaces/exists_username",
		body:   map[string]string{"id": id, "username": username},
		want:   http.StatusOK,
	})
}

// InviteUser invites an email to the workspace.
func (c *Client) InviteUser(ctx context.Context, workspace string, body models.InviteUser) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/invite_user"), body: body, want: http.StatusOK})
}

// AddUser adds an existing account to the workspace.
func (c *Client) AddUser(ctx context.Context, workspace string, body models.AddUser) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/add_user"), body: body, want: http.StatusOK})
}

// DeleteInvite withdraws an invite.
func (c *Client) DeleteInvite(ctx context.Context, workspace string, body models.DeleteInvite) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/delete_invite"), body: body, want: http.StatusOK})
}

// ArchiveWorkspace archives the workspace.
func (c *Client) ArchiveWorkspace(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/archive"), want: http.StatusOK})
}

// UnarchiveWorkspace restores an archived workspace.
func (c *Client) UnarchiveWorkspace(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/workspaces/unarchive/%s", workspace), want: http.StatusOK})
}

// DeleteWorkspace deletes the workspace and everything in it.
func (c *Client) DeleteWorkspace(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: pathf("/workspaces/delete/%s", workspace), want: http.StatusOK})
}

// LeaveWorkspace removes the current user from the workspace.
func (c *Client) LeaveWorkspace(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/leave"), want: http.StatusOK})
}

// GetWorkspaceName returns the display name of the workspace.
func (c *Client) GetWorkspaceName(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/get_workspace_name"), want: http.StatusOK})
}

// ChangeWorkspaceName renames the workspace.
func (c *Client) ChangeWorkspaceName(ctx context.Context, workspace string, body models.ChangeWorkspaceName) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/change_workspace_name"), body: body, want: http.StatusOK})
}

// ChangeWorkspaceID renames the workspace identifier itself.
func (c *Client) ChangeWorkspaceID(ctx context.Context, workspace, newID, newName string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/workspaces/change_workspace_id"),
		body:   map[string]string{"new_id": newID, "new_name": newName},
		want:   http.StatusOK,
	})
}

// ListPendingInvites lists invites not yet accepted.
func (c *Client) ListPendingInvites(ctx context.Context, workspace string) ([]models.WorkspaceInvite, error) {
	return doJSON[[]models.WorkspaceInvite](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/list_pending_invites"), want: http.StatusOK})
}

// GetSettings returns the workspace settings.
func (c *Client) GetSettings(ctx context.Context, workspace string) (models.WorkspaceSettings, error) {
	return doJSON[models.WorkspaceSettings](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/get_settings"), want: http.StatusOK})
}

// GetDeployTo returns the workspace that deployments are promoted to.
func (c *Client) GetDeployTo(ctx context.Context, workspace string) (models.EditDeployTo, error) {
	return doJSON[models.EditDeployTo](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/get_deploy_to"), want: http.StatusOK})
}

// GetIsPremium reports whether the workspace is on a paid plan.
func (c *Client) GetIsPremium(ctx context.Context, workspace string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/is_premium"), want: http.StatusOK})
}

// PremiumInfo is the billing state of a workspace.
type PremiumInfo struct {
	Premium          bool     `json:"premium"`
	Usage            *float64 `json:"usage,omitempty"`
	Seats            *float64 `json:"seats,omitempty"`
	AutomaticBilling bool     `json:"automatic_billing"`
}

// GetPremiumInfo returns plan and usage of the workspace.
func (c *Client) GetPremiumInfo(ctx context.Context, workspace string) (PremiumInfo, error) {
	return doJSON[PremiumInfo](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/premium_info"), want: http.StatusOK})
}

// SetAutomaticBilling configures automatic plan upgrades.
func (c *Client) SetAutomaticBilling(ctx context.Context, workspace string, automaticBilling bool, seats *float64) (string, error) {
	body := map[string]any{"automatic_billing": automaticBilling}
	if seats != nil {
		body["seats"] = *seats
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/set_automatic_billing"), body: body, want: http.StatusOK})
}

// EditSlackCommand sets the script run by the Slack command.
func (c *Client) EditSlackCommand(ctx context.Context, workspace string, slackCommandScript *string) (string, error) {
	body := map[string]any{}
	if slackCommandScript != nil {
		body["slack_command_script"] = *slackCommandScript
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_slack_command"), body: body, want: http.StatusOK})
}

// SlackTestJob is the body of run_slack_message_test_job.
type SlackTestJob struct {
	HubScriptPath *string `json:"hub_script_path,omitempty"`
	Channel       *string `json:"channel,omitempty"`
	TestMsg       *string `json:"test_msg,omitempty"`
}

// RunSlackMessageTestJob sends a test message through the Slack command script.
func (c *Client) RunSlackMessageTestJob(ctx context.Context, workspace string, body SlackTestJob) (map[string]any, error) {
	return doJSON[map[string]any](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/run_slack_message_test_job"), body: body, want: http.StatusOK})
}

// EditDeployTo sets the workspace that deployments are promoted to.
func (c *Client) EditDeployTo(ctx context.Context, workspace string, body models.EditDeployTo) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_deploy_to"), body: body, want: http.StatusOK})
}

// EditAutoInvite is the body of edit_auto_invite.
type EditAutoInvite struct {
	Operator  *bool `json:"operator,omitempty"`
	InviteAll *bool `json:"invite_all,omitempty"`
	AutoAdd   *bool `json:"auto_add,omitempty"`
}

// EditAutoInvite configures domain-based auto invites.
func (c *Client) EditAutoInvite(ctx context.Context, workspace string, body EditAutoInvite) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_auto_invite"), body: body, want: http.StatusOK})
}

// EditWebhook sets the webhook called on workspace changes.
func (c *Client) EditWebhook(ctx context.Context, workspace string, webhook *string) (string, error) {
	body := map[string]any{}
	if webhook != nil {
		body["webhook"] = *webhook
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_webhook"), body: body, want: http.StatusOK})
}

// EditCopilotConfig configures the AI assistant.
func (c *Client) EditCopilotConfig(ctx context.Context, workspace string, body models.AIConfig) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_copilot_config"), body: body, want: http.StatusOK})
}

// GetCopilotInfo returns the AI assistant configuration.
func (c *Client) GetCopilotInfo(ctx context.Context, workspace string) (models.AIConfig, error) {
	return doJSON[models.AIConfig](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/get_copilot_info"), want: http.StatusOK})
}

// EditErrorHandler sets the workspace error handler.
func (c *Client) EditErrorHandler(ctx context.Context, workspace string, body models.EditErrorHandler) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_error_handler"), body: body, want: http.StatusOK})
}

// EditLargeFileStorageConfig configures the workspace object storage.
func (c *Client) EditLargeFileStorageConfig(ctx context.Context, workspace string, body models.EditLargeFileStorageConfig) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_large_file_storage_config"), body: body, want: http.StatusOK})
}

// EditWorkspaceGitSyncConfig configures git sync.
func (c *Client) EditWorkspaceGitSyncConfig(ctx context.Context, workspace string, body models.EditGitSyncConfig) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_git_sync_config"), body: body, want: http.StatusOK})
}

// EditWorkspaceDefaultApp sets the app shown to operators on login.
func (c *Client) EditWorkspaceDefaultApp(ctx context.Context, workspace string, defaultAppPath *string) (string, error) {
	body := map[string]any{}
	if defaultAppPath != nil {
		body["default_app_path"] = *defaultAppPath
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/edit_default_app"), body: body, want: http.StatusOK})
}

// EditDefaultScripts sets the scripts suggested in the editor.
func (c *Client) EditDefaultScripts(ctx context.Context, workspace string, body models.WorkspaceDefaultScripts) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/default_scripts"), body: body, want: http.StatusOK})
}

// GetDefaultScripts returns the scripts suggested in the editor.
func (c *Client) GetDefaultScripts(ctx context.Context, workspace string) (models.WorkspaceDefaultScripts, error) {
	return doJSON[models.WorkspaceDefaultScripts](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/default_scripts"), want: http.StatusOK})
}

// SetEnvironmentVariable sets name, or clears it when value is nil.
func (c *Client) SetEnvironmentVariable(ctx context.Context, workspace, name string, value *string) (string, error) {
	body := map[string]any{"name": name}
	if value != nil {
		body["value"] = *value
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/set_environment_variable"), body: body, want: http.StatusOK})
}

// WorkspaceEncryptionKey holds the key secrets of a workspace are sealed with.
type WorkspaceEncryptionKey struct {
	Key string `json:"key"`
}

// GetWorkspaceEncryptionKey returns the key secrets are encrypted with.
func (c *Client) GetWorkspaceEncryptionKey(ctx context.Context, workspace string) (WorkspaceEncryptionKey, error) {
	return doJSON[WorkspaceEncryptionKey](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/encryption_key"), want: http.StatusOK})
}

// SetWorkspaceEncryptionKey rotates the key secrets are encrypted with.
func (c *Client) SetWorkspaceEncryptionKey(ctx context.Context, workspace, newKey string, skipReencrypt *bool) (string, error) {
	body := map[string]any{"new_key": newKey}
	if skipReencrypt != nil {
		body["skip_reencrypt"] = *skipReencrypt
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/workspaces/encryption_key"), body: body, want: http.StatusOK})
}

// DefaultApp is the app shown on a workspace's home page.
type DefaultApp struct {
	DefaultAppPath *string `json:"default_app_path,omitempty"`
}

// GetWorkspaceDefaultApp returns the app shown to operators on login.
func (c *Client) GetWorkspaceDefaultApp(ctx context.Context, workspace string) (DefaultApp, error) {
	return doJSON[DefaultApp](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/default_app"), want: http.StatusOK})
}

// GetLargeFileStorageConfig returns the workspace object storage configuration.
func (c *Client) GetLargeFileStorageConfig(ctx context.Context, workspace string) (models.LargeFileStorage, error) {
	return doJSON[models.LargeFileStorage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/get_large_file_storage_config"), want: http.StatusOK})
}

// GetWorkspaceUsage returns the execution time used this month.
func (c *Client) GetWorkspaceUsage(ctx context.Context, workspace string) (float64, error) {
	return doJSON[float64](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/workspaces/usage"), want: http.StatusOK})
}
