package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// Login exchanges email and password for a session token.
func (c *Client) Login(ctx context.Context, body models.Login) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/auth/login", body: body, want: http.StatusOK})
}

// Logout invalidates the current session token.
func (c *Client) Logout(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/auth/logout", want: http.StatusOK})
}

// GetUser returns a workspace member by username.
func (c *Client) GetUser(ctx context.Context, workspace, username string) (models.User, error) {
	return doJSON[models.User](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/%s", username), want: http.StatusOK})
}

// UpdateUser edits a workspace member's role.
func (c *Client) UpdateUser(ctx context.Context, workspace, username string, body models.EditWorkspaceUser) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/users/update/%s", username), body: body, want: http.StatusOK})
}

// IsOwnerOfPath reports whether the caller owns path.
func (c *Client) IsOwnerOfPath(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/is_owner/%s", path), want: http.StatusOK})
}

// SetPassword changes the current user's password.
func (c *Client) SetPassword(ctx context.Context, password string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/setpassword", body: map[string]string{"password": password}, want: http.StatusOK})
}

// NewUser is the body of users/create.
type NewUser struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	SuperAdmin bool    `json:"super_admin"`
	Name       *string `json:"name,omitempty"`
	Company    *string `json:"company,omitempty"`
}

// CreateUserGlobally creates an instance-level account.
func (c *Client) CreateUserGlobally(ctx context.Context, body NewUser) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/create", body: body, want: http.StatusCreated})
}

// GlobalUserUpdate is the body of users/update.
type GlobalUserUpdate struct {
	IsSuperAdmin *bool   `json:"is_super_admin,omitempty"`
	IsDevops     *bool   `json:"is_devops,omitempty"`
	Name         *string `json:"name,omitempty"`
}

// GlobalUserUpdate edits an instance user.
func (c *Client) GlobalUserUpdate(ctx context.Context, email string, body GlobalUserUpdate) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/users/update/%s", email), body: body, want: http.StatusOK})
}

// UsernameInfo lists the workspace usernames an email is known by.
type UsernameInfo struct {
	Username string `json:"username"`
	Workspaces []struct {
		WorkspaceID string `json:"workspace_id"`
		Username    string `json:"username"`
	} `json:"workspace_usernames"`
}

// GlobalUsernameInfo returns where a username is used across workspaces.
func (c *Client) GlobalUsernameInfo(ctx context.Context, email string) (UsernameInfo, error) {
	return doJSON[UsernameInfo](ctx, c, request{method: http.MethodGet, path: pathf("/users/username_info/%s", email), want: http.StatusOK})
}

// GlobalUserRename renames an instance user everywhere.
func (c *Client) GlobalUserRename(ctx context.Context, email, newUsername string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   pathf("/users/rename/%s", email),
		body:   map[string]string{"new_username": newUsername},
		want:   http.StatusOK,
	})
}

// GlobalUserDelete deletes an instance user.
func (c *Client) GlobalUserDelete(ctx context.Context, email string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: pathf("/users/delete/%s", email), want: http.StatusOK})
}

// DeleteUser removes a member from a workspace.
func (c *Client) DeleteUser(ctx context.Context, workspace, username string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/users/delete/%s", username), want: http.StatusOK})
}

// GetCurrentEmail returns the email of the token owner.
func (c *Client) GetCurrentEmail(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/users/email", want: http.StatusOK})
}

// RefreshUserToken returns a fresh session token.
func (c *Client) RefreshUserToken(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/users/refresh_token", want: http.StatusOK})
}

// TutorialProgress is a bitmask of completed UI tutorials.
type TutorialProgress struct {
	Progress *int64 `json:"progress,omitempty"`
}

// GetTutorialProgress returns the tutorial progress bitmask.
func (c *Client) GetTutorialProgress(ctx context.Context) (TutorialProgress, error) {
	return doJSON[TutorialProgress](ctx, c, request{method: http.MethodGet, path: "/users/tutorial_progress", want: http.StatusOK})
}

// UpdateTutorialProgress stores the tutorial progress bitmask.
func (c *Client) UpdateTutorialProgress(ctx context.Context, body TutorialProgress) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/tutorial_progress", body: body, want: http.StatusOK})
}

// LeaveInstance removes the current user from the instance.
func (c *Client) LeaveInstance(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/leave_instance", want: http.StatusOK})
}

// GetUsage returns the caller's execution usage in seconds.
func (c *Client) GetUsage(ctx context.Context) (float64, error) {
	return doJSON[float64](ctx, c, request{method: http.MethodGet, path: "/users/usage", want: http.StatusOK})
}

// AllRunnables is a runnable the caller can run in any workspace.
type AllRunnables struct {
	Workspace    string `json:"workspace"`
	EndUserEmail string `json:"endUserEmail"`
	Path         string `json:"path"`
	IsFlow       bool   `json:"isFlow"`
}

// GetRunnable returns the runnable behind a hub or workspace path.
func (c *Client) GetRunnable(ctx context.Context) (AllRunnables, error) {
	return doJSON[AllRunnables](ctx, c, request{method: http.MethodGet, path: "/users/all_runnables", want: http.StatusOK})
}

// GlobalWhoami returns the caller's instance account.
func (c *Client) GlobalWhoami(ctx context.Context) (models.GlobalUserInfo, error) {
	return doJSON[models.GlobalUserInfo](ctx, c, request{method: http.MethodGet, path: "/users/whoami", want: http.StatusOK})
}

// ListWorkspaceInvites lists pending invites of the current user.
func (c *Client) ListWorkspaceInvites(ctx context.Context) ([]models.WorkspaceInvite, error) {
	return doJSON[[]models.WorkspaceInvite](ctx, c, request{method: http.MethodGet, path: "/users/list_invites", want: http.StatusOK})
}

// Whoami returns the caller as a member of workspace.
func (c *Client) Whoami(ctx context.Context, workspace string) (models.User, error) {
	return doJSON[models.User](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/whoami"), want: http.StatusOK})
}

// AcceptInvite is the body of users/accept_invite.
type AcceptInvite struct {
	WorkspaceID string  `json:"workspace_id"`
	Username    *string `json:"username,omitempty"`
}

// AcceptInvite joins the workspace of an invite.
func (c *Client) AcceptInvite(ctx context.Context, body AcceptInvite) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/accept_invite", body: body, want: http.StatusOK})
}

// DeclineInvite refuses an invite.
func (c *Client) DeclineInvite(ctx context.Context, workspaceID string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   "/users/decline_invite",
		body:   map[string]string{"workspace_id": workspaceID},
		want:   http.StatusOK,
	})
}

// Whois fetches a workspace member by username.
func (c *Client) Whois(ctx context.Context, workspace, username string) (models.User, error) {
	return doJSON[models.User](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/whois/%s", username), want: http.StatusOK})
}

// ExistsEmail reports whether an account uses email.
func (c *Client) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: pathf("/users/exists/%s", email), want: http.StatusOK})
}

// ListUsersAsSuperAdmin lists every instance user.
func (c *Client) ListUsersAsSuperAdmin(ctx context.Context, p Pagination) ([]models.GlobalUserInfo, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.GlobalUserInfo](ctx, c, request{method: http.MethodGet, path: "/users/list_as_super_admin", query: q, want: http.StatusOK})
}

// ListUsers lists workspace members.
func (c *Client) ListUsers(ctx context.Context, workspace string) ([]models.User, error) {
	return doJSON[[]models.User](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/list"), want: http.StatusOK})
}

// ListUsersUsage returns per-user execution time.
func (c *Client) ListUsersUsage(ctx context.Context, workspace string) ([]models.UserUsage, error) {
	return doJSON[[]models.UserUsage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/list_usage"), want: http.StatusOK})
}

// ListUsernames returns member usernames only.
func (c *Client) ListUsernames(ctx context.Context, workspace string) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/users/list_usernames"), want: http.StatusOK})
}

// CreateToken returns a new personal token in clear. It is shown only once.
func (c *Client) CreateToken(ctx context.Context, body models.NewToken) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/tokens/create", body: body, want: http.StatusCreated})
}

// CreateTokenImpersonate creates a token acting as another user.
func (c *Client) CreateTokenImpersonate(ctx context.Context, body models.NewTokenImpersonate) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/users/tokens/impersonate", body: body, want: http.StatusCreated})
}

// DeleteToken revokes a token by prefix.
func (c *Client) DeleteToken(ctx context.Context, tokenPrefix string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: pathf("/users/tokens/delete/%s", tokenPrefix), want: http.StatusOK})
}

// ListTokens lists the current user's tokens.
func (c *Client) ListTokens(ctx context.Context, excludeEphemeral *bool) ([]models.TruncatedToken, error) {
	q := url.Values{}
	addParam(q, "exclude_ephemeral", excludeEphemeral)
	return doJSON[[]models.TruncatedToken](ctx, c, request{method: http.MethodGet, path: "/users/tokens/list", query: q, want: http.StatusOK})
}

// OAuthCallback carries the code/state pair returned by an OAuth provider.
type OAuthCallback struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// LoginWithOAuth completes an OAuth login for clientName.
func (c *Client) LoginWithOAuth(ctx context.Context, clientName string, body OAuthCallback) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/oauth/login_callback/%s", clientName), body: body, want: http.StatusOK})
}

// TokenResponse is returned by an OAuth connect callback.
type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	ExpiresIn    *int64   `json:"expires_in,omitempty"`
	RefreshToken *string  `json:"refresh_token,omitempty"`
	Scope        []string `json:"scope,omitempty"`
}

// ConnectCallback completes an OAuth connection.
func (c *Client) ConnectCallback(ctx context.Context, clientName string, body OAuthCallback) (TokenResponse, error) {
	return doJSON[TokenResponse](ctx, c, request{method: http.MethodPost, path: pathf("/oauth/connect_callback/%s", clientName), body: body, want: http.StatusOK})
}

// ConnectSlackCallback completes the Slack connection of a workspace.
func (c *Client) ConnectSlackCallback(ctx context.Context, workspace string, body OAuthCallback) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/oauth/connect_slack_callback"), body: body, want: http.StatusOK})
}

// CreateAccount is the body of oauth/create_account.
type CreateAccount struct {
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Client       string `json:"client"`
}

// CreateAccount stores an OAuth account.
func (c *Client) CreateAccount(ctx context.Context, workspace string, body CreateAccount) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/oauth/create_account"), body: body, want: http.StatusOK})
}

// RefreshOAuthToken refreshes the token of an OAuth account.
func (c *Client) RefreshOAuthToken(ctx context.Context, workspace string, id int64, path string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/oauth/refresh_token/%s", id),
		body:   map[string]string{"path": path},
		want:   http.StatusOK,
	})
}

// DisconnectAccount removes an OAuth account.
func (c *Client) DisconnectAccount(ctx context.Context, workspace string, id int64) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/oauth/disconnect/%s", id), want: http.StatusOK})
}

// DisconnectSlack removes the Slack connection of a workspace.
func (c *Client) DisconnectSlack(ctx context.Context, workspace string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/oauth/disconnect_slack"), want: http.StatusOK})
}

// OAuthLogins lists the OAuth and SAML login options the instance offers.
type OAuthLogins struct {
	OAuth []string `json:"oauth"`
	Saml  *string  `json:"saml,omitempty"`
}

// ListOAuthLogins lists the OAuth providers enabled for login.
func (c *Client) ListOAuthLogins(ctx context.Context) (OAuthLogins, error) {
	return doJSON[OAuthLogins](ctx, c, request{method: http.MethodGet, path: "/oauth/list_logins", want: http.StatusOK})
}

// ListOAuthConnects lists the OAuth providers enabled for resources.
func (c *Client) ListOAuthConnects(ctx context.Context) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: "/oauth/list_connects", want: http.StatusOK})
}
