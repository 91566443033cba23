package client

import (
	"context"
	"net/http"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// HubApp is an app summary from the public hub.
type HubApp struct {
	ID       int64    `json:"id"`
	AppID    int64    `json:"app_id"`
	Summary  string   `json:"summary"`
	Apps     []string `json:"apps"`
	Approved bool     `json:"approved"`
	Votes    int64    `json:"votes"`
}

type hubApps struct {
	Apps []HubApp `json:"apps"`
}

// ListHubApps lists apps published on the Windmill hub.
func (c *Client) ListHubApps(ctx context.Context) ([]HubApp, error) {
	out, err := doJSON[hubApps](ctx, c, request{method: http.MethodGet, path: "/apps/hub/list", want: http.StatusOK})
	return out.Apps, err
}

// HubAppDetail is a hub app with its definition.
type HubAppDetail struct {
	App struct {
		Summary string `json:"summary"`
		Value   any    `json:"value"`
	} `json:"app"`
}

// GetHubAppByID fetches one hub app.
func (c *Client) GetHubAppByID(ctx context.Context, id int64) (HubAppDetail, error) {
	return doJSON[HubAppDetail](ctx, c, request{method: http.MethodGet, path: pathf("/apps/hub/get/%s", id), want: http.StatusOK})
}

// ListSearchApp returns every app with its value, for full-text search.
func (c *Client) ListSearchApp(ctx context.Context, workspace string) ([]PathValue, error) {
	return doJSON[[]PathValue](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/list_search"), want: http.StatusOK})
}

// ListApps lists the apps of a workspace.
func (c *Client) ListApps(ctx context.Context, workspace string, p ListItemsParams) ([]models.ListableApp, error) {
	return doJSON[[]models.ListableApp](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/list"), query: p.query(), want: http.StatusOK})
}

// CreateApp creates an app and returns its path.
func (c *Client) CreateApp(ctx context.Context, workspace string, body models.CreateApp) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/apps/create"), body: body, want: http.StatusCreated})
}

// ExistsApp reports whether an app exists at path.
func (c *Client) ExistsApp(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/exists/%s", path), want: http.StatusOK})
}

// GetAppByPath fetches the deployed version of an app.
func (c *Client) GetAppByPath(ctx context.Context, workspace, path string) (models.AppWithLastVersion, error) {
	return doJSON[models.AppWithLastVersion](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/get/p/%s", path), want: http.StatusOK})
}

// AppWithDraft is an app with its pending draft.
type AppWithDraft struct {
	models.AppWithLastVersion
	Draft     any   `json:"draft,omitempty"`
	DraftOnly *bool `json:"draft_only,omitempty"`
}

// GetAppByPathWithDraft fetches an app together with its unpublished draft.
func (c *Client) GetAppByPathWithDraft(ctx context.Context, workspace, path string) (AppWithDraft, error) {
	return doJSON[AppWithDraft](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/get/draft/%s", path), want: http.StatusOK})
}

// GetAppHistoryByPath lists the deployed versions of an app.
func (c *Client) GetAppHistoryByPath(ctx context.Context, workspace, path string) ([]models.AppHistory, error) {
	return doJSON[[]models.AppHistory](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/history/p/%s", path), want: http.StatusOK})
}

// UpdateAppHistory changes the deployment message of one app version.
func (c *Client) UpdateAppHistory(ctx context.Context, workspace string, id, version int64, deploymentMsg *string) (string, error) {
	body := map[string]any{}
	if deploymentMsg != nil {
		body["deployment_msg"] = *deploymentMsg
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/apps/history_update/a/%s/v/%s", id, version), body: body, want: http.StatusOK})
}

// GetPublicAppBySecret fetches a public app by its share secret.
func (c *Client) GetPublicAppBySecret(ctx context.Context, workspace, path string) (models.AppWithLastVersion, error) {
	return doJSON[models.AppWithLastVersion](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps_u/public_app/%s", path), want: http.StatusOK})
}

// GetPublicResource reads a resource exposed to public apps.
func (c *Client) GetPublicResource(ctx context.Context, workspace, path string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps_u/public_resource/%s", path), want: http.StatusOK})
}

// GetPublicSecretOfApp returns the share secret of an app.
func (c *Client) GetPublicSecretOfApp(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/apps/secret_of/%s", path), want: http.StatusOK})
}

// GetAppByVersion fetches one version of an app by id.
func (c *Client) GetAppByVersion(ctx context.Context, workspace string, id int64) (models.AppWithLastVersion, error) {
	return doJSON[models.AppWithLastVersion](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/apps/get/v/%s", id), want: http.StatusOK})
}

// DeleteApp deletes an app.
func (c *Client) DeleteApp(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/apps/delete/%s", path), want: http.StatusOK})
}

// UpdateApp deploys a new version of an app.
func (c *Client) UpdateApp(ctx context.Context, workspace, path string, body models.EditApp) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/apps/update/%s", path), body: body, want: http.StatusOK})
}

// ExecuteComponent is the body of apps_u/execute_component.
type ExecuteComponent struct {
	Component               string            `json:"component"`
	Path                    *string           `json:"path,omitempty"`
	Args                    models.ScriptArgs `json:"args"`
	RawCode                 map[string]any    `json:"raw_code,omitempty"`
	ForceViewerStaticFields map[string]any    `json:"force_viewer_static_fields,omitempty"`
}

// ExecuteComponent runs the backend of an app component and returns the job id.
func (c *Client) ExecuteComponent(ctx context.Context, workspace, path string, body ExecuteComponent) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/apps_u/execute_component/%s", path), body: body, want: http.StatusOK})
}

// ListableRawApp is a raw (code-first) app as returned by list.
type ListableRawApp struct {
	WorkspaceID string            `json:"workspace_id"`
	Path        string            `json:"path"`
	Summary     string            `json:"summary"`
	ExtraPerms  models.ExtraPerms `json:"extra_perms"`
	Starred     bool              `json:"starred"`
	Version     float64           `json:"version"`
	EditedAt    string            `json:"edited_at"`
}

// ListRawApps lists raw (code-only) apps.
func (c *Client) ListRawApps(ctx context.Context, workspace string, p ListItemsParams) ([]ListableRawApp, error) {
	return doJSON[[]ListableRawApp](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/raw_apps/list"), query: p.query(), want: http.StatusOK})
}

// ExistsRawApp reports whether a raw app exists at path.
func (c *Client) ExistsRawApp(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/raw_apps/exists/%s", path), want: http.StatusOK})
}

// GetRawAppData returns the bundled source of a raw app version.
func (c *Client) GetRawAppData(ctx context.Context, workspace string, version int64, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/apps/get_data/%s/%s", version, path), want: http.StatusOK})
}

// RawApp is the body of raw app create and update.
type RawApp struct {
	Path    *string `json:"path,omitempty"`
	Value   *string `json:"value,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// CreateRawApp creates a raw app.
func (c *Client) CreateRawApp(ctx context.Context, workspace string, body RawApp) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/raw_apps/create"), body: body, want: http.StatusCreated})
}

// UpdateRawApp replaces the content of a raw app.
func (c *Client) UpdateRawApp(ctx context.Context, workspace, path string, body RawApp) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/raw_apps/update/%s", path), body: body, want: http.StatusOK})
}

// DeleteRawApp deletes a raw app.
func (c *Client) DeleteRawApp(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/raw_apps/delete/%s", path), want: http.StatusOK})
}
