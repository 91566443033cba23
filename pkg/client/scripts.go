package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ListScriptsParams filters ListScripts.
type ListScriptsParams struct {
	ListItemsParams
	FirstParentHash *string
	LastParentHash  *string
	ParentHash      *string
	ShowArchived    *bool
	IsTemplate      *bool
	HideWithoutMain *bool
	Kinds           []models.ScriptKind
}

// HubScriptFull is a hub script with its content and lock.
type HubScriptFull struct {
	Content  string  `json:"content"`
	LockFile *string `json:"lockfile,omitempty"`
	Schema   any     `json:"schema,omitempty"`
	Language string  `json:"language"`
	Summary  *string `json:"summary,omitempty"`
}

// HubScript is a hub search result.
type HubScript struct {
	ID      int64   `json:"id"`
	AskID   int64   `json:"ask_id"`
	Summary string  `json:"summary"`
	App     string  `json:"app"`
	Version int64   `json:"version_id"`
	Kind    string  `json:"kind"`
	Votes   int64   `json:"votes"`
	Views   int64   `json:"views"`
	Path    string  `json:"path"`
	Score   float64 `json:"score,omitempty"`
}

type hubAsks struct {
	Asks []HubScript `json:"asks"`
}

// HubScriptsParams filters hub script listings.
type HubScriptsParams struct {
	Limit *int64
	App   *string
	Kind  *string
}

func (p HubScriptsParams) query() url.Values {
	q := url.Values{}
	addParam(q, "limit", p.Limit)
	addParam(q, "app", p.App)
	addParam(q, "kind", p.Kind)
	return q
}

// GetHubScriptContentByPath returns the source of a hub script.
func (c *Client) GetHubScriptContentByPath(ctx context.Context, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: pathf("/scripts/hub/get/%s", path), want: http.StatusOK})
}

// GetHubScriptByPath fetches a hub script with its content.
func (c *Client) GetHubScriptByPath(ctx context.Context, path string) (HubScriptFull, error) {
	return doJSON[HubScriptFull](ctx, c, request{method: http.MethodGet, path: pathf("/scripts/hub/get_full/%s", path), want: http.StatusOK})
}

// GetTopHubScripts lists the most used hub scripts.
func (c *Client) GetTopHubScripts(ctx context.Context, p HubScriptsParams) ([]HubScript, error) {
	out, err := doJSON[hubAsks](ctx, c, request{method: http.MethodGet, path: "/scripts/hub/top", query: p.query(), want: http.StatusOK})
	return out.Asks, err
}

// QueryHubScripts searches hub scripts by embedding similarity.
func (c *Client) QueryHubScripts(ctx context.Context, text string, p HubScriptsParams) ([]HubScript, error) {
	q := p.query()
	q.Set("text", text)
	return doJSON[[]HubScript](ctx, c, request{method: http.MethodGet, path: "/embeddings/query_hub_scripts", query: q, want: http.StatusOK})
}

// ListSearchScript returns every script with its content, for full-text search.
func (c *Client) ListSearchScript(ctx context.Context, workspace string) ([]PathValue, error) {
	return doJSON[[]PathValue](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/list_search"), want: http.StatusOK})
}

// ListScripts lists scripts matching p.
func (c *Client) ListScripts(ctx context.Context, workspace string, p ListScriptsParams) ([]models.Script, error) {
	q := p.query()
	addParam(q, "first_parent_hash", p.FirstParentHash)
	addParam(q, "last_parent_hash", p.LastParentHash)
	addParam(q, "parent_hash", p.ParentHash)
	addParam(q, "show_archived", p.ShowArchived)
	addParam(q, "is_template", p.IsTemplate)
	addParam(q, "hide_without_main", p.HideWithoutMain)
	addList(q, "kinds", p.Kinds)
	return doJSON[[]models.Script](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/list"), query: q, want: http.StatusOK})
}

// ListScriptPaths lists the paths of every script in the workspace.
func (c *Client) ListScriptPaths(ctx context.Context, workspace string) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/list_paths"), want: http.StatusOK})
}

// CreateScript deploys a new script version and returns its hash.
func (c *Client) CreateScript(ctx context.Context, workspace string, body models.NewScript) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/scripts/create"), body: body, want: http.StatusCreated})
}

// ToggleWorkspaceErrorHandlerForScript mutes or unmutes the workspace error handler for a script.
func (c *Client) ToggleWorkspaceErrorHandlerForScript(ctx context.Context, workspace, path string, body ToggleWorkspaceErrorHandler) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/scripts/toggle_workspace_error_handler/p/%s", path), body: body, want: http.StatusOK})
}

// ArchiveScriptByPath archives every version of a script.
func (c *Client) ArchiveScriptByPath(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/scripts/archive/p/%s", path), want: http.StatusOK})
}

// ArchiveScriptByHash archives one version of a script.
func (c *Client) ArchiveScriptByHash(ctx context.Context, workspace, hash string) (models.Script, error) {
	return doJSON[models.Script](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/scripts/archive/h/%s", hash), want: http.StatusOK})
}

// DeleteScriptByHash deletes one version of a script.
func (c *Client) DeleteScriptByHash(ctx context.Context, workspace, hash string) (models.Script, error) {
	return doJSON[models.Script](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/scripts/delete/h/%s", hash), want: http.StatusOK})
}

// DeleteScriptByPath deletes every version of the script at path.
func (c *Client) DeleteScriptByPath(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/scripts/delete/p/%s", path), want: http.StatusOK})
}

// GetScriptByPath fetches the latest version of a script.
func (c *Client) GetScriptByPath(ctx context.Context, workspace, path string) (models.Script, error) {
	return doJSON[models.Script](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/get/p/%s", path), want: http.StatusOK})
}

// GetScriptByPathWithDraft fetches a script together with its unpublished draft.
func (c *Client) GetScriptByPathWithDraft(ctx context.Context, workspace, path string) (models.NewScriptWithDraft, error) {
	return doJSON[models.NewScriptWithDraft](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/get/draft/%s", path), want: http.StatusOK})
}

// GetScriptHistoryByPath lists the versions of a script, newest first.
func (c *Client) GetScriptHistoryByPath(ctx context.Context, workspace, path string) ([]models.ScriptHistory, error) {
	return doJSON[[]models.ScriptHistory](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/history/p/%s", path), want: http.StatusOK})
}

// UpdateScriptHistory edits the deployment message of a version.
func (c *Client) UpdateScriptHistory(ctx context.Context, workspace, hash, path string, deploymentMsg *string) (string, error) {
	body := map[string]any{}
	if deploymentMsg != nil {
		body["deployment_msg"] = *deploymentMsg
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/scripts/history_update/h/%s/p/%s", hash, path), body: body, want: http.StatusOK})
}

// RawScriptByPath returns the source of the latest version at path.
func (c *Client) RawScriptByPath(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/scripts/raw/p/%s", path), want: http.StatusOK})
}

// RawScriptByPathTokened fetches script source authenticated by a token in
// the path instead of a header.
func (c *Client) RawScriptByPathTokened(ctx context.Context, workspace, token, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: pathf("/scripts_u/tokened_raw/%s/%s/%s", workspace, token, path), want: http.StatusOK})
}

// ExistsScriptByPath reports whether a script exists at path.
func (c *Client) ExistsScriptByPath(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/exists/p/%s", path), want: http.StatusOK})
}

// GetScriptByHash fetches one version of a script.
func (c *Client) GetScriptByHash(ctx context.Context, workspace, hash string) (models.Script, error) {
	return doJSON[models.Script](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/get/h/%s", hash), want: http.StatusOK})
}

// RawScriptByHash returns the source of one version of a script.
func (c *Client) RawScriptByHash(ctx context.Context, workspace, hash string) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: wpath(workspace, "/scripts/raw/h/%s", hash), want: http.StatusOK})
}

// GetScriptDeploymentStatus reports whether a version is locked and deployed.
func (c *Client) GetScriptDeploymentStatus(ctx context.Context, workspace, hash string) (models.DeploymentStatus, error) {
	return doJSON[models.DeploymentStatus](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/deployment_status/h/%s", hash), want: http.StatusOK})
}

// CreateDraft saves an unpublished script, flow or app.
func (c *Client) CreateDraft(ctx context.Context, workspace string, body models.NewDraft) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/drafts/create"), body: body, want: http.StatusCreated})
}

// DeleteDraft discards the draft of a script, flow or app.
func (c *Client) DeleteDraft(ctx context.Context, workspace string, kind models.DraftKind, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/drafts/delete/%s/%s", kind, path), want: http.StatusOK})
}
