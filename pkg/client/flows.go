package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ListItemsParams filters the list endpoints of flows, apps and raw apps.
type ListItemsParams struct {
	Pagination
	OrderDesc   *bool
	CreatedBy   *string
	PathStart   *string
	PathExact   *string
	StarredOnly *bool
}

func (p ListItemsParams) query() url.Values {
	q := url.Values{}
	p.apply(q)
	addParam(q, "order_desc", p.OrderDesc)
	addParam(q, "created_by", p.CreatedBy)
	addParam(q, "path_start", p.PathStart)
	addParam(q, "path_exact", p.PathExact)
	addParam(q, "starred_only", p.StarredOnly)
	return q
}

// ListFlowsParams filters ListFlows.
type ListFlowsParams struct {
	ListItemsParams
	ShowArchived *bool
}

// HubFlow is a flow summary from the public hub.
type HubFlow struct {
	ID       int64    `json:"id"`
	FlowID   int64    `json:"flow_id"`
	Summary  string   `json:"summary"`
	Apps     []string `json:"apps"`
	Approved bool     `json:"approved"`
	Votes    int64    `json:"votes"`
}

type hubFlows struct {
	Flows []HubFlow `json:"flows"`
}

// ListHubFlows lists flows published on the Windmill hub.
func (c *Client) ListHubFlows(ctx context.Context) ([]HubFlow, error) {
	out, err := doJSON[hubFlows](ctx, c, request{method: http.MethodGet, path: "/flows/hub/list", want: http.StatusOK})
	return out.Flows, err
}

// HubFlowDetail is a hub flow with its definition.
type HubFlowDetail struct {
	Flow *models.OpenFlow `json:"flow,omitempty"`
}

// GetHubFlowByID fetches one hub flow.
func (c *Client) GetHubFlowByID(ctx context.Context, id int64) (HubFlowDetail, error) {
	return doJSON[HubFlowDetail](ctx, c, request{method: http.MethodGet, path: pathf("/flows/hub/get/%s", id), want: http.StatusOK})
}

// ListFlowPaths lists the paths of every flow in the workspace.
func (c *Client) ListFlowPaths(ctx context.Context, workspace string) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/list_paths"), want: http.StatusOK})
}

// ListSearchFlow returns every flow with its value, for full-text search.
func (c *Client) ListSearchFlow(ctx context.Context, workspace string) ([]PathValue, error) {
	return doJSON[[]PathValue](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/list_search"), want: http.StatusOK})
}

// FlowListItem is a flow as returned by list.
type FlowListItem struct {
	models.Flow
	HasDraft *bool `json:"has_draft,omitempty"`
}

// ListFlows lists flows matching p.
func (c *Client) ListFlows(ctx context.Context, workspace string, p ListFlowsParams) ([]FlowListItem, error) {
	q := p.query()
	addParam(q, "show_archived", p.ShowArchived)
	return doJSON[[]FlowListItem](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/list"), query: q, want: http.StatusOK})
}

// GetFlowByPath fetches a deployed flow.
func (c *Client) GetFlowByPath(ctx context.Context, workspace, path string) (models.Flow, error) {
	return doJSON[models.Flow](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/get/%s", path), want: http.StatusOK})
}

// ToggleWorkspaceErrorHandler mutes or unmutes the workspace error handler.
type ToggleWorkspaceErrorHandler struct {
	Muted *bool `json:"muted,omitempty"`
}

// ToggleWorkspaceErrorHandlerForFlow mutes or unmutes the workspace error handler for a flow.
func (c *Client) ToggleWorkspaceErrorHandlerForFlow(ctx context.Context, workspace, path string, body ToggleWorkspaceErrorHandler) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/flows/toggle_workspace_error_handler/%s", path), body: body, want: http.StatusOK})
}

// GetFlowByPathWithDraft fetches a flow together with its unpublished draft.
func (c *Client) GetFlowByPathWithDraft(ctx context.Context, workspace, path string) (models.FlowWithDraft, error) {
	return doJSON[models.FlowWithDraft](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/get/draft/%s", path), want: http.StatusOK})
}

// ExistsFlowByPath reports whether a flow exists at path.
func (c *Client) ExistsFlowByPath(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/exists/%s", path), want: http.StatusOK})
}

// CreateFlow deploys a new flow and returns its path.
func (c *Client) CreateFlow(ctx context.Context, workspace string, body models.CreateFlowBody) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/flows/create"), body: body, want: http.StatusCreated})
}

// UpdateFlow replaces the flow at path.
func (c *Client) UpdateFlow(ctx context.Context, workspace, path string, body models.CreateFlowBody) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/flows/update/%s", path), body: body, want: http.StatusOK})
}

// ArchiveFlowByPath archives or restores a flow.
func (c *Client) ArchiveFlowByPath(ctx context.Context, workspace, path string, archived *bool) (string, error) {
	body := map[string]any{}
	if archived != nil {
		body["archived"] = *archived
	}
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/flows/archive/%s", path), body: body, want: http.StatusOK})
}

// DeleteFlowByPath deletes a flow.
func (c *Client) DeleteFlowByPath(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/flows/delete/%s", path), want: http.StatusOK})
}

// GetFlowInputHistoryByPath lists the arguments of past runs of a flow.
func (c *Client) GetFlowInputHistoryByPath(ctx context.Context, workspace, path string, p Pagination) ([]models.Input, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.Input](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/input_history/p/%s", path), query: q, want: http.StatusOK})
}
