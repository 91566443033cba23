package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// CreateResourceParams applies to CreateResource.
type CreateResourceParams struct {
	UpdateIfExists *bool
}

// CreateResource stores a resource and returns its path.
func (c *Client) CreateResource(ctx context.Context, workspace string, body models.CreateResource, p CreateResourceParams) (string, error) {
	q := url.Values{}
	addParam(q, "update_if_exists", p.UpdateIfExists)
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/resources/create"), query: q, body: body, want: http.StatusCreated})
}

// DeleteResource deletes a resource.
func (c *Client) DeleteResource(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/resources/delete/%s", path), want: http.StatusOK})
}

// UpdateResource edits a resource.
func (c *Client) UpdateResource(ctx context.Context, workspace, path string, body models.EditResource) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/resources/update/%s", path), body: body, want: http.StatusOK})
}

// UpdateResourceValue replaces only the value of a resource.
func (c *Client) UpdateResourceValue(ctx context.Context, workspace, path string, value any) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/resources/update_value/%s", path),
		body:   map[string]any{"value": value},
		want:   http.StatusOK,
	})
}

// GetResource fetches a resource.
func (c *Client) GetResource(ctx context.Context, workspace, path string) (models.Resource, error) {
	return doJSON[models.Resource](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/get/%s", path), want: http.StatusOK})
}

// GetResourceValueInterpolated resolves $var: and $res: references inside
// the value, optionally as seen by jobID.
func (c *Client) GetResourceValueInterpolated(ctx context.Context, workspace, path string, jobID *string) (any, error) {
	q := url.Values{}
	addParam(q, "job_id", jobID)
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/get_value_interpolated/%s", path), query: q, want: http.StatusOK})
}

// GetResourceValue returns the value of a resource.
func (c *Client) GetResourceValue(ctx context.Context, workspace, path string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/get_value/%s", path), want: http.StatusOK})
}

// ExistsResource reports whether a resource exists at path.
func (c *Client) ExistsResource(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/exists/%s", path), want: http.StatusOK})
}

// ListResourcesParams filters ListResources. ResourceType and
// ResourceTypeExclude take comma-separated type names.
type ListResourcesParams struct {
	Pagination
	ResourceType        *string
	ResourceTypeExclude *string
}

// ListResources lists resources matching p.
func (c *Client) ListResources(ctx context.Context, workspace string, p ListResourcesParams) ([]models.ListableResource, error) {
	q := url.Values{}
	p.apply(q)
	addParam(q, "resource_type", p.ResourceType)
	addParam(q, "resource_type_exclude", p.ResourceTypeExclude)
	return doJSON[[]models.ListableResource](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/list"), query: q, want: http.StatusOK})
}

// PathValue is a search index entry.
type PathValue struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// ListSearchResource returns every resource with its value, for full-text search.
func (c *Client) ListSearchResource(ctx context.Context, workspace string) ([]PathValue, error) {
	return doJSON[[]PathValue](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/list_search"), want: http.StatusOK})
}

// NamePath pairs a display name with a path.
type NamePath struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ListResourceNames lists resources of resource type name.
func (c *Client) ListResourceNames(ctx context.Context, workspace, name string) ([]NamePath, error) {
	return doJSON[[]NamePath](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/list_names/%s", name), want: http.StatusOK})
}

// CreateResourceType creates a resource type.
func (c *Client) CreateResourceType(ctx context.Context, workspace string, body models.ResourceType) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/resources/type/create"), body: body, want: http.StatusCreated})
}

// DeleteResourceType deletes a resource type.
func (c *Client) DeleteResourceType(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/resources/type/delete/%s", path), want: http.StatusOK})
}

// UpdateResourceType edits the schema or description of a resource type.
func (c *Client) UpdateResourceType(ctx context.Context, workspace, path string, body models.EditResourceType) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/resources/type/update/%s", path), body: body, want: http.StatusOK})
}

// GetResourceType fetches a resource type.
func (c *Client) GetResourceType(ctx context.Context, workspace, path string) (models.ResourceType, error) {
	return doJSON[models.ResourceType](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/type/get/%s", path), want: http.StatusOK})
}

// ExistsResourceType reports whether a resource type exists.
func (c *Client) ExistsResourceType(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/type/exists/%s", path), want: http.StatusOK})
}

// ListResourceTypes lists resource types with their schemas.
func (c *Client) ListResourceTypes(ctx context.Context, workspace string) ([]models.ResourceType, error) {
	return doJSON[[]models.ResourceType](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/type/list"), want: http.StatusOK})
}

// ListResourceTypeNames returns resource type names only.
func (c *Client) ListResourceTypeNames(ctx context.Context, workspace string) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/resources/type/listnames"), want: http.StatusOK})
}

// ScoredResourceType is a semantic search hit.
type ScoredResourceType struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Schema any     `json:"schema,omitempty"`
}

// QueryResourceTypes ranks resource types by similarity to text.
func (c *Client) QueryResourceTypes(ctx context.Context, workspace, text string, limit *int64) ([]ScoredResourceType, error) {
	q := url.Values{}
	q.Set("text", text)
	addParam(q, "limit", limit)
	return doJSON[[]ScoredResourceType](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/embeddings/query_resource_types"), query: q, want: http.StatusOK})
}

// HubIntegration is a resource type published on the hub.
type HubIntegration struct {
	Name string `json:"name"`
}

// ListHubIntegrations lists integrations published on the Windmill hub.
func (c *Client) ListHubIntegrations(ctx context.Context, kind *string) ([]HubIntegration, error) {
	q := url.Values{}
	addParam(q, "kind", kind)
	return doJSON[[]HubIntegration](ctx, c, request{method: http.MethodGet, path: "/integrations/hub/list", query: q, want: http.StatusOK})
}
