package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// GetCustomTags lists the worker tags defined on the instance.
func (c *Client) GetCustomTags(ctx context.Context) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: "/workers/custom_tags", want: http.StatusOK})
}

// GetDefaultTags lists the default worker tags.
func (c *Client) GetDefaultTags(ctx context.Context) ([]string, error) {
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: "/workers/get_default_tags", want: http.StatusOK})
}

// IsDefaultTagsPerWorkspace reports whether default tags are suffixed with the workspace.
func (c *Client) IsDefaultTagsPerWorkspace(ctx context.Context) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: "/workers/is_default_tags_per_workspace", want: http.StatusOK})
}

// ListWorkersParams filters ListWorkers. PingSince is in seconds.
type ListWorkersParams struct {
	Pagination
	PingSince *int64
}

// ListWorkers lists workers that pinged recently.
func (c *Client) ListWorkers(ctx context.Context, p ListWorkersParams) ([]models.WorkerPing, error) {
	q := url.Values{}
	p.apply(q)
	addParam(q, "ping_since", p.PingSince)
	return doJSON[[]models.WorkerPing](ctx, c, request{method: http.MethodGet, path: "/workers/list", query: q, want: http.StatusOK})
}

// ExistsWorkerWithTag reports whether a live worker listens on tag.
func (c *Client) ExistsWorkerWithTag(ctx context.Context, tag string) (bool, error) {
	q := url.Values{}
	q.Set("tag", tag)
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: "/workers/exists_worker_with_tag", query: q, want: http.StatusOK})
}

// GetQueueMetrics returns queue length samples.
func (c *Client) GetQueueMetrics(ctx context.Context) ([]models.QueueMetric, error) {
	return doJSON[[]models.QueueMetric](ctx, c, request{method: http.MethodGet, path: "/workers/queue_metrics", want: http.StatusOK})
}

// ListWorkerGroups lists worker group configurations.
func (c *Client) ListWorkerGroups(ctx context.Context) ([]models.WorkerConfig, error) {
	return doJSON[[]models.WorkerConfig](ctx, c, request{method: http.MethodGet, path: "/configs/list_worker_groups", want: http.StatusOK})
}

// GetConfig returns a named instance config, e.g. "worker__default".
func (c *Client) GetConfig(ctx context.Context, name string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: pathf("/configs/get/%s", name), want: http.StatusOK})
}

// UpdateConfig writes an instance config entry.
func (c *Client) UpdateConfig(ctx context.Context, name string, config any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/configs/update/%s", name), body: config, want: http.StatusOK})
}

// DeleteConfig deletes an instance config entry.
func (c *Client) DeleteConfig(ctx context.Context, name string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: pathf("/configs/update/%s", name), want: http.StatusOK})
}

// ListConcurrencyGroups lists concurrency keys and their running jobs.
func (c *Client) ListConcurrencyGroups(ctx context.Context) ([]models.ConcurrencyGroup, error) {
	return doJSON[[]models.ConcurrencyGroup](ctx, c, request{method: http.MethodGet, path: "/concurrency_groups/list", want: http.StatusOK})
}

// DeleteConcurrencyGroup clears a concurrency key.
func (c *Client) DeleteConcurrencyGroup(ctx context.Context, concurrencyID string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodDelete, path: pathf("/concurrency_groups/%s", concurrencyID), want: http.StatusOK})
}
