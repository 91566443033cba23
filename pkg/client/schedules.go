package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// PreviewSchedule returns the upcoming ticks of a cron expression as
// computed by the server.
func (c *Client) PreviewSchedule(ctx context.Context, body models.SchedulePreviewRequest) ([]time.Time, error) {
	return doJSON[[]time.Time](ctx, c, request{method: http.MethodPost, path: "/schedules/preview", body: body, want: http.StatusOK})
}

// CreateSchedule creates a schedule and returns its path.
func (c *Client) CreateSchedule(ctx context.Context, workspace string, body models.NewSchedule) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/schedules/create"), body: body, want: http.StatusCreated})
}

// UpdateSchedule edits a schedule.
func (c *Client) UpdateSchedule(ctx context.Context, workspace, path string, body models.EditSchedule) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/schedules/update/%s", path), body: body, want: http.StatusOK})
}

// SetScheduleEnabled enables or disables a schedule.
func (c *Client) SetScheduleEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/schedules/setenabled/%s", path), body: models.SetEnabled{Enabled: enabled}, want: http.StatusOK})
}

// DeleteSchedule deletes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/schedules/delete/%s", path), want: http.StatusOK})
}

// GetSchedule fetches a schedule.
func (c *Client) GetSchedule(ctx context.Context, workspace, path string) (models.Schedule, error) {
	return doJSON[models.Schedule](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/schedules/get/%s", path), want: http.StatusOK})
}

// ExistsSchedule reports whether a schedule exists at path.
func (c *Client) ExistsSchedule(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/schedules/exists/%s", path), want: http.StatusOK})
}

// ListSchedulesParams filters ListSchedules. Path is the runnable path.
type ListSchedulesParams struct {
	Pagination
	Args   *string
	Path   *string
	IsFlow *bool
}

// ListSchedules lists schedules matching p.
func (c *Client) ListSchedules(ctx context.Context, workspace string, p ListSchedulesParams) ([]models.Schedule, error) {
	q := url.Values{}
	p.apply(q)
	addParam(q, "args", p.Args)
	addParam(q, "path", p.Path)
	addParam(q, "is_flow", p.IsFlow)
	return doJSON[[]models.Schedule](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/schedules/list"), query: q, want: http.StatusOK})
}

// ListSchedulesWithJobs returns schedules with their last runs.
func (c *Client) ListSchedulesWithJobs(ctx context.Context, workspace string, p Pagination) ([]models.ScheduleWJobs, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.ScheduleWJobs](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/schedules/list_with_jobs"), query: q, want: http.StatusOK})
}

// SetDefaultErrorOrRecoveryHandler sets the handler applied to schedules that do not define one.
func (c *Client) SetDefaultErrorOrRecoveryHandler(ctx context.Context, workspace string, body models.SetDefaultErrorOrRecoveryHandler) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/schedules/setdefaulthandler"), body: body, want: http.StatusCreated})
}
