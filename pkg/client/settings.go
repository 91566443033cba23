package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// GetVersion returns the backend version string, e.g. "CE v1.478.1".
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/version", want: http.StatusOK})
}

// BackendUptodate reports whether a newer release exists, as text.
func (c *Client) BackendUptodate(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/uptodate", want: http.StatusOK})
}

// GetLicenseID returns the enterprise license id.
func (c *Client) GetLicenseID(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/ee_license", want: http.StatusOK})
}

// GetOpenAPIYaml returns the server's OpenAPI document.
func (c *Client) GetOpenAPIYaml(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodGet, path: "/openapi.yaml", want: http.StatusOK})
}

// GetGlobalSetting reads an instance setting.
func (c *Client) GetGlobalSetting(ctx context.Context, key string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: pathf("/settings/global/%s", key), want: http.StatusOK})
}

// SetGlobalSetting writes an instance setting.
func (c *Client) SetGlobalSetting(ctx context.Context, key string, value any) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   pathf("/settings/global/%s", key),
		body:   models.GlobalSetting{Value: value},
		want:   http.StatusOK,
	})
}

// GetLocalSettings returns the settings read from the server's environment.
func (c *Client) GetLocalSettings(ctx context.Context) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: "/settings/local", want: http.StatusOK})
}

// TestSMTP sends a test mail to "to" through the given SMTP settings.
func (c *Client) TestSMTP(ctx context.Context, to string, smtp map[string]any) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   "/settings/test_smtp",
		body:   map[string]any{"to": to, "smtp": smtp},
		want:   http.StatusOK,
	})
}

// TestLicenseKey validates an enterprise license key.
func (c *Client) TestLicenseKey(ctx context.Context, licenseKey string) (string, error) {
	return c.doText(ctx, request{
		method: http.MethodPost,
		path:   "/settings/test_license_key",
		body:   map[string]string{"license_key": licenseKey},
		want:   http.StatusOK,
	})
}

// TestObjectStorageConfig checks an instance object storage configuration.
func (c *Client) TestObjectStorageConfig(ctx context.Context, config map[string]any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/settings/test_object_storage_config", body: config, want: http.StatusOK})
}

// SendStats sends usage statistics now.
func (c *Client) SendStats(ctx context.Context) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/settings/send_stats", want: http.StatusOK})
}

// TestMetadata validates SAML IdP metadata.
func (c *Client) TestMetadata(ctx context.Context, metadata string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/saml/test_metadata", body: metadata, want: http.StatusOK})
}

// GetOIDCToken issues an OIDC token for audience.
func (c *Client) GetOIDCToken(ctx context.Context, workspace, audience string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/oidc/token/%s", audience), want: http.StatusOK})
}

// ListAuditLogsParams filters ListAuditLogs.
type ListAuditLogsParams struct {
	Pagination
	Before     *string
	After      *string
	Username   *string
	Operation  *models.AuditOperation
	Resource   *string
	ActionKind *models.AuditLogActionKind
}

// GetAuditLog fetches one audit log entry.
func (c *Client) GetAuditLog(ctx context.Context, workspace string, id int64) (models.AuditLog, error) {
	return doJSON[models.AuditLog](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/audit/get/%s", id), want: http.StatusOK})
}

// ListAuditLogs lists audit log entries matching p.
func (c *Client) ListAuditLogs(ctx context.Context, workspace string, p ListAuditLogsParams) ([]models.AuditLog, error) {
	q := url.Values{}
	p.apply(q)
	addParam(q, "before", p.Before)
	addParam(q, "after", p.After)
	addParam(q, "username", p.Username)
	addParam(q, "operation", p.Operation)
	addParam(q, "resource", p.Resource)
	addParam(q, "action_kind", p.ActionKind)
	return doJSON[[]models.AuditLog](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/audit/list"), query: q, want: http.StatusOK})
}
