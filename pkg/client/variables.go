package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// VariableWriteParams applies to variable create and update.
type VariableWriteParams struct {
	AlreadyEncrypted *bool
}

// CreateVariable creates a variable and returns its path.
func (c *Client) CreateVariable(ctx context.Context, workspace string, body models.CreateVariable, p VariableWriteParams) (string, error) {
	q := url.Values{}
	addParam(q, "already_encrypted", p.AlreadyEncrypted)
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/variables/create"), query: q, body: body, want: http.StatusCreated})
}

// EncryptValue seals value with the workspace key without storing it.
func (c *Client) EncryptValue(ctx context.Context, workspace, value string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/variables/encrypt"), body: value, want: http.StatusOK})
}

// DeleteVariable deletes a variable.
func (c *Client) DeleteVariable(ctx context.Context, workspace, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/variables/delete/%s", path), want: http.StatusOK})
}

// UpdateVariable edits a variable.
func (c *Client) UpdateVariable(ctx context.Context, workspace, path string, body models.EditVariable, p VariableWriteParams) (string, error) {
	q := url.Values{}
	addParam(q, "already_encrypted", p.AlreadyEncrypted)
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/variables/update/%s", path), query: q, body: body, want: http.StatusOK})
}

// GetVariableParams controls secret handling on GetVariable.
type GetVariableParams struct {
	DecryptSecret    *bool
	IncludeEncrypted *bool
}

// GetVariable fetches a variable.
func (c *Client) GetVariable(ctx context.Context, workspace, path string, p GetVariableParams) (models.ListableVariable, error) {
	q := url.Values{}
	addParam(q, "decrypt_secret", p.DecryptSecret)
	addParam(q, "include_encrypted", p.IncludeEncrypted)
	return doJSON[models.ListableVariable](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/variables/get/%s", path), query: q, want: http.StatusOK})
}

// GetVariableValue returns the decrypted value. The server answers with a
// JSON string.
func (c *Client) GetVariableValue(ctx context.Context, workspace, path string) (string, error) {
	return doJSON[string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/variables/get_value/%s", path), want: http.StatusOK})
}

// ExistsVariable reports whether a variable exists at path.
func (c *Client) ExistsVariable(ctx context.Context, workspace, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/variables/exists/%s", path), want: http.StatusOK})
}

// ListVariables lists variables. Secret values are not included.
func (c *Client) ListVariables(ctx context.Context, workspace string) ([]models.ListableVariable, error) {
	return doJSON[[]models.ListableVariable](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/variables/list"), want: http.StatusOK})
}

// ListContextualVariables returns the WM_* variables injected into jobs.
func (c *Client) ListContextualVariables(ctx context.Context, workspace string) ([]models.ContextualVariable, error) {
	return doJSON[[]models.ContextualVariable](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/variables/list_contextual"), want: http.StatusOK})
}
