package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// request describes one API call. path is already escaped.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	raw    io.Reader
	want   int
}

// send performs r and returns the response when its status matches r.want.
// The caller owns the returned body.
func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	var body io.Reader
	contentType := ""
	switch {
	case r.raw != nil:
		body = r.raw
		contentType = "application/octet-stream"
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("marshaling body: %w", err)}
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("creating request: %w", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Method: r.method, Path: r.path, Err: err}
	}
	if c.logger != nil {
		c.logger.DebugContext(ctx, "windmill request",
			"method", r.method, "path", r.path, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode != r.want {
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("reading response: %w", err)}
		}
		resp.Body = io.NopCloser(bytes.NewReader(data))
		return nil, &UnexpectedResponseError{
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Body:       data,
			Response:   resp,
		}
	}
	return resp, nil
}

// doJSON decodes the success body into a T.
func doJSON[T any](ctx context.Context, c *Client, r request) (T, error) {
	var out T
	resp, err := c.send(ctx, r)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("reading response: %w", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 && untyped(&out) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return out, nil
}

// untyped reports whether p points at a result with no declared schema,
// which the server may leave empty.
func untyped(p any) bool {
	switch p.(type) {
	case *any, *json.RawMessage:
		return true
	}
	return false
}

// doText reads the success body as a string.
func (c *Client) doText(ctx context.Context, r request) (string, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Method: r.method, Path: r.path, Err: fmt.Errorf("reading response: %w", err)}
	}
	return string(data), nil
}

// doStream hands the success body to the caller, who must close it.
func (c *Client) doStream(ctx context.Context, r request) (io.ReadCloser, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// doEmpty discards the success body.
func (c *Client) doEmpty(ctx context.Context, r request) error {
	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// pathf formats an API path, escaping every argument as a single segment.
// Arguments are stringified first, so every verb in format is %s.
func pathf(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(a))
	}
	return fmt.Sprintf(format, escaped...)
}

// wpath formats a workspace-scoped path under /w/{workspace}.
func wpath(workspace, format string, args ...any) string {
	return "/w/" + url.PathEscape(workspace) + pathf(format, args...)
}

// Pagination is embedded by list parameter structs.
type Pagination struct {
	Page    *int64
	PerPage *int64
}

func (p Pagination) apply(q url.Values) {
	addParam(q, "page", p.Page)
	addParam(q, "per_page", p.PerPage)
}

// addParam sets key when v is non-nil.
func addParam[T any](q url.Values, key string, v *T) {
	if v == nil {
		return
	}
	switch x := any(*v).(type) {
	case string:
		q.Set(key, x)
	case bool:
		q.Set(key, strconv.FormatBool(x))
	case int:
		q.Set(key, strconv.Itoa(x))
	case int64:
		q.Set(key, strconv.FormatInt(x, 10))
	case float64:
		q.Set(key, strconv.FormatFloat(x, 'f', -1, 64))
	case time.Time:
		q.Set(key, x.Format(time.RFC3339))
	case fmt.Stringer:
		q.Set(key, x.String())
	default:
		q.Set(key, fmt.Sprint(x))
	}
}

// addList joins values with commas when the slice is non-empty.
func addList[T ~string](q url.Values, key string, vs []T) {
	if len(vs) == 0 {
		return
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	q.Set(key, strings.Join(parts, ","))
}
