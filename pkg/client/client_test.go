package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewWithClient(ts.URL, ts.Client(), WithToken("secret"))
}

func ptr[T any](v T) *T { return &v }

func TestClient_Headers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer secret")
		}
		if got := r.Header.Get("User-Agent"); got != "wmill-go/"+APIVersion {
			t.Errorf("User-Agent = %q, want %q", got, "wmill-go/"+APIVersion)
		}
		w.Write([]byte("CE v1.478.1"))
	})
	got, err := c.GetVersion(context.Background())
	if err != nil {
		t.Fatalf("GetVersion returned error: %v", err)
	}
	if got != "CE v1.478.1" {
		t.Errorf("GetVersion = %q, want %q", got, "CE v1.478.1")
	}
}

func TestClient_PathEscaping(t *testing.T) {
	tests := []struct {
		name      string
		workspace string
		path      string
		want      string
	}{
		{"folder path", "demo", "f/my folder/script", "/w/demo/resources/get/f%2Fmy%20folder%2Fscript"},
		{"user path", "demo", "u/admin/db", "/w/demo/resources/get/u%2Fadmin%2Fdb"},
		{"workspace escaped", "my ws", "x", "/w/my%20ws/resources/get/x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.EscapedPath(); got != tc.want {
					t.Errorf("path = %q, want %q", got, tc.want)
				}
				w.Write([]byte(`{"path":"x","resource_type":"postgresql","is_oauth":false}`))
			})
			if _, err := c.GetResource(context.Background(), tc.workspace, tc.path); err != nil {
				t.Fatalf("GetResource returned error: %v", err)
			}
		})
	}
}

func TestClient_CreateResource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/w/demo/resources/create" {
			t.Errorf("path = %q, want /w/demo/resources/create", r.URL.Path)
		}
		if got := r.URL.Query().Get("update_if_exists"); got != "true" {
			t.Errorf("update_if_exists = %q, want true", got)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", r.Header.Get("Content-Type"))
		}
		var body models.CreateResource
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Path != "f/db/main" || body.ResourceType != "postgresql" {
			t.Errorf("body = %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("f/db/main"))
	})

	got, err := c.CreateResource(context.Background(), "demo", models.CreateResource{
		Path:         "f/db/main",
		ResourceType: "postgresql",
		Value:        map[string]any{"host": "localhost"},
	}, CreateResourceParams{UpdateIfExists: ptr(true)})
	if err != nil {
		t.Fatalf("CreateResource returned error: %v", err)
	}
	if got != "f/db/main" {
		t.Errorf("CreateResource = %q, want %q", got, "f/db/main")
	}
}

func TestClient_StatusGating(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		notFound bool
	}{
		{"ok on created endpoint", http.StatusOK, "f/db/main", false},
		{"not found", http.StatusNotFound, "not found: resource f/db/main", true},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			_, err := c.CreateResource(context.Background(), "demo", models.CreateResource{Path: "f/db/main"}, CreateResourceParams{})
			if err == nil {
				t.Fatal("CreateResource should fail on a non-201 status")
			}
			var ue *UnexpectedResponseError
			if !errors.As(err, &ue) {
				t.Fatalf("error = %T, want *UnexpectedResponseError", err)
			}
			if ue.StatusCode != tc.status {
				t.Errorf("StatusCode = %d, want %d", ue.StatusCode, tc.status)
			}
			if StatusCode(err) != tc.status {
				t.Errorf("StatusCode(err) = %d, want %d", StatusCode(err), tc.status)
			}
			if IsNotFound(err) != tc.notFound {
				t.Errorf("IsNotFound = %v, want %v", IsNotFound(err), tc.notFound)
			}
			if string(ue.Body) != tc.body {
				t.Errorf("Body = %q, want %q", ue.Body, tc.body)
			}
			again, err := io.ReadAll(ue.Response.Body)
			if err != nil {
				t.Fatalf("re-reading body: %v", err)
			}
			if string(again) != tc.body {
				t.Errorf("Response.Body = %q, want %q", again, tc.body)
			}
		})
	}
}

func TestClient_QueryOmitsUnset(t *testing.T) {
	var rawQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte("[]"))
	})
	ctx := context.Background()

	if _, err := c.ListJobs(ctx, "demo", ListJobsParams{}); err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if rawQuery != "" {
		t.Errorf("query = %q, want empty", rawQuery)
	}

	parent := uuid.MustParse("0192c3c4-4d5e-7f00-8a1b-2c3d4e5f6071")
	p := ListJobsParams{JobFilter: JobFilter{
		Pagination: Pagination{Page: ptr(int64(2)), PerPage: ptr(int64(50))},
		ParentJob:  &parent,
		Success:    ptr(false),
		JobKinds:   []models.JobKind{models.JobKindScript, models.JobKindFlow},
	}}
	if _, err := c.ListJobs(ctx, "demo", p); err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	want := "job_kinds=script%2Cflow&page=2&parent_job=" + parent.String() + "&per_page=50&success=false"
	if rawQuery != want {
		t.Errorf("query = %q, want %q", rawQuery, want)
	}
}

func TestClient_RunScriptByPath(t *testing.T) {
	id := uuid.MustParse("0192c3c4-4d5e-7f00-8a1b-2c3d4e5f6071")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/w/demo/jobs/run/p/f%2Fetl%2Fload" {
			t.Errorf("path = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "{}" {
			t.Errorf("body = %q, want {}", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(id.String()))
	})
	got, err := c.RunScriptByPath(context.Background(), "demo", "f/etl/load", nil, RunParams{})
	if err != nil {
		t.Fatalf("RunScriptByPath returned error: %v", err)
	}
	if got != id {
		t.Errorf("RunScriptByPath = %s, want %s", got, id)
	}
}

func TestClient_RequestError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL
	ts.Close()

	c := New(base)
	_, err := c.GetVersion(context.Background())
	if err == nil {
		t.Fatal("GetVersion should fail against a closed server")
	}
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode(err) = %d, want 0", StatusCode(err))
	}
}

func TestClient_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	_, err := c.ExistsResource(context.Background(), "demo", "f/db/main")
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("error = %T (%v), want *RequestError", err, err)
	}
	if !strings.Contains(err.Error(), "decoding response") {
		t.Errorf("error = %q, want it to mention decoding", err)
	}
}

func TestClient_EmptyUntypedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	got, err := c.GetResourceValue(context.Background(), "demo", "f/db/main")
	if err != nil {
		t.Fatalf("GetResourceValue returned error: %v", err)
	}
	if got != nil {
		t.Errorf("GetResourceValue = %v, want nil", got)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://app.windmill.dev", "https://app.windmill.dev/api"},
		{"https://app.windmill.dev/", "https://app.windmill.dev/api"},
		{"https://app.windmill.dev/api", "https://app.windmill.dev/api"},
		{" http://localhost:8000/api/ ", "http://localhost:8000/api"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := NormalizeBaseURL(tc.input); got != tc.want {
				t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		expect string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 5, "hello..."},
		{"empty", "", 5, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.input, tc.maxLen)
			if got != tc.expect {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expect)
			}
		})
	}
}

func TestNew_TLS(t *testing.T) {
	c := New("https://example.com/api", WithTLS(true, nil))
	if c.BaseURL() != "https://example.com/api" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	tr, ok := c.HTTPClient().Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *http.Transport", c.HTTPClient().Transport)
	}
	if tr.TLSClientConfig == nil || !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify to be set")
	}
	if c.HTTPClient().Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.HTTPClient().Timeout, defaultTimeout)
	}
}
