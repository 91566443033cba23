package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

var waitJobID = uuid.MustParse("0192c3c4-4d5e-7f00-8a1b-2c3d4e5f6071")

func TestWaitJob_Completes(t *testing.T) {
	var polls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/jobs_u/completed/get_result_maybe/"+waitJobID.String()) {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if polls.Add(1) < 3 {
			w.Write([]byte(`{"completed":false,"result":null}`))
			return
		}
		w.Write([]byte(`{"completed":true,"success":true,"result":{"rows":3}}`))
	})

	got, err := c.WaitJob(context.Background(), "demo", waitJobID, WaitOptions{PollInterval: time.Millisecond})
	if err != nil {
		t.Fatalf("WaitJob returned error: %v", err)
	}
	if string(got) != `{"rows":3}` {
		t.Errorf("result = %s, want {\"rows\":3}", got)
	}
	if polls.Load() != 3 {
		t.Errorf("polls = %d, want 3", polls.Load())
	}
}

func TestWaitJob_Failed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"completed":true,"success":false,"result":{"error":{"message":"boom"}}}`))
	})

	_, err := c.WaitJob(context.Background(), "demo", waitJobID, WaitOptions{})
	var jf *JobFailedError
	if !errors.As(err, &jf) {
		t.Fatalf("error = %v, want *JobFailedError", err)
	}
	if jf.ID != waitJobID {
		t.Errorf("ID = %s, want %s", jf.ID, waitJobID)
	}
	var payload map[string]any
	if err := json.Unmarshal(jf.Result, &payload); err != nil {
		t.Fatalf("Result is not JSON: %v", err)
	}
	if _, ok := payload["error"]; !ok {
		t.Errorf("Result = %s, want an error payload", jf.Result)
	}
}

func TestWaitJob_RequireResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"completed":true,"success":true,"result":null}`))
	})

	if _, err := c.WaitJob(context.Background(), "demo", waitJobID, WaitOptions{}); err != nil {
		t.Fatalf("WaitJob without RequireResult returned error: %v", err)
	}
	_, err := c.WaitJob(context.Background(), "demo", waitJobID, WaitOptions{RequireResult: true})
	if !errors.Is(err, ErrNullResult) {
		t.Errorf("error = %v, want ErrNullResult", err)
	}
}

func TestWaitJob_TimeoutCancels(t *testing.T) {
	var reason atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/jobs_u/queue/cancel/") {
			var body models.CancelJobRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decoding cancel body: %v", err)
			}
			if body.Reason != nil {
				reason.Store(*body.Reason)
			}
			w.Write([]byte("cancelled"))
			return
		}
		w.Write([]byte(`{"completed":false,"result":null}`))
	})

	_, err := c.WaitJob(context.Background(), "demo", waitJobID, WaitOptions{
		PollInterval: 5 * time.Millisecond,
		Timeout:      20 * time.Millisecond,
	})
	if !errors.Is(err, ErrJobTimeout) {
		t.Fatalf("error = %v, want ErrJobTimeout", err)
	}
	if got, _ := reason.Load().(string); got != "reached timeout" {
		t.Errorf("cancel reason = %q, want %q", got, "reached timeout")
	}
}

func TestWaitJob_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"completed":false,"result":null}`))
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.WaitJob(ctx, "demo", waitJobID, WaitOptions{PollInterval: 5 * time.Millisecond})
	if err == nil {
		t.Fatal("WaitJob should fail once the context is done")
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		job  models.Job
		want JobState
	}{
		{"waiting", models.Job{Queued: &models.QueuedJob{}}, JobWaiting},
		{"running", models.Job{Queued: &models.QueuedJob{Running: true}}, JobRunning},
		{"completed", models.Job{Completed: &models.CompletedJob{}}, JobCompleted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StateOf(tc.job); got != tc.want {
				t.Errorf("StateOf = %q, want %q", got, tc.want)
			}
		})
	}
}
