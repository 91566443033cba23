package wsprobe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		filters []models.WebsocketFilter
		want    bool
	}{
		{"no filters", `"anything"`, nil, true},
		{"equal scalar", `{"type":"order"}`, []models.WebsocketFilter{{Key: "type", Value: "order"}}, true},
		{"different scalar", `{"type":"refund"}`, []models.WebsocketFilter{{Key: "type", Value: "order"}}, false},
		{"missing key", `{"kind":"order"}`, []models.WebsocketFilter{{Key: "type", Value: "order"}}, false},
		{"number", `{"qty":3}`, []models.WebsocketFilter{{Key: "qty", Value: 3}}, true},
		{"object subset", `{"data":{"a":1,"b":{"c":true,"d":2}}}`, []models.WebsocketFilter{{Key: "data", Value: map[string]any{"b": map[string]any{"c": true}}}}, true},
		{"object mismatch", `{"data":{"a":1}}`, []models.WebsocketFilter{{Key: "data", Value: map[string]any{"a": 2}}}, false},
		{"array subset", `{"tags":["x","y","z"]}`, []models.WebsocketFilter{{Key: "tags", Value: []any{"z", "x"}}}, true},
		{"array missing element", `{"tags":["x"]}`, []models.WebsocketFilter{{Key: "tags", Value: []any{"y"}}}, false},
		{"all filters must match", `{"a":1,"b":2}`, []models.WebsocketFilter{{Key: "a", Value: 1}, {Key: "b", Value: 3}}, false},
		{"non-object message", `[1,2]`, []models.WebsocketFilter{{Key: "a", Value: 1}}, false},
		{"not json", `hello`, []models.WebsocketFilter{{Key: "a", Value: 1}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match([]byte(tc.msg), tc.filters); got != tc.want {
				t.Errorf("Match(%s) = %v, want %v", tc.msg, got, tc.want)
			}
		})
	}
}

// echoServer replies to the first client message with each of msgs.
func echoServer(t *testing.T, msgs []string, gotInit chan<- string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		gotInit <- string(data)
		for _, m := range msgs {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				return
			}
		}
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestProbe_Matches(t *testing.T) {
	gotInit := make(chan string, 1)
	ts := echoServer(t, []string{`{"type":"ping"}`, `{"type":"order","id":7}`}, gotInit)
	hello := `{"subscribe":"orders"}`
	trigger := models.WebsocketTrigger{
		URL:     wsURL(ts),
		Filters: []models.WebsocketFilter{{Key: "type", Value: "order"}},
		InitialMessages: []models.WebsocketInitialMessage{
			{RawMessage: &hello},
			{RunnableResult: &models.RunnableResultMessage{Path: "f/ws/token"}},
		},
	}

	res, err := Probe(context.Background(), trigger, Options{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if got := <-gotInit; got != hello {
		t.Errorf("initial message = %q, want %q", got, hello)
	}
	if string(res.Matched) != `{"type":"order","id":7}` {
		t.Errorf("Matched = %s", res.Matched)
	}
	if res.Seen != 2 {
		t.Errorf("Seen = %d, want 2", res.Seen)
	}
	if len(res.Unsupported) != 1 || res.Unsupported[0] != "f/ws/token" {
		t.Errorf("Unsupported = %v, want [f/ws/token]", res.Unsupported)
	}
}

func TestProbe_NoMatch(t *testing.T) {
	gotInit := make(chan string, 1)
	ts := echoServer(t, []string{`{"type":"ping"}`}, gotInit)
	hello := "hi"
	trigger := models.WebsocketTrigger{
		URL:             wsURL(ts),
		Filters:         []models.WebsocketFilter{{Key: "type", Value: "order"}},
		InitialMessages: []models.WebsocketInitialMessage{{RawMessage: &hello}},
	}

	res, err := Probe(context.Background(), trigger, Options{Timeout: 5 * time.Second})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
	if res.Seen != 1 {
		t.Errorf("Seen = %d, want 1", res.Seen)
	}
}

func TestProbe_DialError(t *testing.T) {
	_, err := Probe(context.Background(), models.WebsocketTrigger{URL: "ws://127.0.0.1:1/nope"}, Options{Timeout: time.Second})
	if err == nil {
		t.Fatal("expected dial error, got nil")
	}
}
