package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func TestTriggerRoutes(t *testing.T) {
	type call struct {
		method string
		path   string
		query  string
	}
	var got call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = call{r.Method, r.URL.EscapedPath(), r.URL.RawQuery}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/w/demo/kafka_triggers/create":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("f/kafka/orders"))
		case r.Method == http.MethodGet:
			w.Write([]byte("[]"))
		default:
			w.Write([]byte("ok"))
		}
	})
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		want call
	}{
		{
			name: "create kafka",
			run: func() error {
				_, err := c.CreateKafkaTrigger(ctx, "demo", models.NewKafkaTrigger{TriggerTarget: models.TriggerTarget{Path: "f/kafka/orders"}})
				return err
			},
			want: call{http.MethodPost, "/w/demo/kafka_triggers/create", ""},
		},
		{
			name: "list postgres",
			run: func() error {
				_, err := c.ListPostgresTriggers(ctx, "demo", ListTriggersParams{PathStart: ptr("f/")})
				return err
			},
			want: call{http.MethodGet, "/w/demo/postgres_triggers/list", "path_start=f%2F"},
		},
		{
			name: "delete http",
			run: func() error {
				_, err := c.DeleteHTTPTrigger(ctx, "demo", "f/api/hook")
				return err
			},
			want: call{http.MethodDelete, "/w/demo/http_triggers/delete/f%2Fapi%2Fhook", ""},
		},
		{
			name: "enable mqtt",
			run: func() error {
				_, err := c.SetMqttTriggerEnabled(ctx, "demo", "f/mqtt/t", true)
				return err
			},
			want: call{http.MethodPost, "/w/demo/mqtt_triggers/setenabled/f%2Fmqtt%2Ft", ""},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); err != nil {
				t.Fatalf("call returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("request = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestExistsRoute(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/w/demo/http_triggers/route_exists" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["route_path"] != "orders/:id" {
			t.Errorf("route_path = %v, want orders/:id", body["route_path"])
		}
		w.Write([]byte("true"))
	})
	exists, err := c.ExistsRoute(context.Background(), "demo", models.HTTPRouteExists{RoutePath: "orders/:id", HTTPMethod: models.HTTPMethodGet})
	if err != nil {
		t.Fatalf("ExistsRoute returned error: %v", err)
	}
	if !exists {
		t.Error("ExistsRoute = false, want true")
	}
}
