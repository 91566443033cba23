package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ListTriggersParams filters the trigger list endpoints. Path is the
// runnable the triggers point at.
type ListTriggersParams struct {
	Pagination
	Path      *string
	IsFlow    *bool
	PathStart *string
}

// Every trigger kind shares the same route layout under
// /w/{workspace}/{kind}; these helpers are instantiated per kind below.

func createTrigger(ctx context.Context, c *Client, workspace string, kind models.TriggerKind, body any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/%s/create", kind), body: body, want: http.StatusCreated})
}

func updateTrigger(ctx context.Context, c *Client, workspace string, kind models.TriggerKind, path string, body any) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/%s/update/%s", kind, path), body: body, want: http.StatusOK})
}

func deleteTrigger(ctx context.Context, c *Client, workspace string, kind models.TriggerKind, path string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/%s/delete/%s", kind, path), want: http.StatusOK})
}

func getTrigger[T any](ctx context.Context, c *Client, workspace string, kind models.TriggerKind, path string) (T, error) {
	return doJSON[T](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/%s/get/%s", kind, path), want: http.StatusOK})
}

func listTriggers[T any](ctx context.Context, c *Client, workspace string, kind models.TriggerKind, p ListTriggersParams) ([]T, error) {
	q := url.Values{}
	p.apply(q)
	addParam(q, "path", p.Path)
	addParam(q, "is_flow", p.IsFlow)
	addParam(q, "path_start", p.PathStart)
	return doJSON[[]T](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/%s/list", kind), query: q, want: http.StatusOK})
}

func existsTrigger(ctx context.Context, c *Client, workspace string, kind models.TriggerKind, path string) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/%s/exists/%s", kind, path), want: http.StatusOK})
}

func setTriggerEnabled(ctx context.Context, c *Client, workspace string, kind models.TriggerKind, path string, enabled bool) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/%s/setenabled/%s", kind, path), body: models.SetEnabled{Enabled: enabled}, want: http.StatusOK})
}

// HTTP routes.

// CreateHTTPTrigger creates an HTTP route trigger.
func (c *Client) CreateHTTPTrigger(ctx context.Context, workspace string, body models.NewHTTPTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindHTTP, body)
}

// UpdateHTTPTrigger edits an HTTP route trigger.
func (c *Client) UpdateHTTPTrigger(ctx context.Context, workspace, path string, body models.EditHTTPTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindHTTP, path, body)
}

// DeleteHTTPTrigger deletes an HTTP route trigger.
func (c *Client) DeleteHTTPTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindHTTP, path)
}

// GetHTTPTrigger fetches an HTTP route trigger.
func (c *Client) GetHTTPTrigger(ctx context.Context, workspace, path string) (models.HTTPTrigger, error) {
	return getTrigger[models.HTTPTrigger](ctx, c, workspace, models.TriggerKindHTTP, path)
}

// ListHTTPTriggers lists HTTP route triggers.
func (c *Client) ListHTTPTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.HTTPTrigger, error) {
	return listTriggers[models.HTTPTrigger](ctx, c, workspace, models.TriggerKindHTTP, p)
}

// ExistsHTTPTrigger reports whether an HTTP trigger exists at path.
func (c *Client) ExistsHTTPTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindHTTP, path)
}

// ExistsRoute reports whether another HTTP trigger already serves the route.
func (c *Client) ExistsRoute(ctx context.Context, workspace string, body models.HTTPRouteExists) (bool, error) {
	return doJSON[bool](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/%s/route_exists", models.TriggerKindHTTP), body: body, want: http.StatusOK})
}

// Websocket.

// CreateWebsocketTrigger creates a websocket trigger.
func (c *Client) CreateWebsocketTrigger(ctx context.Context, workspace string, body models.NewWebsocketTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindWebsocket, body)
}

// UpdateWebsocketTrigger edits a websocket trigger.
func (c *Client) UpdateWebsocketTrigger(ctx context.Context, workspace, path string, body models.EditWebsocketTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindWebsocket, path, body)
}

// DeleteWebsocketTrigger deletes a websocket trigger.
func (c *Client) DeleteWebsocketTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindWebsocket, path)
}

// GetWebsocketTrigger fetches a websocket trigger.
func (c *Client) GetWebsocketTrigger(ctx context.Context, workspace, path string) (models.WebsocketTrigger, error) {
	return getTrigger[models.WebsocketTrigger](ctx, c, workspace, models.TriggerKindWebsocket, path)
}

// ListWebsocketTriggers lists websocket triggers.
func (c *Client) ListWebsocketTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.WebsocketTrigger, error) {
	return listTriggers[models.WebsocketTrigger](ctx, c, workspace, models.TriggerKindWebsocket, p)
}

// ExistsWebsocketTrigger reports whether a websocket trigger exists at path.
func (c *Client) ExistsWebsocketTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindWebsocket, path)
}

// SetWebsocketTriggerEnabled starts or stops a websocket trigger.
func (c *Client) SetWebsocketTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindWebsocket, path, enabled)
}

// Kafka.

// CreateKafkaTrigger creates a Kafka trigger.
func (c *Client) CreateKafkaTrigger(ctx context.Context, workspace string, body models.NewKafkaTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindKafka, body)
}

// UpdateKafkaTrigger edits a Kafka trigger.
func (c *Client) UpdateKafkaTrigger(ctx context.Context, workspace, path string, body models.EditKafkaTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindKafka, path, body)
}

// DeleteKafkaTrigger deletes a Kafka trigger.
func (c *Client) DeleteKafkaTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindKafka, path)
}

// GetKafkaTrigger fetches a Kafka trigger.
func (c *Client) GetKafkaTrigger(ctx context.Context, workspace, path string) (models.KafkaTrigger, error) {
	return getTrigger[models.KafkaTrigger](ctx, c, workspace, models.TriggerKindKafka, path)
}

// ListKafkaTriggers lists Kafka triggers.
func (c *Client) ListKafkaTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.KafkaTrigger, error) {
	return listTriggers[models.KafkaTrigger](ctx, c, workspace, models.TriggerKindKafka, p)
}

// ExistsKafkaTrigger reports whether a Kafka trigger exists at path.
func (c *Client) ExistsKafkaTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindKafka, path)
}

// SetKafkaTriggerEnabled starts or stops a Kafka trigger.
func (c *Client) SetKafkaTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindKafka, path, enabled)
}

// NATS.

// CreateNatsTrigger creates a NATS trigger.
func (c *Client) CreateNatsTrigger(ctx context.Context, workspace string, body models.NewNatsTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindNats, body)
}

// UpdateNatsTrigger edits a NATS trigger.
func (c *Client) UpdateNatsTrigger(ctx context.Context, workspace, path string, body models.EditNatsTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindNats, path, body)
}

// DeleteNatsTrigger deletes a NATS trigger.
func (c *Client) DeleteNatsTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindNats, path)
}

// GetNatsTrigger fetches a NATS trigger.
func (c *Client) GetNatsTrigger(ctx context.Context, workspace, path string) (models.NatsTrigger, error) {
	return getTrigger[models.NatsTrigger](ctx, c, workspace, models.TriggerKindNats, path)
}

// ListNatsTriggers lists NATS triggers.
func (c *Client) ListNatsTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.NatsTrigger, error) {
	return listTriggers[models.NatsTrigger](ctx, c, workspace, models.TriggerKindNats, p)
}

// ExistsNatsTrigger reports whether a NATS trigger exists at path.
func (c *Client) ExistsNatsTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindNats, path)
}

// SetNatsTriggerEnabled starts or stops a NATS trigger.
func (c *Client) SetNatsTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindNats, path, enabled)
}

// MQTT.

// CreateMqttTrigger creates an MQTT trigger.
func (c *Client) CreateMqttTrigger(ctx context.Context, workspace string, body models.NewMqttTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindMqtt, body)
}

// UpdateMqttTrigger edits an MQTT trigger.
func (c *Client) UpdateMqttTrigger(ctx context.Context, workspace, path string, body models.EditMqttTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindMqtt, path, body)
}

// DeleteMqttTrigger deletes an MQTT trigger.
func (c *Client) DeleteMqttTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindMqtt, path)
}

// GetMqttTrigger fetches an MQTT trigger.
func (c *Client) GetMqttTrigger(ctx context.Context, workspace, path string) (models.MqttTrigger, error) {
	return getTrigger[models.MqttTrigger](ctx, c, workspace, models.TriggerKindMqtt, path)
}

// ListMqttTriggers lists MQTT triggers.
func (c *Client) ListMqttTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.MqttTrigger, error) {
	return listTriggers[models.MqttTrigger](ctx, c, workspace, models.TriggerKindMqtt, p)
}

// ExistsMqttTrigger reports whether an MQTT trigger exists at path.
func (c *Client) ExistsMqttTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindMqtt, path)
}

// SetMqttTriggerEnabled starts or stops an MQTT trigger.
func (c *Client) SetMqttTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindMqtt, path, enabled)
}

// SQS.

// CreateSqsTrigger creates an SQS trigger.
func (c *Client) CreateSqsTrigger(ctx context.Context, workspace string, body models.NewSqsTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindSqs, body)
}

// UpdateSqsTrigger edits an SQS trigger.
func (c *Client) UpdateSqsTrigger(ctx context.Context, workspace, path string, body models.EditSqsTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindSqs, path, body)
}

// DeleteSqsTrigger deletes an SQS trigger.
func (c *Client) DeleteSqsTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindSqs, path)
}

// GetSqsTrigger fetches an SQS trigger.
func (c *Client) GetSqsTrigger(ctx context.Context, workspace, path string) (models.SqsTrigger, error) {
	return getTrigger[models.SqsTrigger](ctx, c, workspace, models.TriggerKindSqs, path)
}

// ListSqsTriggers lists SQS triggers.
func (c *Client) ListSqsTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.SqsTrigger, error) {
	return listTriggers[models.SqsTrigger](ctx, c, workspace, models.TriggerKindSqs, p)
}

// ExistsSqsTrigger reports whether an SQS trigger exists at path.
func (c *Client) ExistsSqsTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindSqs, path)
}

// SetSqsTriggerEnabled starts or stops an SQS trigger.
func (c *Client) SetSqsTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindSqs, path, enabled)
}

// Postgres.

// CreatePostgresTrigger creates a Postgres trigger.
func (c *Client) CreatePostgresTrigger(ctx context.Context, workspace string, body models.NewPostgresTrigger) (string, error) {
	return createTrigger(ctx, c, workspace, models.TriggerKindPostgres, body)
}

// UpdatePostgresTrigger edits a Postgres trigger.
func (c *Client) UpdatePostgresTrigger(ctx context.Context, workspace, path string, body models.EditPostgresTrigger) (string, error) {
	return updateTrigger(ctx, c, workspace, models.TriggerKindPostgres, path, body)
}

// DeletePostgresTrigger deletes a Postgres trigger.
func (c *Client) DeletePostgresTrigger(ctx context.Context, workspace, path string) (string, error) {
	return deleteTrigger(ctx, c, workspace, models.TriggerKindPostgres, path)
}

// GetPostgresTrigger fetches a Postgres trigger.
func (c *Client) GetPostgresTrigger(ctx context.Context, workspace, path string) (models.PostgresTrigger, error) {
	return getTrigger[models.PostgresTrigger](ctx, c, workspace, models.TriggerKindPostgres, path)
}

// ListPostgresTriggers lists Postgres triggers.
func (c *Client) ListPostgresTriggers(ctx context.Context, workspace string, p ListTriggersParams) ([]models.PostgresTrigger, error) {
	return listTriggers[models.PostgresTrigger](ctx, c, workspace, models.TriggerKindPostgres, p)
}

// ExistsPostgresTrigger reports whether a Postgres trigger exists at path.
func (c *Client) ExistsPostgresTrigger(ctx context.Context, workspace, path string) (bool, error) {
	return existsTrigger(ctx, c, workspace, models.TriggerKindPostgres, path)
}

// SetPostgresTriggerEnabled starts or stops a Postgres trigger.
func (c *Client) SetPostgresTriggerEnabled(ctx context.Context, workspace, path string, enabled bool) (string, error) {
	return setTriggerEnabled(ctx, c, workspace, models.TriggerKindPostgres, path, enabled)
}

// GetTriggersCountOfScript counts the triggers pointing at a script.
func (c *Client) GetTriggersCountOfScript(ctx context.Context, workspace, path string) (models.TriggersCount, error) {
	return doJSON[models.TriggersCount](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/scripts/get_triggers_count/%s", path), want: http.StatusOK})
}

// GetTriggersCountOfFlow counts the triggers attached to a flow.
func (c *Client) GetTriggersCountOfFlow(ctx context.Context, workspace, path string) (models.TriggersCount, error) {
	return doJSON[models.TriggersCount](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/flows/get_triggers_count/%s", path), want: http.StatusOK})
}
