package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TriggerExtraProperty holds the fields every stored trigger carries.
type TriggerExtraProperty struct {
	WorkspaceID string     `json:"workspace_id"`
	Path        string     `json:"path"`
	ScriptPath  string     `json:"script_path"`
	IsFlow      bool       `json:"is_flow"`
	EditedBy    string     `json:"edited_by"`
	Email       string     `json:"email"`
	EditedAt    time.Time  `json:"edited_at"`
	ExtraPerms  ExtraPerms `json:"extra_perms,omitempty"`
}

// ListenerState is the runtime state of triggers backed by a listener.
type ListenerState struct {
	Enabled        bool       `json:"enabled"`
	Error          *string    `json:"error,omitempty"`
	ServerID       *string    `json:"server_id,omitempty"`
	LastServerPing *time.Time `json:"last_server_ping,omitempty"`
}

// TriggerTarget names the runnable a trigger starts.
type TriggerTarget struct {
	Path       string `json:"path"`
	ScriptPath string `json:"script_path"`
	IsFlow     bool   `json:"is_flow"`
}

// HTTPTrigger exposes a runnable on a custom route.
type HTTPTrigger struct {
	TriggerExtraProperty
	RoutePath                  string     `json:"route_path"`
	RoutePathKey               string     `json:"route_path_key"`
	IsAsync                    bool       `json:"is_async"`
	AuthenticationMethod       string     `json:"authentication_method"`
	HTTPMethod                 HTTPMethod `json:"http_method"`
	StaticAssetConfig          *S3Object  `json:"static_asset_config,omitempty"`
	IsStaticWebsite            bool       `json:"is_static_website"`
	AuthenticationResourcePath *string    `json:"authentication_resource_path,omitempty"`
	WorkspacedRoute            bool       `json:"workspaced_route"`
	WrapBody                   bool       `json:"wrap_body"`
	RawString                  bool       `json:"raw_string"`
}

// NewHTTPTrigger is the body of http_triggers/create and, for
// http_triggers/update, EditHTTPTrigger.
type NewHTTPTrigger struct {
	TriggerTarget
	RoutePath                  string     `json:"route_path"`
	IsAsync                    bool       `json:"is_async"`
	AuthenticationMethod       string     `json:"authentication_method"`
	AuthenticationResourcePath *string    `json:"authentication_resource_path,omitempty"`
	HTTPMethod                 HTTPMethod `json:"http_method"`
	StaticAssetConfig          *S3Object  `json:"static_asset_config,omitempty"`
	WorkspacedRoute            *bool      `json:"workspaced_route,omitempty"`
	IsStaticWebsite            bool       `json:"is_static_website"`
	WrapBody                   *bool      `json:"wrap_body,omitempty"`
	RawString                  *bool      `json:"raw_string,omitempty"`
}

type EditHTTPTrigger = NewHTTPTrigger

// HTTPRouteExists asks whether a route is already taken.
type HTTPRouteExists struct {
	RoutePath       string     `json:"route_path"`
	HTTPMethod      HTTPMethod `json:"http_method"`
	TriggerPath     *string    `json:"trigger_path,omitempty"`
	WorkspacedRoute *bool      `json:"workspaced_route,omitempty"`
}

// S3Object references an object in workspace storage.
type S3Object struct {
	S3           string  `json:"s3"`
	Storage      *string `json:"storage,omitempty"`
	Filename     *string `json:"filename,omitempty"`
	PresignedURL *string `json:"presigned,omitempty"`
}

// WebsocketTrigger starts a runnable for messages read from a websocket.
type WebsocketTrigger struct {
	TriggerExtraProperty
	ListenerState
	URL              string                    `json:"url"`
	Filters          []WebsocketFilter         `json:"filters"`
	InitialMessages  []WebsocketInitialMessage `json:"initial_messages,omitempty"`
	URLRunnableArgs  ScriptArgs                `json:"url_runnable_args,omitempty"`
	CanReturnMessage bool                      `json:"can_return_message"`
}

type NewWebsocketTrigger struct {
	TriggerTarget
	URL              string                    `json:"url"`
	Enabled          *bool                     `json:"enabled,omitempty"`
	Filters          []WebsocketFilter         `json:"filters"`
	InitialMessages  []WebsocketInitialMessage `json:"initial_messages,omitempty"`
	URLRunnableArgs  ScriptArgs                `json:"url_runnable_args,omitempty"`
	CanReturnMessage bool                      `json:"can_return_message"`
}

type EditWebsocketTrigger struct {
	TriggerTarget
	URL              string                    `json:"url"`
	Filters          []WebsocketFilter         `json:"filters"`
	InitialMessages  []WebsocketInitialMessage `json:"initial_messages,omitempty"`
	URLRunnableArgs  ScriptArgs                `json:"url_runnable_args,omitempty"`
	CanReturnMessage bool                      `json:"can_return_message"`
}

// WebsocketFilter matches messages whose top-level Key contains Value.
type WebsocketFilter struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// WebsocketInitialMessage is sent once after connecting. Exactly one of
// RawMessage or RunnableResult is set.
type WebsocketInitialMessage struct {
	RawMessage     *string
	RunnableResult *RunnableResultMessage
}

// RunnableResultMessage sends the result of a runnable as the initial message.
type RunnableResultMessage struct {
	Path   string     `json:"path"`
	Args   ScriptArgs `json:"args"`
	IsFlow bool       `json:"is_flow"`
}

func (m WebsocketInitialMessage) MarshalJSON() ([]byte, error) {
	switch {
	case m.RawMessage != nil:
		return json.Marshal(map[string]string{"raw_message": *m.RawMessage})
	case m.RunnableResult != nil:
		return json.Marshal(map[string]*RunnableResultMessage{"runnable_result": m.RunnableResult})
	}
	return nil, fmt.Errorf("empty websocket initial message")
}

func (m *WebsocketInitialMessage) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("websocket initial message: want exactly one variant, got %d", len(raw))
	}
	*m = WebsocketInitialMessage{}
	for k, v := range raw {
		switch k {
		case "raw_message":
			m.RawMessage = new(string)
			return json.Unmarshal(v, m.RawMessage)
		case "runnable_result":
			m.RunnableResult = new(RunnableResultMessage)
			return json.Unmarshal(v, m.RunnableResult)
		default:
			return fmt.Errorf("unknown websocket initial message variant %q", k)
		}
	}
	return nil
}

// KafkaTrigger consumes topics of a Kafka cluster.
type KafkaTrigger struct {
	TriggerExtraProperty
	ListenerState
	KafkaResourcePath string   `json:"kafka_resource_path"`
	GroupID           string   `json:"group_id"`
	Topics            []string `json:"topics"`
}

type NewKafkaTrigger struct {
	TriggerTarget
	KafkaResourcePath string   `json:"kafka_resource_path"`
	GroupID           string   `json:"group_id"`
	Topics            []string `json:"topics"`
	Enabled           *bool    `json:"enabled,omitempty"`
}

type EditKafkaTrigger struct {
	TriggerTarget
	KafkaResourcePath string   `json:"kafka_resource_path"`
	GroupID           string   `json:"group_id"`
	Topics            []string `json:"topics"`
}

// NatsTrigger subscribes to NATS subjects, optionally through JetStream.
type NatsTrigger struct {
	TriggerExtraProperty
	ListenerState
	NatsResourcePath string   `json:"nats_resource_path"`
	UseJetstream     bool     `json:"use_jetstream"`
	StreamName       *string  `json:"stream_name,omitempty"`
	ConsumerName     *string  `json:"consumer_name,omitempty"`
	Subjects         []string `json:"subjects"`
}

type NewNatsTrigger struct {
	TriggerTarget
	NatsResourcePath string   `json:"nats_resource_path"`
	UseJetstream     bool     `json:"use_jetstream"`
	StreamName       *string  `json:"stream_name,omitempty"`
	ConsumerName     *string  `json:"consumer_name,omitempty"`
	Subjects         []string `json:"subjects"`
	Enabled          *bool    `json:"enabled,omitempty"`
}

type EditNatsTrigger struct {
	TriggerTarget
	NatsResourcePath string   `json:"nats_resource_path"`
	UseJetstream     bool     `json:"use_jetstream"`
	StreamName       *string  `json:"stream_name,omitempty"`
	ConsumerName     *string  `json:"consumer_name,omitempty"`
	Subjects         []string `json:"subjects"`
}

// MqttSubscribeTopic is one topic filter of an MQTT trigger.
type MqttSubscribeTopic struct {
	QoS   MqttQoS `json:"qos"`
	Topic string  `json:"topic"`
}

type MqttV3Config struct {
	CleanSession *bool `json:"clean_session,omitempty"`
}

type MqttV5Config struct {
	CleanStart        *bool  `json:"clean_start,omitempty"`
	TopicAlias        *int64 `json:"topic_alias,omitempty"`
	SessionExpiration *int64 `json:"session_expiration,omitempty"`
}

// MqttTrigger subscribes to topics of an MQTT broker.
type MqttTrigger struct {
	TriggerExtraProperty
	ListenerState
	MqttResourcePath string               `json:"mqtt_resource_path"`
	SubscribeTopics  []MqttSubscribeTopic `json:"subscribe_topics"`
	V3Config         *MqttV3Config        `json:"v3_config,omitempty"`
	V5Config         *MqttV5Config        `json:"v5_config,omitempty"`
	ClientVersion    *MqttClientVersion   `json:"client_version,omitempty"`
	ClientID         *string              `json:"client_id,omitempty"`
}

type NewMqttTrigger struct {
	TriggerTarget
	MqttResourcePath string               `json:"mqtt_resource_path"`
	SubscribeTopics  []MqttSubscribeTopic `json:"subscribe_topics"`
	V3Config         *MqttV3Config        `json:"v3_config,omitempty"`
	V5Config         *MqttV5Config        `json:"v5_config,omitempty"`
	ClientVersion    *MqttClientVersion   `json:"client_version,omitempty"`
	ClientID         *string              `json:"client_id,omitempty"`
	Enabled          *bool                `json:"enabled,omitempty"`
}

type EditMqttTrigger struct {
	TriggerTarget
	MqttResourcePath string               `json:"mqtt_resource_path"`
	SubscribeTopics  []MqttSubscribeTopic `json:"subscribe_topics"`
	V3Config         *MqttV3Config        `json:"v3_config,omitempty"`
	V5Config         *MqttV5Config        `json:"v5_config,omitempty"`
	ClientVersion    *MqttClientVersion   `json:"client_version,omitempty"`
	ClientID         *string              `json:"client_id,omitempty"`
}

// SqsTrigger polls an AWS SQS queue.
type SqsTrigger struct {
	TriggerExtraProperty
	ListenerState
	QueueURL            string   `json:"queue_url"`
	AwsResourcePath     string   `json:"aws_resource_path"`
	AwsAuthResourceType string   `json:"aws_auth_resource_type"`
	MessageAttributes   []string `json:"message_attributes,omitempty"`
}

type NewSqsTrigger struct {
	TriggerTarget
	QueueURL            string   `json:"queue_url"`
	AwsResourcePath     string   `json:"aws_resource_path"`
	AwsAuthResourceType string   `json:"aws_auth_resource_type"`
	MessageAttributes   []string `json:"message_attributes,omitempty"`
	Enabled             *bool    `json:"enabled,omitempty"`
}

type EditSqsTrigger struct {
	TriggerTarget
	QueueURL            string   `json:"queue_url"`
	AwsResourcePath     string   `json:"aws_resource_path"`
	AwsAuthResourceType string   `json:"aws_auth_resource_type"`
	MessageAttributes   []string `json:"message_attributes,omitempty"`
}

// PostgresTrigger listens to logical replication of a Postgres database.
type PostgresTrigger struct {
	TriggerExtraProperty
	ListenerState
	PostgresResourcePath string `json:"postgres_resource_path"`
	ReplicationSlotName  string `json:"replication_slot_name"`
	PublicationName      string `json:"publication_name"`
}

type NewPostgresTrigger struct {
	TriggerTarget
	Enabled              bool             `json:"enabled"`
	PostgresResourcePath string           `json:"postgres_resource_path"`
	ReplicationSlotName  *string          `json:"replication_slot_name,omitempty"`
	PublicationName      *string          `json:"publication_name,omitempty"`
	Publication          *PublicationData `json:"publication,omitempty"`
}

type EditPostgresTrigger struct {
	TriggerTarget
	PostgresResourcePath string           `json:"postgres_resource_path"`
	ReplicationSlotName  string           `json:"replication_slot_name"`
	PublicationName      string           `json:"publication_name"`
	Publication          *PublicationData `json:"publication,omitempty"`
}

// PublicationData selects the tables and operations a publication tracks.
// TransactionToTrack holds at most Insert, Update and Delete.
type PublicationData struct {
	TableToTrack       []Relations `json:"table_to_track,omitempty"`
	TransactionToTrack []string    `json:"transaction_to_track"`
}

type Relations struct {
	SchemaName   string         `json:"schema_name"`
	TableToTrack []TableToTrack `json:"table_to_track"`
}

type TableToTrack struct {
	TableName   string   `json:"table_name"`
	WhereClause *string  `json:"where_clause,omitempty"`
	ColumnsName []string `json:"columns_name,omitempty"`
}

// TriggersCount summarizes the triggers attached to a runnable.
type TriggersCount struct {
	PrimarySchedule *PrimarySchedule `json:"primary_schedule,omitempty"`
	ScheduleCount   *int64           `json:"schedule_count,omitempty"`
	HTTPRoutesCount *int64           `json:"http_routes_count,omitempty"`
	WebhookCount    *int64           `json:"webhook_count,omitempty"`
	EmailCount      *int64           `json:"email_count,omitempty"`
	WebsocketCount  *int64           `json:"websocket_count,omitempty"`
	KafkaCount      *int64           `json:"kafka_count,omitempty"`
	NatsCount       *int64           `json:"nats_count,omitempty"`
	PostgresCount   *int64           `json:"postgres_count,omitempty"`
	MqttCount       *int64           `json:"mqtt_count,omitempty"`
	SqsCount        *int64           `json:"sqs_count,omitempty"`
}

type PrimarySchedule struct {
	Schedule string `json:"schedule"`
}

// Trigger bodies send their required lists as [] when left nil.

func (t NewWebsocketTrigger) MarshalJSON() ([]byte, error) {
	type alias NewWebsocketTrigger
	t.Filters = orEmpty(t.Filters)
	return json.Marshal(alias(t))
}

func (t EditWebsocketTrigger) MarshalJSON() ([]byte, error) {
	type alias EditWebsocketTrigger
	t.Filters = orEmpty(t.Filters)
	return json.Marshal(alias(t))
}

func (t NewKafkaTrigger) MarshalJSON() ([]byte, error) {
	type alias NewKafkaTrigger
	t.Topics = orEmpty(t.Topics)
	return json.Marshal(alias(t))
}

func (t EditKafkaTrigger) MarshalJSON() ([]byte, error) {
	type alias EditKafkaTrigger
	t.Topics = orEmpty(t.Topics)
	return json.Marshal(alias(t))
}

func (t NewNatsTrigger) MarshalJSON() ([]byte, error) {
	type alias NewNatsTrigger
	t.Subjects = orEmpty(t.Subjects)
	return json.Marshal(alias(t))
}

func (t EditNatsTrigger) MarshalJSON() ([]byte, error) {
	type alias EditNatsTrigger
	t.Subjects = orEmpty(t.Subjects)
	return json.Marshal(alias(t))
}

func (t NewMqttTrigger) MarshalJSON() ([]byte, error) {
	type alias NewMqttTrigger
	t.SubscribeTopics = orEmpty(t.SubscribeTopics)
	return json.Marshal(alias(t))
}

func (t EditMqttTrigger) MarshalJSON() ([]byte, error) {
	type alias EditMqttTrigger
	t.SubscribeTopics = orEmpty(t.SubscribeTopics)
	return json.Marshal(alias(t))
}

func (p PublicationData) MarshalJSON() ([]byte, error) {
	type alias PublicationData
	p.TransactionToTrack = orEmpty(p.TransactionToTrack)
	return json.Marshal(alias(p))
}

func (r Relations) MarshalJSON() ([]byte, error) {
	type alias Relations
	r.TableToTrack = orEmpty(r.TableToTrack)
	return json.Marshal(alias(r))
}
