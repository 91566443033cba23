package models

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleFlow = `{
  "summary": "nightly",
  "value": {
    "modules": [
      {
        "id": "a",
        "value": {
          "type": "rawscript",
          "content": "export async function main(x: string) { return x }",
          "language": "deno",
          "input_transforms": {
            "x": {"type": "javascript", "expr": "flow_input.name"},
            "y": {"type": "static", "value": 3}
          }
        }
      },
      {
        "id": "b",
        "value": {
          "type": "forloopflow",
          "iterator": {"type": "javascript", "expr": "results.a"},
          "skip_failures": true,
          "modules": [
            {"id": "c", "value": {"type": "script", "path": "f/tools/echo", "input_transforms": {}}}
          ]
        },
        "sleep": {"type": "static", "value": 5}
      },
      {
        "id": "d",
        "value": {
          "type": "branchone",
          "branches": [{"expr": "true", "modules": [{"id": "e", "value": {"type": "identity"}}]}],
          "default": []
        }
      }
    ]
  },
  "extra_field_ignored": 1
}`

func TestFlowModuleValue_Decode(t *testing.T) {
	var f OpenFlow
	if err := json.Unmarshal([]byte(sampleFlow), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	mods := f.Value.Modules
	if len(mods) != 3 {
		t.Fatalf("len(modules) = %d, want 3", len(mods))
	}

	raw, ok := mods[0].Value.(RawScript)
	if !ok {
		t.Fatalf("module a = %T, want RawScript", mods[0].Value)
	}
	if raw.Language != ScriptLangDeno {
		t.Errorf("language = %q, want %q", raw.Language, ScriptLangDeno)
	}
	js, ok := raw.InputTransforms["x"].(JavascriptTransform)
	if !ok || js.Expr != "flow_input.name" {
		t.Errorf("input x = %#v, want javascript flow_input.name", raw.InputTransforms["x"])
	}
	if st, ok := raw.InputTransforms["y"].(StaticTransform); !ok || st.Value != float64(3) {
		t.Errorf("input y = %#v, want static 3", raw.InputTransforms["y"])
	}

	loop, ok := mods[1].Value.(ForloopFlow)
	if !ok {
		t.Fatalf("module b = %T, want ForloopFlow", mods[1].Value)
	}
	if _, ok := loop.Iterator.(JavascriptTransform); !ok {
		t.Errorf("iterator = %T, want JavascriptTransform", loop.Iterator)
	}
	if inner, ok := loop.Modules[0].Value.(PathScript); !ok || inner.Path != "f/tools/echo" {
		t.Errorf("inner module = %#v, want PathScript f/tools/echo", loop.Modules[0].Value)
	}
	if _, ok := mods[1].Sleep.(StaticTransform); !ok {
		t.Errorf("sleep = %T, want StaticTransform", mods[1].Sleep)
	}

	br, ok := mods[2].Value.(BranchOne)
	if !ok {
		t.Fatalf("module d = %T, want BranchOne", mods[2].Value)
	}
	if _, ok := br.Branches[0].Modules[0].Value.(Identity); !ok {
		t.Errorf("branch module = %T, want Identity", br.Branches[0].Modules[0].Value)
	}
}

func TestFlowModuleValue_EncodeInjectsType(t *testing.T) {
	tests := []struct {
		name string
		v    FlowModuleValue
		want string
	}{
		{"identity", Identity{}, `{"type":"identity"}`},
		{"path script", PathScript{Path: "u/admin/x", InputTransforms: InputTransforms{}}, `"type":"script"`},
		{"raw script", RawScript{Content: "x", Language: ScriptLangBash, InputTransforms: InputTransforms{}}, `"type":"rawscript"`},
		{"whileloop", WhileloopFlow{Modules: []FlowModule{}}, `"type":"whileloopflow"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(b), tt.want) {
				t.Errorf("Marshal = %s, want it to contain %s", b, tt.want)
			}
		})
	}
}

func TestFlowModuleValue_RoundTrip(t *testing.T) {
	var f OpenFlow
	if err := json.Unmarshal([]byte(sampleFlow), &f); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	var again OpenFlow
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatalf("re-decoding %s: %v", b, err)
	}
	if _, ok := again.Value.Modules[1].Value.(ForloopFlow); !ok {
		t.Errorf("module b after round trip = %T, want ForloopFlow", again.Value.Modules[1].Value)
	}
}

func TestFlowModuleValue_UnknownType(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown", `{"type":"teleport"}`},
		{"missing", `{"path":"f/x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFlowModuleValue([]byte(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestJob_Decode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		completed bool
	}{
		{"tagged completed", `{"type":"CompletedJob","id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","success":true,"job_kind":"script"}`, true},
		{"tagged queued", `{"type":"QueuedJob","id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","running":false,"job_kind":"script"}`, false},
		{"untagged queued", `{"id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","running":true,"job_kind":"flow"}`, false},
		{"untagged completed", `{"id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","success":false,"job_kind":"flow"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j Job
			if err := json.Unmarshal([]byte(tt.in), &j); err != nil {
				t.Fatal(err)
			}
			if (j.Completed != nil) != tt.completed {
				t.Errorf("Completed set = %v, want %v", j.Completed != nil, tt.completed)
			}
			if (j.Queued != nil) == tt.completed {
				t.Errorf("Queued set = %v, want %v", j.Queued != nil, !tt.completed)
			}
			if j.ID().String() != "2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d" {
				t.Errorf("ID = %s", j.ID())
			}
		})
	}
}

func TestJob_EncodeTagged(t *testing.T) {
	var j Job
	if err := json.Unmarshal([]byte(`{"id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","running":true,"job_kind":"flow"}`), &j); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(j)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), `{"type":"QueuedJob",`) {
		t.Errorf("Marshal = %s, want QueuedJob tag first", b)
	}
	if _, err := json.Marshal(Job{}); err == nil {
		t.Error("marshaling an empty Job succeeded")
	}
}

func TestWebsocketInitialMessage(t *testing.T) {
	in := `[{"raw_message":"subscribe"},{"runnable_result":{"path":"f/ws/init","args":{},"is_flow":false}}]`
	var msgs []WebsocketInitialMessage
	if err := json.Unmarshal([]byte(in), &msgs); err != nil {
		t.Fatal(err)
	}
	if msgs[0].RawMessage == nil || *msgs[0].RawMessage != "subscribe" {
		t.Errorf("msgs[0] = %#v, want raw_message subscribe", msgs[0])
	}
	if msgs[1].RunnableResult == nil || msgs[1].RunnableResult.Path != "f/ws/init" {
		t.Errorf("msgs[1] = %#v, want runnable_result f/ws/init", msgs[1])
	}
	out, err := json.Marshal(msgs[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"raw_message":"subscribe"}` {
		t.Errorf("Marshal = %s", out)
	}
	var bad WebsocketInitialMessage
	if err := json.Unmarshal([]byte(`{"raw_message":"a","runnable_result":{}}`), &bad); err == nil {
		t.Error("expected error for two variants")
	}
}

func TestOptionalFieldOmission(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		want    string
		absents []string
	}{
		{
			name:    "edit variable without description",
			v:       EditVariable{Value: Ptr("s3cret")},
			want:    `{"value":"s3cret"}`,
			absents: []string{"description", "null"},
		},
		{
			name:    "create resource without description",
			v:       CreateResource{Path: "f/a", ResourceType: "postgresql", Value: map[string]any{"host": "db"}},
			absents: []string{"description"},
		},
		{
			name:    "edit schedule without handlers",
			v:       EditSchedule{Schedule: "0 0 * * * *", Timezone: "UTC", Args: ScriptArgs{}},
			absents: []string{"on_failure", "retry", "null"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want != "" && string(b) != tt.want {
				t.Errorf("Marshal = %s, want %s", b, tt.want)
			}
			for _, a := range tt.absents {
				if strings.Contains(string(b), a) {
					t.Errorf("Marshal = %s, must not contain %q", b, a)
				}
			}
		})
	}
}

func TestS3Resource_CamelCase(t *testing.T) {
	b, err := json.Marshal(S3Resource{Bucket: "b", EndPoint: "minio:9000", UseSSL: true, PathStyle: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{`"endPoint"`, `"useSSL"`, `"pathStyle"`} {
		if !strings.Contains(string(b), k) {
			t.Errorf("Marshal = %s, want key %s", b, k)
		}
	}
}

func TestRequiredCollections_EncodeEmpty(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"path script transforms", PathScript{Path: "f/x"}, `"input_transforms":{}`},
		{"raw script transforms", RawScript{Content: "x", Language: ScriptLangBash}, `"input_transforms":{}`},
		{"path flow transforms", PathFlow{Path: "f/x"}, `"input_transforms":{}`},
		{"flow value modules", FlowValue{}, `{"modules":[]}`},
		{"forloop modules", ForloopFlow{Iterator: JavascriptTransform{Expr: "[1]"}}, `"modules":[]`},
		{"branchall branches", BranchAll{}, `"branches":[]`},
		{"branchone default", BranchOne{}, `"default":[]`},
		{"schedule args", NewSchedule{Path: "f/s"}, `"args":{}`},
		{"flow extra perms", FlowMetadata{}, `"extra_perms":{}`},
		{"kafka topics", NewKafkaTrigger{}, `"topics":[]`},
		{"websocket filters", EditWebsocketTrigger{}, `"filters":[]`},
		{"publication", PublicationData{}, `"transaction_to_track":[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(b), tt.want) {
				t.Errorf("Marshal = %s, want it to contain %s", b, tt.want)
			}
			if strings.Contains(string(b), "null") {
				t.Errorf("Marshal = %s, want no null", b)
			}
		})
	}
}

func TestScriptArgs_OmitEmptyStillOmits(t *testing.T) {
	b, err := json.Marshal(RunnableResultMessage{Path: "f/x"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"path":"f/x","args":{},"is_flow":false}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	b, err = json.Marshal(NewWebsocketTrigger{URL: "wss://x"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "url_runnable_args") {
		t.Errorf("Marshal = %s, want url_runnable_args omitted", b)
	}
}

func TestFlowStatus_FailureModule(t *testing.T) {
	const payload = `{"step":1,"modules":[{"type":"Success","id":"a"}],` +
		`"failure_module":{"type":"Failure","id":"failure","parent_module":"a"}}`
	var s FlowStatus
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatal(err)
	}
	if s.FailureModule.Type != FlowStatusFailure {
		t.Errorf("FailureModule.Type = %q, want %q", s.FailureModule.Type, FlowStatusFailure)
	}
	if p := s.FailureModule.ParentModule; p == nil || *p != "a" {
		t.Errorf("FailureModule.ParentModule = %v, want a", p)
	}
}
