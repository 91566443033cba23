package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func checkEnum[T ~string](t *testing.T, name string, values []T, parse func(string) (T, error)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(values) == 0 {
			t.Fatal("no values")
		}
		seen := make(map[string]bool)
		for _, v := range values {
			if seen[string(v)] {
				t.Errorf("duplicate literal %q", v)
			}
			seen[string(v)] = true
			got, err := parse(string(v))
			if err != nil {
				t.Errorf("parse(%q) error: %v", v, err)
				continue
			}
			if got != v {
				t.Errorf("parse(%q) = %q, want %q", v, got, v)
			}
		}
		_, err := parse("not_a_real_kind")
		var enumErr *EnumError
		if !errors.As(err, &enumErr) {
			t.Fatalf("parse(not_a_real_kind) error = %v, want *EnumError", err)
		}
		if enumErr.Value != "not_a_real_kind" {
			t.Errorf("EnumError.Value = %q, want %q", enumErr.Value, "not_a_real_kind")
		}
	})
}

func TestEnums_RoundTrip(t *testing.T) {
	checkEnum(t, "AIProvider", AIProviderValues(), ParseAIProvider)
	checkEnum(t, "AppExecutionMode", AppExecutionModeValues(), ParseAppExecutionMode)
	checkEnum(t, "AuditLogActionKind", AuditLogActionKindValues(), ParseAuditLogActionKind)
	checkEnum(t, "AuditOperation", AuditOperationValues(), ParseAuditOperation)
	checkEnum(t, "CaptureTriggerKind", CaptureTriggerKindValues(), ParseCaptureTriggerKind)
	checkEnum(t, "JobKind", JobKindValues(), ParseJobKind)
	checkEnum(t, "HTTPMethod", HTTPMethodValues(), ParseHTTPMethod)
	checkEnum(t, "FlowStatusModuleType", FlowStatusModuleTypeValues(), ParseFlowStatusModuleType)
	checkEnum(t, "BranchChosenType", BranchChosenTypeValues(), ParseBranchChosenType)
	checkEnum(t, "GitSyncObjectType", GitSyncObjectTypeValues(), ParseGitSyncObjectType)
	checkEnum(t, "DeployUIObjectType", DeployUIObjectTypeValues(), ParseDeployUIObjectType)
	checkEnum(t, "LoginType", LoginTypeValues(), ParseLoginType)
	checkEnum(t, "LargeFileStorageType", LargeFileStorageTypeValues(), ParseLargeFileStorageType)
	checkEnum(t, "MqttClientVersion", MqttClientVersionValues(), ParseMqttClientVersion)
	checkEnum(t, "MqttQoS", MqttQoSValues(), ParseMqttQoS)
	checkEnum(t, "ScriptKind", ScriptKindValues(), ParseScriptKind)
	checkEnum(t, "ScriptLang", ScriptLangValues(), ParseScriptLang)
	checkEnum(t, "PreviewKind", PreviewKindValues(), ParsePreviewKind)
	checkEnum(t, "RunnableType", RunnableTypeValues(), ParseRunnableType)
	checkEnum(t, "FilePreviewContentType", FilePreviewContentTypeValues(), ParseFilePreviewContentType)
	checkEnum(t, "MainArgSignatureType", MainArgSignatureTypeValues(), ParseMainArgSignatureType)
	checkEnum(t, "AclKind", AclKindValues(), ParseAclKind)
	checkEnum(t, "DraftKind", DraftKindValues(), ParseDraftKind)
	checkEnum(t, "TriggerKind", TriggerKindValues(), ParseTriggerKind)
}

func TestEnums_WireAliases(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"acl group", AclKindGroup.String(), "group_"},
		{"acl raw app", AclKindRawApp.String(), "raw_app"},
		{"job kind preview", JobKindPreview.String(), "preview"},
		{"job kind script hub", JobKindScriptHub.String(), "script_hub"},
		{"audit run script", AuditOperationJobsRunScript.String(), "jobs.run.script"},
		{"action kind delete", AuditLogActionDelete.String(), "Delete"},
		{"runnable by path", RunnableScriptPath.String(), "ScriptPath"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("literal = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnums_ParsePreview(t *testing.T) {
	got, err := ParseJobKind(JobKindPreview.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != JobKindPreview {
		t.Errorf("ParseJobKind = %q, want %q", got, JobKindPreview)
	}
	if _, err := ParseAclKind("group"); err == nil {
		t.Error("ParseAclKind(group) succeeded, want error for the unaliased name")
	}
}

func TestEnums_JSONDecodeRejectsUnknown(t *testing.T) {
	var job CompletedJob
	err := json.Unmarshal([]byte(`{"id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","job_kind":"not_a_real_kind"}`), &job)
	if err == nil {
		t.Fatal("expected error for unknown job_kind")
	}
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Errorf("error = %v, want *EnumError in chain", err)
	}

	if err := json.Unmarshal([]byte(`{"id":"2b2a6cd4-7c43-4a0e-8d9e-8f9f0a1b2c3d","job_kind":"flow"}`), &job); err != nil {
		t.Fatalf("decoding known job_kind: %v", err)
	}
	if job.JobKind != JobKindFlow {
		t.Errorf("JobKind = %q, want %q", job.JobKind, JobKindFlow)
	}
}

func TestEnums_ValuesIsACopy(t *testing.T) {
	v := JobKindValues()
	v[0] = "mutated"
	if JobKindValues()[0] == "mutated" {
		t.Error("JobKindValues exposes its backing array")
	}
}
