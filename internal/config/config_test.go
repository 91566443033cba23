package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `active: prod
profiles:
  - name: prod
    base_url: https://windmill.example.com/api
    token: file-token
    workspace: main
    timeout: 30s
  - name: local
    base_url: http://localhost:8000/api
    insecure: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func noEnv(string) string { return "" }

func TestLoad(t *testing.T) {
	f, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.Active != "prod" {
		t.Errorf("Active = %q, want %q", f.Active, "prod")
	}
	if len(f.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(f.Profiles))
	}
	if f.Profiles[0].Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", f.Profiles[0].Timeout)
	}
	if !f.Profiles[1].Insecure {
		t.Error("local profile should be insecure")
	}
}

func TestLoad_Missing(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(f.Profiles) != 0 {
		t.Errorf("len(Profiles) = %d, want 0", len(f.Profiles))
	}
}

func TestLoad_Invalid(t *testing.T) {
	if _, err := Load(writeConfig(t, "profiles: [")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestResolve_Precedence(t *testing.T) {
	f, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	env := map[string]string{EnvToken: "env-token", EnvWorkspace: "env-ws"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name      string
		o         Overrides
		getenv    func(string) string
		token     string
		workspace string
		baseURL   string
	}{
		{"file only", Overrides{}, noEnv, "file-token", "main", "https://windmill.example.com/api"},
		{"env over file", Overrides{}, getenv, "env-token", "env-ws", "https://windmill.example.com/api"},
		{"flag over env", Overrides{Token: "flag-token"}, getenv, "flag-token", "env-ws", "https://windmill.example.com/api"},
		{"other profile", Overrides{Profile: "local"}, noEnv, "", "", "http://localhost:8000/api"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Resolve(f, tc.o, tc.getenv)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if p.Token != tc.token {
				t.Errorf("Token = %q, want %q", p.Token, tc.token)
			}
			if p.Workspace != tc.workspace {
				t.Errorf("Workspace = %q, want %q", p.Workspace, tc.workspace)
			}
			if p.BaseURL != tc.baseURL {
				t.Errorf("BaseURL = %q, want %q", p.BaseURL, tc.baseURL)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	if _, err := Resolve(&File{}, Overrides{Profile: "ghost"}, noEnv); err == nil {
		t.Error("expected error for unknown profile")
	}
	if _, err := Resolve(&File{}, Overrides{}, noEnv); err == nil {
		t.Error("expected error when no base URL is configured")
	}
	p, err := Resolve(&File{}, Overrides{BaseURL: "http://localhost:8000/api"}, noEnv)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if p.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", p.Timeout, DefaultTimeout)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	f := &File{}
	f.Upsert(Profile{Name: "dev", BaseURL: "http://localhost:8000/api"})
	f.Upsert(Profile{Name: "dev", BaseURL: "http://localhost:9000/api", Token: "t"})
	f.Active = "dev"
	if err := f.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got.Profiles) != 1 {
		t.Fatalf("len(Profiles) = %d, want 1", len(got.Profiles))
	}
	if got.Profiles[0].BaseURL != "http://localhost:9000/api" {
		t.Errorf("BaseURL = %q", got.Profiles[0].BaseURL)
	}
}
