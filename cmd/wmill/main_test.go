package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/internal/api"
	"github.com/rflorenc/windmill-client/internal/config"
	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

const testToken = "dev-token"

// cli runs wmill against an in-memory server with its own config file.
type cli struct {
	t       *testing.T
	baseURL string
	config  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	for _, k := range []string{config.EnvBaseURL, config.EnvToken, config.EnvWorkspace} {
		t.Setenv(k, "")
	}
	srv := &api.Server{
		Store:    api.NewStore("admin@windmill.dev", "demo"),
		Token:    testToken,
		Version:  client.APIVersion,
		Password: "changeme",
	}
	ts := httptest.NewServer(api.NewRouter(srv))
	t.Cleanup(ts.Close)
	return &cli{t: t, baseURL: ts.URL, config: filepath.Join(t.TempDir(), "config.yaml")}
}

// run executes args with connection flags and stdin, returning stdout.
func (c *cli) runIn(stdin string, args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", c.config, "--base-url", c.baseURL}, args...))
	err := root.Execute()
	return out.String(), err
}

// run executes a workspace command authenticated with the dev token.
func (c *cli) run(args ...string) string {
	c.t.Helper()
	out, err := c.runIn("", append([]string{"--token", testToken, "--workspace", "demo"}, args...)...)
	if err != nil {
		c.t.Fatalf("wmill %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	out := c.run("version")
	if want := "Server: CE v" + client.APIVersion; !strings.Contains(out, want) {
		t.Errorf("version output = %q, want it to contain %q", out, want)
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("version output warns on a matching server: %q", out)
	}
}

func TestLoginSavesToken(t *testing.T) {
	c := newCLI(t)
	if _, err := c.runIn("wrong\n", "login", "--email", "admin@windmill.dev"); err == nil {
		t.Fatal("login with a wrong password succeeded")
	}
	out, err := c.runIn("changeme\n", "login", "--email", "admin@windmill.dev")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "profile default") {
		t.Errorf("login output = %q", out)
	}

	f, err := config.Load(c.config)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := f.Profile("default")
	if !ok {
		t.Fatalf("profile default not saved: %+v", f)
	}
	if p.Token != testToken {
		t.Errorf("saved token = %q, want %q", p.Token, testToken)
	}
	if f.Active != "default" {
		t.Errorf("Active = %q, want %q", f.Active, "default")
	}

	// The saved profile now authenticates without --token.
	out, err = c.runIn("", "--workspace", "demo", "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.HasPrefix(out, "admin@windmill.dev as admin in demo") {
		t.Errorf("whoami = %q", out)
	}
}

func TestScriptPushRunWait(t *testing.T) {
	c := newCLI(t)
	src := filepath.Join(t.TempDir(), "echo.bun.ts")
	content := "export async function main(x: number) { return { x } }\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c.run("scripts", "push", src, "--path", "f/cli/echo", "--summary", "echo")
	c.run("scripts", "push", src, "--path", "f/cli/echo", "--summary", "echo v2")

	var s models.Script
	if err := json.Unmarshal([]byte(c.run("--json", "scripts", "get", "f/cli/echo")), &s); err != nil {
		t.Fatal(err)
	}
	if s.Language != models.ScriptLangBun {
		t.Errorf("language = %q, want %q", s.Language, models.ScriptLangBun)
	}
	if len(s.ParentHashes) != 1 {
		t.Errorf("parent hashes = %v, want one", s.ParentHashes)
	}
	if got := c.run("scripts", "get", "--content", "f/cli/echo"); got != content {
		t.Errorf("content = %q, want %q", got, content)
	}

	if got := c.run("scripts", "run", "f/cli/echo", "-a", "x=1", "--wait"); got != "{\"x\":1}\n" {
		t.Errorf("run --wait = %q, want %q", got, "{\"x\":1}\n")
	}

	out := c.run("scripts", "run", "f/cli/echo", "--args-json", `{"x": 2}`)
	id, err := uuid.Parse(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("run output %q is not a job id", out)
	}
	if got := c.run("jobs", "wait", id.String()); got != "{\"x\":2}\n" {
		t.Errorf("jobs wait = %q", got)
	}
	if got := c.run("jobs", "result", id.String()); got != "{\"x\":2}\n" {
		t.Errorf("jobs result = %q", got)
	}
	if list := c.run("jobs", "list", "--script-path", "f/cli/echo"); strings.Count(list, "success") != 2 {
		t.Errorf("jobs list = %q, want two successful jobs", list)
	}
}

func TestJobsFollowAndCancel(t *testing.T) {
	followInterval = 10 * time.Millisecond
	c := newCLI(t)
	src := filepath.Join(t.TempDir(), "noop.py")
	if err := os.WriteFile(src, []byte("def main():\n    return 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.run("scripts", "push", src, "--path", "f/cli/noop")

	id := strings.TrimSpace(c.run("scripts", "run", "f/cli/noop", "--delay", "1"))
	logs := c.run("jobs", "logs", "--follow", id)
	if !strings.HasSuffix(logs, "job completed\n") {
		t.Errorf("followed logs = %q, want them to end with the completion line", logs)
	}

	id = strings.TrimSpace(c.run("scripts", "run", "f/cli/noop", "--delay", "3600"))
	c.run("jobs", "cancel", id, "--reason", "not needed")
	if _, err := c.runIn("", "--token", testToken, "--workspace", "demo", "jobs", "cancel", id); err == nil {
		t.Error("cancelling a completed job succeeded")
	}
	if list := c.run("jobs", "list", "--success", "false"); !strings.Contains(list, "canceled") {
		t.Errorf("jobs list = %q, want a canceled job", list)
	}
}

func TestFlowPush(t *testing.T) {
	c := newCLI(t)
	def := filepath.Join(t.TempDir(), "pipeline.flow.yaml")
	yamlDef := "path: f/cli/pipeline\nsummary: pipeline\nvalue:\n  modules: []\n"
	if err := os.WriteFile(def, []byte(yamlDef), 0o644); err != nil {
		t.Fatal(err)
	}
	if out := c.run("flows", "push", def); out != "Created flow f/cli/pipeline\n" {
		t.Errorf("first push = %q", out)
	}
	if out := c.run("flows", "push", def); out != "Updated flow f/cli/pipeline\n" {
		t.Errorf("second push = %q", out)
	}
	if out := c.run("flows", "list"); !strings.Contains(out, "f/cli/pipeline") {
		t.Errorf("flows list = %q", out)
	}
	if got := c.run("flows", "run", "f/cli/pipeline", "--wait"); got != "{}\n" {
		t.Errorf("flows run --wait = %q, want %q", got, "{}\n")
	}
}

func TestVariablesAndResources(t *testing.T) {
	c := newCLI(t)
	c.run("variables", "set", "f/cli/region", "eu-west-1")
	c.run("variables", "set", "f/cli/token", "s3cr3t", "--secret")
	if out := c.run("variables", "set", "f/cli/region", "us-east-1"); out != "Updated variable f/cli/region\n" {
		t.Errorf("second set = %q", out)
	}
	if got := c.run("variables", "get", "f/cli/region"); got != "us-east-1\n" {
		t.Errorf("variables get = %q", got)
	}
	list := c.run("variables", "list")
	if strings.Contains(list, "s3cr3t") {
		t.Errorf("variables list leaks a secret: %q", list)
	}

	c.run("resources", "create", "f/cli/db", "--type", "postgresql", "--value", `{"host":"db","port":5432}`)
	if got := c.run("resources", "get", "--value", "f/cli/db"); !strings.Contains(got, `"port": 5432`) {
		t.Errorf("resources get --value = %q", got)
	}
	c.run("resources", "delete", "f/cli/db")
	if _, err := c.runIn("", "--token", testToken, "--workspace", "demo", "resources", "get", "f/cli/db"); !client.IsNotFound(err) {
		t.Errorf("get after delete: err = %v, want not found", err)
	}
}

func TestSchedules(t *testing.T) {
	c := newCLI(t)
	src := filepath.Join(t.TempDir(), "tick.sh")
	if err := os.WriteFile(src, []byte("echo tick\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.run("scripts", "push", src, "--path", "f/cli/tick")

	if _, err := c.runIn("", "--token", testToken, "--workspace", "demo", "schedules", "create", "f/cli/every", "--cron", "*/5 * * * *", "--script", "f/cli/tick"); err == nil {
		t.Error("a five-field expression was accepted")
	}
	c.run("schedules", "create", "f/cli/every", "--cron", "0 */5 * * * *", "--script", "f/cli/tick")
	c.run("schedules", "disable", "f/cli/every")
	if out := c.run("schedules", "get", "f/cli/every"); !strings.Contains(out, "Enabled:  false") {
		t.Errorf("schedules get = %q", out)
	}

	for _, local := range []bool{true, false} {
		args := []string{"schedules", "preview", "0 0 * * * *", "-n", "3"}
		if local {
			args = append(args, "--local")
		}
		lines := strings.Split(strings.TrimSpace(c.run(args...)), "\n")
		if len(lines) != 3 {
			t.Errorf("preview local=%v = %q, want 3 ticks", local, lines)
		}
	}
}

func TestSyncPullPush(t *testing.T) {
	c := newCLI(t)
	c.run("variables", "set", "f/cli/region", "eu-west-1")
	dir := t.TempDir()
	if out := c.run("sync", "pull", dir); !strings.Contains(out, "1 written") {
		t.Errorf("sync pull = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "f", "cli", "region.variable.yaml")); err != nil {
		t.Errorf("pulled file missing: %v", err)
	}
	if out := c.run("sync", "push", dir, "--dry-run"); !strings.Contains(out, "update") {
		t.Errorf("sync push --dry-run = %q", out)
	}
	if _, err := c.runIn("", "--token", testToken, "--workspace", "demo", "sync", "push", dir, "--exclude", "bogus:x"); err == nil {
		t.Error("an unknown exclude kind was accepted")
	}
}

func TestWorkspaceRequired(t *testing.T) {
	c := newCLI(t)
	_, err := c.runIn("", "--token", testToken, "scripts", "list")
	if err == nil || !strings.Contains(err.Error(), "no workspace") {
		t.Errorf("err = %v, want a missing workspace error", err)
	}
	if out := c.run("workspaces", "list"); !strings.Contains(out, "demo") {
		t.Errorf("workspaces list = %q", out)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		raw   string
		want  models.ScriptArgs
		err   bool
	}{
		{"json values", []string{"n=3", "ok=true", "s=hello"}, "", models.ScriptArgs{"n": float64(3), "ok": true, "s": "hello"}, false},
		{"merge", []string{"b=2"}, `{"a": 1, "b": 1}`, models.ScriptArgs{"a": float64(1), "b": float64(2)}, false},
		{"value with equals", []string{"q=a=b"}, "", models.ScriptArgs{"q": "a=b"}, false},
		{"missing equals", []string{"oops"}, "", nil, true},
		{"bad json", nil, "{", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.pairs, tt.raw)
			if (err != nil) != tt.err {
				t.Fatalf("parseArgs err = %v, want error %v", err, tt.err)
			}
			if tt.err {
				return
			}
			gb, _ := json.Marshal(got)
			wb, _ := json.Marshal(tt.want)
			if string(gb) != string(wb) {
				t.Errorf("parseArgs = %s, want %s", gb, wb)
			}
		})
	}
}
