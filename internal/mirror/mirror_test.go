package mirror

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rflorenc/windmill-client/internal/api"
	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

const script = "export async function main() { return 42 }\n"

func newClient(t *testing.T) *client.Client {
	t.Helper()
	srv := &api.Server{Store: api.NewStore("admin@windmill.dev", "demo", "staging"), Token: "tok"}
	ts := httptest.NewServer(api.NewRouter(srv))
	t.Cleanup(ts.Close)
	return client.NewWithClient(ts.URL+"/api", ts.Client(), client.WithToken("tok"))
}

// seed fills workspace demo with one object of every kind plus a secret.
func seed(t *testing.T, c *client.Client) {
	t.Helper()
	ctx := context.Background()
	must := func(_ string, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(c.CreateScript(ctx, "demo", models.NewScript{Path: "f/etl/answer", Summary: "answer", Content: script, Language: models.ScriptLangBun}))
	flow := models.CreateFlowBody{}
	flow.Path = "f/etl/pipeline"
	flow.Summary = "pipeline"
	must(c.CreateFlow(ctx, "demo", flow))
	desc := "primary db"
	must(c.CreateResource(ctx, "demo", models.CreateResource{
		Path:         "f/etl/db",
		ResourceType: "postgresql",
		Description:  &desc,
		Value:        map[string]any{"host": "db", "port": 5432},
	}, client.CreateResourceParams{}))
	must(c.CreateVariable(ctx, "demo", models.CreateVariable{Path: "f/etl/region", Value: "eu-west-1"}, client.VariableWriteParams{}))
	must(c.CreateVariable(ctx, "demo", models.CreateVariable{Path: "f/etl/password", Value: "hunter2", IsSecret: true}, client.VariableWriteParams{}))
	must(c.CreateSchedule(ctx, "demo", models.NewSchedule{
		Path:       "f/etl/nightly",
		Schedule:   "0 0 2 * * *",
		Timezone:   "UTC",
		ScriptPath: "f/etl/answer",
		Args:       models.ScriptArgs{"full": true},
	}))
}

func TestPullPush(t *testing.T) {
	c := newClient(t)
	seed(t, c)
	ctx := context.Background()
	dir := t.TempDir()
	var lines []string
	opts := Options{Logger: func(s string) { lines = append(lines, s) }}

	res, err := Pull(ctx, c, "demo", dir, opts)
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if res.Written != 5 || res.Skipped != 1 {
		t.Errorf("Pull = %s, want 5 written and 1 skipped", res)
	}
	if len(lines) == 0 {
		t.Errorf("Pull logged nothing")
	}

	for _, name := range []string{
		"f/etl/answer.bun.ts",
		"f/etl/answer.script.yaml",
		"f/etl/pipeline.flow.yaml",
		"f/etl/db.resource.yaml",
		"f/etl/region.variable.yaml",
		"f/etl/nightly.schedule.yaml",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "f", "etl", "password.variable.yaml")); !os.IsNotExist(err) {
		t.Errorf("secret variable was written")
	}
	got, err := os.ReadFile(filepath.Join(dir, "f", "etl", "answer.bun.ts"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != script {
		t.Errorf("content = %q, want %q", got, script)
	}

	t.Run("DryRun", func(t *testing.T) {
		plan, res, err := Push(ctx, c, "staging", dir, Options{DryRun: true})
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if n := plan.Count(ActionCreate); n != 5 {
			t.Errorf("planned creates = %d, want 5", n)
		}
		if res != (Result{}) {
			t.Errorf("dry run result = %s, want zero", res)
		}
		if ok, _ := c.ExistsScriptByPath(ctx, "staging", "f/etl/answer"); ok {
			t.Errorf("dry run deployed a script")
		}
	})

	t.Run("Create", func(t *testing.T) {
		_, res, err := Push(ctx, c, "staging", dir, Options{})
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if res.Created != 5 || res.Failed != 0 {
			t.Errorf("Push = %s, want 5 created", res)
		}
		sc, err := c.GetScriptByPath(ctx, "staging", "f/etl/answer")
		if err != nil {
			t.Fatalf("GetScriptByPath: %v", err)
		}
		if sc.Content != script || sc.Summary != "answer" {
			t.Errorf("script = %q %q", sc.Summary, sc.Content)
		}
		r, err := c.GetResource(ctx, "staging", "f/etl/db")
		if err != nil {
			t.Fatalf("GetResource: %v", err)
		}
		if r.Description == nil || *r.Description != "primary db" {
			t.Errorf("resource description = %v, want %q", r.Description, "primary db")
		}
		s, err := c.GetSchedule(ctx, "staging", "f/etl/nightly")
		if err != nil {
			t.Fatalf("GetSchedule: %v", err)
		}
		if s.Args["full"] != true {
			t.Errorf("schedule args = %v", s.Args)
		}
	})

	t.Run("Update", func(t *testing.T) {
		_, res, err := Push(ctx, c, "staging", dir, Options{Exclude: map[Kind][]string{KindVariable: {"f/etl/region"}}})
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		// The unchanged script and the excluded variable are skipped.
		if res.Updated != 3 || res.Skipped != 2 || res.Created != 0 {
			t.Errorf("Push = %s, want 3 updated and 2 skipped", res)
		}
	})
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"f/etl/answer", true},
		{"u/admin/x", true},
		{"../etc/passwd", false},
		{"f/../../x", false},
		{"/abs", false},
		{"f//x", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := localPath("/root", tt.path, ".flow.yaml")
			if (err == nil) != tt.ok {
				t.Errorf("localPath(%q) err = %v, want ok=%v", tt.path, err, tt.ok)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		path string
		ok   bool
	}{
		{"f/etl/answer.script.yaml", KindScript, "f/etl/answer", true},
		{"f/etl/pipeline.flow.yaml", KindFlow, "f/etl/pipeline", true},
		{"u/admin/db.resource.yaml", KindResource, "u/admin/db", true},
		{"f/etl/answer.bun.ts", "", "", false},
		{".flow.yaml", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, path, ok := kindOf(tt.name)
			if kind != tt.kind || path != tt.path || ok != tt.ok {
				t.Errorf("kindOf(%q) = %q, %q, %v, want %q, %q, %v", tt.name, kind, path, ok, tt.kind, tt.path, tt.ok)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(models.ScriptLangPython3); got != "py" {
		t.Errorf("Extension(python3) = %q, want %q", got, "py")
	}
	if got := Extension(models.ScriptLang("cobol")); got != "txt" {
		t.Errorf("Extension(cobol) = %q, want %q", got, "txt")
	}
}

func TestLanguageOf(t *testing.T) {
	tests := []struct {
		name string
		lang models.ScriptLang
		ok   bool
	}{
		{"f/etl/answer.bun.ts", models.ScriptLangBun, true},
		{"report.pg.sql", models.ScriptLangPostgresql, true},
		{"main.py", models.ScriptLangPython3, true},
		{"site.playbook.yml", models.ScriptLangAnsible, true},
		{"plain.ts", "", false},
		{"notes.txt", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := LanguageOf(tt.name)
			if lang != tt.lang || ok != tt.ok {
				t.Errorf("LanguageOf(%q) = %q, %v, want %q, %v", tt.name, lang, ok, tt.lang, tt.ok)
			}
		})
	}
}
