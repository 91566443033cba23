package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

const (
	testToken     = "dev-token"
	testWorkspace = "demo"
)

func ptr[T any](v T) *T { return &v }

// newDevServer starts a dev server with one empty workspace and returns a
// client authenticated against it.
func newDevServer(t *testing.T, opts ...client.Option) (*httptest.Server, *client.Client) {
	t.Helper()
	srv := &Server{
		Store:    NewStore("admin@windmill.dev", testWorkspace),
		Token:    testToken,
		Version:  client.APIVersion,
		Password: "changeme",
	}
	ts := httptest.NewServer(NewRouter(srv))
	t.Cleanup(ts.Close)
	opts = append([]client.Option{client.WithToken(testToken)}, opts...)
	return ts, client.NewWithClient(ts.URL+"/api", ts.Client(), opts...)
}

func deployScript(t *testing.T, c *client.Client, path string) string {
	t.Helper()
	hash, err := c.CreateScript(context.Background(), testWorkspace, models.NewScript{
		Path:     path,
		Summary:  "echo",
		Content:  "export async function main(x: number) { return { x } }",
		Language: models.ScriptLangBun,
	})
	if err != nil {
		t.Fatalf("CreateScript: %v", err)
	}
	return hash
}

func TestVersionIsPublic(t *testing.T) {
	ts, _ := newDevServer(t)
	anon := client.NewWithClient(ts.URL+"/api", ts.Client())

	got, err := anon.GetVersion(context.Background())
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if want := "CE v" + client.APIVersion; got != want {
		t.Errorf("GetVersion = %q, want %q", got, want)
	}

	_, err = anon.ListWorkspaces(context.Background())
	if code := client.StatusCode(err); code != http.StatusUnauthorized {
		t.Errorf("ListWorkspaces without token: status = %d, want %d", code, http.StatusUnauthorized)
	}
}

func TestLoginAndWhoami(t *testing.T) {
	ts, c := newDevServer(t)
	ctx := context.Background()
	anon := client.NewWithClient(ts.URL+"/api", ts.Client())

	token, err := anon.Login(ctx, models.Login{Email: "admin@windmill.dev", Password: "changeme"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != testToken {
		t.Errorf("token = %q, want %q", token, testToken)
	}
	if _, err := anon.Login(ctx, models.Login{Email: "admin@windmill.dev", Password: "wrong"}); client.StatusCode(err) != http.StatusUnauthorized {
		t.Errorf("bad password: err = %v, want 401", err)
	}

	me, err := c.Whoami(ctx, testWorkspace)
	if err != nil {
		t.Fatalf("Whoami: %v", err)
	}
	if me.Username != "admin" || !me.IsAdmin {
		t.Errorf("Whoami = %+v, want admin", me)
	}
	if _, err := c.Whoami(ctx, "missing"); !client.IsNotFound(err) {
		t.Errorf("Whoami(missing): err = %v, want 404", err)
	}
}

func TestWorkspaces(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()

	if _, err := c.CreateWorkspace(ctx, models.CreateWorkspace{ID: "acme", Name: "Acme"}); err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if _, err := c.CreateWorkspace(ctx, models.CreateWorkspace{ID: "acme"}); client.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("duplicate workspace: err = %v, want 400", err)
	}
	ws, err := c.ListWorkspaces(ctx)
	if err != nil {
		t.Fatalf("ListWorkspaces: %v", err)
	}
	var ids []string
	for _, w := range ws {
		ids = append(ids, w.ID)
	}
	if got := strings.Join(ids, ","); got != "acme,demo" {
		t.Errorf("workspaces = %q, want %q", got, "acme,demo")
	}
}

func TestResources(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	const path = "f/my folder/db"

	_, err := c.CreateResource(ctx, testWorkspace, models.CreateResource{
		Path:         path,
		ResourceType: "postgresql",
		Value:        map[string]any{"host": "localhost", "port": 5432},
	}, client.CreateResourceParams{})
	if err != nil {
		t.Fatalf("CreateResource: %v", err)
	}
	_, err = c.CreateResource(ctx, testWorkspace, models.CreateResource{Path: "u/admin/token", ResourceType: "c_token", Value: "x"}, client.CreateResourceParams{})
	if err != nil {
		t.Fatalf("CreateResource: %v", err)
	}

	res, err := c.GetResource(ctx, testWorkspace, path)
	if err != nil {
		t.Fatalf("GetResource: %v", err)
	}
	if res.ResourceType != "postgresql" {
		t.Errorf("ResourceType = %q, want %q", res.ResourceType, "postgresql")
	}

	list, err := c.ListResources(ctx, testWorkspace, client.ListResourcesParams{ResourceType: ptr("postgresql")})
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(list) != 1 || list[0].Path != path {
		t.Errorf("ListResources = %+v, want only %s", list, path)
	}

	if _, err := c.UpdateResource(ctx, testWorkspace, path, models.EditResource{Path: ptr("f/my folder/pg")}); err != nil {
		t.Fatalf("UpdateResource: %v", err)
	}
	exists, err := c.ExistsResource(ctx, testWorkspace, path)
	if err != nil {
		t.Fatalf("ExistsResource: %v", err)
	}
	if exists {
		t.Errorf("old path still exists after rename")
	}
	if _, err := c.DeleteResource(ctx, testWorkspace, "f/my folder/pg"); err != nil {
		t.Fatalf("DeleteResource: %v", err)
	}
	if _, err := c.GetResource(ctx, testWorkspace, "f/my folder/pg"); !client.IsNotFound(err) {
		t.Errorf("GetResource after delete: err = %v, want 404", err)
	}
}

func TestVariableSecrets(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()

	_, err := c.CreateVariable(ctx, testWorkspace, models.CreateVariable{Path: "u/admin/key", Value: "s3cr3t", IsSecret: true}, client.VariableWriteParams{})
	if err != nil {
		t.Fatalf("CreateVariable: %v", err)
	}

	list, err := c.ListVariables(ctx, testWorkspace)
	if err != nil {
		t.Fatalf("ListVariables: %v", err)
	}
	if len(list) != 1 || list[0].Value != nil {
		t.Errorf("ListVariables leaked the secret: %+v", list)
	}

	v, err := c.GetVariable(ctx, testWorkspace, "u/admin/key", client.GetVariableParams{DecryptSecret: ptr(false)})
	if err != nil {
		t.Fatalf("GetVariable: %v", err)
	}
	if v.Value != nil {
		t.Errorf("GetVariable(decrypt_secret=false) value = %q, want none", *v.Value)
	}

	got, err := c.GetVariableValue(ctx, testWorkspace, "u/admin/key")
	if err != nil {
		t.Fatalf("GetVariableValue: %v", err)
	}
	if got != "s3cr3t" {
		t.Errorf("GetVariableValue = %q, want %q", got, "s3cr3t")
	}
}

func TestScriptVersions(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	first := deployScript(t, c, "f/etl/echo")

	_, err := c.CreateScript(ctx, testWorkspace, models.NewScript{Path: "f/etl/echo", Content: "x", Language: models.ScriptLangBun})
	if client.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("redeploy without parent hash: err = %v, want 400", err)
	}
	second, err := c.CreateScript(ctx, testWorkspace, models.NewScript{Path: "f/etl/echo", ParentHash: &first, Content: "v2", Language: models.ScriptLangBun})
	if err != nil {
		t.Fatalf("CreateScript v2: %v", err)
	}
	sc, err := c.GetScriptByPath(ctx, testWorkspace, "f/etl/echo")
	if err != nil {
		t.Fatalf("GetScriptByPath: %v", err)
	}
	if sc.Hash != second || len(sc.ParentHashes) != 1 || sc.ParentHashes[0] != first {
		t.Errorf("script = hash %s parents %v, want %s parents [%s]", sc.Hash, sc.ParentHashes, second, first)
	}
	if sc.Kind != models.ScriptKindScript {
		t.Errorf("Kind = %q, want %q", sc.Kind, models.ScriptKindScript)
	}

	scripts, err := c.ListScripts(ctx, testWorkspace, client.ListScriptsParams{ListItemsParams: client.ListItemsParams{PathStart: ptr("f/etl/")}})
	if err != nil {
		t.Fatalf("ListScripts: %v", err)
	}
	if len(scripts) != 1 {
		t.Errorf("ListScripts = %d scripts, want 1", len(scripts))
	}
}

func TestFlows(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	body := models.CreateFlowBody{}
	body.Path = "f/etl/pipeline"
	body.Summary = "pipeline"

	if _, err := c.CreateFlow(ctx, testWorkspace, body); err != nil {
		t.Fatalf("CreateFlow: %v", err)
	}
	body.Summary = "renamed"
	if _, err := c.UpdateFlow(ctx, testWorkspace, body.Path, body); err != nil {
		t.Fatalf("UpdateFlow: %v", err)
	}
	f, err := c.GetFlowByPath(ctx, testWorkspace, body.Path)
	if err != nil {
		t.Fatalf("GetFlowByPath: %v", err)
	}
	if f.Summary != "renamed" {
		t.Errorf("Summary = %q, want %q", f.Summary, "renamed")
	}
	id, err := c.RunFlowByPath(ctx, testWorkspace, body.Path, models.ScriptArgs{"n": 1}, client.RunParams{})
	if err != nil {
		t.Fatalf("RunFlowByPath: %v", err)
	}
	j, err := c.GetCompletedJob(ctx, testWorkspace, id)
	if err != nil {
		t.Fatalf("GetCompletedJob: %v", err)
	}
	if j.JobKind != models.JobKindFlow {
		t.Errorf("JobKind = %q, want %q", j.JobKind, models.JobKindFlow)
	}
}

func TestRunAndWait(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")

	id, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/echo", models.ScriptArgs{"x": 1}, client.RunParams{})
	if err != nil {
		t.Fatalf("RunScriptByPath: %v", err)
	}
	got, err := c.WaitJob(ctx, testWorkspace, id, client.WaitOptions{PollInterval: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("WaitJob: %v", err)
	}
	if string(got) != `{"x":1}` {
		t.Errorf("result = %s, want %s", got, `{"x":1}`)
	}

	logs, err := c.GetJobLogs(ctx, testWorkspace, id)
	if err != nil {
		t.Fatalf("GetJobLogs: %v", err)
	}
	if !strings.HasSuffix(logs, "job completed") {
		t.Errorf("logs = %q, want suffix %q", logs, "job completed")
	}

	jobs, err := c.ListJobs(ctx, testWorkspace, client.ListJobsParams{JobFilter: client.JobFilter{ScriptPathExact: ptr("f/etl/echo"), Success: ptr(true)}})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID() != id {
		t.Errorf("ListJobs = %d jobs, want job %s", len(jobs), id)
	}

	if _, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/missing", nil, client.RunParams{}); !client.IsNotFound(err) {
		t.Errorf("run missing script: err = %v, want 404", err)
	}
}

func TestCancelQueuedJob(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")

	id, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/echo", nil, client.RunParams{ScheduledInSecs: ptr(int64(3600))})
	if err != nil {
		t.Fatalf("RunScriptByPath: %v", err)
	}
	maybe, err := c.GetCompletedJobResultMaybe(ctx, testWorkspace, id, ptr(true))
	if err != nil {
		t.Fatalf("GetCompletedJobResultMaybe: %v", err)
	}
	if maybe.Completed || maybe.Started == nil || *maybe.Started {
		t.Errorf("result maybe = %+v, want queued and not started", maybe)
	}
	job, err := c.GetJob(ctx, testWorkspace, id, ptr(true))
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.Queued == nil {
		t.Fatalf("GetJob = completed, want queued")
	}
	if _, err := c.GetCompletedJob(ctx, testWorkspace, id); !client.IsNotFound(err) {
		t.Errorf("GetCompletedJob on queued job: err = %v, want 404", err)
	}

	if _, err := c.CancelQueuedJob(ctx, testWorkspace, id, models.CancelJobRequest{Reason: ptr("no longer needed")}); err != nil {
		t.Fatalf("CancelQueuedJob: %v", err)
	}
	done, err := c.GetCompletedJob(ctx, testWorkspace, id)
	if err != nil {
		t.Fatalf("GetCompletedJob: %v", err)
	}
	if done.Success || !done.Canceled || done.CanceledReason == nil || *done.CanceledReason != "no longer needed" {
		t.Errorf("canceled job = success %v canceled %v reason %v", done.Success, done.Canceled, done.CanceledReason)
	}
	if _, err := c.CancelQueuedJob(ctx, testWorkspace, id, models.CancelJobRequest{}); !client.IsNotFound(err) {
		t.Errorf("second cancel: err = %v, want 404", err)
	}
}

func TestWaitJobTimeoutCancels(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")

	id, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/echo", nil, client.RunParams{ScheduledInSecs: ptr(int64(3600))})
	if err != nil {
		t.Fatalf("RunScriptByPath: %v", err)
	}
	_, err = c.WaitJob(ctx, testWorkspace, id, client.WaitOptions{PollInterval: 10 * time.Millisecond, Timeout: 50 * time.Millisecond})
	if !errors.Is(err, client.ErrJobTimeout) {
		t.Fatalf("WaitJob err = %v, want ErrJobTimeout", err)
	}
	done, err := c.GetCompletedJob(ctx, testWorkspace, id)
	if err != nil {
		t.Fatalf("GetCompletedJob: %v", err)
	}
	if done.CanceledReason == nil || *done.CanceledReason != "reached timeout" {
		t.Errorf("CanceledReason = %v, want %q", done.CanceledReason, "reached timeout")
	}
}

func TestJobUpdates(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")

	id, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/echo", nil, client.RunParams{})
	if err != nil {
		t.Fatalf("RunScriptByPath: %v", err)
	}
	up, err := c.GetJobUpdates(ctx, testWorkspace, id, client.GetJobUpdatesParams{LogOffset: ptr(int64(1))})
	if err != nil {
		t.Fatalf("GetJobUpdates: %v", err)
	}
	if up.Completed == nil || !*up.Completed {
		t.Errorf("Completed = %v, want true", up.Completed)
	}
	if up.LogOffset == nil || *up.LogOffset != 3 {
		t.Errorf("LogOffset = %v, want 3", up.LogOffset)
	}
	if up.NewLogs == nil || strings.Contains(*up.NewLogs, "queued") {
		t.Errorf("NewLogs = %v, want lines after the first", up.NewLogs)
	}
}

func TestSchedules(t *testing.T) {
	_, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")

	bad := models.NewSchedule{Path: "f/etl/nightly", Schedule: "0 0 * * *", Timezone: "UTC", ScriptPath: "f/etl/echo"}
	if _, err := c.CreateSchedule(ctx, testWorkspace, bad); client.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("five-field cron: err = %v, want 400", err)
	}
	good := bad
	good.Schedule = "0 0 2 * * *"
	if _, err := c.CreateSchedule(ctx, testWorkspace, good); err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	if _, err := c.SetScheduleEnabled(ctx, testWorkspace, good.Path, false); err != nil {
		t.Fatalf("SetScheduleEnabled: %v", err)
	}
	sc, err := c.GetSchedule(ctx, testWorkspace, good.Path)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if sc.Enabled {
		t.Errorf("Enabled = true after disabling")
	}

	ticks, err := c.PreviewSchedule(ctx, models.SchedulePreviewRequest{Schedule: "0 */15 * * * *", Timezone: "UTC"})
	if err != nil {
		t.Fatalf("PreviewSchedule: %v", err)
	}
	if len(ticks) != previewTicks {
		t.Fatalf("ticks = %d, want %d", len(ticks), previewTicks)
	}
	if d := ticks[1].Sub(ticks[0]); d != 15*time.Minute {
		t.Errorf("tick spacing = %v, want 15m", d)
	}

	if _, err := c.DeleteSchedule(ctx, testWorkspace, good.Path); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	if ok, _ := c.ExistsSchedule(ctx, testWorkspace, good.Path); ok {
		t.Errorf("schedule still exists after delete")
	}
}

func TestFileHelpersCompressed(t *testing.T) {
	_, c := newDevServer(t, client.WithCompression())
	ctx := context.Background()
	payload := bytes.Repeat([]byte("windmill "), 512)

	up, err := c.UploadS3File(ctx, testWorkspace, bytes.NewReader(payload), client.S3FileParams{FileExtension: ptr("txt")})
	if err != nil {
		t.Fatalf("UploadS3File: %v", err)
	}
	if !strings.HasPrefix(up.FileKey, "windmill_uploads/") || !strings.HasSuffix(up.FileKey, ".txt") {
		t.Errorf("FileKey = %q", up.FileKey)
	}
	rc, err := c.DownloadS3File(ctx, testWorkspace, up.FileKey, client.S3FileParams{})
	if err != nil {
		t.Fatalf("DownloadS3File: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("downloaded %d bytes, want %d", len(got), len(payload))
	}
}

func TestStreamJobLogs(t *testing.T) {
	ts, c := newDevServer(t)
	ctx := context.Background()
	deployScript(t, c, "f/etl/echo")
	id, err := c.RunScriptByPath(ctx, testWorkspace, "f/etl/echo", nil, client.RunParams{})
	if err != nil {
		t.Fatalf("RunScriptByPath: %v", err)
	}

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/w/" + testWorkspace + "/jobs/" + id.String() + "/logs?token=" + testToken
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var lines []string
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("ReadMessage: %v", err)
			}
			break
		}
		lines = append(lines, string(msg))
	}
	if len(lines) != 3 || lines[2] != "job completed" {
		t.Errorf("lines = %q, want 3 ending with %q", lines, "job completed")
	}
}

func TestUnknownJobIsNotFound(t *testing.T) {
	ts, _ := newDevServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/w/demo/jobs_u/get/not-a-uuid", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+testToken)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestListEndpointsReturnArrays(t *testing.T) {
	ts, _ := newDevServer(t)
	for _, p := range []string{"resources/list", "variables/list", "scripts/list", "flows/list", "schedules/list", "jobs/list"} {
		t.Run(p, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/w/demo/"+p, http.NoBody)
			req.Header.Set("Authorization", "Bearer "+testToken)
			resp, err := ts.Client().Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			var v []json.RawMessage
			if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if v == nil {
				t.Errorf("%s returned null, want []", p)
			}
		})
	}
}

func TestCompressMiddleware(t *testing.T) {
	h := compressMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	tests := []struct {
		accept string
		want   string
	}{
		{"gzip, deflate, br, zstd", "zstd"},
		{"gzip, br", "br"},
		{"gzip", "gzip"},
		{"zstd;q=0, gzip", "gzip"},
		{"identity", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("Accept-Encoding", tt.accept)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if got := w.Header().Get("Content-Encoding"); got != tt.want {
				t.Errorf("Content-Encoding = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("WebsocketUpgrade", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Accept-Encoding", "gzip")
		req.Header.Set("Upgrade", "websocket")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if got := w.Header().Get("Content-Encoding"); got != "" {
			t.Errorf("Content-Encoding = %q, want none", got)
		}
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		page, perPage string
		want          int
	}{
		{"", "", 5},
		{"1", "2", 2},
		{"3", "2", 1},
		{"4", "2", 0},
		{"0", "-1", 5},
		{"4611686018427387905", "2", 0},
		{"2", "9223372036854775807", 0},
	}
	for _, tt := range tests {
		t.Run(tt.page+"/"+tt.perPage, func(t *testing.T) {
			if got := len(paginate(items, tt.page, tt.perPage)); got != tt.want {
				t.Errorf("len(paginate(page=%s, per_page=%s)) = %d, want %d", tt.page, tt.perPage, got, tt.want)
			}
		})
	}
}

func TestListHugePage(t *testing.T) {
	ts, _ := newDevServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/w/demo/resources/list?page=4611686018427387905&per_page=2", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+testToken)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
