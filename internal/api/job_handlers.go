package api

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

const defaultPerPage = 30

func (s *Server) RunScriptByPath(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, false)
}

func (s *Server) RunFlowByPath(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, true)
}

// run enqueues a job for the runnable at the route path and answers with
// its id. scheduled_in_secs delays completion.
func (s *Server) run(w http.ResponseWriter, r *http.Request, isFlow bool) {
	var args models.ScriptArgs
	if !decode(w, r, &args) {
		return
	}
	q := r.URL.Query()
	id := uuid.New()
	if v := q.Get("job_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid job_id: "+err.Error())
			return
		}
		id = parsed
	}
	var delay time.Duration
	if v := q.Get("scheduled_in_secs"); v != "" {
		secs, err := strconv.ParseInt(v, 10, 64)
		if err != nil || secs < 0 {
			writeError(w, http.StatusBadRequest, "invalid scheduled_in_secs: "+v)
			return
		}
		delay = time.Duration(secs) * time.Second
	}
	path := pathParam(r)
	ws := workspaceParam(r)
	user := s.user()
	now := time.Now().UTC()
	job := models.QueuedJob{
		ID:             id,
		WorkspaceID:    &ws,
		CreatedBy:      &user,
		CreatedAt:      &now,
		ScriptPath:     &path,
		Args:           args,
		JobKind:        models.JobKindScript,
		PermissionedAs: "u/" + s.username(),
		Email:          user,
		VisibleToOwner: true,
		Tag:            q.Get("tag"),
	}
	if v := q.Get("parent_job"); v != "" {
		if parent, err := uuid.Parse(v); err == nil {
			job.ParentJob = &parent
		}
	}
	err := s.Store.with(ws, func(wk *workspace) error {
		if err := runnableExists(wk, path, isFlow); err != nil {
			return err
		}
		if _, dup := wk.jobs[id]; dup {
			return fmt.Errorf("job %s: %w", id, errExists)
		}
		if isFlow {
			job.JobKind = models.JobKindFlow
		} else {
			sc := wk.scripts[path]
			job.ScriptHash = &sc.Hash
			job.Language = &sc.Language
		}
		if job.Tag == "" {
			job.Tag = defaultTag(job)
		}
		j := newJob(job, now.Add(delay))
		j.AppendLog(fmt.Sprintf("job %s queued for %s", id, path))
		wk.jobs[id] = j
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.logger().Info("job queued", "workspace", ws, "id", id, "path", path, "flow", isFlow)
	writeText(w, http.StatusCreated, id.String())
}

func defaultTag(j models.QueuedJob) string {
	if j.JobKind == models.JobKindFlow {
		return "flow"
	}
	if j.Language != nil {
		return j.Language.String()
	}
	return "default"
}

// ListJobs returns jobs newest first. It honors script_path_exact,
// script_path_start, success, running, job_kinds and pagination.
func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := time.Now()
	var all []models.Job
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, j := range wk.jobs {
			all = append(all, j.Snapshot(now))
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	sort.Slice(all, func(i, k int) bool {
		a, b := createdAt(all[i]), createdAt(all[k])
		if a.Equal(b) {
			return all[i].ID().String() < all[k].ID().String()
		}
		return a.After(b)
	})
	kinds := splitList(q.Get("job_kinds"))
	out := []models.Job{}
	for _, j := range all {
		if jobMatches(j, q.Get("script_path_exact"), q.Get("script_path_start"), q.Get("success"), q.Get("running"), kinds) {
			out = append(out, j)
		}
	}
	writeJSON(w, http.StatusOK, paginate(out, q.Get("page"), q.Get("per_page")))
}

func createdAt(j models.Job) time.Time {
	if j.Completed != nil {
		return j.Completed.CreatedAt
	}
	if j.Queued.CreatedAt != nil {
		return *j.Queued.CreatedAt
	}
	return time.Time{}
}

func jobMatches(j models.Job, exact, start, success, running string, kinds map[string]bool) bool {
	var path *string
	var kind models.JobKind
	if j.Completed != nil {
		path, kind = j.Completed.ScriptPath, j.Completed.JobKind
	} else {
		path, kind = j.Queued.ScriptPath, j.Queued.JobKind
	}
	p := ""
	if path != nil {
		p = *path
	}
	if (exact != "" || start != "") && !matchPath(p, start, exact) {
		return false
	}
	if len(kinds) > 0 && !kinds[kind.String()] {
		return false
	}
	if success != "" && (j.Completed == nil || strconv.FormatBool(j.Completed.Success) != success) {
		return false
	}
	if running != "" && strconv.FormatBool(j.Queued != nil && j.Queued.Running) != running {
		return false
	}
	return true
}

// paginate applies 1-based page and per_page query values.
func paginate[T any](items []T, page, perPage string) []T {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}
	n, err := strconv.Atoi(perPage)
	if err != nil || n < 1 {
		n = defaultPerPage
	}
	if p-1 > len(items)/n {
		return items[:0]
	}
	lo := (p - 1) * n
	if lo >= len(items) {
		return items[:0]
	}
	return items[lo:min(lo+n, len(items))]
}

func (s *Server) jobFromRequest(w http.ResponseWriter, r *http.Request) (*Job, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id: "+err.Error())
		return nil, false
	}
	j, err := s.Store.job(workspaceParam(r), id)
	if err != nil {
		writeStoreError(w, err)
		return nil, false
	}
	return j, true
}

// GetJob returns the job in whichever state it is. no_logs=true drops the
// logs field.
func (s *Server) GetJob(w http.ResponseWriter, r *http.Request) {
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return
	}
	snap := j.Snapshot(time.Now())
	if r.URL.Query().Get("no_logs") != "true" {
		logs := j.Logs()
		if snap.Completed != nil {
			snap.Completed.Logs = &logs
		} else {
			snap.Queued.Logs = &logs
		}
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) GetJobLogs(w http.ResponseWriter, r *http.Request) {
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return
	}
	writeText(w, http.StatusOK, j.Logs())
}

func (s *Server) completedJob(w http.ResponseWriter, r *http.Request) (*models.CompletedJob, bool) {
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return nil, false
	}
	snap := j.Snapshot(time.Now())
	if snap.Completed == nil {
		writeStoreError(w, fmt.Errorf("completed job %s: %w", snap.ID(), errNotFound))
		return nil, false
	}
	return snap.Completed, true
}

func (s *Server) GetCompletedJob(w http.ResponseWriter, r *http.Request) {
	c, ok := s.completedJob(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) GetCompletedJobResult(w http.ResponseWriter, r *http.Request) {
	c, ok := s.completedJob(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c.Result)
}

// GetCompletedJobResultMaybe never fails for a known job: it reports
// completed=false while the job is queued.
func (s *Server) GetCompletedJobResultMaybe(w http.ResponseWriter, r *http.Request) {
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return
	}
	snap := j.Snapshot(time.Now())
	out := models.CompletedJobResultMaybe{Completed: snap.Completed != nil}
	if snap.Completed != nil {
		out.Result = snap.Completed.Result
		out.Success = &snap.Completed.Success
	} else if r.URL.Query().Get("get_started") == "true" {
		out.Started = &snap.Queued.Running
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) CancelQueuedJob(w http.ResponseWriter, r *http.Request) {
	var body models.CancelJobRequest
	if !decode(w, r, &body) {
		return
	}
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return
	}
	if err := j.Cancel(time.Now().UTC(), s.user(), body.Reason); err != nil {
		writeStoreError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	s.logger().Info("job canceled", "workspace", workspaceParam(r), "id", id)
	writeText(w, http.StatusOK, "job canceled: "+id)
}

// GetJobUpdates returns the log lines after log_offset and the job state.
// Offsets count lines.
func (s *Server) GetJobUpdates(w http.ResponseWriter, r *http.Request) {
	j, ok := s.jobFromRequest(w, r)
	if !ok {
		return
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("log_offset"))
	offset = max(offset, 0)
	snap := j.Snapshot(time.Now())
	lines := j.LogsSince(offset)
	next := int64(offset + len(lines))
	completed := snap.Completed != nil
	running := snap.Queued != nil && snap.Queued.Running
	out := models.JobUpdate{Running: &running, Completed: &completed, LogOffset: &next}
	if len(lines) > 0 {
		logs := strings.Join(lines, "\n") + "\n"
		out.NewLogs = &logs
	}
	writeJSON(w, http.StatusOK, out)
}
