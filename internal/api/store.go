package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

var (
	errNotFound = errors.New("not found")
	errExists   = errors.New("already exists")
)

// workspace holds the objects of one workspace.
type workspace struct {
	info      models.Workspace
	resources map[string]models.Resource
	variables map[string]models.ListableVariable
	scripts   map[string]models.Script
	flows     map[string]models.Flow
	schedules map[string]models.Schedule
	jobs      map[uuid.UUID]*Job
	files     map[string][]byte
}

func newWorkspace(info models.Workspace) *workspace {
	return &workspace{
		info:      info,
		resources: make(map[string]models.Resource),
		variables: make(map[string]models.ListableVariable),
		scripts:   make(map[string]models.Script),
		flows:     make(map[string]models.Flow),
		schedules: make(map[string]models.Schedule),
		jobs:      make(map[uuid.UUID]*Job),
		files:     make(map[string][]byte),
	}
}

// Job is a dev-server job. It stays queued until readyAt and then completes
// successfully with its args as result.
type Job struct {
	mu        sync.Mutex
	queued    models.QueuedJob
	completed *models.CompletedJob
	readyAt   time.Time
	output    []string
}

func newJob(q models.QueuedJob, readyAt time.Time) *Job {
	return &Job{queued: q, readyAt: readyAt}
}

// settle completes the job once its time has come. Callers hold j.mu.
func (j *Job) settle(now time.Time) {
	if j.completed != nil || now.Before(j.readyAt) {
		return
	}
	started := j.readyAt
	j.output = append(j.output, fmt.Sprintf("job %s started", j.queued.ID))
	j.output = append(j.output, "job completed")
	j.complete(started, now, true, j.queued.Args)
}

func (j *Job) complete(started, now time.Time, success bool, result any) {
	q := j.queued
	createdAt := now
	if q.CreatedAt != nil {
		createdAt = *q.CreatedAt
	}
	createdBy := ""
	if q.CreatedBy != nil {
		createdBy = *q.CreatedBy
	}
	j.completed = &models.CompletedJob{
		ID:             q.ID,
		WorkspaceID:    q.WorkspaceID,
		ParentJob:      q.ParentJob,
		CreatedBy:      createdBy,
		CreatedAt:      createdAt,
		StartedAt:      started,
		DurationMs:     now.Sub(started).Milliseconds(),
		Success:        success,
		ScriptPath:     q.ScriptPath,
		ScriptHash:     q.ScriptHash,
		Args:           q.Args,
		Result:         result,
		Canceled:       q.Canceled,
		CanceledBy:     q.CanceledBy,
		CanceledReason: q.CanceledReason,
		JobKind:        q.JobKind,
		PermissionedAs: q.PermissionedAs,
		Language:       q.Language,
		Email:          q.Email,
		VisibleToOwner: q.VisibleToOwner,
		Tag:            q.Tag,
	}
}

// Snapshot returns the job in its current state.
func (j *Job) Snapshot(now time.Time) models.Job {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.settle(now)
	if j.completed != nil {
		c := *j.completed
		return models.Job{Completed: &c}
	}
	q := j.queued
	return models.Job{Queued: &q}
}

// Cancel fails a queued job. Completed jobs are left untouched.
func (j *Job) Cancel(now time.Time, by string, reason *string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.settle(now)
	if j.completed != nil {
		return fmt.Errorf("queued job %s: %w", j.queued.ID, errNotFound)
	}
	j.queued.Canceled = true
	j.queued.CanceledBy = &by
	j.queued.CanceledReason = reason
	msg := "canceled by " + by
	if reason != nil {
		msg += ": " + *reason
	}
	j.output = append(j.output, msg)
	j.complete(now, now, false, map[string]any{"error": map[string]any{"name": "Canceled", "message": msg}})
	return nil
}

// Done reports whether the job has completed.
func (j *Job) Done(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.settle(now)
	return j.completed != nil
}

// AppendLog adds a log line to the job output.
func (j *Job) AppendLog(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.output = append(j.output, line)
}

// LogsSince returns log lines starting from the given index.
func (j *Job) LogsSince(offset int) []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.settle(time.Now())
	if offset >= len(j.output) {
		return nil
	}
	lines := make([]string, len(j.output)-offset)
	copy(lines, j.output[offset:])
	return lines
}

// Logs returns the whole output joined by newlines.
func (j *Job) Logs() string {
	return strings.Join(j.LogsSince(0), "\n")
}

// Store is an in-memory thread-safe store for every workspace.
type Store struct {
	mu         sync.RWMutex
	workspaces map[string]*workspace
	owner      string
}

// NewStore creates a store holding the given workspaces, each empty.
func NewStore(owner string, ids ...string) *Store {
	s := &Store{workspaces: make(map[string]*workspace), owner: owner}
	for _, id := range ids {
		s.workspaces[id] = newWorkspace(models.Workspace{ID: id, Name: id, Owner: owner})
	}
	return s
}

// ListWorkspaces returns every workspace sorted by id.
func (s *Store) ListWorkspaces() []models.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workspace, 0, len(s.workspaces))
	for _, w := range s.workspaces {
		out = append(out, w.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateWorkspace adds an empty workspace.
func (s *Store) CreateWorkspace(body models.CreateWorkspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workspaces[body.ID]; ok {
		return fmt.Errorf("workspace %s: %w", body.ID, errExists)
	}
	s.workspaces[body.ID] = newWorkspace(models.Workspace{ID: body.ID, Name: body.Name, Owner: s.owner, Color: body.Color})
	return nil
}

// with runs fn on workspace id under the write lock.
func (s *Store) with(id string, fn func(w *workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[id]
	if !ok {
		return fmt.Errorf("workspace %s: %w", id, errNotFound)
	}
	return fn(w)
}

// view runs fn on workspace id under the read lock.
func (s *Store) view(id string, fn func(w *workspace) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workspaces[id]
	if !ok {
		return fmt.Errorf("workspace %s: %w", id, errNotFound)
	}
	return fn(w)
}

// sortedValues returns the values of m ordered by key.
func sortedValues[V any](m map[string]V) []V {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// scriptHash derives a stable 16-hex-digit hash from the script content and
// its parent.
func scriptHash(path, content, parent string, at time.Time) string {
	sum := sha256.Sum256([]byte(path + "\x00" + content + "\x00" + parent + "\x00" + at.String()))
	return hex.EncodeToString(sum[:8])
}

// job looks up a job of workspace ws.
func (s *Store) job(ws string, id uuid.UUID) (*Job, error) {
	var j *Job
	err := s.view(ws, func(wk *workspace) error {
		var ok bool
		if j, ok = wk.jobs[id]; !ok {
			return fmt.Errorf("job %s: %w", id, errNotFound)
		}
		return nil
	})
	return j, err
}
