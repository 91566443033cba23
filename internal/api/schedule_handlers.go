package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rflorenc/windmill-client/internal/cronpreview"
	"github.com/rflorenc/windmill-client/pkg/models"
)

// previewTicks is the number of ticks returned by schedules/preview.
const previewTicks = 10

func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var body models.NewSchedule
	if !decode(w, r, &body) {
		return
	}
	if body.Path == "" || body.ScriptPath == "" {
		writeError(w, http.StatusBadRequest, "path and script_path are required")
		return
	}
	if err := cronpreview.Validate(body.Schedule, body.Timezone); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request: "+err.Error())
		return
	}
	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		if _, ok := wk.schedules[body.Path]; ok {
			return fmt.Errorf("schedule %s: %w", body.Path, errExists)
		}
		if err := runnableExists(wk, body.ScriptPath, body.IsFlow); err != nil {
			return err
		}
		wk.schedules[body.Path] = models.Schedule{
			Path:                body.Path,
			EditedBy:            s.user(),
			EditedAt:            time.Now().UTC(),
			Schedule:            body.Schedule,
			Timezone:            body.Timezone,
			Enabled:             enabled,
			ScriptPath:          body.ScriptPath,
			IsFlow:              body.IsFlow,
			Args:                body.Args,
			ExtraPerms:          models.ExtraPerms{},
			Email:               s.user(),
			OnFailure:           body.OnFailure,
			OnFailureTimes:      body.OnFailureTimes,
			OnFailureExact:      body.OnFailureExact,
			OnFailureExtraArgs:  body.OnFailureExtraArgs,
			OnRecovery:          body.OnRecovery,
			OnRecoveryTimes:     body.OnRecoveryTimes,
			OnRecoveryExtraArgs: body.OnRecoveryExtraArgs,
			OnSuccess:           body.OnSuccess,
			OnSuccessExtraArgs:  body.OnSuccessExtraArgs,
			WsErrorHandlerMuted: body.WsErrorHandlerMuted,
			Retry:               body.Retry,
			Summary:             body.Summary,
			Description:         body.Description,
			NoFlowOverlap:       body.NoFlowOverlap,
			Tag:                 body.Tag,
			PausedUntil:         body.PausedUntil,
			CronVersion:         body.CronVersion,
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusCreated, body.Path)
}

// ListSchedules filters on path (the runnable path) and is_flow.
func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	runnable, isFlow := q.Get("path"), q.Get("is_flow")
	var out []models.Schedule
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, sc := range sortedValues(wk.schedules) {
			if runnable != "" && sc.ScriptPath != runnable {
				continue
			}
			if isFlow != "" && fmt.Sprint(sc.IsFlow) != isFlow {
				continue
			}
			out = append(out, sc)
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if out == nil {
		out = []models.Schedule{}
	}
	writeJSON(w, http.StatusOK, paginate(out, q.Get("page"), q.Get("per_page")))
}

func (s *Server) getSchedule(r *http.Request) (models.Schedule, error) {
	path := pathParam(r)
	var sc models.Schedule
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		sc, ok = wk.schedules[path]
		if !ok {
			return fmt.Errorf("schedule %s: %w", path, errNotFound)
		}
		return nil
	})
	return sc, err
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sc, err := s.getSchedule(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) ExistsSchedule(w http.ResponseWriter, r *http.Request) {
	_, err := s.getSchedule(r)
	writeJSON(w, http.StatusOK, err == nil)
}

func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var body models.EditSchedule
	if !decode(w, r, &body) {
		return
	}
	if err := cronpreview.Validate(body.Schedule, body.Timezone); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request: "+err.Error())
		return
	}
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		sc, ok := wk.schedules[path]
		if !ok {
			return fmt.Errorf("schedule %s: %w", path, errNotFound)
		}
		sc.Schedule = body.Schedule
		sc.Timezone = body.Timezone
		sc.CronVersion = body.CronVersion
		sc.Args = body.Args
		sc.OnFailure = body.OnFailure
		sc.OnFailureTimes = body.OnFailureTimes
		sc.OnFailureExact = body.OnFailureExact
		sc.OnFailureExtraArgs = body.OnFailureExtraArgs
		sc.OnRecovery = body.OnRecovery
		sc.OnRecoveryTimes = body.OnRecoveryTimes
		sc.OnRecoveryExtraArgs = body.OnRecoveryExtraArgs
		sc.OnSuccess = body.OnSuccess
		sc.OnSuccessExtraArgs = body.OnSuccessExtraArgs
		sc.WsErrorHandlerMuted = body.WsErrorHandlerMuted
		sc.Retry = body.Retry
		sc.NoFlowOverlap = body.NoFlowOverlap
		sc.Summary = body.Summary
		sc.Description = body.Description
		sc.Tag = body.Tag
		sc.PausedUntil = body.PausedUntil
		sc.EditedBy = s.user()
		sc.EditedAt = time.Now().UTC()
		wk.schedules[path] = sc
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, path)
}

func (s *Server) SetScheduleEnabled(w http.ResponseWriter, r *http.Request) {
	var body models.SetEnabled
	if !decode(w, r, &body) {
		return
	}
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		sc, ok := wk.schedules[path]
		if !ok {
			return fmt.Errorf("schedule %s: %w", path, errNotFound)
		}
		sc.Enabled = body.Enabled
		wk.schedules[path] = sc
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, fmt.Sprintf("updated schedule at path %s to status %t", path, body.Enabled))
}

func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		if _, ok := wk.schedules[path]; !ok {
			return fmt.Errorf("schedule %s: %w", path, errNotFound)
		}
		delete(wk.schedules, path)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "schedule "+path+" deleted")
}

// PreviewSchedule answers with the next ticks of the posted expression.
func (s *Server) PreviewSchedule(w http.ResponseWriter, r *http.Request) {
	var body models.SchedulePreviewRequest
	if !decode(w, r, &body) {
		return
	}
	ticks, err := cronpreview.Next(body.Schedule, body.Timezone, time.Now(), previewTicks)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad request: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ticks)
}

// runnableExists checks that a schedule or job target is deployed.
func runnableExists(wk *workspace, path string, isFlow bool) error {
	if isFlow {
		if _, ok := wk.flows[path]; !ok {
			return fmt.Errorf("flow %s: %w", path, errNotFound)
		}
		return nil
	}
	if _, ok := wk.scripts[path]; !ok {
		return fmt.Errorf("script %s: %w", path, errNotFound)
	}
	return nil
}
