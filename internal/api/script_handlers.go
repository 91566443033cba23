package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// CreateScript deploys a new version at body.Path and answers with its hash.
// A parent_hash that is not the current head is rejected.
func (s *Server) CreateScript(w http.ResponseWriter, r *http.Request) {
	var body models.NewScript
	if !decode(w, r, &body) {
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	ws := workspaceParam(r)
	now := time.Now().UTC()
	var hash string
	err := s.Store.with(ws, func(wk *workspace) error {
		prev, exists := wk.scripts[body.Path]
		parent := ""
		switch {
		case body.ParentHash != nil && (!exists || prev.Hash != *body.ParentHash):
			return fmt.Errorf("parent hash %s is not the head of %s: %w", *body.ParentHash, body.Path, errExists)
		case body.ParentHash == nil && exists:
			return fmt.Errorf("script %s: %w", body.Path, errExists)
		case exists:
			parent = prev.Hash
		}
		kind := models.ScriptKindScript
		if body.Kind != nil {
			kind = *body.Kind
		}
		hash = scriptHash(body.Path, body.Content, parent, now)
		sc := models.Script{
			WorkspaceID:  &ws,
			Hash:         hash,
			Path:         body.Path,
			Summary:      body.Summary,
			Description:  body.Description,
			Content:      body.Content,
			CreatedBy:    s.user(),
			CreatedAt:    now,
			Schema:       body.Schema,
			ExtraPerms:   models.ExtraPerms{},
			Lock:         body.Lock,
			Language:     body.Language,
			Kind:         kind,
			Tag:          body.Tag,
			Envs:         body.Envs,
			Timeout:      body.Timeout,
			Priority:     body.Priority,
			DraftOnly:    body.DraftOnly,
			CacheTTL:     body.CacheTTL,
		}
		if parent != "" {
			sc.ParentHashes = append([]string{parent}, prev.ParentHashes...)
		}
		if body.IsTemplate != nil {
			sc.IsTemplate = *body.IsTemplate
		}
		wk.scripts[body.Path] = sc
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusCreated, hash)
}

// ListScripts honors path_start and path_exact.
func (s *Server) ListScripts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, exact := q.Get("path_start"), q.Get("path_exact")
	var out []models.Script
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, sc := range sortedValues(wk.scripts) {
			if !matchPath(sc.Path, start, exact) {
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
		out = []models.Script{}
	}
	writeJSON(w, http.StatusOK, paginate(out, q.Get("page"), q.Get("per_page")))
}

func (s *Server) getScript(r *http.Request) (models.Script, error) {
	path := pathParam(r)
	var sc models.Script
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		sc, ok = wk.scripts[path]
		if !ok {
			return fmt.Errorf("script %s: %w", path, errNotFound)
		}
		return nil
	})
	return sc, err
}

func (s *Server) GetScriptByPath(w http.ResponseWriter, r *http.Request) {
	sc, err := s.getScript(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) RawScriptByPath(w http.ResponseWriter, r *http.Request) {
	sc, err := s.getScript(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, sc.Content)
}

func (s *Server) ExistsScriptByPath(w http.ResponseWriter, r *http.Request) {
	_, err := s.getScript(r)
	writeJSON(w, http.StatusOK, err == nil)
}

func (s *Server) CreateFlow(w http.ResponseWriter, r *http.Request) {
	var body models.CreateFlowBody
	if !decode(w, r, &body) {
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	ws := workspaceParam(r)
	err := s.Store.with(ws, func(wk *workspace) error {
		if _, ok := wk.flows[body.Path]; ok {
			return fmt.Errorf("flow %s: %w", body.Path, errExists)
		}
		wk.flows[body.Path] = s.flowFrom(ws, body)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusCreated, body.Path)
}

// UpdateFlow replaces the flow at the route path. body.Path may rename it.
func (s *Server) UpdateFlow(w http.ResponseWriter, r *http.Request) {
	var body models.CreateFlowBody
	if !decode(w, r, &body) {
		return
	}
	path := pathParam(r)
	if body.Path == "" {
		body.Path = path
	}
	ws := workspaceParam(r)
	err := s.Store.with(ws, func(wk *workspace) error {
		if _, ok := wk.flows[path]; !ok {
			return fmt.Errorf("flow %s: %w", path, errNotFound)
		}
		if body.Path != path {
			if _, taken := wk.flows[body.Path]; taken {
				return fmt.Errorf("flow %s: %w", body.Path, errExists)
			}
			delete(wk.flows, path)
		}
		wk.flows[body.Path] = s.flowFrom(ws, body)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, body.Path)
}

func (s *Server) flowFrom(ws string, body models.CreateFlowBody) models.Flow {
	return models.Flow{
		OpenFlow: body.OpenFlow,
		FlowMetadata: models.FlowMetadata{
			Path:                body.Path,
			EditedBy:            s.user(),
			EditedAt:            time.Now().UTC(),
			ExtraPerms:          map[string]bool{},
			WorkspaceID:         &ws,
			DraftOnly:           body.DraftOnly,
			Tag:                 body.Tag,
			WsErrorHandlerMuted: body.WsErrorHandlerMuted,
			Priority:            body.Priority,
			DedicatedWorker:     body.DedicatedWorker,
			Timeout:             body.Timeout,
			VisibleToRunnerOnly: body.VisibleToRunnerOnly,
			OnBehalfOfEmail:     body.OnBehalfOfEmail,
		},
	}
}

func (s *Server) ListFlows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, exact := q.Get("path_start"), q.Get("path_exact")
	var out []models.Flow
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, f := range sortedValues(wk.flows) {
			if matchPath(f.Path, start, exact) {
				out = append(out, f)
			}
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if out == nil {
		out = []models.Flow{}
	}
	writeJSON(w, http.StatusOK, paginate(out, q.Get("page"), q.Get("per_page")))
}

func (s *Server) getFlow(r *http.Request) (models.Flow, error) {
	path := pathParam(r)
	var f models.Flow
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		f, ok = wk.flows[path]
		if !ok {
			return fmt.Errorf("flow %s: %w", path, errNotFound)
		}
		return nil
	})
	return f, err
}

func (s *Server) GetFlowByPath(w http.ResponseWriter, r *http.Request) {
	f, err := s.getFlow(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) ExistsFlowByPath(w http.ResponseWriter, r *http.Request) {
	_, err := s.getFlow(r)
	writeJSON(w, http.StatusOK, err == nil)
}

func matchPath(path, start, exact string) bool {
	if exact != "" {
		return path == exact
	}
	return strings.HasPrefix(path, start)
}
