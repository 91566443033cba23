package api

import (
	"fmt"
	"net/http"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func (s *Server) CreateVariable(w http.ResponseWriter, r *http.Request) {
	var body models.CreateVariable
	if !decode(w, r, &body) {
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	ws := workspaceParam(r)
	err := s.Store.with(ws, func(wk *workspace) error {
		if _, ok := wk.variables[body.Path]; ok {
			return fmt.Errorf("variable %s: %w", body.Path, errExists)
		}
		desc := body.Description
		value := body.Value
		wk.variables[body.Path] = models.ListableVariable{
			WorkspaceID: ws,
			Path:        body.Path,
			Value:       &value,
			IsSecret:    body.IsSecret,
			Description: &desc,
			Account:     body.Account,
			IsOAuth:     body.IsOAuth,
			ExtraPerms:  models.ExtraPerms{},
			ExpiresAt:   body.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusCreated, body.Path)
}

// redact hides secret values unless the caller asked for them.
func redact(v models.ListableVariable, decrypt bool) models.ListableVariable {
	if v.IsSecret && !decrypt {
		v.Value = nil
	}
	return v
}

func (s *Server) ListVariables(w http.ResponseWriter, r *http.Request) {
	var out []models.ListableVariable
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, v := range sortedValues(wk.variables) {
			out = append(out, redact(v, false))
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if out == nil {
		out = []models.ListableVariable{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getVariable(r *http.Request) (models.ListableVariable, error) {
	path := pathParam(r)
	var v models.ListableVariable
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		v, ok = wk.variables[path]
		if !ok {
			return fmt.Errorf("variable %s: %w", path, errNotFound)
		}
		return nil
	})
	return v, err
}

// GetVariable decrypts secrets unless decrypt_secret=false.
func (s *Server) GetVariable(w http.ResponseWriter, r *http.Request) {
	v, err := s.getVariable(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, redact(v, r.URL.Query().Get("decrypt_secret") != "false"))
}

func (s *Server) GetVariableValue(w http.ResponseWriter, r *http.Request) {
	v, err := s.getVariable(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	value := ""
	if v.Value != nil {
		value = *v.Value
	}
	writeJSON(w, http.StatusOK, value)
}

func (s *Server) ExistsVariable(w http.ResponseWriter, r *http.Request) {
	_, err := s.getVariable(r)
	writeJSON(w, http.StatusOK, err == nil)
}

func (s *Server) UpdateVariable(w http.ResponseWriter, r *http.Request) {
	var body models.EditVariable
	if !decode(w, r, &body) {
		return
	}
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		v, ok := wk.variables[path]
		if !ok {
			return fmt.Errorf("variable %s: %w", path, errNotFound)
		}
		if body.Value != nil {
			v.Value = body.Value
		}
		if body.IsSecret != nil {
			v.IsSecret = *body.IsSecret
		}
		if body.Description != nil {
			v.Description = body.Description
		}
		if body.Path != nil && *body.Path != path {
			if _, taken := wk.variables[*body.Path]; taken {
				return fmt.Errorf("variable %s: %w", *body.Path, errExists)
			}
			delete(wk.variables, path)
			v.Path = *body.Path
		}
		wk.variables[v.Path] = v
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "variable "+path+" updated")
}

func (s *Server) DeleteVariable(w http.ResponseWriter, r *http.Request) {
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		if _, ok := wk.variables[path]; !ok {
			return fmt.Errorf("variable %s: %w", path, errNotFound)
		}
		delete(wk.variables, path)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "variable "+path+" deleted")
}
