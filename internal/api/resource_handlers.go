package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func (s *Server) CreateResource(w http.ResponseWriter, r *http.Request) {
	var body models.CreateResource
	if !decode(w, r, &body) {
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	upsert := r.URL.Query().Get("update_if_exists") == "true"
	ws := workspaceParam(r)
	user := s.user()
	now := time.Now().UTC()
	err := s.Store.with(ws, func(wk *workspace) error {
		if _, ok := wk.resources[body.Path]; ok && !upsert {
			return fmt.Errorf("resource %s: %w", body.Path, errExists)
		}
		wk.resources[body.Path] = models.Resource{
			WorkspaceID:  &ws,
			Path:         body.Path,
			Description:  body.Description,
			ResourceType: body.ResourceType,
			Value:        body.Value,
			ExtraPerms:   models.ExtraPerms{},
			CreatedBy:    &user,
			EditedAt:     &now,
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusCreated, body.Path)
}

// ListResources honors resource_type (comma separated) and
// resource_type_exclude.
func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	include := splitList(q.Get("resource_type"))
	exclude := splitList(q.Get("resource_type_exclude"))
	var out []models.ListableResource
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		for _, res := range sortedValues(wk.resources) {
			if len(include) > 0 && !include[res.ResourceType] {
				continue
			}
			if exclude[res.ResourceType] {
				continue
			}
			out = append(out, models.ListableResource{
				WorkspaceID:  res.WorkspaceID,
				Path:         res.Path,
				Description:  res.Description,
				ResourceType: res.ResourceType,
				Value:        res.Value,
				IsOAuth:      res.IsOAuth,
				ExtraPerms:   res.ExtraPerms,
				CreatedBy:    res.CreatedBy,
				EditedAt:     res.EditedAt,
			})
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if out == nil {
		out = []models.ListableResource{}
	}
	writeJSON(w, http.StatusOK, paginate(out, q.Get("page"), q.Get("per_page")))
}

func (s *Server) getResource(r *http.Request) (models.Resource, error) {
	path := pathParam(r)
	var res models.Resource
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		res, ok = wk.resources[path]
		if !ok {
			return fmt.Errorf("resource %s: %w", path, errNotFound)
		}
		return nil
	})
	return res, err
}

func (s *Server) GetResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.getResource(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) GetResourceValue(w http.ResponseWriter, r *http.Request) {
	res, err := s.getResource(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Value)
}

func (s *Server) ExistsResource(w http.ResponseWriter, r *http.Request) {
	_, err := s.getResource(r)
	writeJSON(w, http.StatusOK, err == nil)
}

func (s *Server) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var body models.EditResource
	if !decode(w, r, &body) {
		return
	}
	path := pathParam(r)
	now := time.Now().UTC()
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		res, ok := wk.resources[path]
		if !ok {
			return fmt.Errorf("resource %s: %w", path, errNotFound)
		}
		if body.Description != nil {
			res.Description = body.Description
		}
		if body.Value != nil {
			res.Value = body.Value
		}
		res.EditedAt = &now
		if body.Path != nil && *body.Path != path {
			if _, taken := wk.resources[*body.Path]; taken {
				return fmt.Errorf("resource %s: %w", *body.Path, errExists)
			}
			delete(wk.resources, path)
			res.Path = *body.Path
		}
		wk.resources[res.Path] = res
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "updated resource at path "+path)
}

func (s *Server) DeleteResource(w http.ResponseWriter, r *http.Request) {
	path := pathParam(r)
	err := s.Store.with(workspaceParam(r), func(wk *workspace) error {
		if _, ok := wk.resources[path]; !ok {
			return fmt.Errorf("resource %s: %w", path, errNotFound)
		}
		delete(wk.resources, path)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "resource "+path+" deleted")
}

// splitList parses a comma-separated query value into a set.
func splitList(v string) map[string]bool {
	if v == "" {
		return nil
	}
	out := make(map[string]bool)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out[p] = true
		}
	}
	return out
}
