package api

import (
	"net/http"

	"github.com/rflorenc/windmill-client/pkg/models"
)

func (s *Server) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.ListWorkspaces())
}

func (s *Server) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var body models.CreateWorkspace
	if !decode(w, r, &body) {
		return
	}
	if body.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if body.Name == "" {
		body.Name = body.ID
	}
	if err := s.Store.CreateWorkspace(body); err != nil {
		writeStoreError(w, err)
		return
	}
	s.logger().Info("workspace created", "id", body.ID)
	writeText(w, http.StatusCreated, body.ID)
}
