package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// maxUpload bounds the body accepted by upload_s3_file.
const maxUpload = 32 << 20

// UploadS3File stores the raw body under file_key, or under a fresh key in
// windmill_uploads/ when none is given.
func (s *Server) UploadS3File(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("file_key")
	if key == "" {
		key = "windmill_uploads/" + uuid.NewString()
		if ext := q.Get("file_extension"); ext != "" {
			key += "." + ext
		}
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUpload+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading body: "+err.Error())
		return
	}
	if len(data) > maxUpload {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", maxUpload))
		return
	}
	err = s.Store.with(workspaceParam(r), func(wk *workspace) error {
		wk.files[key] = data
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.UploadResult{FileKey: key})
}

func (s *Server) DownloadS3File(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("file_key")
	var data []byte
	err := s.Store.view(workspaceParam(r), func(wk *workspace) error {
		var ok bool
		if data, ok = wk.files[key]; !ok {
			return fmt.Errorf("file %s: %w", key, errNotFound)
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
