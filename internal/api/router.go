// Package api is an in-memory server speaking a subset of the Windmill API.
// It backs `wmill dev-server` and the end-to-end tests of the client.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds shared state for all API handlers.
type Server struct {
	Store *Store
	// Token, when set, must be sent as a Bearer credential.
	Token string
	// Version is reported by GET /api/version.
	Version string
	// User is recorded as the creator of objects and jobs.
	User string
	// Password lets User exchange it for Token at /auth/login.
	Password string
	Logger   *slog.Logger
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Server) user() string {
	if s.User != "" {
		return s.User
	}
	return "admin@windmill.dev"
}

// NewRouter builds the chi router with all API routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(compressMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.GetVersion)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Get("/users/whoami", s.GlobalWhoami)
			r.Get("/workspaces/list", s.ListWorkspaces)
			r.Post("/workspaces/create", s.CreateWorkspace)
			r.Post("/schedules/preview", s.PreviewSchedule)

			r.Route("/w/{workspace}", func(r chi.Router) {
				r.Get("/users/whoami", s.Whoami)

				r.Post("/resources/create", s.CreateResource)
				r.Get("/resources/list", s.ListResources)
				r.Get("/resources/get/*", s.GetResource)
				r.Get("/resources/get_value/*", s.GetResourceValue)
				r.Get("/resources/exists/*", s.ExistsResource)
				r.Post("/resources/update/*", s.UpdateResource)
				r.Delete("/resources/delete/*", s.DeleteResource)

				r.Post("/variables/create", s.CreateVariable)
				r.Get("/variables/list", s.ListVariables)
				r.Get("/variables/get/*", s.GetVariable)
				r.Get("/variables/get_value/*", s.GetVariableValue)
				r.Get("/variables/exists/*", s.ExistsVariable)
				r.Post("/variables/update/*", s.UpdateVariable)
				r.Delete("/variables/delete/*", s.DeleteVariable)

				r.Post("/scripts/create", s.CreateScript)
				r.Get("/scripts/list", s.ListScripts)
				r.Get("/scripts/get/p/*", s.GetScriptByPath)
				r.Get("/scripts/raw/p/*", s.RawScriptByPath)
				r.Get("/scripts/exists/p/*", s.ExistsScriptByPath)

				r.Post("/flows/create", s.CreateFlow)
				r.Get("/flows/list", s.ListFlows)
				r.Get("/flows/get/*", s.GetFlowByPath)
				r.Get("/flows/exists/*", s.ExistsFlowByPath)
				r.Post("/flows/update/*", s.UpdateFlow)

				r.Post("/schedules/create", s.CreateSchedule)
				r.Get("/schedules/list", s.ListSchedules)
				r.Get("/schedules/get/*", s.GetSchedule)
				r.Get("/schedules/exists/*", s.ExistsSchedule)
				r.Post("/schedules/update/*", s.UpdateSchedule)
				r.Post("/schedules/setenabled/*", s.SetScheduleEnabled)
				r.Delete("/schedules/delete/*", s.DeleteSchedule)

				r.Post("/jobs/run/p/*", s.RunScriptByPath)
				r.Post("/jobs/run/f/*", s.RunFlowByPath)
				r.Get("/jobs/list", s.ListJobs)
				r.Get("/jobs_u/get/{id}", s.GetJob)
				r.Get("/jobs_u/get_logs/{id}", s.GetJobLogs)
				r.Get("/jobs_u/getupdate/{id}", s.GetJobUpdates)
				r.Get("/jobs_u/completed/get/{id}", s.GetCompletedJob)
				r.Get("/jobs_u/completed/get_result/{id}", s.GetCompletedJobResult)
				r.Get("/jobs_u/completed/get_result_maybe/{id}", s.GetCompletedJobResultMaybe)
				r.Post("/jobs_u/queue/cancel/{id}", s.CancelQueuedJob)

				r.Post("/job_helpers/upload_s3_file", s.UploadS3File)
				r.Get("/job_helpers/download_s3_file", s.DownloadS3File)
			})
		})
	})

	// WebSocket (outside /api to avoid JSON content-type assumptions)
	r.With(s.requireToken).Get("/ws/w/{workspace}/jobs/{id}/logs", s.StreamJobLogs)

	return r
}

// requireToken rejects requests without the configured Bearer token.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			got = r.URL.Query().Get("token")
		}
		if got != s.Token {
			writeError(w, http.StatusUnauthorized, "Not authorized: missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetVersion reports the server version as plain text.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	v := s.Version
	if v == "" {
		v = "0.0.0"
	}
	writeText(w, http.StatusOK, "CE v"+v)
}

// pathParam returns the unescaped wildcard path of the route.
func pathParam(r *http.Request) string {
	p := chi.URLParam(r, "*")
	if u, err := url.PathUnescape(p); err == nil {
		return u
	}
	return p
}

func workspaceParam(r *http.Request) string {
	w := chi.URLParam(r, "workspace")
	if u, err := url.PathUnescape(w); err == nil {
		return u
	}
	return w
}

// decode reads a JSON body into v and answers 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

// writeError answers with a plain-text message, the way Windmill reports
// errors.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeText(w, status, msg)
}

// writeStoreError maps store errors to statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, "Not found: "+err.Error())
	case errors.Is(err, errExists):
		writeError(w, http.StatusBadRequest, "Bad request: "+err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
