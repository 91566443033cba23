package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// Login answers with the server token when the email is the server user
// and the password matches.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body models.Login
	if !decode(w, r, &body) {
		return
	}
	if !strings.EqualFold(body.Email, s.user()) || body.Password != s.Password {
		writeError(w, http.StatusUnauthorized, "Invalid login")
		return
	}
	writeText(w, http.StatusOK, s.Token)
}

func (s *Server) GlobalWhoami(w http.ResponseWriter, r *http.Request) {
	name := s.username()
	writeJSON(w, http.StatusOK, models.GlobalUserInfo{
		Email:      s.user(),
		LoginType:  models.LoginTypePassword,
		SuperAdmin: true,
		Verified:   true,
		Username:   &name,
	})
}

func (s *Server) Whoami(w http.ResponseWriter, r *http.Request) {
	err := s.Store.view(workspaceParam(r), func(*workspace) error { return nil })
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.User{
		Email:         s.user(),
		Username:      s.username(),
		IsAdmin:       true,
		IsSuperAdmin:  true,
		CreatedAt:     started,
		Groups:        []string{"all"},
		Folders:       []string{},
		FoldersOwners: []string{},
	})
}

// username is the local part of the server user email.
func (s *Server) username() string {
	name, _, _ := strings.Cut(s.user(), "@")
	return name
}

// started is when the package was loaded; dev users are created then.
var started = time.Now().UTC()
