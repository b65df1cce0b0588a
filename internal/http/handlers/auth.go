package handlers

import (
	"encoding/json"
	"net/http"

	"phi/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User       *domain.User `json:"user"`
	ActiveView domain.View  `json:"active_view"`
	Lang       domain.Lang  `json:"lang"`
}

// Login authenticates against the roster. The email matches
// case-insensitively; the password must match exactly. Failures leave the
// session untouched and surface as an inline 401, never a lockout.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}
	if !a.Store.Authenticate(req.Email, req.Password) {
		a.error(w, http.StatusUnauthorized, "invalid_credentials", "no matching account")
		return
	}
	a.json(w, http.StatusOK, a.sessionSnapshot())
}

// Logout clears the session user and returns to the home view.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	a.Store.EndSession()
	a.json(w, http.StatusOK, a.sessionSnapshot())
}

// Me returns the session user.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := a.currentUser(w)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, u)
}

func (a *App) sessionSnapshot() sessionResponse {
	resp := sessionResponse{
		ActiveView: a.Store.ActiveView(),
		Lang:       a.Store.Lang(),
	}
	if u, ok := a.Store.CurrentUser(); ok {
		resp.User = &u
	}
	return resp
}
