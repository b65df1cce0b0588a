package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"phi/internal/domain"
)

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Plan     domain.Plan `json:"plan"`
}

// ListUsers returns the roster. Admin only.
func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	a.json(w, http.StatusOK, map[string]any{"users": a.Store.Users()})
}

// CreateUser adds a roster entry with a fresh id and the plan's default
// allotments. The new account is not logged in.
func (a *App) CreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name, email and password required")
		return
	}
	if !req.Plan.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported plan")
		return
	}
	u := a.Store.CreateUser(req.Name, req.Email, req.Password, req.Plan)
	a.json(w, http.StatusCreated, u)
}

// UpdateUser wholesale-replaces the roster entry addressed by the URL. The
// session copy follows when the logged-in user is the one edited.
func (a *App) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	id := chi.URLParam(r, "id")
	existing, ok := a.Store.UserByID(id)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "user not found")
		return
	}
	var updated domain.User
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	updated.ID = id
	if updated.Password == "" {
		updated.Password = existing.Password
	}
	if !updated.Plan.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported plan")
		return
	}
	a.Store.UpdateUser(updated)
	saved, _ := a.Store.UserByID(id)
	a.json(w, http.StatusOK, saved)
}

// DeleteUser removes the roster entry. An active session for the deleted id
// stays logged in.
func (a *App) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if _, ok := a.Store.UserByID(id); !ok {
		a.error(w, http.StatusNotFound, "not_found", "user not found")
		return
	}
	a.Store.DeleteUser(id)
	w.WriteHeader(http.StatusNoContent)
}
