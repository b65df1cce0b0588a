// Package handlers exposes the session store, the access gate and the
// assistant over the HTTP API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"phi/internal/assistant"
	"phi/internal/domain"
	"phi/internal/middleware"
	"phi/internal/session"
	"phi/internal/storage"
)

// App bundles the handler dependencies.
type App struct {
	Store        *session.Store
	Tools        *assistant.Tools
	Scholarships *assistant.Scholarships
	Cache        *storage.Cache
	Logger       zerolog.Logger
}

// NewApp wires the handler container.
func NewApp(store *session.Store, tools *assistant.Tools, scholarships *assistant.Scholarships, cache *storage.Cache, logger zerolog.Logger) *App {
	return &App{
		Store:        store,
		Tools:        tools,
		Scholarships: scholarships,
		Cache:        cache,
		Logger:       logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// lang resolves the effective locale for a request: the i18n middleware
// already folded headers, GeoIP and the session fallback together.
func (a *App) lang(r *http.Request) domain.Lang {
	return middleware.LangFromContext(r.Context())
}

// currentUser returns the session user or replies 401.
func (a *App) currentUser(w http.ResponseWriter) (domain.User, bool) {
	u, ok := a.Store.CurrentUser()
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "login required")
		return domain.User{}, false
	}
	return u, true
}

// currentAdmin returns the session user when it carries the admin flag,
// replying 401/403 otherwise.
func (a *App) currentAdmin(w http.ResponseWriter) (domain.User, bool) {
	u, ok := a.currentUser(w)
	if !ok {
		return domain.User{}, false
	}
	if !u.IsAdmin {
		a.error(w, http.StatusForbidden, "forbidden", "admin access required")
		return domain.User{}, false
	}
	return u, true
}
