package handlers

import (
	"encoding/json"
	"net/http"

	"phi/internal/domain"
	"phi/internal/view"
)

type navigateRequest struct {
	View domain.View `json:"view"`
}

type navigateResponse struct {
	Requested domain.View `json:"requested"`
	Rendered  domain.View `json:"rendered"`
}

// Navigate records the requested logical view and returns the view the
// access gate actually renders. Redirects are downgrades, never rejections,
// so this endpoint always answers 200.
func (a *App) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.SetActiveView(req.View)

	var current *domain.User
	if u, ok := a.Store.CurrentUser(); ok {
		current = &u
	}
	a.json(w, http.StatusOK, navigateResponse{
		Requested: req.View,
		Rendered:  view.Resolve(current, req.View),
	})
}

// Session reports the session snapshot plus branding/config so a client can
// hydrate in one request.
func (a *App) Session(w http.ResponseWriter, r *http.Request) {
	var current *domain.User
	if u, ok := a.Store.CurrentUser(); ok {
		current = &u
	}
	requested := a.Store.ActiveView()
	a.json(w, http.StatusOK, map[string]any{
		"user":      current,
		"lang":      a.Store.Lang(),
		"view":      view.Resolve(current, requested),
		"config":    a.Store.Config(),
		"plans":     a.Store.Plans(),
		"rtl":       a.Store.Lang().IsRTL(),
		"requested": requested,
	})
}

type langRequest struct {
	Lang domain.Lang `json:"lang"`
}

// SetLang switches the session locale. The text-direction change is the
// client's concern; the store only records the locale.
func (a *App) SetLang(w http.ResponseWriter, r *http.Request) {
	var req langRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !req.Lang.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported lang")
		return
	}
	a.Store.SetLang(req.Lang)
	a.json(w, http.StatusOK, map[string]any{"lang": req.Lang, "rtl": req.Lang.IsRTL()})
}
