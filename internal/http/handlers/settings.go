package handlers

import (
	"encoding/json"
	"net/http"

	"phi/internal/domain"
)

type brandingRequest struct {
	ColorLogo string `json:"color_logo"`
	WhiteLogo string `json:"white_logo"`
}

// UpdateBranding replaces both logo references. Logo values are opaque
// strings (data URIs or remote URLs); no reachability check is performed.
func (a *App) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	var req brandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.UpdateBranding(req.ColorLogo, req.WhiteLogo)
	a.json(w, http.StatusOK, a.Store.Config())
}

type subscriptionURLRequest struct {
	URL string `json:"url"`
}

// UpdateSubscriptionURL replaces the outbound subscription link.
func (a *App) UpdateSubscriptionURL(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	var req subscriptionURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.UpdateSubscriptionURL(req.URL)
	a.json(w, http.StatusOK, a.Store.Config())
}

type plansRequest struct {
	Plans []domain.PlanDetails `json:"plans"`
}

// ReplacePlans swaps the whole pricing catalogue in one save.
func (a *App) ReplacePlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentAdmin(w); !ok {
		return
	}
	var req plansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	for _, p := range req.Plans {
		if !p.ID.Valid() {
			a.error(w, http.StatusBadRequest, "bad_request", "unsupported plan id")
			return
		}
	}
	a.Store.ReplacePlans(req.Plans)
	a.json(w, http.StatusOK, map[string]any{"plans": a.Store.Plans()})
}

// Plans returns the pricing catalogue. Public.
func (a *App) Plans(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"plans": a.Store.Plans()})
}
