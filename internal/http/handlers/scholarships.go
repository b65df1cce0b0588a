package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"phi/internal/assistant"
	"phi/internal/domain"
)

// topScholarshipsTTL matches the freshness window the web client used for
// its local-storage copy.
const topScholarshipsTTL = 12 * time.Hour

func topScholarshipsKey(lang domain.Lang) string {
	return fmt.Sprintf("topScholarships_%s", lang)
}

type scholarshipList struct {
	Scholarships []domain.Scholarship `json:"scholarships"`
	Cached       bool                 `json:"cached"`
}

// TopScholarships serves the homepage list, reusing the per-locale cache
// entry while it is under twelve hours old. Generation failures degrade to
// an empty list; "no results" is a valid homepage state.
func (a *App) TopScholarships(w http.ResponseWriter, r *http.Request) {
	lang := a.lang(r)
	key := topScholarshipsKey(lang)

	var cached []domain.Scholarship
	if capturedAt, ok := a.Cache.Get(key, &cached); ok && time.Since(capturedAt) < topScholarshipsTTL {
		a.json(w, http.StatusOK, scholarshipList{Scholarships: cached, Cached: true})
		return
	}

	scholarships := a.Scholarships.Top(r.Context(), lang)
	if len(scholarships) > 0 {
		if err := a.Cache.Put(key, scholarships, time.Now()); err != nil {
			a.Logger.Warn().Err(err).Str("key", key).Msg("failed to cache top scholarships")
		}
	}
	a.json(w, http.StatusOK, scholarshipList{Scholarships: scholarships})
}

// SearchScholarships performs a live assistant-backed search. Never cached,
// never an error: failures are an empty result set.
func (a *App) SearchScholarships(w http.ResponseWriter, r *http.Request) {
	var params assistant.SearchParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	scholarships := a.Scholarships.Search(r.Context(), params, a.lang(r))
	a.json(w, http.StatusOK, scholarshipList{Scholarships: scholarships})
}

// ScholarshipFilters returns the fixed search vocabulary.
func (a *App) ScholarshipFilters(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, domain.SearchFilters())
}
