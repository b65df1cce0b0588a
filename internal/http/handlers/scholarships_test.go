package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phi/internal/domain"
)

func TestTopScholarshipsCachesPerLocale(t *testing.T) {
	var calls int
	app := newTestApp(t, func(r *http.Request) (*http.Response, error) {
		calls++
		return geminiTextResponse(scholarshipListingPayload), nil
	})

	rec := httptest.NewRecorder()
	app.TopScholarships(rec, httptest.NewRequest(http.MethodGet, "/v1/scholarships/top", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("TopScholarships status = %d", rec.Code)
	}
	var first scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(first.Scholarships) != 1 || first.Cached {
		t.Fatalf("first fetch = %+v, want 1 fresh scholarship", first)
	}

	rec = httptest.NewRecorder()
	app.TopScholarships(rec, httptest.NewRequest(http.MethodGet, "/v1/scholarships/top", nil))
	var second scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second fetch not served from cache")
	}
	if calls != 1 {
		t.Fatalf("assistant called %d times, want 1", calls)
	}
}

func TestTopScholarshipsExpiredCacheRefetches(t *testing.T) {
	var calls int
	app := newTestApp(t, func(r *http.Request) (*http.Response, error) {
		calls++
		return geminiTextResponse(scholarshipListingPayload), nil
	})

	var stale []domain.Scholarship
	_ = json.Unmarshal([]byte(scholarshipListingPayload), &stale)
	if err := app.Cache.Put(topScholarshipsKey(domain.DefaultLang), stale, time.Now().Add(-13*time.Hour)); err != nil {
		t.Fatalf("seed stale cache: %v", err)
	}

	rec := httptest.NewRecorder()
	app.TopScholarships(rec, httptest.NewRequest(http.MethodGet, "/v1/scholarships/top", nil))
	var got scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if got.Cached {
		t.Fatalf("13h-old cache entry was reused")
	}
	if calls != 1 {
		t.Fatalf("assistant called %d times, want 1 refetch", calls)
	}
}

func TestTopScholarshipsDegradesToEmptyList(t *testing.T) {
	app := newTestApp(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("down")
	})

	rec := httptest.NewRecorder()
	app.TopScholarships(rec, httptest.NewRequest(http.MethodGet, "/v1/scholarships/top", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("TopScholarships status = %d, want 200 even on failure", rec.Code)
	}
	var got scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if got.Scholarships == nil || len(got.Scholarships) != 0 {
		t.Fatalf("list = %+v, want empty non-nil slice", got.Scholarships)
	}
}

func TestSearchScholarshipsNeverErrors(t *testing.T) {
	app := newTestApp(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("down")
	})

	rec := httptest.NewRecorder()
	app.SearchScholarships(rec, httptest.NewRequest(http.MethodPost, "/v1/scholarships/search", strings.NewReader(`{"text":"robotics","specialty":"Engineering","level":"Masters"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("SearchScholarships status = %d, want 200 on assistant failure", rec.Code)
	}
	var got scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(got.Scholarships) != 0 {
		t.Fatalf("list = %+v, want empty", got.Scholarships)
	}
}

func TestSearchScholarshipsReturnsListings(t *testing.T) {
	app := newTestApp(t, textTransport(scholarshipListingPayload))

	rec := httptest.NewRecorder()
	app.SearchScholarships(rec, httptest.NewRequest(http.MethodPost, "/v1/scholarships/search", strings.NewReader(`{"text":"health"}`)))
	var got scholarshipList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(got.Scholarships) != 1 || got.Scholarships[0].CountryCode != "SE" {
		t.Fatalf("list = %+v, want the Karolinska listing", got.Scholarships)
	}
}

func TestScholarshipFiltersVocabulary(t *testing.T) {
	app := newTestApp(t, textTransport("unused"))
	rec := httptest.NewRecorder()
	app.ScholarshipFilters(rec, httptest.NewRequest(http.MethodGet, "/v1/scholarships/filters", nil))

	var got domain.ScholarshipFilters
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode filters: %v", err)
	}
	if len(got.Specialties) == 0 || len(got.Levels) == 0 {
		t.Fatalf("filters = %+v, want non-empty vocabularies", got)
	}
}
