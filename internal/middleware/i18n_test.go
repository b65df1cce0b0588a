package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"phi/internal/domain"
)

func resolveLang(t *testing.T, build func(*http.Request), fallback func() domain.Lang, lookup CountryLookup) domain.Lang {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if build != nil {
		build(req)
	}
	var got domain.Lang
	handler := I18N(fallback, lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LangFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestI18NXLocaleHeaderWins(t *testing.T) {
	got := resolveLang(t, func(r *http.Request) {
		r.Header.Set("X-Locale", "ar")
		r.Header.Set("Accept-Language", "en-US")
	}, nil, nil)
	if got != domain.LangAR {
		t.Fatalf("lang = %q, want ar from X-Locale", got)
	}
}

func TestI18NAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   domain.Lang
	}{
		{"ar-SA,ar;q=0.9,en;q=0.5", domain.LangAR},
		{"en-GB,en;q=0.8", domain.LangEN},
		{"fr-FR,fr;q=0.9", domain.LangEN},
	}
	for _, tc := range tests {
		got := resolveLang(t, func(r *http.Request) {
			r.Header.Set("Accept-Language", tc.header)
		}, nil, nil)
		if got != tc.want {
			t.Fatalf("Accept-Language %q resolved to %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestI18NCountryHeaderDefaultsArabicCountriesToArabic(t *testing.T) {
	got := resolveLang(t, func(r *http.Request) {
		r.Header.Set("CF-IPCountry", "sa")
	}, nil, nil)
	if got != domain.LangAR {
		t.Fatalf("lang = %q, want ar for SA", got)
	}

	got = resolveLang(t, func(r *http.Request) {
		r.Header.Set("CF-IPCountry", "DE")
	}, nil, nil)
	if got != domain.LangEN {
		t.Fatalf("lang = %q, want en for DE", got)
	}
}

func TestI18NGeoIPLookup(t *testing.T) {
	lookup := func(ip string) (string, error) { return "EG", nil }
	got := resolveLang(t, func(r *http.Request) {
		r.RemoteAddr = "203.0.113.9:443"
	}, nil, lookup)
	if got != domain.LangAR {
		t.Fatalf("lang = %q, want ar from GeoIP country EG", got)
	}
}

func TestI18NSessionFallback(t *testing.T) {
	fallback := func() domain.Lang { return domain.LangAR }
	if got := resolveLang(t, nil, fallback, nil); got != domain.LangAR {
		t.Fatalf("lang = %q, want session fallback ar", got)
	}
}

func TestI18NCountryInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Country-Code", "jo")
	var country string
	handler := I18N(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		country = CountryFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if country != "JO" {
		t.Fatalf("country = %q, want JO", country)
	}
}
