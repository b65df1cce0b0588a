package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"phi/internal/domain"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

var supportedLangs = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// arabicCountries lists ISO alpha-2 codes whose requests default to Arabic
// when no explicit language preference is present.
var arabicCountries = map[string]struct{}{
	"AE": {}, "BH": {}, "DZ": {}, "EG": {}, "IQ": {}, "JO": {}, "KW": {},
	"LB": {}, "LY": {}, "MA": {}, "MR": {}, "OM": {}, "PS": {}, "QA": {},
	"SA": {}, "SD": {}, "SO": {}, "SY": {}, "TN": {}, "YE": {},
}

// I18N tags each request with a resolved locale and, when determinable, an
// ISO country code. Precedence: X-Locale header, Accept-Language, GeoIP
// country, then the session fallback. The fallback is a function so the
// admin-visible session locale stays authoritative for header-less clients.
func I18N(fallback func() domain.Lang, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			lang := detectLang(r, fallback, country)
			ctx := context.WithValue(r.Context(), LocaleKey, lang)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, strings.ToUpper(country))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLang(r *http.Request, fallback func() domain.Lang, country string) domain.Lang {
	if v := r.Header.Get("X-Locale"); v != "" {
		return normalizeLang(v)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			// The matcher falls back to English for unsupported languages.
			tag, _, _ := supportedLangs.Match(tags...)
			return tagToLang(tag)
		}
	}
	if _, ok := arabicCountries[strings.ToUpper(country)]; ok {
		return domain.LangAR
	}
	if country != "" {
		return domain.LangEN
	}
	if fallback != nil {
		if lang := fallback(); lang.Valid() {
			return lang
		}
	}
	return domain.DefaultLang
}

func normalizeLang(raw string) domain.Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "ar") {
		return domain.LangAR
	}
	return domain.LangEN
}

func tagToLang(tag language.Tag) domain.Lang {
	if base, _ := tag.Base(); base.String() == "ar" {
		return domain.LangAR
	}
	return domain.LangEN
}

func resolveCountry(r *http.Request, lookup CountryLookup) string {
	headerHints := []string{"X-Country-Code", "X-IP-Country", "CF-IPCountry", "X-Appengine-Country"}
	for _, key := range headerHints {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LangFromContext returns the locale stored in the request context.
func LangFromContext(ctx context.Context) domain.Lang {
	if v, ok := ctx.Value(LocaleKey).(domain.Lang); ok {
		return v
	}
	return domain.DefaultLang
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}
