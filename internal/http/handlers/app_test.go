package handlers

import (
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"phi/internal/assistant"
	"phi/internal/session"
	"phi/internal/storage"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// newTestApp builds a handler container over the seeded store with the
// assistant transport stubbed out.
func newTestApp(t *testing.T, rt roundTripFunc) *App {
	t.Helper()
	logger := zerolog.New(io.Discard)
	client := assistant.NewClient(assistant.Options{
		APIKey:     "dummy",
		HTTPClient: &http.Client{Transport: rt},
		Logger:     &logger,
	})
	cache, err := storage.NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	return NewApp(
		session.NewSeededStore(),
		assistant.NewTools(client),
		assistant.NewScholarships(client, &logger),
		cache,
		logger,
	)
}

func textTransport(text string) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		return geminiTextResponse(text), nil
	}
}

func loginAs(t *testing.T, app *App, email, password string) {
	t.Helper()
	if !app.Store.Authenticate(email, password) {
		t.Fatalf("seed login failed for %s", email)
	}
}
