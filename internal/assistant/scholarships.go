package assistant

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"phi/internal/domain"
)

// SearchParams narrows a scholarship search. "all" and empty values mean
// the dimension is unconstrained.
type SearchParams struct {
	Text      string `json:"text"`
	Specialty string `json:"specialty"`
	Level     string `json:"level"`
}

// Query flattens the parameters into the natural-language query string the
// prompt embeds.
func (p SearchParams) Query() string {
	parts := []string{strings.TrimSpace(p.Text)}
	if p.Specialty != "" && p.Specialty != "all" {
		parts = append(parts, "in "+p.Specialty)
	}
	if p.Level != "" && p.Level != "all" {
		parts = append(parts, "for "+p.Level+" level")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Scholarships generates scholarship listings. Both operations degrade to
// an empty slice on any failure: for a search surface, no results is an
// acceptable outcome where an error page is not.
type Scholarships struct {
	client *Client
	logger zerolog.Logger
}

// NewScholarships wires the scholarship operations to an assistant client.
func NewScholarships(client *Client, logger *zerolog.Logger) *Scholarships {
	l := zerolog.New(io.Discard)
	if logger != nil {
		l = *logger
	}
	return &Scholarships{client: client, logger: l}
}

// Top generates the homepage list of six diverse open or opening-soon
// scholarships.
func (s *Scholarships) Top(ctx context.Context, lang domain.Lang) []domain.Scholarship {
	return s.generate(ctx, buildTopScholarshipsPrompt(lang))
}

// Search generates listings matching the user's query.
func (s *Scholarships) Search(ctx context.Context, params SearchParams, lang domain.Lang) []domain.Scholarship {
	return s.generate(ctx, buildSearchScholarshipsPrompt(params.Query(), lang))
}

func (s *Scholarships) generate(ctx context.Context, prompt string) []domain.Scholarship {
	var out []domain.Scholarship
	if err := s.client.GenerateJSON(ctx, prompt, scholarshipSchema(), &out); err != nil {
		s.logger.Warn().Err(err).Msg("assistant: scholarship generation degraded to empty list")
		return []domain.Scholarship{}
	}
	if out == nil {
		out = []domain.Scholarship{}
	}
	return out
}
