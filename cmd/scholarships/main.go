// Command scholarships fetches or searches scholarship listings from the
// terminal using the same assistant the API serves. Useful for checking a
// Gemini key and eyeballing generation quality without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"phi/internal/assistant"
	"phi/internal/domain"
	"phi/internal/infra"
)

func main() {
	var (
		queryFlag     string
		specialtyFlag string
		levelFlag     string
		langFlag      string
		topFlag       bool
	)

	flag.StringVar(&queryFlag, "query", "", "free-text search query")
	flag.StringVar(&specialtyFlag, "specialty", "all", "specialty filter")
	flag.StringVar(&levelFlag, "level", "all", "study level filter")
	flag.StringVar(&langFlag, "lang", "en", "preferred locale (en or ar)")
	flag.BoolVar(&topFlag, "top", false, "fetch the homepage top list instead of searching")
	flag.Parse()

	_ = godotenv.Load()
	cfg := infra.LoadConfig()
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		exitWithError(fmt.Errorf("GEMINI_API_KEY is required"))
	}

	lang := domain.Lang(strings.ToLower(langFlag))
	if !lang.Valid() {
		exitWithError(fmt.Errorf("unsupported lang %q", langFlag))
	}

	logger := infra.NewLogger(cfg.AppEnv)
	client := assistant.NewClient(assistant.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	svc := assistant.NewScholarships(client, &logger)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	var results []domain.Scholarship
	if topFlag {
		results = svc.Top(ctx, lang)
	} else {
		if strings.TrimSpace(queryFlag) == "" {
			exitWithError(fmt.Errorf("-query is required unless -top is set"))
		}
		results = svc.Search(ctx, assistant.SearchParams{
			Text:      queryFlag,
			Specialty: specialtyFlag,
			Level:     levelFlag,
		}, lang)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no scholarships returned")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
