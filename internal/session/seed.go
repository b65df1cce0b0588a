package session

import (
	"encoding/base64"

	"phi/internal/domain"
)

const (
	defaultSubscriptionURL = "https://example.com/subscribe"

	colorLogoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><circle cx="50" cy="50" r="40" fill="#FFC700"/><path d="M50 30 v40 M35 50 h30" stroke="#110E24" stroke-width="8" stroke-linecap="round"/></svg>`
	whiteLogoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><circle cx="50" cy="50" r="40" fill="none" stroke="#F0E8FF" stroke-width="8"/><path d="M50 30 v40 M35 50 h30" stroke="#F0E8FF" stroke-width="8" stroke-linecap="round"/></svg>`
)

func dataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// DefaultConfig returns the seeded branding assets and subscription link.
func DefaultConfig() Config {
	return Config{
		LogoURL:         dataURI(colorLogoSVG),
		WhiteLogoURL:    dataURI(whiteLogoSVG),
		SubscriptionURL: defaultSubscriptionURL,
	}
}

// SeedUsers returns the development roster the store boots with.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:       "1",
			Name:     "Ahmed",
			Email:    "ahmed@example.com",
			Password: "password123",
			Plan:     domain.PlanPro,
			Usage: domain.UsageLedger{
				domain.FeatureCV:                {Used: 1, Total: 15},
				domain.FeatureSOP:               {Used: 3, Total: 15},
				domain.FeatureBooking:           {Used: 0, Total: 1},
				domain.FeatureApplicationReview: {Used: 0, Total: 1},
			},
		},
		{
			ID:       "2",
			Name:     "Fatima",
			Email:    "fatima@example.com",
			Password: "password123",
			Plan:     domain.PlanFree,
			Usage: domain.UsageLedger{
				domain.FeatureCV:                {Used: 1, Total: 3},
				domain.FeatureSOP:               {Used: 1, Total: 3},
				domain.FeatureBooking:           {Used: 0, Total: 0},
				domain.FeatureApplicationReview: {Used: 0, Total: 0},
			},
		},
		{
			ID:       "3",
			Name:     "Admin User",
			Email:    "admin@phi.com",
			Password: "admin123",
			Plan:     domain.PlanPremium,
			IsAdmin:  true,
			Usage: domain.UsageLedger{
				domain.FeatureCV:                {Used: 0, Total: 999},
				domain.FeatureSOP:               {Used: 0, Total: 999},
				domain.FeatureBooking:           {Used: 0, Total: 999},
				domain.FeatureApplicationReview: {Used: 0, Total: 999},
			},
		},
	}
}

// NewSeededStore builds a store with the default roster, plans and config.
func NewSeededStore() *Store {
	return NewStore(SeedUsers(), domain.DefaultPlans(), DefaultConfig())
}
