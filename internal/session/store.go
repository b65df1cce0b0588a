// Package session holds the single-slot session, the user roster and the
// admin-editable configuration. The store is the only mutable state in the
// process; everything it hands out is a copy.
package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"phi/internal/domain"
)

// Config is the admin-editable branding and subscription configuration.
type Config struct {
	LogoURL         string `json:"logo_url"`
	WhiteLogoURL    string `json:"white_logo_url"`
	SubscriptionURL string `json:"subscription_url"`
}

// Store owns the session slot, roster, plans and config. All methods are
// safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	lang       domain.Lang
	activeView domain.View
	current    *domain.User

	users  []domain.User
	plans  []domain.PlanDetails
	config Config
}

// NewStore returns a store initialized with the given roster and plan
// catalogue, no session user, the default locale and the home view.
func NewStore(users []domain.User, plans []domain.PlanDetails, cfg Config) *Store {
	roster := make([]domain.User, 0, len(users))
	for _, u := range users {
		roster = append(roster, u.Clone())
	}
	return &Store{
		lang:       domain.DefaultLang,
		activeView: domain.ViewHome,
		users:      roster,
		plans:      append([]domain.PlanDetails(nil), plans...),
		config:     cfg,
	}
}

// Authenticate matches email case-insensitively and the secret exactly.
// On success the session user is set and the active view jumps to the
// role-appropriate dashboard. On failure session state is untouched.
func (s *Store) Authenticate(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		u := &s.users[i]
		if strings.EqualFold(u.Email, email) && u.Password == password {
			c := u.Clone()
			s.current = &c
			if c.IsAdmin {
				s.activeView = domain.ViewAdminDashboard
			} else {
				s.activeView = domain.ViewDashboard
			}
			return true
		}
	}
	return false
}

// EndSession clears the session user and returns to the public home view.
func (s *Store) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.activeView = domain.ViewHome
}

// CurrentUser returns a copy of the session user, or false when nobody is
// logged in.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return s.current.Clone(), true
}

// CreateUser appends a new user with a fresh unique id and a ledger derived
// from the plan's default allotments. The new user is not authenticated.
func (s *Store) CreateUser(name, email, password string, plan domain.Plan) domain.User {
	u := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Plan:     plan,
		Usage:    domain.NewLedger(plan),
	}
	s.mu.Lock()
	s.users = append(s.users, u.Clone())
	s.mu.Unlock()
	return u
}

// UpdateUser replaces the roster entry with the same id wholesale. When the
// session user shares that id the cached session copy is replaced too, so a
// login never observes stale fields.
func (s *Store) UpdateUser(updated domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = updated.Clone()
			break
		}
	}
	if s.current != nil && s.current.ID == updated.ID {
		c := updated.Clone()
		s.current = &c
	}
}

// DeleteUser removes the matching roster entry. An active session for that
// id is left alone; no forced logout is performed.
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

// Users returns a copy of the roster.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// UserByID returns a copy of the roster entry with the given id.
func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), true
		}
	}
	return domain.User{}, false
}

// SetLang switches the session locale. Unknown values are ignored.
func (s *Store) SetLang(lang domain.Lang) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}

// Lang returns the session locale.
func (s *Store) Lang() domain.Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetActiveView records the requested logical view.
func (s *Store) SetActiveView(v domain.View) {
	s.mu.Lock()
	s.activeView = v
	s.mu.Unlock()
}

// ActiveView returns the requested logical view.
func (s *Store) ActiveView() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

// UpdateBranding replaces both logo references wholesale.
func (s *Store) UpdateBranding(colorLogo, whiteLogo string) {
	s.mu.Lock()
	s.config.LogoURL = colorLogo
	s.config.WhiteLogoURL = whiteLogo
	s.mu.Unlock()
}

// UpdateSubscriptionURL replaces the outbound subscription link.
func (s *Store) UpdateSubscriptionURL(url string) {
	s.mu.Lock()
	s.config.SubscriptionURL = url
	s.mu.Unlock()
}

// Config returns the current branding and subscription configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// ReplacePlans swaps the whole pricing catalogue. There is no per-tier
// merge; the admin panel always saves the full set.
func (s *Store) ReplacePlans(plans []domain.PlanDetails) {
	s.mu.Lock()
	s.plans = append([]domain.PlanDetails(nil), plans...)
	s.mu.Unlock()
}

// Plans returns a copy of the pricing catalogue.
func (s *Store) Plans() []domain.PlanDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PlanDetails(nil), s.plans...)
}
