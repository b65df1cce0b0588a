// Package view decides which logical screen actually renders for a given
// session and requested view. Resolution is a pure function with no
// intermediate states; it must be re-run whenever session or request change.
package view

import "phi/internal/domain"

// Resolve maps a requested view to the view that renders.
//
// Rules, in order: private views without a user render login; the admin
// dashboard downgrades to the standard dashboard for non-admins; login
// renders the dashboard when already authenticated; unknown values fall
// back to home.
func Resolve(user *domain.User, requested domain.View) domain.View {
	if !requested.Public() && user == nil {
		return domain.ViewLogin
	}

	if requested == domain.ViewAdminDashboard {
		if user != nil && user.IsAdmin {
			return domain.ViewAdminDashboard
		}
		return domain.ViewDashboard
	}

	switch requested {
	case domain.ViewLogin:
		if user != nil {
			return domain.ViewDashboard
		}
		return domain.ViewLogin
	case domain.ViewDashboard:
		if user == nil {
			return domain.ViewLogin
		}
		return domain.ViewDashboard
	}

	if requested.Known() {
		return requested
	}
	return domain.ViewHome
}
