package domain

// View enumerates the logical application screens.
type View string

const (
	ViewHome              View = "home"
	ViewCV                View = "cv"
	ViewSOP               View = "sop"
	ViewCertificates      View = "certificates"
	ViewInterview         View = "interview"
	ViewTools             View = "tools"
	ViewFAQ               View = "faq"
	ViewBooking           View = "booking"
	ViewPricing           View = "pricing"
	ViewLogin             View = "login"
	ViewDashboard         View = "dashboard"
	ViewAdminDashboard    View = "admin_dashboard"
	ViewApplicationReview View = "application_review"
)

var publicViews = map[View]struct{}{
	ViewHome:    {},
	ViewPricing: {},
	ViewFAQ:     {},
	ViewLogin:   {},
}

var allViews = map[View]struct{}{
	ViewHome: {}, ViewCV: {}, ViewSOP: {}, ViewCertificates: {},
	ViewInterview: {}, ViewTools: {}, ViewFAQ: {}, ViewBooking: {},
	ViewPricing: {}, ViewLogin: {}, ViewDashboard: {}, ViewAdminDashboard: {},
	ViewApplicationReview: {},
}

// Known reports whether the value names one of the enumerated views.
func (v View) Known() bool {
	_, ok := allViews[v]
	return ok
}

// Public reports whether the view is reachable without a session user.
func (v View) Public() bool {
	_, ok := publicViews[v]
	return ok
}
