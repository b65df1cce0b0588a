package domain

// Plan enumerates subscription tiers.
type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanPro     Plan = "PRO"
	PlanPremium Plan = "PREMIUM"
)

// Valid reports whether the plan is one of the supported tiers.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPremium:
		return true
	}
	return false
}

// Feature identifies a quota-tracked capability on a user's ledger.
type Feature string

const (
	FeatureCV                Feature = "cv"
	FeatureSOP               Feature = "sop"
	FeatureBooking           Feature = "booking"
	FeatureApplicationReview Feature = "application_review"
)

// LedgerFeatures lists every feature a usage ledger covers.
var LedgerFeatures = []Feature{FeatureCV, FeatureSOP, FeatureBooking, FeatureApplicationReview}

// Usage is a consumed/allotted counter pair for one feature.
type Usage struct {
	Used  int `json:"used"`
	Total int `json:"total"`
}

// UsageLedger maps features to their usage counters.
type UsageLedger map[Feature]Usage

// Clone returns an independent copy of the ledger.
func (l UsageLedger) Clone() UsageLedger {
	if l == nil {
		return nil
	}
	out := make(UsageLedger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// planAllotments is the per-tier default allotment table applied when a new
// user is created.
var planAllotments = map[Plan]map[Feature]int{
	PlanFree:    {FeatureCV: 3, FeatureSOP: 3, FeatureBooking: 0, FeatureApplicationReview: 0},
	PlanPro:     {FeatureCV: 15, FeatureSOP: 15, FeatureBooking: 1, FeatureApplicationReview: 1},
	PlanPremium: {FeatureCV: 100, FeatureSOP: 100, FeatureBooking: 3, FeatureApplicationReview: 3},
}

// NewLedger builds a zero-consumption ledger from the plan's default
// allotments. Unknown plans fall back to the free tier.
func NewLedger(plan Plan) UsageLedger {
	totals, ok := planAllotments[plan]
	if !ok {
		totals = planAllotments[PlanFree]
	}
	ledger := make(UsageLedger, len(LedgerFeatures))
	for _, f := range LedgerFeatures {
		ledger[f] = Usage{Used: 0, Total: totals[f]}
	}
	return ledger
}

// User is an account on the platform. The password survives in plaintext
// because the roster is an in-memory seed, not a credential store.
type User struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"-"`
	Plan     Plan        `json:"plan"`
	IsAdmin  bool        `json:"is_admin"`
	Usage    UsageLedger `json:"usage"`
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (u User) Clone() User {
	c := u
	c.Usage = u.Usage.Clone()
	return c
}
