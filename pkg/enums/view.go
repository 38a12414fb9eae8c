package enums

import "fmt"

// View is one of the navigable screens of the application.
type View string

const (
	ViewHome              View = "home"
	ViewMarketplace       View = "marketplace"
	ViewBooking           View = "booking"
	ViewHomeGym           View = "home_gym"
	ViewAssistant         View = "assistant"
	ViewDashboard         View = "dashboard"
	ViewProfile           View = "profile"
	ViewLogin             View = "login"
	ViewProfileCompletion View = "profile_completion"
	ViewSubscription      View = "subscription"
)

var validViews = []View{
	ViewHome,
	ViewMarketplace,
	ViewBooking,
	ViewHomeGym,
	ViewAssistant,
	ViewDashboard,
	ViewProfile,
	ViewLogin,
	ViewProfileCompletion,
	ViewSubscription,
}

// viewGates carries the per-view access requirements. Views absent from the
// map are public and tier-free.
var viewGates = map[View]struct {
	requiresAuth bool
	requiredTier Tier
}{
	ViewAssistant: {requiresAuth: true, requiredTier: TierPro},
	ViewDashboard: {requiresAuth: true, requiredTier: TierPro},
	ViewProfile:   {requiresAuth: true},
}

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}

// IsValid reports whether the value is a known View.
func (v View) IsValid() bool {
	for _, candidate := range validViews {
		if candidate == v {
			return true
		}
	}
	return false
}

// RequiresAuth reports whether the view is reachable only with a signed-in user.
func (v View) RequiresAuth() bool {
	return viewGates[v].requiresAuth
}

// RequiredTier returns the minimum tier needed for the view, or empty when untiered.
func (v View) RequiredTier() (Tier, bool) {
	gate, ok := viewGates[v]
	if !ok || gate.requiredTier == "" {
		return "", false
	}
	return gate.requiredTier, true
}

// ParseView converts raw input into a View.
func ParseView(value string) (View, error) {
	for _, candidate := range validViews {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view %q", value)
}
