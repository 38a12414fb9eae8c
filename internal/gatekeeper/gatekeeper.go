// Package gatekeeper decides which screen is actually rendered for a
// navigation request, given the current session. Resolution is a pure
// function over its inputs: no I/O, no mutation, and it always produces a
// defined effective view.
package gatekeeper

import (
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
)

// EffectiveView is what the UI renders. It is the set of navigable views
// plus two wall sentinels prompting the user to satisfy a missing
// precondition.
type EffectiveView string

const (
	// LoginWall prompts for authentication. Distinct from the login view
	// itself: it carries the context of the originally requested screen.
	LoginWall EffectiveView = "login_wall"
	// UpgradeWall prompts for a subscription upgrade.
	UpgradeWall EffectiveView = "upgrade_wall"
)

// For lifts a plain view into the effective-view space.
func For(v enums.View) EffectiveView {
	return EffectiveView(v)
}

// IsWall reports whether the effective view is a precondition prompt rather
// than a real screen.
func (e EffectiveView) IsWall() bool {
	return e == LoginWall || e == UpgradeWall
}

// String implements fmt.Stringer.
func (e EffectiveView) String() string {
	return string(e)
}

// Resolve maps a requested view and session snapshot to the view the UI may
// render. Gates apply in fixed precedence; the first that triggers wins:
//
//  1. login gate: auth-only views are walled off for anonymous sessions
//  2. profile-completion gate: an incomplete profile forces the onboarding
//     screen over anything else, including unprotected views
//  3. reverse gate: an onboarded user cannot navigate back into the login
//     or onboarding screens; they land home instead
//  4. tier gate: tiered views require the user's tier to meet the view's
//
// Authentication precedes identity-dependent gates, and profile completion
// precedes tier checks, so an anonymous user asking for a tiered view sees
// the login wall, never the upgrade wall.
func Resolve(requested enums.View, snap session.Snapshot) EffectiveView {
	user := snap.User

	if requested.RequiresAuth() && user == nil {
		return LoginWall
	}

	if user != nil && !user.ProfileComplete && requested != enums.ViewProfileCompletion {
		return For(enums.ViewProfileCompletion)
	}

	if user != nil && user.ProfileComplete &&
		(requested == enums.ViewLogin || requested == enums.ViewProfileCompletion) {
		return For(enums.ViewHome)
	}

	if required, gated := requested.RequiredTier(); gated {
		if user == nil || !user.Tier.AtLeast(required) {
			return UpgradeWall
		}
	}

	return For(requested)
}
