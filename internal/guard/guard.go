// Package guard gates access to role-specific views. The decision is a
// pure function of the current session and the required role; it holds
// no state and performs no side effects.
package guard

import (
	"github.com/storekit/shopctl/internal/session"
)

// Decision is the outcome of a route-guard check.
type Decision int

const (
	// Allow lets the gated view render.
	Allow Decision = iota
	// RedirectLogin sends the user to the required role's login view.
	RedirectLogin
	// RedirectHome sends the user back to the public landing view.
	RedirectHome
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decide gates a view that requires the given role. An unauthenticated
// session is redirected to that role's login; an authenticated session
// with any other role (including the roleless token-only state after a
// restart) is redirected home; otherwise the view is allowed.
func Decide(s *session.Session, required session.Role) Decision {
	if !s.Authenticated {
		return RedirectLogin
	}
	if s.Role != required {
		return RedirectHome
	}
	return Allow
}

// Check is the command-level convenience around Decide: it returns nil
// when the session may proceed and a coded error describing the
// redirect otherwise.
func Check(s *session.Session, required session.Role) error {
	switch Decide(s, required) {
	case RedirectLogin:
		return notLoggedIn(required)
	case RedirectHome:
		return roleMismatch(s.Role, required)
	}
	return nil
}
