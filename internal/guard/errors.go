package guard

import (
	"github.com/storekit/shopctl/internal/errors"
	"github.com/storekit/shopctl/internal/session"
)

func notLoggedIn(required session.Role) error {
	return errors.NotLoggedIn(string(required))
}

func roleMismatch(have, want session.Role) error {
	label := string(have)
	if label == "" {
		// Token restored from disk but no role yet; a fresh login fixes it.
		return errors.RoleMismatch("an expired or partial session", string(want)).
			WithSuggestions("log in again to refresh your role")
	}
	return errors.RoleMismatch(label, string(want))
}
