package session

// Role identifies which kind of account a session belongs to.
type Role string

const (
	RoleBusiness  Role = "business"
	RoleCustomer  Role = "customer"
	RoleSuperuser Role = "superuser"
	// RoleNone is the unset role of an unauthenticated (or token-only) session.
	RoleNone Role = ""
)

// ParseRole parses a string into a Role, returning RoleNone for anything unknown.
func ParseRole(s string) Role {
	switch s {
	case "business":
		return RoleBusiness
	case "customer":
		return RoleCustomer
	case "superuser", "superUser":
		return RoleSuperuser
	default:
		return RoleNone
	}
}

// Valid reports whether the role is one of the three known account kinds.
func (r Role) Valid() bool {
	return r == RoleBusiness || r == RoleCustomer || r == RoleSuperuser
}

// User is the identity record of an authenticated account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the auth state container: the single source of truth for
// "who is logged in, as what role". All mutation goes through
// SetCredentials and Logout; persistence of the token is the caller's
// concern (see Store), keeping the transitions pure and testable.
type Session struct {
	User          *User
	Token         string
	Role          Role
	Authenticated bool
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Hydrate returns a session restored from a previously persisted token.
// Only the token survives persistence; user and role are deliberately
// not restored, so a hydrated session is authenticated but roleless
// until the next login.
func Hydrate(token string) *Session {
	return &Session{
		Token:         token,
		Authenticated: token != "",
	}
}

// SetCredentials unconditionally overwrites the session with a new
// identity, token, and role, marking it authenticated. Any non-empty
// token is accepted; no shape validation is performed.
func (s *Session) SetCredentials(user User, token string, role Role) {
	s.User = &user
	s.Token = token
	s.Role = role
	s.Authenticated = true
}

// Logout clears all session fields back to the unauthenticated state.
func (s *Session) Logout() {
	s.User = nil
	s.Token = ""
	s.Role = RoleNone
	s.Authenticated = false
}
