// Package access decides whether a session may enter a role-gated area.
package access

import "bazaar/internal/domain/entity"

// State is the outcome of a guard evaluation.
type State string

const (
	// StateLoading is reserved for clients that render before the session or role resolves.
	// The server resolves both before evaluating, so Evaluate never returns it.
	StateLoading State = "loading"
	// StateUnauthenticated means there is no session and the caller must sign in.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthorized means the caller may proceed.
	StateAuthorized State = "authorized"
	// StateRedirected means the caller is signed in but holds the wrong role.
	StateRedirected State = "redirected"
)

// Redirect targets.
const (
	SignInPath        = "/auth"
	HomePath          = "/"
	ShopDashboardPath = "/shop/dashboard"
)

// Decision is the guard verdict with the location the caller should be sent to, if any.
type Decision struct {
	State      State  `json:"state"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// Allowed reports whether the caller may proceed.
func (d Decision) Allowed() bool {
	return d.State == StateAuthorized
}

// Guard evaluates role-gated access. It holds no state; the role must be resolved fresh per evaluation.
type Guard struct{}

// NewGuard creates a Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Evaluate applies the access rules:
//   - no session: redirect to sign-in
//   - admin: authorized everywhere
//   - no required role: authorized
//   - role mismatch: shop owners go to their dashboard, everyone else home
func (g *Guard) Evaluate(session *entity.Session, role entity.Role, required *entity.Role) Decision {
	if session == nil {
		return Decision{State: StateUnauthenticated, RedirectTo: SignInPath}
	}
	if role == entity.RoleAdmin || required == nil || role == *required {
		return Decision{State: StateAuthorized}
	}
	if role == entity.RoleShopOwner {
		return Decision{State: StateRedirected, RedirectTo: ShopDashboardPath}
	}

	return Decision{State: StateRedirected, RedirectTo: HomePath}
}
