package permissions

import "slices"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// RedirectToLogin means no identity is present; the caller must be sent
	// to the login entry point before any page content is evaluated.
	RedirectToLogin Decision = iota
	// Deny means the identity is known but its role is not in the allow-list;
	// the protected content must not be rendered.
	Deny
	// Allow means the protected content may be rendered.
	Allow
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect_to_login"
	case Deny:
		return "deny"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Authorize decides render-vs-deny for one protected page or endpoint.
// An empty role means there is no authenticated identity. Denial is never
// fatal; callers translate the decision into a recoverable response.
func Authorize(role string, allowedRoles []string) Decision {
	if role == "" {
		return RedirectToLogin
	}

	if slices.Contains(allowedRoles, role) {
		return Allow
	}

	return Deny
}
