// Package auth decides whether a request may proceed. Scout never issues
// tokens; deployments hand out opaque bearer tokens through configuration
// and this package only matches them against the granted scopes.
package auth

import (
	"net/http"
	"strings"

	"github.com/hireflow/scout/pkg/config"
)

// AnonymousPrincipal names requests that arrive while authentication is
// disabled.
const AnonymousPrincipal = "anonymous"

// Decision is the outcome for one request. StatusCode is meaningful only
// when Allowed is false.
type Decision struct {
	Allowed    bool
	StatusCode int
	Principal  string
}

// Decider matches bearer tokens against configured grants.
type Decider struct {
	cfg *config.AuthConfig
}

// NewDecider creates a decider. A nil config disables authentication.
func NewDecider(cfg *config.AuthConfig) *Decider {
	if cfg == nil {
		cfg = config.DefaultAuthConfig()
	}
	return &Decider{cfg: cfg}
}

// Enabled reports whether requests are being authenticated at all.
func (d *Decider) Enabled() bool { return d.cfg.Enabled }

// Decide evaluates one Authorization header against a required scope.
// admin-only operations additionally require the grant's Admin flag. With
// authentication disabled every request passes as the anonymous principal.
func (d *Decider) Decide(header, scope string, admin bool) Decision {
	if !d.cfg.Enabled {
		return Decision{Allowed: true, Principal: AnonymousPrincipal}
	}

	token, ok := bearerToken(header)
	if !ok {
		return Decision{StatusCode: http.StatusUnauthorized}
	}
	grant, ok := d.cfg.Tokens[token]
	if !ok {
		return Decision{StatusCode: http.StatusUnauthorized}
	}
	if admin && !grant.Admin {
		return Decision{StatusCode: http.StatusForbidden, Principal: grant.Principal}
	}
	if !scopeAllowed(grant.Scopes, scope) {
		return Decision{StatusCode: http.StatusForbidden, Principal: grant.Principal}
	}
	return Decision{Allowed: true, Principal: grant.Principal}
}

// bearerToken extracts the token from an Authorization header. The scheme
// comparison is case-insensitive per RFC 7235.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// scopeAllowed matches one required scope against the granted list. A grant
// of "*" allows everything; a trailing "*" allows by prefix, so "jobs:*"
// covers "jobs:read" and "jobs:run".
func scopeAllowed(granted []string, scope string) bool {
	if scope == "" {
		return true
	}
	for _, g := range granted {
		switch {
		case g == "*":
			return true
		case g == scope:
			return true
		case strings.HasSuffix(g, "*") && strings.HasPrefix(scope, strings.TrimSuffix(g, "*")):
			return true
		}
	}
	return false
}
