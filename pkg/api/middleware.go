package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// principalKey is the context key the auth middleware stores the decided
// principal under.
const principalKey = "principal"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requireScope returns middleware that authorizes the request for one scope.
func (s *Server) requireScope(scope string) echo.MiddlewareFunc {
	return s.authorize(scope, false)
}

// requireAdmin is requireScope plus the admin grant.
func (s *Server) requireAdmin(scope string) echo.MiddlewareFunc {
	return s.authorize(scope, true)
}

func (s *Server) authorize(scope string, admin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			decision := s.deps.Decider.Decide(c.Request().Header.Get("Authorization"), scope, admin)
			if !decision.Allowed {
				if decision.StatusCode == http.StatusForbidden {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(principalKey, decision.Principal)
			return next(c)
		}
	}
}

// principal returns the authenticated principal, or the anonymous one when
// auth is disabled and the middleware never ran.
func principal(c *echo.Context) string {
	if p, ok := c.Get(principalKey).(string); ok && p != "" {
		return p
	}
	return "anonymous"
}
