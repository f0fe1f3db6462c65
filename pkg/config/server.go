package config

import "time"

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// RequestTimeout bounds each request-scoped repository call.
	RequestTimeout Duration `yaml:"request_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		ShutdownTimeout: Duration(15 * time.Second),
		RequestTimeout:  Duration(30 * time.Second),
	}
}

// AuthConfig configures the bearer-token decision boundary.
type AuthConfig struct {
	// Enabled turns request authentication on. When off every request is
	// allowed with an anonymous principal.
	Enabled bool `yaml:"enabled"`

	// Tokens maps bearer tokens to their grants. Token issuance happens
	// elsewhere; scout only decides.
	Tokens map[string]TokenGrant `yaml:"tokens"`
}

// TokenGrant describes what a bearer token may do. Scopes support trailing
// wildcards ("*", "jobs:*").
type TokenGrant struct {
	Principal string   `yaml:"principal"`
	Scopes    []string `yaml:"scopes"`
	Admin     bool     `yaml:"admin"`
}

// DefaultAuthConfig returns the built-in auth defaults (authentication off).
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{}
}
