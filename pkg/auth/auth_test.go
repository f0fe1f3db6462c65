package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hireflow/scout/pkg/config"
)

func enabledConfig() *config.AuthConfig {
	return &config.AuthConfig{
		Enabled: true,
		Tokens: map[string]config.TokenGrant{
			"reader-token": {Principal: "reader", Scopes: []string{"jobs:read", "candidates:read"}},
			"ops-token":    {Principal: "ops", Scopes: []string{"jobs:*"}},
			"root-token":   {Principal: "root", Scopes: []string{"*"}, Admin: true},
		},
	}
}

func TestDecideDisabledAllowsEverything(t *testing.T) {
	d := NewDecider(nil)

	decision := d.Decide("", "store:admin", true)
	assert.True(t, decision.Allowed)
	assert.Equal(t, AnonymousPrincipal, decision.Principal)
}

func TestDecideRejectsMissingOrMalformedHeader(t *testing.T) {
	d := NewDecider(enabledConfig())

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer   "} {
		decision := d.Decide(header, "jobs:read", false)
		assert.False(t, decision.Allowed, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, decision.StatusCode, "header %q", header)
	}
}

func TestDecideRejectsUnknownToken(t *testing.T) {
	d := NewDecider(enabledConfig())

	decision := d.Decide("Bearer nope", "jobs:read", false)
	assert.False(t, decision.Allowed)
	assert.Equal(t, http.StatusUnauthorized, decision.StatusCode)
}

func TestDecideMatchesExactScope(t *testing.T) {
	d := NewDecider(enabledConfig())

	decision := d.Decide("Bearer reader-token", "jobs:read", false)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "reader", decision.Principal)

	denied := d.Decide("Bearer reader-token", "jobs:run", false)
	assert.False(t, denied.Allowed)
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)
	assert.Equal(t, "reader", denied.Principal)
}

func TestDecideMatchesWildcardScopes(t *testing.T) {
	d := NewDecider(enabledConfig())

	assert.True(t, d.Decide("Bearer ops-token", "jobs:run", false).Allowed)
	assert.True(t, d.Decide("Bearer ops-token", "jobs:read", false).Allowed)
	assert.False(t, d.Decide("Bearer ops-token", "candidates:read", false).Allowed)

	assert.True(t, d.Decide("Bearer root-token", "anything:at:all", false).Allowed)
}

func TestDecideAdminGate(t *testing.T) {
	d := NewDecider(enabledConfig())

	denied := d.Decide("Bearer ops-token", "store:admin", true)
	assert.False(t, denied.Allowed)
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	allowed := d.Decide("Bearer root-token", "store:admin", true)
	assert.True(t, allowed.Allowed)
	assert.Equal(t, "root", allowed.Principal)
}

func TestDecideSchemeIsCaseInsensitive(t *testing.T) {
	d := NewDecider(enabledConfig())

	assert.True(t, d.Decide("bearer reader-token", "jobs:read", false).Allowed)
	assert.True(t, d.Decide("BEARER reader-token", "jobs:read", false).Allowed)
}

func TestDecideEmptyScopeOnlyNeedsValidToken(t *testing.T) {
	d := NewDecider(enabledConfig())

	assert.True(t, d.Decide("Bearer reader-token", "", false).Allowed)
}
