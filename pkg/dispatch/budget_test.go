package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
)

func accountConnectedAt(at time.Time) *ent.SenderAccount {
	return &ent.SenderAccount{ID: "acc-1", ConnectedAt: &at}
}

func TestBudgetConnectCap(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cfg := &config.DispatchConfig{WeeklyConnects: 80, WarmupDays: 14, WarmupStartFraction: 0.25}
	budget := NewBudget(cfg)

	t.Run("fresh account starts at the warmup fraction", func(t *testing.T) {
		assert.Equal(t, 20, budget.ConnectCap(accountConnectedAt(now), now))
	})

	t.Run("cap ramps linearly", func(t *testing.T) {
		halfway := accountConnectedAt(now.AddDate(0, 0, -7))
		// 0.25 + 0.75 * 7/14 of 80.
		assert.Equal(t, 50, budget.ConnectCap(halfway, now))
	})

	t.Run("warmed up account gets the full cap", func(t *testing.T) {
		assert.Equal(t, 80, budget.ConnectCap(accountConnectedAt(now.AddDate(0, 0, -14)), now))
		assert.Equal(t, 80, budget.ConnectCap(accountConnectedAt(now.AddDate(0, -3, 0)), now))
	})

	t.Run("unknown connection time gets the full cap", func(t *testing.T) {
		assert.Equal(t, 80, budget.ConnectCap(&ent.SenderAccount{ID: "acc-2"}, now))
		assert.Equal(t, 80, budget.ConnectCap(nil, now))
	})

	t.Run("ramp never rounds a positive cap to zero", func(t *testing.T) {
		tight := NewBudget(&config.DispatchConfig{WeeklyConnects: 2, WarmupDays: 14, WarmupStartFraction: 0.25})
		assert.Equal(t, 1, tight.ConnectCap(accountConnectedAt(now), now))
	})

	t.Run("disabled warmup or cap", func(t *testing.T) {
		flat := NewBudget(&config.DispatchConfig{WeeklyConnects: 80})
		assert.Equal(t, 80, flat.ConnectCap(accountConnectedAt(now), now))

		none := NewBudget(&config.DispatchConfig{WeeklyConnects: 0, WarmupDays: 14})
		assert.Equal(t, 0, none.ConnectCap(accountConnectedAt(now), now))
	})
}

func TestPeriodStarts(t *testing.T) {
	wednesday := time.Date(2025, 3, 12, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), dayStart(wednesday))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), weekStart(wednesday))

	sunday := time.Date(2025, 3, 16, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), weekStart(sunday))

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStart(monday))

	eastern := time.Date(2025, 3, 12, 22, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), dayStart(eastern))
}
