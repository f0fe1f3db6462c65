package dispatch

import (
	"math"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
)

// Deferral reasons recorded in an action's last_error.
const (
	ReasonNoConnectedAccounts = "no_connected_accounts"
	ReasonNoAssignedAccounts  = "manual_no_assigned_accounts"
	ReasonDailyBudgetReached  = "daily_budget_reached"
	ReasonConnectBudget       = "connect_budget_reached"
)

// Budget evaluates per-account send caps.
type Budget struct {
	cfg *config.DispatchConfig
}

// NewBudget creates a budget policy from config; nil means defaults.
func NewBudget(cfg *config.DispatchConfig) *Budget {
	if cfg == nil {
		cfg = config.DefaultDispatchConfig()
	}
	return &Budget{cfg: cfg}
}

// DailyNewThreads is the per-account daily cap on fresh message threads.
func (b *Budget) DailyNewThreads() int { return b.cfg.DailyNewThreads }

// ConnectCap returns the account's weekly connect-invite cap at the given
// time. Freshly connected accounts ramp linearly from WarmupStartFraction
// of the cap up to the full cap over WarmupDays; a warmed-up account (or an
// account without a connection timestamp) gets the full cap.
func (b *Budget) ConnectCap(account *ent.SenderAccount, now time.Time) int {
	full := b.cfg.WeeklyConnects
	if full <= 0 {
		return 0
	}
	if b.cfg.WarmupDays <= 0 || account == nil || account.ConnectedAt == nil {
		return full
	}

	days := now.UTC().Sub(account.ConnectedAt.UTC()).Hours() / 24
	if days >= float64(b.cfg.WarmupDays) {
		return full
	}
	if days < 0 {
		days = 0
	}

	start := b.cfg.WarmupStartFraction
	if start < 0 {
		start = 0
	} else if start > 1 {
		start = 1
	}
	fraction := start + (1-start)*days/float64(b.cfg.WarmupDays)
	scaled := int(math.Floor(float64(full) * fraction))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// dayStart is UTC midnight of the day containing now.
func dayStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart is UTC Monday midnight of the week containing now.
func weekStart(now time.Time) time.Time {
	day := dayStart(now)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
