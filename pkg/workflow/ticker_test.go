package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerRunsFirstTickImmediately(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	session, _, _ := f.dueSession(t, job.ID)

	ticker := NewTicker(f.engine, time.Hour, 0, 10, nil)
	ticker.Start(context.Background())
	defer ticker.Stop()

	require.Eventually(t, func() bool {
		fresh, err := f.sessions.GetSession(context.Background(), session.ID)
		return err == nil && fresh.FollowupsSent == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTickerDisabledIntervalsDoNotStart(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	ticker := NewTicker(f.engine, 0, 0, 10, nil)
	ticker.Start(context.Background())
	assert.Nil(t, ticker.cancel)
	ticker.Stop()
}

func TestTickerStopIsIdempotent(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	ticker := NewTicker(f.engine, time.Hour, 0, 10, nil)
	ticker.Start(context.Background())
	ticker.Stop()
	ticker.Stop()
}
