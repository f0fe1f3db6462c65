package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/accountcounter"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

// Wednesday, so day and week periods differ.
var dispatchNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

type dispatchFixture struct {
	sb            *store.Switchboard
	fake          *provider.Fake
	dispatcher    *Dispatcher
	queue         *services.OutboundService
	accounts      *services.AccountService
	candidates    *services.CandidateService
	conversations *services.ConversationService
	messages      *services.MessageService
	job           *ent.Job
}

func newDispatchFixture(t *testing.T, cfg *config.DispatchConfig) *dispatchFixture {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	fake := provider.NewFake()
	queue := services.NewOutboundService(sb)
	d := New(cfg, Deps{
		Store:    sb,
		Provider: fake,
		Queue:    queue,
		Audit:    services.NewAuditService(sb),
	}, nil)
	d.now = func() time.Time { return dispatchNow }

	job, err := services.NewJobService(sb).CreateJob(context.Background(), models.CreateJobRequest{
		Title:       "Backend Engineer",
		JDText:      "Go, Postgres, distributed systems",
		RoutingMode: "auto",
	})
	require.NoError(t, err)

	return &dispatchFixture{
		sb:            sb,
		fake:          fake,
		dispatcher:    d,
		queue:         queue,
		accounts:      services.NewAccountService(sb),
		candidates:    services.NewCandidateService(sb),
		conversations: services.NewConversationService(sb),
		messages:      services.NewMessageService(sb),
		job:           job,
	}
}

func (f *dispatchFixture) connectAccount(t *testing.T, providerAccountID string) *ent.SenderAccount {
	t.Helper()
	account, err := f.accounts.UpsertAccount(context.Background(), services.UpsertAccountInput{
		ProviderAccountID: providerAccountID,
		Label:             providerAccountID,
		Status:            "connected",
	})
	require.NoError(t, err)
	return account
}

// target creates a candidate and its conversation under the given job.
func (f *dispatchFixture) target(t *testing.T, jobID, providerID string) (*ent.Candidate, *ent.Conversation) {
	t.Helper()
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: providerID,
		FullName:   "Candidate " + providerID,
		Languages:  []string{"en"},
	})
	require.NoError(t, err)
	conv, err := f.conversations.EnsureConversation(context.Background(), jobID, cand.ID)
	require.NoError(t, err)
	return cand, conv
}

func (f *dispatchFixture) enqueue(t *testing.T, jobID string, cand *ent.Candidate, conv *ent.Conversation, payload map[string]any) *ent.OutboundAction {
	t.Helper()
	action, created, err := f.queue.EnqueueAction(context.Background(), services.EnqueueActionInput{
		JobID:          jobID,
		CandidateID:    cand.ID,
		ConversationID: conv.ID,
		Kind:           "message",
		Payload:        payload,
	})
	require.NoError(t, err)
	require.True(t, created)
	return action
}

func (f *dispatchFixture) action(t *testing.T, id string) *ent.OutboundAction {
	t.Helper()
	row, err := f.sb.Reader().OutboundAction.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

func (f *dispatchFixture) conversation(t *testing.T, id string) *ent.Conversation {
	t.Helper()
	row, err := f.sb.Reader().Conversation.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

func (f *dispatchFixture) seedDayThreads(t *testing.T, accountID string, sent int) {
	t.Helper()
	err := f.sb.Writer().AccountCounter.Create().
		SetAccountID(accountID).
		SetPeriod(accountcounter.PeriodDay).
		SetPeriodStart(dayStart(dispatchNow)).
		SetNewThreadsSent(sent).
		Exec(context.Background())
	require.NoError(t, err)
}

func (f *dispatchFixture) counterValue(t *testing.T, accountID string, period accountcounter.Period) int {
	t.Helper()
	start := dayStart(dispatchNow)
	if period == accountcounter.PeriodWeek {
		start = weekStart(dispatchNow)
	}
	row, err := f.sb.Reader().AccountCounter.Query().
		Where(
			accountcounter.AccountID(accountID),
			accountcounter.PeriodEQ(period),
			accountcounter.PeriodStartEQ(start),
		).
		Only(context.Background())
	if ent.IsNotFound(err) {
		return 0
	}
	require.NoError(t, err)
	if period == accountcounter.PeriodWeek {
		return row.ConnectsSent
	}
	return row.NewThreadsSent
}

func TestDispatchAssignsLeastLoadedAccount(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	a := f.connectAccount(t, "acc-a")
	b := f.connectAccount(t, "acc-b")

	// acc-a already burned most of its day, acc-b is idle.
	f.seedDayThreads(t, a.ID, 7)

	cand, conv := f.target(t, f.job.ID, "cand-1")
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello from Scout"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Sent)

	sent := f.fake.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "acc-b", sent[0].AccountID)
	assert.Equal(t, "cand-1", sent[0].ProviderID)
	assert.Equal(t, "Hello from Scout", sent[0].Text)

	action := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusCompleted, action.Status)
	require.NotNil(t, action.AccountID)
	assert.Equal(t, b.ID, *action.AccountID)
	assert.Equal(t, 1, action.Attempts)
	assert.Empty(t, action.LastError)

	assert.Equal(t, 7, f.counterValue(t, a.ID, accountcounter.PeriodDay))
	assert.Equal(t, 1, f.counterValue(t, b.ID, accountcounter.PeriodDay))

	got := f.conversation(t, conv.ID)
	assert.Equal(t, conversation.StatusActive, got.Status)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, b.ID, *got.AccountID)
	require.NotNil(t, got.ExternalChatID)
	assert.Equal(t, sent[0].ChatID, *got.ExternalChatID)
	require.NotNil(t, got.LastMessageAt)
	assert.True(t, got.LastMessageAt.Equal(dispatchNow))
}

func TestDispatchConnectBudget(t *testing.T) {
	cfg := config.DefaultDispatchConfig()
	cfg.WeeklyConnects = 1
	cfg.WarmupDays = 0
	f := newDispatchFixture(t, cfg)
	ctx := context.Background()

	account := f.connectAccount(t, "acc-a")

	cand1, conv1 := f.target(t, f.job.ID, "cand-1")
	cand2, conv2 := f.target(t, f.job.ID, "cand-2")
	f.fake.Disconnected["cand-1"] = true
	f.fake.Disconnected["cand-2"] = true

	first := f.enqueue(t, f.job.ID, cand1, conv1, map[string]any{"text": "Hi one"})
	second := f.enqueue(t, f.job.ID, cand2, conv2, map[string]any{"text": "Hi two"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.PendingConnection)
	assert.Equal(t, 1, report.Deferred)
	assert.Equal(t, 0, report.Sent)

	// First action spent the only connect invite and parked.
	got := f.action(t, first.ID)
	assert.Equal(t, outboundaction.StatusPendingConnection, got.Status)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, account.ID, *got.AccountID)
	assert.Equal(t, conversation.StatusWaitingConnection, f.conversation(t, conv1.ID).Status)
	assert.Equal(t, 1, f.counterValue(t, account.ID, accountcounter.PeriodWeek))

	// Second action hit the weekly cap before sending anything.
	got = f.action(t, second.ID)
	assert.Equal(t, outboundaction.StatusDeferred, got.Status)
	assert.Equal(t, ReasonConnectBudget, got.LastError)
	assert.Empty(t, f.fake.Sent())
	require.Len(t, f.fake.Connects(), 1)
	assert.Equal(t, "cand-1", f.fake.Connects()[0].ProviderID)
}

func TestDispatchNoConnectedAccounts(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	cand, conv := f.target(t, f.job.ID, "cand-1")
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deferred)

	got := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusPending, got.Status)
	assert.Equal(t, ReasonNoConnectedAccounts, got.LastError)
	assert.Equal(t, 1, got.Attempts)

	logged, err := f.sb.Reader().OperationLog.Query().
		Where(
			operationlog.Operation("scheduler.dispatch"),
			operationlog.Status("skipped"),
			operationlog.EntityID(queued.ID),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoConnectedAccounts, logged.Details["reason"])
}

func TestDispatchManualRouting(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	f.connectAccount(t, "acc-a")
	b := f.connectAccount(t, "acc-b")

	t.Run("sends only from assigned accounts", func(t *testing.T) {
		manual, err := services.NewJobService(f.sb).CreateJob(ctx, models.CreateJobRequest{
			Title:       "Platform Engineer",
			JDText:      "Kubernetes, Go",
			RoutingMode: "manual",
		})
		require.NoError(t, err)
		added, err := f.accounts.AssignToJob(ctx, manual.ID, b.ID)
		require.NoError(t, err)
		require.True(t, added)

		cand, conv := f.target(t, manual.ID, "cand-m1")
		queued := f.enqueue(t, manual.ID, cand, conv, map[string]any{"text": "Hello"})

		report, err := f.dispatcher.Dispatch(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Sent)

		got := f.action(t, queued.ID)
		assert.Equal(t, outboundaction.StatusCompleted, got.Status)
		require.NotNil(t, got.AccountID)
		assert.Equal(t, b.ID, *got.AccountID)
	})

	t.Run("manual job without assignments stays pending", func(t *testing.T) {
		manual, err := services.NewJobService(f.sb).CreateJob(ctx, models.CreateJobRequest{
			Title:       "Data Engineer",
			JDText:      "Spark, Go",
			RoutingMode: "manual",
		})
		require.NoError(t, err)

		cand, conv := f.target(t, manual.ID, "cand-m2")
		queued := f.enqueue(t, manual.ID, cand, conv, map[string]any{"text": "Hello"})

		report, err := f.dispatcher.Dispatch(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Deferred)

		got := f.action(t, queued.ID)
		assert.Equal(t, outboundaction.StatusPending, got.Status)
		assert.Equal(t, ReasonNoAssignedAccounts, got.LastError)
	})
}

func TestDispatchDailyBudgetReached(t *testing.T) {
	cfg := config.DefaultDispatchConfig()
	cfg.DailyNewThreads = 1
	f := newDispatchFixture(t, cfg)
	ctx := context.Background()

	account := f.connectAccount(t, "acc-a")
	f.seedDayThreads(t, account.ID, 1)

	cand, conv := f.target(t, f.job.ID, "cand-1")
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deferred)

	got := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusDeferred, got.Status)
	assert.Equal(t, ReasonDailyBudgetReached, got.LastError)
	assert.Empty(t, f.fake.Sent())
}

func TestDispatchTransientProviderFailure(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	f.connectAccount(t, "acc-a")
	cand, conv := f.target(t, f.job.ID, "cand-1")
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello"})

	f.fake.SendErr = errors.New("provider rate limited")
	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)

	got := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusPending, got.Status)
	assert.Contains(t, got.LastError, "rate limited")
	assert.Equal(t, 1, got.Attempts)

	// The next batch retries and succeeds.
	f.fake.SendErr = nil
	report, err = f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	got = f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusCompleted, got.Status)
	assert.Equal(t, 2, got.Attempts)
	assert.Empty(t, got.LastError)
}

func TestDispatchRejectsEmptyPayload(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	f.connectAccount(t, "acc-a")
	cand, conv := f.target(t, f.job.ID, "cand-1")
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"note": "no text here"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)

	got := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusFailed, got.Status)
	assert.Equal(t, "action payload has no text", got.LastError)

	// Failed is terminal: the next batch has nothing to do.
	report, err = f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
}

func TestReconcileConnections(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	account := f.connectAccount(t, "acc-a")
	cand, conv := f.target(t, f.job.ID, "cand-1")
	f.fake.Disconnected["cand-1"] = true
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello"})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.PendingConnection)
	require.Len(t, f.fake.Connects(), 1)

	// Invite not accepted yet: the action stays parked.
	f.fake.Disconnected["cand-1"] = true
	reopened, err := f.dispatcher.ReconcileConnections(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, reopened)
	assert.Equal(t, outboundaction.StatusPendingConnection, f.action(t, queued.ID).Status)

	// Acceptance re-opens the action and the next batch delivers.
	delete(f.fake.Disconnected, "cand-1")
	reopened, err = f.dispatcher.ReconcileConnections(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened)
	assert.Equal(t, outboundaction.StatusPending, f.action(t, queued.ID).Status)

	report, err = f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	got := f.action(t, queued.ID)
	assert.Equal(t, outboundaction.StatusCompleted, got.Status)
	assert.Equal(t, 2, got.Attempts)

	convRow := f.conversation(t, conv.ID)
	assert.Equal(t, conversation.StatusActive, convRow.Status)
	require.NotNil(t, convRow.ExternalChatID)
	assert.Equal(t, 1, f.counterValue(t, account.ID, accountcounter.PeriodDay))
	assert.Equal(t, 1, f.counterValue(t, account.ID, accountcounter.PeriodWeek))
}

func TestDispatchMarksMessageDelivered(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	f.connectAccount(t, "acc-a")
	cand, conv := f.target(t, f.job.ID, "cand-1")

	msg, created, err := f.messages.AddMessage(ctx, services.AddMessageInput{
		ConversationID: conv.ID,
		Direction:      "outbound",
		Language:       "en",
		Content:        "Hello from Scout",
		Meta:           map[string]any{"delivery": "queued"},
	})
	require.NoError(t, err)
	require.True(t, created)

	f.enqueue(t, f.job.ID, cand, conv, map[string]any{
		"text":       "Hello from Scout",
		"message_id": msg.ID,
	})

	report, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	row, err := f.sb.Reader().Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", row.Meta["delivery"])
	assert.Equal(t, "msg-1", row.Meta["provider_message_id"])
}

func TestPickAccountOrdering(t *testing.T) {
	acct := func(id string) *ent.SenderAccount { return &ent.SenderAccount{ID: id} }

	t.Run("fewest day threads wins", func(t *testing.T) {
		chosen := pickAccount([]accountState{
			{account: acct("acc-1"), dayThreads: 3},
			{account: acct("acc-2"), dayThreads: 1, weekConnects: 5},
			{account: acct("acc-3"), dayThreads: 2},
		}, 25)
		require.NotNil(t, chosen)
		assert.Equal(t, "acc-2", chosen.account.ID)
	})

	t.Run("week connects break day ties", func(t *testing.T) {
		chosen := pickAccount([]accountState{
			{account: acct("acc-1"), dayThreads: 1, weekConnects: 5},
			{account: acct("acc-2"), dayThreads: 1, weekConnects: 2},
		}, 25)
		require.NotNil(t, chosen)
		assert.Equal(t, "acc-2", chosen.account.ID)
	})

	t.Run("id breaks full ties", func(t *testing.T) {
		chosen := pickAccount([]accountState{
			{account: acct("acc-b"), dayThreads: 1, weekConnects: 1},
			{account: acct("acc-a"), dayThreads: 1, weekConnects: 1},
		}, 25)
		require.NotNil(t, chosen)
		assert.Equal(t, "acc-a", chosen.account.ID)
	})

	t.Run("all accounts at the daily cap", func(t *testing.T) {
		chosen := pickAccount([]accountState{
			{account: acct("acc-1"), dayThreads: 25},
			{account: acct("acc-2"), dayThreads: 25},
		}, 25)
		assert.Nil(t, chosen)
	})

	t.Run("cap zero means unlimited", func(t *testing.T) {
		chosen := pickAccount([]accountState{
			{account: acct("acc-1"), dayThreads: 400},
		}, 0)
		require.NotNil(t, chosen)
	})
}

func TestTickReconcilesBeforeDispatching(t *testing.T) {
	f := newDispatchFixture(t, nil)
	ctx := context.Background()

	f.connectAccount(t, "acc-a")
	cand, conv := f.target(t, f.job.ID, "cand-1")
	f.fake.Disconnected["cand-1"] = true
	queued := f.enqueue(t, f.job.ID, cand, conv, map[string]any{"text": "Hello"})

	_, err := f.dispatcher.Dispatch(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, outboundaction.StatusPendingConnection, f.action(t, queued.ID).Status)

	// The invite was auto-accepted, so a single tick re-opens the action
	// and delivers it in the same pass.
	ticker := NewTicker(f.dispatcher, time.Minute, 0, nil)
	ticker.tick(ctx)

	assert.Equal(t, outboundaction.StatusCompleted, f.action(t, queued.ID).Status)
	assert.Len(t, f.fake.Sent(), 1)
}
