// Package e2e drives the complete scout pipeline in one process: sourcing
// through screening, outreach composition, dispatch across sender accounts,
// inbound routing, follow-ups, signal ingestion, and candidate profiles.
// Everything runs over the embedded store and the in-memory provider fake.
package e2e

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/dispatch"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/signals"
	"github.com/hireflow/scout/pkg/store"
	"github.com/hireflow/scout/pkg/workflow"
)

// TestApp wires a complete scout instance for e2e testing: all repository
// services and engines over one switchboard, with the provider fake standing
// in for the messaging platform.
type TestApp struct {
	Store    *store.Switchboard
	Provider *provider.Fake

	// Repository services
	Jobs          *services.JobService
	Candidates    *services.CandidateService
	Matches       *services.MatchService
	Conversations *services.ConversationService
	Messages      *services.MessageService
	SessionStore  *services.SessionService
	Assessments   *services.AssessmentService
	Queue         *services.OutboundService
	Progress      *services.ProgressService
	Audit         *services.AuditService
	Accounts      *services.AccountService
	SignalStore   *services.SignalService

	// Engines
	Workflow   *workflow.Engine
	Dispatcher *dispatch.Dispatcher
	Sessions   *preresume.Manager
	Signals    *signals.Engine
	Profiles   *profile.Builder

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	sb           *store.Switchboard // injected switchboard (for dual-write tests)
	workflowCfg  *config.WorkflowConfig
	dispatchCfg  *config.DispatchConfig
	preResumeCfg *config.PreResumeConfig
	dispatchMode string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithStore injects a pre-built switchboard, skipping the default embedded
// backend. The injector owns its lifecycle; no Close is registered here.
func WithStore(sb *store.Switchboard) TestAppOption {
	return func(c *testAppConfig) { c.sb = sb }
}

// WithWorkflowConfig sets a custom workflow config.
func WithWorkflowConfig(cfg *config.WorkflowConfig) TestAppOption {
	return func(c *testAppConfig) { c.workflowCfg = cfg }
}

// WithDispatchConfig sets a custom dispatch config.
func WithDispatchConfig(cfg *config.DispatchConfig) TestAppOption {
	return func(c *testAppConfig) { c.dispatchCfg = cfg }
}

// WithPreResumeConfig sets a custom pre-resume config. Follow-up tests use
// zero-hour delays so sessions fall due without advancing a clock.
func WithPreResumeConfig(cfg *config.PreResumeConfig) TestAppOption {
	return func(c *testAppConfig) { c.preResumeCfg = cfg }
}

// WithDispatchMode overrides the queued default.
func WithDispatchMode(mode string) TestAppOption {
	return func(c *testAppConfig) { c.dispatchMode = mode }
}

// NewTestApp builds and wires a full scout test instance. Cleanup is
// registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{dispatchMode: config.DispatchModeQueued}
	for _, opt := range opts {
		opt(tc)
	}

	// 1. Store: embedded backend unless injected.
	sb := tc.sb
	if sb == nil {
		backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
		require.NoError(t, err)
		sb = store.NewSingle(backend)
		t.Cleanup(func() { _ = sb.Close() })
	}

	app := &TestApp{
		Store:         sb,
		Provider:      provider.NewFake(),
		Jobs:          services.NewJobService(sb),
		Candidates:    services.NewCandidateService(sb),
		Matches:       services.NewMatchService(sb),
		Conversations: services.NewConversationService(sb),
		Messages:      services.NewMessageService(sb),
		SessionStore:  services.NewSessionService(sb),
		Assessments:   services.NewAssessmentService(sb),
		Queue:         services.NewOutboundService(sb),
		Progress:      services.NewProgressService(sb),
		Audit:         services.NewAuditService(sb),
		Accounts:      services.NewAccountService(sb),
		SignalStore:   services.NewSignalService(sb),
		t:             t,
	}

	// 2. Engines over the built-in templates and the default matcher/policy.
	app.Sessions = preresume.NewManager(tc.preResumeCfg, app.SessionStore, nil, nil)

	app.Dispatcher = dispatch.New(tc.dispatchCfg, dispatch.Deps{
		Store:    sb,
		Provider: app.Provider,
		Queue:    app.Queue,
		Audit:    app.Audit,
	}, nil)

	lang := "en"
	if tc.preResumeCfg != nil && tc.preResumeCfg.DefaultLanguage != "" {
		lang = tc.preResumeCfg.DefaultLanguage
	}
	templates := preresume.NewBundle(lang)

	app.Workflow = workflow.New(tc.workflowCfg, tc.dispatchMode, workflow.Deps{
		Provider:      app.Provider,
		Matcher:       matching.NewEngine(nil),
		Sessions:      app.Sessions,
		Outreach:      agents.NewOutreachComposer(templates, nil, lang, nil),
		FAQ:           agents.NewFAQComposer(templates, nil, lang, nil),
		Dispatcher:    app.Dispatcher,
		Jobs:          app.Jobs,
		Candidates:    app.Candidates,
		Matches:       app.Matches,
		Conversations: app.Conversations,
		Messages:      app.Messages,
		SessionStore:  app.SessionStore,
		Assessments:   app.Assessments,
		Queue:         app.Queue,
		Progress:      app.Progress,
		Audit:         app.Audit,
	}, nil)

	signalEngine, err := signals.NewEngine(nil, signals.Services{
		Matches:     app.Matches,
		Assessments: app.Assessments,
		Sessions:    app.SessionStore,
		Audit:       app.Audit,
		Signals:     app.SignalStore,
	}, nil)
	require.NoError(t, err)
	app.Signals = signalEngine

	app.Profiles = profile.NewBuilder(nil, profile.Deps{
		Jobs:          app.Jobs,
		Candidates:    app.Candidates,
		Matches:       app.Matches,
		Assessments:   app.Assessments,
		Sessions:      app.SessionStore,
		Conversations: app.Conversations,
		Messages:      app.Messages,
		Signals:       app.SignalStore,
		Audit:         app.Audit,
	}, scoring.NewPolicy(nil), nil, nil)

	return app
}

// CreateJob stores a job whose JD requires Go, Postgres and Kubernetes.
func (app *TestApp) CreateJob(t *testing.T) *ent.Job {
	t.Helper()
	job, err := app.Jobs.CreateJob(context.Background(), models.CreateJobRequest{
		Title:     "Backend Engineer",
		JDText:    "Senior engineer. Go, Postgres and Kubernetes required.",
		Seniority: "senior",
	})
	require.NoError(t, err)
	return job
}

// ConnectAccount registers a connected sender account.
func (app *TestApp) ConnectAccount(t *testing.T, providerAccountID string) *ent.SenderAccount {
	t.Helper()
	account, err := app.Accounts.UpsertAccount(context.Background(), services.UpsertAccountInput{
		ProviderAccountID: providerAccountID,
		Label:             providerAccountID,
		Status:            "connected",
	})
	require.NoError(t, err)
	return account
}

// RunStage runs one pipeline stage and requires success.
func (app *TestApp) RunStage(t *testing.T, step, jobID string, req models.StageRequest) *models.StageSummary {
	t.Helper()
	summary, err := app.Workflow.RunStage(context.Background(), step, jobID, req)
	require.NoError(t, err)
	require.Equal(t, "completed", summary.Status)
	return summary
}

// SourceToAdd chains source → enrich → verify → add, feeding each stage the
// previous stage's output exactly as an operator driving the API would, and
// returns the stored candidates.
func (app *TestApp) SourceToAdd(t *testing.T, jobID string, limit int) []models.AddedCandidate {
	t.Helper()

	sourced := app.RunStage(t, models.StepSource, jobID, models.StageRequest{Limit: limit})
	profiles, ok := sourced.Details["profiles"].([]provider.Profile)
	require.True(t, ok, "source stage produced no profiles")

	enriched := app.RunStage(t, models.StepEnrich, jobID, models.StageRequest{Profiles: profiles})
	profiles, ok = enriched.Details["profiles"].([]provider.Profile)
	require.True(t, ok, "enrich stage produced no profiles")

	verified := app.RunStage(t, models.StepVerify, jobID, models.StageRequest{Profiles: profiles})
	items, ok := verified.Details["items"].([]models.VerifiedItem)
	require.True(t, ok, "verify stage produced no items")

	added := app.RunStage(t, models.StepAdd, jobID, models.StageRequest{Items: items})
	out, ok := added.Details["added"].([]models.AddedCandidate)
	require.True(t, ok, "add stage produced no candidates")
	return out
}

// Conversation returns the single conversation for a job/candidate pair.
func (app *TestApp) Conversation(t *testing.T, jobID, candidateID string) *ent.Conversation {
	t.Helper()
	convs, err := app.Conversations.ListByJobCandidate(context.Background(), jobID, candidateID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	return convs[0]
}

// Match reloads the match row for a job/candidate pair.
func (app *TestApp) Match(t *testing.T, jobID, candidateID string) *ent.Match {
	t.Helper()
	match, err := app.Matches.GetByJobCandidate(context.Background(), jobID, candidateID)
	require.NoError(t, err)
	return match
}

// Session returns the pre-resume session owning a conversation.
func (app *TestApp) Session(t *testing.T, conversationID string) *ent.PreResumeSession {
	t.Helper()
	session, err := app.SessionStore.GetByConversation(context.Background(), conversationID)
	require.NoError(t, err)
	return session
}

// Transcript returns a conversation's messages oldest first.
func (app *TestApp) Transcript(t *testing.T, conversationID string) []*ent.Message {
	t.Helper()
	msgs, err := app.Messages.ListMessages(context.Background(), conversationID, 0)
	require.NoError(t, err)
	return msgs
}

// goodProfile scores a full match against CreateJob's JD: every required
// skill, senior-level years, no location or language constraints.
func goodProfile(id, name string) provider.Profile {
	return provider.Profile{
		ProviderID:      id,
		FullName:        name,
		Headline:        "Backend Engineer",
		Skills:          []string{"go", "postgres", "kubernetes"},
		YearsExperience: 7,
		Languages:       []string{"en"},
	}
}

// weakProfile misses the required skills and falls below the verify bar.
func weakProfile(id, name string) provider.Profile {
	return provider.Profile{
		ProviderID:      id,
		FullName:        name,
		Headline:        "Graphic Designer",
		Skills:          []string{"photoshop"},
		YearsExperience: 1,
		Languages:       []string{"en"},
	}
}
