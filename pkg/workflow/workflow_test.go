package workflow

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

var workflowNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

type workflowFixture struct {
	sb            *store.Switchboard
	fake          *provider.Fake
	engine        *Engine
	manager       *preresume.Manager
	jobs          *services.JobService
	candidates    *services.CandidateService
	matches       *services.MatchService
	conversations *services.ConversationService
	messages      *services.MessageService
	sessions      *services.SessionService
	assessments   *services.AssessmentService
	queue         *services.OutboundService
	progress      *services.ProgressService
	audit         *services.AuditService
}

func newWorkflowFixture(t *testing.T, cfg *config.WorkflowConfig) *workflowFixture {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	f := &workflowFixture{
		sb:            sb,
		fake:          provider.NewFake(),
		jobs:          services.NewJobService(sb),
		candidates:    services.NewCandidateService(sb),
		matches:       services.NewMatchService(sb),
		conversations: services.NewConversationService(sb),
		messages:      services.NewMessageService(sb),
		sessions:      services.NewSessionService(sb),
		assessments:   services.NewAssessmentService(sb),
		queue:         services.NewOutboundService(sb),
		progress:      services.NewProgressService(sb),
		audit:         services.NewAuditService(sb),
	}
	f.manager = preresume.NewManager(nil, f.sessions, nil, nil)
	f.engine = f.newEngine(t, cfg, f.fake)
	return f
}

// newEngine builds an engine over the fixture's services with the given
// provider, so tests can swap in failing clients.
func (f *workflowFixture) newEngine(t *testing.T, cfg *config.WorkflowConfig, client provider.Client) *Engine {
	t.Helper()
	templates := preresume.NewBundle("en")
	e := New(cfg, config.DispatchModeQueued, Deps{
		Provider:      client,
		Matcher:       matching.NewEngine(nil),
		Sessions:      f.manager,
		Outreach:      agents.NewOutreachComposer(templates, nil, "en", nil),
		FAQ:           agents.NewFAQComposer(templates, nil, "en", nil),
		Jobs:          f.jobs,
		Candidates:    f.candidates,
		Matches:       f.matches,
		Conversations: f.conversations,
		Messages:      f.messages,
		SessionStore:  f.sessions,
		Assessments:   f.assessments,
		Queue:         f.queue,
		Progress:      f.progress,
		Audit:         f.audit,
	}, nil)
	e.now = func() time.Time { return workflowNow }
	return e
}

func (f *workflowFixture) seedJob(t *testing.T) *ent.Job {
	t.Helper()
	job, err := f.jobs.CreateJob(context.Background(), models.CreateJobRequest{
		Title:     "Backend Engineer",
		JDText:    "Senior engineer. Go, Postgres and Kubernetes required.",
		Seniority: "senior",
	})
	require.NoError(t, err)
	return job
}

func (f *workflowFixture) progressRow(t *testing.T, jobID, step string) *ent.JobStepProgress {
	t.Helper()
	rows, err := f.progress.ListByJob(context.Background(), jobID)
	require.NoError(t, err)
	for _, row := range rows {
		if row.Step == step {
			return row
		}
	}
	t.Fatalf("no progress row for step %s", step)
	return nil
}

func (f *workflowFixture) auditRows(t *testing.T, operation string) []*ent.OperationLog {
	t.Helper()
	rows, err := f.sb.Reader().OperationLog.Query().
		Where(operationlog.OperationEQ(operation)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// goodProfile scores 1.0 against seedJob: all required skills, senior
// years, no location or language constraints on the job.
func goodProfile(id, name string) provider.Profile {
	return provider.Profile{
		ProviderID:      id,
		FullName:        name,
		Headline:        "Backend Engineer",
		Skills:          []string{"go", "postgres", "kubernetes"},
		YearsExperience: 6,
		Languages:       []string{"en"},
	}
}

// failingSearch fails every query; other calls delegate to the fake.
type failingSearch struct {
	*provider.Fake
}

func (f *failingSearch) SearchProfiles(context.Context, string, int) ([]provider.Profile, error) {
	return nil, errors.New("provider down")
}

func TestRunStageRejectsUnknownStep(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	_, err := f.engine.RunStage(context.Background(), "assess", job.ID, models.StageRequest{})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestRunStageRejectsUnknownJob(t *testing.T) {
	f := newWorkflowFixture(t, nil)

	_, err := f.engine.RunStage(context.Background(), models.StepSource, "missing", models.StageRequest{})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRunStageRecordsProgressAndAudit(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	f.fake.Profiles = []provider.Profile{goodProfile("p1", "Ada Example")}

	summary, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, models.StepSource, summary.Step)
	assert.Equal(t, 1, summary.Counts["collected"])

	row := f.progressRow(t, job.ID, models.StepSource)
	assert.Equal(t, jobstepprogress.StatusCompleted, row.Status)
	assert.Equal(t, "completed", row.Output["status"])

	logs := f.auditRows(t, "agent.source")
	require.Len(t, logs, 1)
	assert.Equal(t, "ok", logs[0].Status)
}

func TestRunStageReplayIsSafe(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	f.fake.Profiles = []provider.Profile{goodProfile("p1", "Ada Example")}

	first, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 5})
	require.NoError(t, err)
	second, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, first.Counts, second.Counts)

	// Still a single progress row; the second run overwrote it.
	rows, err := f.progress.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, jobstepprogress.StatusCompleted, rows[0].Status)
}

func TestRunStageFailureMarksProgress(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	engine := f.newEngine(t, nil, &failingSearch{f.fake})

	_, err := engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 5})
	require.Error(t, err)

	row := f.progressRow(t, job.ID, models.StepSource)
	assert.Equal(t, jobstepprogress.StatusFailed, row.Status)
	assert.Contains(t, row.LastError, "provider down")

	logs := f.auditRows(t, "agent.source")
	require.Len(t, logs, 1)
	assert.Equal(t, "error", logs[0].Status)
}

func TestRunStageRecordsInstructions(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	f.fake.Profiles = []provider.Profile{goodProfile("p1", "Ada Example")}

	_, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{
		Limit:        5,
		Instructions: map[string]any{"keywords": []string{"fintech"}},
	})
	require.NoError(t, err)

	row := f.progressRow(t, job.ID, models.StepSource)
	instructions, ok := row.Output["instructions"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, instructions, "keywords")
}
