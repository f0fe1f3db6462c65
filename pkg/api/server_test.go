package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/auth"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/dispatch"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/signals"
	"github.com/hireflow/scout/pkg/store"
	"github.com/hireflow/scout/pkg/workflow"
)

// apiFixture wires the full server over an embedded store and the provider
// fake. Tests drive the real routes through ServeHTTP so middleware, path
// params and error mapping all engage.
type apiFixture struct {
	sb     *store.Switchboard
	fake   *provider.Fake
	server *Server

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
	signalStore   *services.SignalService
	accounts      *services.AccountService
	idempotency   *services.IdempotencyService
	manager       *preresume.Manager
}

func newAPIFixture(t *testing.T) *apiFixture {
	return newAuthedFixture(t, nil)
}

func newAuthedFixture(t *testing.T, authCfg *config.AuthConfig) *apiFixture {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	f := &apiFixture{
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
		signalStore:   services.NewSignalService(sb),
		accounts:      services.NewAccountService(sb),
		idempotency:   services.NewIdempotencyService(sb),
	}
	f.manager = preresume.NewManager(nil, f.sessions, nil, nil)

	templates := preresume.NewBundle("en")
	engine := workflow.New(nil, config.DispatchModeQueued, workflow.Deps{
		Provider:      f.fake,
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

	signalEngine, err := signals.NewEngine(nil, signals.Services{
		Matches:     f.matches,
		Assessments: f.assessments,
		Sessions:    f.sessions,
		Audit:       f.audit,
		Signals:     f.signalStore,
	}, nil)
	require.NoError(t, err)

	dispatcher := dispatch.New(nil, dispatch.Deps{
		Store:    sb,
		Provider: f.fake,
		Queue:    f.queue,
		Audit:    f.audit,
	}, nil)

	profiles := profile.NewBuilder(nil, profile.Deps{
		Jobs:          f.jobs,
		Candidates:    f.candidates,
		Matches:       f.matches,
		Assessments:   f.assessments,
		Sessions:      f.sessions,
		Conversations: f.conversations,
		Messages:      f.messages,
		Signals:       f.signalStore,
		Audit:         f.audit,
	}, nil, nil, nil)

	f.server = NewServer(nil, Deps{
		Store:         sb,
		Workflow:      engine,
		Dispatcher:    dispatcher,
		Signals:       signalEngine,
		Sessions:      f.manager,
		Profiles:      profiles,
		Decider:       auth.NewDecider(authCfg),
		Jobs:          f.jobs,
		Candidates:    f.candidates,
		Matches:       f.matches,
		Assessments:   f.assessments,
		Conversations: f.conversations,
		SessionStore:  f.sessions,
		Accounts:      f.accounts,
		Idempotency:   f.idempotency,
	})
	return f
}

// do runs one request through the full router. A non-nil body is sent as
// JSON.
func (f *apiFixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

// doAuthed is do with a bearer token attached.
func (f *apiFixture) doAuthed(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

// createJob provisions a job through the API and returns its id. The title
// and seniority line up with the fake search results the stage tests seed.
func (f *apiFixture) createJob(t *testing.T) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/jobs", models.CreateJobRequest{
		Title:     "Backend Engineer",
		JDText:    "Senior engineer. Go, Postgres and Kubernetes required.",
		Seniority: "senior",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var job struct {
		ID string `json:"id"`
	}
	decode(t, rec, &job)
	require.NotEmpty(t, job.ID)
	return job.ID
}

// connectAccount registers a connected sender account so dispatch has
// somewhere to route sends.
func (f *apiFixture) connectAccount(t *testing.T, providerAccountID string) *ent.SenderAccount {
	t.Helper()
	account, err := f.accounts.UpsertAccount(context.Background(), services.UpsertAccountInput{
		ProviderAccountID: providerAccountID,
		Label:             providerAccountID,
		Status:            "connected",
	})
	require.NoError(t, err)
	return account
}

// seedCandidate writes a candidate row directly; control-surface tests do
// not need the sourcing stages.
func (f *apiFixture) seedCandidate(t *testing.T, providerID, name string) *ent.Candidate {
	t.Helper()
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: providerID,
		FullName:   name,
		Languages:  []string{"en"},
	})
	require.NoError(t, err)
	return cand
}

// startSession opens a pre-resume session through the API and returns its
// id.
func (f *apiFixture) startSession(t *testing.T, jobID, candidateID string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
		JobID:       jobID,
		CandidateID: candidateID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var resp struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Session.ID)
	return resp.Session.ID
}

// goodProfile scores 1.0 against createJob's posting.
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

// runStage drives one pipeline step through the API and fails the test on a
// non-200. A non-nil body is sent as the stage request.
func (f *apiFixture) runStage(t *testing.T, jobID, step string, body any) map[string]any {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/stages/"+step, body)
	require.Equal(t, http.StatusOK, rec.Code, "stage %s body: %s", step, rec.Body.String())
	var summary map[string]any
	decode(t, rec, &summary)
	return summary
}

// stageDetails re-decodes a summary's details into the shapes the next
// stage consumes.
func stageDetails(t *testing.T, summary map[string]any) ([]provider.Profile, []models.VerifiedItem) {
	t.Helper()
	raw, err := json.Marshal(summary["details"])
	require.NoError(t, err)
	var details struct {
		Profiles []provider.Profile    `json:"profiles"`
		Items    []models.VerifiedItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &details))
	return details.Profiles, details.Items
}

// runPipeline pushes one matching profile through source to outreach,
// feeding each stage's output to the next the way a pipeline driver would.
// It leaves one needs_resume match with an open pre-resume session and a
// queued resume request.
func (f *apiFixture) runPipeline(t *testing.T, jobID string) {
	t.Helper()
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{goodProfile("p1", "Ada Example")}

	sourced, _ := stageDetails(t, f.runStage(t, jobID, "source", nil))
	require.NotEmpty(t, sourced)
	enriched, _ := stageDetails(t, f.runStage(t, jobID, "enrich", models.StageRequest{Profiles: sourced}))
	_, items := stageDetails(t, f.runStage(t, jobID, "verify", models.StageRequest{Profiles: enriched}))
	require.NotEmpty(t, items)
	f.runStage(t, jobID, "add", models.StageRequest{Items: items})
	f.runStage(t, jobID, "outreach", nil)
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	decode(t, rec, &health)
	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.Equal(t, config.BackendSQLite, health.ReadSource)
	assert.Equal(t, healthStatusHealthy, health.Checks[config.BackendSQLite].Status)
	assert.NotEmpty(t, health.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewServer_MissingDepPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewServer(nil, Deps{})
	})
}
