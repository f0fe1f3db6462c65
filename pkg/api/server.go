// Package api exposes the recruiting core over HTTP: job and pipeline
// control, conversation inbound, pre-resume session control, outbound
// dispatch, sender-account administration, signal ingestion and views,
// candidate profiles, and the store administration surface (read-source
// switch, dual-write strictness, parity, backfill). Handlers translate
// between HTTP and the core and add nothing beyond validation, auth
// decisions, and idempotency-key handling.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hireflow/scout/pkg/auth"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/dispatch"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/signals"
	"github.com/hireflow/scout/pkg/store"
	"github.com/hireflow/scout/pkg/workflow"
)

// Deps bundles the server's collaborators. Engines and services are
// required; the dispatcher may be nil when outbound dispatch is disabled.
type Deps struct {
	Store      *store.Switchboard
	Workflow   *workflow.Engine
	Dispatcher *dispatch.Dispatcher
	Signals    *signals.Engine
	Sessions   *preresume.Manager
	Profiles   *profile.Builder
	Policy     *scoring.Policy
	Decider    *auth.Decider

	Jobs          *services.JobService
	Candidates    *services.CandidateService
	Matches       *services.MatchService
	Assessments   *services.AssessmentService
	Conversations *services.ConversationService
	SessionStore  *services.SessionService
	Accounts      *services.AccountService
	Idempotency   *services.IdempotencyService
}

// Server is the HTTP boundary. It owns the echo router and the underlying
// http.Server, created on Start.
type Server struct {
	cfg  *config.ServerConfig
	deps Deps
	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers every route. A nil config uses
// the built-in defaults.
func NewServer(cfg *config.ServerConfig, deps Deps) *Server {
	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}
	for name, required := range map[string]bool{
		"store":         deps.Store == nil,
		"workflow":      deps.Workflow == nil,
		"signals":       deps.Signals == nil,
		"sessions":      deps.Sessions == nil,
		"profiles":      deps.Profiles == nil,
		"jobs":          deps.Jobs == nil,
		"candidates":    deps.Candidates == nil,
		"matches":       deps.Matches == nil,
		"assessments":   deps.Assessments == nil,
		"conversations": deps.Conversations == nil,
		"sessionStore":  deps.SessionStore == nil,
		"accounts":      deps.Accounts == nil,
		"idempotency":   deps.Idempotency == nil,
	} {
		if required {
			panic(fmt.Sprintf("api.NewServer: %s must not be nil", name))
		}
	}
	if deps.Policy == nil {
		deps.Policy = scoring.NewPolicy(nil)
	}
	if deps.Decider == nil {
		deps.Decider = auth.NewDecider(nil)
	}

	s := &Server{cfg: cfg, deps: deps, echo: echo.New()}
	s.registerRoutes()
	return s
}

// registerRoutes wires the operations table onto the router. Every /api/v1
// route names the scope it requires; the store administration routes
// additionally require an admin grant.
func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	// Unauthenticated operational endpoints.
	e.GET("/healthz", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.POST("/jobs", s.createJobHandler, s.requireScope("jobs:write"))
	v1.GET("/jobs", s.listJobsHandler, s.requireScope("jobs:read"))
	v1.GET("/jobs/:id", s.getJobHandler, s.requireScope("jobs:read"))
	v1.POST("/jobs/:id/stages/:step", s.runStageHandler, s.requireScope("jobs:run"))
	v1.GET("/jobs/:id/candidates", s.listCandidatesHandler, s.requireScope("candidates:read"))

	v1.POST("/inbound", s.inboundHandler, s.requireScope("conversations:write"))

	v1.POST("/sessions", s.startSessionHandler, s.requireScope("sessions:write"))
	v1.GET("/sessions/:id", s.getSessionHandler, s.requireScope("sessions:read"))
	v1.POST("/sessions/:id/inbound", s.sessionInboundHandler, s.requireScope("sessions:write"))
	v1.POST("/sessions/:id/followup", s.sessionFollowupHandler, s.requireScope("sessions:write"))
	v1.POST("/sessions/:id/unreachable", s.sessionUnreachableHandler, s.requireScope("sessions:write"))

	v1.POST("/dispatch", s.dispatchHandler, s.requireScope("dispatch:run"))

	v1.POST("/accounts", s.upsertAccountHandler, s.requireScope("accounts:write"))
	v1.GET("/accounts", s.listAccountsHandler, s.requireScope("accounts:read"))
	v1.POST("/accounts/:id/status", s.setAccountStatusHandler, s.requireScope("accounts:write"))
	v1.POST("/jobs/:id/accounts", s.assignAccountHandler, s.requireScope("accounts:write"))

	v1.POST("/jobs/:id/signals/ingest", s.ingestSignalsHandler, s.requireScope("signals:run"))
	v1.GET("/jobs/:id/signals", s.signalsViewHandler, s.requireScope("signals:read"))

	v1.GET("/candidates/:id/profile", s.candidateProfileHandler, s.requireScope("candidates:read"))

	v1.GET("/store/status", s.storeStatusHandler, s.requireAdmin("store:admin"))
	v1.POST("/store/read-source", s.switchReadSourceHandler, s.requireAdmin("store:admin"))
	v1.POST("/store/dual-write-strict", s.dualWriteStrictHandler, s.requireAdmin("store:admin"))
	v1.GET("/store/parity", s.parityHandler, s.requireAdmin("store:admin"))
	v1.POST("/store/backfill", s.backfillHandler, s.requireAdmin("store:admin"))
}

// Start serves HTTP on addr and blocks until shutdown. It returns
// http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
