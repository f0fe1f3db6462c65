// Scout server: sources candidates from the messaging provider, runs the
// verification pipeline and pre-resume conversations, and schedules outbound
// messages across sender accounts. The backfill and parity subcommands
// operate on the two store backends directly.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/api"
	"github.com/hireflow/scout/pkg/auth"
	"github.com/hireflow/scout/pkg/cleanup"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/dispatch"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/signals"
	"github.com/hireflow/scout/pkg/store"
	"github.com/hireflow/scout/pkg/version"
	"github.com/hireflow/scout/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "scout",
		Short:         "Outbound technical-recruiting pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
			loadDotEnv(configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config",
		getEnv("CONFIG_FILE", "./config/scout.yaml"),
		"Path to the scout.yaml configuration file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(backfillCmd(&configPath))
	cmd.AddCommand(parityCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Full())
		},
	})

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadDotEnv loads the .env next to the config file, matching the deploy
// layout where secrets sit beside scout.yaml.
func loadDotEnv(configPath string) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "path", envPath)
		return
	}
	slog.Info("Loaded environment", "path", envPath)
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and background loops",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	ctx := context.Background()
	logger := slog.Default()

	slog.Info("Starting scout", "version", version.Full(), "config", configPath)

	// 1. Configuration
	cfg, err := config.Initialize(ctx, configPath)
	if err != nil {
		return err
	}

	// 2. Store (embedded backend always; Postgres when configured)
	sb, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := sb.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()

	// 3. Repository services
	jobs := services.NewJobService(sb)
	candidates := services.NewCandidateService(sb)
	matches := services.NewMatchService(sb)
	conversations := services.NewConversationService(sb)
	messages := services.NewMessageService(sb)
	sessionStore := services.NewSessionService(sb)
	assessments := services.NewAssessmentService(sb)
	queue := services.NewOutboundService(sb)
	progress := services.NewProgressService(sb)
	audit := services.NewAuditService(sb)
	accounts := services.NewAccountService(sb)
	signalStore := services.NewSignalService(sb)
	idempotency := services.NewIdempotencyService(sb)
	slog.Info("Services initialized")

	// 4. Messaging provider. The bundled fake ships with the binary;
	// production deployments link a real adapter here.
	prov := provider.NewFake()
	slog.Warn("Using bundled fake messaging provider")

	// 5. LLM responder (static fallback needs no credentials)
	responder, err := llm.New(cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize llm responder: %w", err)
	}
	if closer, ok := responder.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Error("Error closing llm responder", "error", err)
			}
		}()
	}
	slog.Info("LLM responder initialized", "provider", cfg.LLM.Provider)

	// 6. Pre-resume templates, hot-reloaded when configured
	templates, err := preresume.NewTemplateStore(cfg.PreResume, logger)
	if err != nil {
		return fmt.Errorf("failed to load pre-resume templates: %w", err)
	}
	defer func() { _ = templates.Close() }()

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	if cfg.PreResume.WatchTemplates {
		if err := templates.Watch(watchCtx); err != nil {
			return fmt.Errorf("failed to start template watcher: %w", err)
		}
	}

	// 7. Core engines
	sessions := preresume.NewManager(cfg.PreResume, sessionStore, templates, logger)
	matcher := matching.NewEngine(cfg.Matching)
	policy := scoring.NewPolicy(cfg.Scoring)

	signalEngine, err := signals.NewEngine(cfg.Signals, signals.Services{
		Matches:     matches,
		Assessments: assessments,
		Sessions:    sessionStore,
		Audit:       audit,
		Signals:     signalStore,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize signal engine: %w", err)
	}

	dispatcher := dispatch.New(cfg.Dispatch, dispatch.Deps{
		Store:    sb,
		Provider: prov,
		Queue:    queue,
		Audit:    audit,
	}, logger)

	outreach := agents.NewOutreachComposer(templates, responder, cfg.PreResume.DefaultLanguage, logger)
	faq := agents.NewFAQComposer(templates, responder, cfg.PreResume.DefaultLanguage, logger)

	engine := workflow.New(cfg.Workflow, cfg.Dispatch.Mode, workflow.Deps{
		Provider:      prov,
		Matcher:       matcher,
		Sessions:      sessions,
		Outreach:      outreach,
		FAQ:           faq,
		Dispatcher:    dispatcher,
		Jobs:          jobs,
		Candidates:    candidates,
		Matches:       matches,
		Conversations: conversations,
		Messages:      messages,
		SessionStore:  sessionStore,
		Assessments:   assessments,
		Queue:         queue,
		Progress:      progress,
		Audit:         audit,
	}, logger)

	profiles := profile.NewBuilder(cfg.Profile, profile.Deps{
		Jobs:          jobs,
		Candidates:    candidates,
		Matches:       matches,
		Assessments:   assessments,
		Sessions:      sessionStore,
		Conversations: conversations,
		Messages:      messages,
		Signals:       signalStore,
		Audit:         audit,
	}, policy, responder, logger)

	decider := auth.NewDecider(cfg.Auth)
	slog.Info("Engines initialized", "dispatch_mode", cfg.Dispatch.Mode)

	// 8. Background loops
	loopCtx, cancelLoops := context.WithCancel(ctx)
	defer cancelLoops()

	dispatchTicker := dispatch.NewTicker(dispatcher, cfg.Dispatch.TickInterval.Std(), cfg.Dispatch.BatchLimit, logger)
	if cfg.Dispatch.Mode == config.DispatchModeQueued {
		dispatchTicker.Start(loopCtx)
	}

	workflowTicker := workflow.NewTicker(engine,
		cfg.Workflow.FollowupTickInterval.Std(),
		cfg.Workflow.PollTickInterval.Std(),
		cfg.Dispatch.BatchLimit, logger)
	workflowTicker.Start(loopCtx)

	retention := cleanup.NewService(cfg.Retention, sb)
	if cfg.Retention.Enabled {
		retention.Start(loopCtx)
	}

	// 9. HTTP server
	httpServer := api.NewServer(cfg.Server, api.Deps{
		Store:         sb,
		Workflow:      engine,
		Dispatcher:    dispatcher,
		Signals:       signalEngine,
		Sessions:      sessions,
		Profiles:      profiles,
		Policy:        policy,
		Decider:       decider,
		Jobs:          jobs,
		Candidates:    candidates,
		Matches:       matches,
		Assessments:   assessments,
		Conversations: conversations,
		SessionStore:  sessionStore,
		Accounts:      accounts,
		Idempotency:   idempotency,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Scout started", "read_source", sb.ReadSource())

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop the producers first, then drain HTTP.
	workflowTicker.Stop()
	dispatchTicker.Stop()
	if cfg.Retention.Enabled {
		retention.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

func backfillCmd(configPath *string) *cobra.Command {
	var (
		batch    int
		truncate bool
		tables   []string
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Copy the embedded store into Postgres",
		Long: `Backfill copies every tracked table from the embedded SQLite backend into
the Postgres backend in foreign-key order. Rows already present in the target
are left untouched, so the copy is safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lite, pg, cleanupFn, err := openBothBackends(ctx, *configPath)
			if err != nil {
				return err
			}
			defer cleanupFn()

			report, err := store.Backfill(ctx, lite, pg, store.BackfillOptions{
				BatchSize:     batch,
				TruncateFirst: truncate,
				Tables:        tables,
			})
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}

	cmd.Flags().IntVar(&batch, "batch", 0, "Rows per INSERT statement (0 = default)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Empty the target tables before copying")
	cmd.Flags().StringSliceVar(&tables, "tables", nil, "Restrict the run to these tables")
	return cmd
}

func parityCmd(configPath *string) *cobra.Command {
	var (
		deep   bool
		sample int
		tables []string
	)

	cmd := &cobra.Command{
		Use:   "parity",
		Short: "Compare row counts across the two store backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lite, pg, cleanupFn, err := openBothBackends(ctx, *configPath)
			if err != nil {
				return err
			}
			defer cleanupFn()

			report, err := store.ParityReport(ctx, lite, pg, store.ParityOptions{
				Deep:        deep,
				SampleLimit: sample,
				Tables:      tables,
			})
			if err != nil {
				return err
			}
			if err := printJSON(report); err != nil {
				return err
			}
			if report.Status != "ok" {
				return fmt.Errorf("backends differ")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deep, "deep", false, "Diff the id sets of unequal tables")
	cmd.Flags().IntVar(&sample, "sample", 0, "Examples per table in a deep diff (0 = default)")
	cmd.Flags().StringSliceVar(&tables, "tables", nil, "Restrict the report to these tables")
	return cmd
}

// openBothBackends opens the embedded and Postgres backends for the offline
// tools. Both are required regardless of the configured read source.
func openBothBackends(ctx context.Context, configPath string) (lite, pg *store.Backend, cleanupFn func(), err error) {
	cfg, err := config.Initialize(ctx, configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Store.PostgresDSN == "" {
		return nil, nil, nil, fmt.Errorf("store.postgres_dsn must be configured")
	}

	lite, err = store.OpenSQLite(ctx, cfg.Store.SQLitePath)
	if err != nil {
		return nil, nil, nil, err
	}
	pg, err = store.OpenPostgres(ctx, cfg.Store.PostgresDSN, cfg.Store.MaxOpenConns, cfg.Store.MaxIdleConns)
	if err != nil {
		_ = lite.Close()
		return nil, nil, nil, err
	}
	return lite, pg, func() {
		_ = lite.Close()
		_ = pg.Close()
	}, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
