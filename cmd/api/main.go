package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"bizeyes/internal/common/pagination"
	hhttp "bizeyes/internal/handler/http"
	hnotice "bizeyes/internal/handler/http/notice"
	hrelay "bizeyes/internal/handler/http/relay"
	"bizeyes/internal/handler/http/requestid"
	"bizeyes/internal/infra/adapter/persistence/memory"
	pgRepo "bizeyes/internal/infra/adapter/persistence/postgres"
	"bizeyes/internal/infra/db"
	"bizeyes/internal/infra/g2b"
	"bizeyes/internal/infra/webhook"
	"bizeyes/internal/observability/logging"
	"bizeyes/internal/observability/tracing"
	"bizeyes/internal/repository"
	noticeUC "bizeyes/internal/usecase/notice"
	relayUC "bizeyes/internal/usecase/relay"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	store, database := initStore(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	client := initG2BClient(logger)
	sender := initWebhookRelay(logger)

	relaySvc := relayUC.NewService(client, sender, store)
	noticeSvc := &noticeUC.Service{Repo: store}

	version := getVersion()
	handler := setupServer(logger, database, client, sender, relaySvc, noticeSvc, version)

	runServer(logger, handler, version)
}

// initStore chooses the notice store. With DATABASE_URL set the API runs
// on PostgreSQL; without it, notices live in process memory and are lost
// on restart.
func initStore(logger *slog.Logger) (repository.NoticeRepository, *sql.DB) {
	if os.Getenv("DATABASE_URL") == "" {
		logger.Info("DATABASE_URL not set, using in-memory notice store")
		return memory.NewNoticeRepo(), nil
	}

	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return pgRepo.NewNoticeRepo(database), database
}

// initG2BClient builds the 나라장터 client. A missing service key is not
// fatal: the client then serves generated mock data.
func initG2BClient(logger *slog.Logger) *g2b.Client {
	cfg, err := g2b.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load G2B configuration", slog.Any("error", err))
		os.Exit(1)
	}

	client := g2b.NewClient(cfg)
	logger.Info("G2B client initialized", slog.Bool("mock_mode", client.UsesMockData()))
	return client
}

func initWebhookRelay(logger *slog.Logger) *webhook.Relay {
	relay, err := webhook.NewRelay(webhook.LoadConfigFromEnv())
	if err != nil {
		logger.Error("failed to initialize webhook relay", slog.Any("error", err))
		os.Exit(1)
	}
	return relay
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer registers all routes and wraps them in the middleware chain.
func setupServer(
	logger *slog.Logger,
	database *sql.DB,
	client *g2b.Client,
	sender *webhook.Relay,
	relaySvc *relayUC.Service,
	noticeSvc *noticeUC.Service,
	version string,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:             database,
		Upstream:       client,
		Breaker:        client.Breaker(),
		WebhookBreaker: sender.Breaker(),
		Version:        version,
	})
	mux.Handle("GET /ready", hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LivenessHandler())
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hrelay.Register(mux, relaySvc)
	hnotice.Register(mux, noticeSvc, pagination.LoadFromEnv(), logger)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler, innermost first:
// Recover → Request ID → Tracing → Logging → Timeout → Body Limit →
// Metrics → routes.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	// relay requests block on the upstream fetch plus a 30s webhook send,
	// so the request budget sits above both
	chain = hhttp.Timeout(60 * time.Second)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
