package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"bizeyes/internal/infra/adapter/persistence/memory"
	pgRepo "bizeyes/internal/infra/adapter/persistence/postgres"
	"bizeyes/internal/infra/db"
	"bizeyes/internal/infra/g2b"
	"bizeyes/internal/infra/webhook"
	workerPkg "bizeyes/internal/infra/worker"
	"bizeyes/internal/observability/logging"
	"bizeyes/internal/repository"
	relayUC "bizeyes/internal/usecase/relay"
)

// The worker periodically pulls the three G2B datasets and relays them to
// the configured webhook, persisting bid notices along the way. It shares
// the relay pipeline with the API server, so the hard fallback to mock
// data applies here too.
func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("fetch_timeout", workerConfig.FetchTimeout),
		slog.Int("page_size", workerConfig.PageSize),
		slog.Int("health_port", workerConfig.HealthPort))

	store, database := initStore(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	svc := setupRelayService(logger, store)

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	startCronWorker(logger, svc, workerConfig, workerMetrics, healthServer)
}

// initStore mirrors the API server's store selection: PostgreSQL when
// DATABASE_URL is set, in-memory otherwise. The worker does not run
// migrations; it waits for the API server to have created the schema.
func initStore(logger *slog.Logger) (repository.NoticeRepository, *sql.DB) {
	if os.Getenv("DATABASE_URL") == "" {
		logger.Info("DATABASE_URL not set, using in-memory notice store")
		return memory.NewNoticeRepo(), nil
	}

	database := db.Open()
	waitForMigrations(logger, database)
	return pgRepo.NewNoticeRepo(database), database
}

func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM bid_notices LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func setupRelayService(logger *slog.Logger, store repository.NoticeRepository) *relayUC.Service {
	g2bConfig, err := g2b.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load G2B configuration", slog.Any("error", err))
		os.Exit(1)
	}
	client := g2b.NewClient(g2bConfig)
	logger.Info("G2B client initialized", slog.Bool("mock_mode", client.UsesMockData()))

	sender, err := webhook.NewRelay(webhook.LoadConfigFromEnv())
	if err != nil {
		logger.Error("failed to initialize webhook relay", slog.Any("error", err))
		os.Exit(1)
	}

	return relayUC.NewService(client, sender, store)
}

// startCronWorker starts the cron scheduler and blocks forever.
func startCronWorker(logger *slog.Logger, svc *relayUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runRelayJob(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runRelayJob executes one fetch-and-relay pass over all three datasets.
func runRelayJob(logger *slog.Logger, svc *relayUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	logger.Info("relay job started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	params := g2b.ListParams{PageNo: 1, NumOfRows: cfg.PageSize}

	summaries := map[string]relayUC.Summary{
		"bidNotice": svc.RelayBidNotices(ctx, params),
		"preNotice": svc.RelayPreNotices(ctx, params),
		"contract":  svc.RelayContracts(ctx, params),
	}

	relayed := 0
	for name, summary := range summaries {
		if summary.WebhookSuccess {
			relayed++
		} else {
			logger.Warn("dataset relay failed",
				slog.String("dataset", name),
				slog.String("message", summary.Message))
		}
	}

	metrics.RecordJobDuration(time.Since(startTime).Seconds())
	metrics.RecordDatasetsRelayed(relayed)

	if relayed == 0 {
		metrics.RecordJobRun("failure")
		logger.Error("relay job failed, no dataset delivered")
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordLastSuccess()
	logger.Info("relay job completed",
		slog.Int("datasets_relayed", relayed),
		slog.Duration("duration", time.Since(startTime)))
}
