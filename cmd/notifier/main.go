package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ptt_notifier/internal/api"
	"ptt_notifier/internal/config"
	"ptt_notifier/internal/generator"
	"ptt_notifier/internal/mailer"
	"ptt_notifier/internal/notifier"
	"ptt_notifier/internal/publisher"
	"ptt_notifier/internal/quota"
	"ptt_notifier/internal/scheduler"
	"ptt_notifier/internal/service"
	"ptt_notifier/internal/source/ptt"
	"ptt_notifier/internal/storage/postgres"
	"ptt_notifier/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Schedule.Timezone, "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	articleStore := postgres.NewArticleStore(db)
	subscriberStore := postgres.NewSubscriberStore(db)
	notificationStore := postgres.NewNotificationStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize RabbitMQ publisher (optional)
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(cfg.RabbitMQ, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Info("rabbitmq url not set, event publishing disabled")
	}

	// Initialize PTT board source
	source := ptt.New(ptt.Config{
		BoardURL:  cfg.Board.URL,
		Keywords:  cfg.Board.Keywords,
		Timeout:   cfg.Board.Timeout,
		FetchRate: cfg.Board.FetchRate,
	}, loc, logger)

	line := notifier.NewLine(cfg.Line, logger)
	fanout := service.NewFanout(subscriberStore, notificationStore, line, cfg.Schedule.DigestMaxItems, logger)

	// Initialize the personalized outreach path (optional)
	var (
		outreach *service.AutoMail
		ledger   *sqlite.Ledger
		tracker  *quota.Tracker
	)
	if cfg.AutoMail.Enabled {
		ledger, err = sqlite.Open(cfg.AutoMail.LedgerPath)
		if err != nil {
			logger.Error("failed to open dispatch ledger", "path", cfg.AutoMail.LedgerPath, "error", err)
			os.Exit(1)
		}
		defer ledger.Close()

		tracker = quota.NewTracker(ledger, cfg.AutoMail.DailyLimit, loc)
		gemini := generator.NewGemini(cfg.AutoMail.GeminiAPIKey, cfg.AutoMail.GeminiModel, logger)
		bridge := mailer.New(cfg.AutoMail.BridgeURL, cfg.AutoMail.Username, cfg.AutoMail.Password, logger)
		outreach = service.NewAutoMail(
			ledger,
			tracker,
			gemini,
			bridge,
			cfg.AutoMail.MinDelay,
			cfg.AutoMail.MaxDelay,
			logger,
		)
		logger.Info("outreach enabled", "daily_limit", cfg.AutoMail.DailyLimit)
	}

	var outreachDep service.Outreach
	if outreach != nil {
		outreachDep = outreach
	}

	intake := service.NewIntake(
		source,
		articleStore,
		txManager,
		pub,
		fanout,
		outreachDep,
		cfg.Board.Keywords,
		logger,
	)
	retention := service.NewRetention(articleStore, cfg.Schedule.RetentionDays, loc, logger)

	sched, err := scheduler.New(cfg.Schedule, loc, scheduler.Jobs{
		Intake: func(ctx context.Context) error {
			_, err := intake.Run(ctx)
			return err
		},
		Digest: func(ctx context.Context) error {
			_, err := fanout.RunDigest(ctx)
			return err
		},
		Purge: retention.Run,
	}, logger)
	if err != nil {
		logger.Error("failed to build scheduler", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(
		articleStore,
		subscriberStore,
		notificationStore,
		ledger,
		tracker,
		intake,
		fanout,
		logger,
	)
	server := &http.Server{
		Addr:         ":" + cfg.API.Port,
		Handler:      api.NewServer(handler, cfg.API.AccessKey, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sched.Start()
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	sched.Stop()
	if outreach != nil {
		cancelled := outreach.CancelAll()
		if cancelled > 0 {
			logger.Info("cancelled queued outreach mails", "count", cancelled)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
