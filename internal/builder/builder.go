package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/api"
	contactapi "github.com/lawai/consult-backend/internal/api/contact"
	interviewapi "github.com/lawai/consult-backend/internal/api/interview"
	"github.com/lawai/consult-backend/internal/classify"
	"github.com/lawai/consult-backend/internal/config"
	"github.com/lawai/consult-backend/internal/integration/contact"
	"github.com/lawai/consult-backend/internal/integration/llm"
	"github.com/lawai/consult-backend/internal/integration/notify"
	"github.com/lawai/consult-backend/internal/pkg/validator"
	"github.com/lawai/consult-backend/internal/repository"
	contactuc "github.com/lawai/consult-backend/internal/usecase/contact"
	"github.com/lawai/consult-backend/internal/usecase/interview"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// The live session store is always in-memory; the database only carries
	// the durable snapshots.
	sessionStore := repository.NewSessionMemory(cfg.SessionTTL, cfg.SessionCleanupInterval)

	var db *pgxpool.Pool
	var snapshotRepo repository.SnapshotRepository

	if cfg.EnableMocks {
		logger.Info("Mock mode: using in-memory snapshot repository")
		snapshotRepo = repository.NewSnapshotMemory()
	} else {
		db, err = setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup database: %w", err)
		}

		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		snapshotRepo = repository.NewSnapshotPostgres(db)
	}
	logger.Info("Repositories initialized")

	var llmConnector interview.LLMConnector
	var contactConnector contactuc.ContactConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		llmConnector = llm.NewMockConnector(logger)
		contactConnector = contact.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
		contactConnector = contact.NewConnector(cfg.ContactConnectorCfg, logger)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramCfg.Enabled {
		notifier, err = notify.NewTelegram(cfg.TelegramCfg, logger)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return nil, fmt.Errorf("initialize telegram notifier: %w", err)
		}
		logger.Info("Telegram lawyer notifications enabled")
	}

	reqValidator := validator.New()
	logger.Info("Validators initialized")

	interviewUC := interview.NewUsecase(
		sessionStore,
		snapshotRepo,
		llmConnector,
		classify.NewAssetTemplateSource(),
		logger,
	)
	contactUC := contactuc.NewUsecase(contactConnector, notifier, reqValidator, logger)
	logger.Info("Use cases initialized")

	interviewHandler := interviewapi.NewHandler(interviewUC, reqValidator)
	contactHandler := contactapi.NewHandler(contactUC)
	logger.Info("API handlers initialized")

	router := api.SetupRouter(interviewHandler, contactHandler, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 130 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
