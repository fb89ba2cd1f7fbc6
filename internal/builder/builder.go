package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api"
	botapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/bot"
	chatapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/chat"
	contentapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/content"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/contentstore"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/llm"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/formatter"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/validator"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/repository"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/telegram"
	botuc "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/usecase/bot"
	chatuc "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/usecase/chat"
	contentuc "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/usecase/content"
	"go.uber.org/zap"
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

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	botRepo := repository.NewBotPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	store, llmConnector := setupConnectors(cfg, logger)

	// Initialize search engine on top of the content store
	engine := search.NewEngine(store, cfg.ContentStoreCfg.FetchLimit, logger)

	// Initialize validators
	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)
	logger.Info("Validators initialized")

	// Initialize use cases
	history := chatuc.NewHistoryStore(cfg.ChatCfg.HistoryTTL, cfg.ChatCfg.HistoryMaxMessages)

	botUC := botuc.NewUsecase(botRepo, logger)
	chatUC := chatuc.NewUsecase(botRepo, engine, llmConnector, history, logger)
	contentUC := contentuc.NewUsecase(store, engine, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	botHandler := botapi.NewHandler(botUC)
	chatHandler := chatapi.NewHandler(chatUC, formatter.NewFactory())
	contentHandler := contentapi.NewHandler(contentUC, cfg.FileUploadCfg, fileValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(botHandler, chatHandler, contentHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateTelegram(); err != nil {
		return nil, nil, fmt.Errorf("validate telegram configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	botRepo := repository.NewBotPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	store, llmConnector := setupConnectors(cfg, logger)

	// Initialize search engine and chat pipeline
	engine := search.NewEngine(store, cfg.ContentStoreCfg.FetchLimit, logger)
	history := chatuc.NewHistoryStore(cfg.ChatCfg.HistoryTTL, cfg.ChatCfg.HistoryMaxMessages)
	chatUC := chatuc.NewUsecase(botRepo, engine, llmConnector, history, logger)
	logger.Info("Use cases initialized")

	// Initialize Telegram bot
	bot, err := telegram.NewBot(&cfg.TelegramCfg, chatUC, logger)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, nil
}

// contentStore is the full surface the application needs from the content
// store: candidate fetching for the search engine plus entry creation for
// the import pipeline.
type contentStore interface {
	search.Fetcher
	contentuc.ContentStore
}

func setupConnectors(cfg *config.Config, logger *zap.Logger) (contentStore, chatuc.LLMConnector) {
	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		return contentstore.NewMockConnector(logger), llm.NewMockConnector(logger)
	}

	logger.Info("Using real connectors for external services")
	return contentstore.NewConnector(cfg.ContentStoreCfg, logger), llm.NewConnector(cfg.LLMConnectorCfg, logger)
}
