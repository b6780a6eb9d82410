package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"voice-todo-api/config"
	_ "voice-todo-api/docs" // Swagger docs
	"voice-todo-api/internal/httpserver"
	"voice-todo-api/internal/middleware"
	"voice-todo-api/internal/task/repository"
	"voice-todo-api/internal/task/repository/inmem"
	"voice-todo-api/internal/task/repository/postgre"
	"voice-todo-api/internal/task/usecase"
	"voice-todo-api/pkg/llmprovider"
	"voice-todo-api/pkg/log"
	"voice-todo-api/pkg/openai"
)

// @title       Voice Todo API
// @description Voice-first task management: transcribes recordings, normalizes them into structured tasks, and answers questions about the task list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. AI backends (optional: without an API key the service still runs,
	// falling back to deterministic text normalization and rejecting audio)
	var (
		llmManager  *llmprovider.Manager
		transcriber openai.ITranscriber
	)
	if cfg.OpenAI.APIKey != "" {
		client, aiErr := openai.New(openai.Config{
			APIKey:       cfg.OpenAI.APIKey,
			APIURL:       cfg.OpenAI.BaseURL,
			ChatModel:    cfg.OpenAI.ParseModel,
			WhisperModel: cfg.OpenAI.WhisperModel,
			Timeout:      cfg.OpenAI.Timeout,
		})
		if aiErr != nil {
			logger.Error(ctx, "Failed to initialize OpenAI client: ", aiErr)
			return
		}

		llmManager = llmprovider.NewManager(
			[]llmprovider.Provider{llmprovider.NewOpenAIAdapter(client)},
			&llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryBaseDelay:  cfg.LLM.RetryBaseDelay,
				RetryMaxDelay:   cfg.LLM.RetryMaxDelay,
			},
			logger,
		)
		transcriber = client
		logger.Infof(ctx, "OpenAI backend initialized (parse=%s whisper=%s)", cfg.OpenAI.ParseModel, cfg.OpenAI.WhisperModel)
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY not set: voice input disabled, text normalization uses the deterministic fallback")
	}

	// 4. Task repository: Postgres when a database URL is configured,
	// otherwise the in-memory store
	var taskRepo repository.Repository
	if cfg.Database.URL != "" {
		db, dbErr := sql.Open("pgx", cfg.Database.URL)
		if dbErr != nil {
			logger.Error(ctx, "Failed to open database: ", dbErr)
			return
		}
		defer db.Close()

		if pingErr := db.PingContext(ctx); pingErr != nil {
			logger.Error(ctx, "Failed to ping database: ", pingErr)
			return
		}

		taskRepo = postgre.New(db, logger)
		logger.Info(ctx, "Using Postgres task store")
	} else {
		taskRepo = inmem.New(logger)
		logger.Warn(ctx, "DATABASE_URL not set: using the in-memory task store")
	}

	// 5. Task UseCase
	taskUC := usecase.New(logger, llmManager, transcriber, taskRepo)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskUseCase: taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
