// @title         qagen API
// @version       1.0
// @description   Generates manual QA test cases for healthcare user stories from uploaded domain knowledge with a local LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:3000
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/qagen/docs"

	// internal imports
	"github.com/artem13815/qagen/api/http"
	"github.com/artem13815/qagen/api/http/handlers"
	"github.com/artem13815/qagen/pkg/config"
	"github.com/artem13815/qagen/pkg/health"
	"github.com/artem13815/qagen/pkg/health/checkers"
	"github.com/artem13815/qagen/pkg/knowledge"
	"github.com/artem13815/qagen/pkg/llm/ollama"
	"github.com/artem13815/qagen/pkg/logger"
	"github.com/artem13815/qagen/pkg/testcase"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Single in-memory knowledge slot shared by upload and generation
	store := knowledge.NewMemoryStore()

	llmClient := ollama.New(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout)
	generator := testcase.NewGenerationService(store, llmClient)

	knowledgeHandler := handlers.NewKnowledgeHandler(store, log, int64(cfg.UploadMaxMB)<<20)
	testCaseHandler := handlers.NewTestCaseHandler(generator, log)
	healthHandler := handlers.NewHealthHandler(health.NewService(checkers.NewOllamaChecker(llmClient)))

	app := http.NewApp(log, cfg.BodyLimitMB<<20)
	http.Register(app, knowledgeHandler, testCaseHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Browser UI
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		app.Static("/", cfg.StaticDir)
	} else {
		log.Warn("static directory not found, UI disabled", "dir", cfg.StaticDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening",
			"addr", ":"+cfg.Port,
			"llm_url", llmClient.BaseURL,
			"model", llmClient.Model,
			"llm_timeout", cfg.LLMTimeout.String(),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatal("server stopped", "error", err)
		}
	}
}
