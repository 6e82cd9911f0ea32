package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/joho/godotenv"

	"github.com/clinicscribe/scribe-api/internal/config"
	"github.com/clinicscribe/scribe-api/internal/handler"
	labelHandler "github.com/clinicscribe/scribe-api/internal/handler/label"
	recordHandler "github.com/clinicscribe/scribe-api/internal/handler/record"
	sessionHandler "github.com/clinicscribe/scribe-api/internal/handler/session"
	"github.com/clinicscribe/scribe-api/internal/middleware"
	"github.com/clinicscribe/scribe-api/internal/repository/sqlite"
	"github.com/clinicscribe/scribe-api/internal/router"
	"github.com/clinicscribe/scribe-api/internal/service/email"
	"github.com/clinicscribe/scribe-api/internal/service/report"
	"github.com/clinicscribe/scribe-api/internal/service/session"
	"github.com/clinicscribe/scribe-api/internal/service/summarize"
	"github.com/clinicscribe/scribe-api/internal/service/transcribe"
	"github.com/clinicscribe/scribe-api/pkg/logger"
)

func main() {
	log := logger.NewLogger(nil)

	// A .env beside the binary is how the desk-tool deployment carries
	// its API key; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Initialize database
	db, err := sqlite.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to open database")
	}
	defer db.Close()

	repo := sqlite.NewSessionRepository(db)

	// Hosted AI clients
	apiTimeout := time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	whisper := transcribe.NewWhisperClient(
		cfg.OpenAI.BaseURL, cfg.Secrets.OpenAIAPIKey, cfg.OpenAI.SpeechModel, apiTimeout)
	transcriber := transcribe.NewService(whisper)

	chatModel, err := einoopenai.NewChatModel(context.Background(), &einoopenai.ChatModelConfig{
		BaseURL: cfg.OpenAI.BaseURL,
		APIKey:  cfg.Secrets.OpenAIAPIKey,
		Model:   cfg.OpenAI.ChatModel,
		Timeout: apiTimeout,
	})
	if err != nil {
		log.Fatal(err, "failed to initialize chat model")
	}
	summarizer := summarize.NewService(chatModel)

	// Services
	renderer := report.NewService()
	workflow := session.NewWorkflow(repo, transcriber, summarizer, renderer)
	emailer := email.NewService(cfg.SMTP, cfg.Secrets.SMTPPassword)

	// Router
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	r := router.NewRouter(
		sessionHandler.NewHandler(workflow),
		recordHandler.NewHandler(repo, renderer, emailer),
		labelHandler.NewHandler(),
		handler.NewHealthHandler(db),
		limiter,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
