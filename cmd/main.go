package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsrecap/internal/api"
	"newsrecap/internal/config"
	"newsrecap/internal/naver"
	"newsrecap/internal/recap"
	"newsrecap/internal/summarizer"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dotenvErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	log := newLogger(cfg.Debug)
	slog.SetDefault(log)

	if dotenvErr != nil {
		log.InfoContext(ctx, ".env file is not loaded so process environment is used",
			"error", dotenvErr)
	}

	for _, envVar := range cfg.MissingCredentials() {
		log.WarnContext(ctx, "Credential is missing so upstream calls will be rejected",
			"envVar", envVar)
	}

	newsClient := naver.NewClient(
		cfg.NaverNewsURL,
		naver.Credentials{
			ClientID:     cfg.NaverClientID,
			ClientSecret: cfg.NaverClientSecret,
		},
		cfg.NewsTimeout,
		log,
	)
	log.InfoContext(ctx, "News client is initialized",
		"newsURL", newsClient.NewsURL(),
		"timeout", cfg.NewsTimeout.String())

	sum := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, log)
	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai",
		"model", cfg.OpenAIModel)

	service := recap.NewService(newsClient, sum, cfg.SummaryParallelism, log)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		log.InfoContext(ctx, "CORS is enabled",
			"allowedOrigins", cfg.CORSAllowedOrigins)
	}
	router := api.NewRouter(api.NewHandler(service, log), cfg.CORSAllowedOrigins, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.InfoContext(ctx, "Server is started",
			"addr", cfg.HTTPAddr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Server is failed",
				"error", err,
				"addr", cfg.HTTPAddr)
			cancel()
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down server",
			"error", err,
			"timeout", cfg.ShutdownTimeout.String())
	}

	log.InfoContext(ctx, "Server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
