package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"giftcard/internal/generation"
	"giftcard/internal/http/handlers"
	httpapi "giftcard/internal/http/httpapi"
	"giftcard/internal/infra"
	"giftcard/internal/infra/credentials"
	"giftcard/internal/metrics"
	"giftcard/internal/providers/openai"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store := credentials.NewStore(cfg.OpenAIAPIKey)
	if _, err := store.OpenAIAPIKey(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("generation routes will fail until the key is configured")
	}

	// One transport for every per-request provider client.
	upstream := &http.Client{Timeout: cfg.OpenAITimeout}
	m := metrics.New()
	app := handlers.NewApp(store, func(apiKey string) (generation.Provider, error) {
		return openai.NewClient(openai.Options{
			APIKey:       apiKey,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			HTTPClient:   upstream,
		})
	})
	app.OnGeneration = m.ObserveGeneration

	router := httpapi.NewRouter(app, logger, m)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
