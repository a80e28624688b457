package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"giftcard/internal/domain"
	"giftcard/internal/generation"

	"github.com/rs/zerolog"
)

// CredentialSource supplies the provider API key.
type CredentialSource interface {
	OpenAIAPIKey(ctx context.Context) (string, error)
}

// ProviderFactory builds a provider client for an already validated key.
type ProviderFactory func(apiKey string) (generation.Provider, error)

// App carries the dependencies shared by the HTTP handlers.
type App struct {
	Credentials  CredentialSource
	NewProvider  ProviderFactory
	OnGeneration func(operation, tierID string, err error, elapsed time.Duration)
}

// NewApp returns an App that resolves credentials and providers per request.
func NewApp(creds CredentialSource, newProvider ProviderFactory) *App {
	return &App{Credentials: creds, NewProvider: newProvider}
}

// pipeline checks the credential before building anything that could reach
// the provider.
func (a *App) pipeline(ctx context.Context) (*generation.Pipeline, error) {
	if a.Credentials == nil || a.NewProvider == nil {
		return nil, fmt.Errorf("%w: generation provider not configured", domain.ErrConfiguration)
	}
	key, err := a.Credentials.OpenAIAPIKey(ctx)
	if err != nil {
		return nil, err
	}
	provider, err := a.NewProvider(key)
	if err != nil {
		return nil, err
	}
	return generation.NewPipeline(generation.Options{
		Provider:   provider,
		OnComplete: a.OnGeneration,
	})
}

func (a *App) json(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
