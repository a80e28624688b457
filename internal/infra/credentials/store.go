package credentials

import (
	"context"
	"fmt"
	"strings"

	"giftcard/internal/domain"
)

const (
	ProviderOpenAI = "openai"
)

// Store hands out provider credentials. Keys are checked on every lookup so
// a blank value is reported before any provider call is attempted.
type Store struct {
	tokens map[string]string
}

func NewStore(openAIKey string) *Store {
	return &Store{tokens: map[string]string{ProviderOpenAI: openAIKey}}
}

func (s *Store) OpenAIAPIKey(ctx context.Context) (string, error) {
	return s.Token(ctx, ProviderOpenAI)
}

func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("%w: credential store not configured", domain.ErrConfiguration)
	}
	token := strings.TrimSpace(s.tokens[provider])
	if token == "" {
		return "", fmt.Errorf("%w: %s api key is not set; add %s_API_KEY to the environment or .env file",
			domain.ErrConfiguration, provider, strings.ToUpper(provider))
	}
	return token, nil
}
