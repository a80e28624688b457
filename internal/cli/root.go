// Package cli implements the giftcardctl commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"giftcard/internal/generation"
	"giftcard/internal/infra"
	"giftcard/internal/infra/credentials"
	"giftcard/internal/providers/openai"
	"giftcard/internal/tier"

	"github.com/spf13/cobra"
)

// ProviderFactory builds the provider used by the generate commands.
type ProviderFactory func(apiKey, baseURL string, timeout time.Duration) (generation.Provider, error)

type options struct {
	tier    string
	apiKey  string
	baseURL string
	timeout time.Duration
	verbose bool

	newProvider ProviderFactory
}

func defaultProviderFactory(apiKey, baseURL string, timeout time.Duration) (generation.Provider, error) {
	return openai.NewClient(openai.Options{APIKey: apiKey, BaseURL: baseURL, Timeout: timeout})
}

// Execute runs the root command against the real provider.
func Execute() error {
	return NewRootCommand(defaultProviderFactory).Execute()
}

func NewRootCommand(newProvider ProviderFactory) *cobra.Command {
	opts := &options{newProvider: newProvider}
	root := &cobra.Command{
		Use:          "giftcardctl",
		Short:        "Generate gift card copy and imagery",
		Long:         `Generate gift card marketing copy and background images using the same tiered pipeline as the HTTP API.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.tier, "tier", tier.Tier1, "Tier to use: "+strings.Join(tier.IDs(), ", "))
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "OpenAI API key (default: OPENAI_API_KEY)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "OpenAI base URL (default: OPENAI_BASE_URL or the public API)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Upstream request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log generation events to stderr")

	root.AddCommand(newDescribeCommand(opts), newImageCommand(opts), newTiersCommand())
	return root
}

// pipeline resolves the tier and builds a pipeline, checking the key first.
func (o *options) pipeline(cmd *cobra.Command) (context.Context, tier.Config, *generation.Pipeline, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := tier.Resolve(o.tier)
	if err != nil {
		return nil, tier.Config{}, nil, err
	}
	key := o.apiKey
	if strings.TrimSpace(key) == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	apiKey, err := credentials.NewStore(key).OpenAIAPIKey(ctx)
	if err != nil {
		return nil, tier.Config{}, nil, err
	}
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = os.Getenv("OPENAI_BASE_URL")
	}
	provider, err := o.newProvider(apiKey, baseURL, o.timeout)
	if err != nil {
		return nil, tier.Config{}, nil, err
	}
	pipeline, err := generation.NewPipeline(generation.Options{Provider: provider})
	if err != nil {
		return nil, tier.Config{}, nil, err
	}
	if o.verbose {
		logger := infra.NewLogger("cli").Output(cmd.ErrOrStderr()).With().Str("cmd", cmd.Name()).Logger()
		ctx = logger.WithContext(ctx)
	}
	return ctx, cfg, pipeline, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func newTiersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the available tiers and their models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range tier.IDs() {
				cfg, err := tier.Resolve(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\tchat=%s\timage=%s\tquality=%s\tsize=%s\n",
					cfg.ID, cfg.ChatModel, cfg.ImageModel, cfg.ImageQuality, cfg.ImageSize)
			}
			return nil
		},
	}
}
