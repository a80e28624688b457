// Package openai adapts the OpenAI SDK to the generation.Provider contract.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"giftcard/internal/domain"
	"giftcard/internal/generation"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const defaultTimeout = 120 * time.Second

type Options struct {
	APIKey       string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
	Timeout      time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	api openaisdk.Client
}

// NewClient fails with domain.ErrConfiguration when the API key is blank.
// SDK retries are disabled; failures surface to the caller on the first
// attempt.
func NewClient(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("%w: openai api key is required", domain.ErrConfiguration)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	reqOpts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(strings.TrimRight(base, "/")+"/"))
	}
	if org := strings.TrimSpace(opts.Organization); org != "" {
		reqOpts = append(reqOpts, option.WithOrganization(org))
	}
	return &Client{api: openaisdk.NewClient(reqOpts...)}, nil
}

// CompleteJSON sends a JSON-mode chat completion and returns the first
// choice's content.
func (c *Client) CompleteJSON(ctx context.Context, model string, messages []generation.Message) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(model),
		Messages: toChatMessages(messages),
		ResponseFormat: openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", domain.ErrUpstreamFormat)
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage returns the inline base64 payload of every image in the
// reply. GPT Image models never return URLs.
func (c *Client) GenerateImage(ctx context.Context, params generation.ImageParams) ([]generation.GeneratedImage, error) {
	n := params.N
	if n <= 0 {
		n = 1
	}
	resp, err := c.api.Images.Generate(ctx, openaisdk.ImageGenerateParams{
		Prompt:  params.Prompt,
		Model:   openaisdk.ImageModel(params.Model),
		N:       openaisdk.Int(int64(n)),
		Size:    openaisdk.ImageGenerateParamsSize(params.Size),
		Quality: openaisdk.ImageGenerateParamsQuality(params.Quality),
	})
	if err != nil {
		return nil, wrapError("image generation", err)
	}
	images := make([]generation.GeneratedImage, 0, len(resp.Data))
	for _, img := range resp.Data {
		images = append(images, generation.GeneratedImage{B64JSON: img.B64JSON})
	}
	return images, nil
}

func toChatMessages(messages []generation.Message) []openaisdk.ChatCompletionMessageParamUnion {
	out := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case generation.RoleSystem:
			out = append(out, openaisdk.SystemMessage(m.Content))
		case generation.RoleAssistant:
			out = append(out, openaisdk.AssistantMessage(m.Content))
		default:
			out = append(out, openaisdk.UserMessage(m.Content))
		}
	}
	return out
}

func wrapError(op string, err error) error {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s: openai status %d: %w", domain.ErrUpstreamTransport, op, apiErr.StatusCode, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamTransport, op, err)
}

var _ generation.Provider = (*Client)(nil)
