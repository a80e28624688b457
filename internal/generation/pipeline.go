package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"giftcard/internal/domain"
	"giftcard/internal/tier"

	"github.com/rs/zerolog"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	OperationCopy  = "copy"
	OperationImage = "image"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// ImageParams describes a single image generation call.
type ImageParams struct {
	Model   string
	Prompt  string
	Size    string
	Quality string
	N       int
}

// GeneratedImage is one element of an image reply.
type GeneratedImage struct {
	B64JSON string
}

// Provider is the upstream generation service. Implementations must be safe
// for concurrent use.
type Provider interface {
	CompleteJSON(ctx context.Context, model string, messages []Message) (string, error)
	GenerateImage(ctx context.Context, params ImageParams) ([]GeneratedImage, error)
}

type Options struct {
	Provider Provider
	// OnComplete is called once per operation with its outcome.
	OnComplete func(operation, tierID string, err error, elapsed time.Duration)
}

// Pipeline is stateless apart from its provider handle.
type Pipeline struct {
	provider   Provider
	onComplete func(operation, tierID string, err error, elapsed time.Duration)
}

func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("%w: provider is required", domain.ErrConfiguration)
	}
	return &Pipeline{provider: opts.Provider, onComplete: opts.OnComplete}, nil
}

// GenerateCopy asks the tier's chat model for a copy bundle and normalizes
// the reply. No partial result is returned on failure.
func (p *Pipeline) GenerateCopy(ctx context.Context, cfg tier.Config, req domain.CopyRequest) (res *domain.CopyResult, err error) {
	start := time.Now()
	defer func() { p.finish(ctx, OperationCopy, cfg, start, err) }()

	raw, err := p.provider.CompleteJSON(ctx, cfg.ChatModel, buildCopyMessages(req))
	if err != nil {
		return nil, fmt.Errorf("generate copy: %w", err)
	}
	payload, err := parseCopyPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("generate copy: %w", err)
	}
	return normalizeCopy(payload), nil
}

// GenerateImage requests exactly one image from the tier's image model.
func (p *Pipeline) GenerateImage(ctx context.Context, cfg tier.Config, req domain.ImageRequest) (res *domain.ImageResult, err error) {
	start := time.Now()
	defer func() { p.finish(ctx, OperationImage, cfg, start, err) }()

	images, err := p.provider.GenerateImage(ctx, ImageParams{
		Model:   cfg.ImageModel,
		Prompt:  buildImagePrompt(req),
		Size:    cfg.ImageSize,
		Quality: string(cfg.ImageQuality),
		N:       1,
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("generate image: %w", domain.ErrUpstreamEmptyResult)
	}
	b64 := strings.TrimSpace(images[0].B64JSON)
	if b64 == "" {
		return nil, fmt.Errorf("generate image: %w: blank payload", domain.ErrUpstreamEmptyResult)
	}
	return &domain.ImageResult{ImageBase64: b64, MediaType: domain.MediaTypePNG}, nil
}

func (p *Pipeline) finish(ctx context.Context, operation string, cfg tier.Config, start time.Time, err error) {
	elapsed := time.Since(start)
	logger := zerolog.Ctx(ctx)
	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
		if errors.Is(err, context.Canceled) {
			event = logger.Debug().Err(err)
		}
	}
	model := cfg.ChatModel
	if operation == OperationImage {
		model = cfg.ImageModel
	}
	event.
		Str("operation", operation).
		Str("tier", cfg.ID).
		Str("model", model).
		Dur("elapsed", elapsed).
		Msg("generation finished")
	if p.onComplete != nil {
		p.onComplete(operation, cfg.ID, err, elapsed)
	}
}
