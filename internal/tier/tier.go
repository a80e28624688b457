// Package tier maps tier identifiers to the upstream models and image
// settings used for them.
package tier

import (
	"fmt"

	"giftcard/internal/domain"
)

// ImageQuality is the quality setting sent with image generation calls.
type ImageQuality string

const (
	QualityLow  ImageQuality = "low"
	QualityHigh ImageQuality = "high"
)

const (
	Tier1 = "tier1"
	Tier2 = "tier2"
)

// Config is the fixed bundle of upstream settings for a tier.
type Config struct {
	ID           string
	ChatModel    string
	ImageModel   string
	ImageQuality ImageQuality
	ImageSize    string
}

var tiers = [...]Config{
	{
		ID:           Tier1,
		ChatModel:    "gpt-3.5-turbo",
		ImageModel:   "gpt-image-1-mini",
		ImageQuality: QualityLow,
		ImageSize:    "1024x1024",
	},
	{
		ID:           Tier2,
		ChatModel:    "gpt-4o-mini",
		ImageModel:   "gpt-image-1.5",
		ImageQuality: QualityHigh,
		ImageSize:    "1024x1024",
	},
}

// Resolve returns the configuration for id. Only the exact identifiers
// tier1 and tier2 match.
func Resolve(id string) (Config, error) {
	for _, cfg := range tiers {
		if cfg.ID == id {
			return cfg, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", domain.ErrInvalidTier, id)
}

// IDs lists the known tier identifiers in table order.
func IDs() []string {
	ids := make([]string, 0, len(tiers))
	for _, cfg := range tiers {
		ids = append(ids, cfg.ID)
	}
	return ids
}
