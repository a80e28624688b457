package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"giftcard/internal/domain"
)

type copyPayload struct {
	Description             string   `json:"description"`
	Tag                     string   `json:"tag"`
	DescriptionsMedium      []string `json:"descriptions_medium"`
	DescriptionsShort       []string `json:"descriptions_short"`
	Tags                    []string `json:"tags"`
	GiftcardNameSuggestions []string `json:"giftcard_name_suggestions"`
}

func parseCopyPayload(raw string) (copyPayload, error) {
	var payload copyPayload
	cleaned := trimCodeFence(raw)
	if cleaned == "" {
		return payload, fmt.Errorf("%w: empty reply", domain.ErrUpstreamFormat)
	}
	if !strings.HasPrefix(cleaned, "{") {
		return payload, fmt.Errorf("%w: reply is not a JSON object", domain.ErrUpstreamFormat)
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return copyPayload{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFormat, err)
	}
	return payload, nil
}

func normalizeCopy(p copyPayload) *domain.CopyResult {
	res := &domain.CopyResult{
		Description:             strings.TrimSpace(p.Description),
		Tag:                     strings.TrimSpace(p.Tag),
		DescriptionsMedium:      normalizeList(p.DescriptionsMedium, domain.MaxMediumDescriptions),
		DescriptionsShort:       normalizeList(p.DescriptionsShort, domain.MaxShortDescriptions),
		Tags:                    normalizeList(p.Tags, domain.MaxTags),
		GiftcardNameSuggestions: normalizeList(p.GiftcardNameSuggestions, domain.MaxNameSuggestions),
	}
	if res.Description == "" {
		res.Description = first(res.DescriptionsMedium)
	}
	if res.Tag == "" {
		res.Tag = first(res.Tags)
	}
	return res
}

// normalizeList trims every element and caps the list at limit. The result
// is never nil so it encodes as [] rather than null.
func normalizeList(values []string, limit int) []string {
	if len(values) > limit {
		values = values[:limit]
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// trimCodeFence strips a surrounding markdown code fence. Any other text
// around the object is left in place and fails to decode.
func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
