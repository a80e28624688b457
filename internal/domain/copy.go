package domain

// Cardinality limits applied to every CopyResult regardless of what the
// provider returned.
const (
	MaxMediumDescriptions = 2
	MaxShortDescriptions  = 2
	MaxTags               = 12
	MaxNameSuggestions    = 5
)

// CopyRequest carries the user input for a describe call.
type CopyRequest struct {
	GiftcardName string `json:"giftcard_name" validate:"required,max=200"`
	Prompt       string `json:"prompt" validate:"required,max=2000"`
}

// CopyResult is the canonical, normalized copy bundle. Description and Tag
// are the single-value view of the same bundle; they are filled from the
// provider's own description/tag keys when present, otherwise from the first
// medium description and the first tag.
type CopyResult struct {
	Description             string   `json:"description"`
	Tag                     string   `json:"tag"`
	DescriptionsMedium      []string `json:"descriptions_medium"`
	DescriptionsShort       []string `json:"descriptions_short"`
	Tags                    []string `json:"tags"`
	GiftcardNameSuggestions []string `json:"giftcard_name_suggestions"`
}
