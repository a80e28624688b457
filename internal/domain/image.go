package domain

// MediaTypePNG is the only media type the image path produces; the provider
// returns inline base64 data, never a link.
const MediaTypePNG = "image/png"

// ImageRequest carries the user input for an image call.
type ImageRequest struct {
	GiftcardName string `json:"giftcard_name" validate:"required,max=200"`
	Description  string `json:"description" validate:"required,max=4000"`
}

// ImageResult is returned to the caller as JSON.
type ImageResult struct {
	ImageBase64 string `json:"image_base64"`
	MediaType   string `json:"media_type"`
}
