package generation

import (
	"fmt"
	"strings"

	"giftcard/internal/domain"
)

const copySystemPrompt = `You are a gift card copywriter for digital wallet gift cards.

Given a gift card name and a customer prompt, return ALL of the following in one JSON object:

1. descriptions_medium: array of exactly 2 different medium-length descriptions (4-5 sentences each). Base both on the prompt and gift card name; vary tone or angle slightly.
2. descriptions_short: array of exactly 2 different short descriptions (1 sentence each). Same theme, more concise.
3. tags: array of about 10 tags. Each tag is 1-3 words. Mix promotion type, occasion and vibe.
4. giftcard_name_suggestions: array of exactly 5 improved versions of the gift card name. Keep the intent but make them clearer, catchier or more professional.

Context: infer the business domain and promotion type (birthday, festival, sale, thank-you, etc.) from the prompt and make all copy fit that type.

Reply ONLY with valid JSON in exactly this shape (no other keys):
{"descriptions_medium":["...","..."],"descriptions_short":["...","..."],"tags":["...","...",...],"giftcard_name_suggestions":["...","...","...","...","..."]}`

func buildCopyMessages(req domain.CopyRequest) []Message {
	user := fmt.Sprintf("Gift card name: %s\nPrompt: %s", req.GiftcardName, req.Prompt)
	return []Message{
		{Role: RoleSystem, Content: copySystemPrompt},
		{Role: RoleUser, Content: user},
	}
}

func buildImagePrompt(req domain.ImageRequest) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Background image that visually depicts the following: %s. ", strings.TrimSpace(req.Description))
	fmt.Fprintf(sb, "Theme or subject: %s. ", strings.TrimSpace(req.GiftcardName))
	sb.WriteString("Purely visual scene, no cards, no text or writing of any kind. Clean and professional.")
	return sb.String()
}
