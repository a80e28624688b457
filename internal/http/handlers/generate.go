package handlers

import (
	"net/http"
	"strings"

	"giftcard/internal/domain"
	"giftcard/internal/tier"

	"github.com/go-chi/chi/v5"
)

// Describe handles POST /{tier}/describe.
func (a *App) Describe(w http.ResponseWriter, r *http.Request) {
	cfg, err := tier.Resolve(chi.URLParam(r, "tier"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var req domain.CopyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	req.GiftcardName = strings.TrimSpace(req.GiftcardName)
	req.Prompt = strings.TrimSpace(req.Prompt)
	if err := validateRequest(req); err != nil {
		a.fail(w, r, err)
		return
	}
	pipeline, err := a.pipeline(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := pipeline.GenerateCopy(r.Context(), cfg, req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, res)
}

// Image handles POST /{tier}/image.
func (a *App) Image(w http.ResponseWriter, r *http.Request) {
	cfg, err := tier.Resolve(chi.URLParam(r, "tier"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var req domain.ImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	req.GiftcardName = strings.TrimSpace(req.GiftcardName)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateRequest(req); err != nil {
		a.fail(w, r, err)
		return
	}
	pipeline, err := a.pipeline(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := pipeline.GenerateImage(r.Context(), cfg, req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, res)
}
