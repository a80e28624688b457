package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"giftcard/internal/domain"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request body too large", domain.ErrInvalidRequest)
		}
		return fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidRequest)
	}
	return nil
}

func validateRequest(v any) error {
	return domain.Validate(v)
}
