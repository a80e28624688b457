package handlers

import (
	"net/http"
)

// Health reports liveness without touching the provider.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
