package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/settings"
)

// ThemeStore defines the persistence needed by the theme handler.
// Satisfied by *settings.Store.
type ThemeStore interface {
	LoadTheme() (settings.Theme, error)
	SaveTheme(settings.Theme) error
}

// ThemeHandler persists the display preference.
type ThemeHandler struct {
	store ThemeStore
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(store ThemeStore) *ThemeHandler {
	return &ThemeHandler{store: store}
}

// RegisterRoutes registers theme endpoints on the given Chi router.
func (h *ThemeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings/theme", h.Get)
	r.Put("/settings/theme", h.Set)
}

// Get returns the persisted theme, defaulting to light.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.LoadTheme()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

// Set stores the theme.
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var theme settings.Theme
	if err := json.NewDecoder(r.Body).Decode(&theme); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.SaveTheme(theme); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, theme)
}
