package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewpos/terminal/internal/auth"
	"github.com/brewpos/terminal/internal/session"
	"github.com/brewpos/terminal/internal/settings"
)

// SecretStore defines the credential lookups needed by auth handlers.
// Satisfied by *settings.Store; narrow interface for testability.
type SecretStore interface {
	Secret(key string) (string, error)
}

// AuthHandler handles authentication and terminal lock endpoints.
type AuthHandler struct {
	secrets   SecretStore
	sessions  *session.Store
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(secrets SecretStore, sessions *session.Store, jwtSecret string) *AuthHandler {
	return &AuthHandler{secrets: secrets, sessions: sessions, jwtSecret: jwtSecret}
}

// RegisterPublicRoutes registers the endpoints reachable without a token.
func (h *AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

// RegisterRoutes registers the authenticated auth endpoints. These sit
// outside the lock gate: a locked terminal must still be able to unlock,
// log out, and report its state.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/lock", h.Lock)
	r.Post("/auth/unlock", h.Unlock)
	r.Get("/auth/session", h.Session)
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type unlockRequest struct {
	Pin string `json:"pin"`
}

type loginResponse struct {
	Token   string           `json:"token"`
	Session session.Snapshot `json:"session"`
}

// --- Handlers ---

// Login handles username + password authentication. A successful login
// activates the terminal session and clears any lock.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		return
	}

	username, err := h.secrets.Secret(settings.SecretUsername)
	if err != nil {
		h.credentialError(w, err)
		return
	}
	passwordHash, err := h.secrets.Secret(settings.SecretPassword)
	if err != nil {
		h.credentialError(w, err)
		return
	}

	if req.Username != username ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, req.Username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.sessions.Login()
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Session: h.sessions.Snapshot()})
}

// Logout ends the session from any state, including a locked terminal.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// Lock suspends the active session until a PIN unlock.
func (h *AuthHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Lock(); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// Unlock resumes a locked session after PIN verification.
func (h *AuthHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	pinHash, err := h.secrets.Secret(settings.SecretPIN)
	if err != nil {
		h.credentialError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(req.Pin)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid pin"})
		return
	}

	if err := h.sessions.Unlock(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "terminal is not locked"})
		return
	}
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// Session reports the current session state.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// credentialError hides whether a credential is missing or the lookup failed.
func (h *AuthHandler) credentialError(w http.ResponseWriter, err error) {
	if errors.Is(err, settings.ErrNotFound) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
