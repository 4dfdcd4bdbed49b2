package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bakerydir/internal/middleware"
	"bakerydir/internal/scraping/client"
	"bakerydir/pkg/auth"
	"bakerydir/pkg/logger"
)

// ScrapingHandler handles HTTP requests for the lead-scraping trigger
type ScrapingHandler struct {
	client *client.Client
	tokens *auth.TokenManager
}

// NewScrapingHandler creates a new scraping handler
func NewScrapingHandler(c *client.Client, tokens *auth.TokenManager) *ScrapingHandler {
	return &ScrapingHandler{client: c, tokens: tokens}
}

// Trigger handles POST /api/scraping/trigger
func (h *ScrapingHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.Email(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req struct {
		BusinessType string `json:"businessType"`
		City         string `json:"city"`
		Country      string `json:"country"`
		MaxLeads     int    `json:"maxLeads"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.client.Trigger(r.Context(), client.TriggerRequest{
		BusinessType: req.BusinessType,
		City:         req.City,
		Country:      req.Country,
		MaxLeads:     req.MaxLeads,
		UserEmail:    email,
	})
	if err != nil {
		if errors.Is(err, client.ErrNotConfigured) {
			respondError(w, http.StatusInternalServerError, "n8n Webhook URL not configured")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Scraping trigger failed")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	message := "Scraping triggered successfully"
	if result.Degraded {
		message = "Scraping workflow unreachable, returning mocked result"
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"degraded": result.Degraded,
		"message":  message,
		"sheetUrl": result.SheetURL,
	})
}

// RegisterRoutes registers all scraping routes. Every route is protected.
func (h *ScrapingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/scraping/trigger", middleware.Authenticate(h.tokens, h.Trigger)).Methods("POST")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
