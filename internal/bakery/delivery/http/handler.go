package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/bakery/usecase/query"
	"bakerydir/pkg/logger"
)

// BakeryHandler handles HTTP requests for the bakery directory
type BakeryHandler struct {
	listHandler *query.ListBakeriesHandler
}

// NewBakeryHandler creates a new bakery handler
func NewBakeryHandler(listHandler *query.ListBakeriesHandler) *BakeryHandler {
	return &BakeryHandler{listHandler: listHandler}
}

// List handles GET /api/items
func (h *BakeryHandler) List(w http.ResponseWriter, r *http.Request) {
	bakeries, err := h.listHandler.Handle(r.Context())
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    bakeries,
	})
}

// RegisterRoutes registers all bakery routes
func (h *BakeryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/items", h.List).Methods("GET")
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

func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	respondError(w, status, apperrors.PublicMessage(err))
}
