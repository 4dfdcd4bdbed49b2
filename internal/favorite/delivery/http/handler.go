package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/favorite/usecase/command"
	"bakerydir/internal/favorite/usecase/query"
	"bakerydir/internal/middleware"
	"bakerydir/pkg/auth"
	"bakerydir/pkg/logger"
)

// FavoriteHandler handles HTTP requests for favorites
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
	tokens        *auth.TokenManager
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	tokens *auth.TokenManager,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:    addHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
		tokens:        tokens,
	}
}

// Add handles POST /api/favorites/{itemId}
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	itemID, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID:   userID,
		BakeryID: itemID,
	}); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Added to favorites",
	})
}

// Remove handles DELETE /api/favorites/{itemId}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	itemID, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID:   userID,
		BakeryID: itemID,
	}); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Removed from favorites",
	})
}

// List handles GET /api/favorites/my-favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	bakeries, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    bakeries,
	})
}

// RegisterRoutes registers all favorite routes. Every route is protected.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	// my-favorites first so it is not captured by the {itemId} route
	router.HandleFunc("/api/favorites/my-favorites", middleware.Authenticate(h.tokens, h.List)).Methods("GET")
	router.HandleFunc("/api/favorites/{itemId}", middleware.Authenticate(h.tokens, h.Add)).Methods("POST")
	router.HandleFunc("/api/favorites/{itemId}", middleware.Authenticate(h.tokens, h.Remove)).Methods("DELETE")
}

func parseItemID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["itemId"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
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
