package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/middleware"
	"bakerydir/internal/rating/usecase/command"
	"bakerydir/internal/rating/usecase/query"
	"bakerydir/pkg/auth"
	"bakerydir/pkg/logger"
)

// RatingHandler handles HTTP requests for ratings
type RatingHandler struct {
	submitHandler   *command.SubmitRatingHandler
	myRatingHandler *query.GetMyRatingHandler
	tokens          *auth.TokenManager
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(
	submitHandler *command.SubmitRatingHandler,
	myRatingHandler *query.GetMyRatingHandler,
	tokens *auth.TokenManager,
) *RatingHandler {
	return &RatingHandler{
		submitHandler:   submitHandler,
		myRatingHandler: myRatingHandler,
		tokens:          tokens,
	}
}

// Submit handles POST /api/ratings
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req struct {
		BakeryID uint `json:"bakeryId"`
		Score    int  `json:"score"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newRating, err := h.submitHandler.Handle(r.Context(), command.SubmitRatingCommand{
		UserID:   userID,
		BakeryID: req.BakeryID,
		Score:    req.Score,
	})
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"newRating": newRating,
	})
}

// MyRating handles GET /api/ratings/my-rating/{bakeryId}
func (h *RatingHandler) MyRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	bakeryID, err := strconv.ParseUint(mux.Vars(r)["bakeryId"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid bakery ID")
		return
	}

	score, err := h.myRatingHandler.Handle(r.Context(), query.GetMyRatingQuery{
		UserID:   userID,
		BakeryID: uint(bakeryID),
	})
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	// score stays null in the response when the caller has not rated yet
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"score":   score,
	})
}

// RegisterRoutes registers all rating routes. Every route is protected.
func (h *RatingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ratings", middleware.Authenticate(h.tokens, h.Submit)).Methods("POST")
	router.HandleFunc("/api/ratings/my-rating/{bakeryId}", middleware.Authenticate(h.tokens, h.MyRating)).Methods("GET")
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
