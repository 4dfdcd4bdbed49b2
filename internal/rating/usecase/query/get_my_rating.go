package query

import (
	"context"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/rating/domain"
)

// GetMyRatingQuery represents the query for the caller's own rating
type GetMyRatingQuery struct {
	UserID   uint
	BakeryID uint
}

// GetMyRatingHandler handles own-rating lookups
type GetMyRatingHandler struct {
	repo domain.RatingRepository
}

// NewGetMyRatingHandler creates a new get my rating handler
func NewGetMyRatingHandler(repo domain.RatingRepository) *GetMyRatingHandler {
	return &GetMyRatingHandler{repo: repo}
}

// Handle returns the caller's score for a bakery. A nil score means the
// caller has not rated it; that case is not an error.
func (h *GetMyRatingHandler) Handle(ctx context.Context, q GetMyRatingQuery) (*int, error) {
	if q.BakeryID == 0 {
		return nil, apperrors.NewValidationError("invalid bakery id")
	}

	score, err := h.repo.FindScore(ctx, q.UserID, q.BakeryID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to find rating", err)
	}
	return score, nil
}
