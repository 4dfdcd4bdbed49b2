package query

import (
	"context"

	"bakerydir/internal/apperrors"
	bakerydomain "bakerydir/internal/bakery/domain"
	"bakerydir/internal/favorite/domain"
)

// ListFavoritesQuery represents the query for a user's favorited bakeries
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles listing favorites
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle returns the bakeries the user has favorited.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]bakerydomain.Bakery, error) {
	bakeries, err := h.repo.FindBakeriesByUser(ctx, q.UserID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list favorites", err)
	}
	if bakeries == nil {
		bakeries = []bakerydomain.Bakery{}
	}
	return bakeries, nil
}
