package query

import (
	"context"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/bakery/domain"
)

// ListBakeriesHandler handles the directory listing query
type ListBakeriesHandler struct {
	repo domain.BakeryRepository
}

// NewListBakeriesHandler creates a new list bakeries handler
func NewListBakeriesHandler(repo domain.BakeryRepository) *ListBakeriesHandler {
	return &ListBakeriesHandler{repo: repo}
}

// Handle returns every bakery in the directory.
func (h *ListBakeriesHandler) Handle(ctx context.Context) ([]domain.Bakery, error) {
	bakeries, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list bakeries", err)
	}
	if bakeries == nil {
		bakeries = []domain.Bakery{}
	}
	return bakeries, nil
}
