package command

import (
	"context"
	"errors"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/favorite/domain"
)

// AddFavoriteCommand represents the command to favorite a bakery
type AddFavoriteCommand struct {
	UserID   uint
	BakeryID uint
}

// AddFavoriteHandler handles adding favorites
type AddFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
	if cmd.BakeryID == 0 {
		return apperrors.NewValidationError("invalid item id")
	}

	err := h.repo.Create(ctx, &domain.Favorite{UserID: cmd.UserID, BakeryID: cmd.BakeryID})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperrors.NewDuplicateError("Already a favorite")
		}
		return apperrors.NewStoreError("failed to add favorite", err)
	}
	return nil
}
