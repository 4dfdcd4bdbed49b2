package command

import (
	"context"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/favorite/domain"
)

// RemoveFavoriteCommand represents the command to unfavorite a bakery
type RemoveFavoriteCommand struct {
	UserID   uint
	BakeryID uint
}

// RemoveFavoriteHandler handles removing favorites
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command. Removing a favorite that does
// not exist succeeds: the end state is the same either way.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.BakeryID == 0 {
		return apperrors.NewValidationError("invalid item id")
	}

	if err := h.repo.Delete(ctx, cmd.UserID, cmd.BakeryID); err != nil {
		return apperrors.NewStoreError("failed to remove favorite", err)
	}
	return nil
}
