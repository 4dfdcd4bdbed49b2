package query

import (
	"context"
	"errors"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/user/domain"
)

// GetProfileQuery represents the query for the authenticated user's profile
type GetProfileQuery struct {
	UserID uint
}

// GetProfileHandler handles profile lookups
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle resolves the profile for an authenticated identity. A valid token
// does not guarantee the row still exists; a deleted account is not found.
func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) (*domain.PublicUser, error) {
	if q.UserID == 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	user, err := h.repo.FindByID(ctx, q.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.NewStoreError("failed to find user", err)
	}

	profile := user.PublicWithCreatedAt()
	return &profile, nil
}
