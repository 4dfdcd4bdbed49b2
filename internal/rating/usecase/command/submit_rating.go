package command

import (
	"context"
	"errors"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/rating/domain"
	"bakerydir/kafka"
	"bakerydir/pkg/logger"
)

// SubmitRatingCommand represents the command to rate a bakery
type SubmitRatingCommand struct {
	UserID   uint
	BakeryID uint
	Score    int
}

// BakeryCacheInvalidator drops cached bakery listings after the denormalized
// rating changes. Optional; nil disables invalidation.
type BakeryCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// SubmitRatingHandler handles rating submissions
type SubmitRatingHandler struct {
	repo      domain.RatingRepository
	cache     BakeryCacheInvalidator
	publisher *kafka.Publisher
}

// NewSubmitRatingHandler creates a new submit rating handler
func NewSubmitRatingHandler(repo domain.RatingRepository, cache BakeryCacheInvalidator, publisher *kafka.Publisher) *SubmitRatingHandler {
	return &SubmitRatingHandler{repo: repo, cache: cache, publisher: publisher}
}

// Handle validates the submission, upserts the rating and recomputes the
// bakery's denormalized average, returning the new value.
//
// Known consistency gap: the recompute itself is atomic and serialized per
// bakery, but it is a second store call after the upsert. If it fails, the
// rating row is updated while the stored average stays stale until the next
// successful submission. The error's step tag makes that case visible.
func (h *SubmitRatingHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) (float64, error) {
	if cmd.BakeryID == 0 || cmd.Score < domain.MinScore || cmd.Score > domain.MaxScore {
		return 0, apperrors.NewValidationError("Invalid rating")
	}

	rating := &domain.Rating{
		UserID:   cmd.UserID,
		BakeryID: cmd.BakeryID,
		Score:    cmd.Score,
	}
	if err := h.repo.Upsert(ctx, rating); err != nil {
		return 0, apperrors.NewRatingUpdateError("upsert", err)
	}

	newRating, err := h.repo.RecomputeBakeryRating(ctx, cmd.BakeryID)
	if err != nil {
		if errors.Is(err, domain.ErrBakeryNotFound) {
			return 0, apperrors.NewNotFoundError("Bakery not found")
		}
		return 0, apperrors.NewRatingUpdateError("recompute", err)
	}

	if h.cache != nil {
		h.cache.Invalidate(ctx)
	}

	if err := h.publisher.PublishRatingSubmitted(ctx, kafka.RatingSubmittedEvent{
		UserID:    cmd.UserID,
		BakeryID:  cmd.BakeryID,
		Score:     cmd.Score,
		NewRating: newRating,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish rating submitted event")
	}

	return newRating, nil
}
