package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"bakerydir/internal/rating/domain"
)

var tracer = otel.Tracer("rating-repository")

// TracingRatingRepository wraps GormRatingRepository with tracing
type TracingRatingRepository struct {
	*GormRatingRepository
}

// NewTracingRatingRepository creates a rating repository with tracing
func NewTracingRatingRepository(db *gorm.DB) *TracingRatingRepository {
	return &TracingRatingRepository{GormRatingRepository: NewGormRatingRepository(db)}
}

// Upsert with tracing
func (r *TracingRatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	ctx, span := tracer.Start(ctx, "repository.Upsert",
		trace.WithAttributes(
			attribute.Int("rating.user_id", int(rating.UserID)),
			attribute.Int("rating.bakery_id", int(rating.BakeryID)),
			attribute.Int("rating.score", rating.Score),
		),
	)
	defer span.End()

	if err := r.GormRatingRepository.Upsert(ctx, rating); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// RecomputeBakeryRating with tracing
func (r *TracingRatingRepository) RecomputeBakeryRating(ctx context.Context, bakeryID uint) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.RecomputeBakeryRating",
		trace.WithAttributes(attribute.Int("bakery.id", int(bakeryID))),
	)
	defer span.End()

	newRating, err := r.GormRatingRepository.RecomputeBakeryRating(ctx, bakeryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("bakery.rating", newRating))
	return newRating, nil
}

// FindScore with tracing
func (r *TracingRatingRepository) FindScore(ctx context.Context, userID, bakeryID uint) (*int, error) {
	ctx, span := tracer.Start(ctx, "repository.FindScore",
		trace.WithAttributes(
			attribute.Int("rating.user_id", int(userID)),
			attribute.Int("rating.bakery_id", int(bakeryID)),
		),
	)
	defer span.End()

	score, err := r.GormRatingRepository.FindScore(ctx, userID, bakeryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return score, nil
}
