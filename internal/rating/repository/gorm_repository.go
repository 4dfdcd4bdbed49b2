package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bakerydomain "bakerydir/internal/bakery/domain"
	"bakerydir/internal/rating/domain"
)

// GormRatingRepository implements RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Upsert inserts the rating or overwrites the score when the (user, bakery)
// pair already has one.
func (r *GormRatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "bakery_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(rating).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

// RecomputeBakeryRating rewrites the bakery's denormalized rating from its
// current rating rows, inside one transaction. The bakery row is locked
// FOR UPDATE first, so concurrent submissions for the same bakery serialize
// and the score read always sees the latest committed upsert.
func (r *GormRatingRepository) RecomputeBakeryRating(ctx context.Context, bakeryID uint) (float64, error) {
	var newRating float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lookup := tx
		// SQLite has no row locks; its writes are single-writer anyway.
		if tx.Dialector.Name() == "postgres" {
			lookup = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var bakery bakerydomain.Bakery
		err := lookup.First(&bakery, bakeryID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBakeryNotFound
			}
			return fmt.Errorf("failed to lock bakery: %w", err)
		}

		var scores []int
		err = tx.Model(&domain.Rating{}).
			Where("bakery_id = ?", bakeryID).
			Pluck("score", &scores).Error
		if err != nil {
			return fmt.Errorf("failed to read scores: %w", err)
		}

		newRating = domain.AverageScore(scores)

		err = tx.Model(&bakerydomain.Bakery{}).
			Where("id = ?", bakeryID).
			Update("rating", newRating).Error
		if err != nil {
			return fmt.Errorf("failed to update bakery rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newRating, nil
}

// FindScore returns the user's score for a bakery, or nil when absent.
func (r *GormRatingRepository) FindScore(ctx context.Context, userID, bakeryID uint) (*int, error) {
	var rating domain.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND bakery_id = ?", userID, bakeryID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return &rating.Score, nil
}

// AutoMigrate runs database migrations
func (r *GormRatingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Rating{})
}
