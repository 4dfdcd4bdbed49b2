package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	bakerydomain "bakerydir/internal/bakery/domain"
	"bakerydir/internal/favorite/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Create inserts a favorite. The unique (user_id, bakery_id) index rejects
// a second insert of the same pair, which maps to domain.ErrDuplicate.
func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes a favorite. Deleting an absent pair succeeds: removal is
// idempotent from the caller's perspective.
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID, bakeryID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND bakery_id = ?", userID, bakeryID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	return nil
}

// FindBakeriesByUser retrieves the bakeries a user has favorited.
func (r *GormFavoriteRepository) FindBakeriesByUser(ctx context.Context, userID uint) ([]bakerydomain.Bakery, error) {
	var bakeries []bakerydomain.Bakery
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.bakery_id = bakeries.id").
		Where("favorites.user_id = ?", userID).
		Order("bakeries.name ASC").
		Find(&bakeries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return bakeries, nil
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}
