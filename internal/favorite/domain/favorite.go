package domain

import (
	"context"
	"errors"

	bakerydomain "bakerydir/internal/bakery/domain"
)

// ErrDuplicate is returned when the (user, bakery) pair is already favorited.
var ErrDuplicate = errors.New("favorite already exists")

// Favorite links a user to a bakery. The pair is unique: favoriting twice
// is a conflict, not a second row.
type Favorite struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_favorites_user_bakery;not null"`
	BakeryID uint `json:"bakery_id" gorm:"uniqueIndex:idx_favorites_user_bakery;not null"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteRepository defines the contract for favorite data access.
// Delete is idempotent: removing an absent favorite is not an error.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, userID, bakeryID uint) error
	FindBakeriesByUser(ctx context.Context, userID uint) ([]bakerydomain.Bakery, error)
}
