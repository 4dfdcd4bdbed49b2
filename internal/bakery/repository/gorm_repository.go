package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bakerydir/internal/bakery/domain"
)

// GormBakeryRepository implements BakeryRepository using GORM
type GormBakeryRepository struct {
	db *gorm.DB
}

// NewGormBakeryRepository creates a new GORM bakery repository
func NewGormBakeryRepository(db *gorm.DB) *GormBakeryRepository {
	return &GormBakeryRepository{db: db}
}

// FindAll retrieves all bakeries ordered by name
func (r *GormBakeryRepository) FindAll(ctx context.Context) ([]domain.Bakery, error) {
	var bakeries []domain.Bakery
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&bakeries).Error; err != nil {
		return nil, fmt.Errorf("failed to find bakeries: %w", err)
	}
	return bakeries, nil
}

// AutoMigrate runs database migrations
func (r *GormBakeryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Bakery{})
}
