package domain

import (
	"context"
	"time"
)

// Bakery represents a directory entry. Rating is denormalized: it holds the
// mean of all rating rows for the bakery, rounded to one decimal place, and
// is rewritten after every rating submission.
type Bakery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Bakery) TableName() string {
	return "bakeries"
}

// BakeryRepository defines the contract for bakery data access. Single-row
// lookups live with the rating recompute, which reads the bakery under its
// own row lock.
type BakeryRepository interface {
	FindAll(ctx context.Context) ([]Bakery, error)
}
