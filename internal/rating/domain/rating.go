package domain

import (
	"context"
	"errors"
	"math"
)

// Score bounds for a rating submission.
const (
	MinScore = 1
	MaxScore = 5
)

// ErrBakeryNotFound is returned when the rated bakery does not exist.
var ErrBakeryNotFound = errors.New("bakery not found")

// Rating is one user's score for one bakery. The (user, bakery) pair is
// unique: a second submission overwrites the score, it never adds a row.
type Rating struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_ratings_user_bakery;not null"`
	BakeryID uint `json:"bakery_id" gorm:"uniqueIndex:idx_ratings_user_bakery;not null"`
	Score    int  `json:"score" gorm:"not null"`
}

// TableName specifies the table name
func (Rating) TableName() string {
	return "ratings"
}

// RoundRating rounds a mean to one decimal place, half away from zero:
// 3.25 rounds to 3.3, not 3.2. This is the single rounding rule for the
// denormalized bakery rating.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// AverageScore computes the rounded mean of a score set. A nil or empty
// set yields 0.
func AverageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return RoundRating(float64(total) / float64(len(scores)))
}

// RatingRepository defines the contract for rating data access.
type RatingRepository interface {
	// Upsert inserts the rating or overwrites the score of an existing
	// (user, bakery) row.
	Upsert(ctx context.Context, rating *Rating) error

	// RecomputeBakeryRating re-reads every score for the bakery, writes the
	// rounded mean back onto the bakery row and returns it. Implementations
	// must serialize concurrent recomputes per bakery so the written value
	// never reflects a stale read.
	RecomputeBakeryRating(ctx context.Context, bakeryID uint) (float64, error)

	// FindScore returns the user's score for the bakery, or nil if the user
	// has not rated it. Absence is not an error.
	FindScore(ctx context.Context, userID, bakeryID uint) (*int, error)
}
