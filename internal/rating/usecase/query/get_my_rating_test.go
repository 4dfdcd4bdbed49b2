package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/rating/domain"
	"bakerydir/internal/rating/usecase/query"
)

type fakeScoreRepository struct {
	scores map[uint]int // keyed by bakeryID for a single test user
}

func (r *fakeScoreRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	return nil
}

func (r *fakeScoreRepository) RecomputeBakeryRating(ctx context.Context, bakeryID uint) (float64, error) {
	return 0, nil
}

func (r *fakeScoreRepository) FindScore(ctx context.Context, userID, bakeryID uint) (*int, error) {
	if s, ok := r.scores[bakeryID]; ok {
		return &s, nil
	}
	return nil, nil
}

func TestGetMyRating_ReturnsScore(t *testing.T) {
	handler := query.NewGetMyRatingHandler(&fakeScoreRepository{scores: map[uint]int{7: 4}})

	score, err := handler.Handle(context.Background(), query.GetMyRatingQuery{UserID: 1, BakeryID: 7})
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 4, *score)
}

func TestGetMyRating_UnratedIsNilNotError(t *testing.T) {
	handler := query.NewGetMyRatingHandler(&fakeScoreRepository{scores: map[uint]int{}})

	score, err := handler.Handle(context.Background(), query.GetMyRatingQuery{UserID: 1, BakeryID: 7})
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestGetMyRating_RejectsZeroBakeryID(t *testing.T) {
	handler := query.NewGetMyRatingHandler(&fakeScoreRepository{})

	_, err := handler.Handle(context.Background(), query.GetMyRatingQuery{UserID: 1, BakeryID: 0})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}
