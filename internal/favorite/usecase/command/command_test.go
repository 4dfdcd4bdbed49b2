package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakerydir/internal/apperrors"
	bakerydomain "bakerydir/internal/bakery/domain"
	"bakerydir/internal/favorite/domain"
	"bakerydir/internal/favorite/usecase/command"
)

type favKey struct {
	userID   uint
	bakeryID uint
}

type fakeFavoriteRepository struct {
	rows map[favKey]bool
}

func newFakeFavoriteRepository() *fakeFavoriteRepository {
	return &fakeFavoriteRepository{rows: map[favKey]bool{}}
}

func (r *fakeFavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	k := favKey{fav.UserID, fav.BakeryID}
	if r.rows[k] {
		return domain.ErrDuplicate
	}
	r.rows[k] = true
	return nil
}

func (r *fakeFavoriteRepository) Delete(ctx context.Context, userID, bakeryID uint) error {
	delete(r.rows, favKey{userID, bakeryID})
	return nil
}

func (r *fakeFavoriteRepository) FindBakeriesByUser(ctx context.Context, userID uint) ([]bakerydomain.Bakery, error) {
	return nil, nil
}

func TestAddFavorite(t *testing.T) {
	repo := newFakeFavoriteRepository()
	handler := command.NewAddFavoriteHandler(repo)

	err := handler.Handle(context.Background(), command.AddFavoriteCommand{UserID: 1, BakeryID: 2})
	require.NoError(t, err)
	assert.Len(t, repo.rows, 1)
}

func TestAddFavorite_DuplicatePair(t *testing.T) {
	repo := newFakeFavoriteRepository()
	handler := command.NewAddFavoriteHandler(repo)

	require.NoError(t, handler.Handle(context.Background(), command.AddFavoriteCommand{UserID: 1, BakeryID: 2}))

	err := handler.Handle(context.Background(), command.AddFavoriteCommand{UserID: 1, BakeryID: 2})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeDuplicate, apperrors.TypeOf(err))
	assert.Equal(t, "Already a favorite", apperrors.PublicMessage(err))
	assert.Len(t, repo.rows, 1)
}

func TestAddFavorite_SamePairDifferentUsers(t *testing.T) {
	repo := newFakeFavoriteRepository()
	handler := command.NewAddFavoriteHandler(repo)

	require.NoError(t, handler.Handle(context.Background(), command.AddFavoriteCommand{UserID: 1, BakeryID: 2}))
	require.NoError(t, handler.Handle(context.Background(), command.AddFavoriteCommand{UserID: 3, BakeryID: 2}))
	assert.Len(t, repo.rows, 2)
}

func TestRemoveFavorite_IsIdempotent(t *testing.T) {
	repo := newFakeFavoriteRepository()
	add := command.NewAddFavoriteHandler(repo)
	remove := command.NewRemoveFavoriteHandler(repo)

	require.NoError(t, add.Handle(context.Background(), command.AddFavoriteCommand{UserID: 1, BakeryID: 2}))

	cmd := command.RemoveFavoriteCommand{UserID: 1, BakeryID: 2}
	require.NoError(t, remove.Handle(context.Background(), cmd))
	assert.Empty(t, repo.rows)

	// Removing again succeeds: the end state is what matters.
	require.NoError(t, remove.Handle(context.Background(), cmd))
}

func TestFavorite_RejectsZeroItemID(t *testing.T) {
	repo := newFakeFavoriteRepository()

	err := command.NewAddFavoriteHandler(repo).Handle(context.Background(), command.AddFavoriteCommand{UserID: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

	err = command.NewRemoveFavoriteHandler(repo).Handle(context.Background(), command.RemoveFavoriteCommand{UserID: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}
