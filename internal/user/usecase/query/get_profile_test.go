package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/user/domain"
	"bakerydir/internal/user/usecase/query"
)

type fakeUserRepository struct {
	user *domain.User
}

func (r *fakeUserRepository) Create(ctx context.Context, user *domain.User) error { return nil }

func (r *fakeUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func TestGetProfile_Success(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeUserRepository{user: &domain.User{
		ID: 5, Username: "alice", Email: "alice@example.com", CreatedAt: createdAt,
	}}
	handler := query.NewGetProfileHandler(repo)

	profile, err := handler.Handle(context.Background(), query.GetProfileQuery{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(5), profile.ID)
	assert.Equal(t, "alice", profile.Username)
	require.NotNil(t, profile.CreatedAt)
	assert.Equal(t, createdAt, *profile.CreatedAt)
}

func TestGetProfile_DeletedAfterTokenIssuance(t *testing.T) {
	handler := query.NewGetProfileHandler(&fakeUserRepository{})

	_, err := handler.Handle(context.Background(), query.GetProfileQuery{UserID: 5})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}
