package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ratinghttp "bakerydir/internal/rating/delivery/http"
	"bakerydir/internal/rating/domain"
	"bakerydir/internal/rating/usecase/command"
	"bakerydir/internal/rating/usecase/query"
	"bakerydir/pkg/auth"
)

type ratingKey struct {
	userID   uint
	bakeryID uint
}

type fakeRatingRepository struct {
	scores map[ratingKey]int
}

func (r *fakeRatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	r.scores[ratingKey{rating.UserID, rating.BakeryID}] = rating.Score
	return nil
}

func (r *fakeRatingRepository) RecomputeBakeryRating(ctx context.Context, bakeryID uint) (float64, error) {
	var scores []int
	for k, s := range r.scores {
		if k.bakeryID == bakeryID {
			scores = append(scores, s)
		}
	}
	return domain.AverageScore(scores), nil
}

func (r *fakeRatingRepository) FindScore(ctx context.Context, userID, bakeryID uint) (*int, error) {
	if s, ok := r.scores[ratingKey{userID, bakeryID}]; ok {
		return &s, nil
	}
	return nil, nil
}

func newTestRouter(t *testing.T) (*mux.Router, *auth.TokenManager) {
	t.Helper()
	repo := &fakeRatingRepository{scores: map[ratingKey]int{}}
	tokens := auth.NewTokenManager("test-secret")
	handler := ratinghttp.NewRatingHandler(
		command.NewSubmitRatingHandler(repo, nil, nil),
		query.NewGetMyRatingHandler(repo),
		tokens,
	)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, tokens
}

func doJSON(t *testing.T, router *mux.Router, method, path, body, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestSubmitEndpoint(t *testing.T) {
	router, tokens := newTestRouter(t)
	token, err := tokens.Generate(1, "alice@example.com")
	require.NoError(t, err)

	rec, body := doJSON(t, router, "POST", "/api/ratings", `{"bakeryId":7,"score":4}`, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 4.0, body["newRating"])
}

func TestSubmitEndpoint_InvalidScore(t *testing.T) {
	router, tokens := newTestRouter(t)
	token, err := tokens.Generate(1, "alice@example.com")
	require.NoError(t, err)

	rec, body := doJSON(t, router, "POST", "/api/ratings", `{"bakeryId":7,"score":6}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid rating", body["message"])
}

func TestSubmitEndpoint_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, "POST", "/api/ratings", `{"bakeryId":7,"score":4}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMyRatingEndpoint(t *testing.T) {
	router, tokens := newTestRouter(t)
	token, err := tokens.Generate(1, "alice@example.com")
	require.NoError(t, err)

	doJSON(t, router, "POST", "/api/ratings", `{"bakeryId":7,"score":4}`, token)

	rec, body := doJSON(t, router, "GET", "/api/ratings/my-rating/7", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4.0, body["score"])
}

func TestMyRatingEndpoint_UnratedIsNull(t *testing.T) {
	router, tokens := newTestRouter(t)
	token, err := tokens.Generate(1, "alice@example.com")
	require.NoError(t, err)

	rec, body := doJSON(t, router, "GET", "/api/ratings/my-rating/7", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	score, present := body["score"]
	assert.True(t, present)
	assert.Nil(t, score)
}

func TestMyRatingEndpoint_BadID(t *testing.T) {
	router, tokens := newTestRouter(t)
	token, err := tokens.Generate(1, "alice@example.com")
	require.NoError(t, err)

	rec, body := doJSON(t, router, "GET", "/api/ratings/my-rating/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid bakery ID", body["message"])
}
