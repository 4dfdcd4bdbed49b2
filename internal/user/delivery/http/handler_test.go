package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userhttp "bakerydir/internal/user/delivery/http"
	"bakerydir/internal/user/domain"
	"bakerydir/internal/user/usecase/command"
	"bakerydir/internal/user/usecase/query"
	"bakerydir/pkg/auth"
)

type fakeUserRepository struct {
	byEmail map[string]*domain.User
	nextID  uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func newTestRouter(t *testing.T) (*mux.Router, *fakeUserRepository) {
	t.Helper()
	repo := newFakeUserRepository()
	tokens := auth.NewTokenManager("test-secret")
	handler := userhttp.NewAuthHandler(
		command.NewRegisterUserHandler(repo, tokens, nil),
		command.NewLoginUserHandler(repo, tokens),
		query.NewGetProfileHandler(repo),
		tokens,
	)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
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

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, body := doJSON(t, router, "POST", "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	router, repo := newTestRouter(t)

	rec, body := doJSON(t, router, "POST", "/api/auth/register",
		`{"email":"alice@example.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please provide all fields", body["message"])
	assert.Empty(t, repo.byEmail)
}

func TestRegisterEndpoint_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, body := doJSON(t, router, "POST", "/api/auth/register", `{not json`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, "POST", "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`, "")

	rec, body := doJSON(t, router, "POST", "/api/auth/login",
		`{"email":"alice@example.com","password":"secret"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, "POST", "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`, "")

	rec, body := doJSON(t, router, "POST", "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestMeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	_, registered := doJSON(t, router, "POST", "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`, "")
	token := registered["token"].(string)

	rec, body := doJSON(t, router, "GET", "/api/auth/me", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotEmpty(t, user["created_at"])
}

func TestMeEndpoint_NoToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, body := doJSON(t, router, "GET", "/api/auth/me", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided.", body["message"])
}

func TestMeEndpoint_BadToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, body := doJSON(t, router, "GET", "/api/auth/me", "", "not-a-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token.", body["message"])
}
