package command

import (
	"context"
	"errors"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/user/domain"
	"bakerydir/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	repo   domain.UserRepository
	tokens *auth.TokenManager
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, tokens *auth.TokenManager) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, tokens: tokens}
}

// Handle executes the login user command. An unknown email and a wrong
// password return the same error, so callers cannot probe for accounts.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*AuthResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Please provide email and password")
	}

	user, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, apperrors.NewStoreError("failed to find user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}
