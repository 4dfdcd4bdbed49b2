package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bakerydir/internal/apperrors"
	"bakerydir/internal/user/domain"
	"bakerydir/kafka"
	"bakerydir/pkg/auth"
	"bakerydir/pkg/logger"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

// AuthResponse carries a signed token plus the public user projection.
type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo      domain.UserRepository
	tokens    *auth.TokenManager
	publisher *kafka.Publisher
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, tokens *auth.TokenManager, publisher *kafka.Publisher) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, tokens: tokens, publisher: publisher}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*AuthResponse, error) {
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Please provide all fields")
	}

	// Pre-check by email. The unique index on email still backs this up:
	// a racing duplicate fails the insert below instead of creating a
	// second account.
	existing, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperrors.NewStoreError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateError("User already exists")
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hashedPassword,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateError("User already exists")
		}
		return nil, apperrors.NewStoreError("failed to create user", err)
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	// Fire-and-forget: a broken broker must not fail the registration.
	if err := h.publisher.PublishUserRegistered(ctx, kafka.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish user registered event")
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}
