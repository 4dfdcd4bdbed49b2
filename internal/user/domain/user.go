package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when no user row matches.
var ErrNotFound = errors.New("user not found")

// User represents the user entity (domain model)
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"` // Never expose the hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// PublicUser is the projection returned to clients.
type PublicUser struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Public returns the client-facing projection without timestamps.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// PublicWithCreatedAt returns the profile projection including created_at.
func (u *User) PublicWithCreatedAt() PublicUser {
	createdAt := u.CreatedAt
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: &createdAt}
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
