package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateUser is returned when the store's uniqueness constraint on
// username/email rejects a registration.
var ErrDuplicateUser = errors.New("username or email already exists")

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// AuthResult is the outcome of a register or login attempt. Token is set
// only on successful login.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
