package usecase

import (
	"context"
	"errors"
	"time"

	"freelancima-backend/internal/domain"
	"freelancima-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 24 * time.Hour

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, jwtSecret: []byte(jwtSecret)}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	// The store's uniqueness constraint is the duplicate check; no
	// read-then-write race is possible.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return &domain.AuthResult{Success: false, Message: "Username or email already exists"}, nil
		}
		return nil, err
	}

	return &domain.AuthResult{Success: true, Message: "Registration successful"}, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	failed := &domain.AuthResult{Success: false, Message: "Invalid username or password"}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return failed, nil
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return failed, nil
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Copy before scrubbing so the store's value is left untouched.
	safe := *user
	safe.Password = ""
	return &domain.AuthResult{
		Success: true,
		Message: "Login successful",
		User:    &safe,
		Token:   token,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	safe := *user
	safe.Password = ""
	return &safe, nil
}

func (u *authUsecase) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}
