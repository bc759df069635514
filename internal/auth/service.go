package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Register
// --------------------------------------------------
func (s *Service) Register(
	ctx context.Context,
	username, email, password string,
) (*User, error) {

	if username == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username or email %w", core.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// --------------------------------------------------
// Login
// --------------------------------------------------
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (*User, error) {

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// --------------------------------------------------
// Current user
// --------------------------------------------------
func (s *Service) Me(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}
