package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register(context.Background(), "alice", "alice@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["alice"]
	if user == nil {
		t.Fatalf("user not found")
	}
	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), "alice", "alice@example.com", "123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := service.Register(context.Background(), "alice", "other@example.com", "123456")
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected core.ErrConflict, got %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected a single stored user, got %d", len(repo.users))
	}
}

func TestRegisterMissingFields(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), "", "a@example.com", "pw"); err == nil {
		t.Fatal("expected error for missing username")
	}
	if len(repo.users) != 0 {
		t.Fatal("nothing should be stored on validation failure")
	}
}

func TestLoginFlow(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), "bob", "bob@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := service.Login(context.Background(), "bob", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := service.Login(context.Background(), "bob", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login(context.Background(), "nobody", "123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
