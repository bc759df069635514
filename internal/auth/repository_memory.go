package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

// InMemoryUserRepository backs the service tests.
type InMemoryUserRepository struct {
	users map[string]*User // keyed by username
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]*User)}
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if _, taken := r.users[user.Username]; taken {
		return core.ErrConflict
	}
	user.CreatedAt = time.Now()
	r.users[user.Username] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (bool, error) {
	if _, ok := r.users[username]; ok {
		return true, nil
	}
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByID(
	ctx context.Context,
	id string,
) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}
