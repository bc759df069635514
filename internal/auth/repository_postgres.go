package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HUST-25-SE/SaveBite/internal/core"
	"github.com/HUST-25-SE/SaveBite/internal/db"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: pool}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	return db.WithRetry(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `
			INSERT INTO users (id, username, email, password)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at
		`, user.ID, user.Username, user.Email, user.Password).Scan(&user.CreatedAt)

		if db.IsUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	})
}

func (r *PostgresUserRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (bool, error) {

	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM users WHERE username = $1 OR email = $2 LIMIT 1
	`, username, email).Scan(&exists)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	return r.findOne(ctx, `
		SELECT id, username, email, password, created_at
		FROM users WHERE username = $1
	`, username)
}

func (r *PostgresUserRepository) FindByID(
	ctx context.Context,
	id string,
) (*User, error) {
	return r.findOne(ctx, `
		SELECT id, username, email, password, created_at
		FROM users WHERE id = $1
	`, id)
}

func (r *PostgresUserRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
) (*User, error) {

	user := &User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
