package favorites

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HUST-25-SE/SaveBite/internal/db"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool}
}

func (r *PostgresRepository) ShopIDsByName(
	ctx context.Context,
	shopName string,
) ([]int64, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id FROM shops WHERE name = $1 ORDER BY id
	`, shopName)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

func (r *PostgresRepository) FavoriteShopIDs(
	ctx context.Context,
	userID string,
) ([]int64, error) {

	rows, err := r.db.Query(ctx, `
		SELECT shop_id FROM favorites WHERE user_id = $1 ORDER BY shop_id
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

func (r *PostgresRepository) FavoriteShopNames(
	ctx context.Context,
	userID string,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT s.name
		FROM favorites f
		JOIN shops s ON s.id = f.shop_id
		WHERE f.user_id = $1
		ORDER BY s.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresRepository) AddFavorite(
	ctx context.Context,
	userID string,
	shopID int64,
) error {

	return db.WithRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
			INSERT INTO favorites (user_id, shop_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, userID, shopID)
		return err
	})
}

func (r *PostgresRepository) RemoveFavorite(
	ctx context.Context,
	userID string,
	shopID int64,
) error {

	return db.WithRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
			DELETE FROM favorites WHERE user_id = $1 AND shop_id = $2
		`, userID, shopID)
		return err
	})
}

func scanIDs(rows pgx.Rows) ([]int64, error) {
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
