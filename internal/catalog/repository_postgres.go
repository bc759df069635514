package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HUST-25-SE/SaveBite/internal/core"
	"github.com/HUST-25-SE/SaveBite/internal/db"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool}
}

// --------------------------------------------------
// Platforms
// --------------------------------------------------
func (r *PostgresRepository) CreatePlatform(
	ctx context.Context,
	name string,
) (int64, error) {

	var id int64
	err := db.WithRetry(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `
			INSERT INTO platforms (name) VALUES ($1) RETURNING id
		`, name).Scan(&id)

		if db.IsUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	})
	return id, err
}

func (r *PostgresRepository) FindPlatformIDByName(
	ctx context.Context,
	name string,
) (int64, error) {

	var id int64
	err := r.db.QueryRow(ctx, `
		SELECT id FROM platforms WHERE name = $1
	`, name).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, core.ErrNotFound
	}
	return id, err
}

// --------------------------------------------------
// Shops
// --------------------------------------------------
func (r *PostgresRepository) CreateShop(ctx context.Context, shop *Shop) error {
	return db.WithRetry(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `
			INSERT INTO shops (
				platform_id, name, delivery_distance, rating,
				delivery_time, delivery_fee, monthly_sales,
				min_order, avg_consumption, image_url
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
			RETURNING id
		`,
			shop.PlatformID,
			shop.Name,
			shop.DeliveryDistance,
			shop.Rating,
			shop.DeliveryTime,
			shop.DeliveryFee,
			shop.MonthlySales,
			shop.MinOrder,
			shop.AvgConsumption,
			shop.ImageURL,
		).Scan(&shop.ID)

		if db.IsUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	})
}

func (r *PostgresRepository) ShopExists(
	ctx context.Context,
	shopID int64,
) (bool, error) {

	var one int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM shops WHERE id = $1
	`, shopID).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) FindShopIDsByName(
	ctx context.Context,
	shopName string,
) ([]int64, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id FROM shops WHERE name = $1 ORDER BY id
	`, shopName)
	if err != nil {
		return nil, err
	}
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

func (r *PostgresRepository) FindShopID(
	ctx context.Context,
	platformName, shopName string,
) (int64, error) {

	var id int64
	err := r.db.QueryRow(ctx, `
		SELECT s.id
		FROM shops s
		JOIN platforms p ON s.platform_id = p.id
		WHERE s.name = $1 AND p.name = $2
	`, shopName, platformName).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, core.ErrNotFound
	}
	return id, err
}

// --------------------------------------------------
// Dishes & coupons
// --------------------------------------------------
func (r *PostgresRepository) CreateDish(ctx context.Context, dish *Dish) error {
	return db.WithRetry(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `
			INSERT INTO dishes (shop_id, name, price)
			VALUES ($1, $2, $3)
			RETURNING id
		`, dish.ShopID, dish.Name, dish.Price).Scan(&dish.ID)

		if db.IsUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	})
}

func (r *PostgresRepository) CreateCoupon(ctx context.Context, coupon *Coupon) error {
	return db.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, `
			INSERT INTO coupons (shop_id, condition_amount, discount_amount, valid_from, valid_to)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
			coupon.ShopID,
			coupon.ConditionAmount,
			coupon.DiscountAmount,
			coupon.ValidFrom,
			coupon.ValidTo,
		).Scan(&coupon.ID)
	})
}

// --------------------------------------------------
// Reset (bulk loader)
// --------------------------------------------------
func (r *PostgresRepository) ClearBusinessData(ctx context.Context) error {
	return db.WithRetry(ctx, func(ctx context.Context) error {
		for _, stmt := range []string{
			`DELETE FROM favorites`,
			`DELETE FROM dishes`,
			`DELETE FROM coupons`,
			`DELETE FROM shops`,
		} {
			if _, err := r.db.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
