package restaurant

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool}
}

const shopColumns = `
	s.id,
	s.name,
	p.name,
	s.delivery_distance,
	s.rating,
	s.delivery_time,
	s.delivery_fee,
	s.monthly_sales,
	s.min_order,
	COALESCE(s.image_url, '')
`

func (r *PostgresRepository) SearchShops(
	ctx context.Context,
	keyword string,
) ([]ShopRow, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops s
		JOIN platforms p ON s.platform_id = p.id
		WHERE s.name ILIKE '%' || $1 || '%'
		ORDER BY s.id
	`, keyword)
	if err != nil {
		return nil, err
	}
	return scanShopRows(rows)
}

func (r *PostgresRepository) TopShops(
	ctx context.Context,
	limit int,
) ([]ShopRow, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops s
		JOIN platforms p ON s.platform_id = p.id
		ORDER BY s.monthly_sales DESC, s.rating DESC, s.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanShopRows(rows)
}

func (r *PostgresRepository) ShopsByNames(
	ctx context.Context,
	names []string,
) ([]ShopRow, error) {

	if len(names) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops s
		JOIN platforms p ON s.platform_id = p.id
		WHERE s.name = ANY($1)
		ORDER BY s.id
	`, names)
	if err != nil {
		return nil, err
	}
	return scanShopRows(rows)
}

func (r *PostgresRepository) DishesByShopIDs(
	ctx context.Context,
	shopIDs []int64,
) ([]DishRow, error) {

	if len(shopIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT shop_id, name, price
		FROM dishes
		WHERE shop_id = ANY($1)
		ORDER BY id
	`, shopIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []DishRow
	for rows.Next() {
		var d DishRow
		if err := rows.Scan(&d.ShopID, &d.Name, &d.Price); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) FavoriteShopIDs(
	ctx context.Context,
	userID string,
) ([]int64, error) {

	rows, err := r.db.Query(ctx, `
		SELECT shop_id FROM favorites WHERE user_id = $1
	`, userID)
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

func scanShopRows(rows pgx.Rows) ([]ShopRow, error) {
	defer rows.Close()

	var shops []ShopRow
	for rows.Next() {
		var s ShopRow
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Platform,
			&s.DeliveryDistance,
			&s.Rating,
			&s.DeliveryTime,
			&s.DeliveryFee,
			&s.MonthlySales,
			&s.MinOrder,
			&s.ImageURL,
		); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}
