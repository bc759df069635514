package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool}
}

// FetchListings joins dishes to shops and platforms and attaches at most one
// coupon per shop. A shop may legally carry several coupons; the LATERAL
// subquery pins the lowest-id one so the join never fans out.
func (r *PostgresRepository) FetchListings(
	ctx context.Context,
	dishName, shopName string,
	exact bool,
) ([]Listing, error) {

	query := `
		SELECT
			d.name,
			d.price,
			s.name,
			s.delivery_fee,
			p.name,
			c.condition_amount,
			c.discount_amount
		FROM dishes d
		JOIN shops s ON d.shop_id = s.id
		JOIN platforms p ON s.platform_id = p.id
		LEFT JOIN LATERAL (
			SELECT condition_amount, discount_amount
			FROM coupons
			WHERE shop_id = s.id
			ORDER BY id
			LIMIT 1
		) c ON true
		WHERE `

	args := []any{dishName}
	if exact {
		query += `LOWER(d.name) = LOWER($1)`
	} else {
		query += `d.name ILIKE '%' || $1 || '%'`
	}
	if shopName != "" {
		query += ` AND s.name = $2`
		args = append(args, shopName)
	}
	query += ` ORDER BY d.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var (
			l                   Listing
			condition, discount *float64
		)
		if err := rows.Scan(
			&l.Dish,
			&l.DishPrice,
			&l.Shop,
			&l.DeliveryFee,
			&l.Platform,
			&condition,
			&discount,
		); err != nil {
			return nil, err
		}
		if condition != nil && discount != nil {
			l.Coupon = &CouponTerms{
				ConditionAmount: *condition,
				DiscountAmount:  *discount,
			}
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
