package restaurant

import "context"

// Repository fetches the rows the aggregator merges.
type Repository interface {
	// SearchShops returns every shop row whose name contains keyword,
	// case-insensitively.
	SearchShops(ctx context.Context, keyword string) ([]ShopRow, error)

	// TopShops returns up to limit shop rows ordered by monthly sales and
	// rating; the home-page sample pool.
	TopShops(ctx context.Context, limit int) ([]ShopRow, error)

	// ShopsByNames returns all shop rows carrying any of the given names,
	// across every platform.
	ShopsByNames(ctx context.Context, names []string) ([]ShopRow, error)

	// DishesByShopIDs returns the dish rows of the given shops.
	DishesByShopIDs(ctx context.Context, shopIDs []int64) ([]DishRow, error)

	// FavoriteShopIDs returns the ids of the shops the user favorited.
	FavoriteShopIDs(ctx context.Context, userID string) ([]int64, error)
}
