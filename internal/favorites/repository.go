package favorites

import "context"

// Repository persists which per-platform shop rows a user has favorited.
type Repository interface {
	// ShopIDsByName returns every per-platform shop row carrying the name.
	ShopIDsByName(ctx context.Context, shopName string) ([]int64, error)

	FavoriteShopIDs(ctx context.Context, userID string) ([]int64, error)
	FavoriteShopNames(ctx context.Context, userID string) ([]string, error)

	AddFavorite(ctx context.Context, userID string, shopID int64) error
	RemoveFavorite(ctx context.Context, userID string, shopID int64) error
}
