package catalog

import "context"

// Repository defines the data-access contract for the listing catalog.
type Repository interface {
	CreatePlatform(ctx context.Context, name string) (int64, error)
	FindPlatformIDByName(ctx context.Context, name string) (int64, error)

	CreateShop(ctx context.Context, shop *Shop) error
	ShopExists(ctx context.Context, shopID int64) (bool, error)
	FindShopIDsByName(ctx context.Context, shopName string) ([]int64, error)
	FindShopID(ctx context.Context, platformName, shopName string) (int64, error)

	CreateDish(ctx context.Context, dish *Dish) error
	CreateCoupon(ctx context.Context, coupon *Coupon) error

	// ClearBusinessData wipes shops, dishes, coupons and favorites; users
	// and platforms survive. Used by the bulk loader's reset mode.
	ClearBusinessData(ctx context.Context) error
}
