package catalog

import (
	"context"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

// InMemoryRepository backs the catalog and loader tests.
type InMemoryRepository struct {
	platforms map[string]int64
	shops     map[int64]*Shop
	dishes    []*Dish
	coupons   []*Coupon
	nextID    int64
}

func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{
		platforms: make(map[string]int64),
		shops:     make(map[int64]*Shop),
		nextID:    1,
	}
	// mirror the seeded platform rows
	r.platforms["meituan"] = r.allocID()
	r.platforms["ele"] = r.allocID()
	return r
}

func (r *InMemoryRepository) allocID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *InMemoryRepository) CreatePlatform(ctx context.Context, name string) (int64, error) {
	if _, ok := r.platforms[name]; ok {
		return 0, core.ErrConflict
	}
	id := r.allocID()
	r.platforms[name] = id
	return id, nil
}

func (r *InMemoryRepository) FindPlatformIDByName(ctx context.Context, name string) (int64, error) {
	id, ok := r.platforms[name]
	if !ok {
		return 0, core.ErrNotFound
	}
	return id, nil
}

func (r *InMemoryRepository) CreateShop(ctx context.Context, shop *Shop) error {
	for _, s := range r.shops {
		if s.PlatformID == shop.PlatformID && s.Name == shop.Name {
			return core.ErrConflict
		}
	}
	shop.ID = r.allocID()
	copied := *shop
	r.shops[shop.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ShopExists(ctx context.Context, shopID int64) (bool, error) {
	_, ok := r.shops[shopID]
	return ok, nil
}

func (r *InMemoryRepository) FindShopIDsByName(ctx context.Context, shopName string) ([]int64, error) {
	var ids []int64
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.shops[id]; ok && s.Name == shopName {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *InMemoryRepository) FindShopID(ctx context.Context, platformName, shopName string) (int64, error) {
	platformID, ok := r.platforms[platformName]
	if !ok {
		return 0, core.ErrNotFound
	}
	for id, s := range r.shops {
		if s.PlatformID == platformID && s.Name == shopName {
			return id, nil
		}
	}
	return 0, core.ErrNotFound
}

func (r *InMemoryRepository) CreateDish(ctx context.Context, dish *Dish) error {
	for _, d := range r.dishes {
		if d.ShopID == dish.ShopID && d.Name == dish.Name {
			return core.ErrConflict
		}
	}
	dish.ID = r.allocID()
	copied := *dish
	r.dishes = append(r.dishes, &copied)
	return nil
}

func (r *InMemoryRepository) CreateCoupon(ctx context.Context, coupon *Coupon) error {
	coupon.ID = r.allocID()
	copied := *coupon
	r.coupons = append(r.coupons, &copied)
	return nil
}

func (r *InMemoryRepository) ClearBusinessData(ctx context.Context) error {
	r.shops = make(map[int64]*Shop)
	r.dishes = nil
	r.coupons = nil
	return nil
}
