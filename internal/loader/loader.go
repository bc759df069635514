package loader

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/HUST-25-SE/SaveBite/internal/auth"
	"github.com/HUST-25-SE/SaveBite/internal/catalog"
	"github.com/HUST-25-SE/SaveBite/internal/core"
)

// --------------------------------------------------
// Input document
// --------------------------------------------------

type UserItem struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ShopItem struct {
	Platform         string  `json:"platform"`
	Name             string  `json:"shop_name"`
	DeliveryDistance float64 `json:"delivery_distance"`
	Rating           float64 `json:"rating"`
	DeliveryTime     *int    `json:"delivery_time"`
	DeliveryFee      float64 `json:"delivery_fee"`
	MonthlySales     int64   `json:"monthly_sales"`
	MinOrder         float64 `json:"min_order"`
	AvgConsumption   float64 `json:"avg_consumption"`
	ImageURL         string  `json:"image_url"`
}

type DishItem struct {
	Platform string  `json:"platform"`
	ShopName string  `json:"shop_name"`
	Name     string  `json:"dish_name"`
	Price    float64 `json:"price"`
}

type CouponItem struct {
	Platform        string     `json:"platform"`
	ShopName        string     `json:"shop_name"`
	ConditionAmount float64    `json:"condition_amount"`
	DiscountAmount  float64    `json:"discount_amount"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
}

// Document is the bulk-load input. Sections may be absent; present ones
// are replayed in dependency order.
type Document struct {
	Users     []UserItem   `json:"users"`
	Platforms []string     `json:"platforms"`
	Shops     []ShopItem   `json:"shops"`
	Dishes    []DishItem   `json:"dishes"`
	Coupons   []CouponItem `json:"coupons"`
}

// --------------------------------------------------
// Report
// --------------------------------------------------

type Count struct {
	Loaded  int
	Skipped int
	Failed  int
}

func (c *Count) record(err error) {
	switch {
	case err == nil:
		c.Loaded++
	case errors.Is(err, core.ErrConflict):
		c.Skipped++
	default:
		c.Failed++
	}
}

type Report struct {
	Users     Count
	Platforms Count
	Shops     Count
	Dishes    Count
	Coupons   Count
}

// --------------------------------------------------
// Loader
// --------------------------------------------------

type shopKey struct {
	platform string
	shop     string
}

type Loader struct {
	users   *auth.Service
	catalog *catalog.Service
}

func New(users *auth.Service, catalogService *catalog.Service) *Loader {
	return &Loader{users: users, catalog: catalogService}
}

// Run replays the document against the stores. Individual item failures
// are logged and counted, never abort the run; rows that already exist
// count as skipped. With reset set, shops, dishes, coupons and favorites
// are cleared first (users and platforms survive).
func (l *Loader) Run(ctx context.Context, doc Document, reset bool) (Report, error) {
	var report Report

	if reset {
		if err := l.catalog.Reset(ctx); err != nil {
			return report, err
		}
	}

	for _, u := range doc.Users {
		_, err := l.users.Register(ctx, u.Username, u.Email, u.Password)
		if err != nil && !errors.Is(err, core.ErrConflict) {
			log.Printf("loader: user %q: %v", u.Username, err)
		}
		report.Users.record(err)
	}

	for _, name := range doc.Platforms {
		_, err := l.catalog.AddPlatform(ctx, name)
		if err != nil && !errors.Is(err, core.ErrConflict) {
			log.Printf("loader: platform %q: %v", name, err)
		}
		report.Platforms.record(err)
	}

	// Shops created in this run are remembered by (platform, name) so the
	// dish and coupon sections do not need a store round-trip per item.
	shopIDs := make(map[shopKey]int64, len(doc.Shops))

	for _, s := range doc.Shops {
		id, err := l.catalog.AddShop(ctx, s.Platform, catalog.ShopParams{
			Name:             s.Name,
			DeliveryDistance: s.DeliveryDistance,
			Rating:           s.Rating,
			DeliveryTime:     s.DeliveryTime,
			DeliveryFee:      s.DeliveryFee,
			MonthlySales:     s.MonthlySales,
			MinOrder:         s.MinOrder,
			AvgConsumption:   s.AvgConsumption,
			ImageURL:         s.ImageURL,
		})
		if err == nil {
			shopIDs[shopKey{s.Platform, s.Name}] = id
		} else if !errors.Is(err, core.ErrConflict) {
			log.Printf("loader: shop %q on %q: %v", s.Name, s.Platform, err)
		}
		report.Shops.record(err)
	}

	for _, d := range doc.Dishes {
		id, err := l.resolveShop(ctx, shopIDs, d.Platform, d.ShopName)
		if err != nil {
			log.Printf("loader: dish %q: shop %q on %q: %v", d.Name, d.ShopName, d.Platform, err)
			report.Dishes.record(err)
			continue
		}
		_, err = l.catalog.AddDish(ctx, id, d.Name, d.Price)
		if err != nil && !errors.Is(err, core.ErrConflict) {
			log.Printf("loader: dish %q in shop %d: %v", d.Name, id, err)
		}
		report.Dishes.record(err)
	}

	for _, cp := range doc.Coupons {
		id, err := l.resolveShop(ctx, shopIDs, cp.Platform, cp.ShopName)
		if err != nil {
			log.Printf("loader: coupon for shop %q on %q: %v", cp.ShopName, cp.Platform, err)
			report.Coupons.record(err)
			continue
		}
		_, err = l.catalog.AddCoupon(
			ctx, id,
			cp.ConditionAmount, cp.DiscountAmount,
			cp.ValidFrom, cp.ValidTo,
		)
		if err != nil {
			log.Printf("loader: coupon for shop %d: %v", id, err)
		}
		report.Coupons.record(err)
	}

	return report, nil
}

// resolveShop prefers the ids captured during this run; shops that existed
// before the run fall back to a store lookup.
func (l *Loader) resolveShop(
	ctx context.Context,
	shopIDs map[shopKey]int64,
	platform, shopName string,
) (int64, error) {

	if id, ok := shopIDs[shopKey{platform, shopName}]; ok {
		return id, nil
	}
	id, err := l.catalog.ResolveShopID(ctx, platform, shopName)
	if err != nil {
		return 0, err
	}
	shopIDs[shopKey{platform, shopName}] = id
	return id, nil
}
