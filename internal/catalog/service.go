package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Platforms
// --------------------------------------------------
func (s *Service) AddPlatform(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.New("platform name is required")
	}

	if _, err := s.repo.FindPlatformIDByName(ctx, name); err == nil {
		return 0, fmt.Errorf("platform %w", core.ErrConflict)
	} else if !errors.Is(err, core.ErrNotFound) {
		return 0, err
	}

	return s.repo.CreatePlatform(ctx, name)
}

// --------------------------------------------------
// Shops
// --------------------------------------------------
// AddShop creates a shop listing under the named platform.
func (s *Service) AddShop(
	ctx context.Context,
	platformName string,
	params ShopParams,
) (int64, error) {

	if platformName == "" || params.Name == "" {
		return 0, errors.New("platform and shop name are required")
	}

	platformID, err := s.repo.FindPlatformIDByName(ctx, platformName)
	if errors.Is(err, core.ErrNotFound) {
		return 0, fmt.Errorf("platform %w", core.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}

	shop := &Shop{
		PlatformID:       platformID,
		Name:             params.Name,
		DeliveryDistance: params.DeliveryDistance,
		Rating:           params.Rating,
		DeliveryTime:     params.DeliveryTime,
		DeliveryFee:      params.DeliveryFee,
		MonthlySales:     params.MonthlySales,
		MinOrder:         params.MinOrder,
		AvgConsumption:   params.AvgConsumption,
		ImageURL:         params.ImageURL,
	}

	if err := s.repo.CreateShop(ctx, shop); err != nil {
		if errors.Is(err, core.ErrConflict) {
			return 0, fmt.Errorf("shop %w on this platform", core.ErrConflict)
		}
		return 0, err
	}
	return shop.ID, nil
}

// --------------------------------------------------
// Dishes
// --------------------------------------------------
func (s *Service) AddDish(
	ctx context.Context,
	shopID int64,
	name string,
	price float64,
) (int64, error) {

	if name == "" {
		return 0, errors.New("dish name is required")
	}
	if price < 0 {
		return 0, errors.New("price must not be negative")
	}

	if err := s.requireShop(ctx, shopID); err != nil {
		return 0, err
	}

	dish := &Dish{ShopID: shopID, Name: name, Price: price}
	if err := s.repo.CreateDish(ctx, dish); err != nil {
		if errors.Is(err, core.ErrConflict) {
			return 0, fmt.Errorf("dish %w in this shop", core.ErrConflict)
		}
		return 0, err
	}
	return dish.ID, nil
}

// --------------------------------------------------
// Coupons
// --------------------------------------------------
func (s *Service) AddCoupon(
	ctx context.Context,
	shopID int64,
	conditionAmount, discountAmount float64,
	validFrom, validTo *time.Time,
) (int64, error) {

	if conditionAmount < 0 || discountAmount < 0 {
		return 0, errors.New("coupon amounts must not be negative")
	}

	if err := s.requireShop(ctx, shopID); err != nil {
		return 0, err
	}

	coupon := &Coupon{
		ShopID:          shopID,
		ConditionAmount: conditionAmount,
		DiscountAmount:  discountAmount,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
	}
	if err := s.repo.CreateCoupon(ctx, coupon); err != nil {
		return 0, err
	}
	return coupon.ID, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------
// ShopIDsByName resolves a restaurant name to all of its per-platform rows.
func (s *Service) ShopIDsByName(ctx context.Context, shopName string) ([]int64, error) {
	if shopName == "" {
		return nil, errors.New("shop name is required")
	}
	return s.repo.FindShopIDsByName(ctx, shopName)
}

// ResolveShopID finds the one shop row for (platform, name).
func (s *Service) ResolveShopID(
	ctx context.Context,
	platformName, shopName string,
) (int64, error) {
	return s.repo.FindShopID(ctx, platformName, shopName)
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.ClearBusinessData(ctx)
}

func (s *Service) requireShop(ctx context.Context, shopID int64) error {
	exists, err := s.repo.ShopExists(ctx, shopID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("shop %w", core.ErrNotFound)
	}
	return nil
}
