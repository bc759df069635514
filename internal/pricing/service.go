package pricing

import (
	"context"
	"errors"
	"sort"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Compare ranks every listing of the named dish by its discounted delivered
// price, cheapest first. An empty result is success, not an error; only
// store-level faults surface as errors.
func (s *Service) Compare(
	ctx context.Context,
	dishName, shopName string,
	exact bool,
) ([]Comparison, error) {

	if dishName == "" {
		return nil, errors.New("dish name is required")
	}

	listings, err := s.repo.FetchListings(ctx, dishName, shopName, exact)
	if err != nil {
		return nil, err
	}

	results := make([]Comparison, 0, len(listings))
	for _, l := range listings {
		q := Evaluate(l.DishPrice, l.DeliveryFee, l.Coupon)
		results = append(results, Comparison{
			Platform:            l.Platform,
			Shop:                l.Shop,
			Dish:                l.Dish,
			DishPrice:           round2(l.DishPrice),
			DeliveryFee:         round2(l.DeliveryFee),
			TotalBeforeDiscount: q.Total,
			FinalPrice:          q.FinalPrice,
			Saved:               q.Saved,
			MeetsDiscount:       q.MeetsDiscount,
		})
	}

	// Stable sort: rows arrive in dish-id order, so equal final prices keep
	// that order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalPrice < results[j].FinalPrice
	})

	return results, nil
}
