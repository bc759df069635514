package restaurant

import (
	"context"
	"math/rand"
)

const (
	searchResultCap = 20
	homeSampleSize  = 6
	homeSamplePool  = 50
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns merged restaurant records. With a keyword it filters shop
// names by case-insensitive substring and caps the result at 20; without
// one it returns a randomized sample of 6 drawn from the 50 most-sold
// shops. userID may be empty (anonymous callers see no favorite flags).
func (s *Service) Search(
	ctx context.Context,
	keyword string,
	userID string,
) ([]Merged, error) {

	var (
		shops []ShopRow
		err   error
	)
	if keyword == "" {
		shops, err = s.repo.TopShops(ctx, homeSamplePool)
		if err == nil {
			// The pool is row-level, so a pooled shop's sibling on the other
			// platform may rank below the cutoff. Refetch by name to merge
			// complete groups.
			shops, err = s.repo.ShopsByNames(ctx, shopNames(shops))
		}
	} else {
		shops, err = s.repo.SearchShops(ctx, keyword)
	}
	if err != nil {
		return nil, err
	}

	merged, err := s.merge(ctx, shops, userID)
	if err != nil {
		return nil, err
	}

	if keyword == "" {
		rand.Shuffle(len(merged), func(i, j int) {
			merged[i], merged[j] = merged[j], merged[i]
		})
		if len(merged) > homeSampleSize {
			merged = merged[:homeSampleSize]
		}
		return merged, nil
	}

	if len(merged) > searchResultCap {
		merged = merged[:searchResultCap]
	}
	return merged, nil
}

// MergedForNames aggregates every per-platform row of the named restaurants.
// favoriteIDs marks which member rows the caller favorited.
func (s *Service) MergedForNames(
	ctx context.Context,
	names []string,
	favoriteIDs map[int64]bool,
) ([]Merged, error) {

	shops, err := s.repo.ShopsByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	dishes, err := s.dishesFor(ctx, shops)
	if err != nil {
		return nil, err
	}

	return Aggregate(shops, dishes, favoriteIDs), nil
}

func (s *Service) merge(
	ctx context.Context,
	shops []ShopRow,
	userID string,
) ([]Merged, error) {

	dishes, err := s.dishesFor(ctx, shops)
	if err != nil {
		return nil, err
	}

	favoriteIDs := map[int64]bool{}
	if userID != "" {
		ids, err := s.repo.FavoriteShopIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			favoriteIDs[id] = true
		}
	}

	return Aggregate(shops, dishes, favoriteIDs), nil
}

func shopNames(shops []ShopRow) []string {
	seen := make(map[string]bool, len(shops))
	names := make([]string, 0, len(shops))
	for _, s := range shops {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

func (s *Service) dishesFor(ctx context.Context, shops []ShopRow) ([]DishRow, error) {
	if len(shops) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return s.repo.DishesByShopIDs(ctx, ids)
}
