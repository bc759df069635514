package favorites

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/HUST-25-SE/SaveBite/internal/core"
	"github.com/HUST-25-SE/SaveBite/internal/restaurant"
)

// Merger aggregates per-platform shop rows into merged restaurant records.
// Satisfied by restaurant.Service.
type Merger interface {
	MergedForNames(
		ctx context.Context,
		names []string,
		favoriteIDs map[int64]bool,
	) ([]restaurant.Merged, error)
}

type Service struct {
	repo   Repository
	merger Merger
}

func NewService(repo Repository, merger Merger) *Service {
	return &Service{repo: repo, merger: merger}
}

// ToggleResult reports the outcome of a favorite toggle. Failed counts the
// platform rows that could not be updated; rows that succeeded are kept.
type ToggleResult struct {
	IsFavorite bool
	Updated    int
	Failed     int
}

// Toggle flips the favorite state of every per-platform row sharing the
// shop name. If any row is currently favorited the whole group is removed,
// otherwise the whole group is added, so the group never ends up split.
// A failed row is skipped, not rolled back; the result carries the counts
// so callers can see a partial outcome.
func (s *Service) Toggle(
	ctx context.Context,
	userID string,
	shopName string,
) (ToggleResult, error) {

	var result ToggleResult

	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return result, fmt.Errorf("shop name is required")
	}

	ids, err := s.repo.ShopIDsByName(ctx, shopName)
	if err != nil {
		return result, err
	}
	if len(ids) == 0 {
		return result, fmt.Errorf("shop %q %w", shopName, core.ErrNotFound)
	}

	current, err := s.repo.FavoriteShopIDs(ctx, userID)
	if err != nil {
		return result, err
	}
	favorited := make(map[int64]bool, len(current))
	for _, id := range current {
		favorited[id] = true
	}

	removing := false
	for _, id := range ids {
		if favorited[id] {
			removing = true
			break
		}
	}

	var lastErr error
	for _, id := range ids {
		var opErr error
		if removing {
			opErr = s.repo.RemoveFavorite(ctx, userID, id)
		} else {
			opErr = s.repo.AddFavorite(ctx, userID, id)
		}
		if opErr != nil {
			log.Printf("favorites: toggle shop %d for user %s: %v", id, userID, opErr)
			result.Failed++
			lastErr = opErr
			continue
		}
		result.Updated++
	}
	if result.Updated == 0 {
		result.IsFavorite = removing
		return result, lastErr
	}

	result.IsFavorite = !removing
	return result, nil
}

// List returns the caller's favorited restaurants as merged records.
func (s *Service) List(ctx context.Context, userID string) ([]restaurant.Merged, error) {
	names, err := s.repo.FavoriteShopNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []restaurant.Merged{}, nil
	}

	ids, err := s.repo.FavoriteShopIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	favoriteIDs := make(map[int64]bool, len(ids))
	for _, id := range ids {
		favoriteIDs[id] = true
	}

	return s.merger.MergedForNames(ctx, names, favoriteIDs)
}
