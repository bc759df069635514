package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/HUST-25-SE/SaveBite/internal/core"
	"github.com/HUST-25-SE/SaveBite/internal/restaurant"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRepository struct {
	shopsByName map[string][]int64
	shopNames   map[int64]string
	favorites   map[int64]bool
	addErrFor   map[int64]error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		shopsByName: make(map[string][]int64),
		shopNames:   make(map[int64]string),
		favorites:   make(map[int64]bool),
		addErrFor:   make(map[int64]error),
	}
}

func (m *mockRepository) addShop(name string, id int64) {
	m.shopsByName[name] = append(m.shopsByName[name], id)
	m.shopNames[id] = name
}

func (m *mockRepository) ShopIDsByName(ctx context.Context, shopName string) ([]int64, error) {
	return m.shopsByName[shopName], nil
}

func (m *mockRepository) FavoriteShopIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	for id := range m.shopNames {
		if m.favorites[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mockRepository) FavoriteShopNames(ctx context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for id, favorited := range m.favorites {
		if !favorited {
			continue
		}
		name := m.shopNames[id]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

func (m *mockRepository) AddFavorite(ctx context.Context, userID string, shopID int64) error {
	if err := m.addErrFor[shopID]; err != nil {
		return err
	}
	m.favorites[shopID] = true
	return nil
}

func (m *mockRepository) RemoveFavorite(ctx context.Context, userID string, shopID int64) error {
	delete(m.favorites, shopID)
	return nil
}

type mockMerger struct {
	names       []string
	favoriteIDs map[int64]bool
}

func (m *mockMerger) MergedForNames(
	ctx context.Context,
	names []string,
	favoriteIDs map[int64]bool,
) ([]restaurant.Merged, error) {
	m.names = names
	m.favoriteIDs = favoriteIDs
	out := make([]restaurant.Merged, 0, len(names))
	for _, n := range names {
		out = append(out, restaurant.Merged{Name: n, IsFavorite: true})
	}
	return out, nil
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestToggle_AddsWholeGroup(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addShop("Noodle House", 2)
	service := NewService(repo, &mockMerger{})

	result, err := service.Toggle(context.Background(), "user-1", "Noodle House")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsFavorite {
		t.Error("toggle from clean state must favorite")
	}
	if result.Updated != 2 || result.Failed != 0 {
		t.Errorf("expected 2 updated rows, got %+v", result)
	}
	if !repo.favorites[1] || !repo.favorites[2] {
		t.Errorf("both platform rows must be favorited: %+v", repo.favorites)
	}
}

func TestToggle_RemovesWholeGroupWhenAnyFavorited(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addShop("Noodle House", 2)
	repo.favorites[2] = true
	service := NewService(repo, &mockMerger{})

	result, err := service.Toggle(context.Background(), "user-1", "Noodle House")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsFavorite {
		t.Error("partially favorited group must toggle off")
	}
	if len(repo.favorites) != 0 {
		t.Errorf("expected no favorites left, got %+v", repo.favorites)
	}
}

func TestToggle_TwiceRestoresState(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addShop("Noodle House", 2)
	service := NewService(repo, &mockMerger{})

	if result, _ := service.Toggle(context.Background(), "user-1", "Noodle House"); !result.IsFavorite {
		t.Fatal("first toggle must favorite")
	}
	if result, _ := service.Toggle(context.Background(), "user-1", "Noodle House"); result.IsFavorite {
		t.Fatal("second toggle must unfavorite")
	}
	if len(repo.favorites) != 0 {
		t.Errorf("double toggle must restore the clean state, got %+v", repo.favorites)
	}
}

func TestToggle_UnknownShop(t *testing.T) {
	service := NewService(newMockRepository(), &mockMerger{})

	_, err := service.Toggle(context.Background(), "user-1", "Ghost Kitchen")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToggle_BlankShopName(t *testing.T) {
	service := NewService(newMockRepository(), &mockMerger{})

	if _, err := service.Toggle(context.Background(), "user-1", "   "); err == nil {
		t.Fatal("blank shop name must be rejected")
	}
}

func TestToggle_PartialWriteFailureReported(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addShop("Noodle House", 2)
	repo.addErrFor[1] = errors.New("connection reset")
	service := NewService(repo, &mockMerger{})

	result, err := service.Toggle(context.Background(), "user-1", "Noodle House")
	if err != nil {
		t.Fatalf("one failed row must not fail the toggle: %v", err)
	}
	if !result.IsFavorite {
		t.Error("toggle must report the new state")
	}
	if result.Updated != 1 || result.Failed != 1 {
		t.Errorf("partial outcome must be visible in the result, got %+v", result)
	}
	if !repo.favorites[2] {
		t.Error("the surviving row must be favorited")
	}
}

func TestToggle_AllWritesFailing(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addErrFor[1] = errors.New("connection reset")
	service := NewService(repo, &mockMerger{})

	result, err := service.Toggle(context.Background(), "user-1", "Noodle House")
	if err == nil {
		t.Fatal("a toggle that changed nothing must report the failure")
	}
	if result.Updated != 0 || result.Failed != 1 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

func TestList_MergesFavoritedNames(t *testing.T) {
	repo := newMockRepository()
	repo.addShop("Noodle House", 1)
	repo.addShop("Noodle House", 2)
	repo.addShop("Burger Barn", 3)
	repo.favorites[1] = true
	repo.favorites[2] = true
	merger := &mockMerger{}
	service := NewService(repo, merger)

	favorites, err := service.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Name != "Noodle House" {
		t.Fatalf("unexpected favorites: %+v", favorites)
	}
	if !merger.favoriteIDs[1] || !merger.favoriteIDs[2] {
		t.Errorf("merger must receive the favorited row ids: %+v", merger.favoriteIDs)
	}
}

func TestList_EmptyWithoutFavorites(t *testing.T) {
	service := NewService(newMockRepository(), &mockMerger{})

	favorites, err := service.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorites == nil || len(favorites) != 0 {
		t.Fatalf("expected an empty (non-nil) list, got %+v", favorites)
	}
}
