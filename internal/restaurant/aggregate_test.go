package restaurant

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func twoPlatformFixture() ([]ShopRow, []DishRow) {
	shops := []ShopRow{
		{
			ID: 1, Name: "Noodle House", Platform: PlatformMeituan,
			DeliveryDistance: 1.2, Rating: 4.7, DeliveryTime: intPtr(35),
			DeliveryFee: 3.0, MonthlySales: 1200, MinOrder: 20.0,
			ImageURL: "https://img.example.com/meituan_noodle.jpg",
		},
		{
			ID: 2, Name: "Noodle House", Platform: PlatformEle,
			DeliveryDistance: 1.5, Rating: 4.6, DeliveryTime: intPtr(40),
			DeliveryFee: 2.5, MonthlySales: 980, MinOrder: 20.0,
			ImageURL: "https://img.example.com/ele_noodle.jpg",
		},
	}
	dishes := []DishRow{
		{ShopID: 1, Name: "spicy soup", Price: 28.0},
		{ShopID: 1, Name: "cold noodles", Price: 18.0},
		{ShopID: 2, Name: "spicy soup", Price: 29.5},
	}
	return shops, dishes
}

func TestAggregate_MergesPlatformRows(t *testing.T) {
	shops, dishes := twoPlatformFixture()

	merged := Aggregate(shops, dishes, nil)
	if len(merged) != 1 {
		t.Fatalf("expected one merged record, got %d", len(merged))
	}
	m := merged[0]

	if m.ID != 1 {
		t.Errorf("main member must be the meituan row, got id %d", m.ID)
	}
	if m.Rating != 4.7 {
		t.Errorf("rating must be the member max, got %v", m.Rating)
	}
	if m.Reviews != 2180 {
		t.Errorf("reviews must sum monthly sales, got %v", m.Reviews)
	}
	if m.Distance != "1.2km" {
		t.Errorf("distance from main member, got %q", m.Distance)
	}
	if m.DeliveryTime != "30-40 min" {
		t.Errorf("delivery time window around main member, got %q", m.DeliveryTime)
	}
	if m.DeliveryFee != "¥2.75" {
		t.Errorf("merged fee must be (3.0+2.5)/2, got %q", m.DeliveryFee)
	}
	if m.MinimumOrder.Meituan == nil || *m.MinimumOrder.Meituan != 20.0 {
		t.Errorf("meituan min order missing: %+v", m.MinimumOrder)
	}
	if m.Image != "https://img.example.com/meituan_noodle.jpg" {
		t.Errorf("image must prefer meituan, got %q", m.Image)
	}

	// per-platform average dish price
	if m.Prices.Meituan == nil || m.Prices.Meituan.Current != 23.0 {
		t.Errorf("meituan average price wrong: %+v", m.Prices.Meituan)
	}
	if m.Prices.Ele == nil || m.Prices.Ele.Current != 29.5 {
		t.Errorf("ele average price wrong: %+v", m.Prices.Ele)
	}
}

func TestAggregate_DishUnion(t *testing.T) {
	shops, dishes := twoPlatformFixture()

	m := Aggregate(shops, dishes, nil)[0]

	if len(m.Dishes) != 2 {
		t.Fatalf("expected 2 distinct dish names, got %d", len(m.Dishes))
	}

	// sorted by name: "cold noodles" then "spicy soup"
	cold := m.Dishes[0]
	if cold.Name != "cold noodles" || cold.Meituan == nil || *cold.Meituan != 18.0 || cold.Ele != nil {
		t.Errorf("single-platform dish must carry only that price: %+v", cold)
	}

	soup := m.Dishes[1]
	if soup.Name != "spicy soup" || soup.Meituan == nil || soup.Ele == nil {
		t.Fatalf("shared dish must carry both prices: %+v", soup)
	}
	if *soup.Meituan != 28.0 || *soup.Ele != 29.5 {
		t.Errorf("wrong dish prices: %v / %v", *soup.Meituan, *soup.Ele)
	}
}

func TestAggregate_CommutativeGrouping(t *testing.T) {
	shops, dishes := twoPlatformFixture()

	forward := Aggregate([]ShopRow{shops[0], shops[1]}, dishes, nil)
	reversed := Aggregate([]ShopRow{shops[1], shops[0]}, dishes, nil)

	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("merge depends on input order:\n%+v\nvs\n%+v", forward, reversed)
	}
}

func TestAggregate_Floors(t *testing.T) {
	shops := []ShopRow{
		{ID: 1, Name: "Quiet Cafe", Platform: PlatformMeituan},
	}

	m := Aggregate(shops, nil, nil)[0]

	if m.Rating != 4.5 {
		t.Errorf("unset rating must floor to 4.5, got %v", m.Rating)
	}
	if m.Reviews != 100 {
		t.Errorf("zero sales must floor to 100, got %v", m.Reviews)
	}
	if m.DeliveryTime != "30-40 min" {
		t.Errorf("nil delivery time must fall back, got %q", m.DeliveryTime)
	}
	if m.Prices.Meituan != nil {
		t.Errorf("no dishes must leave average price absent, got %+v", m.Prices.Meituan)
	}
}

func TestAggregate_SinglePlatformFeeStillHalved(t *testing.T) {
	shops := []ShopRow{
		{ID: 7, Name: "Solo Shop", Platform: PlatformEle, DeliveryFee: 4.0},
	}

	m := Aggregate(shops, nil, nil)[0]

	if m.DeliveryFee != "¥2.00" {
		t.Errorf("fee is always divided by 2, got %q", m.DeliveryFee)
	}
	if m.MinimumOrder.Meituan != nil {
		t.Errorf("absent platform slot must stay empty: %+v", m.MinimumOrder)
	}
	if m.ID != 7 {
		t.Errorf("main member falls back to the ele row, got id %d", m.ID)
	}
}

func TestAggregate_FavoriteIfAnyMemberFavorited(t *testing.T) {
	shops, dishes := twoPlatformFixture()

	m := Aggregate(shops, dishes, map[int64]bool{2: true})[0]
	if !m.IsFavorite {
		t.Error("one favorited member must mark the merged record")
	}

	m = Aggregate(shops, dishes, map[int64]bool{99: true})[0]
	if m.IsFavorite {
		t.Error("unrelated favorites must not mark the record")
	}
}

func TestAggregate_PlaceholderImage(t *testing.T) {
	shops := []ShopRow{
		{ID: 1, Name: "No Image Diner", Platform: PlatformMeituan},
	}

	m := Aggregate(shops, nil, nil)[0]
	want := placeholderImageBase + "No+Image+Diner"
	if m.Image != want {
		t.Errorf("expected placeholder %q, got %q", want, m.Image)
	}
}

func TestAggregate_OrderedByRatingThenReviews(t *testing.T) {
	shops := []ShopRow{
		{ID: 1, Name: "Low", Platform: PlatformMeituan, Rating: 4.0, MonthlySales: 500},
		{ID: 2, Name: "HighFewSales", Platform: PlatformMeituan, Rating: 4.8, MonthlySales: 200},
		{ID: 3, Name: "HighManySales", Platform: PlatformMeituan, Rating: 4.8, MonthlySales: 900},
	}

	merged := Aggregate(shops, nil, nil)

	got := []string{merged[0].Name, merged[1].Name, merged[2].Name}
	want := []string{"HighManySales", "HighFewSales", "Low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestAggregate_OtherPlatformsContributeWithoutSlot(t *testing.T) {
	shops := []ShopRow{
		{ID: 1, Name: "Noodle House", Platform: PlatformMeituan, Rating: 4.2, MonthlySales: 300, DeliveryFee: 3.0},
		{ID: 2, Name: "Noodle House", Platform: "jd", Rating: 4.9, MonthlySales: 700, DeliveryFee: 9.0},
	}

	m := Aggregate(shops, nil, nil)[0]

	if m.Rating != 4.9 || m.Reviews != 1000 {
		t.Errorf("non-slot platforms must feed the aggregates: %+v", m)
	}
	// only the named slots count toward the fee
	if m.DeliveryFee != "¥1.50" {
		t.Errorf("non-slot fee must not enter the merge, got %q", m.DeliveryFee)
	}
}
