package restaurant

import (
	"fmt"
	"math"
	"net/url"
	"sort"
)

// The two platform slots surfaced in merged records, in priority order.
// The "main" member (distance, delivery time, image) is picked by this order.
const (
	PlatformMeituan = "meituan"
	PlatformEle     = "ele"
)

const (
	ratingFloor          = 4.5
	reviewsFloor         = 100
	fallbackDeliveryTime = "30-40 min"
	placeholderImageBase = "https://via.placeholder.com/300x160?text="
)

// Aggregate groups per-platform shop rows by restaurant name and merges each
// group into one composite record. Pure computation over fetched rows; the
// output does not depend on input order.
func Aggregate(
	shops []ShopRow,
	dishes []DishRow,
	favoriteIDs map[int64]bool,
) []Merged {

	dishesByShop := make(map[int64][]DishRow)
	for _, d := range dishes {
		dishesByShop[d.ShopID] = append(dishesByShop[d.ShopID], d)
	}

	groups := make(map[string][]ShopRow)
	for _, s := range shops {
		groups[s.Name] = append(groups[s.Name], s)
	}

	merged := make([]Merged, 0, len(groups))
	for name, members := range groups {
		merged = append(merged, mergeGroup(name, members, dishesByShop, favoriteIDs))
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Rating != merged[j].Rating {
			return merged[i].Rating > merged[j].Rating
		}
		if merged[i].Reviews != merged[j].Reviews {
			return merged[i].Reviews > merged[j].Reviews
		}
		return merged[i].Name < merged[j].Name
	})

	return merged
}

func mergeGroup(
	name string,
	members []ShopRow,
	dishesByShop map[int64][]DishRow,
	favoriteIDs map[int64]bool,
) Merged {

	// member order must not leak into the output
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	var meituan, ele *ShopRow
	for i := range members {
		switch members[i].Platform {
		case PlatformMeituan:
			meituan = &members[i]
		case PlatformEle:
			ele = &members[i]
		}
	}

	main := &members[0]
	if meituan != nil {
		main = meituan
	} else if ele != nil {
		main = ele
	}

	out := Merged{
		ID:           main.ID,
		Name:         name,
		Rating:       ratingFloor,
		Reviews:      reviewsFloor,
		Distance:     fmt.Sprintf("%.1fkm", main.DeliveryDistance),
		DeliveryTime: fallbackDeliveryTime,
		Dishes:       mergeDishes(meituan, ele, members, dishesByShop),
	}

	var rating float64
	var reviews int64
	for _, m := range members {
		rating = math.Max(rating, m.Rating)
		reviews += m.MonthlySales
		if favoriteIDs[m.ID] {
			out.IsFavorite = true
		}
	}
	if rating > 0 {
		out.Rating = rating
	}
	if reviews > 0 {
		out.Reviews = reviews
	}

	if main.DeliveryTime != nil {
		t := *main.DeliveryTime
		out.DeliveryTime = fmt.Sprintf("%d-%d min", t-5, t+5)
	}

	// Sum of the fees present on the named platform slots, always divided by
	// the number of slots. A single-platform listing therefore shows half its
	// real fee; kept to match the established display behavior.
	var feeSum float64
	if meituan != nil {
		feeSum += meituan.DeliveryFee
		out.MinimumOrder.Meituan = ptr(meituan.MinOrder)
		out.Prices.Meituan = averagePrice(dishesByShop[meituan.ID])
	}
	if ele != nil {
		feeSum += ele.DeliveryFee
		out.MinimumOrder.Ele = ptr(ele.MinOrder)
		out.Prices.Ele = averagePrice(dishesByShop[ele.ID])
	}
	out.DeliveryFee = fmt.Sprintf("¥%.2f", feeSum/2)

	out.Image = pickImage(name, meituan, ele, members)

	return out
}

func mergeDishes(
	meituan, ele *ShopRow,
	members []ShopRow,
	dishesByShop map[int64][]DishRow,
) []MergedDish {

	byName := make(map[string]*MergedDish)
	order := []string{}

	for _, m := range members {
		for _, d := range dishesByShop[m.ID] {
			entry, ok := byName[d.Name]
			if !ok {
				entry = &MergedDish{Name: d.Name}
				byName[d.Name] = entry
				order = append(order, d.Name)
			}
			if meituan != nil && m.ID == meituan.ID {
				entry.Meituan = ptr(d.Price)
			}
			if ele != nil && m.ID == ele.ID {
				entry.Ele = ptr(d.Price)
			}
		}
	}

	sort.Strings(order)

	out := make([]MergedDish, 0, len(order))
	for _, n := range order {
		out = append(out, *byName[n])
	}
	return out
}

// averagePrice is the arithmetic mean of a shop's dish prices, or nil when
// the shop has no dishes.
func averagePrice(dishes []DishRow) *PlatformPrice {
	if len(dishes) == 0 {
		return nil
	}
	var sum float64
	for _, d := range dishes {
		sum += d.Price
	}
	return &PlatformPrice{Current: round2(sum / float64(len(dishes)))}
}

func pickImage(name string, meituan, ele *ShopRow, members []ShopRow) string {
	if meituan != nil && meituan.ImageURL != "" {
		return meituan.ImageURL
	}
	if ele != nil && ele.ImageURL != "" {
		return ele.ImageURL
	}
	for _, m := range members {
		if m.ImageURL != "" {
			return m.ImageURL
		}
	}
	return placeholderImageBase + url.QueryEscape(name)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}
