package pricing

import "context"

// Repository fetches the joined listing rows the comparator ranks.
type Repository interface {
	// FetchListings returns dish→shop→platform rows matching dishName
	// (exact or substring, case-insensitive either way), optionally
	// restricted to shops with the exact shopName. Rows come back in
	// dish-id order so that ranking ties break deterministically.
	FetchListings(ctx context.Context, dishName, shopName string, exact bool) ([]Listing, error)
}
