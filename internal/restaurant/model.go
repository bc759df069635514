package restaurant

// ShopRow is one per-platform shop listing as fetched from the store.
type ShopRow struct {
	ID               int64
	Name             string
	Platform         string
	DeliveryDistance float64
	Rating           float64
	DeliveryTime     *int
	DeliveryFee      float64
	MonthlySales     int64
	MinOrder         float64
	ImageURL         string
}

// DishRow is one dish row; the owning shop ties it to a platform.
type DishRow struct {
	ShopID int64
	Name   string
	Price  float64
}

// PlatformAmounts reports a per-platform value for the two first-class
// platform slots. Listings on other platforms contribute to the aggregate
// fields but are not independently surfaced.
type PlatformAmounts struct {
	Meituan *float64 `json:"meituan,omitempty"`
	Ele     *float64 `json:"ele,omitempty"`
}

type PlatformPrice struct {
	Current float64 `json:"current"`
}

type PlatformPrices struct {
	Meituan *PlatformPrice `json:"meituan,omitempty"`
	Ele     *PlatformPrice `json:"ele,omitempty"`
}

// MergedDish is one dish name with its price on each platform selling it.
type MergedDish struct {
	Name    string   `json:"name"`
	Meituan *float64 `json:"meituan,omitempty"`
	Ele     *float64 `json:"ele,omitempty"`
}

// Merged is the composite record for one restaurant name across platforms.
type Merged struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Rating       float64         `json:"rating"`
	Reviews      int64           `json:"reviews"`
	Distance     string          `json:"distance"`
	DeliveryTime string          `json:"deliveryTime"`
	DeliveryFee  string          `json:"deliveryFee"`
	MinimumOrder PlatformAmounts `json:"minimumOrder"`
	Image        string          `json:"image"`
	Prices       PlatformPrices  `json:"prices"`
	IsFavorite   bool            `json:"isFavorite"`
	Dishes       []MergedDish    `json:"dishes"`
}
