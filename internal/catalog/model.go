package catalog

import "time"

type Platform struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Shop is one platform's listing of a restaurant. The same restaurant on two
// platforms is two rows sharing a name.
type Shop struct {
	ID               int64   `json:"id"`
	PlatformID       int64   `json:"platform_id"`
	Name             string  `json:"name"`
	DeliveryDistance float64 `json:"delivery_distance"`
	Rating           float64 `json:"rating"`
	DeliveryTime     *int    `json:"delivery_time,omitempty"`
	DeliveryFee      float64 `json:"delivery_fee"`
	MonthlySales     int64   `json:"monthly_sales"`
	MinOrder         float64 `json:"min_order"`
	AvgConsumption   float64 `json:"avg_consumption"`
	ImageURL         string  `json:"image_url,omitempty"`
}

// ShopParams carries the caller-supplied fields of a new shop listing.
type ShopParams struct {
	Name             string
	DeliveryDistance float64
	Rating           float64
	DeliveryTime     *int
	DeliveryFee      float64
	MonthlySales     int64
	MinOrder         float64
	AvgConsumption   float64
	ImageURL         string
}

type Dish struct {
	ID     int64   `json:"id"`
	ShopID int64   `json:"shop_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Coupon is a flat "spend ConditionAmount, save DiscountAmount" voucher.
type Coupon struct {
	ID              int64      `json:"id"`
	ShopID          int64      `json:"shop_id"`
	ConditionAmount float64    `json:"condition_amount"`
	DiscountAmount  float64    `json:"discount_amount"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidTo         *time.Time `json:"valid_to,omitempty"`
}
