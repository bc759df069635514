package pricing

// Listing is one joined dish→shop→platform row, with the shop's single
// considered coupon if any.
type Listing struct {
	Platform    string
	Shop        string
	Dish        string
	DishPrice   float64
	DeliveryFee float64
	Coupon      *CouponTerms
}

// Comparison is one ranked row of the price-comparison result.
type Comparison struct {
	Platform            string  `json:"platform"`
	Shop                string  `json:"shop"`
	Dish                string  `json:"dish"`
	DishPrice           float64 `json:"dish_price"`
	DeliveryFee         float64 `json:"delivery_fee"`
	TotalBeforeDiscount float64 `json:"total_before_discount"`
	FinalPrice          float64 `json:"final_price"`
	Saved               float64 `json:"saved"`
	MeetsDiscount       bool    `json:"meets_discount"`
}
