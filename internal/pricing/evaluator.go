package pricing

import "math"

// CouponTerms is the flat-rate discount considered by the evaluator:
// spend ConditionAmount, save DiscountAmount.
type CouponTerms struct {
	ConditionAmount float64
	DiscountAmount  float64
}

// Quote is the evaluated payable amount for one listing.
type Quote struct {
	Total         float64
	FinalPrice    float64
	Saved         float64
	MeetsDiscount bool
}

// Evaluate computes the best-case payable amount for a dish on one shop.
// A nil coupon behaves like one whose condition can never be met. The
// discount may exceed the total; the negative result passes through.
//
// Money is rounded to 2 decimals, half away from zero. Ranking depends on
// this policy, so it is applied here and nowhere else.
func Evaluate(dishPrice, deliveryFee float64, coupon *CouponTerms) Quote {
	total := dishPrice + deliveryFee

	q := Quote{
		Total:      round2(total),
		FinalPrice: round2(total),
	}

	if coupon != nil && total >= coupon.ConditionAmount {
		q.FinalPrice = round2(total - coupon.DiscountAmount)
		q.Saved = round2(coupon.DiscountAmount)
		q.MeetsDiscount = true
	}

	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
