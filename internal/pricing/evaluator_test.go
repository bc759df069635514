package pricing

import "testing"

func TestEvaluate_CouponApplies(t *testing.T) {
	q := Evaluate(28.0, 3.0, &CouponTerms{ConditionAmount: 30, DiscountAmount: 5})

	if q.Total != 31.0 {
		t.Errorf("expected total 31.0, got %v", q.Total)
	}
	if q.FinalPrice != 26.0 {
		t.Errorf("expected final 26.0, got %v", q.FinalPrice)
	}
	if q.Saved != 5.0 {
		t.Errorf("expected saved 5.0, got %v", q.Saved)
	}
	if !q.MeetsDiscount {
		t.Error("expected discount to apply")
	}
}

func TestEvaluate_ConditionNotMet(t *testing.T) {
	q := Evaluate(10.0, 2.0, &CouponTerms{ConditionAmount: 30, DiscountAmount: 5})

	if q.FinalPrice != 12.0 || q.Saved != 0 || q.MeetsDiscount {
		t.Errorf("discount must not apply below the condition: %+v", q)
	}
}

func TestEvaluate_NoCoupon(t *testing.T) {
	q := Evaluate(10.0, 2.0, nil)

	if q.FinalPrice != q.Total {
		t.Errorf("expected passthrough, got %+v", q)
	}
	if q.Saved != 0 || q.MeetsDiscount {
		t.Errorf("no coupon must mean no saving: %+v", q)
	}
}

func TestEvaluate_ConditionExactlyMet(t *testing.T) {
	q := Evaluate(27.0, 3.0, &CouponTerms{ConditionAmount: 30, DiscountAmount: 5})

	if !q.MeetsDiscount || q.FinalPrice != 25.0 {
		t.Errorf("condition met at equality must discount: %+v", q)
	}
}

func TestEvaluate_ZeroAmountsAreValid(t *testing.T) {
	q := Evaluate(0, 0, &CouponTerms{ConditionAmount: 0, DiscountAmount: 2})

	if !q.MeetsDiscount || q.FinalPrice != -2.0 {
		t.Errorf("zero total meets a zero condition, discount passes through: %+v", q)
	}
}

func TestEvaluate_DiscountExceedsTotalNotClamped(t *testing.T) {
	q := Evaluate(5.0, 1.0, &CouponTerms{ConditionAmount: 5, DiscountAmount: 10})

	if q.FinalPrice != -4.0 {
		t.Errorf("negative final price must pass through, got %v", q.FinalPrice)
	}
}

func TestEvaluate_Rounding(t *testing.T) {
	q := Evaluate(10.005, 0, nil)
	if q.FinalPrice != 10.01 {
		t.Errorf("expected half-away-from-zero rounding to 10.01, got %v", q.FinalPrice)
	}

	q = Evaluate(10.004, 0, nil)
	if q.FinalPrice != 10.0 {
		t.Errorf("expected 10.0, got %v", q.FinalPrice)
	}
}

func TestEvaluate_Identity(t *testing.T) {
	cases := []struct {
		price, fee float64
		coupon     *CouponTerms
	}{
		{28.0, 3.0, &CouponTerms{30, 5}},
		{29.5, 2.5, &CouponTerms{25, 6}},
		{15.0, 0, nil},
		{8.0, 1.5, &CouponTerms{50, 10}},
	}

	for _, tc := range cases {
		q := Evaluate(tc.price, tc.fee, tc.coupon)
		if q.FinalPrice != round2(q.Total-q.Saved) {
			t.Errorf("final != total - saved for %+v: %+v", tc, q)
		}
		if (q.Saved > 0) != q.MeetsDiscount {
			t.Errorf("saved/meets mismatch for %+v: %+v", tc, q)
		}
	}
}
