// Package promotions stores discount codes and validates promotion forms
// submitted by staff.
package promotions

// DateLayout is the only accepted expiration date format.
const DateLayout = "2006-01-02"

type Promotion struct {
	ID               int64   `json:"promotion_id"`
	Code             string  `json:"code"`
	DiscountValue    float64 `json:"discount_value"`
	PromotionDesc    string  `json:"promotion_desc"`
	PromotionSummary string  `json:"promotion_summary"`
	ExpDt            string  `json:"exp_dt"`
	MinOrderAmt      float64 `json:"min_order_amt"`
}

// Form is a promotion as submitted, every value still in text form. Field
// order decides which failure is reported first.
type Form struct {
	Code             string `json:"code" validate:"required"`
	DiscountValue    string `json:"discount_value" validate:"required,numeric"`
	PromotionDesc    string `json:"promotion_desc" validate:"required"`
	PromotionSummary string `json:"promotion_summary" validate:"required"`
	MinOrderAmt      string `json:"min_order_amt" validate:"required,numeric"`
	ExpDt            string `json:"exp_dt" validate:"required,datetime=2006-01-02"`
}
