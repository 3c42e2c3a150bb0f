package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the only date format the promotions API accepts.
const DateLayout = "2006-01-02"

// Date is a calendar day. The backend may encode it as "YYYY-MM-DD" or as
// epoch milliseconds; it is always re-encoded as "YYYY-MM-DD".
type Date string

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*d = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if len(s) > len(DateLayout) {
			s = s[:len(DateLayout)]
		}
		*d = Date(s)
		return nil
	default:
		var ms int64
		if err := json.Unmarshal(b, &ms); err != nil {
			return fmt.Errorf("date: %w", err)
		}
		*d = Date(time.UnixMilli(ms).UTC().Format(DateLayout))
		return nil
	}
}

type Promotion struct {
	PromotionID      int64   `json:"promotion_id"`
	Code             string  `json:"code"`
	DiscountValue    float64 `json:"discount_value"`
	PromotionDesc    string  `json:"promotion_desc"`
	PromotionSummary string  `json:"promotion_summary"`
	ExpDt            Date    `json:"exp_dt"`
	MinOrderAmt      float64 `json:"min_order_amt"`
}

// PromotionInput is the promotion form as typed. ID is zero for a new row.
type PromotionInput struct {
	ID               int64  `json:"-"`
	Code             string `json:"code" validate:"required"`
	DiscountValue    string `json:"discount_value" validate:"required,numeric"`
	PromotionDesc    string `json:"promotion_desc" validate:"required"`
	PromotionSummary string `json:"promotion_summary" validate:"required"`
	ExpDt            string `json:"exp_dt" validate:"required,datetime=2006-01-02"`
	MinOrderAmt      string `json:"min_order_amt" validate:"required,numeric"`
}

// InputFrom pre-fills an edit form from an existing promotion.
func InputFrom(p Promotion) PromotionInput {
	return PromotionInput{
		ID:               p.PromotionID,
		Code:             p.Code,
		DiscountValue:    formatAmount(p.DiscountValue),
		PromotionDesc:    p.PromotionDesc,
		PromotionSummary: p.PromotionSummary,
		ExpDt:            string(p.ExpDt),
		MinOrderAmt:      formatAmount(p.MinOrderAmt),
	}
}

func formatAmount(f float64) string {
	return fmt.Sprintf("%g", f)
}

// PromotionPayload is the body of create and update requests.
type PromotionPayload struct {
	Code             string  `json:"code"`
	DiscountValue    float64 `json:"discount_value"`
	PromotionDesc    string  `json:"promotion_desc"`
	PromotionSummary string  `json:"promotion_summary"`
	ExpDt            string  `json:"exp_dt"`
	MinOrderAmt      float64 `json:"min_order_amt"`
}

// APIResult is the envelope promotions mutations answer with.
type APIResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
