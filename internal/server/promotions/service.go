package promotions

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

var formMessages = validation.Messages{
	"required":               "All fields are required.",
	"discount_value.numeric": "Discount must be numeric.",
	"min_order_amt.numeric":  "Minimum order amount must be numeric.",
	"exp_dt.datetime":        "Expiration date must be in YYYY-MM-DD format.",
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Promotion, error) {
	return s.repo.List(ctx)
}

// Parse trims and validates f. Failures are *validation.Error carrying the
// message shown to staff.
func Parse(f Form) (Promotion, error) {
	f = Form{
		Code:             strings.TrimSpace(f.Code),
		DiscountValue:    strings.TrimSpace(f.DiscountValue),
		PromotionDesc:    strings.TrimSpace(f.PromotionDesc),
		PromotionSummary: strings.TrimSpace(f.PromotionSummary),
		MinOrderAmt:      strings.TrimSpace(f.MinOrderAmt),
		ExpDt:            strings.TrimSpace(f.ExpDt),
	}
	if err := validation.Struct(f, formMessages); err != nil {
		return Promotion{}, err
	}

	discount, err := strconv.ParseFloat(f.DiscountValue, 64)
	if err != nil {
		return Promotion{}, fmt.Errorf("discount_value: %w", err)
	}
	minOrder, err := strconv.ParseFloat(f.MinOrderAmt, 64)
	if err != nil {
		return Promotion{}, fmt.Errorf("min_order_amt: %w", err)
	}

	return Promotion{
		Code:             f.Code,
		DiscountValue:    discount,
		PromotionDesc:    f.PromotionDesc,
		PromotionSummary: f.PromotionSummary,
		ExpDt:            f.ExpDt,
		MinOrderAmt:      minOrder,
	}, nil
}

// Create validates f and stores it under a new id.
func (s *Service) Create(ctx context.Context, f Form) (Promotion, error) {
	p, err := Parse(f)
	if err != nil {
		return Promotion{}, err
	}
	return s.repo.Create(ctx, p)
}

// Update replaces promotion id with f.
func (s *Service) Update(ctx context.Context, id int64, f Form) (Promotion, error) {
	p, err := Parse(f)
	if err != nil {
		return Promotion{}, err
	}
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return Promotion{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
