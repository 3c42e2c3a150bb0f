package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

func (a *App) Promotions(ctx context.Context) error {
	list, err := a.promotionService.List(ctx)
	if err != nil {
		return err
	}
	renderPromotions(a.out, list)
	return nil
}

func (a *App) AddPromotion(ctx context.Context) error {
	in, err := a.promptPromotion(models.PromotionInput{})
	if err != nil {
		return err
	}
	msg, err := a.promotionService.Save(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return a.Promotions(ctx)
}

func (a *App) EditPromotion(ctx context.Context) error {
	id, err := a.promptPromotionID()
	if err != nil {
		return err
	}

	list, err := a.promotionService.List(ctx)
	if err != nil {
		return err
	}
	var current *models.Promotion
	for i := range list {
		if list[i].PromotionID == id {
			current = &list[i]
			break
		}
	}
	if current == nil {
		return &validation.Error{Message: fmt.Sprintf("Promotion %d not found.", id)}
	}

	in, err := a.promptPromotion(models.InputFrom(*current))
	if err != nil {
		return err
	}
	msg, err := a.promotionService.Save(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) DeletePromotion(ctx context.Context) error {
	id, err := a.promptPromotionID()
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete promotion %d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	msg, err := a.promotionService.Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) promptPromotionID() (int64, error) {
	raw, err := getSimpleText(a.reader, "Promotion id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &validation.Error{Message: "Invalid promotion id."}
	}
	return id, nil
}

// promptPromotion collects the form; values in in are offered as defaults.
func (a *App) promptPromotion(in models.PromotionInput) (models.PromotionInput, error) {
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Code", &in.Code},
		{"Discount", &in.DiscountValue},
		{"Description", &in.PromotionDesc},
		{"Summary", &in.PromotionSummary},
		{"Expires (YYYY-MM-DD)", &in.ExpDt},
		{"Minimum order amount", &in.MinOrderAmt},
	}
	for _, f := range fields {
		var (
			v   string
			err error
		)
		if in.ID != 0 {
			v, err = getTextWithDefault(a.reader, f.prompt, *f.dst, a.out)
		} else {
			v, err = getSimpleText(a.reader, f.prompt, a.out)
		}
		if err != nil {
			return in, err
		}
		*f.dst = v
	}
	return in, nil
}
