package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

const (
	PromotionsLoadFailedMessage = "Failed to load promotions."
	PromotionAddFailedMessage   = "Failed to add promotion."
	PromotionSaveFailedMessage  = "Save failed."
	PromotionDeleteFailed       = "Delete failed."
	PromotionSaveServerError    = "Save failed (server error)."
	PromotionDeleteServerError  = "Delete failed (server error)."

	promotionAdded   = "Promotion added successfully."
	promotionSaved   = "Saved successfully."
	promotionDeleted = "Deleted successfully."
)

var promotionMessages = validation.Messages{
	"required":               "All fields are required.",
	"discount_value.numeric": "Discount must be numeric.",
	"min_order_amt.numeric":  "Minimum order amount must be numeric.",
	"exp_dt.datetime":        "Expiration date must be in YYYY-MM-DD format.",
}

// PromotionService administers discount codes.
type PromotionService interface {
	List(ctx context.Context) ([]models.Promotion, error)
	// Save creates the promotion when in.ID is zero and updates it otherwise.
	// It returns the confirmation to display.
	Save(ctx context.Context, in models.PromotionInput) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type promotionService struct {
	client client.PromotionClient
	log    logging.Logger
}

func NewPromotionService(c client.PromotionClient, log logging.Logger) PromotionService {
	if log == nil {
		log = logging.NewNop()
	}
	return &promotionService{client: c, log: log}
}

func (p *promotionService) List(ctx context.Context) ([]models.Promotion, error) {
	list, err := p.client.Promotions(ctx)
	if err != nil {
		p.log.Warn(ctx, "list promotions", "error", err)
		return nil, &UserError{Message: PromotionsLoadFailedMessage, Err: err}
	}
	return list, nil
}

// ParsePromotion trims and validates a promotion form.
func ParsePromotion(in models.PromotionInput) (models.PromotionPayload, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.DiscountValue = strings.TrimSpace(in.DiscountValue)
	in.PromotionDesc = strings.TrimSpace(in.PromotionDesc)
	in.PromotionSummary = strings.TrimSpace(in.PromotionSummary)
	in.ExpDt = strings.TrimSpace(in.ExpDt)
	in.MinOrderAmt = strings.TrimSpace(in.MinOrderAmt)

	if err := validation.Struct(in, promotionMessages); err != nil {
		return models.PromotionPayload{}, err
	}

	discount, err := strconv.ParseFloat(in.DiscountValue, 64)
	if err != nil {
		return models.PromotionPayload{}, &validation.Error{Message: promotionMessages["discount_value.numeric"]}
	}
	minOrder, err := strconv.ParseFloat(in.MinOrderAmt, 64)
	if err != nil {
		return models.PromotionPayload{}, &validation.Error{Message: promotionMessages["min_order_amt.numeric"]}
	}

	return models.PromotionPayload{
		Code:             in.Code,
		DiscountValue:    discount,
		PromotionDesc:    in.PromotionDesc,
		PromotionSummary: in.PromotionSummary,
		ExpDt:            in.ExpDt,
		MinOrderAmt:      minOrder,
	}, nil
}

func (p *promotionService) Save(ctx context.Context, in models.PromotionInput) (string, error) {
	payload, err := ParsePromotion(in)
	if err != nil {
		return "", err
	}

	if in.ID == 0 {
		res, err := p.client.CreatePromotion(ctx, payload)
		return p.result(ctx, res, err, promotionAdded, PromotionAddFailedMessage, PromotionAddFailedMessage)
	}
	res, err := p.client.UpdatePromotion(ctx, in.ID, payload)
	return p.result(ctx, res, err, promotionSaved, PromotionSaveFailedMessage, PromotionSaveServerError)
}

func (p *promotionService) Delete(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", &validation.Error{Message: "Invalid promotion id."}
	}
	res, err := p.client.DeletePromotion(ctx, id)
	return p.result(ctx, res, err, promotionDeleted, PromotionDeleteFailed, PromotionDeleteServerError)
}

// result turns a mutation answer into a display message. A rejected request
// that carries a message (4xx with {success:false}) shows that message;
// transport errors and 5xx show serverFallback.
func (p *promotionService) result(ctx context.Context, res *models.APIResult, err error, okMsg, failMsg, serverFallback string) (string, error) {
	if err != nil {
		p.log.Warn(ctx, "promotion mutation failed", "error", err)
		var ae *client.APIError
		if errors.As(err, &ae) && ae.StatusCode < http.StatusInternalServerError && ae.Message != "" {
			return "", &UserError{Message: ae.Message, Err: err}
		}
		return "", &UserError{Message: serverFallback, Err: err}
	}
	if res == nil || !res.Success {
		msg := failMsg
		if res != nil && res.Message != "" {
			msg = res.Message
		}
		return "", &UserError{Message: msg}
	}
	if res.Message != "" {
		return res.Message, nil
	}
	return okMsg, nil
}
