package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server/promotions"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

const (
	msgPromoAdded        = "Promotion added successfully."
	msgPromoUpdated      = "Promotion updated successfully."
	msgPromoDeleted      = "Promotion deleted successfully."
	msgPromoAddFailed    = "Failed to add promotion."
	msgPromoUpdateFailed = "Update failed. Promotion not found or no changes saved."
	msgPromoDeleteFailed = "Delete failed. Promotion not found."
	msgPromoAddError     = "Failed to add promotion due to a server error."
	msgPromoUpdateError  = "Update failed due to a server error."
	msgPromoDeleteError  = "Delete failed due to a server error."
	msgPromoBadBody      = "Invalid request body."
)

// resultResponse is the envelope of promotion mutations.
type resultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PromotionHandler struct {
	promotions *promotions.Service
	log        logging.Logger
}

func (h *PromotionHandler) List(c echo.Context) error {
	list, err := h.promotions.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PromotionHandler) Create(c echo.Context) error {
	form, err := readForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, resultResponse{Message: msgPromoBadBody})
	}

	p, err := h.promotions.Create(c.Request().Context(), form)
	if err != nil {
		return h.failure(c, err, msgPromoAddFailed, msgPromoAddError)
	}
	h.log.Info(c.Request().Context(), "promotion added", "id", p.ID, "code", p.Code)
	return c.JSON(http.StatusOK, resultResponse{Success: true, Message: msgPromoAdded})
}

func (h *PromotionHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, resultResponse{Message: msgPromoUpdateFailed})
	}
	form, err := readForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, resultResponse{Message: msgPromoBadBody})
	}

	if _, err := h.promotions.Update(c.Request().Context(), id, form); err != nil {
		return h.failure(c, err, msgPromoUpdateFailed, msgPromoUpdateError)
	}
	return c.JSON(http.StatusOK, resultResponse{Success: true, Message: msgPromoUpdated})
}

func (h *PromotionHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, resultResponse{Message: msgPromoDeleteFailed})
	}

	if err := h.promotions.Delete(c.Request().Context(), id); err != nil {
		return h.failure(c, err, msgPromoDeleteFailed, msgPromoDeleteError)
	}
	return c.JSON(http.StatusOK, resultResponse{Success: true, Message: msgPromoDeleted})
}

// failure answers 400 for input the service rejected and 500 for anything
// else.
func (h *PromotionHandler) failure(c echo.Context, err error, rejected, broken string) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, resultResponse{Message: ve.Message})
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusBadRequest, resultResponse{Message: rejected})
	default:
		h.log.Error(c.Request().Context(), "promotion request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, resultResponse{Message: broken})
	}
}

// readForm accepts numbers and strings alike for every field.
func readForm(c echo.Context) (promotions.Form, error) {
	body := map[string]any{}
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return promotions.Form{}, err
	}
	return promotions.Form{
		Code:             text(body["code"]),
		DiscountValue:    text(body["discount_value"]),
		PromotionDesc:    text(body["promotion_desc"]),
		PromotionSummary: text(body["promotion_summary"]),
		MinOrderAmt:      text(body["min_order_amt"]),
		ExpDt:            text(body["exp_dt"]),
	}, nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
