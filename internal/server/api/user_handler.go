package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

// UserHandler serves the signed-in customer's own profile.
type UserHandler struct {
	users *users.Service
}

type addressDTO struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

type profileResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	Address   addressDTO `json:"address"`
}

type profileUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

var (
	respNotAuthenticated = messageResponse{Message: "Not authenticated"}
	respUserNotFound     = messageResponse{Message: "User not found"}
)

// customerID returns the id of a customer session. Staff sessions have no
// customer profile.
func customerID(c echo.Context) (int64, bool, bool) {
	sess, ok := currentSession(c)
	if !ok {
		return 0, false, false
	}
	return sess.UserID, true, sess.Role == RoleCustomer
}

func (h *UserHandler) Get(c echo.Context) error {
	id, authed, isCustomer := customerID(c)
	if !authed {
		return c.JSON(http.StatusUnauthorized, respNotAuthenticated)
	}
	if !isCustomer {
		return c.JSON(http.StatusNotFound, respUserNotFound)
	}

	cust, err := h.users.Customer(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, respUserNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:        cust.ID,
		Email:     cust.Email,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		Phone:     cust.Phone,
		Address: addressDTO{
			Address1: cust.Address.Address1,
			Address2: cust.Address.Address2,
			City:     cust.Address.City,
			State:    cust.Address.State,
			Zip:      cust.Address.Zip,
		},
	})
}

func (h *UserHandler) Update(c echo.Context) error {
	id, authed, isCustomer := customerID(c)
	if !authed {
		return c.JSON(http.StatusUnauthorized, respNotAuthenticated)
	}
	if !isCustomer {
		return c.JSON(http.StatusNotFound, respUserNotFound)
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	err := h.users.UpdateProfile(c.Request().Context(), id, users.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address: users.Address{
			Address1: req.Address1,
			Address2: req.Address2,
			City:     req.City,
			State:    req.State,
			Zip:      req.Zip,
		},
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, respUserNotFound)
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}
