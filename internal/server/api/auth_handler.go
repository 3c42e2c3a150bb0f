package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server/identity"
	"github.com/dmitrijs2005/pizzastore/internal/server/sessions"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

const (
	msgEmailRequired    = "A valid email address is required."
	msgCustomerLogin    = "Login successful"
	msgEmployeeLogin    = "Employee Login successful"
	msgNotCustomer      = "Invalid user type of customer."
	msgBadCustomerLogin = "Invalid username or password."
	msgNotWorker        = "Invalid user type for worker."
	msgBadEmployeeLogin = "Invalid userid or password."
	msgAccountCreated   = "Account created successfully."
	msgAccountExists    = "An account with that email already exists."
	msgLoggedIn         = "User is logged in."
	msgNotLoggedIn      = "No user is currently logged in."
	msgLoggedOut        = "Logged out."
)

type AuthHandler struct {
	resolver *identity.Resolver
	users    *users.Service
	sessions *sessions.Store
	log      logging.Logger
}

type identifyRequest struct {
	Email string `json:"email"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type userDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

type userResponse struct {
	Message string  `json:"message"`
	User    userDTO `json:"user"`
}

type statusResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Message  string `json:"message"`
	UserID   *int64 `json:"userId,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
}

func bindError() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}

// Identify tells the client which sign-in endpoint an email belongs to.
func (h *AuthHandler) Identify(c echo.Context) error {
	var req identifyRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	t := h.resolver.Resolve(req.Email)
	h.log.Info(c.Request().Context(), "identify", "login_type", string(t))
	if t == identity.Unknown {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgEmailRequired})
	}
	return c.JSON(http.StatusOK, map[string]identity.LoginType{"loginType": t})
}

func (h *AuthHandler) SignInCustomer(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	ctx := c.Request().Context()

	if h.resolver.Resolve(req.Username) != identity.Customer {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: msgNotCustomer})
	}

	cust, err := h.users.SignInCustomer(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.log.Warn(ctx, "failed sign-in attempt", "email", req.Username)
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: msgBadCustomerLogin})
		}
		return err
	}

	if err := h.startSession(c, cust.ID, RoleCustomer, cust.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{
		Message: msgCustomerLogin,
		User: userDTO{
			ID:        cust.ID,
			Email:     cust.Email,
			FirstName: cust.FirstName,
			LastName:  cust.LastName,
			Role:      RoleCustomer,
		},
	})
}

func (h *AuthHandler) SignInEmployee(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	ctx := c.Request().Context()

	if h.resolver.Resolve(req.Username) != identity.Worker {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: msgNotWorker})
	}

	emp, err := h.users.SignInEmployee(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.log.Warn(ctx, "failed employee sign-in attempt", "email", req.Username)
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: msgBadEmployeeLogin})
		}
		return err
	}

	if err := h.startSession(c, emp.ID, emp.Role, emp.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{
		Message: msgEmployeeLogin,
		User: userDTO{
			ID:        emp.ID,
			Email:     emp.Email,
			FirstName: emp.FirstName,
			LastName:  emp.LastName,
			Role:      emp.Role,
		},
	})
}

// Register creates a customer and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	cust, err := h.users.Register(ctx, users.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Address: users.Address{
			Address1: req.Address1,
			Address2: req.Address2,
			City:     req.City,
			State:    req.State,
			Zip:      req.Zip,
		},
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return c.JSON(http.StatusConflict, messageResponse{Message: msgAccountExists})
		}
		return err
	}
	h.log.Info(ctx, "customer registered", "id", cust.ID)

	if err := h.startSession(c, cust.ID, RoleCustomer, cust.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{
		Message: msgAccountCreated,
		User: userDTO{
			ID:        cust.ID,
			Email:     cust.Email,
			FirstName: cust.FirstName,
			LastName:  cust.LastName,
		},
	})
}

func (h *AuthHandler) Status(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusOK, statusResponse{Message: msgNotLoggedIn})
	}
	id := sess.UserID
	return c.JSON(http.StatusOK, statusResponse{
		LoggedIn: true,
		Message:  msgLoggedIn,
		UserID:   &id,
		Role:     sess.Role,
		Email:    sess.Email,
	})
}

// Logout always succeeds, with or without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess, ok := currentSession(c); ok {
		h.sessions.Delete(c.Request().Context(), sess.ID)
	}
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: msgLoggedOut})
}

// startSession replaces any session the request carried with a new one.
func (h *AuthHandler) startSession(c echo.Context, userID int64, role, email string) error {
	ctx := c.Request().Context()
	if old, ok := currentSession(c); ok {
		h.sessions.Delete(ctx, old.ID)
	}

	sess, err := h.sessions.Create(ctx, userID, role, email)
	if err != nil {
		return err
	}
	c.Set(sessionKey, sess)
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
