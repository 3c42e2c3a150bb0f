// Package api exposes the development backend over HTTP with echo.
package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server/catalog"
	"github.com/dmitrijs2005/pizzastore/internal/server/identity"
	"github.com/dmitrijs2005/pizzastore/internal/server/promotions"
	"github.com/dmitrijs2005/pizzastore/internal/server/sessions"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

// Deps are the services the router dispatches to.
type Deps struct {
	Resolver   *identity.Resolver
	Users      *users.Service
	Sessions   *sessions.Store
	Promotions *promotions.Service
	Catalog    *catalog.Catalog
	Logger     logging.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	log := d.Logger
	if log == nil {
		log = logging.NewNop()
	}
	log = log.With("module", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader: common.RequestIDHeaderName,
	}))
	e.Use(RequestLogger(log))
	e.Use(LoadSession(d.Sessions))

	auth := &AuthHandler{resolver: d.Resolver, users: d.Users, sessions: d.Sessions, log: log}
	user := &UserHandler{users: d.Users}
	promos := &PromotionHandler{promotions: d.Promotions, log: log}
	store := &CatalogHandler{catalog: d.Catalog}

	e.GET("/health", Liveness)

	a := e.Group("/api/auth")
	a.GET("/status", auth.Status)
	a.POST("/logout", auth.Logout)
	a.POST("/identify", auth.Identify)
	a.POST("/signIn/customer", auth.SignInCustomer)
	a.POST("/signIn/employee", auth.SignInEmployee)
	a.POST("/register/new/customer", auth.Register)

	e.GET("/api/user", user.Get)
	e.PUT("/api/user", user.Update)

	e.GET("/api/promotions", promos.List)
	e.POST("/api/promotions", promos.Create, RequireStaff)
	e.PUT("/api/promotions/:id", promos.Update, RequireStaff)
	e.DELETE("/api/promotions/:id", promos.Delete, RequireStaff)

	e.GET("/api/crust-types", store.CrustTypes)
	e.GET("/api/pizzas", store.Pizzas)
	e.GET("/api/cart", store.Cart)
	e.GET("/api/checkout/summary", store.CheckoutSummary)
	e.GET("/api/orders", store.Orders)
	e.GET("/api/stats", store.Stats)
	e.GET("/api/reports", store.Reports)
	e.GET("/api/restaurant-info", store.RestaurantInfo)
	e.GET("/api/restaurant-hours", store.RestaurantHours)

	return e
}
