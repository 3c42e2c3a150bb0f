package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/server/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func (h *CatalogHandler) CrustTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.CrustTypes())
}

func (h *CatalogHandler) Pizzas(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Pizzas())
}

func (h *CatalogHandler) Cart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Cart())
}

func (h *CatalogHandler) CheckoutSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.CheckoutSummary())
}

func (h *CatalogHandler) Orders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Orders())
}

func (h *CatalogHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Stats())
}

func (h *CatalogHandler) Reports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Reports())
}

// RestaurantInfo answers 404 with an empty body when nothing is configured.
func (h *CatalogHandler) RestaurantInfo(c echo.Context) error {
	info, ok := h.catalog.RestaurantInfo()
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *CatalogHandler) RestaurantHours(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.RestaurantHours())
}

// Liveness reports that the process is up.
func Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
