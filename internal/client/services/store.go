package services

import (
	"context"
	"sort"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
)

const (
	FallbackPhone   = "(555) 123-4567"
	FallbackAddress = "123 Main St, Colorado Springs, CO 80903"
)

// FallbackHours are shown when the backend has no opening hours to offer.
var FallbackHours = []string{
	"Monday - Thursday: 11:00 AM - 9:00 PM",
	"Friday: 11:00 AM - 10:00 PM",
	"Saturday: 12:00 PM - 10:00 PM",
	"Sunday: 12:00 PM - 8:00 PM",
}

// StoreService reads the catalog, the cart and the manager dashboard.
type StoreService interface {
	Menu(ctx context.Context) ([]models.CrustType, error)
	Pizzas(ctx context.Context) ([]models.Pizza, error)
	Cart(ctx context.Context) (*models.Cart, error)
	Checkout(ctx context.Context) (*models.CheckoutSummary, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Stats(ctx context.Context) (*models.Stats, error)
	Reports(ctx context.Context) ([]models.Report, error)
	// Title never fails; it falls back to the default restaurant name.
	Title(ctx context.Context) string
	// RestaurantDetails always returns something displayable. A non-nil error
	// means some of it is fallback data.
	RestaurantDetails(ctx context.Context) (models.RestaurantDetails, error)
}

type storeService struct {
	client client.StoreClient
	log    logging.Logger
}

func NewStoreService(c client.StoreClient, log logging.Logger) StoreService {
	if log == nil {
		log = logging.NewNop()
	}
	return &storeService{client: c, log: log}
}

func (s *storeService) Menu(ctx context.Context) ([]models.CrustType, error) {
	return s.client.CrustTypes(ctx)
}

func (s *storeService) Pizzas(ctx context.Context) ([]models.Pizza, error) {
	return s.client.Pizzas(ctx)
}

func (s *storeService) Cart(ctx context.Context) (*models.Cart, error) {
	return s.client.Cart(ctx)
}

func (s *storeService) Checkout(ctx context.Context) (*models.CheckoutSummary, error) {
	return s.client.CheckoutSummary(ctx)
}

func (s *storeService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.client.Orders(ctx)
}

func (s *storeService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.client.Stats(ctx)
}

func (s *storeService) Reports(ctx context.Context) ([]models.Report, error) {
	return s.client.Reports(ctx)
}

func (s *storeService) Title(ctx context.Context) string {
	info, err := s.client.RestaurantInfo(ctx)
	if err != nil || strings.TrimSpace(info.Name) == "" {
		return common.DefaultRestaurantName
	}
	return info.Name
}

func (s *storeService) RestaurantDetails(ctx context.Context) (models.RestaurantDetails, error) {
	d := models.RestaurantDetails{
		Name:    common.DefaultRestaurantName,
		Address: FallbackAddress,
		Phone:   FallbackPhone,
		Hours:   append([]string(nil), FallbackHours...),
	}

	info, err := s.client.RestaurantInfo(ctx)
	if err != nil {
		s.log.Warn(ctx, "restaurant info unavailable, using defaults", "error", err)
		return d, err
	}
	if info.Name != "" {
		d.Name = info.Name
	}
	if addr := info.Address(); addr != "" {
		d.Address = addr
	}
	if info.PhoneNumber != "" {
		d.Phone = info.PhoneNumber
	}
	d.Description = info.Description

	hours, err := s.client.RestaurantHours(ctx)
	if err != nil {
		s.log.Warn(ctx, "restaurant hours unavailable, using defaults", "error", err)
		return d, err
	}
	if len(hours) > 0 {
		sort.SliceStable(hours, func(i, j int) bool { return hours[i].SortOrder < hours[j].SortOrder })
		d.Hours = d.Hours[:0]
		for _, h := range hours {
			d.Hours = append(d.Hours, h.DisplayText)
		}
	}
	return d, nil
}
