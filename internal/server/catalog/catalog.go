// Package catalog serves the read-only storefront data: menu, crusts, the
// demo cart and orders, dashboard figures and restaurant details.
package catalog

import "sync"

type CrustType struct {
	CrustID   int64   `json:"crustId"`
	CrustName string  `json:"crustName"`
	Price     float64 `json:"price"`
}

type Pizza struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CartItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type SummaryItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type CheckoutSummary struct {
	Items    []SummaryItem `json:"items"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`
}

type Order struct {
	ID     int64   `json:"id"`
	Items  string  `json:"items"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

type Stats struct {
	OrdersToday  int     `json:"ordersToday"`
	RevenueToday float64 `json:"revenueToday"`
	MenuItems    int     `json:"menuItems"`
}

// Report values are numbers or text.
type Report struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type RestaurantInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StreetAddr1 string `json:"streetAddr1"`
	StreetAddr2 string `json:"streetAddr2"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	PhoneNumber string `json:"phoneNumber"`
	Description string `json:"description"`
}

type RestaurantHours struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	DisplayText  string `json:"displayText"`
	SortOrder    int    `json:"sortOrder"`
}

// Catalog is safe for concurrent use. Getters return copies.
type Catalog struct {
	mu         sync.RWMutex
	crusts     []CrustType
	pizzas     []Pizza
	cart       Cart
	checkout   CheckoutSummary
	orders     []Order
	stats      Stats
	reports    []Report
	restaurant *RestaurantInfo
	hours      []RestaurantHours
}

func (c *Catalog) CrustTypes() []CrustType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]CrustType(nil), c.crusts...)
}

func (c *Catalog) Pizzas() []Pizza {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Pizza(nil), c.pizzas...)
}

func (c *Catalog) Cart() Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.cart
	out.Items = append([]CartItem(nil), c.cart.Items...)
	return out
}

func (c *Catalog) CheckoutSummary() CheckoutSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.checkout
	out.Items = append([]SummaryItem(nil), c.checkout.Items...)
	return out
}

func (c *Catalog) Orders() []Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Order(nil), c.orders...)
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Catalog) Reports() []Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Report(nil), c.reports...)
}

// RestaurantInfo reports false when no restaurant is configured.
func (c *Catalog) RestaurantInfo() (RestaurantInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.restaurant == nil {
		return RestaurantInfo{}, false
	}
	return *c.restaurant, true
}

func (c *Catalog) RestaurantHours() []RestaurantHours {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]RestaurantHours(nil), c.hours...)
}

// SetRestaurant replaces the restaurant details; nil removes them.
func (c *Catalog) SetRestaurant(info *RestaurantInfo, hours []RestaurantHours) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if info != nil {
		cp := *info
		info = &cp
	}
	c.restaurant = info
	c.hours = append([]RestaurantHours(nil), hours...)
}
