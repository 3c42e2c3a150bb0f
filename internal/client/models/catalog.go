package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

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

// ReportValue is either a number or a string on the wire; it keeps the text
// form for display.
type ReportValue string

func (v *ReportValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = ReportValue(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("report value: %w", err)
	}
	*v = ReportValue(n.String())
	return nil
}

func (v ReportValue) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(v), 64); err == nil {
		return []byte(v), nil
	}
	return json.Marshal(string(v))
}

type Report struct {
	Name  string      `json:"name"`
	Value ReportValue `json:"value"`
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

// Address renders the street address on one line.
func (r RestaurantInfo) Address() string {
	return Address{Address1: r.StreetAddr1, Address2: r.StreetAddr2, City: r.City, State: r.State, Zip: r.ZipCode}.OneLine()
}

type RestaurantHours struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	DisplayText  string `json:"displayText"`
	SortOrder    int    `json:"sortOrder"`
}

// RestaurantDetails is what the restaurant info screen shows.
type RestaurantDetails struct {
	Name        string
	Address     string
	Phone       string
	Description string
	Hours       []string
}
