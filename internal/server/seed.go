package server

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pizzastore/internal/server/promotions"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

// DemoAccount is a login the development backend starts with.
type DemoAccount struct {
	ID        int64
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Role is empty for customers.
	Role string
}

// DemoCustomers are seeded as storefront accounts.
var DemoCustomers = []DemoAccount{
	{ID: 7, Email: "jane@customer.example", Password: "pizza123", FirstName: "Jane", LastName: "Doe"},
	{ID: 8, Email: "john.smith@example.com", Password: "password", FirstName: "John", LastName: "Smith"},
}

// DemoStaff returns the staff accounts for the given company domain.
func DemoStaff(companyDomain string) []DemoAccount {
	return []DemoAccount{
		{ID: 1, Email: "manager@" + companyDomain, Password: "admin123", FirstName: "Mia", LastName: "Rossi", Role: "Manager"},
		{ID: 2, Email: "cook@" + companyDomain, Password: "cook123", FirstName: "Luca", LastName: "Bianchi", Role: "Cook"},
	}
}

var demoPromotions = []promotions.Form{
	{
		Code:             "PIZZA10",
		DiscountValue:    "10",
		PromotionDesc:    "10% off any order over $20",
		PromotionSummary: "Save 10% today",
		MinOrderAmt:      "20",
		ExpDt:            "2026-12-31",
	},
	{
		Code:             "FAMILY5",
		DiscountValue:    "5",
		PromotionDesc:    "$5 off family meals",
		PromotionSummary: "Family night deal",
		MinOrderAmt:      "35",
		ExpDt:            "2026-06-30",
	},
}

func seed(ctx context.Context, us *users.Service, ps *promotions.Service, companyDomain string) error {
	for _, a := range DemoCustomers {
		_, err := us.AddCustomer(ctx, users.Customer{
			ID:        a.ID,
			Email:     a.Email,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Phone:     "(555) 010-0007",
			Address: users.Address{
				Address1: "456 Oak Avenue",
				City:     "Springfield",
				State:    "IL",
				Zip:      "62702",
			},
		}, a.Password)
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", a.Email, err)
		}
	}

	for _, a := range DemoStaff(companyDomain) {
		_, err := us.AddEmployee(ctx, users.Employee{
			ID:        a.ID,
			Email:     a.Email,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Role:      a.Role,
		}, a.Password)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", a.Email, err)
		}
	}

	for _, f := range demoPromotions {
		if _, err := ps.Create(ctx, f); err != nil {
			return fmt.Errorf("seed promotion %s: %w", f.Code, err)
		}
	}
	return nil
}
