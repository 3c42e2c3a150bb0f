package users

import (
	"context"
)

// Repository stores customers and employees. Lookups by email are
// case-insensitive and return common.ErrorNotFound when nothing matches.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, upd ProfileUpdate) error

	CreateEmployee(ctx context.Context, e *Employee) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
}
