package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/pizzastore/internal/common"
)

// Registration is a new customer account as submitted.
type Registration struct {
	FirstName string
	LastName  string
	Phone     string
	Address   Address
	Email     string
	Password  string
}

type Service struct {
	repo     Repository
	hashCost int
}

type Option func(*Service)

// WithHashCost sets the bcrypt cost used for new password hashes.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, hashCost: bcrypt.DefaultCost}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) hash(password string) ([]byte, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

func checkPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Register creates a customer. An email already on file yields
// common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, reg Registration) (*Customer, error) {
	if _, err := s.repo.GetCustomerByEmail(ctx, reg.Email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hash(reg.Password)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.CreateCustomer(ctx, &Customer{
		Email:        strings.TrimSpace(reg.Email),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Phone:        reg.Phone,
		Address:      reg.Address,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating customer: %w", err)
	}
	return c, nil
}

// AddCustomer stores c as is, hashing password. Used to seed accounts
// with fixed IDs.
func (s *Service) AddCustomer(ctx context.Context, c Customer, password string) (*Customer, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	c.PasswordHash = hash
	return s.repo.CreateCustomer(ctx, &c)
}

// AddEmployee stores a staff account with the given plain-text password.
func (s *Service) AddEmployee(ctx context.Context, e Employee, password string) (*Employee, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	e.PasswordHash = hash
	return s.repo.CreateEmployee(ctx, &e)
}

// SignInCustomer returns common.ErrorUnauthorized for an unknown email or a
// wrong password alike.
func (s *Service) SignInCustomer(ctx context.Context, email, password string) (*Customer, error) {
	c, err := s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !checkPassword(c.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return c, nil
}

func (s *Service) SignInEmployee(ctx context.Context, email, password string) (*Employee, error) {
	e, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !checkPassword(e.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return e, nil
}

func (s *Service) Customer(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	return s.repo.UpdateCustomer(ctx, id, upd)
}
