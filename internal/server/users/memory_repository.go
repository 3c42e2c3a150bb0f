package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/pizzastore/internal/common"
)

// MemoryRepository keeps accounts in process memory. A record created with
// a non-zero ID keeps it; otherwise the next free ID is assigned.
type MemoryRepository struct {
	mu sync.RWMutex

	customers      map[int64]*Customer
	customerEmails map[string]int64
	nextCustomerID int64

	employees      map[string]*Employee
	nextEmployeeID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		customers:      make(map[int64]*Customer),
		customerEmails: make(map[string]int64),
		employees:      make(map[string]*Employee),
		nextCustomerID: 1,
		nextEmployeeID: 1,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *MemoryRepository) CreateCustomer(_ context.Context, c *Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(c.Email)
	if _, ok := r.customerEmails[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *c
	if stored.ID == 0 {
		stored.ID = r.nextCustomerID
	} else if _, ok := r.customers[stored.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if stored.ID >= r.nextCustomerID {
		r.nextCustomerID = stored.ID + 1
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.customers[stored.ID] = &stored
	r.customerEmails[key] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetCustomerByEmail(_ context.Context, email string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.customerEmails[emailKey(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r.customers[id]
	return &out, nil
}

func (r *MemoryRepository) GetCustomerByID(_ context.Context, id int64) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *c
	return &out, nil
}

func (r *MemoryRepository) UpdateCustomer(_ context.Context, id int64, upd ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok {
		return common.ErrorNotFound
	}
	c.FirstName = upd.FirstName
	c.LastName = upd.LastName
	c.Phone = upd.Phone
	c.Address = upd.Address
	return nil
}

func (r *MemoryRepository) CreateEmployee(_ context.Context, e *Employee) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(e.Email)
	if _, ok := r.employees[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *e
	if stored.ID == 0 {
		stored.ID = r.nextEmployeeID
	}
	if stored.ID >= r.nextEmployeeID {
		r.nextEmployeeID = stored.ID + 1
	}
	r.employees[key] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetEmployeeByEmail(_ context.Context, email string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[emailKey(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *e
	return &out, nil
}
