package promotions

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/pizzastore/internal/common"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	rows   map[int64]Promotion
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]Promotion), nextID: 1}
}

// List returns promotions ordered by id.
func (r *MemoryRepository) List(_ context.Context) ([]Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Promotion, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, p Promotion) (Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
	} else if _, ok := r.rows[p.ID]; ok {
		return Promotion{}, common.ErrorAlreadyExists
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.rows[p.ID] = p
	return p, nil
}

func (r *MemoryRepository) Update(_ context.Context, p Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[p.ID]; !ok {
		return common.ErrorNotFound
	}
	r.rows[p.ID] = p
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.rows, id)
	return nil
}
