package product

import (
	"context"
	"fmt"
	"sync"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []*Product
}

// NewMemoryRepository creates an empty in-memory product store. Records are
// kept in insertion order.
func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (r *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepo) ApplyStockDelta(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			p.StockQuantity += delta
			return nil
		}
	}
	// Unknown product: dangling references adjust nothing.
	return nil
}
