package shop

import (
	"context"
	"fmt"
	"sync"
)

type memoryCartRepo struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryCartRepository creates an empty in-memory cart store.
func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepo{carts: make(map[string]*Cart)}
}

func (r *memoryCartRepo) Get(ctx context.Context, id string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("cart %s not found", id)
	}
	cp := *c
	cp.Items = append([]CartItem(nil), c.Items...)
	return &cp, nil
}

func (r *memoryCartRepo) Save(ctx context.Context, c *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.Items = append([]CartItem(nil), c.Items...)
	r.carts[c.ID] = &cp
	return nil
}

func (r *memoryCartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
	return nil
}
