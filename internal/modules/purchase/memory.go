package purchase

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu        sync.RWMutex
	purchases []*Purchase
}

// NewMemoryRepository creates an empty in-memory purchase store. Records
// are kept in insertion order.
func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Create(ctx context.Context, p *Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.purchases = append(r.purchases, &cp)
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
