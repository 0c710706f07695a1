package sale

import (
	"context"
	"fmt"
	"sync"
)

type memoryRepo struct {
	mu    sync.RWMutex
	sales []*Sale
}

// NewMemoryRepository creates an empty in-memory sale store. Records are
// kept in insertion order.
func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Create(ctx context.Context, s *Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("sale %s not found", id)
}

func (r *memoryRepo) List(ctx context.Context) ([]*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Sale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
