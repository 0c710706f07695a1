package purchase

import "context"

// Repository defines the interface for purchase storage. Purchases are
// append-only.
type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	List(ctx context.Context) ([]*Purchase, error)
}
