package shop

import "context"

// CartRepository defines the interface for cart storage. Carts are
// transient; checkout deletes them.
type CartRepository interface {
	Get(ctx context.Context, id string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, id string) error
}
