package product

import "context"

// Repository defines the interface for product storage. There is no update
// or delete; stock adjustments go through ApplyStockDelta.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)

	// ApplyStockDelta adjusts a product's stock by a signed amount. Unknown
	// ids are a silent no-op and stock is never clamped at zero.
	ApplyStockDelta(ctx context.Context, id string, delta int) error
}
