package sale

import "context"

// Repository defines the interface for sale storage. Sales are append-only.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
}
