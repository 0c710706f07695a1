package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
)

// Service defines purchase entry business logic.
type Service interface {
	// RecordPurchase validates the payload, appends the purchase, and
	// increments the referenced product's stock.
	RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*Purchase, error)
	ListPurchases(ctx context.Context) ([]*Purchase, error)
}

// RecordPurchaseRequest is the payload for recording a purchase.
type RecordPurchaseRequest struct {
	ID           string  `json:"id,omitempty"`
	Date         string  `json:"purchase_date"` // YYYY-MM-DD, defaults to today
	SupplierName string  `json:"supplier_name" validate:"required"`
	ProductID    string  `json:"product_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
	Notes        string  `json:"notes"`
}

type service struct {
	repo     Repository
	products product.Repository
	validate *validator.Validate
}

// NewService creates a new purchase service.
func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products, validate: validator.New()}
}

func (s *service) RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*Purchase, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid purchase: %w", err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	p := &Purchase{
		ID:           id,
		Date:         date,
		SupplierName: req.SupplierName,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.products.ApplyStockDelta(ctx, p.ProductID, p.Quantity); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListPurchases(ctx context.Context) ([]*Purchase, error) {
	return s.repo.List(ctx)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid purchase_date %q: expected YYYY-MM-DD", raw)
	}
	return date, nil
}
