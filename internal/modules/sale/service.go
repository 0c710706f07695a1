package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
)

// Service defines sale entry business logic.
type Service interface {
	// RecordSale validates the payload, appends the sale, and decrements the
	// referenced product's stock. A dangling product id leaves stock alone.
	RecordSale(ctx context.Context, req RecordSaleRequest) (*Sale, error)
	GetSale(ctx context.Context, id string) (*Sale, error)
	ListSales(ctx context.Context) ([]*Sale, error)
}

// RecordSaleRequest is the payload for recording a sale.
type RecordSaleRequest struct {
	ID            string  `json:"id,omitempty"`
	Date          string  `json:"sale_date"` // YYYY-MM-DD, defaults to today
	CustomerID    string  `json:"customer_id" validate:"required"`
	ProductID     string  `json:"product_id" validate:"required"`
	Quantity      int     `json:"quantity" validate:"gt=0"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Status        string  `json:"status" validate:"required"`
}

type service struct {
	repo     Repository
	products product.Repository
	validate *validator.Validate
}

// NewService creates a new sale service. The product repository is used for
// the stock side effect only.
func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products, validate: validator.New()}
}

func (s *service) RecordSale(ctx context.Context, req RecordSaleRequest) (*Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid sale: %w", err)
	}
	method := PaymentMethod(req.PaymentMethod)
	if !ValidPaymentMethod(method) {
		return nil, fmt.Errorf("invalid payment_method: %s (allowed: Transfer, QRIS, Cash)", req.PaymentMethod)
	}
	status := Status(req.Status)
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s (allowed: Paid, Pending, Cancelled)", req.Status)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	sl := &Sale{
		ID:            id,
		Date:          date,
		CustomerID:    req.CustomerID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		PaymentMethod: method,
		Status:        status,
	}
	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}
	if err := s.products.ApplyStockDelta(ctx, sl.ProductID, -sl.Quantity); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSales(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid sale_date %q: expected YYYY-MM-DD", raw)
	}
	return date, nil
}
