package product

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service defines product catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}

// CreateProductRequest holds the data for registering a catalog product.
type CreateProductRequest struct {
	ID            string  `json:"id,omitempty"`
	Code          string  `json:"product_code"`
	Name          string  `json:"product_name" validate:"required"`
	Series        string  `json:"series" validate:"required"`
	Condition     string  `json:"condition" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
	SellingPrice  float64 `json:"selling_price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new product service.
func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	series := Series(req.Series)
	if !ValidSeries(series) {
		return nil, fmt.Errorf("invalid series: %s (allowed: Hirono, Kubo, Crybaby, TinyTiny, Labubu)", req.Series)
	}
	condition := Condition(req.Condition)
	if !ValidCondition(condition) {
		return nil, fmt.Errorf("invalid condition: %s (allowed: New, PreOrder, Second)", req.Condition)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	p := &Product{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		Series:        series,
		Condition:     condition,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}
