package customer

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service defines customer business logic.
type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

// CreateCustomerRequest holds the data for registering a customer.
type CreateCustomerRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"customer_name" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	SocialMedia string `json:"social_media"`
	Type        string `json:"customer_type" validate:"required"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid customer: %w", err)
	}
	ctype := Type(req.Type)
	if !ValidType(ctype) {
		return nil, fmt.Errorf("invalid customer_type: %s (allowed: Collector, Reseller, Regular)", req.Type)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	c := &Customer{
		ID:          id,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		SocialMedia: req.SocialMedia,
		Type:        ctype,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}
