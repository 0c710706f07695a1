package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service defines expense entry business logic.
type Service interface {
	RecordExpense(ctx context.Context, req RecordExpenseRequest) (*Expense, error)
	ListExpenses(ctx context.Context) ([]*Expense, error)
}

// RecordExpenseRequest is the payload for recording an expense.
type RecordExpenseRequest struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"expense_date"` // YYYY-MM-DD, defaults to today
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Receipt     string  `json:"receipt"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new expense service.
func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) RecordExpense(ctx context.Context, req RecordExpenseRequest) (*Expense, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid expense: %w", err)
	}
	category := Category(req.Category)
	if !ValidCategory(category) {
		return nil, fmt.Errorf("invalid category: %s (allowed: Shipping, Packaging, Marketing, Other)", req.Category)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	e := &Expense{
		ID:          id,
		Date:        date,
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		Receipt:     req.Receipt,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) ListExpenses(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expense_date %q: expected YYYY-MM-DD", raw)
	}
	return date, nil
}
