package cashflow

import (
	"context"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/purchase"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

// Service recomputes the ledger from the source repositories on every read.
// Nothing is cached: the ledger is always a projection of current state.
type Service interface {
	Statement(ctx context.Context) ([]Entry, error)
}

type service struct {
	sales     sale.Repository
	purchases purchase.Repository
	expenses  expense.Repository
}

// NewService creates a new cash flow service.
func NewService(sales sale.Repository, purchases purchase.Repository, expenses expense.Repository) Service {
	return &service{sales: sales, purchases: purchases, expenses: expenses}
}

func (s *service) Statement(ctx context.Context) ([]Entry, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	return WithRunningBalance(Derive(sales, purchases, expenses)), nil
}
