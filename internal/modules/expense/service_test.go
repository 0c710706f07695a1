package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() RecordExpenseRequest {
	return RecordExpenseRequest{
		Date:        "2025-08-05",
		Category:    "Shipping",
		Description: "Kirim barang ke customer",
		Amount:      25000,
	}
}

func TestRecordExpense(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	e, err := svc.RecordExpense(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, CategoryShipping, e.Category)
	assert.Equal(t, 25000.0, e.Amount)
}

func TestRecordExpenseValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	cases := []struct {
		name   string
		mutate func(*RecordExpenseRequest)
	}{
		{"missing description", func(r *RecordExpenseRequest) { r.Description = "" }},
		{"zero amount", func(r *RecordExpenseRequest) { r.Amount = 0 }},
		{"negative amount", func(r *RecordExpenseRequest) { r.Amount = -100 }},
		{"unknown category", func(r *RecordExpenseRequest) { r.Category = "Rent" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.RecordExpense(context.Background(), req)
			require.Error(t, err)
		})
	}

	expenses, err := svc.ListExpenses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, expenses)
}
