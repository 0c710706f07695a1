package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
)

func newProductRepo(t *testing.T, stock int) product.Repository {
	t.Helper()
	repo := product.NewMemoryRepository()
	err := repo.Create(context.Background(), &product.Product{
		ID:            "p1",
		Name:          "Hirono The Other One",
		Series:        product.SeriesHirono,
		Condition:     product.ConditionNew,
		PurchasePrice: 150000,
		SellingPrice:  250000,
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return repo
}

func validRequest() RecordPurchaseRequest {
	return RecordPurchaseRequest{
		Date:         "2025-08-01",
		SupplierName: "Distributor A",
		ProductID:    "p1",
		Quantity:     5,
		UnitCost:     150000,
		Notes:        "Restock",
	}
}

func TestRecordPurchaseIncrementsStock(t *testing.T) {
	products := newProductRepo(t, 7)
	svc := NewService(NewMemoryRepository(), products)

	p, err := svc.RecordPurchase(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 750000.0, p.Total())

	prod, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 12, prod.StockQuantity)
}

func TestRecordPurchaseDanglingProductLeavesStockAlone(t *testing.T) {
	products := newProductRepo(t, 7)
	svc := NewService(NewMemoryRepository(), products)

	req := validRequest()
	req.ProductID = "ghost"
	_, err := svc.RecordPurchase(context.Background(), req)
	require.NoError(t, err)

	prod, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, prod.StockQuantity)
}

func TestRecordPurchaseValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), product.NewMemoryRepository())

	cases := []struct {
		name   string
		mutate func(*RecordPurchaseRequest)
	}{
		{"missing supplier", func(r *RecordPurchaseRequest) { r.SupplierName = "" }},
		{"missing product", func(r *RecordPurchaseRequest) { r.ProductID = "" }},
		{"zero quantity", func(r *RecordPurchaseRequest) { r.Quantity = 0 }},
		{"bad date", func(r *RecordPurchaseRequest) { r.Date = "01-08-2025" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.RecordPurchase(context.Background(), req)
			require.Error(t, err)
		})
	}

	purchases, err := svc.ListPurchases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
