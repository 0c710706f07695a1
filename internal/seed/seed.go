package seed

import (
	"context"
	"time"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/customer"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/purchase"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

// Repos collects the stores the demo dataset is written into.
type Repos struct {
	Products  product.Repository
	Customers customer.Repository
	Sales     sale.Repository
	Purchases purchase.Repository
	Expenses  expense.Repository
}

// Load fills the stores with the demo shop: six products, three
// customers, and a spread of sales, purchases, and expenses. Dates are
// relative to now so the monthly views have data. Records go straight to
// the repositories; stock quantities already reflect the seeded sales.
func Load(ctx context.Context, repos Repos) error {
	day := func(offset int) time.Time {
		t := time.Now().AddDate(0, 0, offset)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	lastMonth := func(offset int) time.Time {
		t := time.Now().AddDate(0, -1, offset)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}

	products := []*product.Product{
		{ID: "p1", Code: "HRN01", Name: "Hirono The Other One", Series: product.SeriesHirono, Condition: product.ConditionNew, PurchasePrice: 150000, SellingPrice: 250000, StockQuantity: 12},
		{ID: "p2", Code: "KBO01", Name: "Kubo Walks of Life", Series: product.SeriesKubo, Condition: product.ConditionNew, PurchasePrice: 160000, SellingPrice: 260000, StockQuantity: 8},
		{ID: "p3", Code: "CRY01", Name: "Crybaby Crying Parade", Series: product.SeriesCrybaby, Condition: product.ConditionPreOrder, PurchasePrice: 175000, SellingPrice: 280000, StockQuantity: 5},
		{ID: "p4", Code: "TNY01", Name: "TinyTiny City Farmer", Series: product.SeriesTinyTiny, Condition: product.ConditionSecond, PurchasePrice: 100000, SellingPrice: 180000, StockQuantity: 3},
		{ID: "p5", Code: "HRN02", Name: "Hirono Little Mischief", Series: product.SeriesHirono, Condition: product.ConditionNew, PurchasePrice: 155000, SellingPrice: 255000, StockQuantity: 20},
		{ID: "p6", Code: "CRY02", Name: "Crybaby Sad Club", Series: product.SeriesCrybaby, Condition: product.ConditionNew, PurchasePrice: 180000, SellingPrice: 290000, StockQuantity: 2},
	}
	for _, p := range products {
		if err := repos.Products.Create(ctx, p); err != nil {
			return err
		}
	}

	customers := []*customer.Customer{
		{ID: "c1", Name: "Andi Collector", Phone: "081234567890", Email: "andi@mail.com", SocialMedia: "@andicollects", Type: customer.TypeCollector},
		{ID: "c2", Name: "Budi Reseller", Phone: "081234567891", Email: "budi@mail.com", SocialMedia: "@buditoys", Type: customer.TypeReseller},
		{ID: "c3", Name: "Citra Regular", Phone: "081234567892", Email: "citra@mail.com", SocialMedia: "@citra", Type: customer.TypeRegular},
	}
	for _, c := range customers {
		if err := repos.Customers.Create(ctx, c); err != nil {
			return err
		}
	}

	sales := []*sale.Sale{
		{ID: "s1", Date: day(0), CustomerID: "c1", ProductID: "p1", Quantity: 1, UnitPrice: 250000, PaymentMethod: sale.PaymentTransfer, Status: sale.StatusPaid},
		{ID: "s2", Date: day(0), CustomerID: "c2", ProductID: "p5", Quantity: 5, UnitPrice: 255000, PaymentMethod: sale.PaymentQRIS, Status: sale.StatusPaid},
		{ID: "s3", Date: day(-2), CustomerID: "c3", ProductID: "p2", Quantity: 1, UnitPrice: 260000, PaymentMethod: sale.PaymentCash, Status: sale.StatusPending},
		{ID: "s4", Date: lastMonth(0), CustomerID: "c1", ProductID: "p3", Quantity: 1, UnitPrice: 280000, PaymentMethod: sale.PaymentTransfer, Status: sale.StatusPaid},
		{ID: "s5", Date: day(-5), CustomerID: "c2", ProductID: "p6", Quantity: 2, UnitPrice: 290000, PaymentMethod: sale.PaymentQRIS, Status: sale.StatusCancelled},
		{ID: "s6", Date: lastMonth(0), CustomerID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 250000, PaymentMethod: sale.PaymentTransfer, Status: sale.StatusPaid},
	}
	for _, s := range sales {
		if err := repos.Sales.Create(ctx, s); err != nil {
			return err
		}
	}

	purchases := []*purchase.Purchase{
		{ID: "pu1", Date: lastMonth(0), SupplierName: "Distributor A", ProductID: "p1", Quantity: 15, UnitCost: 150000, Notes: "Initial stock"},
		{ID: "pu2", Date: lastMonth(0), SupplierName: "Distributor B", ProductID: "p5", Quantity: 25, UnitCost: 155000, Notes: "Restock Hirono"},
	}
	for _, p := range purchases {
		if err := repos.Purchases.Create(ctx, p); err != nil {
			return err
		}
	}

	expenses := []*expense.Expense{
		{ID: "e1", Date: day(-1), Category: expense.CategoryShipping, Description: "Kirim barang ke customer C1", Amount: 25000},
		{ID: "e2", Date: day(-3), Category: expense.CategoryPackaging, Description: "Beli bubble wrap & box", Amount: 150000},
		{ID: "e3", Date: lastMonth(0), Category: expense.CategoryMarketing, Description: "Iklan Instagram", Amount: 300000},
	}
	for _, e := range expenses {
		if err := repos.Expenses.Create(ctx, e); err != nil {
			return err
		}
	}

	return nil
}
