package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/customer"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

var testNow = time.Date(2025, time.August, 15, 12, 0, 0, 0, time.Local)

func thisMonth(day int) time.Time {
	return time.Date(2025, time.August, day, 0, 0, 0, 0, time.Local)
}

func lastMonth(day int) time.Time {
	return time.Date(2025, time.July, day, 0, 0, 0, 0, time.Local)
}

type fixture struct {
	svc       *service
	products  product.Repository
	customers customer.Repository
	sales     sale.Repository
	expenses  expense.Repository
}

func newFixture() *fixture {
	products := product.NewMemoryRepository()
	customers := customer.NewMemoryRepository()
	sales := sale.NewMemoryRepository()
	expenses := expense.NewMemoryRepository()
	svc := &service{
		sales:     sales,
		products:  products,
		customers: customers,
		expenses:  expenses,
		now:       func() time.Time { return testNow },
	}
	return &fixture{svc: svc, products: products, customers: customers, sales: sales, expenses: expenses}
}

func (f *fixture) addProduct(t *testing.T, p *product.Product) {
	t.Helper()
	require.NoError(t, f.products.Create(context.Background(), p))
}

func (f *fixture) addSale(t *testing.T, s *sale.Sale) {
	t.Helper()
	require.NoError(t, f.sales.Create(context.Background(), s))
}

func TestProfitAndLossCurrentMonth(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Name: "Hirono The Other One", Series: product.SeriesHirono, PurchasePrice: 60000, SellingPrice: 100000, StockQuantity: 10})
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(10), CustomerID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 100000, Status: sale.StatusPaid})
	require.NoError(t, f.expenses.Create(context.Background(), &expense.Expense{ID: "e1", Date: thisMonth(12), Category: expense.CategoryShipping, Description: "Kirim", Amount: 10000}))

	pl, err := f.svc.ProfitAndLoss(context.Background(), PeriodCurrentMonth)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, pl.Revenue)
	assert.Equal(t, 120000.0, pl.COGS)
	assert.Equal(t, 80000.0, pl.GrossProfit)
	assert.Equal(t, 10000.0, pl.OperatingExpenses)
	assert.Equal(t, 70000.0, pl.NetProfit)
}

func TestProfitAndLossExcludesOtherMonthsAndUnpaidSales(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Series: product.SeriesHirono, PurchasePrice: 60000})
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(10), ProductID: "p1", Quantity: 1, UnitPrice: 100000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: lastMonth(10), ProductID: "p1", Quantity: 3, UnitPrice: 100000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s3", Date: thisMonth(11), ProductID: "p1", Quantity: 5, UnitPrice: 100000, Status: sale.StatusPending})
	require.NoError(t, f.expenses.Create(context.Background(), &expense.Expense{ID: "e1", Date: lastMonth(1), Category: expense.CategoryOther, Description: "x", Amount: 99999}))

	pl, err := f.svc.ProfitAndLoss(context.Background(), PeriodCurrentMonth)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, pl.Revenue)
	assert.Equal(t, 60000.0, pl.COGS)
	assert.Equal(t, 0.0, pl.OperatingExpenses)

	all, err := f.svc.ProfitAndLoss(context.Background(), PeriodAllTime)
	require.NoError(t, err)
	assert.Equal(t, 400000.0, all.Revenue)
	assert.Equal(t, 240000.0, all.COGS)
	assert.Equal(t, 99999.0, all.OperatingExpenses)
}

func TestProfitAndLossDanglingProductCostsZero(t *testing.T) {
	f := newFixture()
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(10), ProductID: "ghost", Quantity: 2, UnitPrice: 100000, Status: sale.StatusPaid})

	pl, err := f.svc.ProfitAndLoss(context.Background(), PeriodCurrentMonth)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, pl.Revenue)
	assert.Equal(t, 0.0, pl.COGS)
	assert.Equal(t, 200000.0, pl.GrossProfit)
}

func TestProfitAndLossRejectsUnknownPeriod(t *testing.T) {
	f := newFixture()
	_, err := f.svc.ProfitAndLoss(context.Background(), Period("weekly"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid period")
}

func TestProfitBySeriesSkipsDanglingReferences(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Series: product.SeriesHirono, PurchasePrice: 150000})
	f.addProduct(t, &product.Product{ID: "p2", Series: product.SeriesKubo, PurchasePrice: 160000})
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(1), ProductID: "p1", Quantity: 2, UnitPrice: 250000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: thisMonth(2), ProductID: "p2", Quantity: 1, UnitPrice: 260000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s3", Date: thisMonth(3), ProductID: "ghost", Quantity: 9, UnitPrice: 500000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s4", Date: thisMonth(4), ProductID: "p1", Quantity: 3, UnitPrice: 250000, Status: sale.StatusCancelled})

	report, err := f.svc.ProfitBySeries(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, product.SeriesHirono, report[0].Series)
	assert.Equal(t, 200000.0, report[0].Profit)
	assert.Equal(t, product.SeriesKubo, report[1].Series)
	assert.Equal(t, 100000.0, report[1].Profit)
}

func TestRevenueByCustomerTypeSkipsDanglingReferences(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.customers.Create(context.Background(), &customer.Customer{ID: "c1", Name: "Andi", Type: customer.TypeCollector}))
	require.NoError(t, f.customers.Create(context.Background(), &customer.Customer{ID: "c2", Name: "Budi", Type: customer.TypeReseller}))
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(1), CustomerID: "c1", Quantity: 1, UnitPrice: 250000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: thisMonth(2), CustomerID: "c2", Quantity: 5, UnitPrice: 255000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s3", Date: thisMonth(3), CustomerID: "ghost", Quantity: 3, UnitPrice: 100000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s4", Date: thisMonth(4), CustomerID: "c1", Quantity: 2, UnitPrice: 250000, Status: sale.StatusPending})

	report, err := f.svc.RevenueByCustomerType(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, customer.TypeCollector, report[0].Type)
	assert.Equal(t, 250000.0, report[0].Revenue)
	assert.Equal(t, customer.TypeReseller, report[1].Type)
	assert.Equal(t, 1275000.0, report[1].Revenue)
}

func TestStockValuationPropagatesNegativeStock(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Name: "Hirono", PurchasePrice: 150000, StockQuantity: 10})
	f.addProduct(t, &product.Product{ID: "p2", Name: "Kubo", PurchasePrice: 160000, StockQuantity: -2})

	report, err := f.svc.StockValuation(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	// Sorted by value descending.
	assert.Equal(t, "p1", report.Items[0].ProductID)
	assert.Equal(t, 1500000.0, report.Items[0].Value)
	assert.Equal(t, -320000.0, report.Items[1].Value)
	assert.Equal(t, 1180000.0, report.Total)
}

func TestBestSellingSeries(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Series: product.SeriesHirono})
	f.addProduct(t, &product.Product{ID: "p2", Series: product.SeriesKubo})
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(1), ProductID: "p1", Quantity: 5, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: thisMonth(2), ProductID: "p2", Quantity: 3, Status: sale.StatusPending})

	best, err := f.svc.BestSellingSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hirono", best)
}

func TestBestSellingSeriesEmptySales(t *testing.T) {
	f := newFixture()
	best, err := f.svc.BestSellingSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, NoBestSeller, best)
}

func TestBestSellingSeriesTieBreaksLexicographically(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Series: product.SeriesKubo})
	f.addProduct(t, &product.Product{ID: "p2", Series: product.SeriesCrybaby})
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(1), ProductID: "p1", Quantity: 4, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: thisMonth(2), ProductID: "p2", Quantity: 4, Status: sale.StatusPaid})

	best, err := f.svc.BestSellingSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Crybaby", best)
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture()
	f.addProduct(t, &product.Product{ID: "p1", Name: "Hirono", Series: product.SeriesHirono, PurchasePrice: 150000, StockQuantity: 12})
	f.addProduct(t, &product.Product{ID: "p2", Name: "Kubo", Series: product.SeriesKubo, PurchasePrice: 160000, StockQuantity: 3})
	require.NoError(t, f.customers.Create(context.Background(), &customer.Customer{ID: "c1", Name: "Andi", Type: customer.TypeCollector}))
	f.addSale(t, &sale.Sale{ID: "s1", Date: thisMonth(10), CustomerID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 250000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s2", Date: lastMonth(10), CustomerID: "c1", ProductID: "p2", Quantity: 1, UnitPrice: 260000, Status: sale.StatusPaid})
	f.addSale(t, &sale.Sale{ID: "s3", Date: thisMonth(11), CustomerID: "c1", ProductID: "p2", Quantity: 1, UnitPrice: 260000, Status: sale.StatusPending})
	require.NoError(t, f.expenses.Create(context.Background(), &expense.Expense{ID: "e1", Date: thisMonth(12), Category: expense.CategoryShipping, Description: "Kirim", Amount: 25000}))

	summary, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500000.0, summary.MonthlyRevenue)
	assert.Equal(t, 200000.0, summary.MonthlyProfit)
	assert.Equal(t, 15, summary.TotalStock)
	assert.Equal(t, "Hirono", summary.BestSellingSeries)
	assert.Equal(t, 1, summary.TotalCustomers)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.PendingOrders)
	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, "p2", summary.LowStockProducts[0].ID)
	require.Len(t, summary.SalesChart, 2)
	assert.Equal(t, "2025-07-10", summary.SalesChart[0].Date)
	assert.Equal(t, "2025-08-10", summary.SalesChart[1].Date)
	require.Len(t, summary.RecentSales, 3)
	assert.Equal(t, "s3", summary.RecentSales[0].ID)
}
