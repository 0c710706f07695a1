package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/customer"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

// Period selects the date window for the profit and loss statement.
type Period string

const (
	PeriodCurrentMonth Period = "current_month"
	PeriodAllTime      Period = "all_time"
)

// NoBestSeller is returned when no sale resolves to a product series.
const NoBestSeller = "N/A"

// lowStockThreshold flags products running out on the dashboard.
const lowStockThreshold = 5

// ProfitAndLoss is the P&L statement for one period. COGS covers only
// sales whose product reference resolves; dangling references cost zero.
type ProfitAndLoss struct {
	Period            Period  `json:"period"`
	Revenue           float64 `json:"revenue"`
	COGS              float64 `json:"cogs"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NetProfit         float64 `json:"net_profit"`
}

// SeriesProfit is one bar of the profit-per-series report.
type SeriesProfit struct {
	Series product.Series `json:"series"`
	Profit float64        `json:"profit"`
}

// CustomerTypeRevenue is one slice of the revenue-per-customer-type report.
type CustomerTypeRevenue struct {
	Type    customer.Type `json:"customer_type"`
	Revenue float64       `json:"revenue"`
}

// StockValue is one row of the stock valuation report. Negative stock
// yields a negative value, unclamped.
type StockValue struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"product_name"`
	Value     float64 `json:"value"`
}

// StockValuation is the full stock value report, rows sorted by value
// descending.
type StockValuation struct {
	Items []StockValue `json:"items"`
	Total float64      `json:"total"`
}

// DailySales is one point of the dashboard sales chart.
type DailySales struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DashboardSummary bundles the admin dashboard cards and lists.
type DashboardSummary struct {
	MonthlyRevenue    float64            `json:"monthly_revenue"`
	MonthlyProfit     float64            `json:"monthly_profit"`
	TotalStock        int                `json:"total_stock"`
	BestSellingSeries string             `json:"best_selling_series"`
	TotalCustomers    int                `json:"total_customers"`
	TotalProducts     int                `json:"total_products"`
	PendingOrders     int                `json:"pending_orders"`
	LowStockProducts  []*product.Product `json:"low_stock_products"`
	SalesChart        []DailySales       `json:"sales_chart"`
	RecentSales       []*sale.Sale       `json:"recent_sales"`
	RecentExpenses    []*expense.Expense `json:"recent_expenses"`
}

// Service computes financial summaries on demand. Nothing is cached;
// every call reads the current collections.
type Service interface {
	ProfitAndLoss(ctx context.Context, period Period) (*ProfitAndLoss, error)
	ProfitBySeries(ctx context.Context) ([]SeriesProfit, error)
	RevenueByCustomerType(ctx context.Context) ([]CustomerTypeRevenue, error)
	StockValuation(ctx context.Context) (*StockValuation, error)
	BestSellingSeries(ctx context.Context) (string, error)
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}

type service struct {
	sales     sale.Repository
	products  product.Repository
	customers customer.Repository
	expenses  expense.Repository
	now       func() time.Time
}

// NewService creates a new reports service.
func NewService(sales sale.Repository, products product.Repository, customers customer.Repository, expenses expense.Repository) Service {
	return &service{
		sales:     sales,
		products:  products,
		customers: customers,
		expenses:  expenses,
		now:       time.Now,
	}
}

func (s *service) ProfitAndLoss(ctx context.Context, period Period) (*ProfitAndLoss, error) {
	if period != PeriodCurrentMonth && period != PeriodAllTime {
		return nil, fmt.Errorf("invalid period: %s (allowed: current_month, all_time)", period)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	inPeriod := func(d time.Time) bool {
		if period == PeriodAllTime {
			return true
		}
		return d.Year() == now.Year() && d.Month() == now.Month()
	}
	byID := productIndex(products)

	pl := &ProfitAndLoss{Period: period}
	for _, sl := range sales {
		if sl.Status != sale.StatusPaid || !inPeriod(sl.Date) {
			continue
		}
		pl.Revenue += sl.Total()
		if p, ok := byID[sl.ProductID]; ok {
			pl.COGS += p.PurchasePrice * float64(sl.Quantity)
		}
	}
	pl.GrossProfit = pl.Revenue - pl.COGS
	for _, e := range expenses {
		if inPeriod(e.Date) {
			pl.OperatingExpenses += e.Amount
		}
	}
	pl.NetProfit = pl.GrossProfit - pl.OperatingExpenses
	return pl, nil
}

func (s *service) ProfitBySeries(ctx context.Context) ([]SeriesProfit, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := productIndex(products)

	profits := make(map[product.Series]float64)
	for _, sl := range sales {
		if sl.Status != sale.StatusPaid {
			continue
		}
		p, ok := byID[sl.ProductID]
		if !ok {
			continue
		}
		profits[p.Series] += (sl.UnitPrice - p.PurchasePrice) * float64(sl.Quantity)
	}

	out := make([]SeriesProfit, 0, len(profits))
	for series, profit := range profits {
		out = append(out, SeriesProfit{Series: series, Profit: profit})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Series < out[j].Series })
	return out, nil
}

func (s *service) RevenueByCustomerType(ctx context.Context) ([]CustomerTypeRevenue, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	revenues := make(map[customer.Type]float64)
	for _, sl := range sales {
		if sl.Status != sale.StatusPaid {
			continue
		}
		c, ok := byID[sl.CustomerID]
		if !ok {
			continue
		}
		revenues[c.Type] += sl.Total()
	}

	out := make([]CustomerTypeRevenue, 0, len(revenues))
	for ctype, revenue := range revenues {
		out = append(out, CustomerTypeRevenue{Type: ctype, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (s *service) StockValuation(ctx context.Context) (*StockValuation, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &StockValuation{Items: make([]StockValue, 0, len(products))}
	for _, p := range products {
		value := p.PurchasePrice * float64(p.StockQuantity)
		report.Items = append(report.Items, StockValue{ProductID: p.ID, Name: p.Name, Value: value})
		report.Total += value
	}
	sort.SliceStable(report.Items, func(i, j int) bool { return report.Items[i].Value > report.Items[j].Value })
	return report, nil
}

// BestSellingSeries tallies quantity across all sales, any status. Ties go
// to the lexicographically smaller series name so the answer is stable.
func (s *service) BestSellingSeries(ctx context.Context) (string, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return "", err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return "", err
	}
	return bestSellingSeries(sales, productIndex(products)), nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	byID := productIndex(products)
	summary := &DashboardSummary{
		TotalCustomers:   len(customers),
		TotalProducts:    len(products),
		LowStockProducts: []*product.Product{},
	}

	daily := make(map[string]float64)
	for _, sl := range sales {
		if sl.Status == sale.StatusPending {
			summary.PendingOrders++
		}
		if sl.Status != sale.StatusPaid {
			continue
		}
		daily[sl.Date.Format("2006-01-02")] += sl.Total()
		if sl.Date.Year() == now.Year() && sl.Date.Month() == now.Month() {
			summary.MonthlyRevenue += sl.Total()
			if p, ok := byID[sl.ProductID]; ok {
				summary.MonthlyProfit += sl.Total() - p.PurchasePrice*float64(sl.Quantity)
			}
		}
	}

	for _, p := range products {
		summary.TotalStock += p.StockQuantity
		if p.StockQuantity < lowStockThreshold {
			summary.LowStockProducts = append(summary.LowStockProducts, p)
		}
	}
	summary.BestSellingSeries = bestSellingSeries(sales, byID)

	summary.SalesChart = make([]DailySales, 0, len(daily))
	for date, total := range daily {
		summary.SalesChart = append(summary.SalesChart, DailySales{Date: date, Total: total})
	}
	sort.Slice(summary.SalesChart, func(i, j int) bool { return summary.SalesChart[i].Date < summary.SalesChart[j].Date })

	recent := append([]*sale.Sale(nil), sales...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > 5 {
		recent = recent[:5]
	}
	summary.RecentSales = recent

	recentExp := append([]*expense.Expense(nil), expenses...)
	sort.SliceStable(recentExp, func(i, j int) bool { return recentExp[i].Date.After(recentExp[j].Date) })
	if len(recentExp) > 5 {
		recentExp = recentExp[:5]
	}
	summary.RecentExpenses = recentExp

	return summary, nil
}

func productIndex(products []*product.Product) map[string]*product.Product {
	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

func bestSellingSeries(sales []*sale.Sale, byID map[string]*product.Product) string {
	quantities := make(map[product.Series]int)
	for _, sl := range sales {
		if p, ok := byID[sl.ProductID]; ok {
			quantities[p.Series] += sl.Quantity
		}
	}
	best := NoBestSeller
	bestQty := 0
	for series, qty := range quantities {
		name := string(series)
		if qty > bestQty || (qty == bestQty && best != NoBestSeller && name < best) {
			best = name
			bestQty = qty
		}
	}
	return best
}
