package cashflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/purchase"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

func date(day int) time.Time {
	return time.Date(2025, time.August, day, 0, 0, 0, 0, time.Local)
}

func fixtures() ([]*sale.Sale, []*purchase.Purchase, []*expense.Expense) {
	sales := []*sale.Sale{
		{ID: "s1", Date: date(10), Quantity: 2, UnitPrice: 250000, Status: sale.StatusPaid},
		{ID: "s2", Date: date(3), Quantity: 1, UnitPrice: 260000, Status: sale.StatusPaid},
		{ID: "s3", Date: date(5), Quantity: 4, UnitPrice: 180000, Status: sale.StatusPending},
		{ID: "s4", Date: date(5), Quantity: 1, UnitPrice: 290000, Status: sale.StatusCancelled},
	}
	purchases := []*purchase.Purchase{
		{ID: "pu1", Date: date(1), SupplierName: "Distributor A", Quantity: 15, UnitCost: 150000},
		{ID: "pu2", Date: date(10), SupplierName: "Distributor B", Quantity: 5, UnitCost: 155000},
	}
	expenses := []*expense.Expense{
		{ID: "e1", Date: date(7), Category: expense.CategoryShipping, Description: "Kirim barang", Amount: 25000},
		{ID: "e2", Date: date(10), Category: expense.CategoryMarketing, Description: "Iklan Instagram", Amount: 300000},
	}
	return sales, purchases, expenses
}

func TestDeriveOnlyPaidSalesBecomeInflows(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)

	// 2 paid sales + 2 purchases + 2 expenses; pending and cancelled sales
	// produce nothing.
	require.Len(t, entries, 6)

	var inflows, outflows int
	for _, e := range entries {
		switch e.Type {
		case FlowInflow:
			inflows++
		case FlowOutflow:
			outflows++
		}
	}
	assert.Equal(t, 2, inflows)
	assert.Equal(t, 4, outflows)
}

func TestDeriveSourceLabels(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)

	labels := make(map[string]string)
	for _, e := range entries {
		labels[e.ID] = e.Source
	}
	assert.Equal(t, "Sale #s1", labels["cfi_s1"])
	assert.Equal(t, "Purchase from Distributor A", labels["cfo_p_pu1"])
	assert.Equal(t, "Shipping: Kirim barang", labels["cfo_e_e1"])
}

func TestDeriveSortedAscendingByDate(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.Before(entries[i-1].Date),
			"entry %d (%s) is earlier than entry %d (%s)", i, entries[i].ID, i-1, entries[i-1].ID)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	sales, purchases, expenses := fixtures()
	first := Derive(sales, purchases, expenses)
	second := Derive(sales, purchases, expenses)
	require.Equal(t, first, second)
}

func TestDeriveDateTieKeepsSourceOrder(t *testing.T) {
	// s1 sale, pu2 purchase, and e2 expense all fall on the same date; the
	// stable sort must keep sales before purchases before expenses.
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)

	positions := make(map[string]int)
	for i, e := range entries {
		positions[e.ID] = i
	}
	assert.Less(t, positions["cfi_s1"], positions["cfo_p_pu2"])
	assert.Less(t, positions["cfo_p_pu2"], positions["cfo_e_e2"])
}

func TestDeriveConservation(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)

	var inflowSum, outflowSum float64
	for _, e := range entries {
		if e.Type == FlowInflow {
			inflowSum += e.Amount
		} else {
			outflowSum += e.Amount
		}
	}

	var paidSales float64
	for _, s := range sales {
		if s.Status == sale.StatusPaid {
			paidSales += s.Total()
		}
	}
	var costs float64
	for _, p := range purchases {
		costs += p.Total()
	}
	for _, e := range expenses {
		costs += e.Amount
	}

	assert.Equal(t, paidSales, inflowSum)
	assert.Equal(t, costs, outflowSum)
}

func TestWithRunningBalance(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := WithRunningBalance(Derive(sales, purchases, expenses))

	var inflowSum, outflowSum float64
	balance := 0.0
	for _, e := range entries {
		if e.Type == FlowInflow {
			inflowSum += e.Amount
			balance += e.Amount
		} else {
			outflowSum += e.Amount
			balance -= e.Amount
		}
		assert.Equal(t, balance, e.Balance, "running balance at %s", e.ID)
	}
	require.NotEmpty(t, entries)
	assert.Equal(t, inflowSum-outflowSum, entries[len(entries)-1].Balance)
}

func TestWithRunningBalanceLeavesInputUntouched(t *testing.T) {
	sales, purchases, expenses := fixtures()
	entries := Derive(sales, purchases, expenses)
	_ = WithRunningBalance(entries)
	for _, e := range entries {
		assert.Zero(t, e.Balance)
	}
}

func TestDeriveEmptyInputs(t *testing.T) {
	entries := Derive(nil, nil, nil)
	assert.Empty(t, entries)
	assert.Empty(t, WithRunningBalance(entries))
}
