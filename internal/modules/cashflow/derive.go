package cashflow

import (
	"fmt"
	"sort"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/purchase"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
)

// Derive rebuilds the full ledger from the three source collections. It is
// a pure function of its inputs: the same records always produce the same
// sequence.
//
// Paid sales become inflows; purchases and expenses become outflows. The
// result is sorted ascending by date with a stable sort, so entries on the
// same date keep concatenation order: sales, then purchases, then expenses,
// each in insertion order.
func Derive(sales []*sale.Sale, purchases []*purchase.Purchase, expenses []*expense.Expense) []Entry {
	entries := make([]Entry, 0, len(sales)+len(purchases)+len(expenses))

	for _, s := range sales {
		if s.Status != sale.StatusPaid {
			continue
		}
		entries = append(entries, Entry{
			ID:     "cfi_" + s.ID,
			Date:   s.Date,
			Type:   FlowInflow,
			Source: fmt.Sprintf("Sale #%s", s.ID),
			Amount: s.Total(),
		})
	}
	for _, p := range purchases {
		entries = append(entries, Entry{
			ID:     "cfo_p_" + p.ID,
			Date:   p.Date,
			Type:   FlowOutflow,
			Source: fmt.Sprintf("Purchase from %s", p.SupplierName),
			Amount: p.Total(),
		})
	}
	for _, e := range expenses {
		entries = append(entries, Entry{
			ID:     "cfo_e_" + e.ID,
			Date:   e.Date,
			Type:   FlowOutflow,
			Source: fmt.Sprintf("%s: %s", e.Category, e.Description),
			Amount: e.Amount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// WithRunningBalance returns a copy of the already-sorted ledger with the
// running balance attached to each entry. The balance starts at zero and
// moves by +amount for inflows and -amount for outflows.
func WithRunningBalance(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	var balance float64
	for i, e := range entries {
		if e.Type == FlowInflow {
			balance += e.Amount
		} else {
			balance -= e.Amount
		}
		e.Balance = balance
		out[i] = e
	}
	return out
}
