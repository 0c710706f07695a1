package cashflow

import "time"

// FlowType marks the direction of a cash movement.
type FlowType string

const (
	FlowInflow  FlowType = "Inflow"
	FlowOutflow FlowType = "Outflow"
)

// Entry is one derived cash movement. Entries are never stored or edited;
// the whole ledger is recomputed from sales, purchases, and expenses.
type Entry struct {
	ID     string   `json:"id"`
	Date   time.Time `json:"date"`
	Type   FlowType `json:"type"`
	Source string   `json:"source"`
	Amount float64  `json:"amount"`
	// Balance is the running balance up to and including this entry. It is
	// a display value filled in by WithRunningBalance, zero otherwise.
	Balance float64 `json:"balance"`
}
