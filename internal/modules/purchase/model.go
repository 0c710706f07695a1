package purchase

import "time"

// Purchase records a stock replenishment from a supplier. ProductID is a
// weak reference, same contract as on sales.
type Purchase struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"purchase_date"`
	SupplierName string    `json:"supplier_name"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	Notes        string    `json:"notes,omitempty"`
}

// Total is the purchase's cost amount.
func (p *Purchase) Total() float64 {
	return float64(p.Quantity) * p.UnitCost
}
