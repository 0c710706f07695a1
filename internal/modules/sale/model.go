package sale

import "time"

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "Transfer"
	PaymentQRIS     PaymentMethod = "QRIS"
	PaymentCash     PaymentMethod = "Cash"
)

// ValidPaymentMethod returns true if m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentTransfer, PaymentQRIS, PaymentCash:
		return true
	}
	return false
}

// Status represents the payment state of a sale. Any status may be set at
// creation; there is no transition machine.
type Status string

const (
	StatusPaid      Status = "Paid"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// ValidStatus returns true if s is a known sale status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPaid, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Sale records one product sold to one customer. CustomerID and ProductID
// are weak references: lookups on them may come up empty without error.
type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"sale_date"`
	CustomerID    string        `json:"customer_id"`
	ProductID     string        `json:"product_id"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
}

// Total is the sale's gross amount.
func (s *Sale) Total() float64 {
	return float64(s.Quantity) * s.UnitPrice
}
