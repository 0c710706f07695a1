package customer

// Type segments customers for reporting.
type Type string

const (
	TypeCollector Type = "Collector"
	TypeReseller  Type = "Reseller"
	TypeRegular   Type = "Regular"
)

// ValidType returns true if t is a known customer type.
func ValidType(t Type) bool {
	switch t {
	case TypeCollector, TypeReseller, TypeRegular:
		return true
	}
	return false
}

// Customer is a buyer record. Immutable after creation.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"customer_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	SocialMedia string `json:"social_media"`
	Type        Type   `json:"customer_type"`
}
