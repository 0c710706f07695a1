package product

// Series identifies the Pop Mart figure line a product belongs to.
type Series string

const (
	SeriesHirono   Series = "Hirono"
	SeriesKubo     Series = "Kubo"
	SeriesCrybaby  Series = "Crybaby"
	SeriesTinyTiny Series = "TinyTiny"
	SeriesLabubu   Series = "Labubu"
)

// ValidSeries returns true if s is a known product series.
func ValidSeries(s Series) bool {
	switch s {
	case SeriesHirono, SeriesKubo, SeriesCrybaby, SeriesTinyTiny, SeriesLabubu:
		return true
	}
	return false
}

// Condition describes the physical state a product is sold in.
type Condition string

const (
	ConditionNew      Condition = "New"
	ConditionPreOrder Condition = "PreOrder"
	ConditionSecond   Condition = "Second"
)

// ValidCondition returns true if c is a known product condition.
func ValidCondition(c Condition) bool {
	switch c {
	case ConditionNew, ConditionPreOrder, ConditionSecond:
		return true
	}
	return false
}

// Product is a catalog item. StockQuantity is the only mutable field; it is
// adjusted by sales and purchases and may go negative (backorders).
type Product struct {
	ID            string    `json:"id"`
	Code          string    `json:"product_code"`
	Name          string    `json:"product_name"`
	Series        Series    `json:"series"`
	Condition     Condition `json:"condition"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	StockQuantity int       `json:"stock_quantity"`
}
