package shop

// FeaturedProduct is the storefront projection of a catalog product.
type FeaturedProduct struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Series string  `json:"series"`
	Price  float64 `json:"price"`
}

// Testimonial is a quote shown on the landing page.
type Testimonial struct {
	ID    string `json:"id"`
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CartItem is one product line in a visitor's cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Series    string  `json:"series"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is a visitor's shopping cart, held server-side until checkout.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Subtotal sums the cart's line totals.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
