package shop

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
)

// Service defines the public storefront business logic. Checkout is
// simulated: it confirms the order and clears the cart, nothing else.
type Service interface {
	FeaturedProducts(ctx context.Context) ([]FeaturedProduct, error)
	Testimonials(ctx context.Context) []Testimonial
	AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error)
	GetCart(ctx context.Context, cartID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*Cart, error)
	Checkout(ctx context.Context, cartID string, req CheckoutRequest) (string, error)
}

// AddToCartRequest adds one product to a cart; an empty cart_id starts a
// new cart.
type AddToCartRequest struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest carries the visitor's contact details.
type CheckoutRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type service struct {
	carts    CartRepository
	products product.Repository
	validate *validator.Validate
}

// NewService creates a new storefront service.
func NewService(carts CartRepository, products product.Repository) Service {
	return &service{carts: carts, products: products, validate: validator.New()}
}

func (s *service) FeaturedProducts(ctx context.Context) ([]FeaturedProduct, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FeaturedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, FeaturedProduct{
			ID:     p.ID,
			Name:   p.Name,
			Series: string(p.Series),
			Price:  p.SellingPrice,
		})
	}
	return out, nil
}

func (s *service) Testimonials(ctx context.Context) []Testimonial {
	return testimonials
}

func (s *service) AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid cart item: %w", err)
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var cart *Cart
	if req.CartID == "" {
		cart = &Cart{ID: uuid.NewString()}
	} else {
		cart, err = s.carts.Get(ctx, req.CartID)
		if err != nil {
			return nil, err
		}
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == p.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Series:    string(p.Series),
			Price:     p.SellingPrice,
			Quantity:  quantity,
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	return s.carts.Get(ctx, cartID)
}

func (s *service) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*Cart, error) {
	// Dropping below one removes the line, matching cart UI behaviour.
	if quantity < 1 {
		return s.RemoveItem(ctx, cartID, productID)
	}
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.carts.Save(ctx, cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, fmt.Errorf("product %s not in cart", productID)
}

func (s *service) RemoveItem(ctx context.Context, cartID, productID string) (*Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Checkout(ctx context.Context, cartID string, req CheckoutRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid checkout details: %w", err)
	}
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return "", err
	}
	if len(cart.Items) == 0 {
		return "", fmt.Errorf("cart is empty")
	}
	if err := s.carts.Delete(ctx, cartID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Terima kasih, %s! Pesanan Anda sedang diproses. Konfirmasi akan dikirim ke %s.", req.Name, req.Email), nil
}

var testimonials = []Testimonial{
	{ID: "t1", Quote: "Koleksi Hirono-ku lengkap berkat toko ini. Barang selalu original!", Name: "Andi", Role: "Collector"},
	{ID: "t2", Quote: "Restock cepat dan packing rapi, langganan buat dijual lagi.", Name: "Budi", Role: "Reseller"},
	{ID: "t3", Quote: "Beli Crybaby pertamaku di sini, pelayanannya ramah banget.", Name: "Citra", Role: "Customer"},
}
