package shop

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the public storefront endpoints. None of these sit
// behind the admin gate.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shop", func(r chi.Router) {
		r.Get("/products", h.featuredProducts) // GET    /api/v1/shop/products
		r.Get("/testimonials", h.testimonials) // GET    /api/v1/shop/testimonials
		r.Post("/cart", h.addToCart)           // POST   /api/v1/shop/cart
		r.Route("/cart/{id}", func(r chi.Router) {
			r.Get("/", h.getCart)                              // GET    /api/v1/shop/cart/{id}
			r.Patch("/items/{product_id}", h.updateQuantity)   // PATCH  /api/v1/shop/cart/{id}/items/{product_id}
			r.Delete("/items/{product_id}", h.removeItem)      // DELETE /api/v1/shop/cart/{id}/items/{product_id}
			r.Post("/checkout", h.checkout)                    // POST   /api/v1/shop/cart/{id}/checkout
		})
	})
}

func (h *Handler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FeaturedProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) testimonials(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Testimonials(r.Context()))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	cart, err := h.service.AddToCart(r.Context(), req)
	if err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cart, err := h.service.GetCart(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, cartView(cart))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "product_id")
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	cart, err := h.service.UpdateQuantity(r.Context(), id, productID, req.Quantity)
	if err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "not in cart") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, cartView(cart))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "product_id")
	cart, err := h.service.RemoveItem(r.Context(), id, productID)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, cartView(cart))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	message, err := h.service.Checkout(r.Context(), id, req)
	if err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": message})
}

type cartResponse struct {
	*Cart
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"item_count"`
}

func cartView(c *Cart) cartResponse {
	return cartResponse{Cart: c, Subtotal: c.Subtotal(), ItemCount: c.ItemCount()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
