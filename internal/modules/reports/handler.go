package reports

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the accounting and reporting endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/profit-loss", h.profitAndLoss)                   // GET /api/v1/reports/profit-loss?period=current_month
		r.Get("/profit-by-series", h.profitBySeries)             // GET /api/v1/reports/profit-by-series
		r.Get("/revenue-by-customer-type", h.revenueByCustomerType) // GET /api/v1/reports/revenue-by-customer-type
		r.Get("/stock-valuation", h.stockValuation)              // GET /api/v1/reports/stock-valuation
		r.Get("/best-selling-series", h.bestSellingSeries)       // GET /api/v1/reports/best-selling-series
	})
	r.Get("/dashboard", h.dashboard) // GET /api/v1/dashboard
}

func (h *Handler) profitAndLoss(w http.ResponseWriter, r *http.Request) {
	period := Period(r.URL.Query().Get("period"))
	if period == "" {
		period = PeriodCurrentMonth
	}
	pl, err := h.service.ProfitAndLoss(r.Context(), period)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid period") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, pl)
}

func (h *Handler) profitBySeries(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ProfitBySeries(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) revenueByCustomerType(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.RevenueByCustomerType(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) stockValuation(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.StockValuation(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) bestSellingSeries(w http.ResponseWriter, r *http.Request) {
	best, err := h.service.BestSellingSeries(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"best_selling_series": best})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Dashboard(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
