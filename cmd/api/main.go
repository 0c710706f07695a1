package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/marrdazr/ERP-AI-PopMart/internal/config"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/auth"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/cashflow"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/customer"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/expense"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/product"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/purchase"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/reports"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/sale"
	"github.com/marrdazr/ERP-AI-PopMart/internal/modules/shop"
	"github.com/marrdazr/ERP-AI-PopMart/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ── Stores ──────────────────────────────────────────────
	productRepo := product.NewMemoryRepository()
	customerRepo := customer.NewMemoryRepository()
	saleRepo := sale.NewMemoryRepository()
	purchaseRepo := purchase.NewMemoryRepository()
	expenseRepo := expense.NewMemoryRepository()
	cartRepo := shop.NewMemoryCartRepository()

	if cfg.SeedDemoData {
		err := seed.Load(context.Background(), seed.Repos{
			Products:  productRepo,
			Customers: customerRepo,
			Sales:     saleRepo,
			Purchases: purchaseRepo,
			Expenses:  expenseRepo,
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Demo data loaded")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(httprate.LimitByIP(100, time.Minute))

	authService := auth.NewService(cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL)
	shopService := shop.NewService(cartRepo, productRepo)

	productService := product.NewService(productRepo)
	customerService := customer.NewService(customerRepo)
	saleService := sale.NewService(saleRepo, productRepo)
	purchaseService := purchase.NewService(purchaseRepo, productRepo)
	expenseService := expense.NewService(expenseRepo)
	cashflowService := cashflow.NewService(saleRepo, purchaseRepo, expenseRepo)
	reportsService := reports.NewService(saleRepo, productRepo, customerRepo, expenseRepo)

	router.Route("/api/v1", func(r chi.Router) {
		// ── Public storefront ───────────────────────────────
		auth.NewHandler(authService).RegisterRoutes(r)
		shop.NewHandler(shopService).RegisterRoutes(r)

		// ── Admin back office ───────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin(authService))
			product.NewHandler(productService).RegisterRoutes(r)
			customer.NewHandler(customerService).RegisterRoutes(r)
			sale.NewHandler(saleService).RegisterRoutes(r)
			purchase.NewHandler(purchaseService).RegisterRoutes(r)
			expense.NewHandler(expenseService).RegisterRoutes(r)
			cashflow.NewHandler(cashflowService).RegisterRoutes(r)
			reports.NewHandler(reportsService).RegisterRoutes(r)
		})
	})

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Pop Mart shop API starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
