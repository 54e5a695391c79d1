package server

import (
	"net/http"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/handlers"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/httpx"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/receipt"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/services"

	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, receipts *receipt.Generator) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Product endpoints
	ph := handlers.NewProductHandler(services.NewCatalogService(db))
	mux.HandleFunc("GET /products", ph.List)
	mux.HandleFunc("GET /products/{$}", ph.List)
	mux.HandleFunc("POST /products", ph.Create)
	mux.HandleFunc("POST /products/{$}", ph.Create)
	mux.HandleFunc("GET /products/search/{sku}", ph.SearchBySKU)
	mux.HandleFunc("GET /products/{id}", ph.Get)
	mux.HandleFunc("PUT /products/{id}", ph.Update)
	mux.HandleFunc("DELETE /products/{id}", ph.Delete)

	// Sale endpoints
	sh := handlers.NewSaleHandler(db, services.NewCheckoutService(db), services.NewInvoiceService(db, nil), receipts)
	mux.HandleFunc("POST /sales/checkout", sh.CreateSale)
	mux.HandleFunc("GET /sales", sh.List)
	mux.HandleFunc("GET /sales/{$}", sh.List)
	mux.HandleFunc("GET /sales/{id}", sh.Get)
	mux.HandleFunc("POST /sales/{id}/submit_invoice", sh.SubmitInvoice)
	mux.HandleFunc("GET /sales/{id}/invoice_status", sh.InvoiceStatus)
	mux.HandleFunc("GET /sales/{id}/receipt", sh.Receipt)

	// Root banner
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"message": "Smart POS Backend is running"})
	})
	//revive:enable:unused-parameter

	return withRecover(withCORS(mux))
}

// withCORS allows any origin; the API is consumed by a separate frontend.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
