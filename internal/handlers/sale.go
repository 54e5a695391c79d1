package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/httpx"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/receipt"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/services"
	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/validation"

	"gorm.io/gorm"
)

// SaleHandler wires checkout, sale queries and the invoice simulation.
type SaleHandler struct {
	DB       *gorm.DB
	Checkout *services.CheckoutService
	Invoices *services.InvoiceService
	Receipts *receipt.Generator
}

func NewSaleHandler(db *gorm.DB, checkout *services.CheckoutService, invoices *services.InvoiceService, receipts *receipt.Generator) *SaleHandler {
	return &SaleHandler{DB: db, Checkout: checkout, Invoices: invoices, Receipts: receipts}
}

// CreateSale: POST /sales/checkout
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []services.CartLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	for i, line := range req.Items {
		prefix := "items[" + strconv.Itoa(i) + "]"
		validation.PositiveInt(prefix+".quantity", line.Quantity, v)
		validation.RangeFloat(prefix+".discount_rate", line.DiscountRate, 0, 1, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	sale, err := h.Checkout.Checkout(req.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// Receipt generation is a best-effort side effect; a failure never undoes
	// the committed sale.
	if _, err := h.Receipts.Generate(sale); err != nil {
		log.Printf("receipt generation failed for sale %d: %v", sale.ID, err)
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

// List: GET /sales/
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	var sales []models.Sale
	if err := h.DB.Preload("Items.Product").Order("id").Find(&sales).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_sales", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

// Get: GET /sales/{id}
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var sale models.Sale
	if err := h.DB.Preload("Items.Product").First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Sale not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_sale", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

// SubmitInvoice: POST /sales/{id}/submit_invoice
func (h *SaleHandler) SubmitInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	submission, err := h.Invoices.Submit(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, submission)
}

// InvoiceStatus: GET /sales/{id}/invoice_status
func (h *SaleHandler) InvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	submission, err := h.Invoices.Status(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, submission)
}

// Receipt: GET /sales/{id}/receipt streams the stored PDF, regenerating it
// when the file is missing (e.g. after a receipts dir wipe).
func (h *SaleHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var sale models.Sale
	if err := h.DB.Preload("Items.Product").First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Sale not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_sale", nil)
		return
	}
	path := h.Receipts.Path(sale.ID)
	if _, err := os.Stat(path); err != nil {
		if path, err = h.Receipts.Generate(&sale); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "receipt_generation_failed", nil)
			return
		}
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"receipt_"+strconv.Itoa(int(sale.ID))+".pdf\"")
	http.ServeFile(w, r, path)
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Conflict and BadRequest both surface as 400, matching the original API.
func writeServiceError(w http.ResponseWriter, err error) {
	var nf *services.NotFoundError
	var cf *services.ConflictError
	var br *services.BadRequestError
	switch {
	case errors.As(err, &nf):
		httpx.JSONError(w, http.StatusNotFound, nf.Message, nil)
	case errors.As(err, &cf):
		httpx.JSONError(w, http.StatusBadRequest, cf.Message, nil)
	case errors.As(err, &br):
		httpx.JSONError(w, http.StatusBadRequest, br.Message, nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
