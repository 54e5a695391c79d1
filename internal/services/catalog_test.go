package services

import (
	"errors"
	"testing"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCatalogCreateDuplicateSKU(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := NewCatalogService(db)
	first, err := svc.Create(ProductInput{Name: "Original", SKU: "DUP-1", Price: 5, StockQuantity: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var cf *ConflictError
	if _, err := svc.Create(ProductInput{Name: "Copy", SKU: "DUP-1", Price: 9, StockQuantity: 1}); !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError got %v", err)
	}
	// Existing record must be untouched.
	reloaded, err := svc.Get(first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Name != "Original" || reloaded.Price != 5 || reloaded.StockQuantity != 3 {
		t.Fatalf("existing record altered: %#v", reloaded)
	}
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 product got %d", count)
	}
}

func TestCatalogUpdateFullReplace(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := NewCatalogService(db)
	p, err := svc.Create(ProductInput{Name: "Before", SKU: "UP-1", Price: 5, StockQuantity: 3, DiscountAllowed: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(p.ID, ProductInput{Name: "After", SKU: "UP-2", Price: 6.5, StockQuantity: 7, DiscountAllowed: false})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "After" || updated.SKU != "UP-2" || updated.Price != 6.5 || updated.StockQuantity != 7 || updated.DiscountAllowed {
		t.Fatalf("fields not fully replaced: %#v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updated_at refreshed (created=%v updated=%v)", updated.CreatedAt, updated.UpdatedAt)
	}
}

func TestCatalogUpdateSKUConflict(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := NewCatalogService(db)
	if _, err := svc.Create(ProductInput{Name: "Holder", SKU: "TAKEN", Price: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	p, err := svc.Create(ProductInput{Name: "Mover", SKU: "FREE", Price: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var cf *ConflictError
	if _, err := svc.Update(p.ID, ProductInput{Name: "Mover", SKU: "TAKEN", Price: 1}); !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError got %v", err)
	}
	// Keeping its own SKU is fine.
	if _, err := svc.Update(p.ID, ProductInput{Name: "Mover2", SKU: "FREE", Price: 2}); err != nil {
		t.Fatalf("same-sku update: %v", err)
	}
}

func TestCatalogGetBySKU(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := NewCatalogService(db)
	if _, err := svc.Create(ProductInput{Name: "Findable", SKU: "FIND-1", Price: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetBySKU("FIND-1")
	if err != nil {
		t.Fatalf("get by sku: %v", err)
	}
	if got.Name != "Findable" {
		t.Fatalf("unexpected product %#v", got)
	}
	var nf *NotFoundError
	if _, err := svc.GetBySKU("NOPE"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
}

func setupCatalogFKTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Foreign keys enforced, as postgres enforces them in production.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Sale{}, &models.SaleItem{}, &models.InvoiceSubmission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCatalogDeleteSoldProduct(t *testing.T) {
	db := setupCatalogFKTestDB(t)
	catalog := NewCatalogService(db)
	checkout := NewCheckoutService(db)
	p, err := catalog.Create(ProductInput{Name: "Sold", SKU: "SOLD-1", Price: 3, StockQuantity: 5, DiscountAllowed: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sale, err := checkout.Checkout([]CartLine{{ProductID: p.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if err := catalog.Delete(p.ID); err != nil {
		t.Fatalf("delete of sold product: %v", err)
	}
	// The historical sale item keeps its product reference.
	var item models.SaleItem
	if err := db.Where("sale_id = ?", sale.ID).First(&item).Error; err != nil {
		t.Fatalf("load sale item: %v", err)
	}
	if item.ProductID != p.ID {
		t.Fatalf("expected product reference %d got %d", p.ID, item.ProductID)
	}
	// Loading the sale still works; the vanished product preloads as zero.
	var reloaded models.Sale
	if err := db.Preload("Items.Product").First(&reloaded, sale.ID).Error; err != nil {
		t.Fatalf("reload sale: %v", err)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].Product.ID != 0 {
		t.Fatalf("expected item with zero product, got %#v", reloaded.Items)
	}
}

func TestCatalogDelete(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := NewCatalogService(db)
	p, err := svc.Create(ProductInput{Name: "Gone", SKU: "GONE-1", Price: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *NotFoundError
	if _, err := svc.Get(p.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError after delete got %v", err)
	}
	if err := svc.Delete(p.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on double delete got %v", err)
	}
}
