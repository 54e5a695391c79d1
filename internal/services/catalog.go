package services

import (
	"errors"
	"time"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"

	"gorm.io/gorm"
)

// ProductInput is the create/full-update payload for catalog entries. Updates
// replace every field, so the same shape serves both operations.
type ProductInput struct {
	Name            string     `json:"name"`
	SKU             string     `json:"sku"`
	Price           float64    `json:"price"`
	StockQuantity   int        `json:"stock_quantity"`
	DiscountAllowed bool       `json:"discount_allowed"`
	ExpiryDate      *time.Time `json:"expiry_date"`
}

// apply overwrites every product field from the input, statically checked.
func (in *ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.SKU = in.SKU
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	p.DiscountAllowed = in.DiscountAllowed
	p.ExpiryDate = in.ExpiryDate
}

// CatalogService is the product store: CRUD plus exact-SKU lookup.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{DB: db} }

func (s *CatalogService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Product not found"}
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.Where("sku = ?", sku).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Product not found"}
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) Create(in ProductInput) (*models.Product, error) {
	var existing models.Product
	err := s.DB.Where("sku = ?", in.SKU).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Message: "SKU already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var product models.Product
	in.apply(&product)
	if err := s.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update is a full replace. The incoming SKU is re-validated against other
// products so an update cannot silently steal an existing SKU.
func (s *CatalogService) Update(id uint, in ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	var other models.Product
	err = s.DB.Where("sku = ? AND id <> ?", in.SKU, product.ID).First(&other).Error
	if err == nil {
		return nil, &ConflictError{Message: "SKU already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	in.apply(product)
	if err := s.DB.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(product).Error
}
