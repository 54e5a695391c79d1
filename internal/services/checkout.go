package services

import (
	"errors"
	"fmt"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"

	"gorm.io/gorm"
)

// TaxRate is the fixed VAT rate applied to every sale (16%).
const TaxRate = 0.16

// CartLine is one entry of a checkout request. Price, when set, overrides the
// catalog unit price. DiscountRate is honored only for discountable products.
type CartLine struct {
	ProductID    uint     `json:"product_id"`
	Quantity     int      `json:"quantity"`
	Price        *float64 `json:"price,omitempty"`
	DiscountRate float64  `json:"discount_rate"`
}

// CheckoutService turns a cart into a persisted Sale: it validates stock,
// computes discounts and tax, decrements inventory and writes the sale with
// its items in a single transaction.
type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService { return &CheckoutService{DB: db} }

func (s *CheckoutService) Checkout(lines []CartLine) (*models.Sale, error) {
	if len(lines) == 0 {
		return nil, &BadRequestError{Message: "Cart is empty"}
	}
	var sale models.Sale
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		totalBeforeTax := 0.0
		items := make([]models.SaleItem, 0, len(lines))
		for _, line := range lines {
			if line.Quantity <= 0 {
				return &BadRequestError{Message: fmt.Sprintf("Invalid quantity for product ID %d", line.ProductID)}
			}
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Message: fmt.Sprintf("Product ID %d not found", line.ProductID)}
				}
				return err
			}
			if product.StockQuantity < line.Quantity {
				return &BadRequestError{Message: "Insufficient stock for " + product.Name}
			}

			usedPrice := product.Price
			if line.Price != nil {
				usedPrice = *line.Price
			}
			discount := 0.0
			if product.DiscountAllowed && line.DiscountRate > 0 {
				discount = usedPrice * float64(line.Quantity) * line.DiscountRate
			}
			subtotal := usedPrice*float64(line.Quantity) - discount
			totalBeforeTax += subtotal

			// Guarded decrement: the WHERE clause re-checks stock at write time
			// so two concurrent checkouts cannot both take the last units.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", product.ID, line.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &BadRequestError{Message: "Insufficient stock for " + product.Name}
			}

			items = append(items, models.SaleItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     usedPrice,
				Subtotal:  subtotal,
			})
		}
		taxAmount := totalBeforeTax * TaxRate
		sale = models.Sale{
			TotalBeforeTax: totalBeforeTax,
			TaxAmount:      taxAmount,
			TotalAmount:    totalBeforeTax + taxAmount,
			Items:          items,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	// Reload with product names; receipt rendering and API responses need them.
	if err := s.DB.Preload("Items.Product").First(&sale, sale.ID).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}
