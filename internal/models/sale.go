package models

import "time"

// Sale records a completed checkout. Totals are derived at checkout time and
// the record is immutable afterwards (no update path exists).
type Sale struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	TotalBeforeTax float64    `gorm:"not null" json:"total_before_tax"`
	TaxAmount      float64    `gorm:"not null" json:"tax_amount"`
	TotalAmount    float64    `gorm:"not null" json:"total_amount"`
	CreatedAt      time.Time  `json:"created_at"`
	Items          []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

// SaleItem snapshots one cart line: Price is the unit price actually charged
// (override or catalog price at the time), Subtotal includes any discount.
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `gorm:"not null;index" json:"sale_id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
	// Referential only: no DB constraint, so historical items survive
	// deletion of their product.
	Product Product `gorm:"foreignKey:ProductID;constraint:-" json:"product"`
}
