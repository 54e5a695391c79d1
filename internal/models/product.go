package models

import "time"

// Product is a catalog entry. SKU is the user-facing unique identifier;
// StockQuantity is decremented by checkout inside the sale transaction.
type Product struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null;index" json:"name"`
	SKU             string     `gorm:"uniqueIndex;not null" json:"sku"`
	Price           float64    `gorm:"not null" json:"price"`
	StockQuantity   int        `gorm:"not null;default:0" json:"stock_quantity"`
	DiscountAllowed bool       `gorm:"not null;default:true" json:"discount_allowed"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
