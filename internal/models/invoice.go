package models

import "time"

// Invoice submission statuses as reported by the (simulated) tax authority.
const (
	InvoiceStatusPending  = "PENDING"
	InvoiceStatusApproved = "APPROVED"
	InvoiceStatusRejected = "REJECTED"
)

// InvoiceSubmission tracks the mock tax-authority workflow for a sale.
// At most one submission exists per sale; once created it is never updated.
type InvoiceSubmission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SaleID       uint      `gorm:"not null;index" json:"sale_id"`
	Status       string    `gorm:"not null;default:'PENDING'" json:"status"`
	AuthorityRef string    `json:"authority_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
