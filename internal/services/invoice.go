package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"

	"gorm.io/gorm"
)

// InvoiceService simulates submitting a sale to the tax authority. Submission
// is idempotent per sale: the first call fixes the outcome, later calls return
// the stored record unchanged.
type InvoiceService struct {
	DB  *gorm.DB
	rng *rand.Rand
}

// NewInvoiceService builds the service. A nil rng falls back to a time-seeded
// source; tests inject their own to pin the approval outcome.
func NewInvoiceService(db *gorm.DB, rng *rand.Rand) *InvoiceService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &InvoiceService{DB: db, rng: rng}
}

func (s *InvoiceService) Submit(saleID uint) (*models.InvoiceSubmission, error) {
	var sale models.Sale
	if err := s.DB.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Sale not found"}
		}
		return nil, err
	}

	var existing models.InvoiceSubmission
	err := s.DB.Where("sale_id = ?", saleID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := models.InvoiceStatusApproved
	if s.rng.Intn(2) == 1 {
		status = models.InvoiceStatusRejected
	}
	submission := models.InvoiceSubmission{
		SaleID:       saleID,
		Status:       status,
		AuthorityRef: fmt.Sprintf("TAX-%d", 10000+s.rng.Intn(90000)),
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *InvoiceService) Status(saleID uint) (*models.InvoiceSubmission, error) {
	var submission models.InvoiceSubmission
	if err := s.DB.Where("sale_id = ?", saleID).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Invoice not found for this sale"}
		}
		return nil, err
	}
	return &submission, nil
}
