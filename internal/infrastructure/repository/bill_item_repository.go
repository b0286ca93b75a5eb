package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
	domainRepo "github.com/quickbill/orderview-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billItemRepository struct {
	db *gorm.DB
}

// NewBillItemRepository creates a new bill item repository
func NewBillItemRepository(db *gorm.DB) domainRepo.BillItemRepository {
	return &billItemRepository{db: db}
}

// ListByBillID returns all line items for a bill, oldest first so the
// invoice renders lines in the order they were added.
func (r *billItemRepository) ListByBillID(ctx context.Context, billID uuid.UUID) ([]entity.BillItem, error) {
	var items []entity.BillItem
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
