package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
)

// BillRepository defines the interface for bill read operations
type BillRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
}

// BillItemRepository defines the interface for bill line item read operations
type BillItemRepository interface {
	ListByBillID(ctx context.Context, billID uuid.UUID) ([]entity.BillItem, error)
}
