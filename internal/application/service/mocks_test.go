package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockBillRepository mocks repository.BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	var bill *entity.Bill
	if args.Get(0) != nil {
		bill = args.Get(0).(*entity.Bill)
	}
	return bill, args.Error(1)
}

// MockBillItemRepository mocks repository.BillItemRepository
type MockBillItemRepository struct {
	mock.Mock
}

func (m *MockBillItemRepository) ListByBillID(ctx context.Context, billID uuid.UUID) ([]entity.BillItem, error) {
	args := m.Called(ctx, billID)
	var items []entity.BillItem
	if args.Get(0) != nil {
		items = args.Get(0).([]entity.BillItem)
	}
	return items, args.Error(1)
}

// MockShopProfileRepository mocks repository.ShopProfileRepository
type MockShopProfileRepository struct {
	mock.Mock
}

func (m *MockShopProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	args := m.Called(ctx, userID)
	var profile *entity.ShopProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*entity.ShopProfile)
	}
	return profile, args.Error(1)
}
