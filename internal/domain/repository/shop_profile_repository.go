package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
)

// ShopProfileRepository defines the interface for shop profile read operations
type ShopProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error)
}
