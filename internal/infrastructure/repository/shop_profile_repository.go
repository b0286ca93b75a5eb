package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
	domainRepo "github.com/quickbill/orderview-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopProfileRepository struct {
	db *gorm.DB
}

// NewShopProfileRepository creates a new shop profile repository
func NewShopProfileRepository(db *gorm.DB) domainRepo.ShopProfileRepository {
	return &shopProfileRepository{db: db}
}

// GetByUserID retrieves the shop profile for a user. Users are not
// guaranteed to have one, so a missing row is not an error.
func (r *shopProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	var profile entity.ShopProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
