package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopProfile represents seller-facing business details for the user that
// owns a bill. Not every user has one, so lookups may legitimately come
// back empty.
type ShopProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ShopName      *string   `gorm:"size:255" json:"shop_name,omitempty"`
	ShopAddress   *string   `gorm:"type:text" json:"shop_address,omitempty"`
	ShopPhone     *string   `gorm:"size:50" json:"shop_phone,omitempty"`
	ShopGSTNumber *string   `gorm:"size:50;column:shop_gst_number" json:"shop_gst_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new shop profile
func (s *ShopProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopProfile model
func (ShopProfile) TableName() string {
	return "shop_profiles"
}
