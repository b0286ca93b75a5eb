package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a stored order/invoice record. This service only reads
// bills; creation and mutation happen in the billing app that owns the table.
type Bill struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	BillNumber      *string    `gorm:"size:100" json:"bill_number,omitempty"`
	BillDate        *time.Time `gorm:"type:date" json:"bill_date,omitempty"`
	Subtotal        *float64   `json:"subtotal,omitempty"`
	TotalAmount     float64    `gorm:"not null" json:"total_amount"`
	Discount        *float64   `json:"discount,omitempty"`
	GSTAmount       *float64   `gorm:"column:gst_amount" json:"gst_amount,omitempty"`
	GSTPercent      *float64   `gorm:"column:gst_percent" json:"gst_percent,omitempty"`
	AmountPaid      *float64   `json:"amount_paid,omitempty"`
	AmountRemaining *float64   `json:"amount_remaining,omitempty"`
	CustomerName    *string    `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone   *string    `gorm:"size:50" json:"customer_phone,omitempty"`
	PaymentStatus   *string    `gorm:"size:50" json:"payment_status,omitempty"`
	InvoiceType     *string    `gorm:"size:50" json:"invoice_type,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem represents one purchased line item belonging to a bill
type BillItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID     uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"not null" json:"unit_price"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
