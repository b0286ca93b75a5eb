package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickbill/orderview-api/internal/domain/entity"
	"github.com/quickbill/orderview-api/internal/domain/repository"
	"github.com/quickbill/orderview-api/pkg/apperror"
)

// Placeholder values used when the optional source fields are absent.
const (
	defaultShopName      = "Shop / Business Details"
	defaultCustomerName  = "Walk-in customer"
	defaultPaymentStatus = "draft"
	defaultInvoiceType   = "order_summary"
)

// OrderViewService assembles the denormalized invoice view document
// consumed by the customer-facing invoice page
type OrderViewService struct {
	billRepo     repository.BillRepository
	billItemRepo repository.BillItemRepository
	profileRepo  repository.ShopProfileRepository
}

// NewOrderViewService creates a new order view service
func NewOrderViewService(
	billRepo repository.BillRepository,
	billItemRepo repository.BillItemRepository,
	profileRepo repository.ShopProfileRepository,
) *OrderViewService {
	return &OrderViewService{
		billRepo:     billRepo,
		billItemRepo: billItemRepo,
		profileRepo:  profileRepo,
	}
}

// OrderView is the document rendered by the invoice page. Field names are
// part of the frontend contract and must not change.
type OrderView struct {
	Shop     ShopInfo     `json:"shop"`
	Order    OrderInfo    `json:"order"`
	Customer CustomerInfo `json:"customer"`
	Items    []LineItem   `json:"items"`
}

// ShopInfo describes the seller block of the invoice
type ShopInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	GST     string `json:"gst"`
}

// OrderInfo describes the order/invoice summary block
type OrderInfo struct {
	ID            string  `json:"id"`
	DateISO       string  `json:"dateISO"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	GSTAmount     float64 `json:"gstAmount"`
	GSTPercent    float64 `json:"gstPercent"`
	Total         float64 `json:"total"`
	Paid          float64 `json:"paid"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
	InvoiceType   string  `json:"invoiceType"`
}

// CustomerInfo describes the buyer block of the invoice
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LineItem is one purchased line on the invoice
type LineItem struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// GetOrderView looks up the bill for orderID and builds the view document.
// The bill is required: a missing row or a failed lookup both mean the
// order cannot be shown. Shop profile and line items are optional and fall
// back to placeholders, including when their lookups fail outright.
func (s *OrderViewService) GetOrderView(ctx context.Context, orderID string) (*OrderView, error) {
	billID, err := uuid.Parse(orderID)
	if err != nil {
		// A malformed identifier matches no bill
		return nil, apperror.ErrOrderNotFound
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil || bill == nil {
		// The bill is required; a failed lookup reads the same as no row
		return nil, apperror.ErrOrderNotFound
	}

	profile, err := s.profileRepo.GetByUserID(ctx, bill.UserID)
	if err != nil {
		profile = nil
	}

	items, err := s.billItemRepo.ListByBillID(ctx, billID)
	if err != nil {
		items = nil
	}

	return buildOrderView(orderID, bill, profile, items), nil
}

// buildOrderView is the pure mapping/defaulting step. It is total: every
// field of the document gets a value for any bill.
func buildOrderView(orderID string, bill *entity.Bill, profile *entity.ShopProfile, items []entity.BillItem) *OrderView {
	view := &OrderView{
		Shop: ShopInfo{
			Name: defaultShopName,
		},
		Order: OrderInfo{
			ID:            strOr(bill.BillNumber, shortID(orderID)),
			DateISO:       billDateISO(bill),
			Subtotal:      numOr(bill.Subtotal, bill.TotalAmount),
			Discount:      numOr(bill.Discount, 0),
			GSTAmount:     numOr(bill.GSTAmount, 0),
			GSTPercent:    numOr(bill.GSTPercent, 0),
			Total:         bill.TotalAmount,
			Paid:          numOr(bill.AmountPaid, 0),
			Balance:       numOr(bill.AmountRemaining, bill.TotalAmount),
			PaymentStatus: strOr(bill.PaymentStatus, defaultPaymentStatus),
			InvoiceType:   strOr(bill.InvoiceType, defaultInvoiceType),
		},
		Customer: CustomerInfo{
			Name:  strOr(bill.CustomerName, defaultCustomerName),
			Phone: strOr(bill.CustomerPhone, ""),
		},
		Items: make([]LineItem, 0, len(items)),
	}

	if profile != nil {
		view.Shop = ShopInfo{
			Name:    strOr(profile.ShopName, defaultShopName),
			Address: strOr(profile.ShopAddress, ""),
			Phone:   strOr(profile.ShopPhone, ""),
			GST:     strOr(profile.ShopGSTNumber, ""),
		}
	}

	for _, item := range items {
		view.Items = append(view.Items, LineItem{
			Name:   item.Name,
			Qty:    item.Quantity,
			Rate:   item.UnitPrice,
			Amount: item.TotalPrice,
		})
	}

	return view
}

// strOr returns the value when present and non-empty, the fallback otherwise
func strOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

// numOr returns the value when present, the fallback otherwise. A stored
// zero counts as present so legitimate zero discounts/taxes survive.
func numOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// billDateISO picks the bill date, falling back to the creation timestamp
func billDateISO(bill *entity.Bill) string {
	if bill.BillDate != nil {
		return bill.BillDate.Format(time.RFC3339)
	}
	return bill.CreatedAt.Format(time.RFC3339)
}

// shortID derives a display id from the raw order identifier when the bill
// carries no bill number
func shortID(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}
	return strings.ToUpper(orderID)
}
