package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
	OrderStatusCompleted = "completed"
)

// PaymentStatus constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// PaymentMethod constants
const (
	PaymentMethodDelivery = "delivery"
	PaymentMethodPickup   = "pickup"
)

// ShippingAddress is embedded into Order (shipping_* columns)
type ShippingAddress struct {
	Name     string  `gorm:"type:varchar(255)" json:"name"`
	Phone    string  `gorm:"type:varchar(50)" json:"phone"`
	City     string  `gorm:"type:varchar(100)" json:"city"`
	Location *string `gorm:"type:varchar(255)" json:"location,omitempty"`
}

// Order represents a customer order as written by the order-processing
// subsystem. The reporting service only ever reads these rows.
//
// ItemIDs is the order's own ordered list of line-item references; OrderItem
// additionally carries an order_id back-reference. Both link directions are
// populated by the write path and both are used when reporting.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	ItemIDs         []uuid.UUID     `gorm:"type:jsonb;serializer:json" json:"item_ids"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	Status          string          `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentStatus   string          `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	PaymentMethod   string          `gorm:"type:varchar(20)" json:"payment_method"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem represents a line item within an Order. ProductID is a weak
// reference (product code); Name and Category are denormalized display
// fields copied from the product at order time and may be absent on rows
// written by older versions of the order pipeline.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID  string          `gorm:"type:varchar(100);not null;index" json:"product_id"`
	Quantity   int             `gorm:"type:int;not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Name       *string         `gorm:"type:varchar(255)" json:"name,omitempty"`
	Category   *string         `gorm:"type:varchar(100)" json:"category,omitempty"`
}
