package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry referenced by OrderItem.ProductID (a weak
// string reference, not a foreign key). Reports read the denormalized
// name/category stored on the item instead of joining this table.
type Product struct {
	ID             string          `gorm:"type:varchar(100);primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Category       string          `gorm:"type:varchar(100)" json:"category"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	QuantityOnHand int             `gorm:"type:int;default:0" json:"quantity_on_hand"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
