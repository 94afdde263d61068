package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// OrderItem captures the immutable snapshot of one purchased configuration.
// Additionals are stored by display name, not by catalog reference, so later
// catalog edits never alter historical orders.
type OrderItem struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID        uuid.UUID   `gorm:"column:order_id;type:uuid;not null" json:"order_id"`
	ProductName    string      `gorm:"column:product_name;not null" json:"product_name"`
	UnitPriceCents money.Cents `gorm:"column:unit_price_cents;not null" json:"unit_price_cents"`
	Quantity       int         `gorm:"column:quantity;not null" json:"quantity"`
	Additionals    []string    `gorm:"column:additionals;type:jsonb;serializer:json" json:"additionals"`
	ItemTotalCents money.Cents `gorm:"column:item_total_cents;not null" json:"item_total_cents"`
	CreatedAt      time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
