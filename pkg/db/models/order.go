package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvboschetti/acai-storefront/pkg/enums"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// Order is a finalized checkout. Customer fields and line items are snapshots
// taken at finalization; payment status is the only field mutated afterwards.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CustomerName    string              `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerPhone   string              `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerAddress string              `gorm:"column:customer_address;not null" json:"customer_address"`
	TotalCents      money.Cents         `gorm:"column:total_cents;not null" json:"total_cents"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:text;not null" json:"payment_method"`
	PaymentStatus   enums.PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'" json:"payment_status"`
	Items           []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
