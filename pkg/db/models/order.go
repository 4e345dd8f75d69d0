package models

import "time"

// Order delivery types.
const (
	DeliveryTypeDelivery   = "delivery"
	DeliveryTypeCollection = "collection"
)

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order is a recorded checkout. TotalAmount is a decimal euro string to
// match the catalog price representation.
type Order struct {
	ID                    int64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName          string         `gorm:"column:customer_name;not null"`
	CustomerEmail         string         `gorm:"column:customer_email;not null"`
	CustomerPhone         *string        `gorm:"column:customer_phone"`
	TotalAmount           string         `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status                string         `gorm:"column:status;not null;default:pending"`
	DeliveryType          string         `gorm:"column:delivery_type;not null"`
	ShippingAddress       map[string]any `gorm:"column:shipping_address;serializer:json"`
	SpecialInstructions   *string        `gorm:"column:special_instructions"`
	StripePaymentIntentID *string        `gorm:"column:stripe_payment_intent_id"`
	StripeCustomerID      *string        `gorm:"column:stripe_customer_id"`
	Items                 []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem snapshots one purchased line.
type OrderItem struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID          int64  `gorm:"column:order_id;not null;index"`
	ProductVariantID int64  `gorm:"column:product_variant_id;not null"`
	Quantity         int    `gorm:"column:quantity;not null"`
	Price            string `gorm:"column:price;type:numeric(10,2);not null"`
	Customization    any    `gorm:"column:customization;serializer:json"`
}
