package models

import "time"

// ProductVariant is one purchasable configuration of a product. VariantData
// holds the option axes as a free-form bag (e.g. Design/Base/Size for cakes);
// legacy rows stored it as a JSON string, so the field stays loosely typed.
type ProductVariant struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID        int64     `gorm:"column:product_id;not null;index"`
	SKU              string    `gorm:"column:sku;not null"`
	Name             string    `gorm:"column:name;not null"`
	Price            string    `gorm:"column:price;type:numeric(10,2);not null"`
	PriceAdjustment  string    `gorm:"column:price_adjustment;type:numeric(10,2);default:0"`
	Inventory        int       `gorm:"column:inventory;default:0"`
	IsActive         bool      `gorm:"column:is_active;default:true"`
	VariantData      any       `gorm:"column:variant_data;serializer:json"`
	ImageURL         *string   `gorm:"column:image_url"`
	StripePriceID    *string   `gorm:"column:stripe_price_id"`
	ShippingRequired bool      `gorm:"column:shipping_required;default:true"`
	WeightGrams      *int      `gorm:"column:weight"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}
