package models

import "time"

// Product is a storefront listing. Prices are stored as decimal strings
// ("35.00") and converted to cents at the pricing boundary.
type Product struct {
	ID              int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string           `gorm:"column:name;not null"`
	Description     string           `gorm:"column:description;not null"`
	BasePrice       string           `gorm:"column:base_price;type:numeric(10,2);not null"`
	ImageURL        string           `gorm:"column:image_url;not null"`
	ImageURLs       []string         `gorm:"column:image_urls;serializer:json"`
	Category        string           `gorm:"column:category;not null"`
	IsFeatured      bool             `gorm:"column:is_featured;not null;default:false"`
	Tags            []string         `gorm:"column:tags;serializer:json"`
	StripeProductID *string          `gorm:"column:stripe_product_id"`
	Variants        []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// Product categories as stored in the catalog.
const (
	CategoryTreat = "treat"
	CategoryCake  = "cake"
	CategoryBox   = "box"
)
