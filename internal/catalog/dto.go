package catalog

import (
	"time"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// ProductDTO is the catalog payload returned to the storefront. Field names
// mirror the legacy API, so prices stay decimal strings here.
type ProductDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	BasePrice   string       `json:"basePrice"`
	ImageURL    string       `json:"imageUrl"`
	ImageURLs   []string     `json:"imageUrls,omitempty"`
	Category    string       `json:"category"`
	IsFeatured  bool         `json:"isFeatured"`
	Tags        []string     `json:"tags,omitempty"`
	Variants    []VariantDTO `json:"variants"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// VariantDTO is one purchasable configuration of a product.
type VariantDTO struct {
	ID               int64   `json:"id"`
	ProductID        int64   `json:"productId"`
	SKU              string  `json:"sku"`
	Name             string  `json:"name"`
	Price            string  `json:"price"`
	PriceAdjustment  string  `json:"priceAdjustment"`
	Inventory        int     `json:"inventory"`
	IsActive         bool    `json:"isActive"`
	VariantData      any     `json:"variantData,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	ShippingRequired bool    `json:"shippingRequired"`
	WeightGrams      *int    `json:"weight,omitempty"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		BasePrice:   product.BasePrice,
		ImageURL:    product.ImageURL,
		ImageURLs:   append([]string{}, product.ImageURLs...),
		Category:    product.Category,
		IsFeatured:  product.IsFeatured,
		Tags:        append([]string{}, product.Tags...),
		Variants:    make([]VariantDTO, 0, len(product.Variants)),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	for i := range product.Variants {
		dto.Variants = append(dto.Variants, *NewVariantDTO(&product.Variants[i]))
	}
	return dto
}

// NewVariantDTO builds a DTO from the persisted variant model.
func NewVariantDTO(variant *models.ProductVariant) *VariantDTO {
	return &VariantDTO{
		ID:               variant.ID,
		ProductID:        variant.ProductID,
		SKU:              variant.SKU,
		Name:             variant.Name,
		Price:            variant.Price,
		PriceAdjustment:  variant.PriceAdjustment,
		Inventory:        variant.Inventory,
		IsActive:         variant.IsActive,
		VariantData:      variant.VariantData,
		ImageURL:         variant.ImageURL,
		ShippingRequired: variant.ShippingRequired,
		WeightGrams:      variant.WeightGrams,
	}
}
