package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

type productSeed struct {
	Name        string
	Description string
	BasePrice   string
	ImageURL    string
	ImageURLs   []string
	Category    string
	IsFeatured  bool
	Tags        []string
	Variants    []variantSeed
}

type variantSeed struct {
	SKU              string
	Name             string
	Price            string
	VariantData      map[string]any
	ImageURL         string
	ShippingRequired *bool
	WeightGrams      int
}

func boolPtr(v bool) *bool { return &v }

// Seed upserts the bakery catalog and the sample reviews. Products match on
// name, variants on (product, sku), so re-running refreshes pricing without
// duplicating rows.
func Seed(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	for _, seed := range catalogSeeds() {
		product, err := upsertProduct(tx, seed)
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", seed.Name, err)
		}
		for _, v := range seed.Variants {
			if err := upsertVariant(tx, product, seed, v); err != nil {
				return fmt.Errorf("seeding variant %q: %w", v.SKU, err)
			}
		}
	}
	return seedReviews(tx)
}

func upsertProduct(tx *gorm.DB, seed productSeed) (*models.Product, error) {
	product := models.Product{
		Name:        seed.Name,
		Description: seed.Description,
		BasePrice:   seed.BasePrice,
		ImageURL:    seed.ImageURL,
		ImageURLs:   seed.ImageURLs,
		Category:    seed.Category,
		IsFeatured:  seed.IsFeatured,
		Tags:        seed.Tags,
	}

	var existing models.Product
	err := tx.First(&existing, "name = ?", seed.Name).Error
	switch {
	case err == nil:
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		if err := tx.Save(&product).Error; err != nil {
			return nil, err
		}
		return &product, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(&product).Error; err != nil {
			return nil, err
		}
		return &product, nil
	default:
		return nil, err
	}
}

func upsertVariant(tx *gorm.DB, product *models.Product, seed productSeed, v variantSeed) error {
	shippingRequired := seed.Category == models.CategoryCake
	if v.ShippingRequired != nil {
		shippingRequired = *v.ShippingRequired
	}
	imageURL := v.ImageURL
	if imageURL == "" {
		imageURL = seed.ImageURL
	}
	variant := models.ProductVariant{
		ProductID:        product.ID,
		SKU:              v.SKU,
		Name:             v.Name,
		Price:            v.Price,
		PriceAdjustment:  priceAdjustment(v.Price, seed.BasePrice),
		Inventory:        100,
		IsActive:         true,
		VariantData:      v.VariantData,
		ImageURL:         &imageURL,
		ShippingRequired: shippingRequired,
	}
	if v.WeightGrams > 0 {
		weight := v.WeightGrams
		variant.WeightGrams = &weight
	}

	var existing models.ProductVariant
	err := tx.First(&existing, "product_id = ? AND sku = ?", product.ID, v.SKU).Error
	switch {
	case err == nil:
		variant.ID = existing.ID
		variant.CreatedAt = existing.CreatedAt
		return tx.Save(&variant).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Create(&variant).Error
	default:
		return err
	}
}

func seedReviews(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Review{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rocky := "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?auto=format&fit=crop&q=80&w=800"
	bella := "https://images.unsplash.com/photo-1596492784531-6e6eb5ea9993?auto=format&fit=crop&q=80&w=800"
	max := "https://images.unsplash.com/photo-1517849845537-4d257902454a?auto=format&fit=crop&q=80&w=800"
	reviews := []models.Review{
		{DogName: "Rocky", Rating: 5, Content: "Absolutely loved the Barkday Box! Best treats in Dublin.", ImageURL: &rocky},
		{DogName: "Bella", Rating: 5, Content: "The custom cake was beautiful and devoured in seconds!", ImageURL: &bella},
		{DogName: "Max", Rating: 5, Content: "Every Sunday we visit the market just for these waffles.", ImageURL: &max},
	}
	return tx.Create(&reviews).Error
}
