package models

// Review is a customer (well, dog) review shown on the storefront.
type Review struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement"`
	DogName  string  `gorm:"column:dog_name;not null"`
	Rating   int     `gorm:"column:rating;not null"`
	Content  string  `gorm:"column:content;not null"`
	ImageURL *string `gorm:"column:image_url"`
}
