package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null;uniqueIndex:ux_categories_name"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

type Brand struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null;uniqueIndex:ux_brands_name"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Brand) TableName() string { return "brands" }

type Product struct {
	ID         int64             `json:"id" gorm:"primaryKey"`
	EAN        string            `json:"ean" gorm:"column:ean;type:text;not null;uniqueIndex:ux_products_ean"`
	Name       string            `json:"name" gorm:"type:text;not null;index:ix_products_name"`
	CategoryID int64             `json:"category_id" gorm:"not null"`
	BrandID    *int64            `json:"brand_id,omitempty"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// ProductDetail is a product joined with its category and brand names.
type ProductDetail struct {
	ID         int64  `json:"id"`
	EAN        string `json:"ean"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	Category   string `json:"category"`
	Brand      string `json:"brand,omitempty"`
}
