package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindCategoryByName(ctx context.Context, db *gorm.DB, name string) (*Category, error)
	CreateCategory(ctx context.Context, db *gorm.DB, category *Category) error
	FindAllCategories(ctx context.Context, db *gorm.DB) ([]Category, error)

	FindBrandByName(ctx context.Context, db *gorm.DB, name string) (*Brand, error)
	CreateBrand(ctx context.Context, db *gorm.DB, brand *Brand) error

	FindProductByEAN(ctx context.Context, db *gorm.DB, ean string) (*Product, error)
	FindProductByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindProductDetail(ctx context.Context, db *gorm.DB, id int64) (*ProductDetail, error)
	CreateProduct(ctx context.Context, db *gorm.DB, product *Product) error
	UpdateProduct(ctx context.Context, db *gorm.DB, product *Product) error
	ListProducts(ctx context.Context, db *gorm.DB, filter ProductFilter) ([]ProductDetail, error)
}

// ProductFilter narrows the admin product listing. Query matches product name
// or EAN, Brand matches the brand name as a substring.
type ProductFilter struct {
	Query      string
	CategoryID int64
	Brand      string
}

func (f ProductFilter) Empty() bool {
	return f.Query == "" && f.CategoryID == 0 && f.Brand == ""
}
