package repository

import (
	"context"
	"errors"

	"github.com/serialtrack/serialtrack/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindCategoryByName(ctx context.Context, db *gorm.DB, name string) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) CreateCategory(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindAllCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	if err := db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindBrandByName(ctx context.Context, db *gorm.DB, name string) (*domain.Brand, error) {
	var b domain.Brand
	err := db.WithContext(ctx).Where("name = ?", name).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) CreateBrand(ctx context.Context, db *gorm.DB, brand *domain.Brand) error {
	return db.WithContext(ctx).Create(brand).Error
}

func (r *repo) FindProductByEAN(ctx context.Context, db *gorm.DB, ean string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Where("ean = ?", ean).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindProductByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindProductDetail(ctx context.Context, db *gorm.DB, id int64) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.ean, p.name, p.category_id, c.name AS category, COALESCE(b.name, '') AS brand
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 LEFT JOIN brands b ON b.id = p.brand_id
		 WHERE p.id = ?`,
		id,
	).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, nil
	}
	return &d, nil
}

func (r *repo) CreateProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) UpdateProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products SET ean = ?, name = ?, category_id = ?, brand_id = ? WHERE id = ?`,
		product.EAN,
		product.Name,
		product.CategoryID,
		product.BrandID,
		product.ID,
	).Error
}

func (r *repo) ListProducts(ctx context.Context, db *gorm.DB, filter domain.ProductFilter) ([]domain.ProductDetail, error) {
	stmt := db.WithContext(ctx).
		Table("products p").
		Select("p.id, p.ean, p.name, p.category_id, c.name AS category, COALESCE(b.name, '') AS brand").
		Joins("JOIN categories c ON c.id = p.category_id").
		Joins("LEFT JOIN brands b ON b.id = p.brand_id").
		Order("p.name ASC")

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		stmt = stmt.Where("LOWER(p.name) LIKE LOWER(?) OR p.ean LIKE ?", like, like)
	}
	if filter.CategoryID != 0 {
		stmt = stmt.Where("p.category_id = ?", filter.CategoryID)
	}
	if filter.Brand != "" {
		stmt = stmt.Where("LOWER(b.name) LIKE LOWER(?)", "%"+filter.Brand+"%")
	}

	var items []domain.ProductDetail
	if err := stmt.Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
