package domain

import (
	"context"
	"errors"
)

// DefaultCategory is the catch-all bucket for products whose source carried no
// category information.
const DefaultCategory = "Sonstiges"

type Service interface {
	// EnsureCategory returns the id of the named category, creating the row on
	// first reference. An empty name resolves to DefaultCategory.
	EnsureCategory(ctx context.Context, name string) (int64, error)

	// EnsureBrand returns the id of the named brand, creating the row on first
	// reference. An empty name yields nil (products may have no brand).
	EnsureBrand(ctx context.Context, name string) (*int64, error)

	// CreateProduct inserts a product keyed on its EAN. A concurrent insert of
	// the same EAN is not an error; the existing row wins and its id is
	// returned either way.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	FindByEAN(ctx context.Context, ean string) (*Product, error)
	Detail(ctx context.Context, id int64) (*ProductDetail, error)
	Categories(ctx context.Context) ([]Category, error)
	List(ctx context.Context, filter ProductFilter) ([]ProductDetail, error)
	SaveProduct(ctx context.Context, req SaveProductRequest) (*Product, error)
}

type CreateProductRequest struct {
	EAN        string
	Name       string
	CategoryID int64
	BrandID    *int64
	Metadata   map[string]any
}

// SaveProductRequest covers both the admin form and the manual-product
// endpoint. ID zero means create; the brand is resolved by name.
type SaveProductRequest struct {
	ID         int64  `json:"id"`
	EAN        string `json:"ean"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	Brand      string `json:"brand"`
}

var (
	ErrInvalidEAN      = errors.New("invalid_ean")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrNotFound        = errors.New("not_found")

	// ErrDuplicateEAN means an update tried to move a product onto an EAN
	// already owned by another row. Creates never see it; there the existing
	// row wins.
	ErrDuplicateEAN = errors.New("duplicate_ean")
)
