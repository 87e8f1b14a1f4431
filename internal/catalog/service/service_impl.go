package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/serialtrack/serialtrack/internal/catalog/domain"
	"github.com/serialtrack/serialtrack/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) EnsureCategory(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultCategory
	}

	existing, err := s.repo.FindCategoryByName(ctx, s.db, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	category := &domain.Category{
		ID:   s.genID.Generate().Int64(),
		Name: name,
	}
	if err := s.repo.CreateCategory(ctx, s.db, category); err != nil {
		if !db.IsDuplicateKeyErr(err) {
			return 0, err
		}
		// another writer created the same name first; the existing row wins
		existing, err = s.repo.FindCategoryByName(ctx, s.db, name)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			return 0, domain.ErrNotFound
		}
		return existing.ID, nil
	}
	return category.ID, nil
}

func (s *Service) EnsureBrand(ctx context.Context, name string) (*int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	existing, err := s.repo.FindBrandByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.ID, nil
	}

	brand := &domain.Brand{
		ID:   s.genID.Generate().Int64(),
		Name: name,
	}
	if err := s.repo.CreateBrand(ctx, s.db, brand); err != nil {
		if !db.IsDuplicateKeyErr(err) {
			return nil, err
		}
		existing, err = s.repo.FindBrandByName(ctx, s.db, name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return &existing.ID, nil
	}
	return &brand.ID, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	ean := strings.TrimSpace(req.EAN)
	if ean == "" {
		return nil, domain.ErrInvalidEAN
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.CategoryID == 0 {
		return nil, domain.ErrInvalidCategory
	}

	p := &domain.Product{
		ID:         s.genID.Generate().Int64(),
		EAN:        ean,
		Name:       name,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
	}
	if req.Metadata != nil {
		p.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.CreateProduct(ctx, s.db, p); err != nil {
		if !db.IsDuplicateKeyErr(err) {
			return nil, err
		}
		existing, ferr := s.repo.FindProductByEAN(ctx, s.db, ean)
		if ferr != nil {
			return nil, ferr
		}
		if existing == nil {
			return nil, err
		}
		s.log.Debug("duplicate product insert resolved to existing row",
			zap.String("ean", ean), zap.Int64("id", existing.ID))
		return existing, nil
	}
	return p, nil
}

func (s *Service) FindByEAN(ctx context.Context, ean string) (*domain.Product, error) {
	return s.repo.FindProductByEAN(ctx, s.db, strings.TrimSpace(ean))
}

func (s *Service) Detail(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	detail, err := s.repo.FindProductDetail(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAllCategories(ctx, s.db)
}

// List returns matching products. Without any filter the result is empty:
// the admin screen only shows rows after an explicit search.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductDetail, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Brand = strings.TrimSpace(filter.Brand)
	if filter.Empty() {
		return []domain.ProductDetail{}, nil
	}
	return s.repo.ListProducts(ctx, s.db, filter)
}

func (s *Service) SaveProduct(ctx context.Context, req domain.SaveProductRequest) (*domain.Product, error) {
	brandID, err := s.EnsureBrand(ctx, req.Brand)
	if err != nil {
		return nil, err
	}

	if req.ID == 0 {
		return s.CreateProduct(ctx, domain.CreateProductRequest{
			EAN:        req.EAN,
			Name:       req.Name,
			CategoryID: req.CategoryID,
			BrandID:    brandID,
			Metadata:   map[string]any{"source": "manual"},
		})
	}

	existing, err := s.repo.FindProductByID(ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if ean := strings.TrimSpace(req.EAN); ean != "" {
		existing.EAN = ean
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		existing.Name = name
	}
	if req.CategoryID != 0 {
		existing.CategoryID = req.CategoryID
	}
	if brandID != nil {
		existing.BrandID = brandID
	}

	if err := s.repo.UpdateProduct(ctx, s.db, existing); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEAN
		}
		return nil, err
	}
	return existing, nil
}
