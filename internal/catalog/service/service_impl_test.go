package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/serialtrack/serialtrack/internal/catalog/domain"
	"github.com/serialtrack/serialtrack/internal/catalog/repository"
	"github.com/serialtrack/serialtrack/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	gdb, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&domain.Category{},
		&domain.Brand{},
		&domain.Product{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	}), gdb
}

func TestEnsureCategoryGetOrCreate(t *testing.T) {
	svc, gdb := setupCatalog(t)
	ctx := context.Background()

	first, err := svc.EnsureCategory(ctx, "Drucker")
	require.NoError(t, err)
	second, err := svc.EnsureCategory(ctx, "  Drucker  ")
	require.NoError(t, err)
	require.Equal(t, first, second)

	var count int64
	require.NoError(t, gdb.Model(&domain.Category{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnsureCategoryEmptyNameIsDefault(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	id, err := svc.EnsureCategory(ctx, "")
	require.NoError(t, err)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, domain.DefaultCategory, categories[0].Name)
	require.Equal(t, id, categories[0].ID)
}

func TestEnsureBrandEmptyNameIsNil(t *testing.T) {
	svc, _ := setupCatalog(t)

	id, err := svc.EnsureBrand(context.Background(), "   ")
	require.NoError(t, err)
	require.Nil(t, id)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.CreateProductRequest{Name: "x", CategoryID: 1})
	require.ErrorIs(t, err, domain.ErrInvalidEAN)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{EAN: "123", CategoryID: 1})
	require.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{EAN: "123", Name: "x"})
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestCreateProductDuplicateEANResolvesToExisting(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	catID, err := svc.EnsureCategory(ctx, "Kabel")
	require.NoError(t, err)

	first, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		EAN: "4044951030305", Name: "first", CategoryID: catID,
	})
	require.NoError(t, err)

	second, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		EAN: first.EAN, Name: "second insert of same ean", CategoryID: catID,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "first", second.Name, "the existing row wins")
}

func TestListWithoutFilterIsEmpty(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	catID, err := svc.EnsureCategory(ctx, "Monitore")
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{
		EAN: "4948570114344", Name: "iiyama ProLite", CategoryID: catID,
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = svc.List(ctx, domain.ProductFilter{Query: "  "})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestListFilters(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	catID, err := svc.EnsureCategory(ctx, "Monitore")
	require.NoError(t, err)
	otherCat, err := svc.EnsureCategory(ctx, "Tastaturen")
	require.NoError(t, err)

	_, err = svc.SaveProduct(ctx, domain.SaveProductRequest{
		EAN: "4948570114344", Name: "iiyama ProLite XUB2493", CategoryID: catID, Brand: "iiyama",
	})
	require.NoError(t, err)
	_, err = svc.SaveProduct(ctx, domain.SaveProductRequest{
		EAN: "4025112093929", Name: "Cherry Stream", CategoryID: otherCat, Brand: "Cherry",
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx, domain.ProductFilter{Query: "prolite"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "iiyama ProLite XUB2493", rows[0].Name)

	rows, err = svc.List(ctx, domain.ProductFilter{CategoryID: otherCat})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Cherry Stream", rows[0].Name)

	rows, err = svc.List(ctx, domain.ProductFilter{Brand: "cherry"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = svc.List(ctx, domain.ProductFilter{Query: "4025112"})
	require.NoError(t, err)
	require.Len(t, rows, 1, "EAN prefix search")
}

func TestSaveProductUpdate(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	catID, err := svc.EnsureCategory(ctx, "Netzteile")
	require.NoError(t, err)

	created, err := svc.SaveProduct(ctx, domain.SaveProductRequest{
		EAN: "4718017336727", Name: "be quiet! Pure Power", CategoryID: catID,
	})
	require.NoError(t, err)
	require.Nil(t, created.BrandID)

	updated, err := svc.SaveProduct(ctx, domain.SaveProductRequest{
		ID: created.ID, Name: "be quiet! Pure Power 12 M", Brand: "be quiet!",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "be quiet! Pure Power 12 M", updated.Name)
	require.Equal(t, created.EAN, updated.EAN, "blank fields keep their value")
	require.NotNil(t, updated.BrandID)

	detail, err := svc.Detail(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "be quiet!", detail.Brand)
}

func TestSaveProductUpdateOntoTakenEAN(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	catID, err := svc.EnsureCategory(ctx, "Kabel")
	require.NoError(t, err)

	_, err = svc.SaveProduct(ctx, domain.SaveProductRequest{
		EAN: "4044951030305", Name: "USB-C Kabel", CategoryID: catID,
	})
	require.NoError(t, err)
	other, err := svc.SaveProduct(ctx, domain.SaveProductRequest{
		EAN: "4044951030306", Name: "USB-A Kabel", CategoryID: catID,
	})
	require.NoError(t, err)

	_, err = svc.SaveProduct(ctx, domain.SaveProductRequest{
		ID: other.ID, EAN: "4044951030305",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateEAN)
}

func TestSaveProductUnknownID(t *testing.T) {
	svc, _ := setupCatalog(t)

	_, err := svc.SaveProduct(context.Background(), domain.SaveProductRequest{ID: 42, Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetailUnknownID(t *testing.T) {
	svc, _ := setupCatalog(t)

	_, err := svc.Detail(context.Background(), 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
