package resolver

import (
	"context"
	"strings"

	catalogdomain "github.com/serialtrack/serialtrack/internal/catalog/domain"
	"github.com/serialtrack/serialtrack/internal/config"
	"github.com/serialtrack/serialtrack/internal/resolver/icecat"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CatalogLookup is the primary external source. A nil result with nil error
// means the service answered but had nothing usable for the EAN.
type CatalogLookup interface {
	Lookup(ctx context.Context, ean, lang string) (*icecat.Result, error)
}

// TitleLookup is the secondary source; it only ever yields a title.
type TitleLookup interface {
	LookupTitle(ctx context.Context, ean string) (string, error)
}

// Service answers "what product has this EAN" by walking the fallback chain
// local store -> primary catalog service -> secondary lookup service. External
// hits are inserted into the local store as a side effect, so the next lookup
// of the same EAN is served locally.
type Service interface {
	Resolve(ctx context.Context, ean string) (*catalogdomain.Product, error)
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Config    config.Config
	Catalog   catalogdomain.Service
	Primary   CatalogLookup
	Secondary TitleLookup
	Metrics   *Metrics
}

type resolver struct {
	log       *zap.Logger
	langs     []string
	catalog   catalogdomain.Service
	primary   CatalogLookup
	secondary TitleLookup
	metrics   *Metrics
}

func New(p Params) Service {
	preferred := strings.ToLower(strings.TrimSpace(p.Config.IcecatLang))
	if preferred == "" {
		preferred = "de"
	}
	langs := []string{preferred}
	if preferred != "en" {
		langs = append(langs, "en")
	}

	return &resolver{
		log:       p.Log.Named("resolver"),
		langs:     langs,
		catalog:   p.Catalog,
		primary:   p.Primary,
		secondary: p.Secondary,
		metrics:   p.Metrics,
	}
}

// Resolve returns the product for an EAN, or nil when every source misses.
// Source exhaustion is not an error; only store failures are.
func (r *resolver) Resolve(ctx context.Context, ean string) (*catalogdomain.Product, error) {
	ean = strings.TrimSpace(ean)
	if ean == "" {
		return nil, nil
	}

	// local store first; a hit makes no network calls
	existing, err := r.catalog.FindByEAN(ctx, ean)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		r.metrics.Hit(SourceLocal)
		return existing, nil
	}

	// primary catalog service, preferred language then English
	for _, lang := range r.langs {
		result, err := r.primary.Lookup(ctx, ean, lang)
		if err != nil {
			// treated as "no result for that language"
			r.log.Debug("primary lookup failed", zap.String("ean", ean), zap.String("lang", lang), zap.Error(err))
			continue
		}
		if result == nil {
			continue
		}

		product, err := r.insert(ctx, ean, result.Title, result.Category, result.Brand, map[string]any{
			"source":   SourcePrimary,
			"language": lang,
		})
		if err != nil {
			return nil, err
		}
		r.metrics.Hit(SourcePrimary)
		return product, nil
	}

	// secondary lookup service; failures are swallowed
	title, err := r.secondary.LookupTitle(ctx, ean)
	if err != nil {
		r.log.Debug("secondary lookup failed", zap.String("ean", ean), zap.Error(err))
		r.metrics.Miss()
		return nil, nil
	}
	if title == "" {
		r.metrics.Miss()
		return nil, nil
	}

	product, err := r.insert(ctx, ean, title, "", "", map[string]any{
		"source": SourceSecondary,
	})
	if err != nil {
		return nil, err
	}
	r.metrics.Hit(SourceSecondary)
	return product, nil
}

func (r *resolver) insert(ctx context.Context, ean, name, category, brand string, metadata map[string]any) (*catalogdomain.Product, error) {
	categoryID, err := r.catalog.EnsureCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	brandID, err := r.catalog.EnsureBrand(ctx, brand)
	if err != nil {
		return nil, err
	}
	return r.catalog.CreateProduct(ctx, catalogdomain.CreateProductRequest{
		EAN:        ean,
		Name:       name,
		CategoryID: categoryID,
		BrandID:    brandID,
		Metadata:   metadata,
	})
}
