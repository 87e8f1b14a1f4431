package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/serialtrack/serialtrack/internal/config"
	"github.com/serialtrack/serialtrack/internal/resolver/icecat"
	"github.com/serialtrack/serialtrack/internal/resolver/upcitemdb"
	"go.uber.org/fx"
)

func newPrimary(cfg config.Config) CatalogLookup {
	return icecat.New(cfg.IcecatUser, cfg.IcecatTimeout)
}

func newSecondary(cfg config.Config) TitleLookup {
	return upcitemdb.New(cfg.UPCItemTimeout)
}

func newMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

var Module = fx.Module("resolver",
	fx.Provide(newPrimary),
	fx.Provide(newSecondary),
	fx.Provide(newMetrics),
	fx.Provide(New),
)
