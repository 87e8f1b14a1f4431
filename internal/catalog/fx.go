package catalog

import (
	"github.com/serialtrack/serialtrack/internal/catalog/repository"
	"github.com/serialtrack/serialtrack/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
