package slip

import (
	"github.com/serialtrack/serialtrack/internal/slip/repository"
	"github.com/serialtrack/serialtrack/internal/slip/service"
	"go.uber.org/fx"
)

var Module = fx.Module("slip.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
