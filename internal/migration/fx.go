package migration

import (
	catalogdomain "github.com/serialtrack/serialtrack/internal/catalog/domain"
	"github.com/serialtrack/serialtrack/internal/config"
	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// mysql/sqlite deployments fall back to gorm's schema sync, the same
		// path the test suite uses.
		return conn.AutoMigrate(
			&catalogdomain.Category{},
			&catalogdomain.Brand{},
			&catalogdomain.Product{},
			&slipdomain.Slip{},
			&slipdomain.SlipItem{},
			&slipdomain.Serial{},
		)
	}),
)
