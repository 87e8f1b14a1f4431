package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/serialtrack/serialtrack/internal/auth"
	"github.com/serialtrack/serialtrack/internal/auth/session"
	"github.com/serialtrack/serialtrack/internal/catalog"
	"github.com/serialtrack/serialtrack/internal/clock"
	"github.com/serialtrack/serialtrack/internal/config"
	"github.com/serialtrack/serialtrack/internal/logger"
	"github.com/serialtrack/serialtrack/internal/migration"
	"github.com/serialtrack/serialtrack/internal/observability"
	"github.com/serialtrack/serialtrack/internal/providers/pdf"
	"github.com/serialtrack/serialtrack/internal/resolver"
	"github.com/serialtrack/serialtrack/internal/server"
	"github.com/serialtrack/serialtrack/internal/slip"
	"github.com/serialtrack/serialtrack/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		observability.Module,

		// Functional Domains
		catalog.Module,
		resolver.Module,
		slip.Module,
		pdf.Module,
		auth.Module,
		session.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
