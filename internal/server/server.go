package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/serialtrack/serialtrack/internal/auth"
	"github.com/serialtrack/serialtrack/internal/auth/session"
	catalogdomain "github.com/serialtrack/serialtrack/internal/catalog/domain"
	"github.com/serialtrack/serialtrack/internal/config"
	"github.com/serialtrack/serialtrack/internal/observability"
	"github.com/serialtrack/serialtrack/internal/providers/pdf"
	"github.com/serialtrack/serialtrack/internal/resolver"
	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log))
	r.Use(observability.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Params struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Log      *zap.Logger
	Auth     *auth.Authenticator
	Sessions *session.Manager
	Catalog  catalogdomain.Service
	Resolver resolver.Service
	Slips    slipdomain.Service
	PDF      pdf.Provider
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	auth     *auth.Authenticator
	sessions *session.Manager
	catalog  catalogdomain.Service
	resolver resolver.Service
	slips    slipdomain.Service
	pdf      pdf.Provider
}

func NewServer(p Params) *Server {
	return &Server{
		engine:   p.Engine,
		cfg:      p.Config,
		log:      p.Log.Named("server"),
		auth:     p.Auth,
		sessions: p.Sessions,
		catalog:  p.Catalog,
		resolver: p.Resolver,
		slips:    p.Slips,
		pdf:      p.PDF,
	}
}

func (s *Server) RegisterRoutes() {
	r := s.engine

	r.GET("/login", s.LoginPage)
	r.POST("/login", s.Login)
	r.GET("/logout", s.Logout)

	techOrAdmin := s.RequireRole(auth.RoleTech, auth.RoleAdmin)
	adminOnly := s.RequireRole(auth.RoleAdmin)

	r.GET("/", techOrAdmin, s.Home)
	r.GET("/lookup/:ean", techOrAdmin, s.Lookup)
	r.GET("/api/next-number", techOrAdmin, s.NextNumber)
	r.POST("/api/save-slip", techOrAdmin, s.SaveSlip)
	r.POST("/api/manual-product", techOrAdmin, s.ManualProduct)
	r.GET("/slips", techOrAdmin, s.ListSlips)
	r.GET("/pdf/:number", techOrAdmin, s.ProtocolPDF)

	r.GET("/admin", adminOnly, s.AdminProducts)
	r.GET("/admin/product/:id", adminOnly, s.AdminProduct)
	r.POST("/api/admin/save-product", adminOnly, s.AdminSaveProduct)

	// the login page and static assets ship with the frontend build
	if _, err := os.Stat("./public"); err == nil {
		r.NoRoute(func(c *gin.Context) {
			c.File("./public/index.html")
		})
	}
}
