package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/Momin010/MominOS-9u/internal/api/http"
	"github.com/Momin010/MominOS-9u/internal/api/middleware"
	"github.com/Momin010/MominOS-9u/internal/api/ws"
	"github.com/Momin010/MominOS-9u/internal/domain/dock"
	"github.com/Momin010/MominOS-9u/internal/domain/launcher"
	"github.com/Momin010/MominOS-9u/internal/domain/registry"
	"github.com/Momin010/MominOS-9u/internal/domain/session"
	"github.com/Momin010/MominOS-9u/internal/domain/wm"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/config"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/logging"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/monitoring"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	logger   *logging.Logger
	router   *gin.Engine
	httpSrv  *http.Server
	wm       *wm.Manager
	dock     *dock.Dock
	launcher *launcher.Launcher
	catalog  *registry.Manager
	gate     *session.Gate
}

// New assembles a server from configuration.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	metrics := monitoring.NewMetrics()

	catalog := registry.NewManager()
	seeder := registry.NewSeeder(catalog, cfg.Desktop.ManifestDir)
	if err := seeder.SeedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	if loaded, err := seeder.SeedManifests(); err != nil {
		logger.Warn("manifest scan failed", zap.Error(err))
	} else if loaded > 0 {
		logger.Info("loaded app manifests",
			zap.Int("count", loaded),
			zap.String("dir", cfg.Desktop.ManifestDir))
	}

	layout := wm.DefaultLayout()
	layout.TopBar = cfg.Desktop.TopBar
	layout.SnapMargin = cfg.Desktop.SnapMargin
	layout.DockMargin = cfg.Desktop.DockMargin

	d := dock.New(catalog.Entries(), cfg.Desktop.DockPinned, layout.DockMargin)

	viewport := types.Size{
		Width:  cfg.Desktop.ViewportWidth,
		Height: cfg.Desktop.ViewportHeight,
	}
	wmgr := wm.NewManager(viewport, layout).
		WithDock(d).
		WithMetrics(metrics)

	l := launcher.New(catalog, wmgr)

	gate := session.New(session.DefaultIdentities()).
		OnSelect(func(identity types.Identity) {
			logger.Info("session started",
				zap.String("identity", identity.ID),
				zap.String("role", identity.Role))
		}).
		OnLogout(func() {
			logger.Info("session ended")
		})

	if cfg.Logging.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		// Engine-wide ceiling first, then the per-client buckets.
		router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.GlobalRPS,
			Burst:             cfg.RateLimit.GlobalBurst,
		}))
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(wmgr, d, l, catalog, gate, metrics)
	wsHandler := ws.NewHandler(wmgr, d, l, catalog, logger).WithMetrics(metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Session gate
	router.GET("/session", handlers.GetSession)
	router.GET("/session/identities", handlers.ListIdentities)
	router.POST("/session/login", handlers.Login)
	router.POST("/session/logout", handlers.Logout)

	// Window management
	router.GET("/windows", handlers.ListWindows)
	router.GET("/windows/:id", handlers.GetWindow)
	router.POST("/windows/:id/focus", handlers.FocusWindow)
	router.DELETE("/windows/:id", handlers.CloseWindow)
	router.POST("/windows/:id/minimize", handlers.MinimizeWindow)
	router.POST("/windows/:id/maximize", handlers.MaximizeWindow)
	router.POST("/windows/:id/snap", handlers.SnapWindow)

	// App catalog
	router.POST("/apps/:id/open", handlers.OpenApp)
	router.GET("/catalog", handlers.ListCatalog)
	router.GET("/catalog/:id", handlers.GetCatalogApp)

	// Dock
	router.GET("/dock", handlers.GetDock)
	router.POST("/dock/anchor", handlers.SetDockAnchor)

	// Launcher overlay
	router.GET("/launcher/apps", handlers.FilterLauncher)
	router.POST("/launcher/show", handlers.ShowLauncher)
	router.POST("/launcher/dismiss", handlers.DismissLauncher)
	router.POST("/launcher/select", handlers.SelectLauncherApp)

	// Renderer stream
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		cfg:      cfg,
		logger:   logger,
		router:   router,
		wm:       wmgr,
		dock:     d,
		launcher: l,
		catalog:  catalog,
		gate:     gate,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("shell engine listening",
		zap.String("addr", addr),
		zap.Int("catalog_entries", s.catalog.Stats().TotalEntries))

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
