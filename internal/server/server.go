package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/RogueMods_Go/internal/handler"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/metrics"
)

// Options configures the listener and the middleware stack
type Options struct {
	Port int
	// APIKey protects /api routes when set
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Handlers groups everything the router serves
type Handlers struct {
	Menus    *handler.MenuHandlers
	Shop     *handler.ShopHandlers
	Items    *handler.ItemHandlers
	Settings *handler.SettingsHandlers
	Players  *handler.PlayerHandlers
	// Store is pinged for readiness; nil when saves live in process
	Store handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, h Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, h),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(opts Options, h Handlers) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	}
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(h.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Settings.HandleListSettings())
			r.Post("/", h.Settings.HandleApplySetting())
			r.Post("/reset", h.Settings.HandleResetSettings())
		})

		r.Get("/species/search", h.Players.HandleSearchSpecies())

		r.Get("/players", h.Players.HandleListPlayers())
		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/save", h.Players.HandleGetSave())
			r.Get("/offers", h.Shop.HandleGetOffers())
			r.Get("/regenerate", h.Shop.HandleRegenerate())
			r.Post("/shop", h.Shop.HandleOpenShop())
			r.Post("/items", h.Items.HandleOpenItems())
			r.Get("/modifiers", h.Items.HandleDrainModifiers())
		})

		r.Route("/menus/{menuID}", func(r chi.Router) {
			r.Get("/", h.Menus.HandleGetMenu())
			r.Post("/select", h.Menus.HandleSelect())
			r.Delete("/", h.Menus.HandleCloseMenu())
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
