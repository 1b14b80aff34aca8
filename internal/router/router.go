package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/config"
	"github.com/brewpos/terminal/internal/handler"
	"github.com/brewpos/terminal/internal/history"
	"github.com/brewpos/terminal/internal/metrics"
	mw "github.com/brewpos/terminal/internal/middleware"
	"github.com/brewpos/terminal/internal/orders"
	"github.com/brewpos/terminal/internal/session"
	"github.com/brewpos/terminal/internal/settings"
	"github.com/brewpos/terminal/internal/ws"
)

// Stores bundles the terminal state the router wires into handlers.
type Stores struct {
	Cart     *cart.Store
	Orders   *orders.Store
	History  *history.Store
	Sessions *session.Store
	Settings *settings.Store
}

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, stores Stores, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/metrics", metrics.Handler())

	authHandler := handler.NewAuthHandler(stores.Settings, stores.Sessions, cfg.JWTSecret)
	authHandler.RegisterPublicRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		// Session control stays reachable while the terminal is locked.
		authHandler.RegisterRoutes(r)

		// Everything else is behind the lock gate.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireActiveSession(stores.Sessions))

			handler.NewCatalogHandler().RegisterRoutes(r)
			handler.NewCartHandler(stores.Cart).RegisterRoutes(r)
			handler.NewCheckoutHandler(stores.Cart, stores.History, 0, 0).RegisterRoutes(r)
			handler.NewOrdersHandler(stores.Orders, stores.Settings).RegisterRoutes(r)
			handler.NewReportsHandler(stores.History).RegisterRoutes(r)
			handler.NewThemeHandler(stores.Settings).RegisterRoutes(r)
		})
	})

	return r
}
