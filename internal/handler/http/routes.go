package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/healthz", h.healthz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)

		r.Get("/api/products", h.listProducts)
	})

	router.Route("/seller", func(r chi.Router) {
		r.Use(h.authenticate, h.requireRole(auth.RequireSeller))

		r.Post("/add-product", h.addProduct)
		r.Put("/edit-product/{id}", h.editProduct)
		r.Delete("/delete-product/{id}", h.deleteProduct)
	})

	router.Route("/buyer", func(r chi.Router) {
		r.Use(h.authenticate)

		r.With(h.requireRole(auth.RequireNone)).Get("/search", h.searchProducts)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(auth.RequireBuyer))

			r.Post("/add-to-cart", h.addToCart)
			r.Delete("/remove-from-cart/{id}", h.removeFromCart)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
