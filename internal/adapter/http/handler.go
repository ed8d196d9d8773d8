package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comparee/internal/core/port"
)

// Services are the inbound ports served over HTTP.
type Services struct {
	Listings  port.ListingUseCase
	Companies port.CompanyUseCase
	Campaigns port.CampaignUseCase
	GSCSync   port.GSCSyncUseCase
}

// Options toggles environment dependent routes and credentials.
type Options struct {
	// Production mounts the Search Console sync route.
	Production bool
	CronToken  string
	// AdminSecret verifies admin bearer tokens. Empty disables the check.
	AdminSecret []byte
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.accessLog, middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.handleListProducts)
		r.Post("/products", h.handleCreateProduct)

		if opts.Production {
			r.Post("/seo/gsc-sync", h.handleGSCSync)
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/companies", h.handleListCompanies)
			r.Post("/companies", h.handleCompanyAction)
			r.Put("/companies", h.handleUpdateCompany)
			r.Delete("/companies", h.handleDeleteCompany)

			r.Post("/campaigns/sweep", h.handleSweep)
			r.Post("/campaigns/{id}/approve", h.handleCampaignDecision(true))
			r.Post("/campaigns/{id}/reject", h.handleCampaignDecision(false))
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// accessLog writes one record per request.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.LogAttrs(r.Context(), level, "http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", r.RemoteAddr),
		)
	})
}
