// Package dashboard serves the OSIRIS web UI: one view state per browser
// session, driven by form posts and rendered with html/template.
package dashboard

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/metrics"
)

// Options configures a dashboard Server.
type Options struct {
	Catalog    *catalog.Catalog
	SessionTTL time.Duration
	// DispatchPerMinute caps dispatches per session; zero means unlimited.
	DispatchPerMinute int
	Metrics           *metrics.Metrics // nil disables /metrics
	Logger            *slog.Logger
}

// Server serves the OSIRIS web dashboard.
type Server struct {
	catalog  atomic.Pointer[catalog.Catalog]
	sessions *Sessions
	limiter  *rateLimiter
	metrics  *metrics.Metrics
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewServer creates a dashboard server with browser-scoped UI sessions.
func NewServer(opts Options) *Server {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		sessions: NewSessions(cat, opts.SessionTTL),
		limiter:  newRateLimiter(opts.DispatchPerMinute, time.Minute),
		metrics:  opts.Metrics,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.catalog.Store(cat)
	s.sessions.onRemove = s.limiter.forget
	if s.metrics != nil {
		s.sessions.onChange = func(n int) { s.metrics.Sessions.Set(float64(n)) }
	}
	s.routes()
	return s
}

// Handler returns the instrumented dashboard handler.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = securityHeaders(h)
	h = recovery(s.logger)(h)
	h = logging(s.logger)(h)
	h = requestID(h)
	return otelhttp.NewHandler(h, "osiris.dashboard",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// SetCatalog swaps the record source for all sessions, e.g. after a profile
// reload.
func (s *Server) SetCatalog(cat *catalog.Catalog) {
	s.catalog.Store(cat)
	s.sessions.Rebind(cat)
	s.logger.Info("catalog updated", "user", cat.User().Name, "tier", cat.User().Tier)
}

// Catalog returns the catalog currently served.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog.Load()
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}

	app := http.NewServeMux()
	app.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/osiris", http.StatusFound)
	})
	app.HandleFunc("GET /osiris", s.handlePage)
	app.HandleFunc("POST /osiris/dispatch", s.handleDispatch)
	app.HandleFunc("GET /osiris/api/screen", s.handleScreen)

	s.mux.Handle("/", s.sessions.Middleware(app))
}
