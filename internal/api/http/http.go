// Package httpapi exposes the public JSON API: waitlist intake and the
// read-only article catalog.
package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lumioapp/lumio-site-manager/internal/catalog"
	"github.com/lumioapp/lumio-site-manager/internal/dependency"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	lstdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	lmemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

type Config struct {
	Port    string `mapstructure:"port"`
	Address string `mapstructure:"address"`
	// Debug widens error responses with stack traces. Never enable in
	// production.
	Debug bool `mapstructure:"debug"`
	// SubmitRateLimit is a limiter rate string like "20-M", applied per IP
	// to the waitlist submit route only. Empty disables the limit.
	SubmitRateLimit string `mapstructure:"submit_rate_limit"`
}

// Server is the http transport. The repository may be nil when the database
// is not configured, write endpoints then answer with a configuration error
// while the catalog stays up.
type Server struct {
	c       *Config
	hs      *http.Server
	rep     dependency.Repository
	catalog *catalog.Service
	mailer  dependency.Mailer
	done    chan struct{}
}

func New(c *Config, rep dependency.Repository, cat *catalog.Service, mailer dependency.Mailer) *Server {
	return &Server{
		c:       c,
		rep:     rep,
		catalog: cat,
		mailer:  mailer,
		done:    make(chan struct{}),
	}
}

// Done closes when the listener exits for any reason.
func (s *Server) Done() chan struct{} {
	return s.done
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	port := s.c.Port
	if port == "" {
		port = "8081"
	}
	addr := net.JoinHostPort(s.c.Address, port)

	s.hs = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", addr, err)
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server started",
			slog.String("addr", addr),
		)
		if err := s.hs.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Default().ErrorContext(ctx, "http server exited",
				slog.String("err", err.Error()),
			)
		}
	}()

	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Public intake endpoint, not a credentialed API. Wildcard on every
	// response, preflights answered with 200 and no body.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Use(metricsMiddleware)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(req.Context(), w, http.StatusNotFound, "Not found", "", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(req.Context(), w, http.StatusMethodNotAllowed, "Method not allowed", "", "")
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(s.submitLimiter()).Post("/submit-waitlist", s.submitWaitlist)
		r.Options("/submit-waitlist", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.Get("/articles", s.listArticles)
		r.Get("/articles/featured", s.featuredArticles)
		r.Get("/articles/{slug}", s.getArticle)
		r.Get("/articles/{slug}/related", s.relatedArticles)
		r.Get("/categories", s.listCategories)
		r.Get("/tags", s.listTags)
		r.Get("/authors", s.listAuthors)
	})

	return r
}

// submitLimiter builds the per-IP rate limit middleware for the submit
// route. A missing or malformed rate disables limiting.
func (s *Server) submitLimiter() func(http.Handler) http.Handler {
	if s.c.SubmitRateLimit == "" {
		return passthrough
	}
	rate, err := limiter.NewRateFromFormatted(s.c.SubmitRateLimit)
	if err != nil {
		slog.Default().Error("invalid submit rate limit, limiter disabled",
			slog.String("rate", s.c.SubmitRateLimit),
			slog.String("err", err.Error()),
		)
		return passthrough
	}
	mw := lstdlib.NewMiddleware(limiter.New(lmemory.NewStore(), rate))
	return mw.Handler
}

func passthrough(next http.Handler) http.Handler {
	return next
}
