package mockapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/metrics"
	"github.com/iota-uz/pharma-admin/pkg/middleware"
	"github.com/iota-uz/pharma-admin/pkg/server"
)

type Options struct {
	Origins         []string
	MetricsPath     string
	RequestIDHeader string
	MaxUploadSize   int64
	Logger          *logrus.Logger
	// Registry receives the request metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// Server wires a Backend behind request logging, metrics, CORS and gzip.
type Server struct {
	Backend  *Backend
	Registry *prometheus.Registry
	handler  http.Handler
	log      *logrus.Logger
}

func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if len(opts.Origins) == 0 {
		opts.Origins = []string{"*"}
	}
	if opts.RequestIDHeader == "" {
		opts.RequestIDHeader = "X-Request-ID"
	}

	backend := NewBackend(opts.MaxUploadSize)
	loggerOpts := middleware.DefaultLoggerOptions()
	loggerOpts.RequestIDHeader = opts.RequestIDHeader

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", map[string]string{"path": r.URL.Path})
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpapi.WriteJSON(w, http.StatusMethodNotAllowed, httpapi.ErrorEnvelope{Error: "method not allowed"})
	})

	httpServer := server.NewHTTPServer(
		[]server.Controller{backend, metrics.NewPrometheusController(opts.MetricsPath, reg)},
		[]mux.MiddlewareFunc{
			middleware.WithLogger(log, loggerOpts),
			metrics.NewHTTPMetrics(reg).Middleware(),
		},
		notFound,
		notAllowed,
	)
	c := cors.New(cors.Options{
		AllowedOrigins: opts.Origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{opts.RequestIDHeader},
	})

	return &Server{
		Backend:  backend,
		Registry: reg,
		handler:  c.Handler(httpServer.Handler()),
		log:      log,
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("mock api listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
