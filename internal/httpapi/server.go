// Package httpapi exposes the compression, scheduling and nudge engines as
// a small JSON API for web front ends.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/braindump/internal/app"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Deps are the use cases the handlers drive.
type Deps struct {
	Compress app.CompressUseCase
	Plan     app.PlanTasksUseCase
	Nudges   app.EvaluateNudgesUseCase
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	// JWTSecret enables HS256 bearer auth on /api/ routes when non-empty.
	JWTSecret string
	// Logs receives one line per request. Nil discards.
	Logs io.Writer
	Now  func() time.Time
}

type Server struct {
	deps     Deps
	opts     Options
	logger   *slog.Logger
	validate *validator.Validate
	handler  http.Handler
}

func New(deps Deps, opts Options) *Server {
	logs := opts.Logs
	if logs == nil {
		logs = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{
		deps:     deps,
		opts:     opts,
		logger:   slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelInfo})),
		validate: validator.New(),
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/compress", s.handleCompress)
	api.HandleFunc("POST /api/compress/stream", s.handleCompressStream)
	api.HandleFunc("POST /api/schedule", s.handleSchedule)
	api.HandleFunc("POST /api/nudges", s.handleNudges)
	api.HandleFunc("POST /api/items/compress", s.handleItemsCompress)

	var apiHandler http.Handler = api
	if s.opts.JWTSecret != "" {
		apiHandler = bearerAuth([]byte(s.opts.JWTSecret), api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("/api/", apiHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(s.logRequests(mux))
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http_listen", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
