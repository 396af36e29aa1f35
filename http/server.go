// Package http serves the preview API: generation, extraction, saved
// artifact sets and sandboxed page previews.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Timeouts applied by ListenAndServe.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 2 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 4 << 20

// Server is the HTTP front end. Dependencies are read on every request, so
// fields may be set after NewServer returns but before serving starts.
type Server struct {
	Submitter   sitedraft.Submitter
	Artifacts   sitedraft.ArtifactService
	Responses   sitedraft.ResponseService
	Titles      sitedraft.TitleExtractor
	Links       sitedraft.LinkRewriter
	Highlighter sitedraft.Highlighter
	Limiter     sitedraft.RateLimiter
	Logger      *slog.Logger

	// TrustProxy takes the client address from X-Forwarded-For and X-Real-IP.
	// Enable only behind a reverse proxy that sets them.
	TrustProxy bool

	router chi.Router
}

// NewServer creates a Server with all routes registered.
func NewServer() *Server {
	s := &Server{router: chi.NewRouter()}

	s.router.Use(middleware.RequestID)
	s.router.Use(s.realIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.With(s.rateLimit).Post("/generate", s.handleGenerate)
		r.Post("/extract", s.handleExtract)
		r.Post("/save-code", s.handleSaveCode)
		r.Post("/save-response", s.handleSaveResponse)
		r.Get("/sets", s.handleListSets)
		r.Get("/sets/{id}", s.handleGetSet)
		r.Delete("/sets/{id}", s.handleDeleteSet)
	})

	s.router.Get("/preview/{id}/{filename}", s.handlePreview)
	s.router.Get("/code/{id}", s.handleCode)

	return s
}

// ServeHTTP dispatches the request to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger().Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) realIP(next http.Handler) http.Handler {
	proxied := middleware.RealIP(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.TrustProxy {
			proxied.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger().Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

// rateLimit rejects requests once the client address has used its budget.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter != nil && !s.Limiter.Allow(clientIP(r)) {
			Error(w, r, sitedraft.Errorf(sitedraft.ERATELIMIT, "Too many requests, try again later."), s.logger())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// clientIP returns the host part of the remote address. With TrustProxy the
// forwarded address has already replaced it.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
