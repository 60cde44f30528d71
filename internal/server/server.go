// Package server serves the site crawl metadata: robots.txt and sitemap.xml.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/config"
	"github.com/dev-ashishk/github-profile-builder-sub001/internal/routes"
)

var allowedMethods = []string{http.MethodGet, http.MethodHead}

// Server holds the immutable state shared by all requests.
type Server struct {
	config  config.Config
	routes  []routes.Entry
	clock   clockwork.Clock
	log     *zap.Logger
	handler http.Handler
}

// New builds the server for c. The route registry is captured once here.
func New(c config.Config, clock clockwork.Clock, log *zap.Logger) (*Server, error) {
	entries := routes.All()
	if err := routes.Validate(entries); err != nil {
		return nil, fmt.Errorf("route registry: %w", err)
	}

	s := &Server{
		config: c,
		routes: entries,
		clock:  clock,
		log:    log,
	}
	s.handler = s.newHandler()

	if c.App.URL == "" {
		log.Warn("base url is not set, sitemap and robots will contain relative urls")
	}

	return s, nil
}

func (s *Server) newHandler() http.Handler {
	cache := newCacheHeaderAdder(s.config.Cache.MaxAge, s.config.Cache.SharedMaxAge)

	r := mux.NewRouter()
	r.Handle(robotsPath, cache(http.HandlerFunc(s.handleRobots))).Methods(allowedMethods...).Name("robots")
	r.Handle(sitemapPath, cache(http.HandlerFunc(s.handleSitemap))).Methods(allowedMethods...).Name("sitemap")
	r.HandleFunc("/healthz", s.handleHealth).Methods(allowedMethods...).Name("health")
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	c := cors.New(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: allowedMethods,
	})

	return newRequestLogger(s.log, s.clock)(c.Handler(rewriteWellKnown(r)))
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Handler:      s.handler,
		Addr:         ":" + strconv.Itoa(s.config.Server.Port),
		WriteTimeout: s.config.Server.WriteTimeout,
		ReadTimeout:  s.config.Server.ReadTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr), zap.String("base_url", s.config.App.URL))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.config.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, "text/plain", []byte("ok\n"))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.log.Debug("no route", zap.String("path", r.URL.Path))
	http.NotFound(w, r)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(content); err != nil {
		s.log.Warn("writing response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (s *Server) httpError(w http.ResponseWriter, while string, err error) {
	s.log.Error("can't "+while, zap.Error(err))
	w.Header().Del("Cache-Control")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
