// Package server exposes the path solver over HTTP.
//
// The dictionary is read once at startup. Graphs are built lazily, one
// per word length on first demand, because edge construction is O(V²)
// and most deployments only ever query a few lengths.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/wordmorph/wordmorph/pkg/cache"
	"github.com/wordmorph/wordmorph/pkg/dict"
	"github.com/wordmorph/wordmorph/pkg/metric"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DictPath is the dictionary file to serve from.
	DictPath string

	// MaxDistance bounds edge creation for every lazily built graph.
	MaxDistance int

	// Cache stores solved answers. Nil disables caching.
	Cache cache.Cache

	// Logger receives request and solver logs. Nil means log.Default().
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.DictPath == "" {
		return errors.New("dictionary path is required")
	}
	if o.MaxDistance < 0 {
		return errors.New("max distance must be non-negative")
	}
	if o.Addr == "" {
		o.Addr = ":8080"
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = 1
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Server answers path queries against a fixed dictionary.
type Server struct {
	opts     Options
	words    []string
	dictHash string
	keyer    cache.Keyer
	logger   *log.Logger

	mu     sync.Mutex
	graphs map[int]*wordgraph.Graph
}

// New loads the dictionary and prepares a server. Graphs are not built
// yet; each is constructed on the first query of its word length.
func New(opts Options) (*Server, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	words, hash, err := loadDictionary(opts.DictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	opts.Logger.Info("dictionary loaded", "path", opts.DictPath, "words", len(words))

	return &Server{
		opts:     opts,
		words:    words,
		dictHash: hash,
		keyer:    cache.NewDefaultKeyer(),
		logger:   opts.Logger,
		graphs:   make(map[int]*wordgraph.Graph),
	}, nil
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/path", s.handlePath)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// graphFor returns the graph for one word length, building it on first
// use. The build runs under the lock so concurrent first queries for
// the same length wait instead of duplicating the O(V²) scan.
func (s *Server) graphFor(length int) (*wordgraph.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.graphs[length]; ok {
		return g, nil
	}

	var group []string
	for _, w := range s.words {
		if len(w) == length {
			group = append(group, w)
		}
	}
	if len(group) == 0 {
		s.graphs[length] = nil
		return nil, nil
	}

	start := time.Now()
	g, err := wordgraph.Build(group, s.opts.MaxDistance, metric.Hamming)
	if err != nil {
		return nil, err
	}

	s.logger.Info("graph built",
		"length", length,
		"vertices", g.Len(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))
	s.graphs[length] = g
	return g, nil
}

// loadDictionary reads the file once so the cache hash covers the
// exact bytes the graphs were built from.
func loadDictionary(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	words, err := dict.ParseWords(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	return words, cache.Hash(data), nil
}
