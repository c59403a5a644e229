package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/wordmorph/wordmorph/pkg/cache"
	"github.com/wordmorph/wordmorph/pkg/dict"
	apperrors "github.com/wordmorph/wordmorph/pkg/errors"
	"github.com/wordmorph/wordmorph/pkg/observability"
	"github.com/wordmorph/wordmorph/pkg/shortest"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → build → solve pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Scan queries for per-length bounds.
	scanStart := time.Now()
	queries, err := dict.LoadQueries(opts.PairsPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidQuery, err, "load queries from %s", opts.PairsPath)
	}
	bounds := dict.MaxDistances(queries)
	result.Stats.QueryCount = len(queries)
	result.Stats.ScanTime = time.Since(scanStart)

	logger.Info("scanned queries",
		"queries", len(queries),
		"lengths", len(bounds),
		"duration", result.Stats.ScanTime)

	// Stage 2: Build one graph per needed word length.
	buildStart := time.Now()
	dictData, err := os.ReadFile(opts.DictPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read dictionary %s", opts.DictPath)
	}
	result.DictHash = cache.Hash(dictData)

	words, err := dict.ParseWords(bytes.NewReader(dictData))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDictionary, err, "parse dictionary %s", opts.DictPath)
	}
	result.Stats.WordCount = len(words)

	graphs, err := r.buildGraphs(ctx, words, bounds, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDictionary, err, "build graphs")
	}
	result.Stats.GraphCount = len(graphs)
	result.Stats.BuildTime = time.Since(buildStart)

	logger.Info("built graphs",
		"words", len(words),
		"graphs", len(graphs),
		"duration", result.Stats.BuildTime)

	// Stage 3: Solve every query on a bounded worker pool. Graphs are
	// immutable now, so concurrent runs over a shared graph are safe.
	solveStart := time.Now()
	answers := make([]dict.Answer, len(queries))
	hits := make([]bool, len(queries))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(opts.Workers)
	for i, q := range queries {
		grp.Go(func() error {
			a, hit, err := r.solve(grpCtx, graphs, q, result.DictHash, opts.Refresh)
			if err != nil {
				return err
			}
			answers[i] = a
			hits[i] = hit
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	result.Answers = answers
	for _, h := range hits {
		if h {
			result.Stats.CacheHits++
		}
	}
	result.Stats.SolveTime = time.Since(solveStart)

	logger.Info("solved queries",
		"queries", len(queries),
		"cache_hits", result.Stats.CacheHits,
		"duration", result.Stats.SolveTime)

	return result, nil
}

// buildGraphs constructs per-length graphs with observability events.
func (r *Runner) buildGraphs(ctx context.Context, words []string, bounds map[int]int, opts Options) (map[int]*wordgraph.Graph, error) {
	counts := make(map[int]int)
	for _, w := range words {
		if _, needed := bounds[len(w)]; needed {
			counts[len(w)]++
		}
	}
	for length, n := range counts {
		observability.Solver().OnBuildStart(ctx, length, n)
	}

	start := time.Now()
	graphs, err := dict.BuildGraphs(words, bounds, opts.Metric)
	if err != nil {
		return nil, err
	}
	for length, g := range graphs {
		observability.Solver().OnBuildComplete(ctx, length, g.EdgeCount(), time.Since(start))
		opts.Logger.Debug("graph ready",
			"length", length,
			"vertices", g.Len(),
			"edges", g.EdgeCount(),
			"max_distance", g.MaxDistance())
	}
	return graphs, nil
}

// solve answers one query, consulting the cache first.
// The second return reports whether the answer came from cache.
func (r *Runner) solve(ctx context.Context, graphs map[int]*wordgraph.Graph, q dict.Query, dictHash string, refresh bool) (dict.Answer, bool, error) {
	key := r.Keyer.PathKey(dictHash, q.From, q.To, q.MaxDistance)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var a dict.Answer
			if err := json.Unmarshal(data, &a); err == nil {
				observability.Cache().OnCacheHit(ctx, "path")
				return a, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "path")

	observability.Solver().OnSolveStart(ctx, q.From, q.To)
	start := time.Now()
	a := r.solveUncached(graphs, q)
	observability.Solver().OnSolveComplete(ctx, q.From, q.To, a.Cost, time.Since(start), nil)

	if data, err := json.Marshal(a); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "path", len(data))
		}
	}
	return a, false, nil
}

// solveUncached runs one shortest-path search for the query.
//
// Every expected miss - a word length no graph covers, a word missing
// from the dictionary, endpoints of different lengths, or a genuinely
// unreachable pair - yields an unreachable answer rather than an error:
// the pipeline reports per query and keeps going.
func (r *Runner) solveUncached(graphs map[int]*wordgraph.Graph, q dict.Query) dict.Answer {
	unreachable := dict.Answer{Query: q, Cost: dict.UnreachableCost}

	if len(q.From) != len(q.To) {
		return unreachable
	}
	g, ok := graphs[q.Length()]
	if !ok {
		return unreachable
	}
	src, ok := g.FindVertex(q.From)
	if !ok {
		return unreachable
	}
	dst, ok := g.FindVertex(q.To)
	if !ok {
		return unreachable
	}

	res, err := shortest.Run(g, src)
	if err != nil {
		// Source came from FindVertex, so a range error here means the
		// graph itself is corrupt; surface it loudly in logs but keep
		// the per-query contract.
		r.Logger.Error("shortest-path run failed", "from", q.From, "to", q.To, "err", err)
		return unreachable
	}

	words, err := shortest.PathWords(g, res.Prev, src, dst)
	if err != nil {
		return unreachable
	}
	return dict.Answer{Query: q, Words: words, Cost: res.Dist[dst]}
}
