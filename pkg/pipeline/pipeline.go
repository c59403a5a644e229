// Package pipeline provides the core solve pipeline for wordmorph.
//
// This package implements the complete scan → build → solve flow shared
// by the CLI and the HTTP server. Centralizing it keeps caching and
// concurrency behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: parse the pairs file and collapse it into per-length
//     distance bounds.
//  2. Build: load the dictionary and build one word graph per needed
//     length (the O(V²) edge scans).
//  3. Solve: run one shortest-path search per query, concurrently on a
//     bounded worker pool. Graphs are read-only by then, so runs over a
//     shared graph need no locking.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DictPath:  "words.dic",
//	    PairsPath: "queries.pal",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dict.WriteAnswers(os.Stdout, result.Answers)
package pipeline

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordmorph/wordmorph/pkg/dict"
	"github.com/wordmorph/wordmorph/pkg/metric"
)

// defaultWorkersCap bounds the computed default solve concurrency.
const defaultWorkersCap = 8

// DefaultWorkers returns the default solve concurrency: the number of
// CPUs, capped so that small machines are not oversubscribed by the
// allocation-heavy runs.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n > defaultWorkersCap {
		return defaultWorkersCap
	}
	if n < 1 {
		return 1
	}
	return n
}

// Options contains all configuration for the solve pipeline.
type Options struct {
	// DictPath is the dictionary file, one word per line.
	DictPath string

	// PairsPath is the query file, "word1 word2 maxDistance" per line.
	PairsPath string

	// Workers bounds concurrent query solves. Zero means DefaultWorkers.
	Workers int

	// Refresh bypasses cached answers (results are still written back).
	Refresh bool

	// Metric is the word distance function. Nil means metric.Hamming.
	Metric metric.DistanceFunc

	// Logger receives progress events. Nil discards them.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.DictPath == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if o.PairsPath == "" {
		return fmt.Errorf("pairs path is required")
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers()
	}
	if o.Metric == nil {
		o.Metric = metric.Hamming
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Answers holds one solved answer per query, in query-file order.
	Answers []dict.Answer

	// DictHash is the content hash of the dictionary file.
	DictHash string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount  int
	QueryCount int
	GraphCount int
	CacheHits  int
	ScanTime   time.Duration
	BuildTime  time.Duration
	SolveTime  time.Duration
}
