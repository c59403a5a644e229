package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wordmorph/wordmorph/pkg/cache"
	"github.com/wordmorph/wordmorph/pkg/dict"
	apperrors "github.com/wordmorph/wordmorph/pkg/errors"
	"github.com/wordmorph/wordmorph/pkg/observability"
	"github.com/wordmorph/wordmorph/pkg/shortest"
)

// pathResponse is the JSON body for a solved query.
type pathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Cost  int      `json:"cost"`
	Words []string `json:"words,omitempty"`
}

// errorResponse is the JSON body for a rejected request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statsResponse summarizes what the server has loaded so far.
type statsResponse struct {
	Words       int         `json:"words"`
	DictHash    string      `json:"dict_hash"`
	MaxDistance int         `json:"max_distance"`
	Graphs      []graphStat `json:"graphs"`
}

type graphStat struct {
	Length   int `json:"length"`
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePath solves GET /api/path?from=cat&to=dog.
//
// An unreachable pair is a valid outcome, not an error: the response is
// 200 with cost -1, matching the batch output convention.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "from and to query parameters are required",
			Code:  string(apperrors.ErrCodeInvalidQuery),
		})
		return
	}

	unreachable := pathResponse{From: from, To: to, Cost: dict.UnreachableCost}
	if len(from) != len(to) {
		writeJSON(w, http.StatusOK, unreachable)
		return
	}

	key := s.keyer.PathKey(s.dictHash, from, to, s.opts.MaxDistance)
	if data, hit, err := s.opts.Cache.Get(ctx, key); err == nil && hit {
		var resp pathResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			observability.Cache().OnCacheHit(ctx, "path")
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}
	observability.Cache().OnCacheMiss(ctx, "path")

	g, err := s.graphFor(len(from))
	if err != nil {
		s.logger.Error("graph build failed", "length", len(from), "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "graph construction failed",
			Code:  string(apperrors.ErrCodeInternal),
		})
		return
	}
	if g == nil {
		writeJSON(w, http.StatusOK, unreachable)
		return
	}

	src, ok := g.FindVertex(from)
	if !ok {
		writeJSON(w, http.StatusOK, unreachable)
		return
	}
	dst, ok := g.FindVertex(to)
	if !ok {
		writeJSON(w, http.StatusOK, unreachable)
		return
	}

	observability.Solver().OnSolveStart(ctx, from, to)
	start := time.Now()
	res, err := shortest.Run(g, src)
	if err != nil {
		s.logger.Error("shortest-path run failed", "from", from, "to", to, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "solver failed",
			Code:  string(apperrors.ErrCodeInternal),
		})
		return
	}

	resp := unreachable
	if words, err := shortest.PathWords(g, res.Prev, src, dst); err == nil {
		resp = pathResponse{From: from, To: to, Cost: res.Dist[dst], Words: words}
	}
	observability.Solver().OnSolveComplete(ctx, from, to, resp.Cost, time.Since(start), nil)

	if data, err := json.Marshal(resp); err == nil {
		if err := s.opts.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			s.logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "path", len(data))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := statsResponse{
		Words:       len(s.words),
		DictHash:    s.dictHash,
		MaxDistance: s.opts.MaxDistance,
		Graphs:      make([]graphStat, 0, len(s.graphs)),
	}
	for length, g := range s.graphs {
		if g == nil {
			continue
		}
		stats.Graphs = append(stats.Graphs, graphStat{
			Length:   length,
			Vertices: g.Len(),
			Edges:    g.EdgeCount(),
		})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
