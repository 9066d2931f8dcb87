// Package httpapi exposes a Model evaluation endpoint plus health and
// Prometheus scrape endpoints over a chi router, generalizing the
// teacher/pack's cobra-plus-charmbracelet/log CLI-first discipline
// (see cmd/mcda) to a thin HTTP surface with the same inputs and outputs.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mcda"
	"github.com/katalvlaran/mcda/cache"
	mcdametrics "github.com/katalvlaran/mcda/metrics"
)

// Server wires a chi router over the core package: POST /evaluate builds a
// Model from the request body and returns its Pareto front and t-ordering
// survivors; GET /healthz is a liveness probe; GET /metrics serves the
// process's Prometheus registry.
type Server struct {
	router   chi.Router
	logger   *log.Logger
	cache    cache.Cache
	recorder mcdametrics.Recorder
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger attaches a logger used for per-request diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithCache attaches a memoization backend passed through to every Model
// constructed by /evaluate.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithRegistry registers the recorder's collectors on reg and wires that
// recorder into every Model constructed by /evaluate. /metrics always
// serves Prometheus's default gatherer, so the collectors appear there only
// when reg is prometheus.DefaultRegisterer.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(s *Server) { s.recorder = mcdametrics.NewPrometheusRecorder(reg) }
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   log.New(io.Discard),
		recorder: mcdametrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/evaluate", s.handleEvaluate)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler, so a Server can be passed directly to
// http.ListenAndServe.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// evaluateRequest mirrors config.document's alternative/preference shape
// but over JSON, since an HTTP client posts a parsed model rather than a
// TOML file path.
type evaluateRequest struct {
	Criteria []struct {
		Name     string   `json:"name"`
		Maximize bool     `json:"maximize"`
		Kind     string   `json:"kind"`
		Min      float64  `json:"min"`
		Max      float64  `json:"max"`
		Values   []string `json:"values"`
	} `json:"criteria"`
	Alternatives map[string]map[string]json.RawMessage `json:"alternatives"`
	Preferences  []struct {
		Criterion1 string `json:"criterion1"`
		Criterion2 string `json:"criterion2"`
		Equivalent bool   `json:"equivalent"`
	} `json:"preferences"`
}

type evaluateResponse struct {
	ParetoFront []string `json:"pareto_front"`
	TOrdering   []string `json:"t_ordering"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	criteria, kindOf, err := decodeCriteria(req.Criteria)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alternatives, err := decodeAlternatives(req.Alternatives, kindOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preferences := make([]mcda.Preference, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		pref, err := mcda.NewPreference(p.Criterion1, p.Criterion2, p.Equivalent)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		preferences = append(preferences, pref)
	}

	var modelOpts []mcda.ModelOption
	modelOpts = append(modelOpts, mcda.WithLogger(s.logger), mcda.WithMetrics(s.recorder))
	if s.cache != nil {
		modelOpts = append(modelOpts, mcda.WithCache(s.cache))
	}

	m, err := mcda.NewModel(criteria, alternatives, preferences, modelOpts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := evaluateResponse{
		ParetoFront: m.ParetoFront(),
		TOrdering:   m.TOrdering(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func decodeCriteria(rows []struct {
	Name     string   `json:"name"`
	Maximize bool     `json:"maximize"`
	Kind     string   `json:"kind"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Values   []string `json:"values"`
}) ([]mcda.Criterion, map[string]mcda.Criterion, error) {
	out := make([]mcda.Criterion, 0, len(rows))
	kindOf := make(map[string]mcda.Criterion, len(rows))
	for _, r := range rows {
		var (
			c   mcda.Criterion
			err error
		)
		switch r.Kind {
		case "absolute":
			c, err = mcda.NewAbsolute(r.Name, r.Maximize, r.Min, r.Max)
		case "ordinal":
			c, err = mcda.NewOrdinal(r.Name, r.Maximize, r.Values)
		default:
			return nil, nil, errUnknownKind(r.Name, r.Kind)
		}
		if err != nil {
			return nil, nil, err
		}
		out = append(out, c)
		kindOf[r.Name] = c
	}
	return out, kindOf, nil
}

func errUnknownKind(criterion, kind string) error {
	return fmt.Errorf("httpapi: criterion %q: unknown kind %q (want \"absolute\" or \"ordinal\")", criterion, kind)
}

func errUndeclaredCriterion(alternative, criterion string) error {
	return fmt.Errorf("httpapi: alternative %q: undeclared criterion %q", alternative, criterion)
}

func errWrongValueType(alternative, criterion, want string) error {
	return fmt.Errorf("httpapi: alternative %q: criterion %q expects a %s", alternative, criterion, want)
}

func decodeAlternatives(rows map[string]map[string]json.RawMessage, kindOf map[string]mcda.Criterion) (mcda.AlternativeMatrix, error) {
	matrix := make(mcda.AlternativeMatrix, len(rows))
	for id, cells := range rows {
		row := make(mcda.Row, len(cells))
		for name, raw := range cells {
			c, ok := kindOf[name]
			if !ok {
				return nil, errUndeclaredCriterion(id, name)
			}
			if c.IsOrdinal() {
				var s string
				if err := json.Unmarshal(raw, &s); err != nil {
					return nil, errWrongValueType(id, name, "category string")
				}
				row[name] = mcda.CategoryCell(s)
				continue
			}
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, errWrongValueType(id, name, "number")
			}
			row[name] = mcda.NumberCell(v)
		}
		matrix[id] = row
	}
	return matrix, nil
}
