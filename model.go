// model.go — Model ties the Validator, Normalizer, Pareto filter, grouper,
// importance closure, and t-dominance/t-ordering machinery into the
// construct-once, compute-lazily lifecycle described in spec.md §3.
package mcda

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/katalvlaran/mcda/cache"
	"github.com/katalvlaran/mcda/metrics"
)

// Model is a validated, normalized decision problem: a fixed set of
// criteria, an alternative matrix, and a preference set. Pareto filtering
// and t-ordering are computed on first use and memoized for the lifetime of
// the Model (spec.md §3 "Lifecycle"). A Model is safe for concurrent use
// once constructed; NewModel itself is not safe to call concurrently with
// mutation of its inputs, but mcda never mutates them either way.
type Model struct {
	runID       uuid.UUID
	criteria    []Criterion
	alternative AlternativeMatrix
	preferences []Preference

	normalized NormalizedMatrix
	groups     *groupSet
	dag        *importanceDAG
	altIDs     []string // alternative identifiers in sorted order, for stable sweeps

	logger   *log.Logger
	cache    cache.Cache
	recorder metrics.Recorder

	paretoOnce   sync.Once
	paretoResult []string

	tOrderingOnce   sync.Once
	tOrderingResult []string
}

// NewModel validates criteria, alternatives, and preferences, then
// normalizes eagerly, returning a ready-to-query Model. On any validation
// failure it returns an *InvalidModelError and no Model.
func NewModel(criteria []Criterion, alternatives AlternativeMatrix, preferences []Preference, opts ...ModelOption) (*Model, error) {
	cfg := newModelConfig(opts...)

	if err := validate(criteria, alternatives, preferences); err != nil {
		cfg.recorder.ValidationFailed(failureReason(err))
		cfg.logger.Error("model construction failed", "error", err)
		return nil, err
	}

	ids := sortedKeys(alternatives)
	m := &Model{
		runID:       uuid.New(),
		criteria:    append([]Criterion(nil), criteria...),
		alternative: alternatives,
		preferences: append([]Preference(nil), preferences...),
		normalized:  normalize(criteria, alternatives),
		groups:      buildGroups(criteria, preferences),
		altIDs:      ids,
		logger:      cfg.logger,
		cache:       cfg.cache,
		recorder:    cfg.recorder,
	}
	m.dag = buildImportanceDAG(m.groups, preferences)

	cfg.recorder.ModelConstructed()
	m.logger.Debug("model constructed", "run_id", m.runID, "alternatives", len(ids), "criteria", len(criteria))
	return m, nil
}

// RunID returns the UUID assigned to this Model at construction, used only
// for log correlation and metrics labels — never part of the decision
// logic.
func (m *Model) RunID() uuid.UUID { return m.runID }

// Normalized returns the normalized matrix, for inspection (spec.md §6).
func (m *Model) Normalized() NormalizedMatrix {
	m.requireNormalized()
	return m.normalized
}

// requireNormalized panics if called on a Model that bypassed NewModel (a
// zero-value Model literal rather than a constructed one), mirroring
// matrix.AdjacencyMatrix.VertexCount's guard against an uninitialized
// receiver.
func (m *Model) requireNormalized() {
	if m.normalized == nil {
		panic(fmt.Errorf("%w: call NewModel, not a zero-value Model", ErrNotNormalized))
	}
}

// ParetoFront returns the identifiers of alternatives surviving Pareto
// filtering, computed once and memoized thereafter.
func (m *Model) ParetoFront() []string {
	m.requireNormalized()
	m.paretoOnce.Do(func() {
		key := m.cacheKey("pareto")
		if cached, ok := m.cacheLookup(key); ok {
			m.paretoResult = cached
			return
		}
		start := time.Now()
		criteriaNames := criterionNames(m.criteria)
		m.paretoResult = paretoFront(m.normalized, m.altIDs, criteriaNames)
		m.recorder.ParetoComputed(time.Since(start))
		m.cacheStore(key, m.paretoResult)
	})
	return append([]string(nil), m.paretoResult...)
}

// TOrdering returns the identifiers of alternatives surviving t-ordering;
// every t-surviving alternative is necessarily Pareto-surviving.
func (m *Model) TOrdering() []string {
	m.requireNormalized()
	m.tOrderingOnce.Do(func() {
		key := m.cacheKey("tordering")
		if cached, ok := m.cacheLookup(key); ok {
			m.tOrderingResult = cached
			return
		}
		start := time.Now()
		front := m.ParetoFront()
		m.tOrderingResult = tOrdering(front, m.normalized, m.groups, m.dag)
		m.recorder.TOrderingComputed(time.Since(start))
		m.cacheStore(key, m.tOrderingResult)
	})
	return append([]string(nil), m.tOrderingResult...)
}

func (m *Model) cacheLookup(key string) ([]string, bool) {
	if m.cache == nil {
		return nil, false
	}
	survivors, ok, err := m.cache.Get(key)
	if err != nil {
		m.logger.Warn("cache lookup failed", "key", key, "error", err)
		return nil, false
	}
	return survivors, ok
}

func (m *Model) cacheStore(key string, survivors []string) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Set(key, survivors); err != nil {
		m.logger.Warn("cache store failed", "key", key, "error", err)
	}
}

// cacheKey derives a stable content hash of the model's inputs plus the
// requested pass name, so distinct models never collide and the same
// model always maps to the same key (spec.md §3 "memoized"; see cache
// package doc for why this is not "persistence of the model").
func (m *Model) cacheKey(pass string) string {
	h := sha256.New()
	fmt.Fprintf(h, "pass=%s\n", pass)
	for _, c := range m.criteria {
		fmt.Fprintf(h, "criterion=%s maximize=%v kind=%#v\n", c.Name, c.Maximize, c.Kind)
	}
	for _, p := range m.preferences {
		fmt.Fprintf(h, "preference=%s,%s,%v\n", p.Criterion1, p.Criterion2, p.Equivalent)
	}
	for _, id := range m.altIDs {
		row := m.alternative[id]
		names := make([]string, 0, len(row))
		for n := range row {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Fprintf(h, "alternative=%s", id)
		for _, n := range names {
			fmt.Fprintf(h, " %s=%#v", n, row[n])
		}
		fmt.Fprintln(h)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// criterionNames extracts declared criterion names in declaration order.
func criterionNames(criteria []Criterion) []string {
	out := make([]string, len(criteria))
	for i, c := range criteria {
		out[i] = c.Name
	}
	return out
}

// failureReason maps an InvalidModelError to a short label suitable as a
// Prometheus metric value, matching the sentinel's intent.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrWrongValueType):
		return "wrong_value_type"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, ErrUndeclaredCriterion):
		return "undeclared_criterion"
	case errors.Is(err, ErrCyclicPreferences):
		return "cyclic_preferences"
	case errors.Is(err, ErrDuplicateCriterion):
		return "duplicate_criterion"
	case errors.Is(err, ErrDuplicateAlternative):
		return "duplicate_alternative"
	case errors.Is(err, ErrContradictoryPair):
		return "contradictory_pair"
	default:
		return "unknown"
	}
}
