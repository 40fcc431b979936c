package search

import (
	"log/slog"
	"sort"

	"github.com/adi-1505/medassist/core"
	"github.com/adi-1505/medassist/store"
)

// MaxResults is the hard cap on the number of results a search returns.
const MaxResults = 15

// Engine ranks knowledge-base entities against free-text queries. It holds
// only an immutable store reference, so one Engine serves any number of
// concurrent searches.
type Engine struct {
	store  *store.Store
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new search engine over the given knowledge store.
func NewEngine(st *store.Store, opts ...Option) (*Engine, error) {
	if st == nil {
		return nil, ErrStoreRequired
	}

	e := &Engine{
		store:  st,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search scores every entity in the store against the query and returns up
// to MaxResults hits ranked by descending score. Entities scoring zero are
// excluded. Ties keep first-encounter order: conditions before drugs before
// symptoms, each in store order, so repeated searches are reproducible.
//
// An empty or non-matching query returns an empty slice; that is a normal
// outcome, not an error.
func (e *Engine) Search(query string) []*core.SearchResult {
	return e.SearchWithMonitor(query, nil)
}

// SearchWithMonitor is Search with observation hooks. The monitor receives
// callbacks for every scored hit and the final ranking.
func (e *Engine) SearchWithMonitor(query string, monitor Monitor) []*core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	tokens := Tokenize(query)
	monitor.Start(query, tokens)

	results := make([]*core.SearchResult, 0)
	if len(tokens) == 0 {
		monitor.Finish(results)
		return results
	}

	for _, condition := range e.store.Conditions() {
		score := ScoreCondition(tokens, condition)
		if score <= 0 {
			continue
		}
		result := &core.SearchResult{
			Type:      core.EntityCondition,
			ID:        condition.ID,
			Condition: condition,
			Score:     score,
			Relevance: core.BucketForScore(score),
		}
		monitor.ConditionHit(result)
		results = append(results, result)
	}

	for _, drug := range e.store.Drugs() {
		score := ScoreDrug(tokens, drug)
		if score <= 0 {
			continue
		}
		result := &core.SearchResult{
			Type:      core.EntityDrug,
			ID:        drug.ID,
			Drug:      drug,
			Score:     score,
			Relevance: core.BucketForScore(score),
		}
		monitor.DrugHit(result)
		results = append(results, result)
	}

	for _, symptom := range e.store.Symptoms() {
		score := ScoreSymptom(tokens, symptom)
		if score <= 0 {
			continue
		}
		result := &core.SearchResult{
			Type:      core.EntitySymptom,
			ID:        symptom.ID,
			Symptom:   symptom,
			Score:     score,
			Relevance: core.BucketForScore(score),
		}
		monitor.SymptomHit(result)
		results = append(results, result)
	}

	// Stable sort preserves encounter order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	e.logger.Debug("search complete", "query", query, "hits", len(results))
	monitor.Finish(results)

	return results
}
