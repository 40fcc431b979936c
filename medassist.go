// Copyright 2025 The Medassist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package medassist answers free-text medical queries from an immutable
// in-memory knowledge base. The Assistant facade wires the knowledge store,
// the search engine, the interaction checker, and the response composer
// behind a single entry point with result caching and concurrent batch
// search.
package medassist

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/panjf2000/ants/v2"

	"github.com/adi-1505/medassist/core"
	"github.com/adi-1505/medassist/interaction"
	"github.com/adi-1505/medassist/respond"
	"github.com/adi-1505/medassist/search"
	"github.com/adi-1505/medassist/store"
)

// Cache sizing. Queries are tiny and result slices short; a modest cache
// absorbs the repeated queries typical of an interactive session.
const (
	cacheCounters    = 10_000
	cacheMaxCost     = 1 << 20
	cacheBufferItems = 64
)

// Assistant is the top-level entry point. It is safe for concurrent use:
// the knowledge store is immutable and every query allocates its own
// transient results.
type Assistant struct {
	store    *store.Store
	engine   *search.Engine
	checker  *interaction.Checker
	composer *respond.Composer
	cache    *ristretto.Cache[uint64, []*core.SearchResult]
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Assistant.
type Option func(*options)

type options struct {
	store    *store.Store
	logger   *slog.Logger
	poolSize int
}

// WithStore supplies a custom knowledge store. Default is the embedded
// knowledge base.
func WithStore(st *store.Store) Option {
	return func(o *options) {
		o.store = st
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// WithPoolSize sets the worker pool size used by SearchBatch.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *options) {
		if size < 1 {
			size = 1
		}
		o.poolSize = size
	}
}

// New creates an Assistant. Without options it loads the embedded knowledge
// base.
func New(opts ...Option) (*Assistant, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	o := &options{
		logger:   slog.Default(),
		poolSize: poolSize,
	}
	for _, opt := range opts {
		opt(o)
	}

	st := o.store
	if st == nil {
		var err error
		st, err = store.Default()
		if err != nil {
			return nil, err
		}
	}

	engine, err := search.NewEngine(st, search.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	checker := interaction.NewChecker(st.InteractionTable(), interaction.WithLogger(o.logger))
	composer := respond.NewComposer(
		respond.WithInteractionChecker(checker),
		respond.WithLogger(o.logger),
	)

	cache, err := ristretto.NewCache(&ristretto.Config[uint64, []*core.SearchResult]{
		NumCounters: cacheCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		cache.Close()
		return nil, err
	}

	return &Assistant{
		store:    st,
		engine:   engine,
		checker:  checker,
		composer: composer,
		cache:    cache,
		pool:     pool,
		logger:   o.logger,
	}, nil
}

// Search returns up to search.MaxResults ranked hits for the query.
// Results are cached per normalized query; callers must treat the returned
// results as read-only.
func (a *Assistant) Search(query string) []*core.SearchResult {
	key := core.HashKey(strings.Join(search.Tokenize(query), " "))
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	results := a.engine.Search(query)
	a.cache.Set(key, results, int64(len(results))+1)
	return results
}

// SearchBatch evaluates independent queries concurrently on the worker
// pool. The returned slice is index-aligned with queries. The context only
// gates scheduling; a query already running is never interrupted.
func (a *Assistant) SearchBatch(ctx context.Context, queries []string) ([][]*core.SearchResult, error) {
	out := make([][]*core.SearchResult, len(queries))
	var wg sync.WaitGroup

	for i, query := range queries {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		if err := a.pool.Submit(func() {
			defer wg.Done()
			out[i] = a.Search(query)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()
	return out, nil
}

// Ask runs a search and composes the full response bundle. The patient
// context is optional; with medications present the bundle carries
// interaction warnings.
func (a *Assistant) Ask(query string, patient *core.PatientContext) *core.ResponseBundle {
	return a.composer.Compose(query, a.Search(query), patient)
}

// CheckInteractions returns documented interactions involving any of the
// given medication names.
func (a *Assistant) CheckInteractions(medications []string) []core.InteractionRecord {
	return a.checker.Check(medications)
}

// Store exposes the underlying knowledge store.
func (a *Assistant) Store() *store.Store {
	return a.store
}

// Close releases the worker pool and the result cache. The Assistant should
// not be used after calling Close.
func (a *Assistant) Close() {
	a.pool.Release()
	a.cache.Close()
}
