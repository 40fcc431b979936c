package search

import "github.com/adi-1505/medassist/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track scoring decisions during a search.
type Monitor interface {
	Start(query string, tokens []string)
	ConditionHit(result *core.SearchResult)
	DrugHit(result *core.SearchResult)
	SymptomHit(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []string)        {}
func (n *noopMonitor) ConditionHit(_ *core.SearchResult) {}
func (n *noopMonitor) DrugHit(_ *core.SearchResult)      {}
func (n *noopMonitor) SymptomHit(_ *core.SearchResult)   {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)     {}
