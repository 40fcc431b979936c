package session

import "sync"

// DefaultHistoryLimit caps how many queries a History retains.
const DefaultHistoryLimit = 100

// History is an append-only record of the queries asked in a session. It is
// safe for concurrent use. Repeated queries are recorded once, matching a
// typical "recent searches" UI.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []string
	seen    map[string]struct{}
}

// NewHistory creates a History retaining up to limit queries; a limit below
// one falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{
		limit: limit,
		seen:  make(map[string]struct{}),
	}
}

// Add records a query. Duplicates and empty queries are ignored. When the
// limit is reached the oldest entry is evicted.
func (h *History) Add(query string) {
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, dup := h.seen[query]; dup {
		return
	}
	if len(h.entries) == h.limit {
		delete(h.seen, h.entries[0])
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, query)
	h.seen[query] = struct{}{}
}

// Recent returns up to n queries, most recent first.
func (h *History) Recent(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	recent := make([]string, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		recent = append(recent, h.entries[i])
	}
	return recent
}

// Len reports how many queries are recorded.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear removes all recorded queries.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.seen = make(map[string]struct{})
}
