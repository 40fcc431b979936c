package interaction

import (
	"log/slog"

	"github.com/adi-1505/medassist/core"
)

// Checker answers "do any of these medications interact" against the
// documented interaction table. Matching is lenient bidirectional substring
// containment, so related names like "Warfarin sodium" still trigger the
// Warfarin records.
type Checker struct {
	table  []core.InteractionRecord
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewChecker creates a checker over the given interaction table. An empty
// table is valid; every check simply finds nothing.
func NewChecker(table []core.InteractionRecord, opts ...Option) *Checker {
	c := &Checker{
		table:  append([]core.InteractionRecord(nil), table...),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns every interaction record that involves any of the given
// medication names. Unknown names and an empty list are normal empty-result
// cases.
//
// Each record appears at most once per call, even when several input
// medications trigger it.
func (c *Checker) Check(medications []string) []core.InteractionRecord {
	found := make([]core.InteractionRecord, 0)
	if len(medications) == 0 {
		return found
	}

	for _, record := range c.table {
		for _, medication := range medications {
			if record.Involves(medication) {
				c.logger.Debug("interaction matched",
					"medication", medication,
					"primary", record.Primary,
					"partner", record.Partner,
					"severity", record.Severity.String(),
				)
				found = append(found, record)
				break
			}
		}
	}

	return found
}
