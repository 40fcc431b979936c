package respond

import (
	"log/slog"
	"strings"

	"github.com/adi-1505/medassist/core"
	"github.com/adi-1505/medassist/interaction"
)

// Composition limits.
const (
	maxPrimary          = 5
	maxSecondary        = 5
	relatedLimit        = 6
	recommendationLimit = 8
	seekHelpLimit       = 6
)

// Composer assembles ranked search results into a ResponseBundle for the
// presentation layer. Every composition is a pure single-pass transformation;
// the Composer itself carries no per-query state.
type Composer struct {
	checker *interaction.Checker
	logger  *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// WithInteractionChecker enables interaction warnings: when a patient
// context with medications accompanies a query, the composer consults the
// checker and attaches any matching records to the bundle.
func WithInteractionChecker(checker *interaction.Checker) Option {
	return func(c *Composer) {
		c.checker = checker
	}
}

// NewComposer creates a response composer.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose turns ranked results into a response bundle. With no results it
// returns a no-results bundle: apology message, four rephrase suggestions,
// and the standard disclaimer; no emergency check runs in that case.
//
// The patient context is optional and read-only; it only feeds interaction
// warnings.
func (c *Composer) Compose(query string, results []*core.SearchResult, patient *core.PatientContext) *core.ResponseBundle {
	if len(results) == 0 {
		return &core.ResponseBundle{
			Query:       query,
			Message:     NoResultsMessage,
			Suggestions: append([]string(nil), rephraseSuggestions...),
			Disclaimer:  Disclaimer,
		}
	}

	bundle := &core.ResponseBundle{
		Query:              query,
		Emergency:          detectEmergency(query),
		Primary:            head(results, maxPrimary),
		Secondary:          slice(results, maxPrimary, maxPrimary+maxSecondary),
		RelatedInformation: relatedInformation(results),
		Recommendations:    recommendations(results),
		WhenToSeekHelp:     seekHelpAdvice(results),
		Disclaimer:         Disclaimer,
		Sources:            append([]string(nil), evidenceSources...),
	}

	if c.checker != nil && patient != nil && len(patient.Medications) > 0 {
		bundle.Interactions = c.checker.Check(patient.Medications)
		if len(bundle.Interactions) > 0 {
			c.logger.Debug("interaction warnings attached",
				"medications", len(patient.Medications),
				"warnings", len(bundle.Interactions))
		}
	}

	return bundle
}

// detectEmergency inspects only the raw query text, never the results.
func detectEmergency(query string) *core.EmergencyAlert {
	lowered := strings.ToLower(query)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lowered, keyword) {
			return &core.EmergencyAlert{
				Message:  EmergencyMessage,
				Contacts: append([]string(nil), emergencyContacts...),
			}
		}
	}
	return nil
}

// relatedInformation flattens prevention and risk-factor items from at most
// the first three condition results, capped at relatedLimit entries.
func relatedInformation(results []*core.SearchResult) []string {
	related := make([]string, 0, relatedLimit)
	for _, result := range head(results, 3) {
		if result == nil || result.Type != core.EntityCondition || result.Condition == nil {
			continue
		}
		for _, prevention := range head(result.Condition.Prevention, 2) {
			related = append(related, "Prevention: "+prevention)
		}
		for _, risk := range head(result.Condition.RiskFactors, 2) {
			related = append(related, "Risk factor: "+risk)
		}
	}
	return head(related, relatedLimit)
}

// recommendations always starts with the fixed generic list, then appends up
// to two prevention items from each condition among the first two results.
func recommendations(results []*core.SearchResult) []string {
	recs := append([]string(nil), genericRecommendations...)
	for _, result := range head(results, 2) {
		if result == nil || result.Type != core.EntityCondition || result.Condition == nil {
			continue
		}
		recs = append(recs, head(result.Condition.Prevention, 2)...)
	}
	return head(recs, recommendationLimit)
}

// seekHelpAdvice starts with the fixed generic list, then appends up to two
// seek-help phrases from each symptom among the first two results. Entries
// are deduplicated preserving first-seen order.
func seekHelpAdvice(results []*core.SearchResult) []string {
	advice := append([]string(nil), genericSeekHelp...)
	for _, result := range head(results, 2) {
		if result == nil || result.Type != core.EntitySymptom || result.Symptom == nil {
			continue
		}
		advice = append(advice, head(result.Symptom.WhenToSeekHelp, 2)...)
	}

	seen := make(map[string]struct{}, len(advice))
	deduped := make([]string, 0, len(advice))
	for _, entry := range advice {
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		deduped = append(deduped, entry)
	}
	return head(deduped, seekHelpLimit)
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

func slice[T any](items []T, from, to int) []T {
	if from > len(items) {
		from = len(items)
	}
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
