package search

import (
	"strings"

	"github.com/adi-1505/medassist/core"
)

// Scoring weights. These are intentionally a cheap, explainable lexical
// heuristic: no term frequency, no fuzzy matching, so ranked order is
// deterministic and auditable.
const (
	nameWeight         = 10
	genericNameWeight  = 8
	symptomWeight      = 3
	indicationWeight   = 3
	treatmentWeight    = 2
	possibleCondWeight = 2
	causeWeight        = 1
)

// Tokenize lower-cases a query and splits it on whitespace. An empty or
// blank query yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// anyTokenIn reports whether any query token appears as a substring of the
// lower-cased text. A single field match counts once no matter how many
// tokens hit it.
func anyTokenIn(tokens []string, text string) bool {
	text = strings.ToLower(text)
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// countMatches returns how many of the phrases contain at least one query
// token.
func countMatches(tokens []string, phrases []string) float64 {
	var n float64
	for _, phrase := range phrases {
		if anyTokenIn(tokens, phrase) {
			n++
		}
	}
	return n
}

// ScoreCondition computes the relevance of a condition to the query tokens:
// +10 for a name match, +3 per matching symptom, +2 per matching treatment,
// +1 per matching cause. An empty token set scores 0.
func ScoreCondition(tokens []string, condition *core.Condition) float64 {
	if len(tokens) == 0 || condition == nil {
		return 0
	}

	var score float64
	if anyTokenIn(tokens, condition.Name) {
		score += nameWeight
	}
	score += symptomWeight * countMatches(tokens, condition.Symptoms)
	score += treatmentWeight * countMatches(tokens, condition.Treatments)
	score += causeWeight * countMatches(tokens, condition.Causes)
	return score
}

// ScoreDrug computes the relevance of a drug to the query tokens: +10 for a
// name match, +8 for a generic-name match, +3 per matching indication.
func ScoreDrug(tokens []string, drug *core.Drug) float64 {
	if len(tokens) == 0 || drug == nil {
		return 0
	}

	var score float64
	if anyTokenIn(tokens, drug.Name) {
		score += nameWeight
	}
	if anyTokenIn(tokens, drug.GenericName) {
		score += genericNameWeight
	}
	score += indicationWeight * countMatches(tokens, drug.Indications)
	return score
}

// ScoreSymptom computes the relevance of a symptom to the query tokens:
// +10 for a name match, +2 per matching possible condition.
func ScoreSymptom(tokens []string, symptom *core.Symptom) float64 {
	if len(tokens) == 0 || symptom == nil {
		return 0
	}

	var score float64
	if anyTokenIn(tokens, symptom.Name) {
		score += nameWeight
	}
	score += possibleCondWeight * countMatches(tokens, symptom.PossibleConditions)
	return score
}
