package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// HashKey generates a deterministic 64-bit key from text using BLAKE2b
// hashing. Identical text always produces the identical key; it is used to
// key cached search results by normalized query.
func HashKey(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// Severity classifies how serious a condition is.
type Severity int

const (
	// SeverityInfo marks purely informational entries.
	SeverityInfo Severity = iota + 1
	// SeverityLow marks conditions with minimal clinical urgency.
	SeverityLow
	// SeverityModerate marks conditions needing routine medical attention.
	SeverityModerate
	// SeverityHigh marks conditions needing prompt medical attention.
	SeverityHigh
	// SeverityCritical marks life-threatening conditions.
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityInfo:     "Info",
	SeverityLow:      "Low",
	SeverityModerate: "Moderate",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the severity is one of the defined values.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// ParseSeverity converts a severity name to its Severity value.
// Matching is case-insensitive; "Information" is accepted as an alias
// for Info.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info", "information":
		return SeverityInfo, nil
	case "low":
		return SeverityLow, nil
	case "moderate":
		return SeverityModerate, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return 0, invalidSeverityError(name)
	}
}

// EntityType identifies which knowledge collection an entity belongs to.
type EntityType int

const (
	// EntityCondition identifies medical conditions.
	EntityCondition EntityType = iota + 1
	// EntityDrug identifies drugs.
	EntityDrug
	// EntitySymptom identifies symptoms.
	EntitySymptom
)

func (t EntityType) String() string {
	switch t {
	case EntityCondition:
		return "condition"
	case EntityDrug:
		return "drug"
	case EntitySymptom:
		return "symptom"
	default:
		return "unknown"
	}
}

// RelevanceBucket is the coarse classification derived from a numeric
// relevance score.
type RelevanceBucket int

const (
	// RelevanceLow covers scores in (0, 4).
	RelevanceLow RelevanceBucket = iota + 1
	// RelevanceMedium covers scores in [4, 8).
	RelevanceMedium
	// RelevanceHigh covers scores >= 8.
	RelevanceHigh
)

func (b RelevanceBucket) String() string {
	switch b {
	case RelevanceLow:
		return "low"
	case RelevanceMedium:
		return "medium"
	case RelevanceHigh:
		return "high"
	default:
		return "unknown"
	}
}

// BucketForScore maps a relevance score to its bucket. The thresholds are
// fixed: score >= 8 is high, 4 <= score < 8 is medium, anything below is low.
func BucketForScore(score float64) RelevanceBucket {
	switch {
	case score >= 8:
		return RelevanceHigh
	case score >= 4:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}

// Condition describes a medical condition. Conditions are immutable once
// loaded into a knowledge store.
type Condition struct {
	ID              string
	Name            string
	ICD10Code       string
	Symptoms        []string
	Causes          []string
	Treatments      []string
	Complications   []string
	Prevention      []string
	RiskFactors     []string
	DiagnosticTests []string
	Severity        Severity
	Prevalence      string
	AgeGroups       []string
	Specialties     []string
}

// Drug describes a medication. Drugs are immutable once loaded.
type Drug struct {
	ID                string
	Name              string
	GenericName       string
	DrugClass         string
	Indications       []string
	Contraindications []string
	SideEffects       []string
	Interactions      []string // informal partner names, not the interaction table
	Dosage            string
	PregnancyCategory string
	Monitoring        []string
}

// Symptom describes a presenting symptom and its triage guidance.
// Symptoms are immutable once loaded.
type Symptom struct {
	ID                 string
	Name               string
	PossibleConditions []string
	SeverityIndicators []string
	WhenToSeekHelp     []string
	SelfCare           []string
}

// SearchResult is a single ranked hit produced by the search engine.
// Exactly one of Condition, Drug, or Symptom is set, matching Type.
type SearchResult struct {
	Type      EntityType
	ID        string
	Condition *Condition
	Drug      *Drug
	Symptom   *Symptom
	Score     float64
	Relevance RelevanceBucket
}

// Title returns the display name of the matched entity.
func (r *SearchResult) Title() string {
	switch r.Type {
	case EntityCondition:
		if r.Condition != nil {
			return r.Condition.Name
		}
	case EntityDrug:
		if r.Drug != nil {
			return r.Drug.Name
		}
	case EntitySymptom:
		if r.Symptom != nil {
			return r.Symptom.Name
		}
	}
	return ""
}

// InteractionSeverity classifies a documented drug interaction.
type InteractionSeverity int

const (
	// InteractionMinor interactions rarely require intervention.
	InteractionMinor InteractionSeverity = iota + 1
	// InteractionModerate interactions may require monitoring or dose changes.
	InteractionModerate
	// InteractionMajor interactions carry significant clinical risk.
	InteractionMajor
	// InteractionContraindicated combinations must not be used together.
	InteractionContraindicated
)

var interactionSeverityNames = map[InteractionSeverity]string{
	InteractionMinor:           "Minor",
	InteractionModerate:        "Moderate",
	InteractionMajor:           "Major",
	InteractionContraindicated: "Contraindicated",
}

func (s InteractionSeverity) String() string {
	if name, ok := interactionSeverityNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the interaction severity is one of the defined
// values.
func (s InteractionSeverity) Valid() bool {
	_, ok := interactionSeverityNames[s]
	return ok
}

// ParseInteractionSeverity converts an interaction severity name to its
// value. Matching is case-insensitive.
func ParseInteractionSeverity(name string) (InteractionSeverity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minor":
		return InteractionMinor, nil
	case "moderate":
		return InteractionModerate, nil
	case "major":
		return InteractionMajor, nil
	case "contraindicated":
		return InteractionContraindicated, nil
	default:
		return 0, invalidInteractionSeverityError(name)
	}
}

// InteractionRecord documents a pairwise drug interaction. Primary is the
// drug the interaction table is keyed by; Partner is the interacting drug or
// drug class (an informal name such as "NSAIDs").
type InteractionRecord struct {
	Primary    string
	Partner    string
	Severity   InteractionSeverity
	Mechanism  string
	Management string
}

// Involves reports whether the medication name refers to either drug in the
// pair. Matching is case-insensitive substring containment in both
// directions, so informal names and class names like "NSAIDs" still match.
func (r InteractionRecord) Involves(medication string) bool {
	return namesOverlap(medication, r.Primary) || namesOverlap(medication, r.Partner)
}

func namesOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// PatientContext carries optional caller-owned patient details. The engine
// only reads it; it is never mutated or stored.
type PatientContext struct {
	Age         int
	Gender      string
	Conditions  []string
	Medications []string
	Allergies   []string
}

// EmergencyAlert is attached to a response when the raw query contains an
// urgent-symptom keyword.
type EmergencyAlert struct {
	Message  string
	Contacts []string
}

// ResponseBundle is the complete structured answer for a single query,
// handed to the presentation layer. It is created fresh per query and never
// persisted.
//
// For a no-results response only Query, Message, Suggestions, and Disclaimer
// are populated.
type ResponseBundle struct {
	Query              string
	Emergency          *EmergencyAlert // nil when no emergency keyword matched
	Primary            []*SearchResult
	Secondary          []*SearchResult
	RelatedInformation []string
	Recommendations    []string
	WhenToSeekHelp     []string
	Interactions       []InteractionRecord // from patient medications, if supplied
	Message            string
	Suggestions        []string
	Disclaimer         string
	Sources            []string
}
