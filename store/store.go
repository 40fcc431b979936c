package store

import (
	"fmt"

	"github.com/adi-1505/medassist/core"
)

// Data is the raw content a Store is built from. Callers assemble it
// directly for fixtures or obtain it from LoadSeed.
type Data struct {
	Conditions          []*core.Condition
	Drugs               []*core.Drug
	Symptoms            []*core.Symptom
	EmergencyConditions []string
	Interactions        []core.InteractionRecord
}

// Stats summarises the size of each collection.
type Stats struct {
	Conditions   int
	Drugs        int
	Symptoms     int
	Interactions int
}

// Store is an immutable in-memory medical knowledge base. It is constructed
// once, validated up front, and only read afterwards, so a single Store may
// be shared by any number of concurrent searches without coordination.
//
// Collections preserve their seed order; ranking relies on that order for
// reproducible tie-breaking.
type Store struct {
	conditions []*core.Condition
	drugs      []*core.Drug
	symptoms   []*core.Symptom

	conditionsByID map[string]*core.Condition
	drugsByID      map[string]*core.Drug
	symptomsByID   map[string]*core.Symptom

	emergency    []string
	interactions []core.InteractionRecord
}

// New builds a Store from data. Every entity is validated and identifiers
// must be unique within their collection.
func New(data Data) (*Store, error) {
	s := &Store{
		conditions:     make([]*core.Condition, 0, len(data.Conditions)),
		drugs:          make([]*core.Drug, 0, len(data.Drugs)),
		symptoms:       make([]*core.Symptom, 0, len(data.Symptoms)),
		conditionsByID: make(map[string]*core.Condition, len(data.Conditions)),
		drugsByID:      make(map[string]*core.Drug, len(data.Drugs)),
		symptomsByID:   make(map[string]*core.Symptom, len(data.Symptoms)),
		emergency:      append([]string(nil), data.EmergencyConditions...),
		interactions:   append([]core.InteractionRecord(nil), data.Interactions...),
	}

	for _, condition := range data.Conditions {
		if err := core.ValidateCondition(condition); err != nil {
			return nil, err
		}
		if _, exists := s.conditionsByID[condition.ID]; exists {
			return nil, fmt.Errorf("%w: condition %q", ErrDuplicateID, condition.ID)
		}
		s.conditions = append(s.conditions, condition)
		s.conditionsByID[condition.ID] = condition
	}

	for _, drug := range data.Drugs {
		if err := core.ValidateDrug(drug); err != nil {
			return nil, err
		}
		if _, exists := s.drugsByID[drug.ID]; exists {
			return nil, fmt.Errorf("%w: drug %q", ErrDuplicateID, drug.ID)
		}
		s.drugs = append(s.drugs, drug)
		s.drugsByID[drug.ID] = drug
	}

	for _, symptom := range data.Symptoms {
		if err := core.ValidateSymptom(symptom); err != nil {
			return nil, err
		}
		if _, exists := s.symptomsByID[symptom.ID]; exists {
			return nil, fmt.Errorf("%w: symptom %q", ErrDuplicateID, symptom.ID)
		}
		s.symptoms = append(s.symptoms, symptom)
		s.symptomsByID[symptom.ID] = symptom
	}

	for i := range s.interactions {
		if err := core.ValidateInteractionRecord(&s.interactions[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Conditions returns all conditions in seed order.
func (s *Store) Conditions() []*core.Condition {
	return append([]*core.Condition(nil), s.conditions...)
}

// Drugs returns all drugs in seed order.
func (s *Store) Drugs() []*core.Drug {
	return append([]*core.Drug(nil), s.drugs...)
}

// Symptoms returns all symptoms in seed order.
func (s *Store) Symptoms() []*core.Symptom {
	return append([]*core.Symptom(nil), s.symptoms...)
}

// Condition looks up a condition by identifier.
func (s *Store) Condition(id string) (*core.Condition, bool) {
	condition, ok := s.conditionsByID[id]
	return condition, ok
}

// Drug looks up a drug by identifier.
func (s *Store) Drug(id string) (*core.Drug, bool) {
	drug, ok := s.drugsByID[id]
	return drug, ok
}

// Symptom looks up a symptom by identifier.
func (s *Store) Symptom(id string) (*core.Symptom, bool) {
	symptom, ok := s.symptomsByID[id]
	return symptom, ok
}

// EmergencyConditionNames returns the names of conditions requiring
// immediate medical attention.
func (s *Store) EmergencyConditionNames() []string {
	return append([]string(nil), s.emergency...)
}

// InteractionTable returns every documented drug interaction in seed order.
func (s *Store) InteractionTable() []core.InteractionRecord {
	return append([]core.InteractionRecord(nil), s.interactions...)
}

// Stats reports collection sizes.
func (s *Store) Stats() Stats {
	return Stats{
		Conditions:   len(s.conditions),
		Drugs:        len(s.drugs),
		Symptoms:     len(s.symptoms),
		Interactions: len(s.interactions),
	}
}
