package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/adi-1505/medassist/core"
)

//go:embed seed.yaml
var defaultSeed []byte

// Default builds a Store from the embedded knowledge base.
func Default() (*Store, error) {
	data, err := LoadSeed(defaultSeed)
	if err != nil {
		return nil, err
	}
	return New(data)
}

// LoadSeed parses a YAML seed document into Data. Severity names are
// resolved to their enum values; unknown names fail the load.
func LoadSeed(doc []byte) (Data, error) {
	var seed seedFile
	if err := yaml.Unmarshal(doc, &seed); err != nil {
		return Data{}, fmt.Errorf("parsing seed: %w", err)
	}

	if len(seed.Conditions) == 0 && len(seed.Drugs) == 0 && len(seed.Symptoms) == 0 {
		return Data{}, ErrEmptySeed
	}

	data := Data{
		Conditions:          make([]*core.Condition, 0, len(seed.Conditions)),
		Drugs:               make([]*core.Drug, 0, len(seed.Drugs)),
		Symptoms:            make([]*core.Symptom, 0, len(seed.Symptoms)),
		EmergencyConditions: seed.EmergencyConditions,
		Interactions:        make([]core.InteractionRecord, 0, len(seed.Interactions)),
	}

	for _, c := range seed.Conditions {
		severity, err := core.ParseSeverity(c.Severity)
		if err != nil {
			return Data{}, fmt.Errorf("condition %q: %w", c.ID, err)
		}
		data.Conditions = append(data.Conditions, &core.Condition{
			ID:              c.ID,
			Name:            c.Name,
			ICD10Code:       c.ICD10Code,
			Symptoms:        c.Symptoms,
			Causes:          c.Causes,
			Treatments:      c.Treatments,
			Complications:   c.Complications,
			Prevention:      c.Prevention,
			RiskFactors:     c.RiskFactors,
			DiagnosticTests: c.DiagnosticTests,
			Severity:        severity,
			Prevalence:      c.Prevalence,
			AgeGroups:       c.AgeGroups,
			Specialties:     c.Specialties,
		})
	}

	for _, d := range seed.Drugs {
		data.Drugs = append(data.Drugs, &core.Drug{
			ID:                d.ID,
			Name:              d.Name,
			GenericName:       d.GenericName,
			DrugClass:         d.DrugClass,
			Indications:       d.Indications,
			Contraindications: d.Contraindications,
			SideEffects:       d.SideEffects,
			Interactions:      d.Interactions,
			Dosage:            d.Dosage,
			PregnancyCategory: d.PregnancyCategory,
			Monitoring:        d.Monitoring,
		})
	}

	for _, s := range seed.Symptoms {
		data.Symptoms = append(data.Symptoms, &core.Symptom{
			ID:                 s.ID,
			Name:               s.Name,
			PossibleConditions: s.PossibleConditions,
			SeverityIndicators: s.SeverityIndicators,
			WhenToSeekHelp:     s.WhenToSeekHelp,
			SelfCare:           s.SelfCare,
		})
	}

	for _, i := range seed.Interactions {
		severity, err := core.ParseInteractionSeverity(i.Severity)
		if err != nil {
			return Data{}, fmt.Errorf("interaction %q/%q: %w", i.Primary, i.Partner, err)
		}
		data.Interactions = append(data.Interactions, core.InteractionRecord{
			Primary:    i.Primary,
			Partner:    i.Partner,
			Severity:   severity,
			Mechanism:  i.Mechanism,
			Management: i.Management,
		})
	}

	return data, nil
}

// Seed DTOs. Enumerations travel as names in YAML and are resolved during
// load, keeping core types free of serialization concerns.

type seedFile struct {
	Conditions          []conditionSeed   `yaml:"conditions"`
	Drugs               []drugSeed        `yaml:"drugs"`
	Symptoms            []symptomSeed     `yaml:"symptoms"`
	EmergencyConditions []string          `yaml:"emergency_conditions"`
	Interactions        []interactionSeed `yaml:"interactions"`
}

type conditionSeed struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	ICD10Code       string   `yaml:"icd10_code"`
	Symptoms        []string `yaml:"symptoms"`
	Causes          []string `yaml:"causes"`
	Treatments      []string `yaml:"treatments"`
	Complications   []string `yaml:"complications"`
	Prevention      []string `yaml:"prevention"`
	RiskFactors     []string `yaml:"risk_factors"`
	DiagnosticTests []string `yaml:"diagnostic_tests"`
	Severity        string   `yaml:"severity"`
	Prevalence      string   `yaml:"prevalence"`
	AgeGroups       []string `yaml:"age_groups"`
	Specialties     []string `yaml:"specialties"`
}

type drugSeed struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	GenericName       string   `yaml:"generic_name"`
	DrugClass         string   `yaml:"drug_class"`
	Indications       []string `yaml:"indications"`
	Contraindications []string `yaml:"contraindications"`
	SideEffects       []string `yaml:"side_effects"`
	Interactions      []string `yaml:"interactions"`
	Dosage            string   `yaml:"dosage"`
	PregnancyCategory string   `yaml:"pregnancy_category"`
	Monitoring        []string `yaml:"monitoring"`
}

type symptomSeed struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	PossibleConditions []string `yaml:"possible_conditions"`
	SeverityIndicators []string `yaml:"severity_indicators"`
	WhenToSeekHelp     []string `yaml:"when_to_seek_help"`
	SelfCare           []string `yaml:"self_care"`
}

type interactionSeed struct {
	Primary    string `yaml:"primary"`
	Partner    string `yaml:"partner"`
	Severity   string `yaml:"severity"`
	Mechanism  string `yaml:"mechanism"`
	Management string `yaml:"management"`
}
