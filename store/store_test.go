package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adi-1505/medassist/core"
)

func fixtureData() Data {
	return Data{
		Conditions: []*core.Condition{
			{ID: "asthma", Name: "Asthma", Severity: core.SeverityModerate},
			{ID: "migraine", Name: "Migraine", Severity: core.SeverityLow},
		},
		Drugs: []*core.Drug{
			{ID: "metformin", Name: "Metformin", GenericName: "Metformin hydrochloride"},
		},
		Symptoms: []*core.Symptom{
			{ID: "fever", Name: "Fever"},
		},
		EmergencyConditions: []string{"Heart attack", "Stroke"},
		Interactions: []core.InteractionRecord{
			{Primary: "Warfarin", Partner: "NSAIDs", Severity: core.InteractionMajor},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid data", func(t *testing.T) {
		s, err := New(fixtureData())
		require.NoError(t, err)

		assert.Equal(t, Stats{Conditions: 2, Drugs: 1, Symptoms: 1, Interactions: 1}, s.Stats())
	})

	t.Run("empty data is a valid store", func(t *testing.T) {
		s, err := New(Data{})
		require.NoError(t, err)
		assert.Equal(t, Stats{}, s.Stats())
	})

	t.Run("duplicate condition id", func(t *testing.T) {
		data := fixtureData()
		data.Conditions = append(data.Conditions, &core.Condition{
			ID: "asthma", Name: "Asthma again", Severity: core.SeverityLow,
		})

		_, err := New(data)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("duplicate drug id", func(t *testing.T) {
		data := fixtureData()
		data.Drugs = append(data.Drugs, &core.Drug{ID: "metformin", Name: "Other"})

		_, err := New(data)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("duplicate symptom id", func(t *testing.T) {
		data := fixtureData()
		data.Symptoms = append(data.Symptoms, &core.Symptom{ID: "fever", Name: "Other"})

		_, err := New(data)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("invalid entity rejected", func(t *testing.T) {
		data := fixtureData()
		data.Conditions = append(data.Conditions, &core.Condition{ID: "x", Name: ""})

		_, err := New(data)
		assert.ErrorIs(t, err, core.ErrInvalidCondition)
	})

	t.Run("invalid interaction rejected", func(t *testing.T) {
		data := fixtureData()
		data.Interactions = append(data.Interactions, core.InteractionRecord{Primary: "A"})

		_, err := New(data)
		assert.ErrorIs(t, err, core.ErrInvalidInteraction)
	})
}

func TestStoreAccessors(t *testing.T) {
	s, err := New(fixtureData())
	require.NoError(t, err)

	t.Run("seed order preserved", func(t *testing.T) {
		conditions := s.Conditions()
		require.Len(t, conditions, 2)
		assert.Equal(t, "asthma", conditions[0].ID)
		assert.Equal(t, "migraine", conditions[1].ID)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		conditions := s.Conditions()
		conditions[0] = nil
		assert.NotNil(t, s.Conditions()[0])

		emergency := s.EmergencyConditionNames()
		emergency[0] = "mutated"
		assert.Equal(t, "Heart attack", s.EmergencyConditionNames()[0])

		table := s.InteractionTable()
		table[0].Primary = "mutated"
		assert.Equal(t, "Warfarin", s.InteractionTable()[0].Primary)
	})

	t.Run("lookup by id", func(t *testing.T) {
		condition, ok := s.Condition("migraine")
		require.True(t, ok)
		assert.Equal(t, "Migraine", condition.Name)

		drug, ok := s.Drug("metformin")
		require.True(t, ok)
		assert.Equal(t, "Metformin", drug.Name)

		symptom, ok := s.Symptom("fever")
		require.True(t, ok)
		assert.Equal(t, "Fever", symptom.Name)

		_, ok = s.Condition("unknown")
		assert.False(t, ok)
	})
}

func TestLoadSeed(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := []byte(`
conditions:
  - id: asthma
    name: Asthma
    severity: Moderate
    symptoms: [Wheezing, Coughing]
drugs:
  - id: metformin
    name: Metformin
    generic_name: Metformin hydrochloride
symptoms:
  - id: fever
    name: Fever
emergency_conditions:
  - Heart attack
interactions:
  - primary: Warfarin
    partner: NSAIDs
    severity: Major
    mechanism: Increased bleeding risk
    management: Avoid combination
`)
		data, err := LoadSeed(doc)
		require.NoError(t, err)

		require.Len(t, data.Conditions, 1)
		assert.Equal(t, core.SeverityModerate, data.Conditions[0].Severity)
		assert.Equal(t, []string{"Wheezing", "Coughing"}, data.Conditions[0].Symptoms)

		require.Len(t, data.Drugs, 1)
		assert.Equal(t, "Metformin hydrochloride", data.Drugs[0].GenericName)

		require.Len(t, data.Interactions, 1)
		assert.Equal(t, core.InteractionMajor, data.Interactions[0].Severity)
	})

	t.Run("unknown severity name", func(t *testing.T) {
		doc := []byte(`
conditions:
  - id: asthma
    name: Asthma
    severity: terrible
`)
		_, err := LoadSeed(doc)
		assert.ErrorIs(t, err, core.ErrInvalidSeverity)
	})

	t.Run("unknown interaction severity name", func(t *testing.T) {
		doc := []byte(`
conditions:
  - id: asthma
    name: Asthma
    severity: Moderate
interactions:
  - primary: A
    partner: B
    severity: severe
`)
		_, err := LoadSeed(doc)
		assert.ErrorIs(t, err, core.ErrInvalidInteractionSeverity)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := LoadSeed([]byte("emergency_conditions: []\n"))
		assert.ErrorIs(t, err, ErrEmptySeed)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadSeed([]byte("conditions: ["))
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, 15, stats.Conditions)
	assert.Equal(t, 3, stats.Drugs)
	assert.Equal(t, 3, stats.Symptoms)
	assert.Equal(t, 5, stats.Interactions)

	t.Run("known entries resolve", func(t *testing.T) {
		condition, ok := s.Condition("diabetes_type2")
		require.True(t, ok)
		assert.Equal(t, "Type 2 Diabetes Mellitus", condition.Name)
		assert.NotEmpty(t, condition.Symptoms)
		assert.NotEmpty(t, condition.Treatments)

		drug, ok := s.Drug("warfarin")
		require.True(t, ok)
		assert.Equal(t, "Warfarin", drug.Name)

		symptom, ok := s.Symptom("chest_pain")
		require.True(t, ok)
		assert.Equal(t, "Chest Pain", symptom.Name)
	})

	t.Run("emergency list populated", func(t *testing.T) {
		assert.Contains(t, s.EmergencyConditionNames(), "Heart attack")
	})

	t.Run("interaction table covers warfarin", func(t *testing.T) {
		found := false
		for _, record := range s.InteractionTable() {
			if record.Primary == "Warfarin" {
				found = true
				assert.NotEmpty(t, record.Mechanism)
				assert.NotEmpty(t, record.Management)
			}
		}
		assert.True(t, found)
	})
}
