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


package medassist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adi-1505/medassist/core"
	"github.com/adi-1505/medassist/store"
)

func newTestAssistant(t *testing.T, opts ...Option) *Assistant {
	t.Helper()

	assistant, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(assistant.Close)
	return assistant
}

func TestNew(t *testing.T) {
	t.Run("defaults to the embedded knowledge base", func(t *testing.T) {
		assistant := newTestAssistant(t)

		stats := assistant.Store().Stats()
		assert.Equal(t, 15, stats.Conditions)
		assert.Equal(t, 3, stats.Drugs)
		assert.Equal(t, 3, stats.Symptoms)
	})

	t.Run("custom store", func(t *testing.T) {
		s, err := store.New(store.Data{
			Conditions: []*core.Condition{
				{ID: "asthma", Name: "Asthma", Severity: core.SeverityModerate},
			},
		})
		require.NoError(t, err)

		assistant := newTestAssistant(t, WithStore(s))
		assert.Equal(t, 1, assistant.Store().Stats().Conditions)

		results := assistant.Search("asthma")
		require.Len(t, results, 1)
		assert.Equal(t, "asthma", results[0].ID)
	})

	t.Run("custom pool size", func(t *testing.T) {
		assistant := newTestAssistant(t, WithPoolSize(1))
		results, err := assistant.SearchBatch(context.Background(), []string{"diabetes", "fever"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestAssistantSearch(t *testing.T) {
	assistant := newTestAssistant(t)

	t.Run("ranks the exact condition first", func(t *testing.T) {
		results := assistant.Search("diabetes")
		require.NotEmpty(t, results)
		assert.Equal(t, "diabetes_type2", results[0].ID)
		assert.Equal(t, core.RelevanceHigh, results[0].Relevance)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, assistant.Search(""))
	})

	t.Run("repeat queries return identical results", func(t *testing.T) {
		first := assistant.Search("migraine symptoms")
		second := assistant.Search("migraine symptoms")
		assert.Equal(t, first, second)
	})

	t.Run("normalization shares one cache entry", func(t *testing.T) {
		assert.Equal(t, assistant.Search("Migraine  Symptoms"), assistant.Search("migraine symptoms"))
	})
}

func TestAssistantSearchBatch(t *testing.T) {
	assistant := newTestAssistant(t)

	t.Run("output aligns with input order", func(t *testing.T) {
		queries := []string{"diabetes", "", "warfarin", "xyzzy plugh"}
		results, err := assistant.SearchBatch(context.Background(), queries)
		require.NoError(t, err)
		require.Len(t, results, len(queries))

		require.NotEmpty(t, results[0])
		assert.Equal(t, "diabetes_type2", results[0][0].ID)
		assert.Empty(t, results[1])
		require.NotEmpty(t, results[2])
		assert.Equal(t, "warfarin", results[2][0].ID)
		assert.Empty(t, results[3])
	})

	t.Run("matches sequential search", func(t *testing.T) {
		queries := []string{"headache", "fever", "hypertension"}
		batch, err := assistant.SearchBatch(context.Background(), queries)
		require.NoError(t, err)

		for i, query := range queries {
			assert.Equal(t, assistant.Search(query), batch[i])
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := assistant.SearchBatch(ctx, []string{"diabetes"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no queries", func(t *testing.T) {
		results, err := assistant.SearchBatch(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestAssistantAsk(t *testing.T) {
	assistant := newTestAssistant(t)

	t.Run("full bundle for a known condition", func(t *testing.T) {
		bundle := assistant.Ask("diabetes", nil)
		require.NotNil(t, bundle)

		require.NotEmpty(t, bundle.Primary)
		assert.Equal(t, "diabetes_type2", bundle.Primary[0].ID)
		assert.Nil(t, bundle.Emergency)
		assert.NotEmpty(t, bundle.Recommendations)
		assert.NotEmpty(t, bundle.Disclaimer)
		assert.Len(t, bundle.Sources, 5)
	})

	t.Run("emergency keyword raises the alert", func(t *testing.T) {
		bundle := assistant.Ask("I have chest pain and shortness of breath", nil)
		require.NotNil(t, bundle)
		require.NotEmpty(t, bundle.Primary)
		require.NotNil(t, bundle.Emergency)
		assert.Contains(t, bundle.Emergency.Contacts, "911")
	})

	t.Run("medications attach interaction warnings", func(t *testing.T) {
		patient := &core.PatientContext{Medications: []string{"Warfarin"}}
		bundle := assistant.Ask("blood thinner dosage", patient)
		require.NotNil(t, bundle)

		if len(bundle.Primary) > 0 {
			require.NotEmpty(t, bundle.Interactions)
			for _, record := range bundle.Interactions {
				assert.Equal(t, "Warfarin", record.Primary)
			}
		}
	})

	t.Run("unknown query yields the no-results bundle", func(t *testing.T) {
		bundle := assistant.Ask("xyzzy plugh", nil)
		require.NotNil(t, bundle)
		assert.NotEmpty(t, bundle.Message)
		assert.Len(t, bundle.Suggestions, 4)
		assert.Empty(t, bundle.Primary)
	})
}

func TestAssistantCheckInteractions(t *testing.T) {
	assistant := newTestAssistant(t)

	t.Run("warfarin matches its documented records", func(t *testing.T) {
		found := assistant.CheckInteractions([]string{"warfarin"})
		require.NotEmpty(t, found)
		for _, record := range found {
			assert.Equal(t, "Warfarin", record.Primary)
		}
	})

	t.Run("unknown medication", func(t *testing.T) {
		assert.Empty(t, assistant.CheckInteractions([]string{"placebo"}))
	})
}
