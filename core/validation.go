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


package core

import "fmt"

// ValidateCondition validates a Condition according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
//   - Severity must be one of the defined values
//
// NOT validated (defensive defaulting applies downstream):
//   - list fields (nil is treated as empty everywhere they are read)
//   - Prevalence, ICD10Code (may be empty for incomplete seed data)
func ValidateCondition(condition *Condition) error {
	if condition == nil {
		return fmt.Errorf("%w: condition is nil", ErrInvalidCondition)
	}

	if condition.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCondition, ErrEmptyID)
	}

	if condition.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCondition, ErrEmptyName)
	}

	if !condition.Severity.Valid() {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidCondition, ErrInvalidSeverity, condition.Severity)
	}

	return nil
}

// ValidateDrug validates a Drug according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
//
// GenericName, DrugClass, Dosage, and the list fields may be empty.
func ValidateDrug(drug *Drug) error {
	if drug == nil {
		return fmt.Errorf("%w: drug is nil", ErrInvalidDrug)
	}

	if drug.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDrug, ErrEmptyID)
	}

	if drug.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDrug, ErrEmptyName)
	}

	return nil
}

// ValidateSymptom validates a Symptom according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
func ValidateSymptom(symptom *Symptom) error {
	if symptom == nil {
		return fmt.Errorf("%w: symptom is nil", ErrInvalidSymptom)
	}

	if symptom.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSymptom, ErrEmptyID)
	}

	if symptom.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSymptom, ErrEmptyName)
	}

	return nil
}

// ValidateInteractionRecord validates an InteractionRecord according to
// domain rules.
//
// Validation rules:
//   - Primary must not be empty
//   - Partner must not be empty
//   - Severity must be one of the defined values
func ValidateInteractionRecord(record *InteractionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidInteraction)
	}

	if record.Primary == "" || record.Partner == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInteraction, ErrEmptyName)
	}

	if !record.Severity.Valid() {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidInteraction, ErrInvalidInteractionSeverity, record.Severity)
	}

	return nil
}
