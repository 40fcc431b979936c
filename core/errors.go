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

import (
	"errors"
	"fmt"
)

// Domain validation errors
var (
	// ErrInvalidCondition indicates a Condition failed validation.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrInvalidDrug indicates a Drug failed validation.
	ErrInvalidDrug = errors.New("invalid drug")

	// ErrInvalidSymptom indicates a Symptom failed validation.
	ErrInvalidSymptom = errors.New("invalid symptom")

	// ErrInvalidInteraction indicates an InteractionRecord failed validation.
	ErrInvalidInteraction = errors.New("invalid interaction record")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("identifier cannot be empty")

	// ErrEmptyName indicates the display name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidSeverity indicates an invalid Severity value.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidInteractionSeverity indicates an invalid InteractionSeverity value.
	ErrInvalidInteractionSeverity = errors.New("invalid interaction severity")
)

func invalidSeverityError(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
}

func invalidInteractionSeverityError(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidInteractionSeverity, name)
}
