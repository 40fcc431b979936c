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


package store

import "errors"

var (
	// ErrDuplicateID is returned when two entities in the same collection
	// share an identifier.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrEmptySeed is returned when the seed document contains no entities.
	ErrEmptySeed = errors.New("seed contains no entities")
)
