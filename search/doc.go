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


// Package search provides lexical relevance scoring and ranking over the
// medical knowledge base.
//
// The Engine type scores every condition, drug, and symptom against a
// free-text query using weighted substring matching of whitespace tokens,
// then ranks hits by descending score with a stable tie-break and caps the
// result list at MaxResults. Scoring is a pure function of the query and
// the immutable store, so results are deterministic.
package search
