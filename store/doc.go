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


// Package store provides the immutable in-memory medical knowledge base.
//
// A Store holds three entity collections (conditions, drugs, symptoms), the
// emergency-condition name list, and the drug-interaction table. It is built
// once from a Data value and only read afterwards; Default loads the
// embedded YAML seed.
package store
