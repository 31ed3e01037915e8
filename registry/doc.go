/*
   Copyright 2026 The Faultier Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package registry provides closed sets of fault variants.
//
// A variant is declared once as a Definition — a tag plus a construction
// recipe — and a Registry binds an ordered set of definitions under their
// tags. The registry then offers tag-scoped operations: Create and Wrap for
// construction, Is / MatchTag / MatchTags for dispatch, and a
// deserialization flavor that restores the registered variant for every
// known tag in a payload, including nested causes.
//
//	var ErrDatabase = registry.MustDefine("DatabaseError")
//	var ErrNotFound = registry.MustDefine("NotFound",
//	    registry.WithDefaultMessage("resource does not exist"),
//	)
//
//	var Errs = registry.MustNew(
//	    registry.WithDefinition("DatabaseError", ErrDatabase),
//	    registry.WithDefinition("NotFound", ErrNotFound),
//	)
//
//	f, err := Errs.Wrap(cause).As("DatabaseError", map[string]any{"query": q})
//
// Registries are validated at construction (a definition registered under a
// key that differs from its declared tag fails immediately) and immutable
// afterward, so they are safe for concurrent use. Merge combines several
// registries into a new one, rejecting genuine tag conflicts while
// tolerating duplicate registration of the identical definition.
package registry
