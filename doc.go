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

// Package faultier implements the fault model: structured, taggable errors
// that can be classified, enriched, chained and serialized.
//
// A Fault carries a string tag (the discriminant of its variant), a
// user-facing message, an internal details string, arbitrary structured
// metadata, arbitrary named payload fields, and an optional cause. Causes
// form a singly-linked chain terminating in either a plain error, an
// arbitrary value (for example a recovered panic value), or nothing.
//
// Construction and enrichment:
//
//	f, err := faultier.New("DatabaseError", "query failed",
//	    faultier.WithPayloadOption("query", "SELECT 1"),
//	)
//	f = f.WithMeta(map[string]any{"attempt": 3}).WithCause(ioErr)
//
// The chain is consumed with Chain, Tags, Context and Flatten; the wire
// boundary is ToSerializable / FromSerializable (see the wire package for
// the exact JSON shape, and the registry package for the variant-restoring
// flavor of deserialization).
//
// Every chain traversal in this package — Chain, Flatten, serialization and
// deserialization — carries an explicit depth counter capped at
// MaxCauseDepth, so cyclic or adversarially deep cause chains degrade by
// truncation instead of exhausting the stack.
package faultier
