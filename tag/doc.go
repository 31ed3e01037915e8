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

// Package tag provides parsing and validation for fault tags.
//
// A "tag" is the discriminant of a fault variant, such as "DatabaseError",
// "NotFound" or "auth.TokenExpired". Tags are meant to be:
//
//   - short and stable;
//   - case-significant identifiers (unlike HTTP-ish snake_case codes, fault
//     tags conventionally look like type names);
//   - suitable for use as registry keys and in JSON payloads.
//
// Validation applies when *declaring* fault variants (definitions, registry
// keys, status rules). It is deliberately NOT applied when deserializing
// foreign payloads: the wire contract only requires a tag to be a non-empty
// string, and a receiver must be able to reconstruct faults produced by
// implementations with looser naming conventions.
package tag
