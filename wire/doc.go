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

// Package wire defines the JSON-safe, transport-neutral representation of a
// fault and the reserved key set shared by every layer of the library.
//
// The types here are *view types*: small, plain structures that both the HTTP
// and gRPC adapters (and any logger or message bus) can marshal without
// knowing anything about the live fault implementation. Keeping them in a
// leaf package lets the core, the registry and every adapter speak the same
// wire language without import cycles.
//
// The wire shape of a fault is:
//
//	{
//	  "__faultier": true,
//	  "_tag": "DatabaseError",
//	  "name": "DatabaseError",
//	  "message": "query failed",
//	  "details": "...",            // optional
//	  "meta": { ... },             // optional
//	  "stack": "...",              // optional
//	  "query": "SELECT 1",         // arbitrary payload fields, top level
//	  "cause": { "kind": "fault" | "error" | "thrown", ... }
//	}
//
// Payload fields are emitted as top-level siblings of the fixed fields, which
// is why Fault and Cause implement their own JSON marshaling instead of
// relying on struct tags.
package wire
