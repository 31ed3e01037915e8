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

package wire

// Marker is the field every serialized fault must carry. Deserializers use
// it to tell a fault payload apart from an arbitrary JSON object.
const Marker = "__faultier"

// PayloadPrefix is prepended to a payload key that collides with a reserved
// name during deserialization. The rewrite guarantees that data-controlled
// input can never shadow a real field of the reconstructed fault.
const PayloadPrefix = "__payload_"

// reservedKeys is the closed set of names that payload fields may never use.
// It covers the fixed wire fields, the fluent method names of the wire
// contract, and the marker itself.
//
// The set is module-scoped constant data: it is consulted both at
// construction time (rejecting reserved payload field names) and at
// deserialization time (rewriting colliding keys under PayloadPrefix).
var reservedKeys = map[string]struct{}{
	Marker:            {},
	"_tag":            {},
	"tag":             {},
	"cause":           {},
	"name":            {},
	"message":         {},
	"stack":           {},
	"meta":            {},
	"details":         {},
	"withMeta":        {},
	"withMessage":     {},
	"withDetails":     {},
	"withDescription": {},
	"withCause":       {},
	"unwrap":          {},
	"getTags":         {},
	"getContext":      {},
	"flatten":         {},
	"toSerializable":  {},
}

// Reserved reports whether key may not be used as a payload field name.
func Reserved(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// RewriteReserved returns key unchanged when it is safe, or the
// PayloadPrefix-rewritten form when key collides with a reserved name.
func RewriteReserved(key string) string {
	if Reserved(key) {
		return PayloadPrefix + key
	}
	return key
}
