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

package faultier

import "fmt"

// The library expresses its own failures with the same Fault mechanism it
// provides, so internal validation errors compose with application errors
// identically (match on these tags the way you match on your own).
const (
	// TagReservedField marks a construction-time rejection of a payload
	// field whose name collides with a reserved field or method name.
	TagReservedField = "ReservedFieldError"

	// TagTagMismatch marks a registry construction failure: a definition
	// registered under a key that differs from its own declared tag.
	TagTagMismatch = "TagMismatchError"

	// TagMergeConflict marks a registry merge failure: the same tag bound
	// to two different definitions.
	TagMergeConflict = "MergeConflictError"

	// TagDeserialize marks a wire payload that failed validation: missing
	// marker, empty tag, malformed field shapes.
	TagDeserialize = "DeserializeError"

	// TagInvalidConstructor marks a registry create/deserialize failure
	// where the registered constructor did not produce a fault.
	TagInvalidConstructor = "InvalidConstructorError"

	// TagUnknownError is the synthetic variant a registry wraps a plain,
	// unregistered error into when serializing.
	TagUnknownError = "UnknownError"

	// TagUnknownThrown is the synthetic variant a registry wraps an
	// arbitrary non-error value into when serializing.
	TagUnknownThrown = "UnknownThrown"
)

// NewReservedFieldError reports an attempt to use a reserved name as a
// payload field.
func NewReservedFieldError(field string) *Fault {
	return MustNew(TagReservedField,
		fmt.Sprintf("payload field name %q is reserved", field),
	).WithMeta(map[string]any{"field": field})
}

// NewTagMismatchError reports a definition registered under a key that does
// not match its declared tag.
func NewTagMismatchError(key, declared string) *Fault {
	return MustNew(TagTagMismatch,
		fmt.Sprintf("registry key %q does not match the definition tag %q", key, declared),
	).WithMeta(map[string]any{"key": key, "tag": declared})
}

// NewMergeConflictError reports two different definitions competing for the
// same tag during a merge.
func NewMergeConflictError(tagName string) *Fault {
	return MustNew(TagMergeConflict,
		fmt.Sprintf("tag %q is bound to conflicting definitions", tagName),
	).WithMeta(map[string]any{"tag": tagName})
}

// NewDeserializeError reports an invalid wire payload. The detail string
// identifies the violated field.
func NewDeserializeError(detail string) *Fault {
	return MustNew(TagDeserialize, "invalid serialized fault").WithDetails(detail)
}

// NewInvalidConstructorError reports a registered constructor that did not
// produce a fault instance.
func NewInvalidConstructorError(tagName string) *Fault {
	return MustNew(TagInvalidConstructor,
		fmt.Sprintf("constructor for tag %q did not produce a fault", tagName),
	).WithMeta(map[string]any{"tag": tagName})
}
