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

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when a byte payload cannot be decoded into the
// wire shape at all (wrong JSON type for a fixed field, non-object meta,
// unknown cause kind, and so on).
//
// Having a dedicated sentinel makes it easy for callers to distinguish
// "this is not a fault payload" from ordinary JSON syntax errors.
var ErrMalformed = errors.New("wire: malformed fault payload")

// Fault is the serialized, transport-neutral form of one fault node together
// with its (already serialized) cause chain.
//
// The zero value is not a valid wire fault: a valid payload always carries
// the marker and a non-empty tag. Producers should build instances via the
// core's ToSerializable; consumers usually obtain one from Decode/Unmarshal.
type Fault struct {
	// Marker records whether the payload carried the "__faultier" flag.
	// MarshalJSON always emits it as true.
	Marker bool

	// Tag is the discriminant of the fault ("_tag" on the wire).
	Tag string

	// Name mirrors the conventional error name slot. It usually equals Tag.
	Name string

	// Message is the user-facing text. Omitted from JSON when empty.
	Message string

	// Details is the internal diagnostic text. Omitted from JSON when empty.
	Details string

	// Meta is the structured metadata map. Omitted from JSON when empty.
	Meta map[string]any

	// Stack is the rendered stack trace. Omitted from JSON when empty.
	Stack string

	// Payload holds the arbitrary extra fields of the fault. On the wire
	// these appear as top-level siblings of the fixed fields; reserved
	// names are skipped on marshal so the fixed slots can never be
	// clobbered by payload data.
	Payload map[string]any

	// Cause is the serialized cause, if any.
	Cause *Cause
}

// MarshalJSON emits the wire object with payload fields flattened to the
// top level. Optional fields (message, details, meta, stack, cause) are
// omitted when unset.
func (f *Fault) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, 8+len(f.Payload))
	for k, v := range f.Payload {
		// Defensive: a payload key must never overwrite a fixed slot.
		if Reserved(k) {
			continue
		}
		obj[k] = v
	}
	obj[Marker] = true
	obj["_tag"] = f.Tag
	obj["name"] = f.Name
	if f.Message != "" {
		obj["message"] = f.Message
	}
	if f.Details != "" {
		obj["details"] = f.Details
	}
	if len(f.Meta) > 0 {
		obj["meta"] = f.Meta
	}
	if f.Stack != "" {
		obj["stack"] = f.Stack
	}
	if f.Cause != nil {
		obj["cause"] = f.Cause
	}
	return json.Marshal(obj)
}

// UnmarshalJSON parses the wire object, routing the fixed fields into their
// slots and collecting everything else into Payload.
//
// Shape violations on fixed fields (non-string tag, non-object meta, ...)
// are reported as errors wrapping ErrMalformed and identifying the field.
// Whether the payload is semantically acceptable (marker present, tag
// non-empty) is left to the deserializer proper.
func (f *Fault) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := Fault{}

	if m, ok := raw[Marker]; ok {
		var marker bool
		if err := json.Unmarshal(m, &marker); err != nil {
			return fmt.Errorf("%w: %q must be a boolean", ErrMalformed, Marker)
		}
		out.Marker = marker
		delete(raw, Marker)
	}

	if m, ok := raw["_tag"]; ok {
		if err := json.Unmarshal(m, &out.Tag); err != nil {
			return fmt.Errorf("%w: \"_tag\" must be a string", ErrMalformed)
		}
		delete(raw, "_tag")
	}

	for _, field := range []struct {
		key string
		dst *string
	}{
		{"name", &out.Name},
		{"message", &out.Message},
		{"details", &out.Details},
		{"stack", &out.Stack},
	} {
		m, ok := raw[field.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(m, field.dst); err != nil {
			return fmt.Errorf("%w: %q must be a string", ErrMalformed, field.key)
		}
		delete(raw, field.key)
	}

	if m, ok := raw["meta"]; ok {
		if string(m) != "null" {
			if err := json.Unmarshal(m, &out.Meta); err != nil {
				return fmt.Errorf("%w: \"meta\" must be an object", ErrMalformed)
			}
		}
		delete(raw, "meta")
	}

	if m, ok := raw["cause"]; ok {
		if string(m) != "null" {
			out.Cause = &Cause{}
			if err := json.Unmarshal(m, out.Cause); err != nil {
				return err
			}
		}
		delete(raw, "cause")
	}

	// Whatever is left over is payload data. Keys are kept verbatim here;
	// collision rewriting is a deserialization concern, not a parsing one.
	if len(raw) > 0 {
		out.Payload = make(map[string]any, len(raw))
		for k, m := range raw {
			var v any
			if err := json.Unmarshal(m, &v); err != nil {
				return fmt.Errorf("%w: payload field %q: %v", ErrMalformed, k, err)
			}
			out.Payload[k] = v
		}
	}

	*f = out
	return nil
}
