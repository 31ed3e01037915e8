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

import (
	"encoding/json"
	"fmt"

	"faultier.dev/faultier/wire"
)

// ConstructFunc lets a caller substitute its own construction for specific
// tags during deserialization. It receives the tag and the extracted,
// reserved-rewritten payload fields. Returning ok=false falls back to
// generic reconstruction; returning an error aborts the whole decode.
//
// The registry package uses this hook to restore registered variants at
// every level of a nested cause chain.
type ConstructFunc func(tagName string, payload map[string]any) (f *Fault, ok bool, err error)

// FromSerializable converts a wire payload back into a live Fault.
//
// It validates the marker and the tag, rewrites payload keys that collide
// with reserved names under the "__payload_" prefix, restores name, message,
// details, meta and stack, and reconstructs the cause per its kind: a fault
// cause recurses (capped at MaxCauseDepth, silently omitting deeper causes),
// an error cause becomes a *RemoteError, a thrown cause yields the raw
// stored value. Validation failures return a DeserializeError fault; the
// caller never receives a partially-built instance.
func FromSerializable(w *wire.Fault) (*Fault, error) {
	return FromSerializableWith(w, nil)
}

// FromSerializableWith is FromSerializable with a construction hook applied
// to every tag in the payload, including nested causes.
func FromSerializableWith(w *wire.Fault, construct ConstructFunc) (*Fault, error) {
	return decodeWire(w, 0, construct)
}

// Decode parses raw JSON into the wire shape and reconstructs the fault.
// Both parse failures and validation failures surface as DeserializeError
// faults identifying the problem.
func Decode(data []byte) (*Fault, error) {
	return DecodeWith(data, nil)
}

// DecodeWith is Decode with a construction hook (see FromSerializableWith).
func DecodeWith(data []byte, construct ConstructFunc) (*Fault, error) {
	var w wire.Fault
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, NewDeserializeError(err.Error())
	}
	return FromSerializableWith(&w, construct)
}

func decodeWire(w *wire.Fault, depth int, construct ConstructFunc) (*Fault, error) {
	if w == nil {
		return nil, NewDeserializeError("payload is nil")
	}
	if !w.Marker {
		return nil, NewDeserializeError(fmt.Sprintf("payload is missing the %q marker", wire.Marker))
	}
	if w.Tag == "" {
		return nil, NewDeserializeError("payload tag must be a non-empty string")
	}

	// Payload keys colliding with reserved field or method names are
	// rewritten rather than dropped: the data survives, but it can never
	// shadow a real slot of the reconstructed instance.
	var payload map[string]any
	if len(w.Payload) > 0 {
		payload = make(map[string]any, len(w.Payload))
		for k, v := range w.Payload {
			payload[wire.RewriteReserved(k)] = v
		}
	}

	var f *Fault
	if construct != nil {
		built, ok, err := construct(w.Tag, payload)
		if err != nil {
			return nil, err
		}
		if ok {
			if built == nil {
				return nil, NewInvalidConstructorError(w.Tag)
			}
			f = built
		}
	}
	if f == nil {
		// Generic reconstruction: a minimal fault carrying the tag.
		f = &Fault{tag: w.Tag, Name: w.Tag, Payload: payload}
	}

	if w.Name != "" {
		f.Name = w.Name
	}
	if w.Message != "" {
		f.Message = w.Message
	} else if f.Message == "" {
		f.Message = f.tag
	}
	if w.Details != "" {
		f.Details = w.Details
	}
	if len(w.Meta) > 0 {
		meta := make(map[string]any, len(w.Meta))
		for k, v := range w.Meta {
			meta[k] = v
		}
		f.Meta = meta
	}

	// The serialized stack already encodes any "Caused by" annotation, so
	// it replaces both the live and the pristine trace.
	f.Stack = w.Stack
	f.pristine = w.Stack

	if w.Cause != nil && depth < MaxCauseDepth {
		switch w.Cause.Kind {
		case wire.KindFault:
			// Assigned directly to Cause, bypassing WithCause: rebuilding
			// the trace here would double-annotate the serialized stack.
			cause, err := decodeWire(w.Cause.Fault, depth+1, construct)
			if err != nil {
				return nil, err
			}
			f.Cause = cause
		case wire.KindError:
			f.Cause = &RemoteError{
				Name:    w.Cause.Name,
				Message: w.Cause.Message,
				Stack:   w.Cause.Stack,
			}
		case wire.KindThrown:
			f.Cause = w.Cause.Thrown
		default:
			return nil, NewDeserializeError(fmt.Sprintf("unknown cause kind %q", w.Cause.Kind))
		}
	}

	return f, nil
}
