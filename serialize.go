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
	"reflect"

	"faultier.dev/faultier/wire"
)

// ToSerializable produces the wire form of the fault and its cause chain.
//
// The fixed slots (tag, name, message) are always emitted; details, meta and
// stack only when set. Payload fields are copied with reserved names and
// function-valued entries excluded. Cause recursion stops at MaxCauseDepth:
// beyond the limit the cause is omitted entirely — truncated, never an error
// and never a loop, even for self-referential chains.
func (f *Fault) ToSerializable() *wire.Fault {
	return f.toWire(0)
}

// MarshalJSON emits exactly the ToSerializable form, so faults can be passed
// directly to encoding/json.
func (f *Fault) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToSerializable())
}

func (f *Fault) toWire(depth int) *wire.Fault {
	w := &wire.Fault{
		Marker:  true,
		Tag:     f.tag,
		Name:    f.Name,
		Message: f.Message,
		Details: f.Details,
		Stack:   f.Stack,
	}

	if len(f.Meta) > 0 {
		w.Meta = make(map[string]any, len(f.Meta))
		for k, v := range f.Meta {
			w.Meta[k] = v
		}
	}

	if len(f.Payload) > 0 {
		w.Payload = make(map[string]any, len(f.Payload))
		for k, v := range f.Payload {
			if wire.Reserved(k) {
				continue
			}
			if v != nil && reflect.ValueOf(v).Kind() == reflect.Func {
				continue
			}
			w.Payload[k] = v
		}
	}

	if f.Cause == nil || depth >= MaxCauseDepth {
		return w
	}

	switch c := f.Cause.(type) {
	case *Fault:
		if c == nil {
			return w
		}
		w.Cause = &wire.Cause{Kind: wire.KindFault, Fault: c.toWire(depth + 1)}
	case error:
		name, message, stack := errorParts(c)
		w.Cause = &wire.Cause{Kind: wire.KindError, Name: name, Message: message, Stack: stack}
	default:
		w.Cause = &wire.Cause{Kind: wire.KindThrown, Thrown: c}
	}
	return w
}

// errorParts splits a plain error cause into the name/message/stack triple
// the wire carries. Decoded remote errors round-trip their original parts;
// for local errors the name is the Go type and the stack is included when
// the error exposes one.
func errorParts(err error) (name, message, stack string) {
	if re, ok := err.(*RemoteError); ok {
		return re.Name, re.Message, re.Stack
	}
	name = fmt.Sprintf("%T", err)
	message = err.Error()
	if st, ok := err.(interface{ StackTrace() string }); ok {
		stack = st.StackTrace()
	}
	return name, message, stack
}
