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
	"fmt"
)

// CauseKind discriminates the three possible shapes of a serialized cause.
type CauseKind string

const (
	// KindFault marks a cause that was itself a fault. Its serialized form
	// is carried recursively under "value".
	KindFault CauseKind = "fault"

	// KindError marks a cause that was a plain error. Only its name,
	// message and stack survive serialization.
	KindError CauseKind = "error"

	// KindThrown marks a cause that was an arbitrary non-error value
	// (a string, a number, a map, nil, ...). The raw value is carried
	// under "value".
	KindThrown CauseKind = "thrown"
)

// Cause is the serialized form of a fault's cause. It is a tagged union:
// exactly one shape is populated depending on Kind, so the wire never loses
// the distinction between "the cause was a fault", "a plain error" and "some
// arbitrary thrown value".
type Cause struct {
	Kind CauseKind

	// Fault carries the recursively serialized cause when Kind == KindFault.
	Fault *Fault

	// Name, Message and Stack describe the cause when Kind == KindError.
	Name    string
	Message string
	Stack   string

	// Thrown carries the raw value when Kind == KindThrown. A nil Thrown is
	// valid: it round-trips a thrown null.
	Thrown any
}

// MarshalJSON emits the union shape that matches Kind.
func (c *Cause) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindFault:
		return json.Marshal(struct {
			Kind  CauseKind `json:"kind"`
			Value *Fault    `json:"value"`
		}{Kind: KindFault, Value: c.Fault})
	case KindError:
		return json.Marshal(struct {
			Kind    CauseKind `json:"kind"`
			Name    string    `json:"name"`
			Message string    `json:"message"`
			Stack   string    `json:"stack,omitempty"`
		}{Kind: KindError, Name: c.Name, Message: c.Message, Stack: c.Stack})
	case KindThrown:
		return json.Marshal(struct {
			Kind  CauseKind `json:"kind"`
			Value any       `json:"value"`
		}{Kind: KindThrown, Value: c.Thrown})
	default:
		return nil, fmt.Errorf("%w: unknown cause kind %q", ErrMalformed, c.Kind)
	}
}

// UnmarshalJSON reads the "kind" discriminant first, then decodes the
// matching union shape.
func (c *Cause) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind CauseKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("%w: cause: %v", ErrMalformed, err)
	}

	switch head.Kind {
	case KindFault:
		var aux struct {
			Value *Fault `json:"value"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return err
		}
		if aux.Value == nil {
			return fmt.Errorf("%w: fault cause is missing \"value\"", ErrMalformed)
		}
		*c = Cause{Kind: KindFault, Fault: aux.Value}
	case KindError:
		var aux struct {
			Name    string `json:"name"`
			Message string `json:"message"`
			Stack   string `json:"stack"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return fmt.Errorf("%w: error cause: %v", ErrMalformed, err)
		}
		*c = Cause{Kind: KindError, Name: aux.Name, Message: aux.Message, Stack: aux.Stack}
	case KindThrown:
		var aux struct {
			Value any `json:"value"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return fmt.Errorf("%w: thrown cause: %v", ErrMalformed, err)
		}
		*c = Cause{Kind: KindThrown, Thrown: aux.Value}
	default:
		return fmt.Errorf("%w: unknown cause kind %q", ErrMalformed, head.Kind)
	}
	return nil
}
