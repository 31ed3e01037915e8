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

// Tagged is implemented by errors that carry a fault tag. The tag is the
// primary discriminant adapters dispatch on; it is stable and enumerable.
//
// Implementations MUST return the tag exactly as it was set at construction.
// Adapters should treat an unknown tag as an internal error at the boundary
// rather than trying to guess.
type Tagged interface {
	error

	// FaultTag returns the immutable discriminant of the fault.
	FaultTag() string
}

// Detailed is implemented by errors that carry internal diagnostic text
// separate from their user-facing message.
type Detailed interface {
	error

	// FaultDetails returns the diagnostic details, or "" when none are set.
	FaultDetails() string
}

// Caused is implemented by errors that expose their underlying cause.
//
// Go 1.13 unwrapping only sees error-typed causes; this interface keeps the
// full contract explicit, including causes that are not errors at all
// (recovered panic values, foreign thrown data). Implementations SHOULD
// return the direct, immediate cause or nil.
type Caused interface {
	error

	// FaultCause returns the wrapped value that triggered this error, if
	// any. The result may be another fault, a plain error, or any value.
	FaultCause() any
}

// Serializable is implemented by errors that can produce their own wire
// form. Transport adapters use it to obtain a JSON-safe snapshot without
// depending on the concrete fault implementation.
type Serializable interface {
	error

	// ToSerializable returns the wire form of the error, including its
	// serialized cause chain.
	ToSerializable() *Fault
}
