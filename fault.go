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
	"fmt"
	"strings"

	"faultier.dev/faultier/wire"
)

// Fault is the canonical rich error type of the library.
//
// It carries:
//   - tag: the immutable discriminant of the variant (required);
//   - Name: the conventional error-name slot, usually equal to the tag;
//   - Message: human-oriented description (what went wrong);
//   - Details: internal diagnostic text, independent of Message;
//   - Meta: arbitrary structured key/value metadata;
//   - Payload: arbitrary extra named fields of the concrete variant;
//   - Cause: the wrapped preceding value — another Fault, a plain error,
//     or any value (for example one recovered from a panic).
//
// All mutation helpers (WithX) return a shallow copy, so Fault instances
// can be safely shared and modified in a functional style. The tag is set
// exactly once at construction and never mutated afterward.
type Fault struct {
	// tag is the immutable discriminant. Read it via Tag.
	tag string

	// Name mirrors the conventional error name. It defaults to the tag and
	// survives serialization round-trips.
	Name string

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of a wire payload. Defaults to the
	// tag when left empty at construction.
	Message string

	// Details is internal/diagnostic text. Unlike Message it is never meant
	// for end users; Flatten can project it across a chain.
	Details string

	// Meta is an optional, shallow map of structured metadata. The map is
	// treated as immutable: WithMeta always copies before merging.
	Meta map[string]any

	// Payload holds the extra named fields of a concrete variant (e.g. an
	// "id" or a "query"). Keys are validated against the reserved set at
	// assignment time and survive serialization round-trips.
	Payload map[string]any

	// Cause holds the wrapped preceding value, if any. It may be another
	// *Fault, a plain error, or any value.
	Cause any

	// Stack is the rendered stack trace. Attaching a cause that exposes a
	// trace rewrites Stack as "<pristine>\nCaused by: <indented cause>".
	Stack string

	// pristine is the trace captured at construction, before any cause
	// annotation. WithCause always rebuilds Stack from it, which keeps the
	// annotation replaceable rather than cumulative.
	pristine string
}

var (
	_ error             = (*Fault)(nil)
	_ wire.Tagged       = (*Fault)(nil)
	_ wire.Detailed     = (*Fault)(nil)
	_ wire.Caused       = (*Fault)(nil)
	_ wire.Serializable = (*Fault)(nil)
)

// New constructs a Fault with the given tag and message.
//
// An empty message defaults to the tag. The pristine stack trace is captured
// here so that later WithCause calls can rebuild the annotated trace from a
// stable base. Options are applied in order; an option that fails (for
// example a reserved payload field name) aborts construction.
//
// The tag is intentionally not validated here: the base type accepts any
// discriminant, and declared variants are validated by the registry layer.
func New(tagName, message string, opts ...Option) (*Fault, error) {
	if message == "" {
		message = tagName
	}
	f := &Fault{tag: tagName, Name: tagName, Message: message}
	f.pristine = captureStack(1)
	f.Stack = f.pristine

	for _, opt := range opts {
		next, err := opt(f)
		if err != nil {
			return nil, err
		}
		f = next
	}
	return f, nil
}

// MustNew is the panic-on-error variant of New. It is useful for declaring
// package-level faults whose options are known to be valid.
func MustNew(tagName, message string, opts ...Option) *Fault {
	f, err := New(tagName, message, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// IsFault reports whether v is a live *Fault instance.
func IsFault(v any) bool {
	f, ok := v.(*Fault)
	return ok && f != nil
}

// Tag returns the immutable discriminant of the fault.
func (f *Fault) Tag() string { return f.tag }

// FaultTag implements wire.Tagged.
func (f *Fault) FaultTag() string { return f.tag }

// FaultDetails implements wire.Detailed.
func (f *Fault) FaultDetails() string { return f.Details }

// FaultCause implements wire.Caused. It returns the direct cause value,
// which may be another fault, a plain error, any value, or nil.
func (f *Fault) FaultCause() any { return f.Cause }

// StackTrace returns the rendered stack trace, including any "Caused by"
// annotation added by WithCause.
func (f *Fault) StackTrace() string { return f.Stack }

// Error implements the built-in error interface.
//
// The format is:
//
//	<tag>: <message>
//
// This makes the fault both human- and machine-scannable in logs.
func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", f.tag, f.Message)
}

// Unwrap exposes an error-typed cause, enabling errors.Is / errors.As
// chains. Causes that are not errors (thrown values) are not visible to the
// standard library traversal; use Chain for the full sequence.
func (f *Fault) Unwrap() error {
	if err, ok := f.Cause.(error); ok {
		return err
	}
	return nil
}

// WithMessage returns a shallow copy of f with a replaced human message.
// The original fault is not modified.
func (f *Fault) WithMessage(message string) *Fault {
	cp := *f
	cp.Message = message
	return &cp
}

// WithDetails returns a shallow copy of f with replaced diagnostic details.
func (f *Fault) WithDetails(details string) *Fault {
	cp := *f
	cp.Details = details
	return &cp
}

// WithDescription returns a shallow copy of f with a replaced message and,
// when provided, replaced details. Passing no details leaves the existing
// details untouched.
func (f *Fault) WithDescription(message string, details ...string) *Fault {
	cp := *f
	cp.Message = message
	if len(details) > 0 {
		cp.Details = details[0]
	}
	return &cp
}

// WithMeta returns a shallow copy of f with kv merged into Meta.
//
// Existing keys not present in kv are preserved; overlapping keys take the
// new value. Both maps are copied, preserving immutability of the original.
func (f *Fault) WithMeta(kv map[string]any) *Fault {
	if len(kv) == 0 {
		return f
	}
	cp := *f
	m := make(map[string]any, len(cp.Meta)+len(kv))
	for k, v := range cp.Meta {
		m[k] = v
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Meta = m
	return &cp
}

// WithPayloadField returns a shallow copy of f with one extra payload field.
//
// Reserved field names (the fixed wire slots and the fluent method names of
// the wire contract) are rejected with a ReservedFieldError fault.
func (f *Fault) WithPayloadField(key string, value any) (*Fault, error) {
	if wire.Reserved(key) {
		return nil, NewReservedFieldError(key)
	}
	cp := *f
	m := make(map[string]any, len(cp.Payload)+1)
	for k, v := range cp.Payload {
		m[k] = v
	}
	m[key] = value
	cp.Payload = m
	return &cp, nil
}

// WithPayloadFields returns a shallow copy of f with all provided fields
// merged into Payload. Any reserved key rejects the whole call.
func (f *Fault) WithPayloadFields(fields map[string]any) (*Fault, error) {
	if len(fields) == 0 {
		return f, nil
	}
	for k := range fields {
		if wire.Reserved(k) {
			return nil, NewReservedFieldError(k)
		}
	}
	cp := *f
	m := make(map[string]any, len(cp.Payload)+len(fields))
	for k, v := range cp.Payload {
		m[k] = v
	}
	for k, v := range fields {
		m[k] = v
	}
	cp.Payload = m
	return &cp, nil
}

// WithCause returns a shallow copy of f with the given cause attached.
//
// If the cause exposes a stack trace, the copy's Stack is rebuilt as the
// pristine construction trace followed by "Caused by:" and the cause trace
// with every line indented by two spaces. If the cause has no trace, the
// Stack is restored to the pristine form. Because the rebuild always starts
// from the pristine snapshot, replacing the cause never leaves stale
// "Caused by" text behind.
func (f *Fault) WithCause(cause any) *Fault {
	cp := *f
	cp.Cause = cause
	if cs := causeTrace(cause); cs != "" {
		cp.Stack = cp.pristine + "\nCaused by: " + indentTrace(cs)
	} else {
		cp.Stack = cp.pristine
	}
	return &cp
}

// causeTrace extracts a rendered stack trace from a cause value, if it
// exposes one. Faults and decoded remote errors do; plain Go errors do not.
func causeTrace(cause any) string {
	if st, ok := cause.(interface{ StackTrace() string }); ok {
		// A typed-nil fault would panic inside StackTrace; treat it as
		// traceless.
		if f, isFault := cause.(*Fault); isFault && f == nil {
			return ""
		}
		return st.StackTrace()
	}
	return ""
}

// indentTrace prefixes every line of a trace with two spaces.
func indentTrace(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
