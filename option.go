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

// Option is a functional option for constructing a Fault. It takes a *Fault
// and returns a (possibly new) *Fault, or an error when the option carries
// invalid data — for example a reserved payload field name.
type Option func(*Fault) (*Fault, error)

// WithMessageOption sets the message on the fault being constructed.
// Intended to be used with New(...).
func WithMessageOption(message string) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithMessage(message), nil
	}
}

// WithDetailsOption sets the diagnostic details on construction.
// Intended to be used with New(...).
func WithDetailsOption(details string) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithDetails(details), nil
	}
}

// WithMetaOption merges metadata key/values on construction.
// Intended to be used with New(...).
func WithMetaOption(kv map[string]any) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithMeta(kv), nil
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with New(...).
func WithCauseOption(cause any) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithCause(cause), nil
	}
}

// WithPayloadOption adds a single payload field on construction. The key is
// validated against the reserved set.
func WithPayloadOption(key string, value any) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithPayloadField(key, value)
	}
}

// WithPayloadFieldsOption merges multiple payload fields on construction.
// Any reserved key rejects the whole construction.
func WithPayloadFieldsOption(fields map[string]any) Option {
	return func(f *Fault) (*Fault, error) {
		return f.WithPayloadFields(fields)
	}
}
