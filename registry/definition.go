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

package registry

import (
	"fmt"

	"faultier.dev/faultier"
	"faultier.dev/faultier/tag"
	"faultier.dev/faultier/wire"
)

// Factory builds a fault variant from its payload fields. A Factory is the
// explicit replacement for runtime constructor reflection: the registry maps
// a tag to a closure that knows how to build the right variant.
//
// A factory returning nil (or anything that is not a live fault) is reported
// as an InvalidConstructorError by the registry.
type Factory func(fields map[string]any) *faultier.Fault

// Definition declares one fault variant: an immutable tag plus a
// construction recipe. Definitions are compared by identity — registering
// the *same* definition twice is a no-op, while two distinct definitions
// competing for one tag is a conflict.
type Definition struct {
	tag            string
	defaultMessage string
	fields         []string
	factory        Factory
}

// DefineOption configures a Definition under construction.
type DefineOption func(*Definition)

// WithDefaultMessage sets the message used when the variant is created
// without an explicit one. Without it, the message defaults to the tag.
func WithDefaultMessage(message string) DefineOption {
	return func(d *Definition) { d.defaultMessage = message }
}

// WithFields declares the payload field names the variant carries. The
// names are validated against the reserved set when the definition is
// built, so a bad variant declaration fails at startup rather than at the
// first construction.
func WithFields(names ...string) DefineOption {
	return func(d *Definition) { d.fields = append(d.fields, names...) }
}

// WithFactory replaces the default construction (assign all payload fields
// onto a fresh fault) with a custom recipe. Use it when a variant needs
// derived defaults or internal invariants.
func WithFactory(fn Factory) DefineOption {
	return func(d *Definition) { d.factory = fn }
}

// Define declares a fault variant.
//
// The tag is validated (see the tag package); declared payload field names
// are rejected when they collide with reserved names, raising the same
// ReservedFieldError as direct fault construction would.
func Define(tagName string, opts ...DefineOption) (*Definition, error) {
	t, err := tag.Parse(tagName)
	if err != nil {
		return nil, fmt.Errorf("registry: invalid tag %q: %w", tagName, err)
	}

	d := &Definition{tag: t.String()}
	for _, opt := range opts {
		opt(d)
	}

	for _, name := range d.fields {
		if wire.Reserved(name) {
			return nil, faultier.NewReservedFieldError(name)
		}
	}
	return d, nil
}

// MustDefine is the panic-on-error variant of Define. It is useful for
// declaring package-level variants in var blocks.
func MustDefine(tagName string, opts ...DefineOption) *Definition {
	d, err := Define(tagName, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Tag returns the declared discriminant of the variant.
func (d *Definition) Tag() string { return d.tag }

// New instantiates the variant with the given payload fields.
//
// With a custom factory, the factory result is checked to actually be a
// fault (the defensive equivalent of the reflection check against
// misregistration). Without one, a fresh fault is built with the definition
// tag, the default message, and all payload fields assigned — reserved
// field names are rejected exactly as in direct construction.
func (d *Definition) New(fields map[string]any) (*faultier.Fault, error) {
	if d.factory != nil {
		f := d.factory(fields)
		if !faultier.IsFault(f) {
			return nil, faultier.NewInvalidConstructorError(d.tag)
		}
		return f, nil
	}
	return faultier.New(d.tag, d.defaultMessage,
		faultier.WithPayloadFieldsOption(fields),
	)
}
