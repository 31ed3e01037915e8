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
	"faultier.dev/faultier"
)

// Registry is an immutable mapping from tag to Definition.
//
// It is built once via New and read-only thereafter, so a Registry is safe
// for concurrent use. Tag order is first-seen registration order; duplicate
// registration of the identical definition is not re-inserted.
type Registry struct {
	tags []string
	defs map[string]*Definition
}

// Option registers content into a Registry under construction.
type Option func(*builder)

type builder struct {
	entries []entry
}

type entry struct {
	key string
	def *Definition
}

// WithDefinition registers def under the given key. The key must equal the
// definition's own declared tag; New validates this and fails on mismatch.
// Options are applied in order, which fixes the registry's tag order.
func WithDefinition(key string, def *Definition) Option {
	return func(b *builder) {
		b.entries = append(b.entries, entry{key: key, def: def})
	}
}

// New builds a Registry from the given registrations.
//
// For every entry the definition's declared tag must equal its registry
// key; a mismatch fails immediately with a TagMismatchError identifying
// both. Registering the same definition twice under the same key is a
// no-op; two different definitions under one key conflict.
func New(opts ...Option) (*Registry, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	r := &Registry{defs: make(map[string]*Definition, len(b.entries))}
	for _, e := range b.entries {
		if e.def == nil {
			return nil, faultier.NewInvalidConstructorError(e.key)
		}
		if e.def.Tag() != e.key {
			return nil, faultier.NewTagMismatchError(e.key, e.def.Tag())
		}
		if existing, ok := r.defs[e.key]; ok {
			if existing == e.def {
				continue
			}
			return nil, faultier.NewMergeConflictError(e.key)
		}
		r.defs[e.key] = e.def
		r.tags = append(r.tags, e.key)
	}
	return r, nil
}

// MustNew is the panic-on-error variant of New, for package-level
// registries whose definitions are known to be consistent.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Tags returns the registered tags in first-seen order. The returned slice
// is a copy and safe to mutate.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Definition returns the definition registered for tagName, if any.
func (r *Registry) Definition(tagName string) (*Definition, bool) {
	d, ok := r.defs[tagName]
	return d, ok
}

// Create instantiates the variant registered for tagName with the given
// payload fields. An unregistered tag — like a registered factory that does
// not produce a fault — fails with an InvalidConstructorError.
func (r *Registry) Create(tagName string, fields map[string]any) (*faultier.Fault, error) {
	def, ok := r.defs[tagName]
	if !ok {
		return nil, faultier.NewInvalidConstructorError(tagName)
	}
	return def.New(fields)
}

// Wrap starts a wrapping construction: the eventual fault will carry cause
// as its cause.
//
//	f, err := reg.Wrap(err).As("DatabaseError", nil)
func (r *Registry) Wrap(cause any) Wrapper {
	return Wrapper{r: r, cause: cause}
}

// Wrapper is the intermediate of Wrap; see As.
type Wrapper struct {
	r     *Registry
	cause any
}

// As creates the variant registered for tagName and attaches the wrapped
// cause to it.
func (w Wrapper) As(tagName string, fields map[string]any) (*faultier.Fault, error) {
	f, err := w.r.Create(tagName, fields)
	if err != nil {
		return nil, err
	}
	return f.WithCause(w.cause), nil
}

// Is reports whether v is a fault belonging to this registry — not merely
// any fault, but one whose tag is registered here. A fault created by a
// disjoint registry is not a member, even though it shares the base type.
func (r *Registry) Is(v any) bool {
	f, ok := v.(*faultier.Fault)
	if !ok || f == nil {
		return false
	}
	_, member := r.defs[f.Tag()]
	return member
}
