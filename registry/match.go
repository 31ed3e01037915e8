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

// MatchTag dispatches on a single tag: when v is a member of r and its tag
// equals tagName, handler runs with the fault. Otherwise fallback runs when
// provided (it may be nil). The boolean reports whether either ran.
//
// The free-function form (rather than a method) is what allows the handler
// result type to be generic.
func MatchTag[T any](r *Registry, v any, tagName string, handler func(*faultier.Fault) T, fallback func(any) T) (T, bool) {
	if f, ok := v.(*faultier.Fault); ok && f != nil && f.Tag() == tagName && r.Is(f) {
		return handler(f), true
	}
	if fallback != nil {
		return fallback(v), true
	}
	var zero T
	return zero, false
}

// MatchTags dispatches against a map of per-tag handlers: when v is a
// member of r and a handler is keyed under its tag, that handler runs.
// Otherwise fallback runs when provided. The boolean reports whether either
// ran.
func MatchTags[T any](r *Registry, v any, handlers map[string]func(*faultier.Fault) T, fallback func(any) T) (T, bool) {
	if f, ok := v.(*faultier.Fault); ok && f != nil && r.Is(f) {
		if handler, ok := handlers[f.Tag()]; ok {
			return handler(f), true
		}
	}
	if fallback != nil {
		return fallback(v), true
	}
	var zero T
	return zero, false
}
