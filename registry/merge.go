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

// Merge combines the given registries into a new one.
//
// Each input's tags are visited in their registration order, so the merged
// tag order is the concatenation of first-seen order across inputs. A tag
// seen once is kept; a tag seen again bound to the *same* definition is a
// no-op; a tag seen again bound to a *different* definition fails with a
// MergeConflictError naming the tag.
//
// The inputs are left untouched; the result is a fresh, immutable registry
// with the full operation set.
func Merge(registries ...*Registry) (*Registry, error) {
	merged := &Registry{defs: make(map[string]*Definition)}
	for _, r := range registries {
		if r == nil {
			continue
		}
		for _, t := range r.tags {
			def := r.defs[t]
			if existing, ok := merged.defs[t]; ok {
				if existing == def {
					continue
				}
				return nil, faultier.NewMergeConflictError(t)
			}
			merged.defs[t] = def
			merged.tags = append(merged.tags, t)
		}
	}
	return merged, nil
}
