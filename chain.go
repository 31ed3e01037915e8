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

// MaxCauseDepth is the shared hop limit for every chain traversal in the
// library: Chain, Flatten, serialization and deserialization all stop after
// this many cause hops. Cause data is arbitrary and may be cyclic, so every
// recursive or loop-based walk must carry this bound to terminate.
const MaxCauseDepth = 100

// Chain returns the cause chain starting at f.
//
// The sequence is [f, ...] obtained by repeatedly following Cause while the
// current value is a fault, then one trailing non-fault cause if present (to
// expose the ultimate root value). Traversal is capped at MaxCauseDepth
// hops, so a cyclic chain — including a fault whose cause is itself — yields
// at most MaxCauseDepth+1 entries instead of looping forever.
func (f *Fault) Chain() []any {
	out := make([]any, 0, 4)
	out = append(out, f)

	cur := f.Cause
	for hops := 0; hops < MaxCauseDepth && cur != nil; hops++ {
		cf, ok := cur.(*Fault)
		if !ok {
			out = append(out, cur)
			break
		}
		if cf == nil {
			break
		}
		out = append(out, cf)
		cur = cf.Cause
	}
	return out
}

// Tags returns the tag of every fault in the chain, head-to-root order.
// Non-fault chain entries (a trailing plain error or thrown value) have no
// tag and are skipped.
func (f *Fault) Tags() []string {
	chain := f.Chain()
	tags := make([]string, 0, len(chain))
	for _, node := range chain {
		if cf, ok := node.(*Fault); ok && cf != nil {
			tags = append(tags, cf.tag)
		}
	}
	return tags
}

// Context merges Meta across every fault in the chain.
//
// Iteration runs head-to-root and a key is only set the first time it is
// seen, so when two faults define the same key the head (caller-facing,
// earliest-in-chain) value wins.
func (f *Fault) Context() map[string]any {
	merged := make(map[string]any)
	for _, node := range f.Chain() {
		cf, ok := node.(*Fault)
		if !ok || cf == nil {
			continue
		}
		for k, v := range cf.Meta {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}
	return merged
}
