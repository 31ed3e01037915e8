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
	"strings"
)

// FlattenField selects which projection of the chain Flatten joins.
type FlattenField string

const (
	// FieldMessage projects the message of every chain node, faults and
	// non-faults alike. This is the default.
	FieldMessage FlattenField = "message"

	// FieldDetails projects the Details of fault nodes only; nodes without
	// details are skipped.
	FieldDetails FlattenField = "details"
)

// FlattenOption configures Flatten.
type FlattenOption func(*flattenConfig)

type flattenConfig struct {
	field     FlattenField
	separator string
	formatter func(string) string
}

// WithField selects the projected field, FieldMessage or FieldDetails.
func WithField(field FlattenField) FlattenOption {
	return func(c *flattenConfig) { c.field = field }
}

// WithSeparator replaces the default " -> " separator.
func WithSeparator(sep string) FlattenOption {
	return func(c *flattenConfig) { c.separator = sep }
}

// WithFormatter replaces the default strings.TrimSpace formatter. The
// formatter is applied to every candidate value before deduplication and
// joining; returning "" drops the value.
func WithFormatter(fn func(string) string) FlattenOption {
	return func(c *flattenConfig) { c.formatter = fn }
}

// Flatten joins a projected field from the chain into one string.
//
// In message mode (the default) every chain node is rendered — faults
// contribute their Message, plain errors their Error() text, and other
// values a best-effort display string — then formatted, deduplicated for
// *consecutive* identical values (a wrapper that copies its cause's message
// verbatim collapses to one entry) and stripped of empties.
//
// In details mode only fault nodes are walked; nodes without details are
// skipped rather than rendered empty, and no deduplication is applied since
// details are expected to differ per layer.
//
// Flatten never fails: a cause value that cannot be stringified (for
// example, a self-referential map) is replaced by a fallback representation.
func (f *Fault) Flatten(opts ...FlattenOption) string {
	cfg := flattenConfig{
		field:     FieldMessage,
		separator: " -> ",
		formatter: strings.TrimSpace,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := f.Chain()
	var parts []string

	switch cfg.field {
	case FieldDetails:
		for _, node := range chain {
			cf, ok := node.(*Fault)
			if !ok || cf == nil || cf.Details == "" {
				continue
			}
			if s := cfg.formatter(cf.Details); s != "" {
				parts = append(parts, s)
			}
		}
	default:
		var prev string
		for i, node := range chain {
			s := cfg.formatter(displayString(node))
			if i > 0 && s == prev {
				continue
			}
			prev = s
			if s == "" {
				continue
			}
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, cfg.separator)
}

// displayString renders an arbitrary chain node for message-mode Flatten.
// Faults contribute their message, errors their Error() text, strings
// themselves; anything else is rendered as best-effort JSON with a generic
// fallback when marshaling fails or panics.
func displayString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case *Fault:
		if x == nil {
			return "null"
		}
		return x.Message
	case error:
		return x.Error()
	case string:
		return x
	default:
		return jsonDisplay(v)
	}
}

// jsonDisplay marshals v to JSON, swallowing failures (including panics from
// misbehaving custom marshalers) and substituting a generic representation.
func jsonDisplay(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = fmt.Sprintf("[unserializable %T]", v)
		}
	}()
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("[unserializable %T]", v)
	}
	return string(b)
}
