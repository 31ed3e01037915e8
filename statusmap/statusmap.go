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

package statusmap

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"faultier.dev/faultier"
	"faultier.dev/faultier/tag"
)

// Status pairs the two transport views of one logical failure so HTTP and
// gRPC decisions stay consistent for a single fault.
type Status struct {
	HTTP int
	GRPC codes.Code
}

// Mapper resolves transport statuses for faults. Implementations returned by
// New are immutable and safe for concurrent use.
type Mapper interface {
	// HTTPStatus resolves the HTTP status for f.
	HTTPStatus(f *faultier.Fault) int

	// GRPCStatus resolves the gRPC code for f.
	GRPCStatus(f *faultier.Fault) codes.Code

	// Status resolves both transports at once.
	Status(f *faultier.Fault) Status

	// Explain produces a textual trace of how both statuses were resolved.
	Explain(f *faultier.Fault) string
}

// New constructs an immutable Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library-tag defaults (HTTP & gRPC).
//  2. Apply user-provided options (rules, fallback).
//  3. Normalize and validate every rule tag (via tag.Parse) and every
//     status value.
//  4. Freeze the rule maps into fresh, snapshot-owned copies.
//
// Errors indicate an invalid tag or an out-of-range status in the options.
func New(opts ...Option) (Mapper, error) {
	b := newBuilder()

	// (1) Seed library defaults. Copied into builder-owned maps so user
	// options can replace them without touching the package-level tables.
	for k, v := range defaultHTTP {
		b.httpRules[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcRules[k] = v
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3+4) Validate and freeze. Keys are re-parsed so rule tags obey the
	// same grammar as tags accepted at fault definition time.
	httpRules := make(map[string]int, len(b.httpRules))
	for raw, status := range b.httpRules {
		tg, err := tag.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("statusmap: invalid tag %q in HTTP rule: %w", raw, err)
		}
		if status < 100 || status > 599 {
			return nil, fmt.Errorf("statusmap: HTTP status %d for tag %q out of range", status, tg)
		}
		httpRules[string(tg)] = status
	}

	grpcRules := make(map[string]codes.Code, len(b.grpcRules))
	for raw, c := range b.grpcRules {
		tg, err := tag.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("statusmap: invalid tag %q in gRPC rule: %w", raw, err)
		}
		if c > codes.Unauthenticated {
			return nil, fmt.Errorf("statusmap: unknown gRPC code %d for tag %q", c, tg)
		}
		grpcRules[string(tg)] = c
	}

	if b.fallback.HTTP < 100 || b.fallback.HTTP > 599 {
		return nil, fmt.Errorf("statusmap: fallback HTTP status %d out of range", b.fallback.HTTP)
	}
	if b.fallback.GRPC > codes.Unauthenticated {
		return nil, fmt.Errorf("statusmap: unknown fallback gRPC code %d", b.fallback.GRPC)
	}

	return &mapper{
		httpRules: httpRules,
		grpcRules: grpcRules,
		fallback:  b.fallback,
	}, nil
}

// MustNew is New, panicking on error. For package-level mapper variables
// built from literal rules.
func MustNew(opts ...Option) Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is an immutable per-tag rule table. Resolution walks the fault's
// cause chain head-to-root and takes the first tag with a rule, so a wrapper
// fault without its own rule inherits the status of the failure it wraps.
// Lookups are O(chain length) and safe for concurrent use once constructed.
type mapper struct {
	httpRules map[string]int
	grpcRules map[string]codes.Code

	// fallback applies when no tag in the chain has a rule, and to nil
	// faults. Typically 500 / codes.Internal.
	fallback Status
}

// HTTPStatus resolves an HTTP status for the given fault.
//
// Resolution order (highest to lowest):
//  1. rule for the head fault's own tag;
//  2. rule for the nearest tagged cause, walking head-to-root;
//  3. fallback (500 unless overridden).
func (m *mapper) HTTPStatus(f *faultier.Fault) int {
	if v, _, ok := lookupChain(m.httpRules, f); ok {
		return v
	}
	return m.fallback.HTTP
}

// GRPCStatus resolves a gRPC code for the given fault, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(f *faultier.Fault) codes.Code {
	if v, _, ok := lookupChain(m.grpcRules, f); ok {
		return v
	}
	return m.fallback.GRPC
}

// Status resolves both transports for the same fault. The two lookups share
// one chain walk order, so HTTP and gRPC never disagree about which tag in
// the chain decided.
func (m *mapper) Status(f *faultier.Fault) Status {
	return Status{
		HTTP: m.HTTPStatus(f),
		GRPC: m.GRPCStatus(f),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular fault.
//
// This is primarily a diagnostic tool: it shows which tier matched (the head
// fault's own rule, a rule inherited from a cause in the chain, or the
// fallback) and which tag decided.
//
// Example output:
//
//	tag="ServiceError"
//	http: source=chain tag="DatabaseError" -> 503
//	grpc: source=fallback -> INTERNAL(13)
//
// Notes:
//   - source ∈ {head | chain | fallback}
//   - for head and chain, tag names the chain entry whose rule matched
func (m *mapper) Explain(f *faultier.Fault) string {
	var b strings.Builder

	head := ""
	if f != nil {
		head = f.Tag()
	}
	_, _ = fmt.Fprintf(&b, "tag=%q\n", head)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(f))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(f))

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats the line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(f *faultier.Fault) string {
	if v, hit, ok := lookupChain(m.httpRules, f); ok {
		return fmt.Sprintf("http: source=%s tag=%q -> %d", hit.source, hit.tag, v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallback.HTTP)
}

// explainGRPC formats the line describing how the gRPC code was chosen.
func (m *mapper) explainGRPC(f *faultier.Fault) string {
	if v, hit, ok := lookupChain(m.grpcRules, f); ok {
		return fmt.Sprintf("grpc: source=%s tag=%q -> %s(%d)", hit.source, hit.tag, strings.ToUpper(v.String()), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallback.GRPC.String()), int(m.fallback.GRPC))
}

// match records which chain entry decided a lookup, for Explain.
type match struct {
	source string // "head" or "chain"
	tag    string
}

// lookupChain walks f's cause chain head-to-root and returns the value bound
// to the first tag present in rules. The chain is already depth-capped, so
// cyclic chains terminate here too.
func lookupChain[V any](rules map[string]V, f *faultier.Fault) (V, match, bool) {
	var zero V
	if f == nil {
		return zero, match{}, false
	}
	for i, node := range f.Chain() {
		cf, ok := node.(*faultier.Fault)
		if !ok || cf == nil {
			continue
		}
		if v, ok := rules[cf.Tag()]; ok {
			src := "chain"
			if i == 0 {
				src = "head"
			}
			return v, match{source: src, tag: cf.Tag()}, true
		}
	}
	return zero, match{}, false
}
