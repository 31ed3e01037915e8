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
	"errors"
	"strings"
	"testing"
)

func TestFlatten_DistinctMessages(t *testing.T) {
	db := MustNew("DatabaseError", "db")
	svc := MustNew("ServiceError", "svc").WithCause(db)

	if got := svc.Flatten(); got != "svc -> db" {
		t.Fatalf("Flatten = %q", got)
	}
}

func TestFlatten_ConsecutiveDuplicatesCollapse(t *testing.T) {
	inner := MustNew("Inner", "same")
	outer := MustNew("Outer", "same").WithCause(inner)

	if got := outer.Flatten(); got != "same" {
		t.Fatalf("Flatten = %q, want %q", got, "same")
	}
}

func TestFlatten_PlainErrorTail(t *testing.T) {
	f := MustNew("X", "wrapper").WithCause(errors.New("root cause"))
	if got := f.Flatten(); got != "wrapper -> root cause" {
		t.Fatalf("Flatten = %q", got)
	}
}

func TestFlatten_ThrownValues(t *testing.T) {
	cases := []struct {
		name  string
		cause any
		want  string
	}{
		{"string", "oops", "head -> oops"},
		{"number", 42, "head -> 42"},
		{"map", map[string]any{"k": "v"}, `head -> {"k":"v"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := MustNew("X", "head").WithCause(tc.cause)
			if got := f.Flatten(); got != tc.want {
				t.Fatalf("Flatten = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFlatten_UnserializableCauseFallsBack(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	f := MustNew("X", "head").WithCause(cyclic)
	got := f.Flatten()
	if !strings.HasPrefix(got, "head -> ") {
		t.Fatalf("Flatten = %q", got)
	}
	if !strings.Contains(got, "[unserializable") {
		t.Fatalf("want fallback representation, got %q", got)
	}
}

func TestFlatten_Details(t *testing.T) {
	leaf := MustNew("C", "leaf").WithDetails("connection refused")
	mid := MustNew("B", "mid") // no details: skipped, not rendered empty
	mid.Cause = leaf
	head := MustNew("A", "head").WithCause(mid)

	if got := head.Flatten(WithField(FieldDetails)); got != "connection refused" {
		t.Fatalf("Flatten(details) = %q", got)
	}
}

func TestFlatten_Options(t *testing.T) {
	leaf := MustNew("B", "  b  ")
	head := MustNew("A", "a").WithCause(leaf)

	got := head.Flatten(WithSeparator(" | "))
	if got != "a | b" {
		t.Fatalf("separator: Flatten = %q", got)
	}

	got = head.Flatten(WithFormatter(strings.ToUpper))
	if got != "A ->   B  " {
		t.Fatalf("formatter: Flatten = %q", got)
	}
}

func TestFlatten_SelfCycleTerminates(t *testing.T) {
	f := MustNew("Loop", "around")
	f.Cause = f
	if got := f.Flatten(); got != "around" {
		t.Fatalf("Flatten = %q", got)
	}
}
