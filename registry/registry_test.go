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
	"errors"
	"testing"

	"faultier.dev/faultier"
)

func wantFaultTag(t *testing.T, err error, tagName string) *faultier.Fault {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s, got nil", tagName)
	}
	f, ok := err.(*faultier.Fault)
	if !ok {
		t.Fatalf("err = %T, want *faultier.Fault", err)
	}
	if f.Tag() != tagName {
		t.Fatalf("tag = %q, want %q", f.Tag(), tagName)
	}
	return f
}

func TestDefine_ReservedFieldRejected(t *testing.T) {
	_, err := Define("X", WithFields("id", "withCause"))
	wantFaultTag(t, err, faultier.TagReservedField)
}

func TestDefine_InvalidTag(t *testing.T) {
	for _, bad := range []string{"", "1Shot", "with space"} {
		if _, err := Define(bad); err == nil {
			t.Fatalf("tag %q: want error", bad)
		}
	}
}

func TestNew_TagMismatch(t *testing.T) {
	taggedB := MustDefine("B")
	_, err := New(WithDefinition("A", taggedB))
	f := wantFaultTag(t, err, faultier.TagTagMismatch)
	if f.Meta["key"] != "A" || f.Meta["tag"] != "B" {
		t.Fatalf("error must identify both sides: %v", f.Meta)
	}
}

func TestRegistry_CreateAndWrap(t *testing.T) {
	db := MustDefine("DatabaseError", WithDefaultMessage("database failure"))
	reg := MustNew(WithDefinition("DatabaseError", db))

	f, err := reg.Create("DatabaseError", map[string]any{"query": "SELECT 1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.Tag() != "DatabaseError" || f.Message != "database failure" {
		t.Fatal("definition defaults not applied")
	}
	if f.Payload["query"] != "SELECT 1" {
		t.Fatal("payload fields not assigned")
	}

	cause := errors.New("connection reset")
	wrapped, err := reg.Wrap(cause).As("DatabaseError", nil)
	if err != nil {
		t.Fatalf("Wrap.As: %v", err)
	}
	if wrapped.Cause != any(cause) {
		t.Fatal("cause not attached")
	}
}

func TestRegistry_CreateUnknownTag(t *testing.T) {
	reg := MustNew()
	_, err := reg.Create("Nope", nil)
	wantFaultTag(t, err, faultier.TagInvalidConstructor)
}

func TestRegistry_CreateReservedPayload(t *testing.T) {
	reg := MustNew(WithDefinition("X", MustDefine("X")))
	_, err := reg.Create("X", map[string]any{"toSerializable": 1})
	wantFaultTag(t, err, faultier.TagReservedField)
}

func TestRegistry_FactoryNotProducingFault(t *testing.T) {
	broken := MustDefine("Broken", WithFactory(func(map[string]any) *faultier.Fault {
		return nil
	}))
	reg := MustNew(WithDefinition("Broken", broken))

	_, err := reg.Create("Broken", nil)
	wantFaultTag(t, err, faultier.TagInvalidConstructor)
}

func TestRegistry_Is_DisjointRegistries(t *testing.T) {
	regA := MustNew(WithDefinition("A", MustDefine("A")))
	regB := MustNew(WithDefinition("B", MustDefine("B")))

	fa, err := regA.Create("A", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !regA.Is(fa) {
		t.Fatal("regA must own its fault")
	}
	if regB.Is(fa) {
		t.Fatal("regB must not claim regA's fault")
	}
	if regA.Is(errors.New("plain")) || regA.Is(nil) {
		t.Fatal("non-faults are never members")
	}
}

func TestMatchTag(t *testing.T) {
	reg := MustNew(WithDefinition("A", MustDefine("A")))
	fa, _ := reg.Create("A", nil)

	got, ok := MatchTag(reg, fa, "A", func(f *faultier.Fault) string {
		return "handled:" + f.Tag()
	}, nil)
	if !ok || got != "handled:A" {
		t.Fatalf("MatchTag = %q, %v", got, ok)
	}

	// Wrong tag, no fallback: nothing runs.
	got, ok = MatchTag(reg, fa, "B", func(*faultier.Fault) string { return "x" }, nil)
	if ok || got != "" {
		t.Fatalf("MatchTag = %q, %v, want miss", got, ok)
	}

	// Wrong tag with fallback.
	got, ok = MatchTag(reg, fa, "B",
		func(*faultier.Fault) string { return "x" },
		func(any) string { return "fallback" },
	)
	if !ok || got != "fallback" {
		t.Fatalf("MatchTag = %q, %v", got, ok)
	}
}

func TestMatchTags(t *testing.T) {
	reg := MustNew(
		WithDefinition("A", MustDefine("A")),
		WithDefinition("B", MustDefine("B")),
	)
	fb, _ := reg.Create("B", nil)

	handlers := map[string]func(*faultier.Fault) int{
		"A": func(*faultier.Fault) int { return 1 },
		"B": func(*faultier.Fault) int { return 2 },
	}

	got, ok := MatchTags(reg, fb, handlers, nil)
	if !ok || got != 2 {
		t.Fatalf("MatchTags = %d, %v", got, ok)
	}

	got, ok = MatchTags(reg, errors.New("plain"), handlers, nil)
	if ok || got != 0 {
		t.Fatalf("MatchTags = %d, %v, want miss", got, ok)
	}

	got, ok = MatchTags(reg, "thrown", handlers, func(any) int { return -1 })
	if !ok || got != -1 {
		t.Fatalf("MatchTags fallback = %d, %v", got, ok)
	}
}

func TestMerge(t *testing.T) {
	defA := MustDefine("A")
	defB := MustDefine("B")
	defC := MustDefine("C")

	regAB := MustNew(
		WithDefinition("A", defA),
		WithDefinition("B", defB),
	)
	regBC := MustNew(
		WithDefinition("B", defB), // identical definition: tolerated
		WithDefinition("C", defC),
	)

	merged, err := Merge(regAB, regBC)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	want := []string{"A", "B", "C"}
	got := merged.Tags()
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v (first-seen order)", got, want)
		}
	}
}

func TestMerge_Conflict(t *testing.T) {
	regA := MustNew(WithDefinition("X", MustDefine("X")))
	regB := MustNew(WithDefinition("X", MustDefine("X"))) // different definition, same tag

	_, err := Merge(regA, regB)
	f := wantFaultTag(t, err, faultier.TagMergeConflict)
	if f.Meta["tag"] != "X" {
		t.Fatalf("conflict must name the tag: %v", f.Meta)
	}
}

func TestMerge_ResultIsOperational(t *testing.T) {
	regA := MustNew(WithDefinition("A", MustDefine("A")))
	regB := MustNew(WithDefinition("B", MustDefine("B")))

	merged, err := Merge(regA, regB)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	fb, err := merged.Create("B", nil)
	if err != nil {
		t.Fatalf("Create on merged: %v", err)
	}
	if !merged.Is(fb) || !regB.Is(fb) {
		t.Fatal("membership broken after merge")
	}
	if regA.Is(fb) {
		t.Fatal("regA must not claim B")
	}
}
