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

package wire

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestReserved(t *testing.T) {
	for _, key := range []string{
		Marker, "_tag", "tag", "cause", "name", "message", "stack", "meta",
		"details", "withMeta", "withMessage", "withDetails", "withDescription",
		"withCause", "unwrap", "getTags", "getContext", "flatten", "toSerializable",
	} {
		if !Reserved(key) {
			t.Fatalf("%q must be reserved", key)
		}
	}
	for _, key := range []string{"id", "query", "Message", "_Tag", ""} {
		if Reserved(key) {
			t.Fatalf("%q must not be reserved", key)
		}
	}
}

func TestRewriteReserved(t *testing.T) {
	if got := RewriteReserved("withCause"); got != "__payload_withCause" {
		t.Fatalf("got %q", got)
	}
	if got := RewriteReserved("id"); got != "id" {
		t.Fatalf("got %q", got)
	}
}

func TestFault_MarshalFlattensPayload(t *testing.T) {
	f := &Fault{
		Tag:     "X",
		Name:    "X",
		Message: "m",
		Payload: map[string]any{
			"id":      "i-1",
			"message": "must not clobber the slot", // reserved: dropped
		},
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if obj[Marker] != true {
		t.Fatal("marker missing")
	}
	if obj["id"] != "i-1" {
		t.Fatal("payload field must be a top-level sibling")
	}
	if obj["message"] != "m" {
		t.Fatalf("reserved payload key clobbered the slot: %v", obj["message"])
	}
}

func TestFault_UnmarshalSplitsPayload(t *testing.T) {
	data := []byte(`{
		"__faultier": true,
		"_tag": "X",
		"name": "X",
		"message": "m",
		"id": "i-1",
		"count": 2
	}`)

	var f Fault
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !f.Marker || f.Tag != "X" || f.Message != "m" {
		t.Fatalf("slots lost: %+v", f)
	}
	if f.Payload["id"] != "i-1" || f.Payload["count"] != float64(2) {
		t.Fatalf("payload lost: %v", f.Payload)
	}
	if _, ok := f.Payload["message"]; ok {
		t.Fatal("slot leaked into payload")
	}
}

func TestFault_UnmarshalShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sub  string
	}{
		{"non-string tag", `{"__faultier":true,"_tag":1}`, "_tag"},
		{"non-object meta", `{"__faultier":true,"_tag":"X","meta":[1]}`, "meta"},
		{"non-bool marker", `{"__faultier":"yes","_tag":"X"}`, Marker},
		{"non-string stack", `{"__faultier":true,"_tag":"X","stack":5}`, "stack"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f Fault
			err := json.Unmarshal([]byte(tc.in), &f)
			if err == nil {
				t.Fatal("want error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tc.sub) {
				t.Fatalf("error %q missing %q", err, tc.sub)
			}
		})
	}
}

func TestCause_UnionRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   *Cause
	}{
		{"fault", &Cause{Kind: KindFault, Fault: &Fault{Marker: true, Tag: "Inner", Name: "Inner"}}},
		{"error", &Cause{Kind: KindError, Name: "E", Message: "boom", Stack: "s"}},
		{"thrown", &Cause{Kind: KindThrown, Thrown: "value"}},
		{"thrown nil", &Cause{Kind: KindThrown, Thrown: nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var back Cause
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back.Kind != tc.in.Kind {
				t.Fatalf("kind = %q, want %q", back.Kind, tc.in.Kind)
			}
			switch tc.in.Kind {
			case KindFault:
				if back.Fault == nil || back.Fault.Tag != tc.in.Fault.Tag {
					t.Fatalf("fault cause lost: %+v", back.Fault)
				}
			case KindError:
				if back.Name != tc.in.Name || back.Message != tc.in.Message || back.Stack != tc.in.Stack {
					t.Fatalf("error cause lost: %+v", back)
				}
			case KindThrown:
				if back.Thrown != tc.in.Thrown {
					t.Fatalf("thrown cause lost: %v", back.Thrown)
				}
			}
		})
	}
}

func TestCause_UnknownKind(t *testing.T) {
	var c Cause
	if err := json.Unmarshal([]byte(`{"kind":"bogus"}`), &c); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}

	bad := &Cause{Kind: "bogus"}
	if _, err := json.Marshal(bad); err == nil {
		t.Fatal("marshal of unknown kind must fail")
	}
}
