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

package tag

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Tag is the canonical, validated representation of a fault tag.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated discriminants.
//
// IMPORTANT: Empty tags ("") are NOT allowed. Every fault variant MUST have
// a non-empty tag.
type Tag string

// MinLength and MaxLength define the allowed length range for a declared
// fault tag.
const (
	// MinLength is the minimum length for a valid tag. Single-character
	// discriminants are allowed; they are common in tests and in compact
	// protocol vocabularies.
	MinLength = 1

	// MaxLength is the maximum length for a valid tag. 128 characters is
	// enough for namespaced variants like "billing.invoice.NotFound" while
	// still preventing unbounded or accidental long strings.
	MaxLength = 128
)

const (
	// tagFmt is the canonical regular expression used to validate tags.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z] - first character must be an ASCII letter;
	//	[A-Za-z0-9_.-]{0,127} - the remaining characters may be letters,
	//	                        digits, underscore, dot or dash; the
	//	                        quantifier keeps the total length 1..128;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {0,127} is tied to MinLength / MaxLength
	// above. If you change those, adjust this pattern as well.
	tagFmt = `^[A-Za-z][A-Za-z0-9_.-]{0,127}$`
)

var (
	// tagRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical fault tag.
	//
	// Examples of valid tags:
	//   - "DatabaseError"
	//   - "NotFound"
	//   - "auth.TokenExpired"
	//   - "UnknownThrown"
	//
	// Examples of invalid tags:
	//   - ""            (empty)
	//   - "1Shot"       (does not start with a letter)
	//   - "with space"  (whitespace)
	tagRe = regexp.MustCompile(tagFmt)
)

// ErrTagInvalid is returned when a value cannot be parsed or validated as a
// fault tag.
var ErrTagInvalid = errors.New("faultier: invalid tag")

// Ensure Tag implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Tag)(nil)
	_ encoding.TextUnmarshaler = (*Tag)(nil)
)

// Empty is the zero-value tag. It is never valid as a declared variant.
var Empty Tag = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Tag value.
func Parse(s string) (Tag, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Tag(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level variants in init() or var blocks.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize trims surrounding whitespace. Unlike snake_case code systems,
// tags are case-significant, so no case folding or separator rewriting is
// performed: "DatabaseError" and "databaseerror" are different variants.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks whether the provided Tag is valid.
// The empty tag ("") is considered invalid.
func Validate(t Tag) error {
	return validate(string(t))
}

// String returns the canonical string representation of the tag.
func (t Tag) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It normalizes and validates the provided text before assigning.
func (t *Tag) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid tag.
func validate(s string) error {
	if !tagRe.MatchString(s) {
		return ErrTagInvalid
	}
	return nil
}
