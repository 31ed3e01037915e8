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
	"faultier.dev/faultier/wire"
)

// ToSerializable converts any recovered value into a wire fault.
//
// Faults serialize themselves. A plain error is wrapped into a synthetic
// UnknownError fault whose cause is the error; any other value into a
// synthetic UnknownThrown fault whose cause records the raw value. Either
// way the receiver gets a decodable fault payload, never a bare string.
func (r *Registry) ToSerializable(v any) *wire.Fault {
	if f, ok := v.(*faultier.Fault); ok && f != nil {
		return f.ToSerializable()
	}
	if err, ok := v.(error); ok && err != nil {
		return faultier.MustNew(faultier.TagUnknownError, err.Error(),
			faultier.WithCauseOption(err),
		).ToSerializable()
	}
	return faultier.MustNew(faultier.TagUnknownThrown, "unknown thrown value",
		faultier.WithCauseOption(v),
	).ToSerializable()
}

// FromSerializable converts a wire payload back into a live fault,
// restoring the registered variant for every tag known to this registry —
// at the top level and inside nested fault causes. Unknown tags fall back
// to generic reconstruction. The cause depth cap applies exactly as in the
// generic deserializer.
func (r *Registry) FromSerializable(w *wire.Fault) (*faultier.Fault, error) {
	return faultier.FromSerializableWith(w, r.construct)
}

// Decode is FromSerializable over raw JSON bytes.
func (r *Registry) Decode(data []byte) (*faultier.Fault, error) {
	return faultier.DecodeWith(data, r.construct)
}

// construct is the deserialization hook: registered tags are built through
// their definition (receiving the extracted, reserved-filtered payload
// fields), unknown tags decline so the generic path applies.
func (r *Registry) construct(tagName string, payload map[string]any) (*faultier.Fault, bool, error) {
	def, ok := r.defs[tagName]
	if !ok {
		return nil, false, nil
	}
	f, err := def.New(payload)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}
