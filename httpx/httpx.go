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

// Package httpx writes faults as HTTP error responses.
//
// The response body is a JSON envelope whose "error" key holds the fault's
// full wire form, so a client can feed it straight back into faultier.Decode
// (or a registry) and recover the fault with its cause chain intact.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"faultier.dev/faultier"
	"faultier.dev/faultier/statusmap"
	"faultier.dev/faultier/wire"
)

// Meta carries extra context that the HTTP layer can add on top of the
// fault. All fields are optional and typically come from request context,
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int
}

// view is the response envelope. The fault's wire form stays intact under
// "error"; transport metadata lives beside it rather than inside it.
type view struct {
	Error             *wire.Fault `json:"error"`
	Correlation       string      `json:"correlation,omitempty"`
	TraceID           string      `json:"traceId,omitempty"`
	SpanID            string      `json:"spanId,omitempty"`
	RetryAfterSeconds int         `json:"retryAfterSeconds,omitempty"`
}

// Writer is a thin adapter that knows how to turn a fault into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper statusmap.Mapper
}

// Write resolves the status via the Mapper and writes the fault's wire form
// wrapped in the response envelope. A nil fault writes nothing.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the fault and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, f *faultier.Fault, meta Meta) {
	if f == nil {
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(w.Mapper.HTTPStatus(f))

	_ = json.NewEncoder(rw).Encode(&view{
		Error:             f.ToSerializable(),
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		SpanID:            meta.SpanID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	})
}

// WriteError is Write for arbitrary errors. Faults (direct or wrapped) pass
// through unchanged; anything else is wrapped into a synthetic UnknownError
// fault carrying the original as its cause, so the body is always a
// decodable fault payload.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	var f *faultier.Fault
	if !errors.As(err, &f) {
		f = faultier.MustNew(faultier.TagUnknownError, err.Error(),
			faultier.WithCauseOption(err),
		)
	}
	w.Write(rw, f, meta)
}
