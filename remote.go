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

// RemoteError is the reconstruction of a plain (non-fault) error cause that
// crossed the wire. Only the name, message and rendered stack of the
// original error survive serialization, so this is all a receiver gets back.
//
// It implements error and exposes its stack, so re-wrapping a deserialized
// chain with WithCause annotates traces the same way local causes do.
type RemoteError struct {
	// Name is the original error's name slot — for locally produced
	// payloads, the Go type of the error.
	Name string

	// Message is the original Error() text.
	Message string

	// Stack is the original rendered stack trace, possibly empty.
	Stack string
}

var _ error = (*RemoteError)(nil)

// Error implements the built-in error interface.
func (e *RemoteError) Error() string {
	if e.Name != "" {
		return e.Name + ": " + e.Message
	}
	return e.Message
}

// StackTrace returns the rendered stack carried over the wire.
func (e *RemoteError) StackTrace() string { return e.Stack }
