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
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTP binds an HTTP status to the given fault tag. A later option for
// the same tag replaces the earlier one; user rules also replace the seeded
// library defaults.
func WithHTTP(tagName string, status int) Option {
	return func(b *builder) { b.httpRules[tagName] = status }
}

// WithGRPC binds a gRPC code to the given fault tag. A later option for the
// same tag replaces the earlier one; user rules also replace the seeded
// library defaults.
func WithGRPC(tagName string, c codes.Code) Option {
	return func(b *builder) { b.grpcRules[tagName] = c }
}

// WithRule binds both transports for the given fault tag in one step.
func WithRule(tagName string, st Status) Option {
	return func(b *builder) {
		b.httpRules[tagName] = st.HTTP
		b.grpcRules[tagName] = st.GRPC
	}
}

// WithFallback replaces the ultimate fallback applied when no tag in the
// cause chain has a rule. The default is 500 / codes.Internal.
func WithFallback(st Status) Option {
	return func(b *builder) { b.fallback = st }
}
