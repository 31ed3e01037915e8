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
	"net/http"

	"google.golang.org/grpc/codes"
)

// builder accumulates rules while options run. It is a transient structure:
// New validates and freezes its contents into an immutable mapper, so no
// reference to builder state survives construction.
type builder struct {
	// httpRules maps a fault tag to the HTTP status it resolves to.
	// Keys are raw option input here; they are normalized and validated
	// when the snapshot is frozen.
	httpRules map[string]int

	// grpcRules maps a fault tag to the gRPC code it resolves to.
	grpcRules map[string]codes.Code

	// fallback applies when no tag anywhere in the cause chain has a rule.
	fallback Status
}

func newBuilder() *builder {
	return &builder{
		httpRules: make(map[string]int),
		grpcRules: make(map[string]codes.Code),
		fallback:  Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	}
}
