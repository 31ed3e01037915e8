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

	"faultier.dev/faultier"
)

// Library-tag defaults seeded into every mapper before user options run.
// A WithHTTP/WithGRPC/WithRule option for the same tag replaces the default.
//
// Only the tags a service is likely to surface at a boundary are seeded: a
// rejected wire payload is the caller's fault, and the synthetic wrappers
// around unregistered errors are by definition of unknown origin. The
// remaining library tags (reserved fields, registry mismatches, merge
// conflicts) are programmer errors and fall through to the 500/Internal
// fallback anyway.
var (
	defaultHTTP = map[string]int{
		faultier.TagDeserialize:   http.StatusBadRequest,
		faultier.TagUnknownError:  http.StatusInternalServerError,
		faultier.TagUnknownThrown: http.StatusInternalServerError,
	}

	defaultGRPC = map[string]codes.Code{
		faultier.TagDeserialize:   codes.InvalidArgument,
		faultier.TagUnknownError:  codes.Unknown,
		faultier.TagUnknownThrown: codes.Unknown,
	}
)
