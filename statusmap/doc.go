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

// Package statusmap resolves transport statuses (HTTP and gRPC) for faults.
//
// A Mapper is an immutable snapshot built once via New from per-tag rules:
//
//	m, err := statusmap.New(
//	    statusmap.WithHTTP("NotFound", 404),
//	    statusmap.WithGRPC("NotFound", codes.NotFound),
//	    statusmap.WithRule("DatabaseError", statusmap.Status{HTTP: 503, GRPC: codes.Unavailable}),
//	)
//
// Resolution walks the fault's cause chain head-to-root and takes the first
// tag that has a rule; with no match anywhere in the chain, the fallback
// applies (500 / codes.Internal unless overridden). Walking the chain means
// a thin wrapper fault without its own rule inherits the status of the
// failure it wraps, which is usually what a boundary wants.
//
// Mappers are fully thread-safe after construction and designed for
// long-lived reuse by the httpx and grpcx adapters.
package statusmap
