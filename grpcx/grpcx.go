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

// Package grpcx carries faults across gRPC boundaries.
//
// The server interceptor turns a fault returned by a handler into a gRPC
// status whose details hold the fault's full wire form, so the client side
// can reconstruct the fault — tag, payload, meta and cause chain intact —
// with FaultFromStatus.
package grpcx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"faultier.dev/faultier"
	"faultier.dev/faultier/statusmap"
	"faultier.dev/faultier/wire"
)

// Meta holds optional transport metadata attached to outgoing statuses.
// All fields are optional.
type Meta struct {
	// Domain names the service the ErrorInfo detail originates from,
	// typically the primary API host.
	Domain string

	// Metadata is merged into the ErrorInfo detail on top of the fault's
	// own merged chain context, replacing keys it shares with it.
	Metadata map[string]string
}

// MetaFn extracts Meta from context and the fault being translated.
// It can return an empty Meta if nothing is available.
type MetaFn func(ctx context.Context, f *faultier.Fault) Meta

// Decoder reconstructs a fault from its wire JSON. *registry.Registry
// satisfies it; DecoderFunc adapts the generic faultier.Decode.
type Decoder interface {
	Decode(data []byte) (*faultier.Fault, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(data []byte) (*faultier.Fault, error)

// Decode calls fn.
func (fn DecoderFunc) Decode(data []byte) (*faultier.Fault, error) { return fn(data) }

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// faults into gRPC errors.
//
// The provided statusmap.Mapper resolves the transport code from the fault's
// tag (walking the cause chain as usual). The status carries three details:
//
//   - errdetails.ErrorInfo with the tag as reason plus merged metadata;
//   - a structpb.Struct holding the fault's complete wire form;
//   - errdetails.DebugInfo with the stack, when one was captured.
//
// Errors that are not faults (directly or via errors.As) pass through
// untouched. The optional MetaFn supplies per-request metadata; nil means no
// extra metadata.
func UnaryServerInterceptor(m statusmap.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *faultier.Fault) Meta { return Meta{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var f *faultier.Fault
		if !errors.As(err, &f) {
			// Not ours — return as-is.
			return nil, err
		}

		base := status.New(m.GRPCStatus(f), f.Message)

		// Try to attach details. If anything fails — return base: a lossy
		// status still beats swallowing the error.
		if with, err := base.WithDetails(buildDetails(f, metaFn(ctx, f))...); err == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

func buildDetails(f *faultier.Fault, meta Meta) []protoadapt.MessageV1 {
	details := make([]protoadapt.MessageV1, 0, 3)

	details = append(details, &errdetails.ErrorInfo{
		Reason:   f.Tag(),
		Domain:   meta.Domain,
		Metadata: errorInfoMetadata(f, meta),
	})

	if s := faultStruct(f); s != nil {
		details = append(details, s)
	}

	if f.Stack != "" {
		details = append(details, &errdetails.DebugInfo{
			StackEntries: strings.Split(f.Stack, "\n"),
			Detail:       f.Details,
		})
	}
	return details
}

// errorInfoMetadata flattens the fault's merged chain context to strings and
// overlays the per-request metadata on top.
func errorInfoMetadata(f *faultier.Fault, meta Meta) map[string]string {
	ctx := f.Context()
	if len(ctx) == 0 && len(meta.Metadata) == 0 {
		return nil
	}
	out := make(map[string]string, len(ctx)+len(meta.Metadata))
	for k, v := range ctx {
		out[k] = fmt.Sprint(v)
	}
	for k, v := range meta.Metadata {
		out[k] = v
	}
	return out
}

// faultStruct renders the fault's wire form as a structpb.Struct. The JSON
// round trip coerces every payload value into the structpb value domain.
// Returns nil when the fault cannot be rendered; details are best-effort.
func faultStruct(f *faultier.Fault) *structpb.Struct {
	data, err := json.Marshal(f)
	if err != nil {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	s, err := structpb.NewStruct(obj)
	if err != nil {
		return nil
	}
	return s
}

// FaultFromStatus pulls a fault out of a gRPC status, if one was embedded by
// the interceptor. Reconstruction is generic: every tag decodes to a plain
// fault. Use FaultFromStatusUsing with a registry to restore registered
// variants.
func FaultFromStatus(st *status.Status) (*faultier.Fault, bool) {
	return FaultFromStatusUsing(st, DecoderFunc(faultier.Decode))
}

// FaultFromStatusUsing is FaultFromStatus with a custom decoder, typically a
// *registry.Registry.
func FaultFromStatusUsing(st *status.Status, dec Decoder) (*faultier.Fault, bool) {
	if st == nil || dec == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		obj := s.AsMap()
		if marker, _ := obj[wire.Marker].(bool); !marker {
			continue
		}
		data, err := json.Marshal(obj)
		if err != nil {
			continue
		}
		f, err := dec.Decode(data)
		if err != nil {
			continue
		}
		return f, true
	}
	return nil, false
}
