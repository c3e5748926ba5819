// Package ops maps operation names to typed handler functions. The table
// is built once at startup; dispatch is a plain map lookup with no
// reflection or runtime registration.
package ops

import (
	"context"
	"encoding/json"

	"github.com/ducktide/factory-service/pkg/apperrors"
)

// HandlerFunc consumes a raw JSON payload and returns a JSON-marshalable
// result.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (interface{}, error)

type Registry struct {
	handlers map[string]HandlerFunc
	names    []string
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[string]HandlerFunc{}}
}

func (r *Registry) Register(name string, handler HandlerFunc) {
	if _, exists := r.handlers[name]; !exists {
		r.names = append(r.names, name)
	}
	r.handlers[name] = handler
}

func (r *Registry) Dispatch(ctx context.Context, name string, payload json.RawMessage) (interface{}, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, apperrors.NotFound("operation %s", name)
	}
	return handler(ctx, payload)
}

// Names returns operation names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// typed adapts a strongly typed handler to HandlerFunc, rejecting
// malformed payloads at the boundary.
func typed[I any](fn func(ctx context.Context, input I) (interface{}, error)) HandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
		var input I
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return nil, apperrors.Validation("malformed payload: %v", err)
			}
		}
		return fn(ctx, input)
	}
}
