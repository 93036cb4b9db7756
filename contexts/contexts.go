// Package contexts holds small generic context.Context helpers, trimmed to
// exactly what envutil's context-scoped environment overrides need: a
// type-safe WithValue/GetValue pair and a shallow multi-value wrapper.
// Atomic swap, lifecycle tracking, and debug inspection helpers are
// dropped — nothing here swaps a live context out from under a running
// operation, and there is no request tree to introspect.
package contexts

import "context"

// EnsureContext chooses the first non-nil context passed in. If all values
// are nil, a new context is created.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue is a type-safe wrapper around context.WithValue that stores a
// value of type V with a key of type K. If ctx is nil, a new background
// context is created.
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue is a type-safe wrapper around context.Value that retrieves a
// value of type V using a key of type K. Returns the value and true if
// found and type matches, or the zero value of V and false otherwise.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	val := ctx.Value(key)
	if val == nil {
		return zero, false
	}

	v, ok := val.(V)
	if !ok {
		return zero, false
	}

	return v, true
}
