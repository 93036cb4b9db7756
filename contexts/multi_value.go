package contexts

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// WithMultipleValues attaches multiple key-value pairs to a context in one
// shallow wrapper, instead of chaining one context.WithValue call per
// override the way envutil.WithEnvOverrides used to.
//
// Type parameter Key must be comparable. The function panics if parent is
// nil or if vals is nil; an empty map is allowed and produces a valid,
// useless wrapper.
func WithMultipleValues[Key comparable](parent context.Context, vals map[Key]any) context.Context {
	if parent == nil {
		panic("cannot create context from nil parent")
	}

	if vals == nil {
		panic("nil vals passed to WithMultiValue")
	}

	return &multiValueCtx[Key]{parent, vals}
}

// multiValueCtx embeds the parent context and adds a map of values. Value
// checks the local map first, then delegates to the parent.
type multiValueCtx[Key comparable] struct {
	context.Context //nolint:containedctx

	vals map[Key]any
}

func stringify(v any) string {
	switch s := v.(type) {
	case fmt.Stringer:
		return s.String()
	case string:
		return s
	case nil:
		return "<nil>"
	}

	return reflect.TypeOf(v).String()
}

func contextName(c context.Context) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return reflect.TypeOf(c).String()
}

// String renders the wrapper's key-value pairs for debugging. Map iteration
// order is non-deterministic, so the pair ordering is too.
func (c *multiValueCtx[T]) String() string {
	if len(c.vals) == 0 {
		return contextName(c.Context) + ".WithMultipleValues()"
	}

	var builder strings.Builder

	builder.WriteString(contextName(c.Context))
	builder.WriteString(".WithMultipleValues(")

	first := true
	for k, v := range c.vals {
		if !first {
			builder.WriteString(", ")
		}

		first = false

		builder.WriteString(stringify(k))
		builder.WriteString("=")
		builder.WriteString(stringify(v))
	}

	builder.WriteString(")")

	return builder.String()
}

// Value implements context.Context: a key whose type is exactly T is
// looked up in the local map first, then the lookup falls through to the
// parent context.
func (c *multiValueCtx[T]) Value(key any) any {
	if c.vals != nil {
		if reflect.TypeOf(key) == reflect.TypeFor[T]() {
			//nolint:forcetypeassert
			typedKey := key.(T)

			v, found := c.vals[typedKey]
			if found {
				return v
			}
		}
	}

	return c.Context.Value(key)
}
