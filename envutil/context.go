package envutil

import (
	"context"

	"github.com/amp-labs/mote/contexts"
)

// envContextKey is a custom type used as the key for storing environment variable
// overrides in a context. Using a custom type prevents collisions with other context
// values and ensures type safety when retrieving values.
type envContextKey string

// WithEnvOverride returns a new context with a single environment variable override.
// This allows you to override environment variables for a specific operation without
// modifying the actual process environment.
//
// The override is stored in the context only. The envutil Reader functions
// (String, Int, Bool, etc.) take no context and read the process environment
// directly; they do not consult overrides stored here.
//
// Example:
//
//	ctx := envutil.WithEnvOverride(context.Background(), "PORT", "9090")
//	// ctx now carries PORT=9090; the process environment is unchanged
//
// This is particularly useful for:
//   - Testing: Override environment variables without affecting other tests
//   - Request-scoped configuration: Different handlers can use different values
//   - Multi-tenant scenarios: Different tenants can have different configuration
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](contexts.EnsureContext(ctx), envContextKey(key), value)
}

// SetEnvOverride configures a single environment variable override using a callback setter function.
// This is used with lazy value overrides to set environment variable overrides without directly
// manipulating a context. The set function is typically provided by lazy override mechanisms
// (e.g., lazy.SetValueOverride) to store the value for later retrieval.
//
// Parameters:
//   - key: The environment variable name to override
//   - value: The override value to use instead of the actual environment variable
//   - set: Callback function that stores the key-value pair. If nil, the function returns early.
//
// This function is typically used in conjunction with lazy value override systems
// where context values need to be configured before a context is created.
func SetEnvOverride(key string, value string, set func(any, any)) {
	if set == nil {
		return
	}

	set(envContextKey(key), value)
}

// WithEnvOverrides returns a new context with multiple environment variable overrides.
// This is a more efficient version of calling WithEnvOverride multiple times, as it
// stores all overrides in a single context operation.
//
// If the provided values map is empty, the original context is returned unchanged
// to avoid unnecessary context allocations.
//
// Example:
//
//	ctx := envutil.WithEnvOverrides(context.Background(), map[string]string{
//		"DATABASE_URL": "postgres://localhost/test",
//		"PORT":         "9090",
//		"LOG_LEVEL":    "debug",
//	})
//	// ctx now carries all three overrides; envutil Reader functions do not read them
//
// This is particularly useful for:
//   - Testing: Set up a complete test environment in one call
//   - Configuration injection: Pass environment-specific config through context
//   - Batch operations: Override multiple settings for a group of operations
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	if len(values) == 0 {
		return ctx
	}

	vals := make(map[envContextKey]any, len(values))
	for k, v := range values {
		vals[envContextKey(k)] = v
	}

	return contexts.WithMultipleValues[envContextKey](contexts.EnsureContext(ctx), vals)
}

// SetEnvOverrides configures multiple environment variable overrides using a callback setter function.
// This is a more efficient version of calling SetEnvOverride multiple times. The set function is
// typically provided by lazy override mechanisms to store each key-value pair for later retrieval.
//
// Parameters:
//   - values: Map of environment variable names to override values
//   - set: Callback function that stores each key-value pair. If nil, the function returns early.
//
// This function is typically used in conjunction with lazy value override systems
// where context values need to be configured before a context is created.
func SetEnvOverrides(values map[string]string, set func(any, any)) {
	if set == nil {
		return
	}

	for k, v := range values {
		set(envContextKey(k), v)
	}
}

// getEnvOverride retrieves an environment variable override from the context.
// It returns the override value and true if found, or an empty string and false
// if no override exists for the given key.
//
// It is the only lookup of these overrides in this package; the envutil Reader
// functions do not call it and read the process environment only.
func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
