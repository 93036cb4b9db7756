// Package try carries a value-or-error pair through a channel. It exists
// because a Go channel can only carry one type, and request/response
// dispatch (package actor) needs to hand either a result or a handler
// panic/error back across the response channel.
package try

// Try holds either a successful Value or an Error, never meaningfully both.
type Try[A any] struct {
	Value A
	Error error
}

// IsFailure reports whether Error is set.
func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

// Get unwraps the pair into the conventional (value, error) shape.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}
