package optional

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestGet(t *testing.T) {
	t.Parallel()

	some := Some("hello")
	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", val)

	none := None[string]()
	val, ok = none.Get()
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("binding slot was never filled")

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		opt := Some(42)
		assert.Equal(t, 42, opt.GetOrPanic(sentinel))
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		opt := None[int]()

		assert.PanicsWithValue(t, sentinel, func() {
			opt.GetOrPanic(sentinel)
		})
	})
}
