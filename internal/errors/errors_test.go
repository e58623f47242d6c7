package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := UnknownCharacter("Hugo")
	wrapped := Wrapf(base, "failed to damage %s", "Hugo")

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "failed to damage Hugo: no character named \"Hugo\"", wrapped.Error())
	assert.Equal(t, "Hugo", GetMeta(wrapped)["name"])

	wrapped.WithMeta("op", "damage")
	assert.NotContains(t, base.Meta, "op")
}

func TestWrap_PlainError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	wrapped := Wrap(cause, "save failed")

	assert.Equal(t, CodeUnknown, GetCode(wrapped))
	assert.Same(t, cause, errors.Unwrap(wrapped))
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, WrapWithCode(nil, CodeInternal, "nothing"))
}

func TestPersistence_KeepsCause(t *testing.T) {
	cause := NotFoundf("no save under %q", "auto.save")
	err := Persistence(cause, "failed to save tracker")

	require.True(t, IsPersistence(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, errors.Is(err, cause))

	var inner *Error
	require.True(t, errors.As(errors.Unwrap(err), &inner))
	assert.Equal(t, CodeNotFound, inner.Code)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "duplicate", err: DuplicateName("Link"), check: IsAlreadyExists},
		{name: "undo", err: NothingToUndo(), check: IsNothingToUndo},
		{name: "redo", err: NothingToRedo(), check: IsNothingToRedo},
		{name: "invalid", err: InvalidArgumentf("level %d", 0), check: IsInvalidArgument},
		{name: "wrapped invalid", err: fmt.Errorf("outer: %w", InvalidArgument("bad")), check: IsInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, IsPersistence(tt.err))
		})
	}

	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.Equal(t, CodeUnknown, GetCode(nil))
	assert.Nil(t, GetMeta(fmt.Errorf("plain")))
}
