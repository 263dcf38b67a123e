package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindInvalidTransition, KindOf(InvalidTransition("illegal move")))
	assert.Equal(t, KindAuth, KindOf(Auth("denied")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	inner := NotFound("missing")
	wrapped := fmt.Errorf("loading record: %w", inner)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindConflict))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "missing", NotFound("missing").Error())

	cause := errors.New("row not found")
	err := Wrap(KindNotFound, "missing", cause)
	assert.Equal(t, "missing: row not found", err.Error())
	assert.ErrorIs(t, err, cause)
}
