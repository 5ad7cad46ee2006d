package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("key not found")
	err := WrapErrorf(orig, ErrNotFound, "graph %s not found", "solo")

	assert.ErrorIs(t, err, orig)
	assert.Equal(t, "graph solo not found: key not found", err.Error())

	var serverErr *Error
	assert.True(t, errors.As(err, &serverErr))
	assert.Equal(t, ErrNotFound, serverErr.Code())
	assert.Equal(t, "graph solo not found", serverErr.Message())

	err = NewErrorf(ErrBadParamInput, "max_count must be positive")
	assert.Equal(t, "max_count must be positive", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
