package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("DB_ERROR", "apply schema", cause)

	assert.Equal(t, "DB_ERROR: apply schema: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewAppError("CONFIG_ERROR", "missing key", nil)
	assert.Equal(t, "CONFIG_ERROR: missing key", bare.Error())
}

func TestWrapError(t *testing.T) {
	cause := errors.New("locked")
	err := WrapError(cause, "open run database")
	require.Error(t, err)
	assert.Equal(t, "open run database: locked", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, WrapError(nil, "ignored"))
}
