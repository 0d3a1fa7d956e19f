package errs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := errors.Wrap(errors.WithStack(InvalidShape), "memo payload length 12 out of range")
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, InvalidShape, kind)
	assert.Equal(t, "INVALID_SHAPE", kind.Code())

	_, ok = KindOf(errors.New("connection refused"))
	assert.False(t, ok)
}
