package apperr

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "unknown sound: %s"}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt("bell")

	assert.Equal(t, "unknown sound: bell", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, "unknown sound: %s", errTemplate.Message)
}

func TestWrap(t *testing.T) {
	other := &Error{Message: "other"}

	err := errTemplate.Fmt("bell").Wrap(fs.ErrNotExist)

	assert.Equal(t, "unknown sound: bell: file does not exist", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, other))
}
