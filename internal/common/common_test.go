package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	err := Deserialize.WithError(errors.New("missing field `tags`"))
	assert.Equal(t, "Deserialize error: missing field `tags`", err.Error())

	wrapped := fmt.Errorf("build filter: %w", err)
	assert.True(t, errors.Is(wrapped, ErrDeserialize))
	assert.False(t, errors.Is(wrapped, ErrArgs))

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, Deserialize, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("eof")
	err := Io.WithError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "Parse error: line 3", Parse.Errorf("line %d", 3).Error())
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte(`{"tags": ["助詞"]}`))
	assert.Len(t, a, 32)
	assert.Equal(t, a, Fingerprint([]byte(`{"tags": ["助詞"]}`)))
	assert.NotEqual(t, a, Fingerprint([]byte(`{"tags": ["記号"]}`)))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	assert.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("staging", "")
	assert.Error(t, err)

	_, err = NewLogger("dev", "loud")
	assert.Error(t, err)
}
