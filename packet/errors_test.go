package packet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	err := newQoSLevelNotSupported(3)
	assert.True(t, errors.Is(err, ErrQoSLevelNotSupported))

	var packetErr *Error
	assert.True(t, errors.As(err, &packetErr))
	b, ok := packetErr.ByteValue()
	assert.True(t, ok)
	assert.Equal(t, byte(3), b)
}

func TestErrorMessageIncludesSentinelText(t *testing.T) {
	err := &Error{Err: ErrMalformedPacket, Message: "extra context"}
	assert.Contains(t, err.Error(), "malformed packet")
	assert.Contains(t, err.Error(), "extra context")
}

func TestCodeLengthErrorCarriesLengths(t *testing.T) {
	err := newCodeLengthError(2, 1)
	expected, actual, ok := err.Lengths()
	assert.True(t, ok)
	assert.Equal(t, 2, expected)
	assert.Equal(t, 1, actual)
}

func TestUsizeConversionErrorCarriesValue(t *testing.T) {
	err := newUsizeConversion(70000, "u16")
	value, target, ok := err.UsizeConversionValue()
	assert.True(t, ok)
	assert.Equal(t, uint64(70000), value)
	assert.Equal(t, "u16", target)
}

func TestMQTTInvalidCodeCarriesCodePoint(t *testing.T) {
	err := newMQTTInvalidCode(0xFFFE)
	cp, ok := err.CodePointValue()
	assert.True(t, ok)
	assert.Equal(t, uint32(0xFFFE), cp)
}
