package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNibbleSplit(t *testing.T) {
	assert.Equal(t, byte(0x03), highNibble(0x3D))
	assert.Equal(t, byte(0x0D), lowNibble(0x3D))
}

func TestBEBytesToUint16(t *testing.T) {
	v, err := beBytesToUint16([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)

	_, err = beBytesToUint16([]byte{0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodeLengthError)
}

func TestUsizeToBEUint16Bytes(t *testing.T) {
	b, err := usizeToBEUint16Bytes(0x0102)
	require.NoError(t, err)
	assert.Equal(t, [2]byte{0x01, 0x02}, b)

	_, err = usizeToBEUint16Bytes(70000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsizeConversion)

	_, err = usizeToBEUint16Bytes(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsizeConversion)
}
