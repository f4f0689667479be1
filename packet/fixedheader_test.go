package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axmq/mqtt311/buffer"
)

func TestDecodeFixedHeaderPublishFlags(t *testing.T) {
	// type=PUBLISH, DUP=1, QoS=2, Retain=1 -> 0011 1101 = 0x3D
	fh, err := decodeFixedHeader(buffer.New([]byte{0x3D, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, Publish, fh.Type)
	assert.True(t, fh.DUP)
	assert.Equal(t, QoS2, fh.QoS)
	assert.True(t, fh.Retain)
	assert.Equal(t, uint32(0), fh.RemainingLength)
}

func TestDecodeFixedHeaderPublishInvalidQoS(t *testing.T) {
	// QoS bits 11 is invalid (QoS 3 does not exist)
	_, err := decodeFixedHeader(buffer.New([]byte{0x36, 0x00}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQoSLevelNotSupported)
}

func TestDecodeFixedHeaderRejectsBadFlags(t *testing.T) {
	// CONNECT requires flags 0x0; 0x1 is invalid.
	_, err := decodeFixedHeader(buffer.New([]byte{0x11, 0x00}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFixedHeaderFlags)
}

func TestDecodeFixedHeaderRejectsReservedType(t *testing.T) {
	_, err := decodeFixedHeader(buffer.New([]byte{0x00, 0x00}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacketType)

	_, err = decodeFixedHeader(buffer.New([]byte{0xF0, 0x00}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacketType)
}

func TestEncodeDecodeFixedHeaderRoundTrip(t *testing.T) {
	fh := FixedHeader{Type: Publish, DUP: true, QoS: QoS1, Retain: false, RemainingLength: 300}

	buf := buffer.NewEmpty()
	require.NoError(t, encodeFixedHeader(buf, fh))

	got, err := decodeFixedHeader(buffer.New(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, fh.Type, got.Type)
	assert.Equal(t, fh.DUP, got.DUP)
	assert.Equal(t, fh.QoS, got.QoS)
	assert.Equal(t, fh.Retain, got.Retain)
	assert.Equal(t, fh.RemainingLength, got.RemainingLength)
}

func TestEncodeFixedHeaderFixedFlags(t *testing.T) {
	buf := buffer.NewEmpty()
	require.NoError(t, encodeFixedHeader(buf, FixedHeader{Type: PubRel, RemainingLength: 2}))
	assert.Equal(t, byte(0x62), buf.Bytes()[0])
}
