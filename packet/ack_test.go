package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAckPacketsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pkt  Packet
		want ControlPacketType
	}{
		{"puback", &PubAckPacket{Header: FixedHeader{Type: PubAck}, PacketIdentifier: 1}, PubAck},
		{"pubrec", &PubRecPacket{Header: FixedHeader{Type: PubRec}, PacketIdentifier: 2}, PubRec},
		{"pubrel", &PubRelPacket{Header: FixedHeader{Type: PubRel}, PacketIdentifier: 3}, PubRel},
		{"pubcomp", &PubCompPacket{Header: FixedHeader{Type: PubComp}, PacketIdentifier: 4}, PubComp},
		{"unsuback", &UnsubAckPacket{Header: FixedHeader{Type: UnsubAck}, PacketIdentifier: 5}, UnsubAck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.pkt)
			require.NoError(t, err)

			decoded, err := DecodeBytes(data)
			require.NoError(t, err)

			assert.Equal(t, tt.want, decoded.Type())
			assert.Equal(t, uint32(2), decoded.FixedHeaderOf().RemainingLength)
		})
	}
}

func TestPubRelRequiresFixedFlags(t *testing.T) {
	data := []byte{0x60, 0x02, 0x00, 0x01} // flags nibble 0x0 instead of required 0x2
	_, err := DecodeBytes(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFixedHeaderFlags)
}
