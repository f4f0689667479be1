package packet

import "github.com/axmq/mqtt311/buffer"

// MaxRemainingLength is the largest value the 4-byte variable-byte integer
// encoding can represent: 0xFF 0xFF 0xFF 0x7F.
const MaxRemainingLength uint32 = 268435455

// decodeRemainingLength decodes MQTT's variable-byte integer encoding of
// the fixed header's remaining length field. Per MQTT 3.1.1 section
// 2.2.3: 1-4 bytes, continuation bit (0x80) set on every byte but the
// last, malformed if the continuation bit is still set after the 4th
// byte.
func decodeRemainingLength(buf buffer.Buffer) (uint32, error) {
	var value uint32
	var multiplier uint32 = 1

	for i := 0; i < 4; i++ {
		b, ok := buf.ReadByte()
		if !ok {
			return 0, &Error{Err: ErrPacketTooShort, Message: "remaining length"}
		}

		value += uint32(b&0x7F) * multiplier

		if b&0x80 == 0 {
			return value, nil
		}

		multiplier *= 128
	}

	return 0, &Error{Err: ErrMalformedRemainingLength}
}

// encodeRemainingLength appends the variable-byte integer encoding of
// value to buf. value must fit in 28 bits (<= MaxRemainingLength).
func encodeRemainingLength(buf buffer.Buffer, value uint32) error {
	if value > MaxRemainingLength {
		return &Error{Err: ErrMalformedRemainingLength, Message: "value exceeds 268435455"}
	}

	for {
		b := byte(value % 128)
		value /= 128
		if value > 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if value == 0 {
			return nil
		}
	}
}

// sizeRemainingLength returns the number of bytes encodeRemainingLength
// would write for value, or 0 if value is out of range.
func sizeRemainingLength(value uint32) int {
	switch {
	case value > MaxRemainingLength:
		return 0
	case value <= 127:
		return 1
	case value <= 16383:
		return 2
	case value <= 2097151:
		return 3
	default:
		return 4
	}
}
