package packet

// lowNibble and highNibble split the MQTT fixed header's first byte into
// its flags (bits 3-0) and control packet type (bits 7-4), mirroring the
// teacher's ParseFixedHeader byte-splitting idiom.
func lowNibble(b byte) byte  { return b & 0x0F }
func highNibble(b byte) byte { return b >> 4 }

// beBytesToUint16 decodes a big-endian 16-bit integer from the front of b.
// It fails with CodeLengthError if fewer than 2 bytes are available.
func beBytesToUint16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, newCodeLengthError(2, len(b))
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// usizeToBEUint16Bytes encodes n as a big-endian 16-bit integer. It fails
// with UsizeConversion if n exceeds the 16-bit range.
func usizeToBEUint16Bytes(n int) ([2]byte, error) {
	if n > 65535 || n < 0 {
		return [2]byte{}, newUsizeConversion(uint64(n), "u16")
	}
	return [2]byte{byte(n >> 8), byte(n)}, nil
}
