package packet

import (
	"unicode/utf8"

	"github.com/axmq/mqtt311/buffer"
)

// forbiddenCodePoint reports whether r is one of the MQTT-disallowed code
// points (MQTT 3.1.1 section 1.5.3): the null character, the C0/C1 control
// ranges, the non-character block U+FDD0..U+FDEF, and U+FFFE/U+FFFF. The
// byte-order mark U+FEFF is explicitly not in this set.
func forbiddenCodePoint(r rune) bool {
	switch {
	case r == 0x0000:
		return true
	case r >= 0x0001 && r <= 0x001F:
		return true
	case r >= 0x007F && r <= 0x009F:
		return true
	case r >= 0xFDD0 && r <= 0xFDEF:
		return true
	case r == 0xFFFE || r == 0xFFFF:
		return true
	default:
		return false
	}
}

// validateMQTTUTF8 checks every rune of a decoded string against the MQTT
// character-class rules. Surrogate code points need no separate check:
// they cannot occur in data that already passed utf8.Valid.
func validateMQTTUTF8(s string) error {
	for _, r := range s {
		if forbiddenCodePoint(r) {
			return newMQTTInvalidCode(r)
		}
	}
	return nil
}

// readUTF8String decodes a length-prefixed MQTT UTF-8 string from buf:
// two bytes of big-endian length L followed by exactly L bytes. It fails
// with PacketTooShort if buf is exhausted before the length prefix or the
// L string bytes are fully available, and with UTF8DecodingError or
// MQTTInvalidCode if the decoded bytes fail validation.
func readUTF8String(buf buffer.Buffer) (string, error) {
	lenBytes := buf.ReadN(2)
	if len(lenBytes) < 2 {
		return "", &Error{Err: ErrPacketTooShort, Message: "UTF-8 string length prefix"}
	}
	length, err := beBytesToUint16(lenBytes)
	if err != nil {
		return "", &Error{Err: ErrPacketTooShort, Message: "UTF-8 string length prefix"}
	}

	if length == 0 {
		return "", nil
	}

	raw := buf.ReadN(int(length))
	if len(raw) < int(length) {
		return "", &Error{Err: ErrPacketTooShort, Message: "UTF-8 string body"}
	}

	if !utf8.Valid(raw) {
		return "", &Error{Err: ErrUTF8DecodingError}
	}

	s := string(raw)
	if err := validateMQTTUTF8(s); err != nil {
		return "", err
	}

	return s, nil
}

// writeUTF8String validates s against the MQTT character-class rules and
// appends its wire encoding (length prefix then bytes) to buf. It fails
// with UsizeConversion if s is longer than 65535 bytes.
func writeUTF8String(buf buffer.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return &Error{Err: ErrUTF8DecodingError}
	}
	if err := validateMQTTUTF8(s); err != nil {
		return err
	}

	lenBytes, err := usizeToBEUint16Bytes(len(s))
	if err != nil {
		return err
	}

	buf.Write(lenBytes[:])
	buf.Write([]byte(s))
	return nil
}
