package packet

import "github.com/axmq/mqtt311/buffer"

// decodeFixedHeader reads the first byte (packet type + flags) and the
// remaining-length varint from buf, validating the flags against the
// per-packet-type table (spec.md section 4.5).
func decodeFixedHeader(buf buffer.Buffer) (FixedHeader, error) {
	first, ok := buf.ReadByte()
	if !ok {
		return FixedHeader{}, &Error{Err: ErrPacketTooShort, Message: "fixed header"}
	}

	t := ControlPacketType(highNibble(first))
	if t == 0 || t > Disconnect {
		return FixedHeader{}, &Error{Err: ErrInvalidPacketType, Message: t.String()}
	}

	flags := lowNibble(first)
	fh := FixedHeader{Type: t, Flags: flags}

	if t == Publish {
		fh.DUP = flags&0x08 != 0
		fh.QoS = QoS((flags & 0x06) >> 1)
		fh.Retain = flags&0x01 != 0
		if !fh.QoS.IsValid() {
			return FixedHeader{}, newQoSLevelNotSupported(byte(fh.QoS))
		}
	} else if want, fixed := requiredLowNibble(t); fixed && flags != want {
		return FixedHeader{}, &Error{Err: ErrInvalidFixedHeaderFlags, Message: t.String()}
	}

	remLen, err := decodeRemainingLength(buf)
	if err != nil {
		return FixedHeader{}, err
	}
	fh.RemainingLength = remLen

	return fh, nil
}

// encodeFixedHeader appends fh's wire encoding to buf. RemainingLength is
// taken as given; the orchestrator is responsible for recomputing it from
// the actual variable header + payload length before calling this.
func encodeFixedHeader(buf buffer.Buffer, fh FixedHeader) error {
	var flags byte
	if fh.Type == Publish {
		if !fh.QoS.IsValid() {
			return newQoSLevelNotSupported(byte(fh.QoS))
		}
		if fh.DUP {
			flags |= 0x08
		}
		flags |= byte(fh.QoS) << 1
		if fh.Retain {
			flags |= 0x01
		}
	} else if want, fixed := requiredLowNibble(fh.Type); fixed {
		flags = want
	} else {
		flags = fh.Flags
	}

	first := byte(fh.Type)<<4 | flags
	buf.WriteByte(first)

	return encodeRemainingLength(buf, fh.RemainingLength)
}
