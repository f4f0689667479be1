package packet

import "github.com/axmq/mqtt311/buffer"

// ConnAckPacket is an MQTT CONNACK packet.
type ConnAckPacket struct {
	Header         FixedHeader
	SessionPresent bool
	ReturnCode     ConnectReturnCode
}

func (p *ConnAckPacket) Type() ControlPacketType    { return ConnAck }
func (p *ConnAckPacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodeConnAck(buf buffer.Buffer, fh FixedHeader) (*ConnAckPacket, error) {
	flags, ok := buf.ReadByte()
	if !ok {
		return nil, &Error{Err: ErrPacketTooShort, Message: "connack flags"}
	}
	if flags&0xFE != 0 {
		return nil, &Error{Err: ErrMalformedPacket, Message: "connack flags reserved bits set"}
	}

	code, ok := buf.ReadByte()
	if !ok {
		return nil, &Error{Err: ErrPacketTooShort, Message: "connack return code"}
	}
	if code > byte(NotAuthorized) {
		return nil, &Error{Err: ErrReservedReturnCode, Message: ConnectReturnCode(code).String()}
	}

	return &ConnAckPacket{
		Header:         fh,
		SessionPresent: flags&0x01 != 0,
		ReturnCode:     ConnectReturnCode(code),
	}, nil
}

func encodeConnAck(buf buffer.Buffer, p *ConnAckPacket) error {
	var flags byte
	if p.SessionPresent {
		flags = 0x01
	}
	buf.WriteByte(flags)
	buf.WriteByte(byte(p.ReturnCode))
	return nil
}
