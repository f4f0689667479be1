package packet

import "github.com/axmq/mqtt311/buffer"

// SubAckPacket is an MQTT SUBACK packet.
type SubAckPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
	ReturnCodes      []SubAckReturnCode
}

func (p *SubAckPacket) Type() ControlPacketType    { return SubAck }
func (p *SubAckPacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodeSubAck(buf buffer.Buffer, fh FixedHeader) (*SubAckPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}

	var codes []SubAckReturnCode
	for !buf.Empty() {
		b, ok := buf.ReadByte()
		if !ok {
			break
		}
		code := SubAckReturnCode(b)
		if !code.IsValid() {
			return nil, &Error{Err: ErrMalformedPacket, Message: "invalid SUBACK return code"}
		}
		codes = append(codes, code)
	}

	return &SubAckPacket{Header: fh, PacketIdentifier: id, ReturnCodes: codes}, nil
}

func encodeSubAck(buf buffer.Buffer, p *SubAckPacket) error {
	if err := encodePacketIdentifier(buf, p.PacketIdentifier); err != nil {
		return err
	}
	for _, code := range p.ReturnCodes {
		if !code.IsValid() {
			return &Error{Err: ErrMalformedPacket, Message: "invalid SUBACK return code"}
		}
		buf.WriteByte(byte(code))
	}
	return nil
}
