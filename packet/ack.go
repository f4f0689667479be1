package packet

import "github.com/axmq/mqtt311/buffer"

// PubAckPacket, PubRecPacket, PubRelPacket, PubCompPacket, and
// UnsubAckPacket all share the same wire shape: a fixed header followed
// by a single two-byte packet identifier and nothing else.

type PubAckPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
}

func (p *PubAckPacket) Type() ControlPacketType    { return PubAck }
func (p *PubAckPacket) FixedHeaderOf() FixedHeader { return p.Header }

type PubRecPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
}

func (p *PubRecPacket) Type() ControlPacketType    { return PubRec }
func (p *PubRecPacket) FixedHeaderOf() FixedHeader { return p.Header }

type PubRelPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
}

func (p *PubRelPacket) Type() ControlPacketType    { return PubRel }
func (p *PubRelPacket) FixedHeaderOf() FixedHeader { return p.Header }

type PubCompPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
}

func (p *PubCompPacket) Type() ControlPacketType    { return PubComp }
func (p *PubCompPacket) FixedHeaderOf() FixedHeader { return p.Header }

type UnsubAckPacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
}

func (p *UnsubAckPacket) Type() ControlPacketType    { return UnsubAck }
func (p *UnsubAckPacket) FixedHeaderOf() FixedHeader { return p.Header }

// decodePacketIdentifier reads the lone two-byte packet identifier
// variable header shared by PUBACK, PUBREC, PUBREL, PUBCOMP, and UNSUBACK.
func decodePacketIdentifier(buf buffer.Buffer) (uint16, error) {
	idBytes := buf.ReadN(2)
	if len(idBytes) < 2 {
		return 0, &Error{Err: ErrPacketTooShort, Message: "packet identifier"}
	}
	id, _ := beBytesToUint16(idBytes)
	return id, nil
}

func encodePacketIdentifier(buf buffer.Buffer, id uint16) error {
	idBytes, _ := usizeToBEUint16Bytes(int(id))
	buf.Write(idBytes[:])
	return nil
}

func decodePubAck(buf buffer.Buffer, fh FixedHeader) (*PubAckPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}
	return &PubAckPacket{Header: fh, PacketIdentifier: id}, nil
}

func encodePubAck(buf buffer.Buffer, p *PubAckPacket) error {
	return encodePacketIdentifier(buf, p.PacketIdentifier)
}

func decodePubRec(buf buffer.Buffer, fh FixedHeader) (*PubRecPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}
	return &PubRecPacket{Header: fh, PacketIdentifier: id}, nil
}

func encodePubRec(buf buffer.Buffer, p *PubRecPacket) error {
	return encodePacketIdentifier(buf, p.PacketIdentifier)
}

func decodePubRel(buf buffer.Buffer, fh FixedHeader) (*PubRelPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}
	return &PubRelPacket{Header: fh, PacketIdentifier: id}, nil
}

func encodePubRel(buf buffer.Buffer, p *PubRelPacket) error {
	return encodePacketIdentifier(buf, p.PacketIdentifier)
}

func decodePubComp(buf buffer.Buffer, fh FixedHeader) (*PubCompPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}
	return &PubCompPacket{Header: fh, PacketIdentifier: id}, nil
}

func encodePubComp(buf buffer.Buffer, p *PubCompPacket) error {
	return encodePacketIdentifier(buf, p.PacketIdentifier)
}

func decodeUnsubAck(buf buffer.Buffer, fh FixedHeader) (*UnsubAckPacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}
	return &UnsubAckPacket{Header: fh, PacketIdentifier: id}, nil
}

func encodeUnsubAck(buf buffer.Buffer, p *UnsubAckPacket) error {
	return encodePacketIdentifier(buf, p.PacketIdentifier)
}
