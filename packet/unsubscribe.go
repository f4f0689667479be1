package packet

import "github.com/axmq/mqtt311/buffer"

// UnsubscribePacket is an MQTT UNSUBSCRIBE packet.
type UnsubscribePacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
	TopicFilters     []string
}

func (p *UnsubscribePacket) Type() ControlPacketType    { return Unsubscribe }
func (p *UnsubscribePacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodeUnsubscribe(buf buffer.Buffer, fh FixedHeader) (*UnsubscribePacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}

	var filters []string
	for !buf.Empty() {
		filter, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}

	if len(filters) == 0 {
		return nil, &Error{Err: ErrMalformedPacket, Message: "unsubscribe packet with no topic filters"}
	}

	return &UnsubscribePacket{Header: fh, PacketIdentifier: id, TopicFilters: filters}, nil
}

func encodeUnsubscribe(buf buffer.Buffer, p *UnsubscribePacket) error {
	if len(p.TopicFilters) == 0 {
		return &Error{Err: ErrMalformedPacket, Message: "unsubscribe packet with no topic filters"}
	}
	if err := encodePacketIdentifier(buf, p.PacketIdentifier); err != nil {
		return err
	}
	for _, filter := range p.TopicFilters {
		if err := writeUTF8String(buf, filter); err != nil {
			return err
		}
	}
	return nil
}
