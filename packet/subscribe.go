package packet

import "github.com/axmq/mqtt311/buffer"

// Subscription is one (topic filter, requested QoS) pair in a SUBSCRIBE
// payload. Unlike PUBLISH topic names, topic filters may contain the
// wildcards '+' and '#'; this codec does not validate filter syntax
// beyond what the wire format requires, leaving filter-pattern validation
// to the subscription router (out of scope here).
type Subscription struct {
	TopicFilter  string
	RequestedQoS QoS
}

// SubscribePacket is an MQTT SUBSCRIBE packet.
type SubscribePacket struct {
	Header           FixedHeader
	PacketIdentifier uint16
	Subscriptions    []Subscription
}

func (p *SubscribePacket) Type() ControlPacketType    { return Subscribe }
func (p *SubscribePacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodeSubscribe(buf buffer.Buffer, fh FixedHeader) (*SubscribePacket, error) {
	id, err := decodePacketIdentifier(buf)
	if err != nil {
		return nil, err
	}

	var subs []Subscription
	for !buf.Empty() {
		topicFilter, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}

		qosByte, ok := buf.ReadByte()
		if !ok {
			return nil, &Error{Err: ErrPacketTooShort, Message: "subscribe requested QoS"}
		}
		qos := QoS(qosByte)
		if qos > QoS2 {
			return nil, &Error{Err: ErrMalformedPacket, Message: "subscribe requested QoS out of range"}
		}

		subs = append(subs, Subscription{TopicFilter: topicFilter, RequestedQoS: qos})
	}

	if len(subs) == 0 {
		return nil, &Error{Err: ErrMalformedPacket, Message: "subscribe packet with no subscriptions"}
	}

	return &SubscribePacket{Header: fh, PacketIdentifier: id, Subscriptions: subs}, nil
}

func encodeSubscribe(buf buffer.Buffer, p *SubscribePacket) error {
	if len(p.Subscriptions) == 0 {
		return &Error{Err: ErrMalformedPacket, Message: "subscribe packet with no subscriptions"}
	}

	if err := encodePacketIdentifier(buf, p.PacketIdentifier); err != nil {
		return err
	}

	for _, sub := range p.Subscriptions {
		if !sub.RequestedQoS.IsValid() {
			return newQoSLevelNotSupported(byte(sub.RequestedQoS))
		}
		if err := writeUTF8String(buf, sub.TopicFilter); err != nil {
			return err
		}
		buf.WriteByte(byte(sub.RequestedQoS))
	}

	return nil
}
