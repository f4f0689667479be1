package packet

import (
	"strings"

	"github.com/axmq/mqtt311/buffer"
)

// PublishPacket is an MQTT PUBLISH packet. HasPacketIdentifier is true,
// and PacketIdentifier is carried on the wire, iff the fixed header's QoS
// is 1 or 2 (spec.md section 3). A PacketIdentifier of 0 is not rejected.
type PublishPacket struct {
	Header              FixedHeader
	TopicName           string
	PacketIdentifier    uint16
	HasPacketIdentifier bool
	ApplicationMessage  string
}

func (p *PublishPacket) Type() ControlPacketType    { return Publish }
func (p *PublishPacket) FixedHeaderOf() FixedHeader { return p.Header }

func validateTopicName(topic string) error {
	if topic == "" {
		return &Error{Err: ErrMalformedPacket, Message: "empty publish topic name"}
	}
	if strings.ContainsAny(topic, "+#") {
		return &Error{Err: ErrMalformedPacket, Message: "publish topic name contains a wildcard"}
	}
	return nil
}

func decodePublish(buf buffer.Buffer, fh FixedHeader) (*PublishPacket, error) {
	topicName, err := readUTF8String(buf)
	if err != nil {
		return nil, err
	}
	if err := validateTopicName(topicName); err != nil {
		return nil, err
	}

	p := &PublishPacket{Header: fh, TopicName: topicName}

	if fh.QoS == QoS1 || fh.QoS == QoS2 {
		idBytes := buf.ReadN(2)
		if len(idBytes) < 2 {
			return nil, &Error{Err: ErrPacketTooShort, Message: "publish packet identifier"}
		}
		id, _ := beBytesToUint16(idBytes)
		p.PacketIdentifier = id
		p.HasPacketIdentifier = true
	}

	// The application message shares the length-prefixed MQTT UTF-8 string
	// wire format with every other string field in this codec (confirmed
	// against original_source's payload parser, which reuses the same
	// UTF-8 string reader here).
	message, err := readUTF8String(buf)
	if err != nil {
		return nil, err
	}
	p.ApplicationMessage = message

	return p, nil
}

func encodePublish(buf buffer.Buffer, p *PublishPacket) error {
	if err := validateTopicName(p.TopicName); err != nil {
		return err
	}
	if err := writeUTF8String(buf, p.TopicName); err != nil {
		return err
	}

	wantID := p.Header.QoS == QoS1 || p.Header.QoS == QoS2
	if wantID != p.HasPacketIdentifier {
		return &Error{Err: ErrMalformedPacket, Message: "packet identifier presence does not match QoS"}
	}
	if wantID {
		idBytes, _ := usizeToBEUint16Bytes(int(p.PacketIdentifier))
		buf.Write(idBytes[:])
	}

	return writeUTF8String(buf, p.ApplicationMessage)
}
