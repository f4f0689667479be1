// Package packet implements the MQTT 3.1.1 (protocol level 4) control
// packet wire format: the fixed header, the per-packet-type variable
// header and payload, and the cross-field validation rules enforced at
// parse time. It is purely computational — no network I/O, no session
// state, no retries — and every operation runs to completion on the
// caller's goroutine against a buffer the caller exclusively owns.
package packet

import (
	"log/slog"

	"github.com/axmq/mqtt311/buffer"
)

// Packet is the closed sum type of every MQTT 3.1.1 control packet. Every
// concrete packet type in this package implements it; callers recover the
// concrete type with a type switch, as Encode does.
type Packet interface {
	Type() ControlPacketType
	FixedHeaderOf() FixedHeader
}

// decodeOptions carries optional, per-call behavior. There is no
// package-level mutable state: every Decode call is independent and
// multiple decodes may run concurrently on distinct buffers.
type decodeOptions struct {
	trace *slog.Logger
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeOptions)

// WithTrace attaches a structured logger that receives two Debug-level
// records per successful decode: one after the fixed header is parsed and
// one after the whole packet (variable header and payload together) is
// parsed. No separate record marks the variable header. It is nil-safe
// and intended for a
// transport layer wiring this codec into a real connection; the default
// decode path never logs.
func WithTrace(l *slog.Logger) DecodeOption {
	return func(o *decodeOptions) { o.trace = l }
}

func (o *decodeOptions) logf(msg string, args ...any) {
	if o.trace != nil {
		o.trace.Debug(msg, args...)
	}
}

// Decode consumes one complete packet from the front of buf. On error the
// buffer's cursor position is unspecified; the caller must discard it
// rather than reuse it (spec.md section 4.9).
func Decode(buf buffer.Buffer, opts ...DecodeOption) (Packet, error) {
	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	fh, err := decodeFixedHeader(buf)
	if err != nil {
		return nil, err
	}
	o.logf("fixed header decoded", "type", fh.Type.String(), "remaining_length", fh.RemainingLength)

	body := buf.ReadN(int(fh.RemainingLength))
	if len(body) < int(fh.RemainingLength) {
		return nil, &Error{Err: ErrPacketTooShort, Message: "variable header + payload"}
	}
	sub := buffer.New(body)

	var pkt Packet
	switch fh.Type {
	case Connect:
		pkt, err = decodeConnect(sub, fh)
	case ConnAck:
		pkt, err = decodeConnAck(sub, fh)
	case Publish:
		pkt, err = decodePublish(sub, fh)
	case PubAck:
		pkt, err = decodePubAck(sub, fh)
	case PubRec:
		pkt, err = decodePubRec(sub, fh)
	case PubRel:
		pkt, err = decodePubRel(sub, fh)
	case PubComp:
		pkt, err = decodePubComp(sub, fh)
	case Subscribe:
		pkt, err = decodeSubscribe(sub, fh)
	case SubAck:
		pkt, err = decodeSubAck(sub, fh)
	case Unsubscribe:
		pkt, err = decodeUnsubscribe(sub, fh)
	case UnsubAck:
		pkt, err = decodeUnsubAck(sub, fh)
	case PingReq:
		pkt, err = decodePingReq(sub, fh)
	case PingResp:
		pkt, err = decodePingResp(sub, fh)
	case Disconnect:
		pkt, err = decodeDisconnect(sub, fh)
	default:
		return nil, &Error{Err: ErrUnsupportedPacketType, Message: fh.Type.String()}
	}
	if err != nil {
		return nil, err
	}

	if !sub.Empty() {
		return nil, &Error{Err: ErrMalformedPacket, Message: "trailing bytes after packet body"}
	}

	o.logf("packet decoded", "type", fh.Type.String())
	return pkt, nil
}

// DecodeBytes is a convenience wrapper around Decode for callers that
// already have the full packet bytes in memory.
func DecodeBytes(data []byte, opts ...DecodeOption) (Packet, error) {
	return Decode(buffer.New(data), opts...)
}

// Encode serializes p to its complete wire bytes: variable header and
// payload are encoded first so that the fixed header's remaining length
// can be computed from their actual combined size, then the fixed header
// is prepended. Any remaining length the caller set on p's FixedHeader is
// ignored and recomputed.
func Encode(p Packet) ([]byte, error) {
	body := buffer.NewEmpty()
	var err error

	switch v := p.(type) {
	case *ConnectPacket:
		err = encodeConnect(body, v)
	case *ConnAckPacket:
		err = encodeConnAck(body, v)
	case *PublishPacket:
		err = encodePublish(body, v)
	case *PubAckPacket:
		err = encodePubAck(body, v)
	case *PubRecPacket:
		err = encodePubRec(body, v)
	case *PubRelPacket:
		err = encodePubRel(body, v)
	case *PubCompPacket:
		err = encodePubComp(body, v)
	case *SubscribePacket:
		err = encodeSubscribe(body, v)
	case *SubAckPacket:
		err = encodeSubAck(body, v)
	case *UnsubscribePacket:
		err = encodeUnsubscribe(body, v)
	case *UnsubAckPacket:
		err = encodeUnsubAck(body, v)
	case *PingReqPacket:
		err = encodePingReq(body, v)
	case *PingRespPacket:
		err = encodePingResp(body, v)
	case *DisconnectPacket:
		err = encodeDisconnect(body, v)
	default:
		return nil, &Error{Err: ErrUnsupportedPacketType}
	}
	if err != nil {
		return nil, err
	}

	fh := p.FixedHeaderOf()
	fh.Type = p.Type()
	fh.RemainingLength = uint32(body.Len())

	out := buffer.NewEmpty()
	if err := encodeFixedHeader(out, fh); err != nil {
		return nil, err
	}
	out.Write(body.Bytes())

	return out.Bytes(), nil
}
