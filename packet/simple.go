package packet

import "github.com/axmq/mqtt311/buffer"

// PingReqPacket, PingRespPacket, and DisconnectPacket carry neither a
// variable header nor a payload: their fixed header alone is the whole
// wire packet.

type PingReqPacket struct {
	Header FixedHeader
}

func (p *PingReqPacket) Type() ControlPacketType    { return PingReq }
func (p *PingReqPacket) FixedHeaderOf() FixedHeader { return p.Header }

type PingRespPacket struct {
	Header FixedHeader
}

func (p *PingRespPacket) Type() ControlPacketType    { return PingResp }
func (p *PingRespPacket) FixedHeaderOf() FixedHeader { return p.Header }

type DisconnectPacket struct {
	Header FixedHeader
}

func (p *DisconnectPacket) Type() ControlPacketType    { return Disconnect }
func (p *DisconnectPacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodePingReq(_ buffer.Buffer, fh FixedHeader) (*PingReqPacket, error) {
	return &PingReqPacket{Header: fh}, nil
}

func encodePingReq(_ buffer.Buffer, _ *PingReqPacket) error { return nil }

func decodePingResp(_ buffer.Buffer, fh FixedHeader) (*PingRespPacket, error) {
	return &PingRespPacket{Header: fh}, nil
}

func encodePingResp(_ buffer.Buffer, _ *PingRespPacket) error { return nil }

func decodeDisconnect(_ buffer.Buffer, fh FixedHeader) (*DisconnectPacket, error) {
	return &DisconnectPacket{Header: fh}, nil
}

func encodeDisconnect(_ buffer.Buffer, _ *DisconnectPacket) error { return nil }
