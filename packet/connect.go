package packet

import "github.com/axmq/mqtt311/buffer"

// ConnectFlags is the CONNECT packet's single flags byte. NewConnectFlags,
// which the decoder uses, cross-validates the fields (spec.md section 3);
// the fields are exported, so a struct literal bypasses that check, and
// encoding does not re-run it.
type ConnectFlags struct {
	UsernameFlag bool
	PasswordFlag bool
	WillRetain   bool
	WillQoS      QoS
	WillFlag     bool
	CleanSession bool
}

// NewConnectFlags validates the cross-field invariants and returns the
// assembled flags. The caller has already split out the reserved bit and
// must have rejected it before calling this.
func NewConnectFlags(usernameFlag, passwordFlag, willRetain bool, willQoS QoS, willFlag, cleanSession bool) (ConnectFlags, error) {
	if !willQoS.IsValid() {
		return ConnectFlags{}, newInvalidWillQoS(byte(willQoS))
	}
	if !willFlag && (willQoS != QoS0 || willRetain) {
		return ConnectFlags{}, &Error{Err: ErrMalformedPacket, Message: "will QoS/retain set without will flag"}
	}
	if passwordFlag && !usernameFlag {
		return ConnectFlags{}, &Error{Err: ErrMalformedPacket, Message: "password flag set without username flag"}
	}
	return ConnectFlags{
		UsernameFlag: usernameFlag,
		PasswordFlag: passwordFlag,
		WillRetain:   willRetain,
		WillQoS:      willQoS,
		WillFlag:     willFlag,
		CleanSession: cleanSession,
	}, nil
}

func decodeConnectFlags(b byte) (ConnectFlags, error) {
	if b&0x01 != 0 {
		return ConnectFlags{}, &Error{Err: ErrMalformedPacket, Message: "connect flags reserved bit set"}
	}
	return NewConnectFlags(
		b&0x80 != 0,
		b&0x40 != 0,
		b&0x20 != 0,
		QoS((b&0x18)>>3),
		b&0x04 != 0,
		b&0x02 != 0,
	)
}

func (f ConnectFlags) encode() byte {
	var b byte
	if f.CleanSession {
		b |= 0x02
	}
	if f.WillFlag {
		b |= 0x04
		b |= byte(f.WillQoS) << 3
		if f.WillRetain {
			b |= 0x20
		}
	}
	if f.PasswordFlag {
		b |= 0x40
	}
	if f.UsernameFlag {
		b |= 0x80
	}
	return b
}

// validateClientID enforces spec.md section 4.7's client-id rules: every
// character in [A-Za-z0-9], length at most 23, and empty only when
// cleanSession is true.
func validateClientID(clientID string, cleanSession bool) error {
	if clientID == "" {
		if !cleanSession {
			return &Error{Err: ErrInvalidClientID, Message: "empty client id requires clean session"}
		}
		return nil
	}
	if len(clientID) > 23 {
		return &Error{Err: ErrInvalidClientID, Message: "longer than 23 characters"}
	}
	for _, r := range clientID {
		alnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			return &Error{Err: ErrInvalidClientID, Message: "non-alphanumeric character"}
		}
	}
	return nil
}

// ConnectPacket is an MQTT CONNECT packet.
type ConnectPacket struct {
	Header        FixedHeader
	ProtocolLevel ProtocolLevel
	Flags         ConnectFlags
	KeepAlive     uint16
	ClientID      string
	WillTopic     *string
	WillMessage   *string
	Username      *string
	Password      *string
}

func (p *ConnectPacket) Type() ControlPacketType    { return Connect }
func (p *ConnectPacket) FixedHeaderOf() FixedHeader { return p.Header }

func decodeConnect(buf buffer.Buffer, fh FixedHeader) (*ConnectPacket, error) {
	protocolName, err := readUTF8String(buf)
	if err != nil {
		return nil, err
	}
	if protocolName != "MQTT" {
		return nil, newProtocolNameError(protocolName)
	}

	levelByte, ok := buf.ReadByte()
	if !ok {
		return nil, &Error{Err: ErrPacketTooShort, Message: "protocol level"}
	}
	if ProtocolLevel(levelByte) != ProtocolLevel311 {
		return nil, newProtocolLevelNoSupport(levelByte)
	}

	flagsByte, ok := buf.ReadByte()
	if !ok {
		return nil, &Error{Err: ErrPacketTooShort, Message: "connect flags"}
	}
	flags, err := decodeConnectFlags(flagsByte)
	if err != nil {
		return nil, err
	}

	keepAliveBytes := buf.ReadN(2)
	if len(keepAliveBytes) < 2 {
		return nil, &Error{Err: ErrPacketTooShort, Message: "keep alive"}
	}
	keepAlive, _ := beBytesToUint16(keepAliveBytes)

	clientID, err := readUTF8String(buf)
	if err != nil {
		return nil, err
	}
	if err := validateClientID(clientID, flags.CleanSession); err != nil {
		return nil, err
	}

	p := &ConnectPacket{
		Header:        fh,
		ProtocolLevel: ProtocolLevel311,
		Flags:         flags,
		KeepAlive:     keepAlive,
		ClientID:      clientID,
	}

	if flags.WillFlag {
		willTopic, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}
		willMessage, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}
		p.WillTopic = &willTopic
		p.WillMessage = &willMessage
	}

	if flags.UsernameFlag {
		username, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}
		if username == "" {
			return nil, &Error{Err: ErrMalformedPacket, Message: "empty username"}
		}
		p.Username = &username
	}

	if flags.PasswordFlag {
		password, err := readUTF8String(buf)
		if err != nil {
			return nil, err
		}
		p.Password = &password
	}

	return p, nil
}

func encodeConnect(buf buffer.Buffer, p *ConnectPacket) error {
	if err := writeUTF8String(buf, "MQTT"); err != nil {
		return err
	}
	buf.WriteByte(byte(ProtocolLevel311))
	buf.WriteByte(p.Flags.encode())

	kaBytes, err := usizeToBEUint16Bytes(int(p.KeepAlive))
	if err != nil {
		return err
	}
	buf.Write(kaBytes[:])

	if err := writeUTF8String(buf, p.ClientID); err != nil {
		return err
	}

	if p.Flags.WillFlag {
		if p.WillTopic == nil || p.WillMessage == nil {
			return &Error{Err: ErrMalformedPacket, Message: "will flag set without will topic/message"}
		}
		if err := writeUTF8String(buf, *p.WillTopic); err != nil {
			return err
		}
		if err := writeUTF8String(buf, *p.WillMessage); err != nil {
			return err
		}
	}

	if p.Flags.UsernameFlag {
		if p.Username == nil || *p.Username == "" {
			return &Error{Err: ErrMalformedPacket, Message: "username flag set without username"}
		}
		if err := writeUTF8String(buf, *p.Username); err != nil {
			return err
		}
	}

	if p.Flags.PasswordFlag {
		if p.Password == nil {
			return &Error{Err: ErrMalformedPacket, Message: "password flag set without password"}
		}
		if err := writeUTF8String(buf, *p.Password); err != nil {
			return err
		}
	}

	return nil
}
