package packet

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per identifier in the codec's error taxonomy. Every
// decode/encode failure is one of these, optionally wrapped in *Error to
// carry the offending value. Callers match with errors.Is against the
// sentinel regardless of whether a *Error wrapper is present.
var (
	ErrMalformedPacket          = errors.New("malformed packet")
	ErrInvalidPacketType        = errors.New("invalid packet type")
	ErrInvalidFixedHeaderFlags  = errors.New("invalid fixed header flags")
	ErrQoSLevelNotSupported     = errors.New("QoS level not supported")
	ErrMalformedRemainingLength = errors.New("malformed remaining length")
	ErrPacketTooShort           = errors.New("packet too short")
	ErrProtocolNameError        = errors.New("invalid protocol name")
	ErrProtocolLevelNoSupport   = errors.New("protocol level not supported")
	ErrInvalidWillQoS           = errors.New("invalid will QoS")
	ErrUnsupportedPacketType    = errors.New("unsupported packet type")
	ErrReservedReturnCode       = errors.New("reserved connect return code")
	ErrInvalidClientID          = errors.New("invalid client identifier")
	ErrUTF8DecodingError        = errors.New("UTF-8 decoding error")
	ErrMQTTInvalidCode          = errors.New("disallowed MQTT code point")
	ErrCodeLengthError          = errors.New("insufficient bytes for fixed-width field")
	ErrUsizeConversion          = errors.New("value does not fit target width")
)

// Error wraps one of the sentinel errors above with the context needed to
// display it meaningfully without the caller re-examining the input: the
// offending byte, code point, or lengths, and a free-form message.
//
// errors.Is(err, ErrXxx) and errors.As(err, &packetErr) both work against
// values of this type.
type Error struct {
	Err     error
	Message string

	hasByte bool
	Byte    byte // QoSLevelNotSupported, ProtocolLevelNoSupport, InvalidWillQoS

	hasCodePoint bool
	CodePoint    uint32 // MQTTInvalidCode

	hasLengths     bool
	Expected       int // CodeLengthError
	Actual         int // CodeLengthError

	hasUsize bool
	Value    uint64 // UsizeConversion
	Target   string // UsizeConversion
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Err.Error() + ": " + e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// ByteValue returns the offending byte carried by QoSLevelNotSupported,
// ProtocolLevelNoSupport, and InvalidWillQoS errors.
func (e *Error) ByteValue() (byte, bool) { return e.Byte, e.hasByte }

// CodePointValue returns the offending Unicode scalar value carried by an
// MQTTInvalidCode error.
func (e *Error) CodePointValue() (uint32, bool) { return e.CodePoint, e.hasCodePoint }

// Lengths returns the expected and actual byte counts carried by a
// CodeLengthError.
func (e *Error) Lengths() (expected, actual int, ok bool) {
	return e.Expected, e.Actual, e.hasLengths
}

// UsizeConversionValue returns the value and target width description carried
// by a UsizeConversion error.
func (e *Error) UsizeConversionValue() (value uint64, target string, ok bool) {
	return e.Value, e.Target, e.hasUsize
}

func newQoSLevelNotSupported(qos byte) *Error {
	return &Error{Err: ErrQoSLevelNotSupported, Message: fmt.Sprintf("qos=%d", qos), Byte: qos, hasByte: true}
}

func newProtocolLevelNoSupport(level byte) *Error {
	return &Error{Err: ErrProtocolLevelNoSupport, Message: fmt.Sprintf("level=%d", level), Byte: level, hasByte: true}
}

func newInvalidWillQoS(qos byte) *Error {
	return &Error{Err: ErrInvalidWillQoS, Message: fmt.Sprintf("will_qos=%d", qos), Byte: qos, hasByte: true}
}

func newProtocolNameError(actual string) *Error {
	return &Error{Err: ErrProtocolNameError, Message: fmt.Sprintf("got %q, want %q", actual, "MQTT")}
}

func newMQTTInvalidCode(cp rune) *Error {
	return &Error{Err: ErrMQTTInvalidCode, Message: fmt.Sprintf("U+%04X", cp), CodePoint: uint32(cp), hasCodePoint: true}
}

func newCodeLengthError(expected, actual int) *Error {
	return &Error{
		Err:        ErrCodeLengthError,
		Message:    fmt.Sprintf("expected %d bytes, got %d", expected, actual),
		Expected:   expected,
		Actual:     actual,
		hasLengths: true,
	}
}

func newUsizeConversion(value uint64, target string) *Error {
	return &Error{
		Err:      ErrUsizeConversion,
		Message:  fmt.Sprintf("%d does not fit in %s", value, target),
		Value:    value,
		Target:   target,
		hasUsize: true,
	}
}
