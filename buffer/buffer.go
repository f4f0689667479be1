// Package buffer provides the sequential byte cursor the packet codec reads
// from and writes to. It has no notion of MQTT framing; it is the thin
// capability the codec is built against so that tests can drive it with a
// plain in-memory buffer while a transport layer drives it with whatever
// sits on top of a real connection.
package buffer

// Buffer is a sequential, cursor-based view over an octet buffer. There is
// no seek: every read advances the cursor past the bytes returned, and a
// short read returns whatever prefix is available rather than blocking or
// erroring.
type Buffer interface {
	// ReadByte returns the next byte and true, or ok=false if the buffer is
	// empty.
	ReadByte() (b byte, ok bool)

	// ReadN returns up to n bytes from the front of the buffer, advancing
	// the cursor past them. The returned slice may be shorter than n if
	// fewer bytes are available; it is never longer.
	ReadN(n int) []byte

	// WriteByte appends a single byte.
	WriteByte(b byte)

	// Write appends p in full.
	Write(p []byte)

	// Len returns the number of unread bytes.
	Len() int

	// Empty reports whether Len() == 0.
	Empty() bool
}

// Memory is a growable, heap-backed Buffer. It is the implementation used
// by the codec's own tests and is suitable for any caller that already has
// the full packet bytes in memory.
type Memory struct {
	data []byte
	pos  int
}

// New returns a Memory buffer primed with the given bytes for reading. The
// returned buffer also accepts further writes, which are appended after
// any bytes already queued.
func New(data []byte) *Memory {
	return &Memory{data: append([]byte(nil), data...)}
}

// NewEmpty returns a Memory buffer with nothing queued, ready for Write.
func NewEmpty() *Memory {
	return &Memory{}
}

func (m *Memory) ReadByte() (byte, bool) {
	if m.pos >= len(m.data) {
		return 0, false
	}
	b := m.data[m.pos]
	m.pos++
	return b, true
}

func (m *Memory) ReadN(n int) []byte {
	if n <= 0 {
		return nil
	}
	avail := len(m.data) - m.pos
	if avail <= 0 {
		return nil
	}
	if n > avail {
		n = avail
	}
	out := m.data[m.pos : m.pos+n]
	m.pos += n
	return out
}

func (m *Memory) WriteByte(b byte) {
	m.data = append(m.data, b)
}

func (m *Memory) Write(p []byte) {
	m.data = append(m.data, p...)
}

func (m *Memory) Len() int {
	return len(m.data) - m.pos
}

func (m *Memory) Empty() bool {
	return m.Len() == 0
}

// Bytes returns the unread tail of the buffer without consuming it.
func (m *Memory) Bytes() []byte {
	return m.data[m.pos:]
}
