package packet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axmq/mqtt311/buffer"
)

func TestReadUTF8String(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{"empty string", []byte{0x00, 0x00}, "", nil},
		{"ascii", []byte{0x00, 0x03, 'a', 'b', 'c'}, "abc", nil},
		{"bom allowed", []byte{0x00, 0x03, 0xEF, 0xBB, 0xBF}, "﻿", nil},
		{"truncated length prefix", []byte{0x00}, "", ErrPacketTooShort},
		{"truncated body", []byte{0x00, 0x05, 'a', 'b'}, "", ErrPacketTooShort},
		{"embedded null", []byte{0x00, 0x01, 0x00}, "", ErrMQTTInvalidCode},
		{"control char", []byte{0x00, 0x01, 0x01}, "", ErrMQTTInvalidCode},
		{"invalid utf8 bytes", []byte{0x00, 0x02, 0xFF, 0xFE}, "", ErrUTF8DecodingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readUTF8String(buffer.New(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteUTF8String(t *testing.T) {
	buf := buffer.NewEmpty()
	err := writeUTF8String(buf, "a/b")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x03, 'a', '/', 'b'}, buf.Bytes())
}

func TestWriteUTF8StringRejectsForbiddenCodePoints(t *testing.T) {
	buf := buffer.NewEmpty()
	err := writeUTF8String(buf, "bad\x01char")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMQTTInvalidCode)
}

func TestWriteUTF8StringTooLong(t *testing.T) {
	buf := buffer.NewEmpty()
	err := writeUTF8String(buf, strings.Repeat("a", 65536))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsizeConversion)
}

func TestForbiddenCodePoint(t *testing.T) {
	forbidden := []rune{0x0000, 0x0001, 0x001F, 0x007F, 0x009F, 0xFDD0, 0xFDEF, 0xFFFE, 0xFFFF}
	for _, r := range forbidden {
		assert.True(t, forbiddenCodePoint(r), "expected U+%04X to be forbidden", r)
	}

	allowed := []rune{0x0020, 0x007E, 0x00A0, 0xFEFF, 'a', '世'}
	for _, r := range allowed {
		assert.False(t, forbiddenCodePoint(r), "expected U+%04X to be allowed", r)
	}
}

func FuzzUTF8StringRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("a/b")
	f.Add("世界")
	f.Add("﻿")

	f.Fuzz(func(t *testing.T, s string) {
		buf := buffer.NewEmpty()
		err := writeUTF8String(buf, s)
		if err != nil {
			return
		}

		got, err := readUTF8String(buffer.New(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})
}

func FuzzReadUTF8StringNeverPanics(f *testing.F) {
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0x00, 0x01, 0x00})
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = readUTF8String(buffer.New(data))
	})
}
