package cesu8_test

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/pchchv/mutf8/cesu8"
	"golang.org/x/text/encoding/unicode"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		s    string
		want []byte
	}{
		{"", []byte{}},
		{"\x00", []byte{0x00}},
		{"hello", []byte("hello")},
		{"\u00E9", []byte{0xC3, 0xA9}},
		{"\u07FF", []byte{0xDF, 0xBF}},
		{"\u0800", []byte{0xE0, 0xA0, 0x80}},
		{"\u20AC", []byte{0xE2, 0x82, 0xAC}},
		{"\uFFFF", []byte{0xEF, 0xBF, 0xBF}},
		{"\U00010000", []byte{0xED, 0xA0, 0x80, 0xED, 0xB0, 0x80}},
		{"\U00010401", []byte{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x81}},
		{"\U0010FFFF", []byte{0xED, 0xAF, 0xBF, 0xED, 0xBF, 0xBF}},
		{"a\U0001F600b", []byte{'a', 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80, 'b'}},
		{"\xFF", []byte{0xEF, 0xBF, 0xBD}},
	}

	for i, test := range tests {
		got := cesu8.Encode(test.s)
		if !bytes.Equal(got, test.want) {
			t.Errorf("i=%d; Encode(%q): expected % X, got % X", i, test.s, test.want, got)
		}

		if n := cesu8.Len(test.s); n != len(got) {
			t.Errorf("i=%d; Len(%q): expected %d, got %d", i, test.s, len(got), n)
		}
	}
}

func TestAppendEncode(t *testing.T) {
	dst := []byte("prefix:")
	got := cesu8.AppendEncode(dst, "\x00\U00010401")
	want := []byte{'p', 'r', 'e', 'f', 'i', 'x', ':', 0x00, 0xED, 0xA0, 0x81, 0xED, 0xB0, 0x81}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected % X, got % X", want, got)
	}
}

// TestEncodeUTF16 checks Encode against an independent UTF-16 encoder:
// CESU-8 is the sequence of UTF-16 code units, each written as 1 to 3 bytes.
func TestEncodeUTF16(t *testing.T) {
	texts := []string{
		"Hello, world!",
		"\u00E9t\u00E9 \u4E16\u754C",
		"\U00010401\U00010428",
		"mixed \x00 \u0800 \U0001D11E end",
		"\U0010FFFF\uFFFD\u007F\u0080",
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	for _, s := range texts {
		units, err := enc.String(s)
		if err != nil {
			t.Fatalf("unable to encode %q as UTF-16; %v", s, err)
		}

		buf := &bytes.Buffer{}
		bw := bitio.NewWriter(buf)
		for i := 0; i+1 < len(units); i += 2 {
			writeUnit(bw, uint64(units[i])<<8|uint64(units[i+1]))
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("unable to close (flush) the bit buffer; %v", err)
		}

		if got := cesu8.Encode(s); !bytes.Equal(got, buf.Bytes()) {
			t.Errorf("Encode(%q): expected % X, got % X", s, buf.Bytes(), got)
		}
	}
}

// writeUnit writes the UTF-16 code unit u in its shortest 1, 2 or 3 byte form.
func writeUnit(bw *bitio.Writer, u uint64) {
	switch {
	case u < 0x80:
		bw.TryWriteBits(u, 8)
	case u < 0x800:
		bw.TryWriteBits(0x6, 3)
		bw.TryWriteBits(u>>6, 5)
		bw.TryWriteBits(0x2, 2)
		bw.TryWriteBits(u&0x3F, 6)
	default:
		bw.TryWriteBits(0xE, 4)
		bw.TryWriteBits(u>>12, 4)
		bw.TryWriteBits(0x2, 2)
		bw.TryWriteBits(u>>6&0x3F, 6)
		bw.TryWriteBits(0x2, 2)
		bw.TryWriteBits(u&0x3F, 6)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"\x00", true},
		{"Hello, world!", true},
		{"\u4E16\u754C\uFFFF", true},
		{"\U00010000", false},
		{"abc\U0010FFFF", false},
		{"\xFF", false},
		{"\xED\xA0\x81", false},
	}

	for i, test := range tests {
		if got := cesu8.IsValid(test.s); got != test.want {
			t.Errorf("i=%d; IsValid(%q): expected %v, got %v", i, test.s, test.want, got)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	s := "Hello, 世界 \U0001F600!"
	for i := 0; i < b.N; i++ {
		cesu8.Encode(s)
	}
}
