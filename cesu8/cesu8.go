// Package cesu8 implements CESU-8, the Compatibility Encoding Scheme for
// UTF-16: 8-Bit.
//
// CESU-8 is UTF-8 in which every rune above U+FFFF is first split into a
// UTF-16 surrogate pair, and each half is then written as its own 3-byte
// sequence. A supplementary rune therefore takes 6 bytes instead of 4, and
// the 4-byte UTF-8 form never appears.
package cesu8

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000
	t5 = 0xF5 // first byte that never starts a sequence

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1

	surr1    = 0xD800 // first high surrogate
	surr2    = 0xDC00 // first low surrogate
	surr3    = 0xE000 // first code point after the surrogates
	surrSelf = 0x10000
)

// MaxRuneLen is the maximum number of bytes of a CESU-8 encoded rune.
const MaxRuneLen = 6

// Codec exposes the package functions as methods.
// The zero value is ready to use.
type Codec struct{}

// Encode calls the package function Encode.
func (Codec) Encode(s string) []byte { return Encode(s) }

// Decode calls the package function Decode.
func (Codec) Decode(b []byte) ([]byte, error) { return Decode(b) }

// Len calls the package function Len.
func (Codec) Len(s string) int { return Len(s) }

// IsValid calls the package function IsValid.
func (Codec) IsValid(s string) bool { return IsValid(s) }
