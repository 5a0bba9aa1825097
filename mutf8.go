// Package mutf8 converts between modified UTF-8 (MUTF-8) and UTF-8.
//
// MUTF-8 is the string encoding of Java class files and JNI. It is CESU-8
// (see package cesu8) with one more rule: the NUL code point is written as
// the two bytes 0xC0 0x80, so encoded text never contains a zero byte.
//
// Text without NUL and without runes above U+FFFF has the same bytes in both
// encodings. Encode and Decode detect that case and return their argument
// itself, without copying; any other input is transcoded into a newly
// allocated buffer owned by the caller.
//
// The package-level functions use a default Codec; use New to inject another
// CESU-8 implementation or a logger.
package mutf8

import "errors"

// ErrInvalid is returned by Decode when the input is neither UTF-8 nor
// MUTF-8. It deliberately says nothing about where or why decoding failed.
var ErrInvalid = errors.New("mutf8: invalid MUTF-8 data")

// nullPair is the MUTF-8 encoding of U+0000.
var nullPair = [2]byte{0xC0, 0x80}

const nul = 0x00

var std = New()

// Decode converts MUTF-8 data to UTF-8.
//
// If b is valid UTF-8 it is returned as is. Otherwise every 0xC0 0x80 pair is
// turned back into NUL, surrogate pairs are combined, and the result is
// returned in a new buffer. Decode is all-or-nothing: on failure it returns
// nil and ErrInvalid.
func Decode(b []byte) ([]byte, error) {
	return std.Decode(b)
}

// DecodeString is like Decode but returns a string.
func DecodeString(b []byte) (string, error) {
	return std.DecodeString(b)
}

// Encode converts the UTF-8 text p to MUTF-8.
//
// If p is already valid MUTF-8 (see IsValid) it is returned as is. Otherwise
// the result is a new buffer of exactly Len(p) bytes.
func Encode(p []byte) []byte {
	return std.Encode(p)
}

// EncodeString converts s to MUTF-8. The result never shares memory with s.
func EncodeString(s string) []byte {
	return std.EncodeString(s)
}

// AppendEncode appends the MUTF-8 encoding of s to dst and returns the
// extended buffer.
func AppendEncode(dst []byte, s string) []byte {
	return std.AppendEncode(dst, s)
}

// IsValid reports whether the UTF-8 text p is also valid MUTF-8, that is,
// whether Encode(p) would return p unchanged. It does not allocate.
func IsValid(p []byte) bool {
	return std.IsValid(p)
}

// IsValidString is like IsValid but its argument is a string.
func IsValidString(s string) bool {
	return std.IsValidString(s)
}

// Len returns the number of bytes of the MUTF-8 encoding of p.
// It does not allocate.
func Len(p []byte) int {
	return std.Len(p)
}

// LenString is like Len but its argument is a string.
func LenString(s string) int {
	return std.LenString(s)
}
