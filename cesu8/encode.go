package cesu8

import (
	"bytes"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// Encode returns the CESU-8 encoding of s.
// Ill-formed UTF-8 in s is encoded as U+FFFD, one per invalid byte.
func Encode(s string) []byte {
	return AppendEncode(make([]byte, 0, Len(s)), s)
}

// AppendEncode appends the CESU-8 encoding of s to dst and returns the
// extended buffer.
func AppendEncode(dst []byte, s string) []byte {
	buf := bytes.NewBuffer(dst)
	bw := bitio.NewWriter(buf)
	for _, r := range s {
		encodeRune(bw, r)
	}

	// every sequence is a whole number of bytes, Close only flushes.
	if err := bw.Close(); err != nil || bw.TryError != nil {
		// a bytes.Buffer only fails by panicking on ErrTooLarge.
		panic("cesu8.AppendEncode: write to memory buffer failed")
	}

	return buf.Bytes()
}

// encodeRune writes r as one, two or three sequences of the form
//
//	0xxxxxxx
//	110xxxxx 10xxxxxx
//	1110xxxx 10xxxxxx 10xxxxxx
//
// where runes above U+FFFF are written as two 3-byte surrogate halves.
func encodeRune(bw *bitio.Writer, r rune) {
	switch {
	case r <= rune1Max:
		// total: 7 bits (7)
		bw.TryWriteBits(uint64(r), 8)
	case r <= rune2Max:
		// total: 11 bits (5 + 6)
		bw.TryWriteBits(t2>>5, 3)
		bw.TryWriteBits(uint64(r>>6)&mask2, 5)
		writeContinuation(bw, r)
	case r <= rune3Max:
		// total: 16 bits (4 + 6 + 6)
		encodeUnit(bw, r)
	default:
		// two surrogate halves of 10 bits each
		r -= surrSelf
		encodeUnit(bw, surr1+(r>>10)&0x3FF)
		encodeUnit(bw, surr2+r&0x3FF)
	}
}

// encodeUnit writes the 16-bit value u as a 3-byte sequence.
func encodeUnit(bw *bitio.Writer, u rune) {
	bw.TryWriteBits(t3>>4, 4)
	bw.TryWriteBits(uint64(u>>12)&mask3, 4)
	writeContinuation(bw, u>>6)
	writeContinuation(bw, u)
}

// writeContinuation writes the low 6 bits of x as a 10xxxxxx byte.
func writeContinuation(bw *bitio.Writer, x rune) {
	bw.TryWriteBits(tx>>6, 2)
	bw.TryWriteBits(uint64(x)&maskx, 6)
}

// Len returns the number of bytes Encode(s) produces.
func Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r <= rune1Max:
			n++
		case r <= rune2Max:
			n += 2
		case r <= rune3Max:
			n += 3
		default:
			n += MaxRuneLen
		}
	}
	return n
}

// IsValid reports whether s is well-formed UTF-8 whose bytes are already
// CESU-8, that is, s holds no rune above U+FFFF.
func IsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= t4 {
			return false
		}
	}
	return utf8.ValidString(s)
}
