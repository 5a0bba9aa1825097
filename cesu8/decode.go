package cesu8

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Decode converts CESU-8 data to UTF-8.
//
// If b is already valid UTF-8 with no 4-byte sequences, which is the case
// where both encodings coincide, b itself is returned. Otherwise the result
// is a newly allocated buffer in which every surrogate pair has been
// combined into a single 4-byte UTF-8 sequence.
//
// Decode fails with an *Error if b contains an unpaired surrogate, a 4-byte
// sequence, an overlong or truncated sequence, or a byte that cannot start
// a sequence.
func Decode(b []byte) ([]byte, error) {
	if isUTF8BMP(b) {
		return b, nil
	}

	dst := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if c := b[i]; c < tx {
			dst = append(dst, c)
			i++
			continue
		}

		r, size, reason := decodeRune(b[i:])
		if reason != "" {
			return nil, &Error{Offset: i, Reason: reason}
		}

		dst = utf8.AppendRune(dst, r)
		i += size
	}

	return dst, nil
}

// Valid reports whether b is valid CESU-8, that is, whether Decode(b)
// succeeds.
func Valid(b []byte) bool {
	if isUTF8BMP(b) {
		return true
	}

	for i := 0; i < len(b); {
		_, size, reason := decodeRune(b[i:])
		if reason != "" {
			return false
		}
		i += size
	}

	return true
}

// isUTF8BMP reports whether b is valid UTF-8 without runes above U+FFFF.
func isUTF8BMP(b []byte) bool {
	for _, c := range b {
		if c >= t4 {
			return false
		}
	}
	return utf8.Valid(b)
}

// decodeRune decodes the first rune of the non-empty b, combining a
// surrogate pair into the rune it represents. It returns the rune, the
// number of bytes consumed and, on failure, a non-empty reason.
func decodeRune(b []byte) (r rune, size int, reason string) {
	r, size, reason = decodeUnit(b)
	if reason != "" {
		return 0, 0, reason
	}

	switch {
	case r < surr1, surr3 <= r:
		return r, size, ""
	case surr2 <= r:
		return 0, 0, errUnpairedLow
	}

	// high surrogate; the low half must follow immediately.
	if len(b) == size {
		return 0, 0, errUnpairedHigh
	}

	r2, size2, reason := decodeUnit(b[size:])
	if reason != "" || r2 < surr2 || surr3 <= r2 {
		return 0, 0, errUnpairedHigh
	}

	return utf16.DecodeRune(r, r2), size + size2, ""
}

// decodeUnit decodes a single 1, 2 or 3 byte sequence at the start of the
// non-empty b. Surrogate halves are returned as they are.
func decodeUnit(b []byte) (r rune, size int, reason string) {
	c0 := b[0]
	switch {
	case c0 < tx:
		// if c0 == 0xxxxxxx
		return rune(c0), 1, ""
	case c0 < t2:
		// if c0 == 10xxxxxx
		return 0, 0, errContinuation
	case c0 < t2+2:
		// 0xC0 and 0xC1 can only start overlong 2-byte sequences.
		return 0, 0, errOverlong
	case c0 < t3:
		// if c0 == 110xxxxx
		// total: 11 bits (5 + 6)
		if len(b) < 2 {
			return 0, 0, errUnexpectedEOF
		}
		if !isContinuation(b[1]) {
			return 0, 0, errExpectedCont
		}
		return rune(c0&mask2)<<6 | rune(b[1]&maskx), 2, ""
	case c0 < t4:
		// if c0 == 1110xxxx
		// total: 16 bits (4 + 6 + 6)
		if len(b) < 3 {
			return 0, 0, errUnexpectedEOF
		}
		if !isContinuation(b[1]) || !isContinuation(b[2]) {
			return 0, 0, errExpectedCont
		}
		r = rune(c0&mask3)<<12 | rune(b[1]&maskx)<<6 | rune(b[2]&maskx)
		if r <= rune2Max {
			return 0, 0, errOverlong
		}
		return r, 3, ""
	case c0 < t5:
		// if c0 == 11110xxx
		return 0, 0, errFourByte
	default:
		return 0, 0, errInvalidLead
	}
}

// isContinuation reports whether c matches 10xxxxxx.
func isContinuation(c byte) bool {
	return c&^maskx == tx
}
