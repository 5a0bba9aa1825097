package mutf8

import (
	"slices"
	"strings"
)

// Encode converts the UTF-8 text p to MUTF-8. See the package function Encode.
func (c *Codec) Encode(p []byte) []byte {
	s := bytesView(p)
	if c.IsValidString(s) {
		return p
	}
	return c.encode(s)
}

// EncodeString converts s to MUTF-8. The result never shares memory with s.
func (c *Codec) EncodeString(s string) []byte {
	if c.IsValidString(s) {
		return []byte(s)
	}
	return c.encode(s)
}

// AppendEncode appends the MUTF-8 encoding of s to dst and returns the
// extended buffer.
func (c *Codec) AppendEncode(dst []byte, s string) []byte {
	if c.IsValidString(s) {
		return append(dst, s...)
	}

	c.debug("slow encode path", len(s))
	dst = slices.Grow(dst, c.LenString(s))
	return appendEscaped(dst, c.cesu.Encode(s))
}

func (c *Codec) encode(s string) []byte {
	c.debug("slow encode path", len(s))
	return appendEscaped(make([]byte, 0, c.LenString(s)), c.cesu.Encode(s))
}

// appendEscaped appends the CESU-8 data src to dst, writing each NUL as the
// null pair.
func appendEscaped(dst, src []byte) []byte {
	for _, b := range src {
		if b == nul {
			dst = append(dst, nullPair[:]...)
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

// IsValid reports whether the UTF-8 text p is also valid MUTF-8.
func (c *Codec) IsValid(p []byte) bool {
	return c.IsValidString(bytesView(p))
}

// IsValidString reports whether s is also valid MUTF-8: it holds no NUL and
// the CESU-8 transcoder accepts it as is.
func (c *Codec) IsValidString(s string) bool {
	return strings.IndexByte(s, nul) < 0 && c.cesu.IsValid(s)
}

// Len returns the number of bytes of the MUTF-8 encoding of p.
func (c *Codec) Len(p []byte) int {
	return c.LenString(bytesView(p))
}

// LenString returns the number of bytes of the MUTF-8 encoding of s: its
// CESU-8 length plus one for every NUL.
func (c *Codec) LenString(s string) int {
	return c.cesu.Len(s) + strings.Count(s, "\x00")
}
