package mutf8

import "unicode/utf8"

// Decode converts MUTF-8 data to UTF-8. See the package function Decode.
func (c *Codec) Decode(b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return b, nil
	}
	return c.decode(b)
}

// DecodeString is like Decode but returns a string.
func (c *Codec) DecodeString(b []byte) (string, error) {
	p, err := c.Decode(b)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// decode restores the NUL bytes of b and hands the result to the CESU-8
// transcoder.
func (c *Codec) decode(b []byte) ([]byte, error) {
	c.debug("slow decode path", len(b))

	buf := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != nullPair[0] {
			buf = append(buf, b[i])
			continue
		}

		// 0xC0 only ever starts the null pair.
		if i+1 == len(b) || b[i+1] != nullPair[1] {
			return nil, c.reject(b)
		}
		buf = append(buf, nul)
		i++
	}

	p, err := c.cesu.Decode(buf)
	if err != nil {
		return nil, c.reject(b)
	}
	return p, nil
}

func (c *Codec) reject(b []byte) error {
	c.debug("rejected MUTF-8 input", len(b))
	return ErrInvalid
}
