package mutf8

import (
	"github.com/pchchv/mutf8/cesu8"
	"go.uber.org/zap"
)

// CESU8 is the CESU-8 transcoder a Codec builds on.
// Implementations must not retain their arguments after returning.
type CESU8 interface {
	// Encode returns the CESU-8 encoding of s. It never fails.
	Encode(s string) []byte
	// Decode converts CESU-8 data to UTF-8.
	Decode(b []byte) ([]byte, error)
	// Len returns len(Encode(s)) without encoding.
	Len(s string) int
	// IsValid reports whether s is UTF-8 that is also CESU-8.
	IsValid(s string) bool
}

// Codec converts between MUTF-8 and UTF-8.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	cesu CESU8
	log  *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithCESU8 sets the CESU-8 transcoder. A nil t keeps the default, cesu8.Codec.
func WithCESU8(t CESU8) Option {
	return func(c *Codec) {
		if t != nil {
			c.cesu = t
		}
	}
}

// WithLogger sets the logger. A nil l keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{
		cesu: cesu8.Codec{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// debug logs msg with the length of the input it concerns.
// Input bytes are never logged.
func (c *Codec) debug(msg string, n int) {
	if ce := c.log.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zap.Int("len", n))
	}
}
