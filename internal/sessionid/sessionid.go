// Package sessionid generates time-sortable session ids: a UUIDv7 written as
// 26 characters of Crockford base32.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	// Length is the number of characters in an id.
	Length = 26
)

// Generator creates ids from a clock and a source of random bytes.
type Generator struct {
	clock quartz.Clock
	rand  io.Reader
}

// NewGenerator creates a generator. A nil clock uses the wall clock and a nil
// reader uses crypto/rand.
func NewGenerator(clock quartz.Clock, r io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if r == nil {
		r = rand.Reader
	}
	return &Generator{clock: clock, rand: r}
}

// New creates an id with the wall clock and crypto/rand.
func New() (string, error) {
	return NewGenerator(nil, nil).New()
}

// New creates an id.
func (g *Generator) New() (string, error) {
	var u [16]byte

	// 48-bit big-endian millisecond timestamp.
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		u[i] = byte(ms >> (40 - 8*i))
	}

	if _, err := io.ReadFull(g.rand, u[6:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	return encode(u), nil
}

// encode writes the 128 bits as a 130-bit number with two leading zero bits,
// five bits per character.
func encode(u [16]byte) string {
	bit := func(pos int) byte {
		if pos < 0 {
			return 0
		}
		return (u[pos/8] >> (7 - pos%8)) & 1
	}

	var sb strings.Builder
	sb.Grow(Length)
	for i := 0; i < Length; i++ {
		var v byte
		for j := 0; j < 5; j++ {
			v = v<<1 | bit(i*5+j-2)
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

func decode(id string) ([16]byte, error) {
	var u [16]byte
	if err := Validate(id); err != nil {
		return u, err
	}
	for i := 0; i < Length; i++ {
		v := byte(strings.IndexByte(alphabet, id[i]))
		for j := 0; j < 5; j++ {
			pos := i*5 + j - 2
			if pos < 0 {
				continue
			}
			if v&(1<<(4-j)) != 0 {
				u[pos/8] |= 1 << (7 - pos%8)
			}
		}
	}
	return u, nil
}

// Time returns the creation time encoded in id, to the millisecond.
func Time(id string) (time.Time, error) {
	u, err := decode(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms int64
	for i := 0; i < 6; i++ {
		ms = ms<<8 | int64(u[i])
	}
	return time.UnixMilli(ms).UTC(), nil
}

// Validate checks that id is 26 base32 characters starting with 0-7.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session id must be %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session id must start with 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}
