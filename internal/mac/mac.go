// Package mac recognizes the three MAC address notations accepted by the MINT
// server: colon pairs (00:1a:2b:3c:4d:5e), hyphen pairs (00-1a-2b-3c-4d-5e) and
// dotted quads of hex digits (001a.2b3c.4d5e).
package mac

import (
	"errors"
	"fmt"

	"github.com/asaskevich/govalidator"
)

// ErrInvalid is wrapped by every Parse failure
var ErrInvalid = errors.New("invalid mac address")

// Notation identifies which textual form an Address was written in
type Notation int

const (
	Colon Notation = iota
	Hyphen
	Dot
)

const (
	pairLen = len("00:00:00:00:00:00")
	dotLen  = len("0000.0000.0000")
)

// Address is a parsed MAC address
type Address struct {
	octets   [6]byte
	notation Notation
}

// Parse accepts exactly one of the three notations, with hex digits in either case.
// Non-ASCII input is rejected before any shape matching.
func Parse(s string) (Address, error) {
	if !govalidator.IsASCII(s) {
		return Address{}, fmt.Errorf("%w: %q contains non-ascii characters", ErrInvalid, s)
	}

	switch {
	case len(s) == pairLen && (s[2] == ':' || s[2] == '-'):
		return parsePairs(s)
	case len(s) == dotLen && s[4] == '.':
		return parseDotted(s)
	}

	return Address{}, fmt.Errorf("%w: %q has the wrong length for any notation", ErrInvalid, s)
}

// IsValid reports whether s is accepted by Parse
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parsePairs handles hh:hh:hh:hh:hh:hh and hh-hh-hh-hh-hh-hh. The caller has
// checked that s[2] is ':' or '-'; every later separator must match it.
func parsePairs(s string) (Address, error) {
	var a Address

	sep := s[2]
	a.notation = Colon
	if sep == '-' {
		a.notation = Hyphen
	}

	for i := 0; i < 6; i++ {
		pos := i * 3
		if i > 0 && s[pos-1] != sep {
			return Address{}, fmt.Errorf("%w: %q mixes separators", ErrInvalid, s)
		}
		b, ok := hexByte(s[pos], s[pos+1])
		if !ok {
			return Address{}, fmt.Errorf("%w: %q group %d is not two hex digits", ErrInvalid, s, i+1)
		}
		a.octets[i] = b
	}

	return a, nil
}

// parseDotted handles hhhh.hhhh.hhhh. The caller has checked s[4].
func parseDotted(s string) (Address, error) {
	a := Address{notation: Dot}

	for g := 0; g < 3; g++ {
		pos := g * 5
		if g > 0 && s[pos-1] != '.' {
			return Address{}, fmt.Errorf("%w: %q groups must be separated by '.'", ErrInvalid, s)
		}
		hi, ok1 := hexByte(s[pos], s[pos+1])
		lo, ok2 := hexByte(s[pos+2], s[pos+3])
		if !ok1 || !ok2 {
			return Address{}, fmt.Errorf("%w: %q group %d is not four hex digits", ErrInvalid, s, g+1)
		}
		a.octets[g*2] = hi
		a.octets[g*2+1] = lo
	}

	return a, nil
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := nibble(hi)
	l, ok2 := nibble(lo)
	return h<<4 | l, ok1 && ok2
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Octets returns the six address bytes
func (a Address) Octets() [6]byte {
	return a.octets
}

// Notation returns the form the address was parsed from
func (a Address) Notation() Notation {
	return a.notation
}

// String renders the address in lower case using its original notation
func (a Address) String() string {
	o := a.octets
	switch a.notation {
	case Hyphen:
		return fmt.Sprintf("%02x-%02x-%02x-%02x-%02x-%02x", o[0], o[1], o[2], o[3], o[4], o[5])
	case Dot:
		return fmt.Sprintf("%02x%02x.%02x%02x.%02x%02x", o[0], o[1], o[2], o[3], o[4], o[5])
	default:
		return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", o[0], o[1], o[2], o[3], o[4], o[5])
	}
}

// MarshalText implements encoding.TextMarshaler
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (n Notation) String() string {
	switch n {
	case Colon:
		return "colon"
	case Hyphen:
		return "hyphen"
	case Dot:
		return "dot"
	}
	return fmt.Sprintf("notation(%d)", int(n))
}
