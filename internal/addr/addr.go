package addr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidIPv4 is wrapped by every ParseIPv4 failure
	ErrInvalidIPv4 = errors.New("invalid IPv4 address")
	// ErrInvalidSocketV4 is wrapped by every ParseSocketV4 failure
	ErrInvalidSocketV4 = errors.New("invalid IPv4 socket address")
)

// IPv4 is a parsed dotted-quad address. A value returned by ParseIPv4 is always
// four in-range octets.
type IPv4 [4]byte

// SocketV4 is an IPv4 address paired with a TCP/UDP port
type SocketV4 struct {
	IP   IPv4
	Port uint16
}

// ParseIPv4 parses a dotted-quad string.
//
// Each of the four segments must be a non-empty run of decimal digits whose value
// is at most 255. Leading zeros are accepted, so "010.0.0.1" parses as 10.0.0.1.
func ParseIPv4(s string) (IPv4, error) {
	var ip IPv4

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return ip, fmt.Errorf("%w: %q has %d segments, expected 4", ErrInvalidIPv4, s, len(parts))
	}

	for i, part := range parts {
		octet, err := parseDecimal(part, 8)
		if err != nil {
			return IPv4{}, fmt.Errorf("%w: %q segment %d: %v", ErrInvalidIPv4, s, i+1, err)
		}
		ip[i] = byte(octet)
	}

	return ip, nil
}

// IsIPv4 reports whether s is accepted by ParseIPv4
func IsIPv4(s string) bool {
	_, err := ParseIPv4(s)
	return err == nil
}

// ParseSocketV4 parses an "address:port" string. The split happens at the last
// colon; the port must be a plain decimal number in 0..65535.
func ParseSocketV4(s string) (SocketV4, error) {
	sep := strings.LastIndexByte(s, ':')
	if sep < 0 {
		return SocketV4{}, fmt.Errorf("%w: %q has no port", ErrInvalidSocketV4, s)
	}

	ip, err := ParseIPv4(s[:sep])
	if err != nil {
		return SocketV4{}, fmt.Errorf("%w: %v", ErrInvalidSocketV4, err)
	}

	port, err := parseDecimal(s[sep+1:], 16)
	if err != nil {
		return SocketV4{}, fmt.Errorf("%w: %q port: %v", ErrInvalidSocketV4, s, err)
	}

	return SocketV4{IP: ip, Port: uint16(port)}, nil
}

// IsSocketV4 reports whether s is accepted by ParseSocketV4
func IsSocketV4(s string) bool {
	_, err := ParseSocketV4(s)
	return err == nil
}

// parseDecimal accepts a non-empty run of ASCII digits that fits in bitSize bits
func parseDecimal(s string, bitSize int) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character %q", s[i])
		}
	}

	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("value out of range for %d bits", bitSize)
	}
	return v, nil
}

// String returns the canonical dotted-quad form
func (ip IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// MarshalText implements encoding.TextMarshaler
func (ip IPv4) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseIPv4
func (ip *IPv4) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}

// String returns "a.b.c.d:port"
func (sa SocketV4) String() string {
	return fmt.Sprintf("%s:%d", sa.IP, sa.Port)
}

// MarshalText implements encoding.TextMarshaler
func (sa SocketV4) MarshalText() ([]byte, error) {
	return []byte(sa.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseSocketV4
func (sa *SocketV4) UnmarshalText(text []byte) error {
	parsed, err := ParseSocketV4(string(text))
	if err != nil {
		return err
	}
	*sa = parsed
	return nil
}
