package field

import (
	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/mac"
)

// ParseIPv4 parses a dotted-quad client address
func ParseIPv4(s string) (addr.IPv4, error) {
	ip, err := addr.ParseIPv4(s)
	if err != nil {
		return addr.IPv4{}, &InputError{Value: s, Expected: "IPv4 address", Err: err}
	}
	return ip, nil
}

// ValidateIPv4 rejects anything ParseIPv4 rejects
func ValidateIPv4(s string) error {
	_, err := ParseIPv4(s)
	return err
}

// ParseSocketV4 parses an "address:port" server endpoint
func ParseSocketV4(s string) (addr.SocketV4, error) {
	sa, err := addr.ParseSocketV4(s)
	if err != nil {
		return addr.SocketV4{}, &InputError{Value: s, Expected: "IPv4 socket address", Err: err}
	}
	return sa, nil
}

// ValidateSocketV4 rejects anything ParseSocketV4 rejects
func ValidateSocketV4(s string) error {
	_, err := ParseSocketV4(s)
	return err
}

// ParseMAC parses any of the accepted mac notations
func ParseMAC(s string) (mac.Address, error) {
	a, err := mac.Parse(s)
	if err != nil {
		return mac.Address{}, &InputError{
			Value:    s,
			Expected: "mac address",
			Hint:     "must look like aaaa.bbbb.cccc, aa:aa:bb:bb:cc:cc or aa-aa-bb-bb-cc-cc",
			Err:      err,
		}
	}
	return a, nil
}

// ValidateMAC rejects anything ParseMAC rejects
func ValidateMAC(s string) error {
	_, err := ParseMAC(s)
	return err
}
