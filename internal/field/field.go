// Package field parses and validates the scalar arguments of admint commands.
//
// Every value type has a ParseX function returning the typed value and a ValidateX
// function with the same acceptance rules that only reports the error. Validators
// run once per raw argument before a command is built; the builder then calls the
// parsers again to obtain typed values.
package field

import (
	"strconv"

	"github.com/asaskevich/govalidator"
)

// MaxCredentialLen is the longest accepted admin or client password
const MaxCredentialLen = 32

// MinCapacity is the smallest capacity the server accepts
const MinCapacity = 2

// MinDropVotes is the smallest drop-votes threshold the server accepts
const MinDropVotes = 1

type (
	// ListSize bounds the number of entries in a server listing
	ListSize uint16

	// Capacity is the maximum number of concurrent sessions on the server
	Capacity uint16

	// DropVotes is the number of votes needed to evict a logged in client
	DropVotes uint8

	// Index is a zero-based position in a server listing
	Index uint

	// UsernamePattern is matched by the server against client usernames
	UsernamePattern string

	// IndexRange selects the listing entries from Start to End. The order of the
	// two bounds is not checked; the server decides what an inverted range means.
	IndexRange struct {
		Start Index `json:"start" yaml:"start"`
		End   Index `json:"end" yaml:"end"`
	}
)

// ParseBool accepts exactly "true" or "false"
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &InputError{Value: s, Expected: "boolean value", Hint: "must be true or false"}
}

// ValidateBool rejects anything ParseBool rejects
func ValidateBool(s string) error {
	_, err := ParseBool(s)
	return err
}

// ParseListSize accepts an unsigned 16-bit number, zero included
func ParseListSize(s string) (ListSize, error) {
	v, err := parseUnsigned(s, 16)
	if err != nil {
		return 0, &InputError{Value: s, Expected: "list size number", Hint: "must be between [0,65535]"}
	}
	return ListSize(v), nil
}

// ValidateListSize rejects anything ParseListSize rejects
func ValidateListSize(s string) error {
	_, err := ParseListSize(s)
	return err
}

// ParseIndex accepts an unsigned number of the platform word size
func ParseIndex(s string) (Index, error) {
	v, err := parseUnsigned(s, strconv.IntSize)
	if err != nil {
		return 0, &InputError{Value: s, Expected: "unsigned number"}
	}
	return Index(v), nil
}

// ValidateIndex rejects anything ParseIndex rejects
func ValidateIndex(s string) error {
	_, err := ParseIndex(s)
	return err
}

// ParseUsernamePattern accepts any ASCII string, including the empty one
func ParseUsernamePattern(s string) (UsernamePattern, error) {
	if !govalidator.IsASCII(s) {
		return "", &InputError{Value: s, Expected: "pattern", Hint: "must contain only ascii characters"}
	}
	return UsernamePattern(s), nil
}

// ValidateUsernamePattern rejects anything ParseUsernamePattern rejects
func ValidateUsernamePattern(s string) error {
	_, err := ParseUsernamePattern(s)
	return err
}

// ParseCapacity accepts an unsigned 16-bit number of at least MinCapacity
func ParseCapacity(s string) (Capacity, error) {
	v, err := parseUnsigned(s, 16)
	if err != nil || v < MinCapacity {
		return 0, &InputError{Value: s, Expected: "capacity", Hint: "must be between [2,65535]"}
	}
	return Capacity(v), nil
}

// ValidateCapacity rejects anything ParseCapacity rejects
func ValidateCapacity(s string) error {
	_, err := ParseCapacity(s)
	return err
}

// ParseDropVotes accepts an unsigned 8-bit number of at least MinDropVotes
func ParseDropVotes(s string) (DropVotes, error) {
	v, err := parseUnsigned(s, 8)
	if err != nil || v < MinDropVotes {
		return 0, &InputError{Value: s, Expected: "drop votes value", Hint: "must be between [1,255]"}
	}
	return DropVotes(v), nil
}

// ValidateDropVotes rejects anything ParseDropVotes rejects
func ValidateDropVotes(s string) error {
	_, err := ParseDropVotes(s)
	return err
}

// parseUnsigned wraps strconv.ParseUint, which already refuses signs, spaces
// and the empty string for base 10.
func parseUnsigned(s string, bitSize int) (uint64, error) {
	return strconv.ParseUint(s, 10, bitSize)
}
