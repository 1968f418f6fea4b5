package field

import (
	"github.com/asaskevich/govalidator"
)

const redacted = "********"

// AdminCredential authenticates privileged operations against the server
type AdminCredential struct {
	secret string
}

// ClientCredential is the password normal clients use to log in
type ClientCredential struct {
	secret string
}

// ParseAdminCredential accepts an ASCII string of at most MaxCredentialLen bytes
func ParseAdminCredential(s string) (AdminCredential, error) {
	if err := ValidateCredential(s); err != nil {
		return AdminCredential{}, err
	}
	return AdminCredential{secret: s}, nil
}

// ParseClientCredential accepts an ASCII string of at most MaxCredentialLen bytes
func ParseClientCredential(s string) (ClientCredential, error) {
	if err := ValidateCredential(s); err != nil {
		return ClientCredential{}, err
	}
	return ClientCredential{secret: s}, nil
}

// ValidateCredential is the shared key/password rule
func ValidateCredential(s string) error {
	if !govalidator.IsASCII(s) || len(s) > MaxCredentialLen {
		return &InputError{
			Value:    s,
			Secret:   true,
			Expected: "key or password",
			Hint:     "must have less than 33 characters and all must be ascii",
		}
	}
	return nil
}

// Reveal returns the secret for the transport that sends it to the server
func (c AdminCredential) Reveal() string { return c.secret }

func (c AdminCredential) String() string { return redacted }

// MarshalText keeps the secret out of rendered commands
func (c AdminCredential) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the secret for the transport that sends it to the server
func (c ClientCredential) Reveal() string { return c.secret }

func (c ClientCredential) String() string { return redacted }

// MarshalText keeps the secret out of rendered commands
func (c ClientCredential) MarshalText() ([]byte, error) { return []byte(redacted), nil }
