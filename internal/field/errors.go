package field

import "fmt"

// InputError reports a raw argument that failed its grammar or range check.
// It always describes a mistake the user can fix.
type InputError struct {
	// Field is the argument name, filled in by the caller that knows it
	Field    string
	Value    string
	Expected string
	Hint     string
	// Secret keeps Value out of the message
	Secret bool
	// Missing is set when no value was supplied at all
	Missing bool
	// Err is the grammar error underneath, if any
	Err error
}

// Missing reports an argument that was never supplied
func Missing(name string) *InputError {
	return &InputError{Field: name, Missing: true}
}

func (e *InputError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing required argument --%s", e.Field)
	}

	var msg string
	if e.Secret {
		msg = fmt.Sprintf("this value is not a valid %s", e.Expected)
	} else {
		msg = fmt.Sprintf("%q is not a valid %s", e.Value, e.Expected)
	}
	if e.Hint != "" {
		msg += ", this value " + e.Hint
	}
	if e.Field != "" {
		msg = fmt.Sprintf("invalid value for --%s: %s", e.Field, msg)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// WithField returns a copy of the error naming the argument it came from
func (e *InputError) WithField(name string) *InputError {
	c := *e
	c.Field = name
	return &c
}
