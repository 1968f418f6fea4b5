package command

import (
	"errors"
	"fmt"

	"github.com/midir99/admint/internal/field"
)

// Values maps argument names to their raw command line strings
type Values map[string]string

// DispatchError means a subcommand name reached the builder without a table
// entry. It points at a registration bug in the CLI, never at bad user input.
type DispatchError struct {
	Name string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("command not understood: no builder registered for %q", e.Name)
}

// Specs returns the subcommand table in declaration order
func Specs() []Spec {
	specs := make([]Spec, len(table))
	copy(specs, table)
	return specs
}

// Lookup finds the table entry for a subcommand name
func Lookup(name string) (Spec, bool) {
	for _, spec := range table {
		if string(spec.Name) == name {
			return spec, true
		}
	}
	return Spec{}, false
}

// Validate checks raw values against the fields of s in order and returns the
// first failure
func (s Spec) Validate(raw Values) error {
	return s.validate(raw, false)
}

// ValidatePresent is Validate without the missing-argument check. It lets a
// caller reject bad input before asking the user for the values still absent.
func (s Spec) ValidatePresent(raw Values) error {
	return s.validate(raw, true)
}

func (s Spec) validate(raw Values, skipMissing bool) error {
	for _, f := range s.Fields {
		value, ok := raw[f.Name]
		if !ok {
			if skipMissing {
				continue
			}
			return field.Missing(f.Name)
		}
		if err := f.Validate(value); err != nil {
			return named(f.Name, err)
		}
	}
	return nil
}

// Validate checks the raw values of a named subcommand
func Validate(name string, raw Values) error {
	spec, ok := Lookup(name)
	if !ok {
		return &DispatchError{Name: name}
	}
	return spec.Validate(raw)
}

// Build re-parses the raw values of a subcommand into its Command variant.
//
// An unknown name yields a *DispatchError. A missing or malformed value yields a
// *field.InputError naming the argument; no Command is returned in either case.
func Build(name string, raw Values) (Command, error) {
	spec, ok := Lookup(name)
	if !ok {
		return nil, &DispatchError{Name: name}
	}

	if err := spec.Validate(raw); err != nil {
		return nil, err
	}

	admin, err := parse(raw, FieldAdminPassword, field.ParseAdminCredential)
	if err != nil {
		return nil, err
	}
	server, err := parse(raw, FieldServerAddress, field.ParseSocketV4)
	if err != nil {
		return nil, err
	}

	return spec.decode(raw, Base{AdminPassword: admin, ServerAddress: server})
}

func parse[T any](raw Values, name string, fn func(string) (T, error)) (T, error) {
	var zero T

	value, ok := raw[name]
	if !ok {
		return zero, field.Missing(name)
	}

	parsed, err := fn(value)
	if err != nil {
		return zero, named(name, err)
	}
	return parsed, nil
}

func named(name string, err error) error {
	var inputErr *field.InputError
	if errors.As(err, &inputErr) {
		return inputErr.WithField(name)
	}
	return fmt.Errorf("invalid value for --%s: %w", name, err)
}
