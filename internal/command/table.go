package command

import (
	"github.com/midir99/admint/internal/field"
)

// Argument names shared between the table, the CLI and the builder
const (
	FieldAdminPassword = "admin-password"
	FieldServerAddress = "server-address"
	FieldDropVotes     = "drop-votes"
	FieldState         = "state"
	FieldListSize      = "list-size"
	FieldCapacity      = "capacity"
	FieldPassword      = "password"
	FieldKey           = "key"
	FieldIP            = "ip"
	FieldMAC           = "mac"
	FieldPattern       = "pattern"
	FieldStart         = "start"
	FieldEnd           = "end"
)

// Field describes one argument of a subcommand. The position of a Field in
// Spec.Fields is also its positional slot on the command line.
type Field struct {
	Name        string
	Short       string
	Placeholder string
	Usage       string
	Validate    func(string) error
	// Secret marks credentials, whose values never appear in messages
	Secret bool
}

// Spec declares a subcommand: its arguments, their validators, and how the
// validated strings become a Command.
type Spec struct {
	Name   Kind
	Usage  string
	Fields []Field
	decode func(v Values, b Base) (Command, error)
}

var (
	adminPasswordField = Field{
		Name:        FieldAdminPassword,
		Short:       "P",
		Placeholder: "ADMIN PASSWORD",
		Usage:       "The admin password of the server",
		Secret:      true,
		Validate:    field.ValidateCredential,
	}

	serverAddressField = Field{
		Name:        FieldServerAddress,
		Short:       "a",
		Placeholder: "SERVER IPV4 ADDRESS AND PORT",
		Usage:       "The socket address of the server",
		Validate:    field.ValidateSocketV4,
	}
)

// withCommon appends the admin password and server address, which every
// subcommand takes after its own arguments
func withCommon(fields ...Field) []Field {
	return append(fields, adminPasswordField, serverAddressField)
}

var table = []Spec{
	{
		Name:   KindRunningConfig,
		Usage:  "Get the running config of the server",
		Fields: withCommon(),
		decode: func(v Values, b Base) (Command, error) {
			return RunningConfig{Base: b}, nil
		},
	},
	{
		Name:  KindSetDropVotes,
		Usage: "Set the drop votes of the server, this command can drop users that are logged in the server",
		Fields: withCommon(Field{
			Name:        FieldDropVotes,
			Short:       "d",
			Placeholder: "DROP VOTES",
			Usage:       "The new drop votes value for the server",
			Validate:    field.ValidateDropVotes,
		}),
		decode: func(v Values, b Base) (Command, error) {
			votes, err := parse(v, FieldDropVotes, field.ParseDropVotes)
			if err != nil {
				return nil, err
			}
			return SetDropVotes{Base: b, DropVotes: votes}, nil
		},
	},
	{
		Name:  KindSetDropVerification,
		Usage: "Enable/Disable the drop verification in the server",
		Fields: withCommon(Field{
			Name:        FieldState,
			Short:       "s",
			Placeholder: "STATE",
			Usage:       "The new state of the drop verification in the server",
			Validate:    field.ValidateBool,
		}),
		decode: func(v Values, b Base) (Command, error) {
			state, err := parse(v, FieldState, field.ParseBool)
			if err != nil {
				return nil, err
			}
			return SetDropVerification{Base: b, State: state}, nil
		},
	},
	{
		Name:  KindSetListSize,
		Usage: "Set the list size of the server",
		Fields: withCommon(Field{
			Name:        FieldListSize,
			Short:       "l",
			Placeholder: "LIST SIZE",
			Usage:       "The new list size of the server",
			Validate:    field.ValidateListSize,
		}),
		decode: func(v Values, b Base) (Command, error) {
			size, err := parse(v, FieldListSize, field.ParseListSize)
			if err != nil {
				return nil, err
			}
			return SetListSize{Base: b, ListSize: size}, nil
		},
	},
	{
		Name:  KindSetCapacity,
		Usage: "Set the capacity of the server",
		Fields: withCommon(Field{
			Name:        FieldCapacity,
			Short:       "c",
			Placeholder: "CAPACITY",
			Usage:       "The new capacity of the server",
			Validate:    field.ValidateCapacity,
		}),
		decode: func(v Values, b Base) (Command, error) {
			capacity, err := parse(v, FieldCapacity, field.ParseCapacity)
			if err != nil {
				return nil, err
			}
			return SetCapacity{Base: b, Capacity: capacity}, nil
		},
	},
	{
		Name:  KindSetPassword,
		Usage: "Set the password for the normal users",
		Fields: withCommon(Field{
			Name:        FieldPassword,
			Short:       "p",
			Placeholder: "PASSWORD",
			Usage:       "The new password for the clients",
			Secret:      true,
			Validate:    field.ValidateCredential,
		}),
		decode: func(v Values, b Base) (Command, error) {
			password, err := parse(v, FieldPassword, field.ParseClientCredential)
			if err != nil {
				return nil, err
			}
			return SetPassword{Base: b, Password: password}, nil
		},
	},
	{
		Name:  KindSetKey,
		Usage: "Set the password for the admin user",
		Fields: withCommon(Field{
			Name:        FieldKey,
			Short:       "k",
			Placeholder: "KEY",
			Usage:       "The new password for the admin",
			Secret:      true,
			Validate:    field.ValidateCredential,
		}),
		decode: func(v Values, b Base) (Command, error) {
			key, err := parse(v, FieldKey, field.ParseAdminCredential)
			if err != nil {
				return nil, err
			}
			return SetKey{Base: b, Key: key}, nil
		},
	},
	{
		Name:  KindDrop,
		Usage: "Drop a client from the server with an specific ip address",
		Fields: withCommon(Field{
			Name:        FieldIP,
			Short:       "i",
			Placeholder: "IP ADDRESS",
			Usage:       "The IPv4 address of the client to drop",
			Validate:    field.ValidateIPv4,
		}),
		decode: func(v Values, b Base) (Command, error) {
			ip, err := parse(v, FieldIP, field.ParseIPv4)
			if err != nil {
				return nil, err
			}
			return Drop{Base: b, IP: ip}, nil
		},
	},
	{
		Name:  KindGetMac,
		Usage: "Get a client from the server with an specific mac address",
		Fields: withCommon(Field{
			Name:        FieldMAC,
			Short:       "m",
			Placeholder: "MAC",
			Usage:       "The mac to search, it could be aaaa.bbbb.cccc, aa:aa:bb:bb:cc:cc or aa-aa-bb-bb-cc-cc",
			Validate:    field.ValidateMAC,
		}),
		decode: func(v Values, b Base) (Command, error) {
			m, err := parse(v, FieldMAC, field.ParseMAC)
			if err != nil {
				return nil, err
			}
			return GetMac{Base: b, MAC: m}, nil
		},
	},
	{
		Name:  KindGetUsername,
		Usage: "Get a list of clients from the server with an specific pattern in their usernames",
		Fields: withCommon(
			Field{
				Name:        FieldPattern,
				Short:       "p",
				Placeholder: "PATTERN",
				Usage:       "The pattern to search",
				Validate:    field.ValidateUsernamePattern,
			},
			Field{
				Name:        FieldStart,
				Short:       "s",
				Placeholder: "START_INDEX",
				Usage:       "The start index of the list",
				Validate:    field.ValidateIndex,
			},
		),
		decode: func(v Values, b Base) (Command, error) {
			pattern, err := parse(v, FieldPattern, field.ParseUsernamePattern)
			if err != nil {
				return nil, err
			}
			start, err := parse(v, FieldStart, field.ParseIndex)
			if err != nil {
				return nil, err
			}
			return GetUsername{Base: b, Pattern: pattern, Start: start}, nil
		},
	},
	{
		Name:  KindGetIndex,
		Usage: "Get a list of clients from the server",
		Fields: withCommon(
			Field{
				Name:        FieldStart,
				Short:       "s",
				Placeholder: "START_INDEX",
				Usage:       "The start index of the list",
				Validate:    field.ValidateIndex,
			},
			Field{
				Name:        FieldEnd,
				Short:       "e",
				Placeholder: "END_INDEX",
				Usage:       "The end index of the list",
				Validate:    field.ValidateIndex,
			},
		),
		decode: func(v Values, b Base) (Command, error) {
			start, err := parse(v, FieldStart, field.ParseIndex)
			if err != nil {
				return nil, err
			}
			end, err := parse(v, FieldEnd, field.ParseIndex)
			if err != nil {
				return nil, err
			}
			return GetIndex{Base: b, Range: field.IndexRange{Start: start, End: end}}, nil
		},
	},
}
