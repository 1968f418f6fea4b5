// Package command turns validated raw arguments into typed administrative
// commands for the MINT server.
//
// A Command is one of a closed set of variants. Each variant embeds Base, which
// carries the admin credential and server address every operation needs, and owns
// exactly the payload its operation sends.
package command

import (
	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/field"
	"github.com/midir99/admint/internal/mac"
)

// Kind names a subcommand
type Kind string

const (
	KindRunningConfig       Kind = "running-config"
	KindSetDropVotes        Kind = "set-dropvotes"
	KindSetDropVerification Kind = "set-dropverification"
	KindSetListSize         Kind = "set-listsize"
	KindSetCapacity         Kind = "set-capacity"
	KindSetPassword         Kind = "set-password"
	KindSetKey              Kind = "set-key"
	KindDrop                Kind = "drop"
	KindGetMac              Kind = "get-mac"
	KindGetUsername         Kind = "get-username"
	KindGetIndex            Kind = "get-index"
)

// Command is an immutable administrative operation ready to hand to a dispatcher.
// Only the variants in this package implement it.
type Command interface {
	Kind() Kind
	Admin() field.AdminCredential
	Server() addr.SocketV4
	command()
}

// Base holds the fields shared by every command
type Base struct {
	AdminPassword field.AdminCredential `json:"admin_password" yaml:"admin_password"`
	ServerAddress addr.SocketV4         `json:"server_address" yaml:"server_address"`
}

func (b Base) Admin() field.AdminCredential { return b.AdminPassword }
func (b Base) Server() addr.SocketV4         { return b.ServerAddress }
func (Base) command()                        {}

type (
	// RunningConfig asks for the running configuration of the server
	RunningConfig struct {
		Base `yaml:",inline"`
	}

	// SetDropVotes changes how many votes evict a logged in client
	SetDropVotes struct {
		Base      `yaml:",inline"`
		DropVotes field.DropVotes `json:"drop_votes" yaml:"drop_votes"`
	}

	// SetDropVerification turns drop verification on or off
	SetDropVerification struct {
		Base  `yaml:",inline"`
		State bool `json:"state" yaml:"state"`
	}

	// SetListSize changes the size of listings returned by the server
	SetListSize struct {
		Base     `yaml:",inline"`
		ListSize field.ListSize `json:"list_size" yaml:"list_size"`
	}

	// SetCapacity changes the maximum number of clients
	SetCapacity struct {
		Base     `yaml:",inline"`
		Capacity field.Capacity `json:"capacity" yaml:"capacity"`
	}

	// SetPassword changes the password normal clients log in with
	SetPassword struct {
		Base     `yaml:",inline"`
		Password field.ClientCredential `json:"password" yaml:"password"`
	}

	// SetKey changes the admin password itself
	SetKey struct {
		Base `yaml:",inline"`
		Key  field.AdminCredential `json:"key" yaml:"key"`
	}

	// Drop disconnects the client at IP
	Drop struct {
		Base `yaml:",inline"`
		IP   addr.IPv4 `json:"ip" yaml:"ip"`
	}

	// GetMac looks up the client with a mac address
	GetMac struct {
		Base `yaml:",inline"`
		MAC  mac.Address `json:"mac" yaml:"mac"`
	}

	// GetUsername lists clients whose username matches Pattern, from Start on
	GetUsername struct {
		Base    `yaml:",inline"`
		Pattern field.UsernamePattern `json:"pattern" yaml:"pattern"`
		Start   field.Index           `json:"start" yaml:"start"`
	}

	// GetIndex lists the clients between two positions
	GetIndex struct {
		Base  `yaml:",inline"`
		Range field.IndexRange `json:"range" yaml:"range"`
	}
)

func (RunningConfig) Kind() Kind       { return KindRunningConfig }
func (SetDropVotes) Kind() Kind        { return KindSetDropVotes }
func (SetDropVerification) Kind() Kind { return KindSetDropVerification }
func (SetListSize) Kind() Kind         { return KindSetListSize }
func (SetCapacity) Kind() Kind         { return KindSetCapacity }
func (SetPassword) Kind() Kind         { return KindSetPassword }
func (SetKey) Kind() Kind              { return KindSetKey }
func (Drop) Kind() Kind                { return KindDrop }
func (GetMac) Kind() Kind              { return KindGetMac }
func (GetUsername) Kind() Kind         { return KindGetUsername }
func (GetIndex) Kind() Kind            { return KindGetIndex }
