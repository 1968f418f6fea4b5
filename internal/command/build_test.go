package command

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/field"
	"github.com/midir99/admint/internal/mac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var server = addr.SocketV4{IP: addr.IPv4{10, 0, 0, 1}, Port: 9000}

func withBase(v Values) Values {
	v[FieldAdminPassword] = "secret"
	v[FieldServerAddress] = "10.0.0.1:9000"
	return v
}

func TestBuild_SetCapacity(t *testing.T) {
	cmd, err := Build("set-capacity", Values{
		"capacity":       "10",
		"admin-password": "secret",
		"server-address": "10.0.0.1:9000",
	})
	require.NoError(t, err)

	assert.Equal(t, KindSetCapacity, cmd.Kind())
	assert.Equal(t, "secret", cmd.Admin().Reveal())
	assert.Equal(t, server, cmd.Server())

	sc, ok := cmd.(SetCapacity)
	require.True(t, ok, "expected SetCapacity, got %T", cmd)
	assert.Equal(t, field.Capacity(10), sc.Capacity)
}

func TestBuild_AllKinds(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		raw   Values
		check func(t *testing.T, cmd Command)
	}{
		{
			name: "running config",
			kind: KindRunningConfig,
			raw:  withBase(Values{}),
			check: func(t *testing.T, cmd Command) {
				assert.IsType(t, RunningConfig{}, cmd)
			},
		},
		{
			name: "drop votes",
			kind: KindSetDropVotes,
			raw:  withBase(Values{FieldDropVotes: "3"}),
			check: func(t *testing.T, cmd Command) {
				assert.Equal(t, field.DropVotes(3), cmd.(SetDropVotes).DropVotes)
			},
		},
		{
			name: "drop verification",
			kind: KindSetDropVerification,
			raw:  withBase(Values{FieldState: "false"}),
			check: func(t *testing.T, cmd Command) {
				assert.False(t, cmd.(SetDropVerification).State)
			},
		},
		{
			name: "list size zero",
			kind: KindSetListSize,
			raw:  withBase(Values{FieldListSize: "0"}),
			check: func(t *testing.T, cmd Command) {
				assert.Equal(t, field.ListSize(0), cmd.(SetListSize).ListSize)
			},
		},
		{
			name: "client password",
			kind: KindSetPassword,
			raw:  withBase(Values{FieldPassword: "hunter2"}),
			check: func(t *testing.T, cmd Command) {
				assert.Equal(t, "hunter2", cmd.(SetPassword).Password.Reveal())
			},
		},
		{
			name: "admin key",
			kind: KindSetKey,
			raw:  withBase(Values{FieldKey: "new-admin-secret"}),
			check: func(t *testing.T, cmd Command) {
				sk := cmd.(SetKey)
				assert.Equal(t, "new-admin-secret", sk.Key.Reveal())
				assert.Equal(t, "secret", sk.Admin().Reveal())
			},
		},
		{
			name: "drop client",
			kind: KindDrop,
			raw:  withBase(Values{FieldIP: "192.168.0.20"}),
			check: func(t *testing.T, cmd Command) {
				assert.Equal(t, addr.IPv4{192, 168, 0, 20}, cmd.(Drop).IP)
			},
		},
		{
			name: "mac lookup",
			kind: KindGetMac,
			raw:  withBase(Values{FieldMAC: "00-1a-2b-3c-4d-5e"}),
			check: func(t *testing.T, cmd Command) {
				m := cmd.(GetMac).MAC
				assert.Equal(t, [6]byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}, m.Octets())
				assert.Equal(t, mac.Hyphen, m.Notation())
			},
		},
		{
			name: "username search",
			kind: KindGetUsername,
			raw:  withBase(Values{FieldPattern: "jorge*", FieldStart: "20"}),
			check: func(t *testing.T, cmd Command) {
				gu := cmd.(GetUsername)
				assert.Equal(t, field.UsernamePattern("jorge*"), gu.Pattern)
				assert.Equal(t, field.Index(20), gu.Start)
			},
		},
		{
			name: "index range inverted",
			kind: KindGetIndex,
			raw:  withBase(Values{FieldStart: "9", FieldEnd: "3"}),
			check: func(t *testing.T, cmd Command) {
				assert.Equal(t, field.IndexRange{Start: 9, End: 3}, cmd.(GetIndex).Range)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Build(string(tt.kind), tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cmd.Kind())
			assert.Equal(t, server, cmd.Server())
			tt.check(t, cmd)
		})
	}
}

func TestBuild_UnknownCommand(t *testing.T) {
	cmd, err := Build("set-colour", withBase(Values{}))
	require.Error(t, err)
	assert.Nil(t, cmd)

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, "set-colour", dispatchErr.Name)

	var inputErr *field.InputError
	assert.False(t, errors.As(err, &inputErr), "dispatch errors must not look like input errors")

	assert.ErrorAs(t, Validate("set-colour", Values{}), &dispatchErr)
}

func TestBuild_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		raw    Values
		field  string
		errMsg string
	}{
		{
			name:   "capacity too small",
			kind:   KindSetCapacity,
			raw:    withBase(Values{FieldCapacity: "1"}),
			field:  FieldCapacity,
			errMsg: "between [2,65535]",
		},
		{
			name:   "bad server address",
			kind:   KindRunningConfig,
			raw:    Values{FieldAdminPassword: "secret", FieldServerAddress: "10.0.0.1"},
			field:  FieldServerAddress,
			errMsg: "IPv4 socket address",
		},
		{
			name:   "missing payload",
			kind:   KindDrop,
			raw:    withBase(Values{}),
			field:  FieldIP,
			errMsg: "missing required argument --ip",
		},
		{
			name:   "missing server",
			kind:   KindRunningConfig,
			raw:    Values{FieldAdminPassword: "secret"},
			field:  FieldServerAddress,
			errMsg: "missing required argument",
		},
		{
			name:   "first failure wins in table order",
			kind:   KindGetIndex,
			raw:    Values{FieldStart: "a", FieldEnd: "b", FieldAdminPassword: "secret", FieldServerAddress: "bad"},
			field:  FieldStart,
			errMsg: `"a" is not a valid unsigned number`,
		},
		{
			name:   "bad mac",
			kind:   KindGetMac,
			raw:    withBase(Values{FieldMAC: "00:1A:2B:3C:4D"}),
			field:  FieldMAC,
			errMsg: "not a valid mac address",
		},
		{
			name:   "admin password too long",
			kind:   KindSetKey,
			raw:    Values{FieldKey: "ok", FieldAdminPassword: "0123456789012345678901234567890123", FieldServerAddress: "10.0.0.1:1"},
			field:  FieldAdminPassword,
			errMsg: "less than 33 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Build(string(tt.kind), tt.raw)
			require.Error(t, err)
			assert.Nil(t, cmd)

			var inputErr *field.InputError
			require.True(t, errors.As(err, &inputErr), "expected an input error, got %T", err)
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Contains(t, err.Error(), tt.errMsg)

			assert.Equal(t, err.Error(), Validate(string(tt.kind), tt.raw).Error())
		})
	}
}

func TestBuild_RendersWithoutSecrets(t *testing.T) {
	cmd, err := Build("set-password", withBase(Values{FieldPassword: "client-pass"}))
	require.NoError(t, err)

	data, err := json.Marshal(cmd)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "client-pass")
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"server_address":"10.0.0.1:9000"`)
}

func TestSpecValidatePresent(t *testing.T) {
	spec, ok := Lookup(string(KindSetCapacity))
	require.True(t, ok)

	tests := []struct {
		name   string
		raw    Values
		field  string
		errMsg string
	}{
		{
			name: "nothing supplied",
			raw:  Values{},
		},
		{
			name: "valid partial input",
			raw:  Values{FieldCapacity: "10", FieldServerAddress: "10.0.0.1:9000"},
		},
		{
			name:   "invalid value with password still missing",
			raw:    Values{FieldCapacity: "1", FieldServerAddress: "10.0.0.1:9000"},
			field:  FieldCapacity,
			errMsg: "between [2,65535]",
		},
		{
			name:   "invalid server",
			raw:    Values{FieldServerAddress: "10.0.0.1"},
			field:  FieldServerAddress,
			errMsg: "IPv4 socket address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := spec.ValidatePresent(tt.raw)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}

			var inputErr *field.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Error(t, spec.Validate(Values{FieldCapacity: "10"}), "Validate still reports missing arguments")
}
