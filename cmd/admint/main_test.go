package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	admincmd "github.com/midir99/admint/cmd/admint/commands/admin"
	"github.com/midir99/admint/internal/command"
	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"github.com/zalando/go-keyring"
)

func isolate(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	t.Setenv(config.ConfigDirEnv, t.TempDir())
	for _, env := range []string{"ADMINT_CONFIG", "ADMINT_LOG_LEVEL", admincmd.EnvAdminPassword, admincmd.EnvServerAddress} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	orig := admincmd.PromptPassword
	admincmd.PromptPassword = func() (string, error) { return "", nil }
	t.Cleanup(func() { admincmd.PromptPassword = orig })
}

func TestExitCodes(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		stderr   string
	}{
		{
			name:     "success",
			args:     []string{"set-dropvotes", "2", "secret", "10.0.0.1:9000"},
			wantCode: exitOK,
		},
		{
			name:     "invalid input",
			args:     []string{"set-dropvotes", "0", "secret", "10.0.0.1:9000"},
			wantCode: exitFailure,
			stderr:   "Error: invalid value for --drop-votes",
		},
		{
			name:     "unknown command is a user error",
			args:     []string{"set-colour"},
			wantCode: exitFailure,
			stderr:   `Error: unknown command "set-colour"`,
		},
		{
			name:     "no command",
			args:     []string{},
			wantCode: exitFailure,
			stderr:   "a command is required",
		},
		{
			name:     "bad log level",
			args:     []string{"--log-level", "loud", "running-config", "secret", "10.0.0.1:9000"},
			wantCode: exitFailure,
			stderr:   "unable to parse logging level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			app := newApp(func(*cli.Command, *config.Config) (dispatch.Dispatcher, error) {
				return dispatch.DispatcherFunc(func(context.Context, command.Command) error {
					calls++
					return nil
				}), nil
			})
			var stdout, stderr bytes.Buffer
			app.Writer = &stdout
			app.ErrWriter = &stderr

			err := app.Run(context.Background(), append([]string{"admint"}, tt.args...))
			code := exitCode(err, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr.String(), tt.stderr)
			if tt.wantCode != exitDispatch {
				assert.NotContains(t, stderr.String(), "I didn't understand your command")
			}
			if tt.wantCode == exitOK {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls)
			}
		})
	}
}

func TestExitCode_WrappedDispatchError(t *testing.T) {
	var stderr bytes.Buffer
	err := fmt.Errorf("routing: %w", &command.DispatchError{Name: "x"})
	assert.Equal(t, exitDispatch, exitCode(err, &stderr))
	assert.Contains(t, stderr.String(), "I didn't understand your command")

	stderr.Reset()
	assert.Equal(t, exitFailure, exitCode(errors.New("boom"), &stderr))
	assert.Equal(t, "Error: boom\n", stderr.String())
}

func TestPrintsBuiltCommand(t *testing.T) {
	isolate(t)

	app := newApp(admincmd.Print)
	var stdout bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(context.Background(), []string{"admint", "-o", "json", "set-dropverification", "true", "secret", "10.0.0.1:9000"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"kind": "set-dropverification"`)
	assert.Contains(t, stdout.String(), `"state": true`)
}
