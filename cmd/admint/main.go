package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	admincmd "github.com/midir99/admint/cmd/admint/commands/admin"
	authcmd "github.com/midir99/admint/cmd/admint/commands/auth"
	configcmd "github.com/midir99/admint/cmd/admint/commands/config"
	"github.com/midir99/admint/internal/command"
	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/logging"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitDispatch = 3
)

func newApp(dispatcher admincmd.DispatcherFactory) *cli.Command {
	commands := admincmd.Commands(dispatcher)
	commands = append(commands, authcmd.Commands(), configcmd.Commands())

	return &cli.Command{
		Name:    "admint",
		Usage:   "Administer a MINT server",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file name or absolute path",
				Sources: cli.EnvVars("ADMINT_CONFIG"),
				Local:   true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ADMINT_LOG_LEVEL"),
				Local:   true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format, yaml or json (defaults to the config file)",
				Local:   true,
				Validator: func(s string) error {
					if s != config.OutputYAML && s != config.OutputJSON {
						return fmt.Errorf("must be %s or %s", config.OutputYAML, config.OutputJSON)
					}
					return nil
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, logging.Setup(cmd.String("log-level"), cmd.ErrWriter)
		},
		// Reached only when the first argument names no subcommand
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Args().Present() {
				return fmt.Errorf("a command is required, run 'admint --help' to list them")
			}
			return fmt.Errorf("unknown command %q, run 'admint --help' to list them", cmd.Args().First())
		},
		Commands: commands,
	}
}

// exitCode maps an error returned by the app to the process exit status
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var dispatchErr *command.DispatchError
	if errors.As(err, &dispatchErr) {
		fmt.Fprintln(stderr, "I didn't understand your command")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDispatch
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

func main() {
	app := newApp(admincmd.Print)
	os.Exit(exitCode(app.Run(context.Background(), os.Args), os.Stderr))
}
