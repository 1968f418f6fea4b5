package auth

import (
	"context"
	"fmt"

	"github.com/midir99/admint/cmd/admint/commands/admin"
	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/command"
	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/field"
	"github.com/midir99/admint/internal/secrets"
	"github.com/urfave/cli/v3"
)

// Commands returns the top-level auth command
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage stored admin passwords",
		Commands: []*cli.Command{
			saveCommand(),
			clearCommand(),
		},
	}
}

func serverFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      command.FieldServerAddress,
		Aliases:   []string{"a"},
		Usage:     "socket address of the server (defaults to the config file)",
		Sources:   cli.EnvVars(admin.EnvServerAddress),
		Validator: field.ValidateSocketV4,
	}
}

// saveCommand stores the admin password of a server in the OS keyring
func saveCommand() *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Store the admin password of a server",
		Flags: []cli.Flag{
			serverFlag(),
			&cli.StringFlag{
				Name:    command.FieldAdminPassword,
				Aliases: []string{"P"},
				Usage:   "admin password to store (prompted for when omitted)",
				Sources: cli.EnvVars(admin.EnvAdminPassword),
			},
		},
		Action: runSave,
	}
}

func clearCommand() *cli.Command {
	return &cli.Command{
		Name:   "clear",
		Usage:  "Forget the stored admin password of a server",
		Flags:  []cli.Flag{serverFlag()},
		Action: runClear,
	}
}

func runSave(ctx context.Context, cmd *cli.Command) error {
	server, err := resolveServer(cmd)
	if err != nil {
		return err
	}

	password := cmd.String(command.FieldAdminPassword)
	if password == "" {
		password, err = admin.PromptPassword()
		if err != nil {
			return err
		}
	}
	if password == "" {
		return field.Missing(command.FieldAdminPassword)
	}

	if err := secrets.StoreAdminPassword(server, password); err != nil {
		return fmt.Errorf("failed to store admin password: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Stored admin password for %s\n", server)
	return nil
}

func runClear(ctx context.Context, cmd *cli.Command) error {
	server, err := resolveServer(cmd)
	if err != nil {
		return err
	}

	if err := secrets.ClearAdminPassword(server); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Cleared admin password for %s\n", server)
	return nil
}

// resolveServer reads --server-address, falling back to the config file
func resolveServer(cmd *cli.Command) (addr.SocketV4, error) {
	value := cmd.String(command.FieldServerAddress)
	if value == "" {
		cfg, _, err := config.LoadOrDefault(cmd.String("config"))
		if err != nil {
			return addr.SocketV4{}, fmt.Errorf("failed to load config: %w", err)
		}
		value = cfg.ServerAddress
	}
	if value == "" {
		return addr.SocketV4{}, field.Missing(command.FieldServerAddress)
	}

	server, err := field.ParseSocketV4(value)
	if err != nil {
		return addr.SocketV4{}, err
	}
	return server, nil
}
