package config

import (
	"context"
	"fmt"
	"os"

	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/field"
	"github.com/urfave/cli/v3"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a new configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "name for the config file (without .yaml extension)",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "overwrite existing config file",
			},
			&cli.StringFlag{
				Name:      "server-address",
				Aliases:   []string{"a"},
				Usage:     "default server socket address (e.g., 192.168.1.10:4000)",
				Validator: field.ValidateSocketV4,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "default output format, yaml or json",
				Value: config.OutputYAML,
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	if _, err := config.EnsureConfigDir(); err != nil {
		return err
	}

	configPath, err := config.Path(cmd.String("name"))
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
	}

	cfg := config.Default()
	cfg.ServerAddress = cmd.String("server-address")
	cfg.Output = cmd.String("output")

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Created config file: %s\n", configPath)
	if cfg.ServerAddress == "" {
		fmt.Fprintln(cmd.Root().Writer, "\nNo server address set; pass --server-address to every command or edit the file.")
	}
	return nil
}
