package config

import "github.com/urfave/cli/v3"

// Commands returns the top-level config command
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the client configuration file",
		Commands: []*cli.Command{
			initCommand(),
			validateCommand(),
			showCommand(),
		},
	}
}
