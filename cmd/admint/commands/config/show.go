package config

import (
	"context"
	"fmt"

	"github.com/midir99/admint/internal/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Display the configuration",
		ArgsUsage: "[config-file]",
		Action:    runShow,
	}
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	configPath, err := resolvePath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Configuration: %s\n", configPath)
	fmt.Fprintln(out, "---")
	fmt.Fprint(out, string(data))
	return nil
}

// resolvePath picks the first argument, then --config, then the default config
func resolvePath(cmd *cli.Command) (string, error) {
	name := cmd.String("config")
	if cmd.Args().Len() > 0 {
		name = cmd.Args().First()
	}

	path, err := config.FindConfig(name)
	if err != nil {
		return "", fmt.Errorf("no config file specified and no default found: %w", err)
	}
	return path, nil
}
