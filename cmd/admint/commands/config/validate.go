package config

import (
	"context"
	"fmt"

	"github.com/midir99/admint/internal/config"
	"github.com/urfave/cli/v3"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate configuration file syntax and values",
		ArgsUsage: "[config-file]",
		Action:    runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	configPath, err := resolvePath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "✓ Configuration is valid: %s\n", configPath)
	if cfg.ServerAddress != "" {
		fmt.Fprintf(out, "  Server: %s\n", cfg.ServerAddress)
	}
	fmt.Fprintf(out, "  Output: %s\n", cfg.OutputFormat())
	return nil
}
