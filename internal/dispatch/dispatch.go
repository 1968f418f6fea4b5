// Package dispatch hands built commands to whatever carries them to the server.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/midir99/admint/internal/command"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Dispatcher delivers a command. It is only ever called with a fully
// validated Command.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd command.Command) error
}

// DispatcherFunc adapts a function to the Dispatcher interface
type DispatcherFunc func(ctx context.Context, cmd command.Command) error

func (f DispatcherFunc) Dispatch(ctx context.Context, cmd command.Command) error {
	return f(ctx, cmd)
}

// Envelope is the rendered form of a command
type Envelope struct {
	Kind command.Kind    `json:"kind" yaml:"kind"`
	Spec command.Command `json:"spec" yaml:"spec"`
}

// Printer writes each command to Out instead of sending it. Credentials are
// always rendered redacted.
type Printer struct {
	Out    io.Writer
	Format string
}

// NewPrinter returns a Printer for format, which must be yaml or json
func NewPrinter(out io.Writer, format string) (*Printer, error) {
	switch format {
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("unsupported output format %q: must be yaml or json", format)
	}
	return &Printer{Out: out, Format: format}, nil
}

func (p *Printer) Dispatch(ctx context.Context, cmd command.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"kind":   cmd.Kind(),
		"server": cmd.Server().String(),
	}).Debug("printing command")

	env := Envelope{Kind: cmd.Kind(), Spec: cmd}

	switch p.Format {
	case "json":
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("failed to render command: %w", err)
		}
	default:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("failed to render command: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to render command: %w", err)
		}
	}

	return nil
}
