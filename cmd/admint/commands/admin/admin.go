// Package admin exposes one subcommand per entry of the command table.
package admin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/command"
	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/dispatch"
	"github.com/midir99/admint/internal/secrets"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	// EnvAdminPassword supplies --admin-password
	EnvAdminPassword = "ADMINT_ADMIN_PASSWORD"
	// EnvServerAddress supplies --server-address
	EnvServerAddress = "ADMINT_SERVER_ADDRESS"
)

// DispatcherFactory picks the dispatcher for one invocation
type DispatcherFactory func(cmd *cli.Command, cfg *config.Config) (dispatch.Dispatcher, error)

// PromptPassword asks for the admin password when it was not supplied any other
// way. An empty result means nothing was entered.
var PromptPassword = promptPassword

// Print renders the built command on the root writer, in the format chosen by
// --output or the config file
func Print(cmd *cli.Command, cfg *config.Config) (dispatch.Dispatcher, error) {
	format := cmd.String("output")
	if format == "" {
		format = cfg.OutputFormat()
	}
	return dispatch.NewPrinter(cmd.Root().Writer, format)
}

// Commands returns a subcommand for every entry of the command table
func Commands(newDispatcher DispatcherFactory) []*cli.Command {
	specs := command.Specs()
	cmds := make([]*cli.Command, 0, len(specs))
	for _, spec := range specs {
		cmds = append(cmds, newCommand(spec, newDispatcher))
	}
	return cmds
}

func newCommand(spec command.Spec, newDispatcher DispatcherFactory) *cli.Command {
	placeholders := make([]string, len(spec.Fields))
	flags := make([]cli.Flag, 0, len(spec.Fields))
	for i, f := range spec.Fields {
		placeholders[i] = "[" + f.Placeholder + "]"
		flags = append(flags, newFlag(f))
	}

	return &cli.Command{
		Name:      string(spec.Name),
		Usage:     spec.Usage,
		ArgsUsage: strings.Join(placeholders, " "),
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, spec, newDispatcher)
		},
	}
}

func newFlag(f command.Field) cli.Flag {
	flag := &cli.StringFlag{
		Name:    f.Name,
		Aliases: []string{f.Short},
		Usage:   f.Usage,
	}

	// The flag parser echoes rejected values, so secrets are only checked by the builder
	if !f.Secret {
		flag.Validator = f.Validate
	}

	if env, ok := envFallback[f.Name]; ok {
		flag.Usage += " [$" + env + "]"
	}

	return flag
}

// envFallback names the variables consulted after flags and positional
// arguments. They are not flag sources: a flag set from the environment would
// take a positional slot away.
var envFallback = map[string]string{
	command.FieldAdminPassword: EnvAdminPassword,
	command.FieldServerAddress: EnvServerAddress,
}

func run(ctx context.Context, cmd *cli.Command, spec command.Spec, newDispatcher DispatcherFactory) error {
	log := logrus.WithField("command", spec.Name)

	raw := command.Values{}
	var free []command.Field
	for _, f := range spec.Fields {
		if cmd.IsSet(f.Name) {
			raw[f.Name] = cmd.String(f.Name)
			log.WithField("argument", f.Name).Debug("resolved from flag")
			continue
		}
		free = append(free, f)
	}

	// Positional arguments fill, in table order, the fields no flag has set
	args := cmd.Args()
	if args.Len() > len(free) {
		return fmt.Errorf("too many positional arguments for %s: got %d, only %d fields are not set by flags",
			spec.Name, args.Len(), len(free))
	}
	for i := 0; i < args.Len(); i++ {
		raw[free[i].Name] = args.Get(i)
		log.WithField("argument", free[i].Name).Debug("resolved from positional argument")
	}

	for name, env := range envFallback {
		if _, ok := raw[name]; ok {
			continue
		}
		if value := os.Getenv(env); value != "" {
			raw[name] = value
			log.WithField("argument", name).Debug("resolved from environment")
		}
	}

	cfg, cfgPath, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, ok := raw[command.FieldServerAddress]; !ok && cfg.ServerAddress != "" {
		raw[command.FieldServerAddress] = cfg.ServerAddress
		log.WithField("config", cfgPath).Debug("server address resolved from config file")
	}

	// Reject what was typed before reaching for the keyring or a prompt
	if err := spec.ValidatePresent(raw); err != nil {
		return err
	}

	if _, ok := raw[command.FieldAdminPassword]; !ok {
		password, err := fallbackPassword(raw[command.FieldServerAddress])
		if err != nil {
			return err
		}
		if password != "" {
			raw[command.FieldAdminPassword] = password
		}
	}

	built, err := command.Build(string(spec.Name), raw)
	if err != nil {
		return err
	}
	log.WithField("server", built.Server().String()).Info("command built")

	d, err := newDispatcher(cmd, cfg)
	if err != nil {
		return err
	}
	return d.Dispatch(ctx, built)
}

// fallbackPassword looks in the keyring for server, then prompts
func fallbackPassword(server string) (string, error) {
	if sa, err := addr.ParseSocketV4(server); err == nil {
		password, err := secrets.LoadAdminPassword(sa)
		if err == nil {
			logrus.WithField("server", server).Debug("admin password resolved from keyring")
			return password, nil
		}
		logrus.WithError(err).Debug("no stored admin password")
	}

	return PromptPassword()
}

// promptPassword reads the password without echo, and only from a terminal
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Admin password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
