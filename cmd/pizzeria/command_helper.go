package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/config"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/container"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Settings  config.Settings
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with settings resolution and
// container initialization.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := commonOpts.Resolve(viper.GetViper())
		if err != nil {
			return err
		}

		logger := slog.Default()

		c, err := container.New(container.Options{
			Settings:  settings,
			Prompter:  newPrompter(cmd),
			Narration: narrationWriter(cmd),
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx, cancel := commonOpts.ApplyToContext(cmd.Context())
		defer cancel()

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Settings:  settings,
		}, cmd, args)
	}
}

// newPrompter reads orders from the command's input. A terminal gets the
// interactive prompt, anything else is read line by line.
func newPrompter(cmd *cobra.Command) ports.OrderPrompter {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && prompt.IsInteractive() {
		return prompt.NewTerminalPrompter(cmd.ErrOrStderr())
	}
	return prompt.NewLinePrompter(in, cmd.ErrOrStderr())
}

// narrationWriter returns where the kitchen narrates. Machine readable
// output keeps stdout clean, so narration moves to stderr.
func narrationWriter(cmd *cobra.Command) io.Writer {
	switch {
	case commonOpts.Quiet:
		return io.Discard
	case commonOpts.MachineReadable():
		return cmd.ErrOrStderr()
	default:
		return cmd.OutOrStdout()
	}
}
