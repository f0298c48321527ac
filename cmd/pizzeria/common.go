package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/config"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommonOptions contains flags shared across all commands.
type CommonOptions struct {
	// Output
	Format string

	// Kitchen
	StepDelay time.Duration
	TimeScale float64
	MenuFile  string

	// Execution
	Timeout time.Duration

	// Flags (bools grouped for alignment)
	Verbose bool
	Quiet   bool
	NoColor bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	d := config.DefaultSettings()
	return CommonOptions{
		Format:    d.Format,
		StepDelay: d.StepDelay,
		TimeScale: d.TimeScale,
	}
}

// RegisterFlags adds common flags to a command and its children.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	// Kitchen
	flags.DurationVar(&opts.StepDelay, "step-delay", opts.StepDelay,
		"Duration of one preparation step")
	flags.Float64Var(&opts.TimeScale, "time-scale", opts.TimeScale,
		"Multiplier applied to every kitchen delay (0 serves instantly)")
	flags.StringVar(&opts.MenuFile, "menu", opts.MenuFile,
		"YAML file with extra recipes")

	// Execution
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Stop taking further orders after this long (0 to disable)")

	// Output
	flags.StringVar(&opts.Format, "format", opts.Format,
		"Output format: "+strings.Join(output.NewFormatterFactory().SupportedFormats(), ", "))
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Verbose output")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
	flags.BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored output")
}

// BindFlags lets flags override the config file and environment.
func (opts *CommonOptions) BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	bindings := map[string]string{
		config.KeyStepDelay:    "step-delay",
		config.KeyTimeScale:    "time-scale",
		config.KeyMenuFile:     "menu",
		config.KeyOutputFormat: "format",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Resolve reads the effective settings from v into opts.
func (opts *CommonOptions) Resolve(v *viper.Viper) (config.Settings, error) {
	settings, err := config.FromViper(v)
	if err != nil {
		return config.Settings{}, err
	}

	opts.Format = settings.Format
	opts.StepDelay = settings.StepDelay
	opts.TimeScale = settings.TimeScale
	opts.MenuFile = settings.MenuFile

	if err := opts.ValidateFlags(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if opts.Verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	supported := output.NewFormatterFactory().SupportedFormats()
	valid := false
	for _, f := range supported {
		if opts.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(supported, ", "))
	}

	if opts.StepDelay < 0 {
		return fmt.Errorf("--step-delay must not be negative")
	}
	if opts.TimeScale < 0 {
		return fmt.Errorf("--time-scale must not be negative")
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}

	return nil
}

// Kitchen returns the kitchen timing for an order request.
func (opts *CommonOptions) Kitchen() dto.KitchenOptions {
	return dto.KitchenOptions{
		StepDelay: opts.StepDelay,
		TimeScale: opts.TimeScale,
	}
}

// FormatterOptions returns options for the output formatter.
func (opts *CommonOptions) FormatterOptions() ports.FormatterOptions {
	return ports.FormatterOptions{
		Indent:  true,
		NoColor: opts.NoColor,
	}
}

// MachineReadable reports whether output is meant for another program.
func (opts *CommonOptions) MachineReadable() bool {
	return opts.Format != "table"
}
