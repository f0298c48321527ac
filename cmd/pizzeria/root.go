package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reglet-dev/pizzeria/internal/infrastructure/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	commonOpts = DefaultCommonOptions()
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "pizzeria",
	Short: "Order pizzas and watch them being made",
	Long: `Pizzeria takes your order from the menu and has the waiter direct the
kitchen through every step: preparing the dough, adding the sauce, adding
the toppings and baking. Extra recipes can be loaded from a YAML menu file.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		setupLogging()
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pizzeria.yaml)")
	commonOpts.RegisterFlags(rootCmd)
	if err := commonOpts.BindFlags(viper.GetViper(), rootCmd); err != nil {
		panic(err)
	}
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pizzeria")
	}

	viper.SetEnvPrefix("PIZZERIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	switch {
	case commonOpts.Verbose:
		level = slog.LevelDebug
	case commonOpts.Quiet:
		level = slog.LevelError
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
