// Package container provides dependency injection for the application.
package container

import (
	"io"
	"log/slog"

	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/application/services"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/config"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/output"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/persistence/memory"
)

// Container holds all application dependencies.
type Container struct {
	orderService     *services.OrderService
	menuService      *services.MenuService
	formatterFactory ports.OutputFormatterFactory
	settings         config.Settings
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger    *slog.Logger
	Prompter  ports.OrderPrompter // nil when every order names its tokens
	Narration io.Writer           // kitchen narration, io.Discard when nil
	Settings  config.Settings
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.DefaultSettings()
	}
	opts.Settings.ApplyDefaults()

	// Build the menu: built-in recipes plus the configured menu file
	menu, err := services.LoadMenu(config.NewMenuLoader(), opts.Settings.MenuFile)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("menu loaded", "recipes", menu.Len(), "file", opts.Settings.MenuFile)

	// Orders live for the lifetime of the process
	orderRepo := memory.NewOrderRepository()

	orderService := services.NewOrderService(
		menu,
		orderRepo,
		opts.Prompter,
		opts.Narration,
		opts.Logger,
	)

	return &Container{
		orderService:     orderService,
		menuService:      services.NewMenuService(menu),
		formatterFactory: output.NewFormatterFactory(),
		settings:         opts.Settings,
		logger:           opts.Logger,
	}, nil
}

// OrderService returns the order use case.
func (c *Container) OrderService() *services.OrderService {
	return c.orderService
}

// MenuService returns the menu listing use case.
func (c *Container) MenuService() *services.MenuService {
	return c.menuService
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// Settings returns the settings the container was built with.
func (c *Container) Settings() config.Settings {
	return c.settings
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
