// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	apperrors "github.com/reglet-dev/pizzeria/internal/application/errors"
	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/repositories"
	"github.com/reglet-dev/pizzeria/internal/domain/services"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// BuilderFactory creates the builder an order is constructed with.
type BuilderFactory func(recipe entities.Recipe, opts ...services.BuilderOption) services.Builder

// DefaultBuilderFactory builds every recipe with a RecipeBuilder.
func DefaultBuilderFactory(recipe entities.Recipe, opts ...services.BuilderOption) services.Builder {
	return services.NewRecipeBuilder(recipe, opts...)
}

// OrderService takes orders, has a waiter construct them and records what
// was served. It depends only on ports and domain services.
type OrderService struct {
	menu       *services.Menu
	repo       repositories.OrderRepository
	prompter   ports.OrderPrompter
	narration  io.Writer
	newBuilder BuilderFactory
	logger     *slog.Logger
}

// NewOrderService creates a new order service. Kitchen narration is written
// to narration; prompter may be nil when orders always name their tokens.
func NewOrderService(
	menu *services.Menu,
	repo repositories.OrderRepository,
	prompter ports.OrderPrompter,
	narration io.Writer,
	logger *slog.Logger,
) *OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	if narration == nil {
		narration = io.Discard
	}

	return &OrderService{
		menu:       menu,
		repo:       repo,
		prompter:   prompter,
		narration:  narration,
		newBuilder: DefaultBuilderFactory,
		logger:     logger,
	}
}

// WithBuilderFactory replaces how builders are created for each order.
func (s *OrderService) WithBuilderFactory(f BuilderFactory) *OrderService {
	if f != nil {
		s.newBuilder = f
	}
	return s
}

// Menu returns the menu orders are taken from.
func (s *OrderService) Menu() *services.Menu {
	return s.menu
}

// PlaceOrders serves every requested token in turn with a single waiter.
// All tokens are checked against the menu before anything is cooked.
// Without tokens one order is taken through the prompter. The receipt is
// read back from the order book, so it only lists orders that were recorded.
func (s *OrderService) PlaceOrders(ctx context.Context, req dto.PlaceOrderRequest) (*dto.Receipt, error) {
	startTime := time.Now()

	recipes, err := s.resolve(ctx, req.Tokens)
	if err != nil {
		return nil, err
	}

	opts := s.builderOptions(req.Kitchen)
	waiter := services.NewWaiter(s.logger)
	served := make([]values.OrderID, 0, len(recipes))

	for _, recipe := range recipes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		order, err := s.serve(ctx, waiter, recipe, opts)
		if err != nil {
			return nil, err
		}
		served = append(served, order.ID)
	}

	receipt, err := s.receipt(ctx, served)
	if err != nil {
		return nil, err
	}
	receipt.Duration = time.Since(startTime)
	return receipt, nil
}

// Take asks the customer for a token until it names something on the menu.
// Unknown tokens are rejected back to the customer and asked again.
func (s *OrderService) Take(ctx context.Context) (entities.Recipe, error) {
	if s.prompter == nil {
		return entities.Recipe{}, apperrors.NewConfigurationError("prompt", "no order prompter configured", nil)
	}

	for {
		if err := ctx.Err(); err != nil {
			return entities.Recipe{}, err
		}

		token, err := s.prompter.Ask(ctx, s.menu.Describe())
		if err != nil {
			return entities.Recipe{}, fmt.Errorf("taking order: %w", err)
		}

		recipe, err := s.menu.Select(token)
		if errors.Is(err, entities.ErrUnavailable) {
			s.logger.Debug("order rejected", "token", token)
			s.prompter.Reject(token, err)
			continue
		}
		if err != nil {
			return entities.Recipe{}, err
		}
		return recipe, nil
	}
}

// receipt looks up each served order in the order book.
func (s *OrderService) receipt(ctx context.Context, ids []values.OrderID) (*dto.Receipt, error) {
	receipt := &dto.Receipt{Orders: make([]dto.ServedOrder, 0, len(ids))}
	for _, id := range ids {
		order, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reading order %s: %w", id.Short(), err)
		}
		receipt.Orders = append(receipt.Orders, dto.NewServedOrder(order))
	}
	return receipt, nil
}

// resolve turns tokens into recipes, or takes one order interactively.
func (s *OrderService) resolve(ctx context.Context, tokens []string) ([]entities.Recipe, error) {
	if len(tokens) == 0 {
		recipe, err := s.Take(ctx)
		if err != nil {
			return nil, err
		}
		return []entities.Recipe{recipe}, nil
	}

	recipes := make([]entities.Recipe, 0, len(tokens))
	var rejected []error
	for _, token := range tokens {
		recipe, err := s.menu.Select(token)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		recipes = append(recipes, recipe)
	}

	if len(rejected) > 0 {
		return nil, fmt.Errorf("order rejected: %w", errors.Join(rejected...))
	}
	return recipes, nil
}

// serve constructs one order. A failed construction is not recorded.
func (s *OrderService) serve(
	ctx context.Context,
	waiter *services.Waiter,
	recipe entities.Recipe,
	opts []services.BuilderOption,
) (*entities.Order, error) {
	order := entities.NewOrder(recipe)
	s.logger.Info("order placed", "order", order.ID.Short(), "kind", recipe.Kind)

	builder := s.newBuilder(recipe, opts...)
	if err := waiter.Construct(builder); err != nil {
		s.logger.Error("order failed", "order", order.ID.Short(), "kind", recipe.Kind, "error", err)
		return nil, apperrors.NewConstructionError(order.ID.String(), recipe.Token, err)
	}

	pizza, err := waiter.Pizza()
	if err != nil {
		return nil, apperrors.NewConstructionError(order.ID.String(), recipe.Token, err)
	}
	order.Serve(pizza, builder.Progress())

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("saving order %s: %w", order.ID.Short(), err)
	}

	s.logger.Info("order served", "order", order.ID.Short(), "kind", pizza.Kind(), "duration", order.Duration())
	return order, nil
}

func (s *OrderService) builderOptions(k dto.KitchenOptions) []services.BuilderOption {
	return []services.BuilderOption{
		services.WithOutput(s.narration),
		services.WithDelay(entities.ScaledDelay(k.TimeScale)),
		services.WithStepDelay(k.StepDelay),
		services.WithLogger(s.logger),
	}
}
