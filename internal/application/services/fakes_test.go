package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// fakeRepo is an OrderRepository kept in a slice.
type fakeRepo struct {
	mu      sync.Mutex
	orders  []*entities.Order
	saveErr error
	findErr error
}

func (r *fakeRepo) Save(_ context.Context, o *entities.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id values.OrderID) (*entities.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID.Equals(id) {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

// scriptedPrompter answers with a fixed list of tokens, then io.EOF.
type scriptedPrompter struct {
	answers  []string
	asked    []string
	rejected []string
}

func (p *scriptedPrompter) Ask(_ context.Context, menu string) (string, error) {
	p.asked = append(p.asked, menu)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Reject(token string, _ error) {
	p.rejected = append(p.rejected, token)
}

// fakeSource returns fixed recipes or an error.
type fakeSource struct {
	recipes []entities.Recipe
	err     error
}

func (s fakeSource) LoadRecipes(string) ([]entities.Recipe, error) {
	return s.recipes, s.err
}
