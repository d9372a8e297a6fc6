package mocks

import (
	"context"
	"sync"
	"tatzy/infras/otel"
)

// Otel hands out recording scopes and keeps every one it opened.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := &Scope{Name: name}

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened under name, or nil.
func (o *Otel) Scope(name string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, scope := range o.scopes {
		if scope.Name == name {
			return scope
		}
	}

	return nil
}

// NewOtel returns a tracer that records scopes in memory, for unit tests.
func NewOtel() *Otel {
	return &Otel{}
}
