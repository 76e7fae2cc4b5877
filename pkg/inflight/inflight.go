package inflight

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadyPending возвращается при попытке запустить операцию,
// которая по этому же ключу ещё не завершилась
var ErrAlreadyPending = errors.New("inflight: operation already pending")

// Guard защита от повторного запуска мутирующих операций
// Каждый ключ проходит состояния Idle -> Pending -> Idle; повторный
// запуск в состоянии Pending отклоняется без выполнения fn
type Guard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewGuard создает новый guard
func NewGuard() *Guard {
	return &Guard{
		pending: make(map[string]struct{}),
	}
}

// Do выполняет fn, если по ключу key нет незавершённой операции
// Возвращает ErrAlreadyPending, если операция уже выполняется
func (g *Guard) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	g.mu.Lock()
	if _, ok := g.pending[key]; ok {
		g.mu.Unlock()
		return ErrAlreadyPending
	}
	g.pending[key] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.pending, key)
		g.mu.Unlock()
	}()

	return fn(ctx)
}

// IsPending возвращает true, если по ключу есть незавершённая операция
func (g *Guard) IsPending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.pending[key]
	return ok
}
