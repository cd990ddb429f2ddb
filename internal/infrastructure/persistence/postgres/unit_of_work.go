package postgres

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	txKey    contextKey = "tx"
	hooksKey contextKey = "tx_hooks"
)

// commitHooks acumula callbacks a executar depois do commit
type commitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *commitHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *commitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	txCtx := context.WithValue(ctx, txKey, tx)
	return context.WithValue(txCtx, hooksKey, &commitHooks{}), nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.run()
	}
	return nil
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil
	}
	return tx.Rollback().Error
}

// WithTransaction executa fn numa transação. Transações aninhadas reutilizam a externa.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return uow.Commit(txCtx)
}

func (uow *UnitOfWork) AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.add(fn)
		return
	}
	fn()
}

// getDB extrai DB do contexto (para suportar transações)
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
