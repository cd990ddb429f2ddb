package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error

	// AfterCommit agenda fn para depois do commit da transação presente em ctx.
	// Sem transação em ctx, fn executa imediatamente. Em rollback, fn é descartada.
	AfterCommit(ctx context.Context, fn func())
}
