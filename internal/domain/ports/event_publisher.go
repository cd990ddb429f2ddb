package ports

import (
	"context"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
)

// EventPublisher entrega eventos aos clientes conectados (best-effort, sem confirmação)
type EventPublisher interface {
	Publish(event events.FactionUpdate)
}

// SnapshotProvider fornece o estado completo enviado a um cliente recém-conectado
type SnapshotProvider interface {
	Snapshot(ctx context.Context) ([]*entities.FactionStats, error)
}

// SnapshotFunc adapta uma função a SnapshotProvider
type SnapshotFunc func(ctx context.Context) ([]*entities.FactionStats, error)

func (f SnapshotFunc) Snapshot(ctx context.Context) ([]*entities.FactionStats, error) {
	return f(ctx)
}
