package repositories

import (
	"context"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// FactionStatsRepository define a persistência dos contadores por facção
type FactionStatsRepository interface {
	// Seed garante uma linha zerada por facção, sem alterar linhas existentes
	Seed(ctx context.Context, factions []entities.Faction) error
	// ApplyDelta aplica os deltas num único UPDATE atômico e relê a linha
	ApplyDelta(ctx context.Context, faction entities.Faction, memberDelta, weeklyGrowthDelta int64) (*entities.FactionStats, error)
	// SetMemberCount sobrescreve member_count (reconciliação)
	SetMemberCount(ctx context.Context, faction entities.Faction, count int64) (*entities.FactionStats, error)
	Find(ctx context.Context, faction entities.Faction) (*entities.FactionStats, error)
	// List retorna todas as facções ordenadas por member_count DESC
	List(ctx context.Context) ([]*entities.FactionStats, error)
}
