package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
)

// FactionService mantém os contadores por facção e é o único ponto que publica statsUpdated
type FactionService struct {
	statsRepo repositories.FactionStatsRepository
	userRepo  repositories.UserRepository
	uow       ports.UnitOfWork
	publisher ports.EventPublisher
	logger    ports.Logger
	now       func() time.Time
}

// NewFactionService cria um novo FactionService
func NewFactionService(
	statsRepo repositories.FactionStatsRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	publisher ports.EventPublisher,
	logger ports.Logger,
) *FactionService {
	return &FactionService{
		statsRepo: statsRepo,
		userRepo:  userRepo,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Seed garante uma linha por facção; seguro para executar a cada inicialização
func (s *FactionService) Seed(ctx context.Context) error {
	if err := s.statsRepo.Seed(ctx, entities.AllFactions()); err != nil {
		return errors.NewStoreError("seed faction stats", err)
	}
	return nil
}

// ApplyDelta soma os deltas atomicamente no banco e retorna o estado relido.
// O evento statsUpdated é publicado somente após o commit da transação corrente.
func (s *FactionService) ApplyDelta(ctx context.Context, faction entities.Faction, memberDelta, weeklyGrowthDelta int64) (*entities.FactionStats, error) {
	if !faction.IsValid() {
		return nil, errors.ErrInvalidFaction
	}

	stats, err := s.statsRepo.ApplyDelta(ctx, faction, memberDelta, weeklyGrowthDelta)
	if err != nil {
		if stderrors.Is(err, errors.ErrFactionNotFound) {
			return nil, err
		}
		return nil, errors.NewStoreError("apply faction delta", err)
	}

	s.logger.Info("faction stats updated",
		"faction", faction,
		"member_delta", memberDelta,
		"weekly_growth_delta", weeklyGrowthDelta,
		"member_count", stats.MemberCount,
		"weekly_growth", stats.WeeklyGrowth,
	)

	s.publish(ctx, events.StatsUpdated(stats, s.now()))
	return stats, nil
}

// RecordSignup contabiliza um novo membro (+1 membro, +1 crescimento semanal) e anuncia o recruta
func (s *FactionService) RecordSignup(ctx context.Context, faction entities.Faction) (*entities.FactionStats, error) {
	stats, err := s.ApplyDelta(ctx, faction, 1, 1)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.MemberAdded(faction, s.now()))
	return stats, nil
}

// List retorna todas as facções por member_count DESC, faction ASC
func (s *FactionService) List(ctx context.Context) ([]*entities.FactionStats, error) {
	stats, err := s.statsRepo.List(ctx)
	if err != nil {
		return nil, errors.NewStoreError("list faction stats", err)
	}
	return stats, nil
}

// Get busca os contadores de uma facção
func (s *FactionService) Get(ctx context.Context, faction string) (*entities.FactionStats, error) {
	f, err := entities.ParseFaction(faction)
	if err != nil {
		return nil, errors.ErrFactionNotFound
	}

	stats, err := s.statsRepo.Find(ctx, f)
	if err != nil {
		if stderrors.Is(err, errors.ErrFactionNotFound) {
			return nil, err
		}
		return nil, errors.NewStoreError("find faction stats", err)
	}
	return stats, nil
}

// GetStanding retorna os contadores com a posição da facção no ranking por membros
func (s *FactionService) GetStanding(ctx context.Context, faction string) (*entities.FactionStanding, error) {
	f, err := entities.ParseFaction(faction)
	if err != nil {
		return nil, errors.ErrFactionNotFound
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, stats := range all {
		if stats.Faction == f {
			return &entities.FactionStanding{FactionStats: *stats, Rank: i + 1}, nil
		}
	}
	return nil, errors.ErrFactionNotFound
}

// Reconcile recalcula member_count a partir da tabela de usuários.
// weekly_growth não é alterado. Publica statsUpdated apenas para facções corrigidas.
func (s *FactionService) Reconcile(ctx context.Context) ([]*entities.FactionStats, error) {
	var result []*entities.FactionStats

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		counts, err := s.userRepo.CountByFaction(txCtx)
		if err != nil {
			return errors.NewStoreError("count users by faction", err)
		}

		current, err := s.statsRepo.List(txCtx)
		if err != nil {
			return errors.NewStoreError("list faction stats", err)
		}

		for _, stats := range current {
			actual := counts[stats.Faction]
			if stats.MemberCount == actual {
				continue
			}

			fixed, err := s.statsRepo.SetMemberCount(txCtx, stats.Faction, actual)
			if err != nil {
				return errors.NewStoreError("set member count", err)
			}

			s.logger.Warn("faction member count drift corrected",
				"faction", stats.Faction,
				"stored", stats.MemberCount,
				"actual", actual,
			)
			s.publish(txCtx, events.StatsUpdated(fixed, s.now()))
		}

		result, err = s.statsRepo.List(txCtx)
		if err != nil {
			return errors.NewStoreError("list faction stats", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RunReconciliation executa Reconcile periodicamente até ctx ser cancelado
func (s *FactionService) RunReconciliation(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Reconcile(ctx); err != nil {
				s.logger.Error("faction reconciliation failed", "error", err)
			}
		}
	}
}

func (s *FactionService) publish(ctx context.Context, event events.FactionUpdate) {
	s.uow.AfterCommit(ctx, func() {
		s.publisher.Publish(event)
	})
}
