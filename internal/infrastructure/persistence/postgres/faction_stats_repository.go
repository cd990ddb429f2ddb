package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
)

// FactionStatsRepository implementa repositories.FactionStatsRepository
type FactionStatsRepository struct {
	db *gorm.DB
}

// NewFactionStatsRepository cria um novo FactionStatsRepository
func NewFactionStatsRepository(db *gorm.DB) repositories.FactionStatsRepository {
	return &FactionStatsRepository{db: db}
}

func (r *FactionStatsRepository) Seed(ctx context.Context, factions []entities.Faction) error {
	now := time.Now().UnixMilli()
	rows := make([]FactionStatsModel, 0, len(factions))
	for _, f := range factions {
		rows = append(rows, FactionStatsModel{Faction: string(f), LastUpdated: now})
	}

	return getDB(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// ApplyDelta incrementa os contadores no próprio banco (member_count = member_count + ?),
// sem ler antes, e só então relê a linha já atualizada.
func (r *FactionStatsRepository) ApplyDelta(ctx context.Context, faction entities.Faction, memberDelta, weeklyGrowthDelta int64) (*entities.FactionStats, error) {
	db := getDB(ctx, r.db)

	result := db.Model(&FactionStatsModel{}).
		Where("faction = ?", string(faction)).
		Updates(map[string]interface{}{
			"member_count":  gorm.Expr("member_count + ?", memberDelta),
			"weekly_growth": gorm.Expr("weekly_growth + ?", weeklyGrowthDelta),
			"last_updated":  time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrFactionNotFound
	}

	return r.Find(ctx, faction)
}

func (r *FactionStatsRepository) SetMemberCount(ctx context.Context, faction entities.Faction, count int64) (*entities.FactionStats, error) {
	result := getDB(ctx, r.db).Model(&FactionStatsModel{}).
		Where("faction = ?", string(faction)).
		Updates(map[string]interface{}{
			"member_count": count,
			"last_updated": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrFactionNotFound
	}

	return r.Find(ctx, faction)
}

func (r *FactionStatsRepository) Find(ctx context.Context, faction entities.Faction) (*entities.FactionStats, error) {
	var model FactionStatsModel

	if err := getDB(ctx, r.db).Where("faction = ?", string(faction)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFactionNotFound
		}
		return nil, err
	}

	return toFactionStats(&model), nil
}

func (r *FactionStatsRepository) List(ctx context.Context) ([]*entities.FactionStats, error) {
	var models []*FactionStatsModel

	err := getDB(ctx, r.db).
		Order("member_count DESC").
		Order("faction ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	stats := make([]*entities.FactionStats, 0, len(models))
	for _, m := range models {
		stats = append(stats, toFactionStats(m))
	}
	return stats, nil
}

func toFactionStats(model *FactionStatsModel) *entities.FactionStats {
	return &entities.FactionStats{
		Faction:      entities.Faction(model.Faction),
		MemberCount:  model.MemberCount,
		WeeklyGrowth: model.WeeklyGrowth,
		LastUpdated:  time.UnixMilli(model.LastUpdated),
	}
}
