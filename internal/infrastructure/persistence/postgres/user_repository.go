package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
	"github.com/rafabene/gravegrounds-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrUsernameOrEmailTaken
		}
		return err
	}

	user.CreatedAt = time.UnixMilli(model.CreatedAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) ExistsOther(ctx context.Context, username, email, exceptID string) (bool, error) {
	var count int64

	err := getDB(ctx, r.db).Model(&UserModel{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, strings.ToLower(email), exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	err := getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username":           model.Username,
		"username_lower":     model.UsernameLower,
		"email":              model.Email,
		"avatar_key":         model.AvatarKey,
		"profile_visibility": model.ProfileVisibility,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrUsernameOrEmailTaken
	}
	return err
}

// ChangeFaction usa a facção atual como condição, evitando que duas trocas
// concorrentes decrementem a mesma facção de origem.
func (r *UserRepository) ChangeFaction(ctx context.Context, id string, from, to entities.Faction, at time.Time) (bool, error) {
	result := getDB(ctx, r.db).Model(&UserModel{}).
		Where("id = ? AND faction = ?", id, string(from)).
		Updates(map[string]interface{}{
			"faction":           string(to),
			"faction_joined_at": at.UnixMilli(),
			"last_activity_at":  at.UnixMilli(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *UserRepository) TouchActivity(ctx context.Context, id string, at time.Time) error {
	return getDB(ctx, r.db).Model(&UserModel{}).
		Where("id = ?", id).
		Update("last_activity_at", at.UnixMilli()).Error
}

// Delete é condicional à facção lida pelo chamador, pelo mesmo motivo de ChangeFaction
func (r *UserRepository) Delete(ctx context.Context, id string, faction entities.Faction) (bool, error) {
	result := getDB(ctx, r.db).
		Where("id = ? AND faction = ?", id, string(faction)).
		Delete(&UserModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	query := getDB(ctx, r.db).Model(&UserModel{})

	// Aplicar filtros
	if filters.PublicOnly {
		query = query.Where("profile_visibility = ?", string(entities.VisibilityPublic))
	}
	if filters.ExcludeID != "" {
		query = query.Where("id <> ?", filters.ExcludeID)
	}
	if filters.Faction != nil {
		query = query.Where("faction = ?", string(*filters.Faction))
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		query = query.Where("username_lower LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(q))+"%")
	}

	// Paginação
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	err := query.
		Order("last_activity_at DESC").
		Order("username ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) CountByFaction(ctx context.Context) (map[entities.Faction]int64, error) {
	var rows []struct {
		Faction string
		Total   int64
	}

	err := getDB(ctx, r.db).Model(&UserModel{}).
		Select("faction, COUNT(*) AS total").
		Group("faction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.Faction]int64, len(rows))
	for _, row := range rows {
		counts[entities.Faction(row.Faction)] = row.Total
	}
	return counts, nil
}

// escapeLike neutraliza curingas do LIKE vindos do usuário
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var createdAt int64
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.UnixMilli()
	}

	return &UserModel{
		ID:                user.ID,
		Username:          user.Username,
		UsernameLower:     strings.ToLower(user.Username),
		Email:             user.Email.String(),
		PasswordHash:      user.PasswordHash,
		Faction:           string(user.Faction),
		Role:              string(user.Role),
		AvatarKey:         user.AvatarKey,
		ProfileVisibility: string(user.ProfileVisibility),
		CreatedAt:         createdAt,
		FactionJoinedAt:   user.FactionJoinedAt.UnixMilli(),
		LastActivityAt:    user.LastActivityAt.UnixMilli(),
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:                model.ID,
		Username:          model.Username,
		Email:             email,
		PasswordHash:      model.PasswordHash,
		Faction:           entities.Faction(model.Faction),
		Role:              entities.Role(model.Role),
		AvatarKey:         model.AvatarKey,
		ProfileVisibility: entities.ProfileVisibility(model.ProfileVisibility),
		CreatedAt:         time.UnixMilli(model.CreatedAt),
		FactionJoinedAt:   time.UnixMilli(model.FactionJoinedAt),
		LastActivityAt:    time.UnixMilli(model.LastActivityAt),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	entities := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
