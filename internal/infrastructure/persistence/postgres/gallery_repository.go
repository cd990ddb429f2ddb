package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
)

// GalleryRepository implementa repositories.GalleryRepository
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository cria um novo GalleryRepository
func NewGalleryRepository(db *gorm.DB) repositories.GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(ctx context.Context, item *entities.GalleryItem) error {
	if item.ID == "" {
		// v7 é ordenável pelo tempo; desempata itens criados no mesmo milissegundo
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		item.ID = id.String()
	}
	model := toGalleryModel(item)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	item.CreatedAt = time.UnixMilli(model.CreatedAt)
	return nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*entities.GalleryItem, error) {
	var model GalleryItemModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toGalleryItem(&model), nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&GalleryItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGalleryItemNotFound
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context, faction *entities.Faction) ([]*entities.GalleryItem, error) {
	query := getDB(ctx, r.db).Model(&GalleryItemModel{})
	if faction != nil {
		query = query.Where("faction = ?", string(*faction))
	}
	return r.find(query)
}

func (r *GalleryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.GalleryItem, error) {
	return r.find(getDB(ctx, r.db).Model(&GalleryItemModel{}).Where("owner_id = ?", ownerID))
}

func (r *GalleryRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	return getDB(ctx, r.db).Where("owner_id = ?", ownerID).Delete(&GalleryItemModel{}).Error
}

func (r *GalleryRepository) find(query *gorm.DB) ([]*entities.GalleryItem, error) {
	var models []*GalleryItemModel

	if err := query.Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.GalleryItem, 0, len(models))
	for _, m := range models {
		items = append(items, toGalleryItem(m))
	}
	return items, nil
}

func toGalleryModel(item *entities.GalleryItem) *GalleryItemModel {
	var createdAt int64
	if !item.CreatedAt.IsZero() {
		createdAt = item.CreatedAt.UnixMilli()
	}

	return &GalleryItemModel{
		ID:            item.ID,
		OwnerID:       item.OwnerID,
		Username:      item.Username,
		Faction:       string(item.Faction),
		CharacterName: item.CharacterName,
		Description:   item.Description,
		ImageKey:      item.ImageKey,
		CreatedAt:     createdAt,
	}
}

func toGalleryItem(model *GalleryItemModel) *entities.GalleryItem {
	return &entities.GalleryItem{
		ID:            model.ID,
		OwnerID:       model.OwnerID,
		Username:      model.Username,
		Faction:       entities.Faction(model.Faction),
		CharacterName: model.CharacterName,
		Description:   model.Description,
		ImageKey:      model.ImageKey,
		CreatedAt:     time.UnixMilli(model.CreatedAt),
	}
}
