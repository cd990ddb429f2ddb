package repositories

import (
	"context"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// GalleryRepository define a persistência dos itens da galeria
type GalleryRepository interface {
	Create(ctx context.Context, item *entities.GalleryItem) error
	FindByID(ctx context.Context, id string) (*entities.GalleryItem, error)
	Delete(ctx context.Context, id string) error
	// List retorna itens do mais novo para o mais antigo, opcionalmente por facção
	List(ctx context.Context, faction *entities.Faction) ([]*entities.GalleryItem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.GalleryItem, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
}
