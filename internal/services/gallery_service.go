package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
)

const maxCharacterNameLength = 100

// GalleryService contém a lógica de negócio da galeria de personagens
type GalleryService struct {
	galleryRepo repositories.GalleryRepository
	userRepo    repositories.UserRepository
	uow         ports.UnitOfWork
	publisher   ports.EventPublisher
	images      *ImageIntake
	logger      ports.Logger
	now         func() time.Time
}

// NewGalleryService cria um novo GalleryService
func NewGalleryService(
	galleryRepo repositories.GalleryRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	publisher ports.EventPublisher,
	images *ImageIntake,
	logger ports.Logger,
) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		userRepo:    userRepo,
		uow:         uow,
		publisher:   publisher,
		images:      images,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateGalleryItemInput representa um item cuja imagem já está no storage
type CreateGalleryItemInput struct {
	OwnerID       string
	OwnerUsername string
	Faction       entities.Faction
	CharacterName string
	Description   *string
	ImageKey      string
}

// UploadInput representa um upload vindo do cliente
type UploadInput struct {
	OwnerID       string
	Faction       string // vazio usa a facção atual do autor
	CharacterName string
	Description   *string
	Image         *ImageUpload
}

// Create persiste o item e anuncia newCharacter após o commit
func (s *GalleryService) Create(ctx context.Context, input CreateGalleryItemInput) (*entities.GalleryItem, error) {
	name, err := normalizeCharacterName(input.CharacterName)
	if err != nil {
		return nil, err
	}
	if input.ImageKey == "" {
		return nil, errors.ErrImageRequired
	}
	if !input.Faction.IsValid() {
		return nil, errors.ErrInvalidFaction
	}

	key := input.ImageKey
	item := &entities.GalleryItem{
		OwnerID:       input.OwnerID,
		Username:      input.OwnerUsername,
		Faction:       input.Faction,
		CharacterName: name,
		Description:   normalizeDescription(input.Description),
		ImageKey:      &key,
	}

	if err := s.galleryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewStoreError("create gallery item", err)
	}

	s.logger.Info("gallery item created",
		"id", item.ID,
		"owner_id", item.OwnerID,
		"faction", item.Faction,
	)

	event := events.NewCharacter(item, s.now())
	s.uow.AfterCommit(ctx, func() {
		s.publisher.Publish(event)
	})

	item.ImageURL = s.images.URL(item.ImageKey)
	return item, nil
}

// Upload valida o autor e a imagem, grava e modera o arquivo e cria o item.
// Se a criação falhar, o blob é removido.
func (s *GalleryService) Upload(ctx context.Context, input UploadInput) (*entities.GalleryItem, error) {
	if _, err := normalizeCharacterName(input.CharacterName); err != nil {
		return nil, err
	}
	if err := s.images.Validate(input.Image); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, errors.NewStoreError("find user", err)
	}
	if owner == nil {
		return nil, errors.ErrUserNotFound
	}

	faction := owner.Faction
	if input.Faction != "" {
		requested, err := entities.ParseFaction(input.Faction)
		if err != nil {
			return nil, err
		}
		if requested != owner.Faction {
			return nil, errors.ErrFactionMismatch
		}
	}

	key, err := s.images.Accept(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	item, err := s.Create(ctx, CreateGalleryItemInput{
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		Faction:       faction,
		CharacterName: input.CharacterName,
		Description:   input.Description,
		ImageKey:      key,
	})
	if err != nil {
		s.images.Discard(ctx, key)
		return nil, err
	}

	return item, nil
}

// Delete remove um item do próprio usuário. A posse é verificada após a leitura e antes da escrita.
func (s *GalleryService) Delete(ctx context.Context, itemID, requestingUserID string) error {
	item, err := s.galleryRepo.FindByID(ctx, itemID)
	if err != nil {
		return errors.NewStoreError("find gallery item", err)
	}
	if item == nil {
		return errors.ErrGalleryItemNotFound
	}
	if !item.IsOwnedBy(requestingUserID) {
		return errors.ErrForbidden
	}

	if err := s.galleryRepo.Delete(ctx, itemID); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		return errors.NewStoreError("delete gallery item", err)
	}

	s.logger.Info("gallery item deleted", "id", item.ID, "owner_id", item.OwnerID)
	s.afterRemoval(ctx, item)
	return nil
}

// DeleteAllByOwner remove toda a galeria de um usuário (exclusão de conta).
// Blobs e eventos artworkDeleted seguem após o commit.
func (s *GalleryService) DeleteAllByOwner(ctx context.Context, ownerID string) (int, error) {
	items, err := s.galleryRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, errors.NewStoreError("list gallery by owner", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	if err := s.galleryRepo.DeleteByOwner(ctx, ownerID); err != nil {
		return 0, errors.NewStoreError("delete gallery by owner", err)
	}

	for _, item := range items {
		s.afterRemoval(ctx, item)
	}
	return len(items), nil
}

func (s *GalleryService) afterRemoval(ctx context.Context, item *entities.GalleryItem) {
	event := events.ArtworkDeleted(item, s.now())
	s.uow.AfterCommit(ctx, func() {
		if item.ImageKey != nil {
			s.images.Discard(ctx, *item.ImageKey)
		}
		s.publisher.Publish(event)
	})
}

// ListAll retorna a galeria inteira, do mais novo para o mais antigo
func (s *GalleryService) ListAll(ctx context.Context) ([]*entities.GalleryItem, error) {
	items, err := s.galleryRepo.List(ctx, nil)
	if err != nil {
		return nil, errors.NewStoreError("list gallery", err)
	}
	return s.resolveImages(ctx, items), nil
}

// ListByFaction retorna a galeria de uma facção, do mais novo para o mais antigo
func (s *GalleryService) ListByFaction(ctx context.Context, faction string) ([]*entities.GalleryItem, error) {
	f, err := entities.ParseFaction(faction)
	if err != nil {
		return nil, err
	}

	items, err := s.galleryRepo.List(ctx, &f)
	if err != nil {
		return nil, errors.NewStoreError("list gallery by faction", err)
	}
	return s.resolveImages(ctx, items), nil
}

// resolveImages calcula imageUrl/imageMissing a cada leitura; itens sem blob continuam na lista
func (s *GalleryService) resolveImages(ctx context.Context, items []*entities.GalleryItem) []*entities.GalleryItem {
	for _, item := range items {
		item.ImageURL, item.ImageMissing = s.images.Resolve(ctx, item.ImageKey)
	}
	return items
}

func normalizeCharacterName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrCharacterNameRequired
	}
	if utf8.RuneCountInString(name) > maxCharacterNameLength {
		return "", errors.ErrCharacterNameTooLong
	}
	return name, nil
}

func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	d := strings.TrimSpace(*desc)
	if d == "" {
		return nil
	}
	return &d
}
