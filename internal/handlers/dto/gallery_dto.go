package dto

import (
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// UploadGalleryForm contém os campos texto do multipart de upload.
// O arquivo chega no campo characterImage.
type UploadGalleryForm struct {
	CharacterName string  `form:"characterName" binding:"required,max=100"`
	Description   *string `form:"description" binding:"omitempty,max=1000"`
	Faction       string  `form:"faction" binding:"omitempty,faction"`
}

// GalleryItemResponse representa uma arte da galeria
type GalleryItemResponse struct {
	ID            string    `json:"id"`
	CharacterName string    `json:"characterName"`
	Description   *string   `json:"description"`
	Faction       string    `json:"faction"`
	Username      string    `json:"username"`
	ImageURL      *string   `json:"imageUrl"`
	ImageMissing  bool      `json:"imageMissing"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UploadGalleryResponse é devolvido pelo upload
type UploadGalleryResponse struct {
	ID       string  `json:"id"`
	ImageURL *string `json:"imageUrl"`
}

// DeleteGalleryResponse é devolvido pela remoção
type DeleteGalleryResponse struct {
	DeletedID string `json:"deletedId"`
}

// ToGalleryItemResponse converte GalleryItem
func ToGalleryItemResponse(item *entities.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:            item.ID,
		CharacterName: item.CharacterName,
		Description:   item.Description,
		Faction:       string(item.Faction),
		Username:      item.Username,
		ImageURL:      item.ImageURL,
		ImageMissing:  item.ImageMissing,
		CreatedAt:     item.CreatedAt,
	}
}

// ToGalleryItemResponses converte uma lista de GalleryItem
func ToGalleryItemResponses(items []*entities.GalleryItem) []GalleryItemResponse {
	responses := make([]GalleryItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToGalleryItemResponse(item)
	}
	return responses
}
