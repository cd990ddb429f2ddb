package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/handlers/dto"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/middleware"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// GalleryHandler lida com a galeria de personagens
type GalleryHandler struct {
	galleryService *services.GalleryService
	maxUploadBytes int64
}

// NewGalleryHandler cria um novo GalleryHandler
func NewGalleryHandler(galleryService *services.GalleryService, maxUploadBytes int64) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload godoc
// @Summary      Publica uma arte de personagem
// @Description  A imagem passa pela moderação antes de ser aceita. A facção, se enviada, deve ser a atual do autor.
// @Tags         gallery
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        characterImage  formData  file    true   "Imagem"
// @Param        characterName   formData  string  true   "Nome do personagem"
// @Param        description     formData  string  false  "Descrição"
// @Param        faction         formData  string  false  "Facção do autor"
// @Success      200             {object}  dto.UploadGalleryResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/gallery/upload [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	var form dto.UploadGalleryForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindingError(c, err)
		return
	}

	img, err := readImage(c, "characterImage", h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.galleryService.Upload(c.Request.Context(), services.UploadInput{
		OwnerID:       middleware.CurrentUserID(c),
		Faction:       form.Faction,
		CharacterName: form.CharacterName,
		Description:   form.Description,
		Image:         img,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadGalleryResponse{ID: item.ID, ImageURL: item.ImageURL})
}

// Delete godoc
// @Summary   Remove uma arte própria
// @Tags      gallery
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "ID da arte"
// @Success   200  {object}  dto.DeleteGalleryResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.galleryService.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteGalleryResponse{DeletedID: id})
}

// List godoc
// @Summary      Lista a galeria
// @Description  Mais recentes primeiro. Itens cujo arquivo sumiu voltam com imageUrl nulo e imageMissing verdadeiro.
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  dto.GalleryItemResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.galleryService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryItemResponses(items))
}

// ListByFaction godoc
// @Summary   Lista a galeria de uma facção
// @Tags      gallery
// @Produce   json
// @Param     faction  path      string  true  "Facção"
// @Success   200      {array}   dto.GalleryItemResponse
// @Failure   400      {object}  dto.ErrorResponse
// @Router    /api/gallery/faction/{faction} [get]
func (h *GalleryHandler) ListByFaction(c *gin.Context) {
	items, err := h.galleryService.ListByFaction(c.Request.Context(), c.Param("faction"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryItemResponses(items))
}
