package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/dto"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// FactionHandler expõe os contadores das facções
type FactionHandler struct {
	factionService *services.FactionService
}

// NewFactionHandler cria um novo FactionHandler
func NewFactionHandler(factionService *services.FactionService) *FactionHandler {
	return &FactionHandler{factionService: factionService}
}

// List godoc
// @Summary   Contadores de todas as facções
// @Tags      factions
// @Produce   json
// @Success   200  {array}  dto.FactionStatsResponse
// @Router    /api/factions [get]
func (h *FactionHandler) List(c *gin.Context) {
	stats, err := h.factionService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFactionStatsResponses(stats))
}

// Get godoc
// @Summary   Contadores de uma facção
// @Tags      factions
// @Produce   json
// @Param     faction  path      string  true  "Facção"
// @Success   200      {object}  dto.FactionStatsResponse
// @Failure   404      {object}  dto.ErrorResponse
// @Router    /api/factions/{faction} [get]
func (h *FactionHandler) Get(c *gin.Context) {
	stats, err := h.factionService.Get(c.Request.Context(), c.Param("faction"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFactionStatsResponse(stats))
}

// Standing godoc
// @Summary   Contadores e posição no ranking
// @Tags      factions
// @Produce   json
// @Param     faction  path      string  true  "Facção"
// @Success   200      {object}  dto.FactionStandingResponse
// @Failure   404      {object}  dto.ErrorResponse
// @Router    /api/factions/{faction}/stats [get]
func (h *FactionHandler) Standing(c *gin.Context) {
	standing, err := h.factionService.GetStanding(c.Request.Context(), c.Param("faction"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFactionStandingResponse(standing))
}

// UpdateStats godoc
// @Summary      Aplica um delta aos contadores
// @Description  Hook administrativo. Os deltas podem ser negativos.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.UpdateFactionStatsRequest  true  "Deltas"
// @Success      200      {object}  dto.UpdateFactionStatsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/admin/update-faction [post]
func (h *FactionHandler) UpdateStats(c *gin.Context) {
	var req dto.UpdateFactionStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stats, err := h.factionService.ApplyDelta(c.Request.Context(), entities.Faction(req.Faction), req.MemberChange, req.WeeklyGrowthChange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateFactionStatsResponse{Faction: dto.ToFactionStatsResponse(stats)})
}

// Reconcile godoc
// @Summary      Recontagem de membros
// @Description  Recalcula member_count a partir dos usuários e publica as facções corrigidas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.FactionStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/reconcile [post]
func (h *FactionHandler) Reconcile(c *gin.Context) {
	stats, err := h.factionService.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFactionStatsResponses(stats))
}
