package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/dto"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/middleware"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService    *services.UserService
	maxUploadBytes int64
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, maxUploadBytes int64) *UserHandler {
	return &UserHandler{
		userService:    userService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Signup godoc
// @Summary      Cadastra um membro
// @Description  Cria o usuário na facção escolhida, incrementa os contadores e devolve um token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignupRequest  true  "Dados do cadastro"
// @Success      200      {object}  dto.AuthResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.userService.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Faction:  req.Faction,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.authResponse(result))
}

// Login godoc
// @Summary      Autentica um membro
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.AuthResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.authResponse(result))
}

// GetProfile godoc
// @Summary   Perfil do usuário autenticado
// @Tags      profile
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.UserEnvelope
// @Failure   401  {object}  dto.ErrorResponse
// @Router    /api/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.userEnvelope(user))
}

// UpdateProfile godoc
// @Summary   Altera username e email
// @Tags      profile
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     request  body      dto.UpdateProfileRequest  true  "Novos dados"
// @Success   200      {object}  dto.UserEnvelope
// @Failure   409      {object}  dto.ErrorResponse
// @Router    /api/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), services.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.userEnvelope(user))
}

// ChangeFaction godoc
// @Summary      Troca de facção
// @Description  Decrementa a facção antiga e incrementa a nova na mesma transação. O crescimento semanal não muda.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.ChangeFactionRequest  true  "Nova facção"
// @Success      200      {object}  dto.UserEnvelope
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/profile/faction [put]
func (h *UserHandler) ChangeFaction(c *gin.Context) {
	var req dto.ChangeFactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.ChangeFaction(c.Request.Context(), middleware.CurrentUserID(c), req.NewFaction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.userEnvelope(user))
}

// UpdateSettings godoc
// @Summary   Preferências do perfil
// @Tags      profile
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     request  body      dto.UpdateSettingsRequest  true  "Preferências"
// @Success   200      {object}  dto.UserEnvelope
// @Router    /api/profile/settings [put]
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateSettings(c.Request.Context(), middleware.CurrentUserID(c), req.ProfileVisibility)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.userEnvelope(user))
}

// UploadAvatar godoc
// @Summary   Envia o avatar
// @Tags      profile
// @Accept    mpfd
// @Produce   json
// @Security  BearerAuth
// @Param     avatar  formData  file  true  "Imagem"
// @Success   200     {object}  dto.AvatarResponse
// @Failure   400     {object}  dto.ErrorResponse
// @Router    /api/profile/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	img, err := readImage(c, "avatar", h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.UploadAvatar(c.Request.Context(), middleware.CurrentUserID(c), img)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvatarResponse{AvatarURL: h.userService.AvatarURL(user)})
}

// DeleteAccount godoc
// @Summary      Remove a conta
// @Description  Remove o usuário e suas artes e decrementa a facção
// @Tags         profile
// @Security     BearerAuth
// @Success      204
// @Router       /api/profile [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.userService.DeleteAccount(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TouchActivity godoc
// @Summary   Atualiza a última atividade
// @Tags      users
// @Security  BearerAuth
// @Success   204
// @Router    /api/users/activity [put]
func (h *UserHandler) TouchActivity(c *gin.Context) {
	if err := h.userService.TouchActivity(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchUsers godoc
// @Summary   Busca membros públicos
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     query    query     string  false  "Trecho do username"
// @Param     faction  query     string  false  "Facção"
// @Param     limit    query     int     false  "Máximo de resultados (1-100)"
// @Param     offset   query     int     false  "Deslocamento"
// @Success   200      {array}   dto.PublicUserResponse
// @Router    /api/users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var query dto.SearchUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, err := h.userService.Search(c.Request.Context(), middleware.CurrentUserID(c), query.Query, query.Faction, page(query.PageQuery))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserResponses(users, h.userService.AvatarURL))
}

// RecentUsers godoc
// @Summary   Membros ativos recentemente
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     limit   query    int  false  "Máximo de resultados (1-100)"
// @Param     offset  query    int  false  "Deslocamento"
// @Success   200     {array}  dto.PublicUserResponse
// @Router    /api/users/recent [get]
func (h *UserHandler) RecentUsers(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, err := h.userService.Recent(c.Request.Context(), middleware.CurrentUserID(c), page(query))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserResponses(users, h.userService.AvatarURL))
}

// UsersByFaction godoc
// @Summary   Membros de uma facção
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     faction  path     string  true   "Facção"
// @Param     limit    query    int     false  "Máximo de resultados (1-100)"
// @Param     offset   query    int     false  "Deslocamento"
// @Success   200      {array}  dto.PublicUserResponse
// @Failure   400      {object} dto.ErrorResponse
// @Router    /api/users/faction/{faction} [get]
func (h *UserHandler) UsersByFaction(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, err := h.userService.ListByFaction(c.Request.Context(), middleware.CurrentUserID(c), c.Param("faction"), page(query))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserResponses(users, h.userService.AvatarURL))
}

// GetUser godoc
// @Summary   Perfil público de um membro
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "ID do usuário"
// @Success   200  {object}  dto.PublicUserEnvelope
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PublicUserEnvelope{
		User: dto.ToPublicUserResponse(user, h.userService.AvatarURL(user)),
	})
}

func (h *UserHandler) authResponse(result *services.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token: result.Token,
		User:  dto.ToUserResponse(result.User, h.userService.AvatarURL(result.User)),
	}
}

func (h *UserHandler) userEnvelope(user *entities.User) dto.UserEnvelope {
	return dto.UserEnvelope{User: dto.ToUserResponse(user, h.userService.AvatarURL(user))}
}

func page(q dto.PageQuery) services.ListFilters {
	return services.ListFilters{Limit: q.Limit, Offset: q.Offset}
}
