package dto

import (
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Faction  string `json:"faction" binding:"required,faction"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest representa a requisição para atualizar username e email
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
}

// ChangeFactionRequest representa a requisição de troca de facção
type ChangeFactionRequest struct {
	NewFaction string `json:"newFaction" binding:"required,faction"`
}

// UpdateSettingsRequest representa a requisição de preferências do perfil
type UpdateSettingsRequest struct {
	ProfileVisibility string `json:"profileVisibility" binding:"required,visibility"`
}

// PageQuery contém os parâmetros de paginação das listagens de usuários
type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// SearchUsersQuery contém os filtros da busca de usuários
type SearchUsersQuery struct {
	PageQuery
	Query   string `form:"query" binding:"omitempty,max=30"`
	Faction string `form:"faction" binding:"omitempty,faction"`
}

// UserResponse representa o perfil completo, retornado apenas ao próprio usuário
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Faction           string    `json:"faction"`
	Role              string    `json:"role"`
	AvatarURL         *string   `json:"avatarUrl"`
	ProfileVisibility string    `json:"profileVisibility"`
	Permissions       []string  `json:"permissions"`
	CreatedAt         time.Time `json:"createdAt"`
	FactionJoinedAt   time.Time `json:"factionJoinedAt"`
	LastActivityAt    time.Time `json:"lastActivityAt"`
}

// PublicUserResponse representa o perfil visível para outros membros
type PublicUserResponse struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Faction         string    `json:"faction"`
	AvatarURL       *string   `json:"avatarUrl"`
	FactionJoinedAt time.Time `json:"factionJoinedAt"`
	LastActivityAt  time.Time `json:"lastActivityAt"`
}

// UserEnvelope embrulha o perfil em {"user": ...}
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// PublicUserEnvelope embrulha o perfil público em {"user": ...}
type PublicUserEnvelope struct {
	User PublicUserResponse `json:"user"`
}

// AuthResponse é devolvido por signup e login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AvatarResponse é devolvido pelo upload de avatar
type AvatarResponse struct {
	AvatarURL *string `json:"avatarUrl"`
}

// ToUserResponse converte uma entidade User para UserResponse.
// avatarURL é resolvido pelo serviço, pois a entidade guarda só a chave do blob.
func ToUserResponse(user *entities.User, avatarURL *string) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email.String(),
		Faction:           string(user.Faction),
		Role:              string(user.Role),
		AvatarURL:         avatarURL,
		ProfileVisibility: string(user.ProfileVisibility),
		Permissions:       user.GetPermissions(),
		CreatedAt:         user.CreatedAt,
		FactionJoinedAt:   user.FactionJoinedAt,
		LastActivityAt:    user.LastActivityAt,
	}
}

// ToPublicUserResponse converte uma entidade User para PublicUserResponse
func ToPublicUserResponse(user *entities.User, avatarURL *string) PublicUserResponse {
	return PublicUserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Faction:         string(user.Faction),
		AvatarURL:       avatarURL,
		FactionJoinedAt: user.FactionJoinedAt,
		LastActivityAt:  user.LastActivityAt,
	}
}

// ToPublicUserResponses converte uma lista de entidades User
func ToPublicUserResponses(users []*entities.User, avatarURL func(*entities.User) *string) []PublicUserResponse {
	responses := make([]PublicUserResponse, len(users))
	for i, user := range users {
		responses[i] = ToPublicUserResponse(user, avatarURL(user))
	}
	return responses
}
