package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

const (
	// UserIDContextKey guarda o id do usuário autenticado
	UserIDContextKey = "user_id"
	// UsernameContextKey guarda o username presente no token
	UsernameContextKey = "username"
	// RoleContextKey guarda o papel presente no token
	RoleContextKey = "role"
)

// ErrorResponder escreve a resposta de erro da requisição.
// É injetado pela camada http para que o middleware não dependa dos DTOs.
type ErrorResponder func(c *gin.Context, err error)

// Auth valida bearer tokens e aplica permissões por papel
type Auth struct {
	tokens  ports.TokenProvider
	respond ErrorResponder
}

// NewAuth cria o middleware de autenticação
func NewAuth(tokens ports.TokenProvider, respond ErrorResponder) *Auth {
	return &Auth{tokens: tokens, respond: respond}
}

// RequireAuth exige um header Authorization: Bearer <token> válido
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			a.respond(c, errors.ErrMissingToken)
			c.Abort()
			return
		}

		claims, err := a.tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			a.respond(c, err)
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UsernameContextKey, claims.Username)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

// RequirePermission exige que o papel do token conceda a permissão.
// Deve ser encadeado depois de RequireAuth.
func (a *Auth) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(RoleContextKey)
		if !ok {
			a.respond(c, errors.ErrMissingToken)
			c.Abort()
			return
		}

		r, _ := role.(entities.Role)
		if !r.HasPermission(permission) {
			a.respond(c, errors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID retorna o id do usuário autenticado
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}
