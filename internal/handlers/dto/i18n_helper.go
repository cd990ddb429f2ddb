package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/handlers/middleware"
)

// T traduz uma mensagem no idioma da requisição
// Uso: dto.T(c, "validation.max", map[string]interface{}{"Field": "username", "Param": "30"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	return middleware.Translate(c, key, params...)
}
