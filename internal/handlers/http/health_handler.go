package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler responde ao health check
type HealthHandler struct {
	env  string
	ping func(ctx context.Context) error
}

// NewHealthHandler cria um HealthHandler. ping verifica o banco de dados.
func NewHealthHandler(env string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{env: env, ping: ping}
}

// Check godoc
// @Summary   Health check
// @Tags      health
// @Produce   json
// @Success   200  {object}  map[string]string
// @Failure   503  {object}  map[string]string
// @Router    /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	status := http.StatusOK
	if err := h.ping(ctx); err != nil {
		_ = c.Error(err)
		database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"env":      h.env,
		"database": database,
	})
}
