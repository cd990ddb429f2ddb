package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/dto"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/middleware"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/i18n"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/ratelimit"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/realtime"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// RouterDeps reúne o que o roteador precisa
type RouterDeps struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	MaxUploadBytes int64
	// UploadDir é servido em /uploads quando o BlobStore é local; vazio desativa
	UploadDir string

	Users    *services.UserService
	Factions *services.FactionService
	Gallery  *services.GalleryService
	Hub      *realtime.Hub
	I18n     *i18n.Service
	Tokens   ports.TokenProvider
	Limiter  ratelimit.Limiter
	Logger   ports.Logger
	Ping     func(ctx context.Context) error
}

// NewRouter monta o gin.Engine com middlewares e rotas
func NewRouter(deps RouterDeps) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	// uploads maiores são truncados por readImage e rejeitados pelo serviço
	router.MaxMultipartMemory = deps.MaxUploadBytes + 1<<20

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", deps.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(deps.I18n)
	router.Use(i18nMiddleware.DetectLanguage())
	router.Use(middleware.CORS(deps.AllowedOrigins))

	health := NewHealthHandler(deps.Env, deps.Ping)
	router.GET("/health", health.Check)

	router.GET("/ws", func(c *gin.Context) {
		deps.Hub.ServeWS(c.Writer, c.Request)
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.UploadDir != "" {
		router.StaticFS("/uploads", http.Dir(deps.UploadDir))
	}

	userHandler := NewUserHandler(deps.Users, deps.MaxUploadBytes)
	factionHandler := NewFactionHandler(deps.Factions)
	galleryHandler := NewGalleryHandler(deps.Gallery, deps.MaxUploadBytes)

	auth := middleware.NewAuth(deps.Tokens, respondError)
	requireAuth := auth.RequireAuth()

	api := router.Group("/api")
	api.Use(middleware.RateLimit(deps.Limiter, deps.Logger, respondError))
	{
		api.POST("/signup", userHandler.Signup)
		api.POST("/login", userHandler.Login)

		profile := api.Group("/profile", requireAuth)
		{
			profile.GET("", auth.RequirePermission(entities.PermissionProfileRead), userHandler.GetProfile)
			profile.PUT("", auth.RequirePermission(entities.PermissionProfileWrite), userHandler.UpdateProfile)
			profile.DELETE("", auth.RequirePermission(entities.PermissionProfileWrite), userHandler.DeleteAccount)
			profile.PUT("/faction", auth.RequirePermission(entities.PermissionProfileWrite), userHandler.ChangeFaction)
			profile.PUT("/settings", auth.RequirePermission(entities.PermissionProfileWrite), userHandler.UpdateSettings)
			profile.POST("/avatar", auth.RequirePermission(entities.PermissionProfileWrite), userHandler.UploadAvatar)
		}

		users := api.Group("/users", requireAuth)
		{
			users.PUT("/activity", userHandler.TouchActivity)
			users.GET("/search", userHandler.SearchUsers)
			users.GET("/recent", userHandler.RecentUsers)
			users.GET("/faction/:faction", userHandler.UsersByFaction)
			users.GET("/:id", userHandler.GetUser)
		}

		factions := api.Group("/factions")
		{
			factions.GET("", factionHandler.List)
			factions.GET("/:faction", factionHandler.Get)
			factions.GET("/:faction/stats", factionHandler.Standing)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", galleryHandler.List)
			gallery.GET("/faction/:faction", galleryHandler.ListByFaction)
			gallery.POST("/upload", requireAuth, auth.RequirePermission(entities.PermissionGalleryWrite), galleryHandler.Upload)
			gallery.DELETE("/:id", requireAuth, auth.RequirePermission(entities.PermissionGalleryWrite), galleryHandler.Delete)
		}

		admin := api.Group("/admin", requireAuth)
		{
			admin.POST("/update-faction", auth.RequirePermission(entities.PermissionFactionStatsWrite), factionHandler.UpdateStats)
			admin.POST("/reconcile", auth.RequirePermission(entities.PermissionFactionReconcile), factionHandler.Reconcile)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		dto.WriteProblem(c, dto.NewErrorResponseI18n(
			c,
			errors.ProblemTypeNotFound,
			"error.not_found.title",
			"error.not_found.title",
			http.StatusNotFound,
		))
	})

	return router
}
