package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs), com as extensões errors e meta
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError      `json:"errors,omitempty"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	problem := problems.NewStatusProblem(status).
		WithType(baseURL + problemType).
		WithTitle(title).
		WithDetail(detail).
		WithInstance(c.Request.URL.Path)

	return ErrorResponse{Problem: problem}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, T(c, detailKey, params...))
}

// WriteProblem envia a resposta com Content-Type application/problem+json e aborta a cadeia
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 para regras de negócio violadas
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		detailKey,
		400,
	)
}

// UnsafeContentErrorResponseI18n cria a resposta para imagens rejeitadas pelo moderador
func UnsafeContentErrorResponseI18n(c *gin.Context, unsafe *errors.UnsafeContentError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnsafeContent,
		"error.unsafe_content.title",
		"error.unsafe_content.detail",
		400,
		map[string]interface{}{"Class": unsafe.DetectedClass},
	)
	response.Meta = map[string]interface{}{
		"confidence":    unsafe.Confidence,
		"detectedClass": unsafe.DetectedClass,
		"reason":        unsafe.Reason,
	}
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		404,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// TooManyRequestsErrorResponseI18n cria uma resposta de erro 429
func TooManyRequestsErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeTooManyRequests,
		"error.too_many_requests.title",
		"error.too_many_requests.detail",
		429,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
