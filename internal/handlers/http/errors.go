package http

import (
	errs "errors"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/dto"
)

// respondError converte um erro de domínio no problem document correspondente.
// Erros não mapeados viram 500 e ficam anexados ao contexto para o RequestLogger.
func respondError(c *gin.Context, err error) {
	var unsafe *errors.UnsafeContentError
	if errs.As(err, &unsafe) {
		dto.WriteProblem(c, dto.UnsafeContentErrorResponseI18n(c, unsafe))
		return
	}

	category, key := errors.Classify(err)
	switch category {
	case errors.CategoryValidation:
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, key))
	case errors.CategoryUnauthorized:
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, key))
	case errors.CategoryForbidden:
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c))
	case errors.CategoryNotFound:
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, key))
	case errors.CategoryConflict:
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, key))
	case errors.CategoryRateLimited:
		dto.WriteProblem(c, dto.TooManyRequestsErrorResponseI18n(c))
	default:
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError responde a falhas de ShouldBind*
func respondBindingError(c *gin.Context, err error) {
	dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
}
