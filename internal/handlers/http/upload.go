package http

import (
	errs "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// readImage lê o arquivo do campo multipart. Campo ausente devolve nil,
// deixando a validação de obrigatoriedade para o serviço.
// Lê no máximo maxBytes+1 para que o serviço detecte arquivos grandes demais.
func readImage(c *gin.Context, field string, maxBytes int64) (*services.ImageUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errs.Is(err, http.ErrMissingFile) || errs.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		// corpo multipart malformado é erro do cliente
		return nil, fmt.Errorf("%w: field %s: %v", domainerrors.ErrImageRequired, field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	return &services.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
