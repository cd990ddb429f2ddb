package services

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

// ImageUpload é um arquivo de imagem recebido numa requisição multipart
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageIntake valida, armazena e modera imagens enviadas (galeria e avatar)
type ImageIntake struct {
	blobs     ports.BlobStore
	scanner   ports.ContentSafetyScanner
	maxBytes  int64
	threshold float64
	logger    ports.Logger
}

// NewImageIntake cria um novo ImageIntake
func NewImageIntake(
	blobs ports.BlobStore,
	scanner ports.ContentSafetyScanner,
	maxBytes int64,
	threshold float64,
	logger ports.Logger,
) *ImageIntake {
	return &ImageIntake{
		blobs:     blobs,
		scanner:   scanner,
		maxBytes:  maxBytes,
		threshold: threshold,
		logger:    logger,
	}
}

// Validate confere presença, tamanho e tipo da imagem sem tocar no storage
func (i *ImageIntake) Validate(img *ImageUpload) error {
	if img == nil || len(img.Data) == 0 {
		return errors.ErrImageRequired
	}
	if int64(len(img.Data)) > i.maxBytes {
		return errors.ErrImageTooLarge
	}

	// o tipo declarado e o conteúdo precisam ser imagem
	sniffed := http.DetectContentType(img.Data)
	if !strings.HasPrefix(img.ContentType, "image/") || !strings.HasPrefix(sniffed, "image/") {
		return errors.ErrUnsupportedImageType
	}
	return nil
}

// Accept grava a imagem e a submete ao moderador. Imagem rejeitada é apagada
// e o erro retornado é *errors.UnsafeContentError.
func (i *ImageIntake) Accept(ctx context.Context, img *ImageUpload) (string, error) {
	if err := i.Validate(img); err != nil {
		return "", err
	}

	key, err := i.blobs.Put(ctx, img.Filename, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
	if err != nil {
		return "", errors.NewStoreError("store image", err)
	}

	verdict, err := i.scanner.Scan(ctx, img.Data, img.ContentType)
	if err != nil {
		// moderador indisponível não bloqueia o upload
		i.logger.Warn("content scan failed, accepting image", "key", key, "error", err)
		return key, nil
	}

	if verdict.Unsafe && verdict.Confidence >= i.threshold {
		i.logger.Warn("image rejected by content scanner",
			"key", key,
			"class", verdict.DetectedClass,
			"confidence", verdict.Confidence,
		)
		i.Discard(ctx, key)
		return "", &errors.UnsafeContentError{
			Confidence:    verdict.Confidence,
			DetectedClass: verdict.DetectedClass,
			Reason:        verdict.Reason,
		}
	}

	return key, nil
}

// Discard remove um blob; falhas são apenas registradas
func (i *ImageIntake) Discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := i.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		i.logger.Warn("failed to delete blob", "key", key, "error", err)
	}
}

// URL retorna o endereço público de uma chave, ou nil
func (i *ImageIntake) URL(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	url := i.blobs.URL(*key)
	return &url
}

// Resolve verifica se o blob ainda existe. Se o storage falhar, assume que existe.
func (i *ImageIntake) Resolve(ctx context.Context, key *string) (url *string, missing bool) {
	if key == nil || *key == "" {
		return nil, true
	}

	ok, err := i.blobs.Exists(ctx, *key)
	if err != nil {
		i.logger.Warn("failed to check blob", "key", *key, "error", err)
		return i.URL(key), false
	}
	if !ok {
		return nil, true
	}
	return i.URL(key), false
}
