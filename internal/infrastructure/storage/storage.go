// Package storage contém as implementações de ports.BlobStore.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/config"
)

// New cria o BlobStore escolhido por STORAGE_DRIVER
func New(ctx context.Context, cfg config.StorageConfig) (ports.BlobStore, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStore(cfg.UploadDir, cfg.PublicUploadURL)
	case "minio":
		return NewMinioStore(ctx, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.PublicUploadURL, cfg.UseSSL)
	case "s3":
		return NewS3Store(ctx, cfg.Endpoint, cfg.Region, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.PublicUploadURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectKey gera uma chave única preservando a extensão original
func objectKey(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if len(ext) > 8 || strings.ContainsAny(ext, `/\`) {
		ext = ""
	}
	return uuid.NewString() + ext
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
