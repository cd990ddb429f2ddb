package ports

import (
	"context"
	"io"
)

// BlobStore armazena imagens enviadas pelos usuários
type BlobStore interface {
	// Put grava o conteúdo e retorna a chave do objeto
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	// URL retorna o endereço público do objeto
	URL(key string) string
}
