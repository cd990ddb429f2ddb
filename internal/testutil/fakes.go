package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

// PNG é o menor cabeçalho reconhecido como image/png por http.DetectContentType
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// RecordingPublisher guarda os eventos publicados
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.FactionUpdate
}

func (p *RecordingPublisher) Publish(event events.FactionUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events retorna uma cópia dos eventos na ordem de publicação
func (p *RecordingPublisher) Events() []events.FactionUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.FactionUpdate, len(p.events))
	copy(out, p.events)
	return out
}

// OfType filtra os eventos por tipo
func (p *RecordingPublisher) OfType(t events.Type) []events.FactionUpdate {
	var out []events.FactionUpdate
	for _, e := range p.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (p *RecordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// MemoryBlobStore é um BlobStore em memória
type MemoryBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{objects: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	key := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = buf.Bytes()
	return key, nil
}

func (s *MemoryBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryBlobStore) URL(key string) string {
	return fmt.Sprintf("https://cdn.test/%s", key)
}

// Len retorna quantos objetos estão armazenados
func (s *MemoryBlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// StubScanner devolve um veredito fixo
type StubScanner struct {
	Verdict ports.ScanVerdict
	Err     error
}

func (s *StubScanner) Scan(ctx context.Context, image []byte, contentType string) (ports.ScanVerdict, error) {
	return s.Verdict, s.Err
}
