// Package moderation classifica imagens enviadas usando um serviço externo de classificação.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

// Classes consideradas impróprias quando são a predição principal
var unsafeClasses = []string{"Porn", "Sexy", "Hentai"}

// Prediction é uma classe retornada pelo classificador
type Prediction struct {
	ClassName   string  `json:"className"`
	Probability float64 `json:"probability"`
}

// HTTPScanner envia a imagem ao classificador via POST e interpreta a predição principal
type HTTPScanner struct {
	url        string
	httpClient *http.Client
}

func NewHTTPScanner(url string, timeout time.Duration) *HTTPScanner {
	return &HTTPScanner{
		url:        strings.TrimRight(url, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPScanner) Scan(ctx context.Context, image []byte, contentType string) (ports.ScanVerdict, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(image))
	if err != nil {
		return ports.ScanVerdict{}, fmt.Errorf("moderation: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ports.ScanVerdict{}, fmt.Errorf("moderation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return ports.ScanVerdict{}, fmt.Errorf("moderation returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ports.ScanVerdict{}, fmt.Errorf("moderation: decode: %w", err)
	}

	return Verdict(result.Predictions), nil
}

// Verdict escolhe a predição de maior probabilidade
func Verdict(predictions []Prediction) ports.ScanVerdict {
	if len(predictions) == 0 {
		return ports.ScanVerdict{Reason: "no predictions"}
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Probability > top.Probability {
			top = p
		}
	}

	unsafe := slices.Contains(unsafeClasses, top.ClassName)
	reason := "content appears safe"
	if unsafe {
		reason = fmt.Sprintf("detected %s content with %.1f%% confidence", top.ClassName, top.Probability*100)
	}

	return ports.ScanVerdict{
		Unsafe:        unsafe,
		Confidence:    top.Probability,
		DetectedClass: top.ClassName,
		Reason:        reason,
	}
}

// PermissiveScanner aprova tudo; usado quando MODERATION_URL não está configurada
type PermissiveScanner struct{}

func (PermissiveScanner) Scan(ctx context.Context, image []byte, contentType string) (ports.ScanVerdict, error) {
	return ports.ScanVerdict{Reason: "moderation disabled"}, nil
}

// New retorna o scanner adequado à configuração
func New(url string, timeout time.Duration) ports.ContentSafetyScanner {
	if url == "" {
		return PermissiveScanner{}
	}
	return NewHTTPScanner(url, timeout)
}
