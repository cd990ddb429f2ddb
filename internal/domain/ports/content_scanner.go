package ports

import "context"

// ScanVerdict é o resultado da classificação de uma imagem
type ScanVerdict struct {
	Unsafe        bool
	Confidence    float64
	DetectedClass string
	Reason        string
}

// ContentSafetyScanner classifica imagens quanto a conteúdo impróprio
type ContentSafetyScanner interface {
	Scan(ctx context.Context, image []byte, contentType string) (ScanVerdict, error)
}
