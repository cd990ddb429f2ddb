package valueobjects

import (
	"regexp"
	"strings"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor é normalizado para minúsculas, então a comparação não diferencia maiúsculas.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, errors.ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Equals compara dois emails normalizados
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}

	return emailPattern.MatchString(email)
}
