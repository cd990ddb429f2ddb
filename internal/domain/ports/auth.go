package ports

import "github.com/rafabene/gravegrounds-backend/internal/domain/entities"

// TokenClaims é a identidade extraída de um token válido
type TokenClaims struct {
	UserID   string
	Username string
	Role     entities.Role
}

// TokenProvider emite e valida bearer tokens
type TokenProvider interface {
	Issue(user *entities.User) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
