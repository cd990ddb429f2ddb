package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrUsernameOrEmailTaken  = errors.New("error.username_or_email_taken")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrUnauthorized          = errors.New("error.unauthorized")
	ErrMissingToken          = errors.New("error.missing_token")
	ErrForbidden             = errors.New("error.forbidden")
	ErrGalleryItemNotFound   = errors.New("error.gallery_item_not_found")
	ErrFactionNotFound       = errors.New("error.faction_not_found")
	ErrFactionMismatch       = errors.New("error.faction_mismatch")
	ErrAlreadyInFaction      = errors.New("error.already_in_faction")
	ErrConcurrentUpdate      = errors.New("error.concurrent_update")
	ErrCharacterNameRequired = errors.New("error.character_name_required")
	ErrCharacterNameTooLong  = errors.New("error.character_name_too_long")
	ErrImageRequired         = errors.New("error.image_required")
	ErrImageTooLarge         = errors.New("error.image_too_large")
	ErrUnsupportedImageType  = errors.New("error.unsupported_image_type")
	ErrRateLimited           = errors.New("error.rate_limited")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail      = errors.New("error.invalid_email")
	ErrInvalidFaction    = errors.New("error.invalid_faction")
	ErrInvalidVisibility = errors.New("error.invalid_visibility")
	ErrInvalidUsername   = errors.New("error.invalid_username")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeUnsafeContent   = "/problems/unsafe-content"
	ProblemTypeTooManyRequests = "/problems/too-many-requests"
)

// UnsafeContentError indica que o moderador de conteúdo rejeitou uma imagem
type UnsafeContentError struct {
	Confidence    float64
	DetectedClass string
	Reason        string
}

func (e *UnsafeContentError) Error() string {
	return fmt.Sprintf("error.unsafe_content: %s (%.2f)", e.DetectedClass, e.Confidence)
}

// StoreError envolve falhas de persistência que não são acionáveis pelo cliente
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError cria um StoreError, preservando nil
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Category agrupa erros de domínio pelo tipo de resposta que o cliente recebe
type Category int

const (
	CategoryUnknown Category = iota
	CategoryValidation
	CategoryUnauthorized
	CategoryForbidden
	CategoryNotFound
	CategoryConflict
	CategoryRateLimited
)

var categories = []struct {
	category Category
	targets  []error
}{
	{CategoryValidation, []error{
		ErrInvalidEmail,
		ErrInvalidFaction,
		ErrInvalidVisibility,
		ErrInvalidUsername,
		ErrFactionMismatch,
		ErrAlreadyInFaction,
		ErrCharacterNameRequired,
		ErrCharacterNameTooLong,
		ErrImageRequired,
		ErrImageTooLarge,
		ErrUnsupportedImageType,
	}},
	{CategoryUnauthorized, []error{ErrMissingToken, ErrInvalidCredentials, ErrUnauthorized}},
	{CategoryForbidden, []error{ErrForbidden}},
	{CategoryNotFound, []error{ErrUserNotFound, ErrGalleryItemNotFound, ErrFactionNotFound}},
	{CategoryConflict, []error{ErrUsernameOrEmailTaken, ErrConcurrentUpdate}},
	{CategoryRateLimited, []error{ErrRateLimited}},
}

// Classify devolve a categoria e o message ID do primeiro sentinel na cadeia de err.
// Erros sem sentinel conhecido são CategoryUnknown.
func Classify(err error) (Category, string) {
	for _, group := range categories {
		for _, target := range group.targets {
			if errors.Is(err, target) {
				return group.category, target.Error()
			}
		}
	}
	return CategoryUnknown, ""
}

// IsNotFound verifica se o erro indica recurso inexistente
func IsNotFound(err error) bool {
	category, _ := Classify(err)
	return category == CategoryNotFound
}
