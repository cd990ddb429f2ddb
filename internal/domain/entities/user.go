package entities

import (
	"errors"
	"strings"
	"time"

	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// ProfileVisibility controla quem pode ver o perfil. Apenas "public" é aplicado hoje.
type ProfileVisibility string

const (
	VisibilityPublic      ProfileVisibility = "public"
	VisibilityFactionOnly ProfileVisibility = "faction-only"
	VisibilityPrivate     ProfileVisibility = "private"
)

// IsValid verifica se a visibilidade é conhecida
func (v ProfileVisibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityFactionOnly, VisibilityPrivate:
		return true
	}
	return false
}

// User representa um membro da comunidade
type User struct {
	ID                string
	Username          string
	Email             valueobjects.Email
	PasswordHash      string
	Faction           Faction
	Role              Role
	AvatarKey         *string
	ProfileVisibility ProfileVisibility
	CreatedAt         time.Time
	FactionJoinedAt   time.Time
	LastActivityAt    time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// IsPublic verifica se o perfil aparece em buscas e listagens
func (u *User) IsPublic() bool {
	return u.ProfileVisibility == VisibilityPublic
}

// JoinFaction troca a facção e reinicia a data de entrada
func (u *User) JoinFaction(f Faction, at time.Time) {
	u.Faction = f
	u.FactionJoinedAt = at
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return domainerrors.ErrInvalidEmail
	}

	name := strings.TrimSpace(u.Username)
	if len(name) < 3 || len(name) > 30 || name != u.Username {
		return domainerrors.ErrInvalidUsername
	}

	if !u.Faction.IsValid() {
		return domainerrors.ErrInvalidFaction
	}

	if !u.Role.IsValid() {
		return ErrInvalidUserData
	}

	if !u.ProfileVisibility.IsValid() {
		return domainerrors.ErrInvalidVisibility
	}

	return nil
}
