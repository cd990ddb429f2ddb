package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Profile permissions
	PermissionProfileRead  Permission = "profile.read"
	PermissionProfileWrite Permission = "profile.write"

	// Gallery permissions
	PermissionGalleryWrite Permission = "gallery.write"

	// Faction stats permissions
	PermissionFactionStatsWrite Permission = "faction_stats.write"
	PermissionFactionReconcile  Permission = "faction_stats.reconcile"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionProfileRead,
		PermissionProfileWrite,
		PermissionGalleryWrite,
		PermissionFactionStatsWrite,
		PermissionFactionReconcile,
	},
	RoleMember: {
		PermissionProfileRead,
		PermissionProfileWrite,
		PermissionGalleryWrite,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}
