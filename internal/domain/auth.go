package domain

// Roles understood by the route guards.
const (
	RoleUser    = "USER"
	RoleAdmin   = "ADMIN"
	RoleAdvisor = "ASESOR"
	RoleClient  = "CLIENTE"
)

// IsKnownRole reports whether role is one of the roles above.
func IsKnownRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleAdvisor, RoleClient:
		return true
	}
	return false
}

// AuthorityPrefix is prepended to a role to form a granted authority.
const AuthorityPrefix = "ROLE_"

// ClaimRoles is the token claim carrying the comma-joined role list.
const ClaimRoles = "roles"

// Authority returns the granted authority name for role.
func Authority(role string) string {
	return AuthorityPrefix + role
}
