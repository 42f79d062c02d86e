package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Roles []string

func (r Roles) Has(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// HasAny reports whether at least one of roles is held.
func (r Roles) HasAny(roles ...string) bool {
	for _, role := range roles {
		if r.Has(role) {
			return true
		}
	}
	return false
}

// GetAdminRoles returns the roles granted to the configured administrator.
func GetAdminRoles() Roles {
	return Roles{RoleUser, RoleAdmin}
}
