package authorization

import "strings"

const (
	RoleAdmin   = "ADMIN"
	RoleSupport = "SUPPORT"
	RoleUser    = "USER"
)

// RoleSet is the set of role names attached to a subject for one request.
// Role names are stored uppercase.
type RoleSet map[string]struct{}

// NewRoleSet builds a RoleSet from role names, normalizing to uppercase.
func NewRoleSet(names ...string) RoleSet {
	s := make(RoleSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		s[strings.ToUpper(name)] = struct{}{}
	}
	return s
}

func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

func (s RoleSet) HasAny(roles ...string) bool {
	for _, role := range roles {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// Names returns the role names in the set. Order is not specified.
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
