package session

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleBarber     Role = "BARBER"
	RoleBarbershop Role = "BARBERSHOP"
)

// Roles lists every role the app knows how to route.
func Roles() []Role {
	return []Role{RoleClient, RoleBarber, RoleBarbershop}
}

type UnknownRoleError struct {
	Raw string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.Raw)
}

func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range Roles() {
		if r == known {
			return r, nil
		}
	}
	return "", &UnknownRoleError{Raw: raw}
}

func (r Role) String() string {
	return string(r)
}
