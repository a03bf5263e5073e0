package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role is the coarse permission level of an agency staff member. Accounts
// themselves are provisioned outside this system; only the role travels in
// tokens.
type Role string

const (
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAgent, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
