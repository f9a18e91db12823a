package auth

import (
	"strings"

	"storefront-partners/internal/pkg/errs"
)

var (
	ErrInvalidRole    = errs.Sentinel("invalid caller role", errs.ErrValidation)
	ErrEmptySubject   = errs.Sentinel("token subject is empty", errs.ErrValidation)
	ErrRoleNotAllowed = errs.Sentinel("caller role not allowed", errs.ErrPolicyViolation)
)

// Role of a calling system. Storefront backends call as service; back-office users as admin.
type Role string

const (
	RoleService Role = "service"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleService, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the verified caller of a protected endpoint.
type Principal struct {
	subject string
	role    Role
}

func NewPrincipal(subject string, role Role) (Principal, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Principal{}, ErrEmptySubject
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{subject: subject, role: role}, nil
}

func (p Principal) Subject() string { return p.subject }
func (p Principal) Role() Role      { return p.role }

// Admin may call everything a service may.
func (p Principal) Allows(required Role) bool {
	if p.role == RoleAdmin {
		return true
	}
	return p.role == required
}
