// Package access is the single authorization surface: every read path asks
// it for a row scope and every gated mutation asks it for permission, so
// the operator/admin filter is never duplicated per screen.
package access

import (
	"errors"

	"github.com/brunodmn/betoffice/internal/domain"
)

var (
	ErrForbidden      = errors.New("insufficient permissions")
	ErrSelfRoleChange = errors.New("cannot change your own role")
	ErrSelfDelete     = errors.New("cannot delete your own account")
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ProfileID string
	Role      domain.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// Scope restricts row visibility of bets, accounts and deposits. The zero
// value is unrestricted (admin); otherwise only rows owned by OperatorID
// are visible.
type Scope struct {
	OperatorID string
}

func (s Scope) Restricted() bool {
	return s.OperatorID != ""
}

// RowScope returns the filter applied at every list/report query boundary.
func (p Principal) RowScope() Scope {
	if p.IsAdmin() {
		return Scope{}
	}
	return Scope{OperatorID: p.ProfileID}
}

// CanManageCompany gates the company-wide surfaces: financials, analytics,
// operator management, user creation and the bookmaker/software catalogs.
func (p Principal) CanManageCompany() error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanMutateRecord allows admins to touch any row and operators only their
// own.
func (p Principal) CanMutateRecord(ownerID string) error {
	if p.IsAdmin() || p.ProfileID == ownerID {
		return nil
	}
	return ErrForbidden
}

// CanChangeRole enforces the admin gate plus self-protection.
func (p Principal) CanChangeRole(targetProfileID string) error {
	if err := p.CanManageCompany(); err != nil {
		return err
	}
	if targetProfileID == p.ProfileID {
		return ErrSelfRoleChange
	}
	return nil
}

// CanDeleteProfile enforces the admin gate plus self-protection. The
// privileged delete operation re-checks this server-side regardless of the
// caller's UI state.
func (p Principal) CanDeleteProfile(targetProfileID string) error {
	if err := p.CanManageCompany(); err != nil {
		return err
	}
	if targetProfileID == p.ProfileID {
		return ErrSelfDelete
	}
	return nil
}

// RoleOrDefault maps a missing role assignment to operator. A profile with
// no role row behaves as an operator everywhere.
func RoleOrDefault(role *domain.UserRole) domain.Role {
	if role == nil {
		return domain.RoleOperator
	}
	return role.Role
}
