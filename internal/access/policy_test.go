package access

import (
	"testing"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRowScope(t *testing.T) {
	tests := []struct {
		name       string
		principal  Principal
		restricted bool
		operatorID string
	}{
		{
			name:       "admin sees everything",
			principal:  Principal{ProfileID: "p-1", Role: domain.RoleAdmin},
			restricted: false,
		},
		{
			name:       "operator sees only own rows",
			principal:  Principal{ProfileID: "p-2", Role: domain.RoleOperator},
			restricted: true,
			operatorID: "p-2",
		},
		{
			name:       "unknown role behaves as operator",
			principal:  Principal{ProfileID: "p-3", Role: ""},
			restricted: true,
			operatorID: "p-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := tt.principal.RowScope()
			assert.Equal(t, tt.restricted, scope.Restricted())
			assert.Equal(t, tt.operatorID, scope.OperatorID)
		})
	}
}

func TestCanManageCompany(t *testing.T) {
	admin := Principal{ProfileID: "p-1", Role: domain.RoleAdmin}
	operator := Principal{ProfileID: "p-2", Role: domain.RoleOperator}

	assert.NoError(t, admin.CanManageCompany())
	assert.ErrorIs(t, operator.CanManageCompany(), ErrForbidden)
}

func TestCanMutateRecord(t *testing.T) {
	admin := Principal{ProfileID: "p-1", Role: domain.RoleAdmin}
	operator := Principal{ProfileID: "p-2", Role: domain.RoleOperator}

	assert.NoError(t, admin.CanMutateRecord("p-9"))
	assert.NoError(t, operator.CanMutateRecord("p-2"))
	assert.ErrorIs(t, operator.CanMutateRecord("p-9"), ErrForbidden)
}

func TestSelfProtection(t *testing.T) {
	admin := Principal{ProfileID: "p-1", Role: domain.RoleAdmin}
	operator := Principal{ProfileID: "p-2", Role: domain.RoleOperator}

	assert.NoError(t, admin.CanChangeRole("p-9"))
	assert.ErrorIs(t, admin.CanChangeRole("p-1"), ErrSelfRoleChange)
	assert.NoError(t, admin.CanDeleteProfile("p-9"))
	assert.ErrorIs(t, admin.CanDeleteProfile("p-1"), ErrSelfDelete)

	// operators never reach the self-protection branch
	assert.ErrorIs(t, operator.CanChangeRole("p-2"), ErrForbidden)
	assert.ErrorIs(t, operator.CanDeleteProfile("p-2"), ErrForbidden)
}

func TestRoleOrDefault(t *testing.T) {
	assert.Equal(t, domain.RoleOperator, RoleOrDefault(nil))
	assert.Equal(t, domain.RoleAdmin, RoleOrDefault(&domain.UserRole{Role: domain.RoleAdmin}))
	assert.Equal(t, domain.RoleOperator, RoleOrDefault(&domain.UserRole{Role: domain.RoleOperator}))
}
