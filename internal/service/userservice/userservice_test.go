package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockProfileRepo, *MockRoleRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	roleRepo := NewMockRoleRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)

	service := New(userRepo, profileRepo, roleRepo, hashService)
	defer ctrl.Finish()
	return service, userRepo, profileRepo, roleRepo, hashService
}

var (
	admin    = access.Principal{ProfileID: "admin-1", Role: domain.RoleAdmin}
	operator = access.Principal{ProfileID: "op-1", Role: domain.RoleOperator}
)

func TestCreateUser(t *testing.T) {
	service, userRepo, profileRepo, roleRepo, hashService := NewMock(t)
	ctx := context.Background()

	in := CreateUserInput{Email: "novo@bet.com", Password: "secret123", Name: "Novo", Role: domain.RoleOperator}

	t.Run("Admin provisions identity, profile and role", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "novo@bet.com").Return(nil, nil)
		hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error) {
			user.ID = "user-1"
			return user, nil
		})
		profileRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
			profile.ID = "profile-1"
			return profile, nil
		})
		roleRepo.EXPECT().Insert(ctx, "profile-1", domain.RoleOperator).Return(nil)

		created, err := service.CreateUser(ctx, admin, in)
		assert.NoError(t, err)
		assert.Equal(t, "profile-1", created.ProfileID)
		assert.Equal(t, domain.RoleOperator, created.Role)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		created, err := service.CreateUser(ctx, operator, in)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		bad := in
		bad.Role = "viewer"

		created, err := service.CreateUser(ctx, admin, bad)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "novo@bet.com").Return(&domain.AuthUser{Email: "novo@bet.com"}, nil)

		created, err := service.CreateUser(ctx, admin, in)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("Role failure rolls back the identity", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "novo@bet.com").Return(nil, nil)
		hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error) {
			user.ID = "user-1"
			return user, nil
		})
		profileRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
			profile.ID = "profile-1"
			return profile, nil
		})
		roleRepo.EXPECT().Insert(ctx, "profile-1", domain.RoleOperator).Return(errors.New("role error"))
		userRepo.EXPECT().Delete(ctx, "user-1").Return(nil)

		created, err := service.CreateUser(ctx, admin, in)
		assert.Nil(t, created)
		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	service, userRepo, profileRepo, roleRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Roles, profile and identity removed in order", func(t *testing.T) {
		profileRepo.EXPECT().FindByID(ctx, "profile-2").Return(&domain.Profile{ID: "profile-2", UserID: "user-2"}, nil)
		roleRepo.EXPECT().DeleteByProfileID(ctx, "profile-2").Return(nil)
		profileRepo.EXPECT().Delete(ctx, "profile-2").Return(nil)
		userRepo.EXPECT().Delete(ctx, "user-2").Return(nil)

		assert.NoError(t, service.DeleteUser(ctx, admin, "profile-2"))
	})

	t.Run("Admin cannot delete themselves", func(t *testing.T) {
		err := service.DeleteUser(ctx, admin, "admin-1")
		assert.ErrorIs(t, err, access.ErrSelfDelete)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		err := service.DeleteUser(ctx, operator, "profile-2")
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Unknown profile", func(t *testing.T) {
		profileRepo.EXPECT().FindByID(ctx, "profile-x").Return(nil, nil)

		err := service.DeleteUser(ctx, admin, "profile-x")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestChangeRole(t *testing.T) {
	service, _, profileRepo, roleRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Role is replaced", func(t *testing.T) {
		profileRepo.EXPECT().FindByID(ctx, "profile-2").Return(&domain.Profile{ID: "profile-2"}, nil)
		roleRepo.EXPECT().Replace(ctx, "profile-2", domain.RoleAdmin).Return(nil)

		assert.NoError(t, service.ChangeRole(ctx, admin, "profile-2", domain.RoleAdmin))
	})

	t.Run("Admin cannot change their own role", func(t *testing.T) {
		err := service.ChangeRole(ctx, admin, "admin-1", domain.RoleOperator)
		assert.ErrorIs(t, err, access.ErrSelfRoleChange)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		err := service.ChangeRole(ctx, admin, "profile-2", "viewer")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		err := service.ChangeRole(ctx, operator, "profile-2", domain.RoleAdmin)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestListOperators(t *testing.T) {
	service, _, profileRepo, roleRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Profiles without a role row surface as operators", func(t *testing.T) {
		profileRepo.EXPECT().List(ctx).Return([]domain.Profile{
			{ID: "profile-1", Name: "Ana"},
			{ID: "profile-2", Name: "Bia"},
		}, nil)
		roleRepo.EXPECT().ListAll(ctx).Return([]domain.UserRole{
			{ProfileID: "profile-1", Role: domain.RoleAdmin},
		}, nil)

		operators, err := service.ListOperators(ctx, admin)
		assert.NoError(t, err)
		assert.Len(t, operators, 2)
		assert.Equal(t, domain.RoleAdmin, operators[0].Role)
		assert.Equal(t, domain.RoleOperator, operators[1].Role)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		operators, err := service.ListOperators(ctx, operator)
		assert.Nil(t, operators)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}
