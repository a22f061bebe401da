package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockProfileRepo, *MockRoleRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	roleRepo := NewMockRoleRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(userRepo, profileRepo, roleRepo, hashService, jwtService)
	defer ctrl.Finish()
	return service, userRepo, profileRepo, roleRepo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, profileRepo, roleRepo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedRole  domain.Role
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(nil, nil)
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
			},
			expectedRole:  domain.RoleOperator,
			expectedError: nil,
		},
		{
			name: "Email already registered",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(&domain.AuthUser{Email: "ana@bet.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Profile failure rolls back identity",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error) {
					user.ID = "user-1"
					return user, nil
				})
				profileRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("profile error"))
				userRepo.EXPECT().Delete(ctx, "user-1").Return(nil)
			},
			expectedError: errors.New("profile error"),
		},
		{
			name: "Role failure rolls back identity",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(nil, nil)
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
			},
			expectedError: errors.New("role error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			profile, role, err := service.Register(ctx, "Ana", "ana@bet.com", "secret123")
			if tt.expectedError != nil {
				assert.Nil(t, profile)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "profile-1", profile.ID)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, profileRepo, roleRepo, hashService, _ := NewMock(t)
	ctx := context.Background()

	user := &domain.AuthUser{ID: "user-1", Email: "ana@bet.com", PasswordHash: "hashed"}
	profile := &domain.Profile{ID: "profile-1", UserID: "user-1", Name: "Ana"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedRole  domain.Role
		expectedError error
	}{
		{
			name: "Successful login with assigned role",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(user, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(true)
				profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(profile, nil)
				roleRepo.EXPECT().FindByProfileID(ctx, "profile-1").Return(&domain.UserRole{ProfileID: "profile-1", Role: domain.RoleAdmin}, nil)
			},
			expectedRole: domain.RoleAdmin,
		},
		{
			name: "Missing role row defaults to operator",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(user, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(true)
				profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(profile, nil)
				roleRepo.EXPECT().FindByProfileID(ctx, "profile-1").Return(nil, nil)
			},
			expectedRole: domain.RoleOperator,
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(user, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Identity without profile",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "ana@bet.com").Return(user, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(true)
				profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, role, err := service.Authenticate(ctx, "ana@bet.com", "secret123")
			if tt.expectedError != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, profile, got)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, _, jwtService := NewMock(t)

	t.Run("Successful token generation", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("profile-1", domain.RoleAdmin, gomock.Any()).Return("token", nil)
		token, err := service.GenerateToken("profile-1", domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Error generating token", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("profile-1", domain.RoleOperator, gomock.Any()).Return("", errors.New("sign error"))
		token, err := service.GenerateToken("profile-1", domain.RoleOperator)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
