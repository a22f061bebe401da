package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	Create(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error)
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

type RoleRepo interface {
	FindByProfileID(ctx context.Context, profileID string) (*domain.UserRole, error)
	Insert(ctx context.Context, profileID string, role domain.Role) error
}

type Service struct {
	userRepo    UserRepo
	profileRepo ProfileRepo
	roleRepo    RoleRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, profileRepo ProfileRepo, roleRepo RoleRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register self-signs-up a new operator: identity, profile and the default
// operator role. A profile or role failure rolls the identity back so no
// orphan login remains.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Profile, domain.Role, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't check existing user: ", zap.Error(err))
		return nil, "", err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, "", err
	}

	user, err := s.userRepo.Create(ctx, &domain.AuthUser{Email: email, PasswordHash: hashedPassword})
	if err != nil {
		zap.L().Error("can't create auth user: ", zap.Error(err))
		return nil, "", err
	}

	profile, err := s.profileRepo.Create(ctx, &domain.Profile{UserID: user.ID, Name: name, Email: email})
	if err != nil {
		zap.L().Error("can't create profile: ", zap.Error(err))
		if cleanupErr := s.userRepo.Delete(ctx, user.ID); cleanupErr != nil {
			zap.L().Error("can't roll back auth user: ", zap.Error(cleanupErr))
		}
		return nil, "", err
	}

	if err := s.roleRepo.Insert(ctx, profile.ID, domain.RoleOperator); err != nil {
		zap.L().Error("can't assign default role: ", zap.Error(err))
		if cleanupErr := s.userRepo.Delete(ctx, user.ID); cleanupErr != nil {
			zap.L().Error("can't roll back auth user: ", zap.Error(cleanupErr))
		}
		return nil, "", err
	}

	zap.L().Info("user registered", zap.String("email", email))
	return profile, domain.RoleOperator, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Profile, domain.Role, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	profile, err := s.profileRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil {
		zap.L().Error("auth user without profile", zap.String("user_id", user.ID))
		return nil, "", ErrInvalidCredentials
	}

	role, err := s.roleRepo.FindByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, "", err
	}

	zap.L().Info("user authenticated", zap.String("email", email))
	return profile, access.RoleOrDefault(role), nil
}

func (s *Service) GenerateToken(profileID string, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(12 * time.Hour)

	token, err := s.jwtService.GenerateJWT(profileID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
