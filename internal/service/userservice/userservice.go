package userservice

import (
	"context"
	"errors"

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
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Delete(ctx context.Context, id string) error
}

type RoleRepo interface {
	Insert(ctx context.Context, profileID string, role domain.Role) error
	DeleteByProfileID(ctx context.Context, profileID string) error
	Replace(ctx context.Context, profileID string, role domain.Role) error
	ListAll(ctx context.Context) ([]domain.UserRole, error)
}

type Service struct {
	userRepo    UserRepo
	profileRepo ProfileRepo
	roleRepo    RoleRepo
	hashService auth.HashServiceInterface
}

func New(userRepo UserRepo, profileRepo ProfileRepo, roleRepo RoleRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		hashService: hashService,
	}
}

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role, must be 'admin' or 'operator'")
	ErrProfileNotFound = errors.New("profile not found")
)

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

type CreatedUser struct {
	ProfileID string
	Email     string
	Name      string
	Role      domain.Role
}

type Operator struct {
	Profile domain.Profile
	Role    domain.Role
}

func validRole(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleOperator
}

// CreateUser is the privileged admin operation: identity, profile and the
// chosen role are written in sequence with best-effort rollback of the
// identity when a later step fails.
func (s *Service) CreateUser(ctx context.Context, p access.Principal, in CreateUserInput) (*CreatedUser, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	if !validRole(in.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.AuthUser{Email: in.Email, PasswordHash: hashedPassword})
	if err != nil {
		zap.L().Error("can't create auth user: ", zap.Error(err))
		return nil, err
	}

	profile, err := s.profileRepo.Create(ctx, &domain.Profile{UserID: user.ID, Name: in.Name, Email: in.Email})
	if err != nil {
		zap.L().Error("can't create profile: ", zap.Error(err))
		if cleanupErr := s.userRepo.Delete(ctx, user.ID); cleanupErr != nil {
			zap.L().Error("can't roll back auth user: ", zap.Error(cleanupErr))
		}
		return nil, err
	}

	if err := s.roleRepo.Insert(ctx, profile.ID, in.Role); err != nil {
		zap.L().Error("can't assign role: ", zap.Error(err))
		if cleanupErr := s.userRepo.Delete(ctx, user.ID); cleanupErr != nil {
			zap.L().Error("can't roll back auth user: ", zap.Error(cleanupErr))
		}
		return nil, err
	}

	zap.L().Info("user created by admin",
		zap.String("email", in.Email), zap.String("role", string(in.Role)))
	return &CreatedUser{
		ProfileID: profile.ID,
		Email:     in.Email,
		Name:      in.Name,
		Role:      in.Role,
	}, nil
}

// DeleteUser removes the role rows, profile and identity of another user.
// Bets and accounts keep their operator_id and show up as orphaned records
// in admin reports.
func (s *Service) DeleteUser(ctx context.Context, p access.Principal, profileID string) error {
	if err := p.CanDeleteProfile(profileID); err != nil {
		return err
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if err := s.roleRepo.DeleteByProfileID(ctx, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(ctx, profileID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, profile.UserID); err != nil {
		zap.L().Error("can't delete auth user: ", zap.Error(err))
		return err
	}

	zap.L().Info("user deleted by admin", zap.String("profile_id", profileID))
	return nil
}

// ChangeRole reassigns the single role of another profile.
func (s *Service) ChangeRole(ctx context.Context, p access.Principal, profileID string, role domain.Role) error {
	if err := p.CanChangeRole(profileID); err != nil {
		return err
	}
	if !validRole(role) {
		return ErrInvalidRole
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if err := s.roleRepo.Replace(ctx, profileID, role); err != nil {
		return err
	}

	zap.L().Info("role reassigned",
		zap.String("profile_id", profileID), zap.String("role", string(role)))
	return nil
}

// ListOperators returns every profile with its effective role; profiles
// without a role row surface as operators.
func (s *Service) ListOperators(ctx context.Context, p access.Principal) ([]Operator, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byProfile := make(map[string]domain.Role, len(roles))
	for _, role := range roles {
		byProfile[role.ProfileID] = role.Role
	}

	operators := make([]Operator, 0, len(profiles))
	for _, profile := range profiles {
		role, ok := byProfile[profile.ID]
		if !ok {
			role = domain.RoleOperator
		}
		operators = append(operators, Operator{Profile: profile, Role: role})
	}
	return operators, nil
}
