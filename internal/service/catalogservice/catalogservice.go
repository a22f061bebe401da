package catalogservice

import (
	"context"
	"errors"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"go.uber.org/zap"
)

type BookmakerRepo interface {
	List(ctx context.Context, onlyActive bool) ([]domain.Bookmaker, error)
	FindByID(ctx context.Context, id string) (*domain.Bookmaker, error)
	Create(ctx context.Context, b *domain.Bookmaker) (*domain.Bookmaker, error)
	Update(ctx context.Context, b *domain.Bookmaker) error
}

type SoftwareRepo interface {
	List(ctx context.Context, onlyActive bool) ([]domain.SoftwareTool, error)
	Create(ctx context.Context, tool *domain.SoftwareTool) (*domain.SoftwareTool, error)
	Update(ctx context.Context, tool *domain.SoftwareTool) error
}

type Service struct {
	bookmakerRepo BookmakerRepo
	softwareRepo  SoftwareRepo
}

func New(bookmakerRepo BookmakerRepo, softwareRepo SoftwareRepo) *Service {
	return &Service{
		bookmakerRepo: bookmakerRepo,
		softwareRepo:  softwareRepo,
	}
}

var (
	ErrEmptyName         = errors.New("name is required")
	ErrBookmakerNotFound = errors.New("bookmaker not found")
)

// ListBookmakers serves the bet/account forms; operators see only the
// active catalog, admins the full one.
func (s *Service) ListBookmakers(ctx context.Context, p access.Principal) ([]domain.Bookmaker, error) {
	return s.bookmakerRepo.List(ctx, !p.IsAdmin())
}

func (s *Service) CreateBookmaker(ctx context.Context, p access.Principal, name, logoURL string) (*domain.Bookmaker, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	bookmaker := &domain.Bookmaker{Name: name, LogoURL: logoURL, Active: true}
	created, err := s.bookmakerRepo.Create(ctx, bookmaker)
	if err != nil {
		zap.L().Error("can't save bookmaker: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateBookmaker(ctx context.Context, p access.Principal, b *domain.Bookmaker) error {
	if err := p.CanManageCompany(); err != nil {
		return err
	}
	if b.Name == "" {
		return ErrEmptyName
	}

	existing, err := s.bookmakerRepo.FindByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBookmakerNotFound
	}
	return s.bookmakerRepo.Update(ctx, b)
}

func (s *Service) ListSoftwareTools(ctx context.Context, p access.Principal) ([]domain.SoftwareTool, error) {
	return s.softwareRepo.List(ctx, !p.IsAdmin())
}

func (s *Service) CreateSoftwareTool(ctx context.Context, p access.Principal, name string) (*domain.SoftwareTool, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	tool := &domain.SoftwareTool{Name: name, Active: true}
	created, err := s.softwareRepo.Create(ctx, tool)
	if err != nil {
		zap.L().Error("can't save software tool: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateSoftwareTool(ctx context.Context, p access.Principal, tool *domain.SoftwareTool) error {
	if err := p.CanManageCompany(); err != nil {
		return err
	}
	if tool.Name == "" {
		return ErrEmptyName
	}
	return s.softwareRepo.Update(ctx, tool)
}
