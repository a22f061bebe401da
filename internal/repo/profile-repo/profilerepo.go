package profilerepo

import (
	"context"
	"errors"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, profile.UserID, profile.Name, profile.Email).Scan(&profile.ID)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	return repo.findOne(ctx, "SELECT id, user_id, name, COALESCE(email, '') FROM profiles WHERE id = $1", id)
}

func (repo *Repository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return repo.findOne(ctx, "SELECT id, user_id, name, COALESCE(email, '') FROM profiles WHERE user_id = $1", userID)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var profile domain.Profile
	err := repo.db.QueryRow(ctx, query, arg).
		Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, user_id, name, COALESCE(email, '') FROM profiles ORDER BY name")
	if err != nil {
		zap.L().Error("can't list profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Email); err != nil {
			zap.L().Error("can't scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM profiles WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete profile", zap.Error(err))
	}
	return err
}
