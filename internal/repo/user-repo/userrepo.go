package userrepo

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	err := repo.db.QueryRow(ctx, "SELECT id, email, password_hash FROM auth_users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find auth user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error) {
	query := `
		INSERT INTO auth_users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save auth user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM auth_users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete auth user", zap.Error(err))
	}
	return err
}
