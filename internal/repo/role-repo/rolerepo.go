package rolerepo

import (
	"context"
	"errors"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (repo *Repository) FindByProfileID(ctx context.Context, profileID string) (*domain.UserRole, error) {
	var role domain.UserRole
	err := repo.db.QueryRow(ctx,
		"SELECT id, profile_id, role FROM user_roles WHERE profile_id = $1 ORDER BY created_at DESC LIMIT 1",
		profileID,
	).Scan(&role.ID, &role.ProfileID, &role.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find role", zap.Error(err))
		return nil, err
	}
	return &role, nil
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.UserRole, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, profile_id, role FROM user_roles")
	if err != nil {
		zap.L().Error("can't list roles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var roles []domain.UserRole
	for rows.Next() {
		var role domain.UserRole
		if err := rows.Scan(&role.ID, &role.ProfileID, &role.Role); err != nil {
			zap.L().Error("can't scan role row", zap.Error(err))
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (repo *Repository) Insert(ctx context.Context, profileID string, role domain.Role) error {
	_, err := repo.db.Exec(ctx, "INSERT INTO user_roles (profile_id, role) VALUES ($1, $2)", profileID, role)
	if err != nil {
		zap.L().Error("can't insert role", zap.Error(err))
	}
	return err
}

func (repo *Repository) DeleteByProfileID(ctx context.Context, profileID string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM user_roles WHERE profile_id = $1", profileID)
	if err != nil {
		zap.L().Error("can't delete roles", zap.Error(err))
	}
	return err
}

// Replace swaps the profile's role assignment. The delete and insert run in
// one transaction so a failure can never leave a profile role-less.
func (repo *Repository) Replace(ctx context.Context, profileID string, role domain.Role) error {
	return repo.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := repo.DeleteByProfileID(ctx, profileID); err != nil {
			return err
		}
		return repo.Insert(ctx, profileID, role)
	})
}
