package bookmakerrepo

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

func (repo *Repository) List(ctx context.Context, onlyActive bool) ([]domain.Bookmaker, error) {
	query := "SELECT id, name, COALESCE(logo_url, ''), active FROM bookmakers ORDER BY name"
	if onlyActive {
		query = "SELECT id, name, COALESCE(logo_url, ''), active FROM bookmakers WHERE active ORDER BY name"
	}
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list bookmakers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookmakers []domain.Bookmaker
	for rows.Next() {
		var b domain.Bookmaker
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL, &b.Active); err != nil {
			zap.L().Error("can't scan bookmaker row", zap.Error(err))
			return nil, err
		}
		bookmakers = append(bookmakers, b)
	}
	return bookmakers, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Bookmaker, error) {
	var b domain.Bookmaker
	err := repo.db.QueryRow(ctx,
		"SELECT id, name, COALESCE(logo_url, ''), active FROM bookmakers WHERE id = $1", id,
	).Scan(&b.ID, &b.Name, &b.LogoURL, &b.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bookmaker", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (repo *Repository) Create(ctx context.Context, b *domain.Bookmaker) (*domain.Bookmaker, error) {
	query := `
		INSERT INTO bookmakers (name, logo_url, active)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, b.Name, b.LogoURL, b.Active).Scan(&b.ID)
	if err != nil {
		zap.L().Error("can't save bookmaker", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (repo *Repository) Update(ctx context.Context, b *domain.Bookmaker) error {
	_, err := repo.db.Exec(ctx,
		"UPDATE bookmakers SET name = $2, logo_url = NULLIF($3, ''), active = $4 WHERE id = $1",
		b.ID, b.Name, b.LogoURL, b.Active,
	)
	if err != nil {
		zap.L().Error("can't update bookmaker", zap.Error(err))
	}
	return err
}
