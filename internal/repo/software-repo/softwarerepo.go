package softwarerepo

import (
	"context"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
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

func (repo *Repository) List(ctx context.Context, onlyActive bool) ([]domain.SoftwareTool, error) {
	query := "SELECT id, name, active FROM software_tools ORDER BY name"
	if onlyActive {
		query = "SELECT id, name, active FROM software_tools WHERE active ORDER BY name"
	}
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list software tools", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tools []domain.SoftwareTool
	for rows.Next() {
		var tool domain.SoftwareTool
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.Active); err != nil {
			zap.L().Error("can't scan software tool row", zap.Error(err))
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

func (repo *Repository) Create(ctx context.Context, tool *domain.SoftwareTool) (*domain.SoftwareTool, error) {
	err := repo.db.QueryRow(ctx,
		"INSERT INTO software_tools (name, active) VALUES ($1, $2) RETURNING id",
		tool.Name, tool.Active,
	).Scan(&tool.ID)
	if err != nil {
		zap.L().Error("can't save software tool", zap.Error(err))
		return nil, err
	}
	return tool, nil
}

func (repo *Repository) Update(ctx context.Context, tool *domain.SoftwareTool) error {
	_, err := repo.db.Exec(ctx,
		"UPDATE software_tools SET name = $2, active = $3 WHERE id = $1",
		tool.ID, tool.Name, tool.Active,
	)
	if err != nil {
		zap.L().Error("can't update software tool", zap.Error(err))
	}
	return err
}
