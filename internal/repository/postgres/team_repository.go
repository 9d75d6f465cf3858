package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

const teamColumns = `id, name, location, skill_level, description, created_at`

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Location,
		&team.SkillLevel,
		&team.Description,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team %d", id))
		}
		return nil, domain.NewStorageError("get team", err)
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at DESC, id DESC`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewStorageError("list teams", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan team", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list teams", err)
	}

	return teams, nil
}
