package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type matchRepository struct {
	executor DBExecutor
}

func NewMatchRepository(db *sql.DB) *matchRepository {
	return &matchRepository{executor: db}
}

func NewMatchRepositoryWithTx(tx *sql.Tx) *matchRepository {
	return &matchRepository{executor: tx}
}

const matchColumns = `id, team_a_id, team_a_name, team_b_id, team_b_name, match_date, match_time, location, status, created_at`

func scanMatch(row rowScanner) (*domain.Match, error) {
	m := &domain.Match{}
	var status string
	err := row.Scan(
		&m.ID,
		&m.TeamAID,
		&m.TeamAName,
		&m.TeamBID,
		&m.TeamBName,
		&m.Date,
		&m.Time,
		&m.Location,
		&status,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Status = domain.MatchStatus(status)
	return m, nil
}

func (r *matchRepository) Create(ctx context.Context, m *domain.Match) error {
	query := `
		INSERT INTO matches (team_a_id, team_a_name, team_b_id, team_b_name, match_date, match_time, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		m.TeamAID,
		m.TeamAName,
		m.TeamBID,
		m.TeamBName,
		m.Date,
		m.Time,
		m.Location,
		string(m.Status),
		m.CreatedAt,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return domain.NewStorageError("insert match", err)
	}

	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	m, err := scanMatch(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("match %d", id))
		}
		return nil, domain.NewStorageError("get match", err)
	}

	return m, nil
}

// ListAll подставляет текущие имена команд из справочника;
// если команды уже нет, остаётся имя, сохранённое при создании матча
func (r *matchRepository) ListAll(ctx context.Context) ([]*domain.Match, error) {
	query := `
		SELECT m.id, m.team_a_id, COALESCE(ta.name, m.team_a_name), m.team_b_id, COALESCE(tb.name, m.team_b_name),
		       m.match_date, m.match_time, m.location, m.status, m.created_at
		FROM matches m
		LEFT JOIN teams ta ON ta.id = m.team_a_id
		LEFT JOIN teams tb ON tb.id = m.team_b_id
		ORDER BY m.created_at DESC, m.id DESC
	`
	return r.list(ctx, "list matches", query)
}

func (r *matchRepository) ListByTeamAndStatus(ctx context.Context, teamID int64, status domain.MatchStatus) ([]*domain.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE (team_a_id = $1 OR team_b_id = $1) AND status = $2
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, "list team matches", query, teamID, string(status))
}

func (r *matchRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Match, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	defer rows.Close()

	matches := make([]*domain.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, domain.NewStorageError(op, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}

	return matches, nil
}

// UpdateStatus меняет статус, только если матч всё ещё в статусе from
func (r *matchRepository) UpdateStatus(ctx context.Context, id, participantID int64, from, to domain.MatchStatus) (*domain.Match, error) {
	query := `
		UPDATE matches
		SET status = $4
		WHERE id = $1 AND (team_a_id = $2 OR team_b_id = $2) AND status = $3
		RETURNING ` + matchColumns

	m, err := scanMatch(r.executor.QueryRowContext(ctx, query, id, participantID, string(from), string(to)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.updateFailure(ctx, id, participantID)
		}
		return nil, domain.NewStorageError("update match status", err)
	}

	return m, nil
}

func (r *matchRepository) updateFailure(ctx context.Context, id, participantID int64) error {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.IsParticipant(participantID) {
		return domain.NewForbiddenError("not authorized to update this match")
	}
	return domain.NewConflictError(fmt.Sprintf("match status changed concurrently, now %s", m.Status))
}

func (r *matchRepository) Delete(ctx context.Context, id, participantID int64) (*domain.Match, error) {
	query := `
		DELETE FROM matches
		WHERE id = $1 AND (team_a_id = $2 OR team_b_id = $2)
		RETURNING ` + matchColumns

	m, err := scanMatch(r.executor.QueryRowContext(ctx, query, id, participantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domain.NewForbiddenError("cannot delete match, team is not a participant")
		}
		return nil, domain.NewStorageError("delete match", err)
	}

	return m, nil
}
