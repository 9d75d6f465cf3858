package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type requestRepository struct {
	executor DBExecutor
}

func NewRequestRepository(db *sql.DB) *requestRepository {
	return &requestRepository{executor: db}
}

const requestColumns = `id, owner_team_id, owner_team_name, match_date, match_time, location, message, status, created_at`

func scanRequest(row rowScanner) (*domain.OpenRequest, error) {
	req := &domain.OpenRequest{}
	var status string
	err := row.Scan(
		&req.ID,
		&req.OwnerTeamID,
		&req.OwnerTeamName,
		&req.Date,
		&req.Time,
		&req.Location,
		&req.Message,
		&status,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return req, nil
}

func (r *requestRepository) Create(ctx context.Context, req *domain.OpenRequest) error {
	query := `
		INSERT INTO match_requests (owner_team_id, owner_team_name, match_date, match_time, location, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		req.OwnerTeamID,
		req.OwnerTeamName,
		req.Date,
		req.Time,
		req.Location,
		req.Message,
		string(req.Status),
		req.CreatedAt,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return domain.NewStorageError("insert match request", err)
	}

	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.OpenRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM match_requests WHERE id = $1`

	req, err := scanRequest(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("match request %d", id))
		}
		return nil, domain.NewStorageError("get match request", err)
	}

	return req, nil
}

// Update объединяет только переданные поля (COALESCE), остальные сохраняют прежние значения
func (r *requestRepository) Update(ctx context.Context, id, ownerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error) {
	query := `
		UPDATE match_requests
		SET match_date = COALESCE($3, match_date),
		    match_time = COALESCE($4, match_time),
		    location   = COALESCE($5, location),
		    message    = COALESCE($6, message),
		    status     = COALESCE($7, status)
		WHERE id = $1 AND owner_team_id = $2
		RETURNING ` + requestColumns

	var status sql.NullString
	if upd.Status != nil {
		status = sql.NullString{String: string(*upd.Status), Valid: true}
	}

	req, err := scanRequest(r.executor.QueryRowContext(
		ctx,
		query,
		id,
		ownerID,
		nullString(upd.Date),
		nullString(upd.Time),
		nullString(upd.Location),
		nullString(upd.Message),
		status,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.ownershipFailure(ctx, id, "update")
		}
		return nil, domain.NewStorageError("update match request", err)
	}

	return req, nil
}

func (r *requestRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.OpenRequest, error) {
	query := `DELETE FROM match_requests WHERE id = $1 AND owner_team_id = $2 RETURNING ` + requestColumns

	req, err := scanRequest(r.executor.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.ownershipFailure(ctx, id, "delete")
		}
		return nil, domain.NewStorageError("delete match request", err)
	}

	return req, nil
}

// ownershipFailure объясняет, почему условный UPDATE/DELETE не затронул строк
func (r *requestRepository) ownershipFailure(ctx context.Context, id int64, action string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.NewForbiddenError(fmt.Sprintf("not authorized to %s this match request", action))
}

func (r *requestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.OpenRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM match_requests WHERE status = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, "list match requests by status", query, string(status))
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.OpenRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM match_requests WHERE owner_team_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, "list match requests by owner", query, ownerID)
}

func (r *requestRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.OpenRequest, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	defer rows.Close()

	requests := make([]*domain.OpenRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, domain.NewStorageError(op, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}

	return requests, nil
}

// Join проверяет статус и владельца заявки в том же операторе, что и вставка отклика
func (r *requestRepository) Join(ctx context.Context, join *domain.JoinedRequest) error {
	query := `
		INSERT INTO joined_requests (
			request_id, request_owner_id, joining_team_id,
			joining_team_name, joining_team_location, joining_team_skill_level, created_at
		)
		SELECT mr.id, mr.owner_team_id, $2::bigint, $3::text, $4::text, $5::text, $6::timestamptz
		FROM match_requests mr
		WHERE mr.id = $1 AND mr.status = 'open' AND mr.owner_team_id <> $2::bigint
		RETURNING id, request_owner_id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		join.RequestID,
		join.JoiningTeamID,
		join.JoiningTeamName,
		join.JoiningTeamLocation,
		join.JoiningTeamSkill,
		join.CreatedAt,
	).Scan(&join.ID, &join.RequestOwnerID, &join.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.joinFailure(ctx, join.RequestID, join.JoiningTeamID)
		}
		if isUniqueViolation(err) {
			return domain.NewConflictError("team has already joined this match request")
		}
		return domain.NewStorageError("insert joined request", err)
	}

	return nil
}

func (r *requestRepository) joinFailure(ctx context.Context, requestID, teamID int64) error {
	req, err := r.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.OwnerTeamID == teamID {
		return domain.NewForbiddenError("cannot join your own match request")
	}
	return domain.NewConflictError("match request has already been closed")
}

func (r *requestRepository) ListJoinsByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinedRequest, error) {
	query := `
		SELECT id, request_id, request_owner_id, joining_team_id,
		       joining_team_name, joining_team_location, joining_team_skill_level, created_at
		FROM joined_requests
		WHERE request_owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, domain.NewStorageError("list joined requests", err)
	}
	defer rows.Close()

	joins := make([]*domain.JoinedRequest, 0)
	for rows.Next() {
		j := &domain.JoinedRequest{}
		err := rows.Scan(
			&j.ID,
			&j.RequestID,
			&j.RequestOwnerID,
			&j.JoiningTeamID,
			&j.JoiningTeamName,
			&j.JoiningTeamLocation,
			&j.JoiningTeamSkill,
			&j.CreatedAt,
		)
		if err != nil {
			return nil, domain.NewStorageError("scan joined request", err)
		}
		joins = append(joins, j)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list joined requests", err)
	}

	return joins, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
