package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type challengeRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewChallengeRepository(db *sql.DB) *challengeRepository {
	return &challengeRepository{db: db, executor: db}
}

const challengeColumns = `id, sender_team_id, sender_team_name, receiver_team_id, receiver_team_name,
	match_date, match_time, location, message, status, created_at`

type challengeRole int

const (
	roleSender challengeRole = iota
	roleReceiver
)

func scanChallenge(row rowScanner) (*domain.Challenge, error) {
	c := &domain.Challenge{}
	var status string
	err := row.Scan(
		&c.ID,
		&c.SenderTeamID,
		&c.SenderTeamName,
		&c.ReceiverTeamID,
		&c.ReceiverTeamName,
		&c.Date,
		&c.Time,
		&c.Location,
		&c.Message,
		&status,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.ChallengeStatus(status)
	return c, nil
}

func (r *challengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	query := `
		INSERT INTO challenges (
			sender_team_id, sender_team_name, receiver_team_id, receiver_team_name,
			match_date, match_time, location, message, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		c.SenderTeamID,
		c.SenderTeamName,
		c.ReceiverTeamID,
		c.ReceiverTeamName,
		c.Date,
		c.Time,
		c.Location,
		c.Message,
		string(c.Status),
		c.CreatedAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return domain.NewStorageError("insert challenge", err)
	}

	return nil
}

func (r *challengeRepository) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`

	c, err := scanChallenge(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("challenge %d", id))
		}
		return nil, domain.NewStorageError("get challenge", err)
	}

	return c, nil
}

func (r *challengeRepository) ListBySender(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE sender_team_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, "list sent challenges", query, teamID)
}

func (r *challengeRepository) ListByReceiver(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE receiver_team_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, "list received challenges", query, teamID)
}

func (r *challengeRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Challenge, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	defer rows.Close()

	challenges := make([]*domain.Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, domain.NewStorageError(op, err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}

	return challenges, nil
}

const deletePendingAsReceiver = `
	DELETE FROM challenges
	WHERE id = $1 AND receiver_team_id = $2 AND status = 'pending'
	RETURNING ` + challengeColumns

const deletePendingAsSender = `
	DELETE FROM challenges
	WHERE id = $1 AND sender_team_id = $2 AND status = 'pending'
	RETURNING ` + challengeColumns

// Accept удаляет вызов и создаёт матч в одной транзакции.
// Конкурентные Accept/Reject сериализуются блокировкой строки в DELETE:
// проигравший получает ноль строк и NOT_FOUND.
func (r *challengeRepository) Accept(ctx context.Context, id, receiverID int64, acceptedAt time.Time) (*domain.Match, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.NewStorageError("begin accept challenge", err)
	}
	defer tx.Rollback()

	c, err := scanChallenge(tx.QueryRowContext(ctx, deletePendingAsReceiver, id, receiverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			tx.Rollback()
			return nil, r.resolveFailure(ctx, id, receiverID, roleReceiver)
		}
		return nil, domain.NewStorageError("delete accepted challenge", err)
	}

	match := c.ToMatch(acceptedAt)
	if err := NewMatchRepositoryWithTx(tx).Create(ctx, match); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewStorageError("commit accept challenge", err)
	}

	return match, nil
}

func (r *challengeRepository) Reject(ctx context.Context, id, receiverID int64) (*domain.Challenge, error) {
	return r.deletePending(ctx, deletePendingAsReceiver, id, receiverID, roleReceiver)
}

func (r *challengeRepository) Cancel(ctx context.Context, id, senderID int64) (*domain.Challenge, error) {
	return r.deletePending(ctx, deletePendingAsSender, id, senderID, roleSender)
}

func (r *challengeRepository) deletePending(ctx context.Context, query string, id, teamID int64, role challengeRole) (*domain.Challenge, error) {
	c, err := scanChallenge(r.executor.QueryRowContext(ctx, query, id, teamID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.resolveFailure(ctx, id, teamID, role)
		}
		return nil, domain.NewStorageError("delete challenge", err)
	}
	return c, nil
}

// resolveFailure объясняет, почему условный DELETE не затронул строк
func (r *challengeRepository) resolveFailure(ctx context.Context, id, teamID int64, role challengeRole) error {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch role {
	case roleReceiver:
		if c.ReceiverTeamID != teamID {
			return domain.NewForbiddenError("only the challenged team can accept or reject this challenge")
		}
	case roleSender:
		if c.SenderTeamID != teamID {
			return domain.NewForbiddenError("only the challenging team can cancel this challenge")
		}
	}

	// сервис не сохраняет accepted (принятый вызов удаляется), но схема допускает
	// такую строку, записанную в обход сервиса; разрешать её повторно нельзя
	if !c.Status.IsResolvable() {
		return domain.NewConflictError(fmt.Sprintf("challenge is %s", c.Status))
	}
	// строку удалили между DELETE и чтением
	return domain.NewNotFoundError(fmt.Sprintf("challenge %d", id))
}
