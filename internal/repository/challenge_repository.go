package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type ChallengeRepository interface {
	Create(ctx context.Context, c *domain.Challenge) error
	GetByID(ctx context.Context, id int64) (*domain.Challenge, error)
	ListBySender(ctx context.Context, teamID int64) ([]*domain.Challenge, error)
	ListByReceiver(ctx context.Context, teamID int64) ([]*domain.Challenge, error)

	// Accept атомарно удаляет ожидающий вызов и создаёт по нему матч.
	Accept(ctx context.Context, id, receiverID int64, acceptedAt time.Time) (*domain.Match, error)
	// Reject удаляет ожидающий вызов от имени получателя.
	Reject(ctx context.Context, id, receiverID int64) (*domain.Challenge, error)
	// Cancel удаляет ожидающий вызов от имени отправителя.
	Cancel(ctx context.Context, id, senderID int64) (*domain.Challenge, error)
}
