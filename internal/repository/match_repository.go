package repository

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	ListAll(ctx context.Context) ([]*domain.Match, error)
	ListByTeamAndStatus(ctx context.Context, teamID int64, status domain.MatchStatus) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id, participantID int64, from, to domain.MatchStatus) (*domain.Match, error)
	Delete(ctx context.Context, id, participantID int64) (*domain.Match, error)
}
