package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

// MatchInput - прямое создание матча без вызова. Пустой Status означает upcoming.
type MatchInput struct {
	OpponentID int64
	Date       string
	Time       string
	Location   string
	Status     string
}

type MatchService interface {
	CreateMatch(ctx context.Context, callerID int64, input MatchInput) (*domain.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID, callerID int64, status string) (*domain.Match, error)
	DeleteMatch(ctx context.Context, matchID, callerID int64) (*domain.Match, error)

	GetMatch(ctx context.Context, matchID int64) (*domain.Match, error)
	ListAll(ctx context.Context) ([]*domain.Match, error)
	ListUpcomingFor(ctx context.Context, teamID int64) ([]*domain.Match, error)
}
