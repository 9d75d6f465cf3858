package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type TeamService interface {
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
}
