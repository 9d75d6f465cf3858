package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает сервис чтения справочника команд
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}
