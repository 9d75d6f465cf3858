package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type matchService struct {
	matchRepo repository.MatchRepository
	teamRepo  repository.TeamRepository
	clock     clockwork.Clock
}

// NewMatchService создает сервис матчей
func NewMatchService(
	matchRepo repository.MatchRepository,
	teamRepo repository.TeamRepository,
	clock clockwork.Clock,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		clock:     clock,
	}
}

// CreateMatch создает матч, в котором вызывающая команда - Team A
func (s *matchService) CreateMatch(ctx context.Context, callerID int64, input MatchInput) (*domain.Match, error) {
	err := requireNonBlank(
		field{"date", input.Date},
		field{"time", input.Time},
		field{"location", input.Location},
	)
	if err != nil {
		return nil, err
	}
	if input.OpponentID <= 0 {
		return nil, domain.NewValidationError("opponent team id is required")
	}
	if input.OpponentID == callerID {
		return nil, domain.NewValidationError("a team cannot play against itself")
	}

	status := domain.MatchStatusUpcoming
	if strings.TrimSpace(input.Status) != "" {
		status, err = domain.ParseMatchStatus(input.Status)
		if err != nil {
			return nil, err
		}
	}

	teamA, err := callerTeam(ctx, s.teamRepo, callerID)
	if err != nil {
		return nil, err
	}

	teamB, err := s.teamRepo.GetByID(ctx, input.OpponentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team %d", input.OpponentID))
		}
		return nil, err
	}

	m := &domain.Match{
		TeamAID:   teamA.ID,
		TeamAName: teamA.Name,
		TeamBID:   teamB.ID,
		TeamBName: teamB.Name,
		Date:      input.Date,
		Time:      input.Time,
		Location:  input.Location,
		Status:    status,
		CreatedAt: s.clock.Now(),
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("match_id", m.ID).
		Int64("team_a_id", teamA.ID).
		Int64("team_b_id", teamB.ID).
		Msg("match created")

	return m, nil
}

// UpdateMatchStatus меняет статус матча по правилам перехода.
// Постороннему всегда FORBIDDEN, даже с некорректным статусом.
// Установка текущего статуса возвращает матч без изменений.
func (s *matchService) UpdateMatchStatus(ctx context.Context, matchID, callerID int64, status string) (*domain.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !m.IsParticipant(callerID) {
		return nil, domain.NewForbiddenError("only participants can update this match")
	}

	next, err := domain.ParseMatchStatus(status)
	if err != nil {
		return nil, err
	}

	if err := m.Status.TransitionTo(next); err != nil {
		return nil, err
	}
	if m.Status == next {
		return m, nil
	}

	// статус мог измениться между чтением и записью, обновление условное
	updated, err := s.matchRepo.UpdateStatus(ctx, matchID, callerID, m.Status, next)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("match_id", matchID).
		Str("from", string(m.Status)).
		Str("to", string(next)).
		Msg("match status changed")

	return updated, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, matchID, callerID int64) (*domain.Match, error) {
	m, err := s.matchRepo.Delete(ctx, matchID, callerID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("match_id", matchID).
		Msg("match deleted")

	return m, nil
}

func (s *matchService) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	return s.matchRepo.GetByID(ctx, matchID)
}

// ListAll возвращает все матчи с актуальными именами команд, новые первыми
func (s *matchService) ListAll(ctx context.Context) ([]*domain.Match, error) {
	return s.matchRepo.ListAll(ctx)
}

func (s *matchService) ListUpcomingFor(ctx context.Context, teamID int64) ([]*domain.Match, error) {
	return s.matchRepo.ListByTeamAndStatus(ctx, teamID, domain.MatchStatusUpcoming)
}
