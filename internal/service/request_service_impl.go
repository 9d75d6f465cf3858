package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type requestService struct {
	requestRepo repository.RequestRepository
	teamRepo    repository.TeamRepository
	clock       clockwork.Clock
}

// NewRequestService создает сервис открытых заявок
func NewRequestService(
	requestRepo repository.RequestRepository,
	teamRepo repository.TeamRepository,
	clock clockwork.Clock,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		clock:       clock,
	}
}

// CreateRequest публикует заявку со статусом open и текущим именем команды-владельца
func (s *requestService) CreateRequest(ctx context.Context, ownerID int64, input RequestInput) (*domain.OpenRequest, error) {
	err := requireNonBlank(
		field{"date", input.Date},
		field{"time", input.Time},
		field{"location", input.Location},
	)
	if err != nil {
		return nil, err
	}

	owner, err := callerTeam(ctx, s.teamRepo, ownerID)
	if err != nil {
		return nil, err
	}

	req := &domain.OpenRequest{
		OwnerTeamID:   owner.ID,
		OwnerTeamName: owner.Name,
		Date:          input.Date,
		Time:          input.Time,
		Location:      input.Location,
		Message:       input.Message,
		Status:        domain.RequestStatusOpen,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("request_id", req.ID).
		Int64("owner_team_id", owner.ID).
		Msg("match request created")

	return req, nil
}

// UpdateRequest меняет только переданные поля; право на изменение есть только у владельца
func (s *requestService) UpdateRequest(ctx context.Context, requestID, callerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error) {
	if upd.IsEmpty() {
		return nil, domain.NewValidationError("no fields to update")
	}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"date", upd.Date},
		{"time", upd.Time},
		{"location", upd.Location},
	} {
		if err := requireNotBlankIfSet(f.name, f.value); err != nil {
			return nil, err
		}
	}

	return s.requestRepo.Update(ctx, requestID, callerID, upd)
}

func (s *requestService) DeleteRequest(ctx context.Context, requestID, callerID int64) (*domain.OpenRequest, error) {
	req, err := s.requestRepo.Delete(ctx, requestID, callerID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("request_id", requestID).
		Msg("match request deleted")

	return req, nil
}

// JoinRequest регистрирует отклик команды на чужую заявку.
// Заявка не закрывается автоматически: откликнуться могут несколько команд,
// владелец выбирает соперника сам.
func (s *requestService) JoinRequest(ctx context.Context, requestID, teamID int64) (*domain.JoinedRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.OwnerTeamID == teamID {
		return nil, domain.NewForbiddenError("cannot join your own match request")
	}

	if !req.Status.AcceptsJoins() {
		return nil, domain.NewConflictError("match request has already been closed")
	}

	team, err := callerTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return nil, err
	}

	join := &domain.JoinedRequest{
		RequestID:           req.ID,
		RequestOwnerID:      req.OwnerTeamID,
		JoiningTeamID:       team.ID,
		JoiningTeamName:     team.Name,
		JoiningTeamLocation: team.Location,
		JoiningTeamSkill:    team.SkillLevel,
		CreatedAt:           s.clock.Now(),
	}

	if err := s.requestRepo.Join(ctx, join); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("request_id", req.ID).
		Int64("joining_team_id", team.ID).
		Msg("match request joined")

	return join, nil
}

func (s *requestService) GetRequest(ctx context.Context, requestID int64) (*domain.OpenRequest, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *requestService) ListOpen(ctx context.Context) ([]*domain.OpenRequest, error) {
	return s.requestRepo.ListByStatus(ctx, domain.RequestStatusOpen)
}

func (s *requestService) ListOwnedBy(ctx context.Context, teamID int64) ([]*domain.OpenRequest, error) {
	return s.requestRepo.ListByOwner(ctx, teamID)
}

func (s *requestService) ListJoinersOf(ctx context.Context, teamID int64) ([]*domain.JoinedRequest, error) {
	return s.requestRepo.ListJoinsByOwner(ctx, teamID)
}
