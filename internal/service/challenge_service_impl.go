package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	teamRepo      repository.TeamRepository
	clock         clockwork.Clock
}

// NewChallengeService создает сервис прямых вызовов
func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	teamRepo repository.TeamRepository,
	clock clockwork.Clock,
) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		teamRepo:      teamRepo,
		clock:         clock,
	}
}

// SendChallenge отправляет вызов другой команде.
// Порядок проверок: обязательные поля, вызов самому себе, отправитель, получатель.
func (s *challengeService) SendChallenge(ctx context.Context, senderID int64, input ChallengeInput) (*domain.Challenge, error) {
	err := requireNonBlank(
		field{"date", input.Date},
		field{"time", input.Time},
		field{"location", input.Location},
	)
	if err != nil {
		return nil, err
	}
	if input.ReceiverID <= 0 {
		return nil, domain.NewValidationError("receiver team id is required")
	}
	if input.ReceiverID == senderID {
		return nil, domain.NewValidationError("a team cannot challenge itself")
	}

	sender, err := callerTeam(ctx, s.teamRepo, senderID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.teamRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team %d", input.ReceiverID))
		}
		return nil, err
	}

	c := &domain.Challenge{
		SenderTeamID:     sender.ID,
		SenderTeamName:   sender.Name,
		ReceiverTeamID:   receiver.ID,
		ReceiverTeamName: receiver.Name,
		Date:             input.Date,
		Time:             input.Time,
		Location:         input.Location,
		Message:          input.Message,
		Status:           domain.ChallengeStatusPending,
		CreatedAt:        s.clock.Now(),
	}

	if err := s.challengeRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("challenge_id", c.ID).
		Int64("sender_team_id", sender.ID).
		Int64("receiver_team_id", receiver.ID).
		Msg("challenge sent")

	return c, nil
}

// AcceptChallenge принимает вызов: вызов исчезает, появляется матч со статусом upcoming.
// Из нескольких одновременных попыток разрешить вызов успешна ровно одна.
func (s *challengeService) AcceptChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Match, error) {
	match, err := s.challengeRepo.Accept(ctx, challengeID, callerID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("challenge_id", challengeID).
		Int64("match_id", match.ID).
		Msg("challenge accepted")

	return match, nil
}

func (s *challengeService) RejectChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	c, err := s.challengeRepo.Reject(ctx, challengeID, callerID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("challenge_id", challengeID).
		Msg("challenge rejected")

	return c, nil
}

// CancelChallenge - отправитель отзывает ещё не разрешённый вызов
func (s *challengeService) CancelChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	c, err := s.challengeRepo.Cancel(ctx, challengeID, callerID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("challenge_id", challengeID).
		Msg("challenge cancelled")

	return c, nil
}

// GetChallenge возвращает вызов только его участникам
func (s *challengeService) GetChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	c, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	if !c.IsParticipant(callerID) {
		return nil, domain.NewForbiddenError("only participants can view this challenge")
	}

	return c, nil
}

func (s *challengeService) ListSent(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	return s.challengeRepo.ListBySender(ctx, teamID)
}

func (s *challengeService) ListReceived(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	return s.challengeRepo.ListByReceiver(ctx, teamID)
}
