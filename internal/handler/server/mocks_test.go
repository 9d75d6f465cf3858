package server

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) CreateRequest(ctx context.Context, ownerID int64, input service.RequestInput) (*domain.OpenRequest, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) UpdateRequest(ctx context.Context, requestID, callerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error) {
	args := m.Called(ctx, requestID, callerID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) DeleteRequest(ctx context.Context, requestID, callerID int64) (*domain.OpenRequest, error) {
	args := m.Called(ctx, requestID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) JoinRequest(ctx context.Context, requestID, teamID int64) (*domain.JoinedRequest, error) {
	args := m.Called(ctx, requestID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinedRequest), args.Error(1)
}

func (m *mockRequestService) GetRequest(ctx context.Context, requestID int64) (*domain.OpenRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) ListOpen(ctx context.Context) ([]*domain.OpenRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) ListOwnedBy(ctx context.Context, teamID int64) ([]*domain.OpenRequest, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OpenRequest), args.Error(1)
}

func (m *mockRequestService) ListJoinersOf(ctx context.Context, teamID int64) ([]*domain.JoinedRequest, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JoinedRequest), args.Error(1)
}

type mockChallengeService struct {
	mock.Mock
}

func (m *mockChallengeService) SendChallenge(ctx context.Context, senderID int64, input service.ChallengeInput) (*domain.Challenge, error) {
	args := m.Called(ctx, senderID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *mockChallengeService) AcceptChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Match, error) {
	args := m.Called(ctx, challengeID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockChallengeService) RejectChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	args := m.Called(ctx, challengeID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *mockChallengeService) CancelChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	args := m.Called(ctx, challengeID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *mockChallengeService) GetChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error) {
	args := m.Called(ctx, challengeID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *mockChallengeService) ListSent(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Challenge), args.Error(1)
}

func (m *mockChallengeService) ListReceived(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Challenge), args.Error(1)
}

type mockMatchService struct {
	mock.Mock
}

func (m *mockMatchService) CreateMatch(ctx context.Context, callerID int64, input service.MatchInput) (*domain.Match, error) {
	args := m.Called(ctx, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchService) UpdateMatchStatus(ctx context.Context, matchID, callerID int64, status string) (*domain.Match, error) {
	args := m.Called(ctx, matchID, callerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchService) DeleteMatch(ctx context.Context, matchID, callerID int64) (*domain.Match, error) {
	args := m.Called(ctx, matchID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchService) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchService) ListAll(ctx context.Context) ([]*domain.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *mockMatchService) ListUpcomingFor(ctx context.Context, teamID int64) ([]*domain.Match, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

type mockPinger struct {
	err error
}

func (p mockPinger) PingContext(context.Context) error {
	return p.err
}
