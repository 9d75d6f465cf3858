package service

import (
	"context"
	"time"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, req *domain.OpenRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.OpenRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, id, ownerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error) {
	args := m.Called(ctx, id, ownerID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.OpenRequest, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.OpenRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OpenRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.OpenRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OpenRequest), args.Error(1)
}

func (m *MockRequestRepository) Join(ctx context.Context, join *domain.JoinedRequest) error {
	args := m.Called(ctx, join)
	return args.Error(0)
}

func (m *MockRequestRepository) ListJoinsByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinedRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JoinedRequest), args.Error(1)
}

type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) ListBySender(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) ListByReceiver(ctx context.Context, teamID int64) ([]*domain.Challenge, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Accept(ctx context.Context, id, receiverID int64, acceptedAt time.Time) (*domain.Match, error) {
	args := m.Called(ctx, id, receiverID, acceptedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockChallengeRepository) Reject(ctx context.Context, id, receiverID int64) (*domain.Challenge, error) {
	args := m.Called(ctx, id, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Cancel(ctx context.Context, id, senderID int64) (*domain.Challenge, error) {
	args := m.Called(ctx, id, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchRepository) ListAll(ctx context.Context) ([]*domain.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *MockMatchRepository) ListByTeamAndStatus(ctx context.Context, teamID int64, status domain.MatchStatus) ([]*domain.Match, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *MockMatchRepository) UpdateStatus(ctx context.Context, id, participantID int64, from, to domain.MatchStatus) (*domain.Match, error) {
	args := m.Called(ctx, id, participantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchRepository) Delete(ctx context.Context, id, participantID int64) (*domain.Match, error) {
	args := m.Called(ctx, id, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
