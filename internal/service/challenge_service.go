package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type ChallengeInput struct {
	ReceiverID int64
	Date       string
	Time       string
	Location   string
	Message    string
}

type ChallengeService interface {
	SendChallenge(ctx context.Context, senderID int64, input ChallengeInput) (*domain.Challenge, error)
	AcceptChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Match, error)
	RejectChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error)
	CancelChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error)

	GetChallenge(ctx context.Context, challengeID, callerID int64) (*domain.Challenge, error)
	ListSent(ctx context.Context, teamID int64) ([]*domain.Challenge, error)
	ListReceived(ctx context.Context, teamID int64) ([]*domain.Challenge, error)
}
