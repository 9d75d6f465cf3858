package service

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type RequestInput struct {
	Date     string
	Time     string
	Location string
	Message  string
}

type RequestService interface {
	CreateRequest(ctx context.Context, ownerID int64, input RequestInput) (*domain.OpenRequest, error)
	UpdateRequest(ctx context.Context, requestID, callerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error)
	DeleteRequest(ctx context.Context, requestID, callerID int64) (*domain.OpenRequest, error)
	JoinRequest(ctx context.Context, requestID, teamID int64) (*domain.JoinedRequest, error)

	GetRequest(ctx context.Context, requestID int64) (*domain.OpenRequest, error)
	ListOpen(ctx context.Context) ([]*domain.OpenRequest, error)
	ListOwnedBy(ctx context.Context, teamID int64) ([]*domain.OpenRequest, error)
	ListJoinersOf(ctx context.Context, teamID int64) ([]*domain.JoinedRequest, error)
}
