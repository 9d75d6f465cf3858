package handler

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/service"
)

// Pinger - проверка доступности хранилища для /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	teamService      service.TeamService
	requestService   service.RequestService
	challengeService service.ChallengeService
	matchService     service.MatchService
	db               Pinger
}

func NewHandler(
	teamService service.TeamService,
	requestService service.RequestService,
	challengeService service.ChallengeService,
	matchService service.MatchService,
	db Pinger,
) *Handler {
	return &Handler{
		teamService:      teamService,
		requestService:   requestService,
		challengeService: challengeService,
		matchService:     matchService,
		db:               db,
	}
}
