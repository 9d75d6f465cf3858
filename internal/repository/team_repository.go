package repository

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

// TeamRepository - доступ на чтение к справочнику команд
type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}
