package repository

import (
	"context"

	"github.com/bagdasarian/matchmake/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.OpenRequest) error
	GetByID(ctx context.Context, id int64) (*domain.OpenRequest, error)
	// Update и Delete применяются только к заявке, принадлежащей ownerID
	Update(ctx context.Context, id, ownerID int64, upd domain.RequestUpdate) (*domain.OpenRequest, error)
	Delete(ctx context.Context, id, ownerID int64) (*domain.OpenRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.OpenRequest, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.OpenRequest, error)
	// Join вставляет отклик только если заявка всё ещё открыта и принадлежит другой команде
	Join(ctx context.Context, join *domain.JoinedRequest) error
	ListJoinsByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinedRequest, error)
}
