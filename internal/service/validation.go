package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/repository"
)

type field struct {
	name  string
	value string
}

// requireNonBlank возвращает VALIDATION_ERROR для первого пустого поля
func requireNonBlank(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewValidationError("%s is required", f.name)
		}
	}
	return nil
}

// requireNotBlankIfSet - при частичном обновлении обязательное поле можно не передавать, но нельзя очистить
func requireNotBlankIfSet(name string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return domain.NewValidationError("%s cannot be empty", name)
	}
	return nil
}

// callerTeam загружает команду, от имени которой выполняется операция.
// Незарегистрированная команда не может ничего менять.
func callerTeam(ctx context.Context, teams repository.TeamRepository, teamID int64) (*domain.Team, error) {
	team, err := teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewForbiddenError(fmt.Sprintf("team %d is not registered", teamID))
		}
		return nil, err
	}
	return team, nil
}
