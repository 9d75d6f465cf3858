package service

import (
	"context"
	"testing"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("успешное получение команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		service := NewTeamService(mockTeamRepo)

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1, "Lions"), nil).Once()

		team, err := service.GetTeam(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Lions", team.Name)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		service := NewTeamService(mockTeamRepo)

		mockTeamRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.NewNotFoundError("team")).Once()

		team, err := service.GetTeam(context.Background(), 42)

		assert.Nil(t, team)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockTeamRepo.AssertExpectations(t)
	})
}

func TestTeamService_ListTeams(t *testing.T) {
	mockTeamRepo := new(MockTeamRepository)
	service := NewTeamService(mockTeamRepo)

	mockTeamRepo.On("List", mock.Anything).Return([]*domain.Team{testTeam(1, "Lions"), testTeam(2, "Tigers")}, nil).Once()

	teams, err := service.ListTeams(context.Background())

	require.NoError(t, err)
	assert.Len(t, teams, 2)
	mockTeamRepo.AssertExpectations(t)
}
