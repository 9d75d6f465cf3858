package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает мок БД и закрывает его по завершении теста
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var (
	requestCols   = []string{"id", "owner_team_id", "owner_team_name", "match_date", "match_time", "location", "message", "status", "created_at"}
	challengeCols = []string{"id", "sender_team_id", "sender_team_name", "receiver_team_id", "receiver_team_name", "match_date", "match_time", "location", "message", "status", "created_at"}
	matchCols     = []string{"id", "team_a_id", "team_a_name", "team_b_id", "team_b_name", "match_date", "match_time", "location", "status", "created_at"}
)

func pendingChallengeRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(challengeCols).
		AddRow(10, 1, "Falcons", 2, "Tigers", "2026-11-01", "18:00", "Central Park", "good luck", "pending", now)
}
