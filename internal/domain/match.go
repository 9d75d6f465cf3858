package domain

import (
	"fmt"
	"strings"
	"time"
)

type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "upcoming"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// ParseMatchStatus возвращает VALIDATION_ERROR для любого значения вне перечисления
func ParseMatchStatus(s string) (MatchStatus, error) {
	switch MatchStatus(strings.ToLower(strings.TrimSpace(s))) {
	case MatchStatusUpcoming:
		return MatchStatusUpcoming, nil
	case MatchStatusCompleted:
		return MatchStatusCompleted, nil
	case MatchStatusCancelled:
		return MatchStatusCancelled, nil
	}
	return "", NewValidationError("unknown match status %q", s)
}

// IsTerminal - из completed и cancelled переходов нет
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusCompleted || s == MatchStatusCancelled
}

// TransitionTo проверяет переход статуса матча.
// Установка того же статуса допустима и ничего не меняет.
func (s MatchStatus) TransitionTo(next MatchStatus) error {
	if s == next {
		return nil
	}
	if s == MatchStatusUpcoming && next.IsTerminal() {
		return nil
	}
	return NewConflictError(fmt.Sprintf("cannot change match status from %s to %s", s, next))
}

// Match - подтверждённая игра двух команд
type Match struct {
	ID        int64
	TeamAID   int64
	TeamAName string
	TeamBID   int64
	TeamBName string
	Date      string
	Time      string
	Location  string
	Status    MatchStatus
	CreatedAt time.Time
}

// IsParticipant проверяет, играет ли команда в матче
func (m *Match) IsParticipant(teamID int64) bool {
	return m.TeamAID == teamID || m.TeamBID == teamID
}
