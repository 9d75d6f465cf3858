package domain

import (
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestStatusOpen   RequestStatus = "open"
	RequestStatusClosed RequestStatus = "closed"
)

// ParseRequestStatus возвращает VALIDATION_ERROR для любого значения вне перечисления
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RequestStatusOpen:
		return RequestStatusOpen, nil
	case RequestStatusClosed:
		return RequestStatusClosed, nil
	}
	return "", NewValidationError("unknown request status %q", s)
}

// AcceptsJoins сообщает, можно ли присоединиться к заявке в этом состоянии
func (s RequestStatus) AcceptsJoins() bool {
	return s == RequestStatusOpen
}

// OpenRequest - публичное приглашение команды сыграть матч
type OpenRequest struct {
	ID            int64
	OwnerTeamID   int64
	OwnerTeamName string
	Date          string
	Time          string
	Location      string
	Message       string
	Status        RequestStatus
	CreatedAt     time.Time
}

// RequestUpdate - частичное обновление заявки. nil означает "оставить как было".
type RequestUpdate struct {
	Date     *string
	Time     *string
	Location *string
	Message  *string
	Status   *RequestStatus
}

// IsEmpty возвращает true, если ни одно поле не передано
func (u RequestUpdate) IsEmpty() bool {
	return u.Date == nil && u.Time == nil && u.Location == nil && u.Message == nil && u.Status == nil
}

// JoinedRequest - отклик команды на чужую открытую заявку.
// Атрибуты команды фиксируются в момент отклика.
type JoinedRequest struct {
	ID                  int64
	RequestID           int64
	RequestOwnerID      int64
	JoiningTeamID       int64
	JoiningTeamName     string
	JoiningTeamLocation string
	JoiningTeamSkill    string
	CreatedAt           time.Time
}
