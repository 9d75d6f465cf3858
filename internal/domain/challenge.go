package domain

import "time"

type ChallengeStatus string

const (
	ChallengeStatusPending  ChallengeStatus = "pending"
	ChallengeStatusAccepted ChallengeStatus = "accepted"
)

// IsResolvable - принять, отклонить или отменить можно только ожидающий вызов
func (s ChallengeStatus) IsResolvable() bool {
	return s == ChallengeStatusPending
}

// Challenge - прямой вызов одной команды другой.
// После разрешения запись удаляется; принятый вызов превращается в Match.
type Challenge struct {
	ID               int64
	SenderTeamID     int64
	SenderTeamName   string
	ReceiverTeamID   int64
	ReceiverTeamName string
	Date             string
	Time             string
	Location         string
	Message          string
	Status           ChallengeStatus
	CreatedAt        time.Time
}

// IsParticipant проверяет, является ли команда отправителем или получателем
func (c *Challenge) IsParticipant(teamID int64) bool {
	return c.SenderTeamID == teamID || c.ReceiverTeamID == teamID
}

// ToMatch строит матч, который появляется при принятии вызова
func (c *Challenge) ToMatch(createdAt time.Time) *Match {
	return &Match{
		TeamAID:   c.SenderTeamID,
		TeamAName: c.SenderTeamName,
		TeamBID:   c.ReceiverTeamID,
		TeamBName: c.ReceiverTeamName,
		Date:      c.Date,
		Time:      c.Time,
		Location:  c.Location,
		Status:    MatchStatusUpcoming,
		CreatedAt: createdAt,
	}
}
