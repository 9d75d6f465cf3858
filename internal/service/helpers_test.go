package service

import (
	"time"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/jonboulle/clockwork"
)

var testNow = time.Date(2026, 5, 14, 18, 30, 0, 0, time.UTC)

func newTestClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}

func testTeam(id int64, name string) *domain.Team {
	return &domain.Team{
		ID:         id,
		Name:       name,
		Location:   "Moscow",
		SkillLevel: "amateur",
		CreatedAt:  testNow.Add(-24 * time.Hour),
	}
}

func pendingChallenge(id, senderID, receiverID int64) *domain.Challenge {
	return &domain.Challenge{
		ID:               id,
		SenderTeamID:     senderID,
		SenderTeamName:   "Lions",
		ReceiverTeamID:   receiverID,
		ReceiverTeamName: "Tigers",
		Date:             "2026-06-01",
		Time:             "19:00",
		Location:         "Central Park",
		Status:           domain.ChallengeStatusPending,
		CreatedAt:        testNow,
	}
}

func upcomingMatch(id, teamA, teamB int64) *domain.Match {
	return &domain.Match{
		ID:        id,
		TeamAID:   teamA,
		TeamAName: "Lions",
		TeamBID:   teamB,
		TeamBName: "Tigers",
		Date:      "2026-06-01",
		Time:      "19:00",
		Location:  "Central Park",
		Status:    domain.MatchStatusUpcoming,
		CreatedAt: testNow,
	}
}

func strPtr(s string) *string {
	return &s
}
