package handler

import (
	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/service"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Location:    team.Location,
		SkillLevel:  team.SkillLevel,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func httpRequestToInput(req CreateMatchRequestRequest) service.RequestInput {
	return service.RequestInput{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Message:  req.Message,
	}
}

func httpRequestUpdateToDomain(req UpdateMatchRequestRequest) (domain.RequestUpdate, error) {
	upd := domain.RequestUpdate{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Message:  req.Message,
	}

	if req.Status != nil {
		status, err := domain.ParseRequestStatus(*req.Status)
		if err != nil {
			return domain.RequestUpdate{}, err
		}
		upd.Status = &status
	}

	return upd, nil
}

func domainRequestToHTTP(req *domain.OpenRequest) MatchRequestResponse {
	return MatchRequestResponse{
		ID:        req.ID,
		TeamID:    req.OwnerTeamID,
		TeamName:  req.OwnerTeamName,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Message:   req.Message,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}
}

func domainRequestsToHTTP(reqs []*domain.OpenRequest) []MatchRequestResponse {
	result := make([]MatchRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, domainRequestToHTTP(req))
	}
	return result
}

func domainJoinToHTTP(join *domain.JoinedRequest) JoinedRequestResponse {
	return JoinedRequestResponse{
		ID:                  join.ID,
		RequestID:           join.RequestID,
		RequestOwnerID:      join.RequestOwnerID,
		JoiningTeamID:       join.JoiningTeamID,
		JoiningTeamName:     join.JoiningTeamName,
		JoiningTeamLocation: join.JoiningTeamLocation,
		JoiningTeamSkill:    join.JoiningTeamSkill,
		CreatedAt:           join.CreatedAt,
	}
}

func domainJoinsToHTTP(joins []*domain.JoinedRequest) []JoinedRequestResponse {
	result := make([]JoinedRequestResponse, 0, len(joins))
	for _, join := range joins {
		result = append(result, domainJoinToHTTP(join))
	}
	return result
}

func httpChallengeToInput(req SendChallengeRequest) service.ChallengeInput {
	return service.ChallengeInput{
		ReceiverID: req.ReceiverTeamID,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Message:    req.Message,
	}
}

func domainChallengeToHTTP(c *domain.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:               c.ID,
		SenderTeamID:     c.SenderTeamID,
		SenderTeamName:   c.SenderTeamName,
		ReceiverTeamID:   c.ReceiverTeamID,
		ReceiverTeamName: c.ReceiverTeamName,
		Date:             c.Date,
		Time:             c.Time,
		Location:         c.Location,
		Message:          c.Message,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
	}
}

func domainChallengesToHTTP(challenges []*domain.Challenge) []ChallengeResponse {
	result := make([]ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		result = append(result, domainChallengeToHTTP(c))
	}
	return result
}

func httpMatchToInput(req CreateMatchRequest) service.MatchInput {
	return service.MatchInput{
		OpponentID: req.OpponentTeamID,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Status:     req.Status,
	}
}

func domainMatchToHTTP(m *domain.Match) MatchResponse {
	return MatchResponse{
		ID:        m.ID,
		TeamAID:   m.TeamAID,
		TeamAName: m.TeamAName,
		TeamBID:   m.TeamBID,
		TeamBName: m.TeamBName,
		Date:      m.Date,
		Time:      m.Time,
		Location:  m.Location,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func domainMatchesToHTTP(matches []*domain.Match) []MatchResponse {
	result := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		result = append(result, domainMatchToHTTP(m))
	}
	return result
}
