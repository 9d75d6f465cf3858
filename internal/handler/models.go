package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type TeamResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	SkillLevel  string    `json:"skill_level"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMatchRequestRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

// UpdateMatchRequestRequest - отсутствующее поле не меняется
type UpdateMatchRequestRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Location *string `json:"location"`
	Message  *string `json:"message"`
	Status   *string `json:"status"`
}

type MatchRequestResponse struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type JoinedRequestResponse struct {
	ID                  int64     `json:"id"`
	RequestID           int64     `json:"request_id"`
	RequestOwnerID      int64     `json:"request_owner_id"`
	JoiningTeamID       int64     `json:"joining_team_id"`
	JoiningTeamName     string    `json:"joining_team_name"`
	JoiningTeamLocation string    `json:"joining_team_location"`
	JoiningTeamSkill    string    `json:"joining_team_skill"`
	CreatedAt           time.Time `json:"created_at"`
}

type SendChallengeRequest struct {
	ReceiverTeamID int64  `json:"receiver_team_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Message        string `json:"message"`
}

type ChallengeResponse struct {
	ID               int64     `json:"id"`
	SenderTeamID     int64     `json:"sender_team_id"`
	SenderTeamName   string    `json:"sender_team_name"`
	ReceiverTeamID   int64     `json:"receiver_team_id"`
	ReceiverTeamName string    `json:"receiver_team_name"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Message          string    `json:"message"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateMatchRequest struct {
	OpponentTeamID int64  `json:"opponent_team_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Status         string `json:"status"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}

type MatchResponse struct {
	ID        int64     `json:"id"`
	TeamAID   int64     `json:"team_a_id"`
	TeamAName string    `json:"team_a_name"`
	TeamBID   int64     `json:"team_b_id"`
	TeamBName string    `json:"team_b_name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
