package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/handler"
	"github.com/bagdasarian/matchmake/internal/handler/middleware"
	"github.com/bagdasarian/matchmake/internal/service"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 5, 14, 18, 30, 0, 0, time.UTC)

type testEnv struct {
	router     http.Handler
	teams      *mockTeamService
	requests   *mockRequestService
	challenges *mockChallengeService
	matches    *mockMatchService
}

func newTestEnv(t *testing.T, pingErr error) *testEnv {
	t.Helper()

	env := &testEnv{
		teams:      new(mockTeamService),
		requests:   new(mockRequestService),
		challenges: new(mockChallengeService),
		matches:    new(mockMatchService),
	}

	clock := clockwork.NewFakeClockAt(testNow)
	h := handler.NewHandler(env.teams, env.requests, env.challenges, env.matches, mockPinger{err: pingErr})
	env.router = NewRouter(RouterDeps{
		Handler:        h,
		Auth:           middleware.NewAuthenticator(testSecret, clock),
		Clock:          clock,
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	return env
}

func tokenFor(t *testing.T, teamID int64) string {
	t.Helper()

	sig, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(testSecret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	require.NoError(t, err)

	raw, err := jwt.Signed(sig).Claims(map[string]any{"id": teamID}).Serialize()
	require.NoError(t, err)
	return raw
}

func (e *testEnv) do(t *testing.T, method, path string, teamID int64, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if teamID > 0 {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, teamID))
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestRouter_Health(t *testing.T) {
	t.Run("база доступна", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := env.do(t, http.MethodGet, "/health", 0, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("база недоступна", func(t *testing.T) {
		env := newTestEnv(t, errors.New("connection refused"))

		rec := env.do(t, http.MethodGet, "/health", 0, "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRouter_Teams(t *testing.T) {
	env := newTestEnv(t, nil)

	env.teams.On("ListTeams", mock.Anything).Return([]*domain.Team{{ID: 1, Name: "Lions"}}, nil).Once()
	env.teams.On("GetTeam", mock.Anything, int64(1)).Return(&domain.Team{ID: 1, Name: "Lions"}, nil).Twice()

	rec := env.do(t, http.MethodGet, "/teams", 0, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/teams/1", 0, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/teams/me", 1, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var team handler.TeamResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&team))
	assert.Equal(t, "Lions", team.Name)

	rec = env.do(t, http.MethodGet, "/teams/me", 0, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/teams/abc", 0, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.CodeValidation, decodeError(t, rec).Code)

	env.teams.AssertExpectations(t)
}

func TestRouter_MatchRequests(t *testing.T) {
	t.Run("создание заявки от имени команды из токена", func(t *testing.T) {
		env := newTestEnv(t, nil)

		input := service.RequestInput{Date: "2026-06-01", Time: "19:00", Location: "Park", Message: "hi"}
		env.requests.On("CreateRequest", mock.Anything, int64(1), input).Return(&domain.OpenRequest{
			ID: 10, OwnerTeamID: 1, OwnerTeamName: "Lions", Date: "2026-06-01", Time: "19:00",
			Location: "Park", Message: "hi", Status: domain.RequestStatusOpen, CreatedAt: testNow,
		}, nil).Once()

		rec := env.do(t, http.MethodPost, "/match-requests", 1,
			`{"date":"2026-06-01","time":"19:00","location":"Park","message":"hi"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.MatchRequestResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Lions", resp.TeamName)
		assert.Equal(t, "open", resp.Status)
		env.requests.AssertExpectations(t)
	})

	t.Run("ошибка: без токена", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := env.do(t, http.MethodPost, "/match-requests", 0, `{"date":"2026-06-01"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env.requests.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка: битый JSON", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := env.do(t, http.MethodPost, "/match-requests", 1, `{"date":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("открытые заявки доступны без токена", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.requests.On("ListOpen", mock.Anything).Return([]*domain.OpenRequest{}, nil).Once()

		rec := env.do(t, http.MethodGet, "/match-requests/opened", 0, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("частичное обновление со статусом", func(t *testing.T) {
		env := newTestEnv(t, nil)

		closed := domain.RequestStatusClosed
		env.requests.On("UpdateRequest", mock.Anything, int64(10), int64(1), mock.MatchedBy(func(u domain.RequestUpdate) bool {
			return u.Status != nil && *u.Status == closed && u.Date == nil && u.Location != nil && *u.Location == "Stadium"
		})).Return(&domain.OpenRequest{ID: 10, OwnerTeamID: 1, Status: closed, Location: "Stadium"}, nil).Once()

		rec := env.do(t, http.MethodPut, "/match-requests/10", 1, `{"location":"Stadium","status":"closed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		env.requests.AssertExpectations(t)
	})

	t.Run("ошибка: неизвестный статус заявки", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := env.do(t, http.MethodPut, "/match-requests/10", 1, `{"status":"archived"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.requests.AssertNotCalled(t, "UpdateRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("коды ошибок отклика", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			code int
		}{
			{"заявка не найдена", domain.NewNotFoundError("match request"), http.StatusNotFound},
			{"своя заявка", domain.NewForbiddenError("cannot join your own match request"), http.StatusForbidden},
			{"заявка закрыта", domain.NewConflictError("match request has already been closed"), http.StatusConflict},
			{"сбой хранилища", domain.NewStorageError("join match request", errors.New("boom")), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				env := newTestEnv(t, nil)

				env.requests.On("JoinRequest", mock.Anything, int64(10), int64(2)).Return(nil, tt.err).Once()

				rec := env.do(t, http.MethodPost, "/match-requests/10/join", 2, "")

				assert.Equal(t, tt.code, rec.Code)
			})
		}
	})

	t.Run("отклики на заявки команды", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.requests.On("ListJoinersOf", mock.Anything, int64(1)).Return([]*domain.JoinedRequest{
			{ID: 1, RequestID: 10, RequestOwnerID: 1, JoiningTeamID: 2, JoiningTeamName: "Tigers"},
			{ID: 2, RequestID: 10, RequestOwnerID: 1, JoiningTeamID: 3, JoiningTeamName: "Bears"},
		}, nil).Once()

		rec := env.do(t, http.MethodGet, "/match-requests/received", 1, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var joins []handler.JoinedRequestResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&joins))
		assert.Len(t, joins, 2)
	})
}

func TestRouter_Challenges(t *testing.T) {
	t.Run("отправка вызова", func(t *testing.T) {
		env := newTestEnv(t, nil)

		input := service.ChallengeInput{ReceiverID: 2, Date: "2026-06-01", Time: "19:00", Location: "Park"}
		env.challenges.On("SendChallenge", mock.Anything, int64(1), input).Return(&domain.Challenge{
			ID: 7, SenderTeamID: 1, ReceiverTeamID: 2, Status: domain.ChallengeStatusPending,
		}, nil).Once()

		rec := env.do(t, http.MethodPost, "/challenges", 1,
			`{"receiver_team_id":2,"date":"2026-06-01","time":"19:00","location":"Park"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env.challenges.AssertExpectations(t)
	})

	t.Run("принятие возвращает матч", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.challenges.On("AcceptChallenge", mock.Anything, int64(7), int64(2)).Return(&domain.Match{
			ID: 30, TeamAID: 1, TeamBID: 2, Status: domain.MatchStatusUpcoming,
		}, nil).Once()

		rec := env.do(t, http.MethodPost, "/challenges/7/accept", 2, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		var m handler.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
		assert.Equal(t, "upcoming", m.Status)
		assert.Equal(t, int64(1), m.TeamAID)
		assert.Equal(t, int64(2), m.TeamBID)
	})

	t.Run("ошибка: принимает отправитель", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.challenges.On("AcceptChallenge", mock.Anything, int64(7), int64(1)).
			Return(nil, domain.NewForbiddenError("only the receiver can accept this challenge")).Once()

		rec := env.do(t, http.MethodPost, "/challenges/7/accept", 1, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domain.CodeForbidden, decodeError(t, rec).Code)
	})

	t.Run("отклонение и отмена", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.challenges.On("RejectChallenge", mock.Anything, int64(7), int64(2)).
			Return(nil, domain.NewNotFoundError("challenge")).Once()
		env.challenges.On("CancelChallenge", mock.Anything, int64(8), int64(1)).
			Return(&domain.Challenge{ID: 8, SenderTeamID: 1, ReceiverTeamID: 2}, nil).Once()

		rec := env.do(t, http.MethodDelete, "/challenges/7/reject", 2, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(t, http.MethodDelete, "/challenges/8", 1, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		env.challenges.AssertExpectations(t)
	})

	t.Run("ошибка: все маршруты вызовов требуют токен", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := env.do(t, http.MethodGet, "/challenges/sent", 0, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_Matches(t *testing.T) {
	t.Run("список матчей без токена", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.matches.On("ListAll", mock.Anything).Return([]*domain.Match{{ID: 31}, {ID: 30}}, nil).Once()

		rec := env.do(t, http.MethodGet, "/matches", 0, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var matches []handler.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&matches))
		assert.Equal(t, int64(31), matches[0].ID)
	})

	t.Run("ближайшие матчи команды", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.matches.On("ListUpcomingFor", mock.Anything, int64(1)).Return([]*domain.Match{{ID: 30}}, nil).Once()

		rec := env.do(t, http.MethodGet, "/matches/upcoming", 1, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env.matches.AssertExpectations(t)
	})

	t.Run("смена статуса", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.matches.On("UpdateMatchStatus", mock.Anything, int64(30), int64(1), "completed").
			Return(&domain.Match{ID: 30, Status: domain.MatchStatusCompleted}, nil).Once()
		env.matches.On("UpdateMatchStatus", mock.Anything, int64(30), int64(1), "upcoming").
			Return(nil, domain.NewConflictError("cannot change match status from completed to upcoming")).Once()

		rec := env.do(t, http.MethodPut, "/matches/30", 1, `{"status":"completed"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPut, "/matches/30", 1, `{"status":"upcoming"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ошибка: удаление посторонней командой", func(t *testing.T) {
		env := newTestEnv(t, nil)

		env.matches.On("DeleteMatch", mock.Anything, int64(30), int64(3)).
			Return(nil, domain.NewForbiddenError("only participants can delete this match")).Once()

		rec := env.do(t, http.MethodDelete, "/matches/30", 3, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_CORS(t *testing.T) {
	preflight := func(env *testEnv, origin, headers string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/matches", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		if headers != "" {
			req.Header.Set("Access-Control-Request-Headers", headers)
		}
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("разрешенный origin и заголовок авторизации", func(t *testing.T) {
		env := newTestEnv(t, nil)

		// браузеры передают имена заголовков в нижнем регистре
		rec := preflight(env, "http://localhost:5173", "authorization,content-type")

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ошибка: заголовок вне списка", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := preflight(env, "http://localhost:5173", "x-custom-header")

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ошибка: чужой origin", func(t *testing.T) {
		env := newTestEnv(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		env.router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
