package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

var (
	ErrMissingToken = errors.New("bearer token is required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// teamClaims - полезная нагрузка токена провайдера идентичности: id команды и стандартные поля
type teamClaims struct {
	jwt.Claims
	TeamID int64 `json:"id"`
}

// Authenticator проверяет HS256 токены команд
type Authenticator struct {
	secret []byte
	clock  clockwork.Clock
}

func NewAuthenticator(secret string, clock clockwork.Clock) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		clock:  clock,
	}
}

// Verify проверяет подпись и срок действия, возвращает id команды
func (a *Authenticator) Verify(raw string) (int64, error) {
	tok, err := jwt.ParseSigned(raw, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return 0, ErrInvalidToken
	}

	var claims teamClaims
	if err := tok.Claims(a.secret, &claims); err != nil {
		return 0, ErrInvalidToken
	}

	if err := claims.Claims.ValidateWithLeeway(jwt.Expected{Time: a.clock.Now()}, 0); err != nil {
		return 0, ErrInvalidToken
	}

	if claims.TeamID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.TeamID, nil
}

// Authenticate требует заголовок Authorization: Bearer <token>.
// Без валидного токена запрос не доходит до обработчика.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := bearerToken(r)
		if err == nil {
			var teamID int64
			teamID, err = a.Verify(raw)
			if err == nil {
				logger := zerolog.Ctx(r.Context()).With().Int64("team_id", teamID).Logger()
				ctx := context.WithValue(r.Context(), teamIDKey, teamID)
				ctx = logger.WithContext(ctx)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("authentication failed")
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, err.Error())
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// TeamIDFromContext возвращает id аутентифицированной команды
func TeamIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(teamIDKey).(int64)
	return id, ok
}

// WithTeamID кладет id команды в контекст в обход проверки токена
func WithTeamID(ctx context.Context, teamID int64) context.Context {
	return context.WithValue(ctx, teamIDKey, teamID)
}
