package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса; битый JSON - ошибка валидации
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("request body is required")
		}
		return domain.NewValidationError("invalid request body: %v", err)
	}
	return nil
}

// pathID разбирает числовой идентификатор из пути
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid %s %q", name, raw)
	}
	return id, nil
}

// callerID - id команды из проверенного токена
func callerID(r *http.Request) (int64, error) {
	id, ok := middleware.TeamIDFromContext(r.Context())
	if !ok {
		return 0, &domain.DomainError{
			Code:    middleware.CodeUnauthorized,
			Message: middleware.ErrMissingToken.Error(),
		}
	}
	return id, nil
}
