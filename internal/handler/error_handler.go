package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/matchmake/internal/domain"
	"github.com/bagdasarian/matchmake/internal/handler/middleware"
	"github.com/rs/zerolog"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	// доменные ошибки ожидаемы, в лог попадают только непредвиденные
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")

	// по request_id клиент может сослаться на запись в логе
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:      middleware.CodeInternal,
			Message:   "internal server error",
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeConflict:
		return http.StatusConflict
	case middleware.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
