package service

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// StatusCode maps a PublicAPI error to the HTTP status a transport should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrUnknownValidatorID):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrHeightOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text safe to show to API clients.
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrProtocolViolation):
		return model.ProtocolViolationAdvisory
	case StatusCode(err) < http.StatusInternalServerError:
		return err.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}
