package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/credits"
	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/version"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// ErrSessionNotFound indicates no live session exists for an ID
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		sessionNotFound *ErrSessionNotFound
		validation      *ErrValidation
		outOfRange      *wizard.OutOfRangeError
		stepSection     *wizard.StepSectionError
		stale           *wizard.StaleResultError
		unknownSection  *normalize.UnknownSectionError
		incomplete      *sections.IncompleteError
		insufficient    *credits.InsufficientCreditsError
		notFound        *version.NotFoundError
		storeErr        *version.StoreError
		gatewayErr      *credits.GatewayError
	)

	switch {
	case errors.As(err, &sessionNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &outOfRange), errors.As(err, &unknownSection):
		return http.StatusBadRequest
	case errors.As(err, &stepSection), errors.As(err, &stale):
		return http.StatusConflict
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	case errors.As(err, &insufficient):
		return http.StatusPaymentRequired
	case errors.As(err, &storeErr), errors.As(err, &gatewayErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
