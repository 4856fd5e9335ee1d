// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// errorStatusMap lists every error whose message may reach the client.
// Anything else is answered with 500 and serverErrorMessage.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	errRouteNotFound:    http.StatusNotFound,
	errMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrMissingToken:       http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrAlreadyLiked:       http.StatusBadRequest,
	service.ErrNotLiked:           http.StatusBadRequest,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrUserNotFound:       http.StatusNotFound,
	service.ErrProfileNotFound:    http.StatusNotFound,
	service.ErrExperienceNotFound: http.StatusNotFound,
	service.ErrEducationNotFound:  http.StatusNotFound,
	service.ErrPostNotFound:       http.StatusNotFound,
	service.ErrCommentNotFound:    http.StatusNotFound,
	service.ErrEmailAlreadyExists: http.StatusConflict,
}

// statusFromError returns the status for err and the sentinel it matched,
// or 500 and nil.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers the request with the JSON body for err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Msg("request rejected by validation")
		writeJSON(w, r, models.ErrorResponse{
			Message: validationErr.Error(),
			Errors:  validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("unexpected error occurred")
		writeJSON(w, r, models.ErrorResponse{Message: serverErrorMessage}, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, r, models.ErrorResponse{Message: target.Error()}, status)
}

// writeJSON writes data and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// readJSON decodes the request body into dst and tags any failure with
// ErrInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	return nil
}
