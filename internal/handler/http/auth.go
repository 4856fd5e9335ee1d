// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")
	writeJSON(w, r, models.TokenResponse{Message: "user registered successfully", Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.TokenResponse{Message: "logged in successfully", Token: token.SignedString}, http.StatusOK)
}

// currentUser returns the authenticated user without the password hash.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context(), userIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
