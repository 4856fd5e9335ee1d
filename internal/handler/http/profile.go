// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/dev-connector/models"
)

func (h *Handler) getMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetMyProfile(r.Context(), userIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

// upsertProfile answers 201 when the profile was created and 200 when an
// existing one was updated.
func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, created, err := h.services.ProfileService.UpsertProfile(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if created {
		writeJSON(w, r, models.ProfileResponse{Message: "profile created successfully", Profile: profile}, http.StatusCreated)
		return
	}
	writeJSON(w, r, models.ProfileResponse{Message: "profile updated successfully", Profile: profile}, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profiles, http.StatusOK)
}

func (h *Handler) getProfileByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfileByUserID(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileService.DeleteAccount(r.Context(), userIDFromRequest(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}

func (h *Handler) addExperience(w http.ResponseWriter, r *http.Request) {
	var req models.ExperienceRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddExperience(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) deleteExperience(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.DeleteExperience(r.Context(), userIDFromRequest(r), chi.URLParam(r, "exp_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) addEducation(w http.ResponseWriter, r *http.Request) {
	var req models.EducationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddEducation(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.DeleteEducation(r.Context(), userIDFromRequest(r), chi.URLParam(r, "edu_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}
