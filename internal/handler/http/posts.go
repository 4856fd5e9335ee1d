// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/dev-connector/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req models.PostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PostService.DeletePost(r.Context(), userIDFromRequest(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "post removed"}, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.LikePost(r.Context(), userIDFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) unlikePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.UnlikePost(r.Context(), userIDFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.AddComment(r.Context(), userIDFromRequest(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.DeleteComment(r.Context(),
		userIDFromRequest(r),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "comment_id"),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, post, http.StatusOK)
}
