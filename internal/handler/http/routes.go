// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	middlewares := []func(http.Handler) http.Handler{h.withTraceID, h.withLogging, middleware.Recoverer}
	if h.requestTimeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(h.requestTimeout))
	}
	middlewares = append(middlewares, middleware.Compress(compressionLevel, "application/json"))

	router := chi.NewRouter()
	router.Use(middlewares...)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.apiRunning)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/users", h.register)
		r.Post("/api/auth", h.login)

		r.Get("/api/profile", h.listProfiles)
		r.Get("/api/profile/user/{user_id}", h.getProfileByUserID)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth", h.currentUser)

		r.Get("/api/profile/me", h.getMyProfile)
		r.Post("/api/profile", h.upsertProfile)
		r.Delete("/api/profile", h.deleteAccount)
		r.Put("/api/profile/experience", h.addExperience)
		r.Delete("/api/profile/experience/{exp_id}", h.deleteExperience)
		r.Put("/api/profile/education", h.addEducation)
		r.Delete("/api/profile/education/{edu_id}", h.deleteEducation)

		r.Post("/api/posts", h.createPost)
		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{id}", h.getPost)
		r.Delete("/api/posts/{id}", h.deletePost)
		r.Put("/api/posts/like/{id}", h.likePost)
		r.Put("/api/posts/unlike/{id}", h.unlikePost)
		r.Post("/api/posts/comment/{id}", h.addComment)
		r.Delete("/api/posts/comment/{id}/{comment_id}", h.deleteComment)
	})

	return router
}
