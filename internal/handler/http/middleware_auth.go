// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It reads the token from the [utils.AuthTokenHeader] header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the user id in the
// request context under [utils.UserIDCtxKey] before delegating to the next
// handler.
//
// The middleware answers 401 without calling the next handler when:
//   - the header is absent ("no token, authorization denied");
//   - the token is malformed, expired, signed with another key or issued by
//     another issuer ("token is not valid").
//
// It never touches the database.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, r.Header.Get(utils.AuthTokenHeader))
		if err != nil {
			log.Info().Err(err).Str("uri", r.RequestURI).Msg("request rejected by auth middleware")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the id stored by auth. Handlers behind auth can
// rely on it being present.
func userIDFromRequest(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
