// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users.
//
// UserID is the only application claim; the registered claims carry the
// issuer, issue time and expiry.
type Claims struct {
	// UserID identifies the user the token was issued for.
	UserID string `json:"user_id"`

	jwt.RegisteredClaims
}

// Token wraps a JWT together with its compact form and the user it
// belongs to.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the value of the user_id claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
