// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL returns the protocol-relative gravatar URL for email:
// 200px, PG rated, "mystery person" fallback.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
