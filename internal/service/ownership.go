// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// CheckOwnership returns ErrForbidden unless identity, the id of the
// authenticated user, is the owner of the resource.
func CheckOwnership(identity, owner string) error {
	if identity == "" || identity != owner {
		return ErrForbidden
	}
	return nil
}
