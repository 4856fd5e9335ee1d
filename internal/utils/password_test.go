// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "123456" {
		t.Fatal("hash must differ from the plain password")
	}

	if err := ComparePassword(hash, "123456"); err != nil {
		t.Errorf("expected match, got: %v", err)
	}
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("123456")

	err := ComparePassword(hash, "654321")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestComparePassword_InvalidHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "123456")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a non-mismatch error, got %v", err)
	}
}
