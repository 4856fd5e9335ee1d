// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestUUIDGenerator_GenerateIsValidAndOrdered(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if !IsValidID(first) || !IsValidID(second) {
		t.Fatalf("expected valid UUIDs, got %s and %s", first, second)
	}
	if first == second {
		t.Fatal("expected distinct ids")
	}
	if first > second {
		t.Errorf("expected v7 ids to sort by creation: %s > %s", first, second)
	}
}

func TestIsValidID(t *testing.T) {
	for _, s := range []string{"", "42", "not-a-uuid", "0190f6a2-7d4c-7aaa-9a11"} {
		if IsValidID(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
