// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package intervals

import (
	"errors"
	"testing"
)

func mustAdd(t *testing.T, s *Set, start, end int) {
	t.Helper()
	if err := s.AddSpan(start, end); err != nil {
		t.Fatalf("AddSpan(%d, %d): %v", start, end, err)
	}
}

func TestAddSpanMerging(t *testing.T) {
	s := NewSet()
	steps := []struct {
		start, end int
		want       [][2]int
	}{
		{5, 10, [][2]int{{5, 10}}},
		{0, 1, [][2]int{{0, 1}, {5, 10}}},
		{2, 3, [][2]int{{0, 1}, {2, 3}, {5, 10}}},
		{10, 15, [][2]int{{0, 1}, {2, 3}, {5, 15}}},
		{2, 20, [][2]int{{0, 1}, {2, 20}}},
		{-1, 100, [][2]int{{-1, 100}}},
	}
	for _, step := range steps {
		mustAdd(t, s, step.start, step.end)
		got := s.Spans()
		if len(got) != len(step.want) {
			t.Fatalf("after AddSpan(%d, %d): Spans() = %v, want %v",
				step.start, step.end, got, step.want)
		}
		for i := range step.want {
			if got[i] != step.want[i] {
				t.Errorf("after AddSpan(%d, %d): span %d = %v, want %v",
					step.start, step.end, i, got[i], step.want[i])
			}
		}
	}
}

func TestContainsBoundaries(t *testing.T) {
	s := NewSet()
	mustAdd(t, s, 5, 10)
	mustAdd(t, s, 0, 1)
	mustAdd(t, s, 2, 3)
	mustAdd(t, s, 10, 15)
	mustAdd(t, s, 2, 20)

	cases := []struct {
		point int
		want  bool
	}{
		{-1, false},
		{0, true},
		{1, false},
		{2, true},
		{3, true},
		{10, true},
		{15, true},
		{19, true},
		{20, false},
		{100, false},
	}
	for _, tc := range cases {
		if got := s.Contains(tc.point); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.point, got, tc.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	s := NewSet()
	mustAdd(t, s, 5, 10)

	cases := []struct {
		start, end int
		want       bool
	}{
		{0, 5, false},
		{0, 6, true},
		{5, 6, true},
		{9, 12, true},
		{10, 12, false},
		{4, 11, true},
		{0, 2, false},
	}
	for _, tc := range cases {
		got, err := s.Overlaps(tc.start, tc.end)
		if err != nil {
			t.Fatalf("Overlaps(%d, %d): %v", tc.start, tc.end, err)
		}
		if got != tc.want {
			t.Errorf("Overlaps(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestInvalidExtent(t *testing.T) {
	s := NewSet()
	var extErr *InvalidExtentError
	if err := s.AddSpan(3, 3); !errors.As(err, &extErr) {
		t.Errorf("AddSpan(3, 3) = %v, want InvalidExtentError", err)
	}
	if err := s.AddSpan(5, 4); !errors.As(err, &extErr) {
		t.Errorf("AddSpan(5, 4) = %v, want InvalidExtentError", err)
	}
	// Negative starts are fine; only a non-positive extent is invalid.
	if err := s.AddSpan(-1, 4); err != nil {
		t.Errorf("AddSpan(-1, 4) = %v, want nil", err)
	}
	if _, err := s.Overlaps(4, 4); !errors.As(err, &extErr) {
		t.Errorf("Overlaps(4, 4) = %v, want InvalidExtentError", err)
	}
}
