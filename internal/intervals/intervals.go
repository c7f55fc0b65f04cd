// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package intervals

import "fmt"

// InvalidExtentError reports a span whose extent is not positive.
type InvalidExtentError struct {
	Start int
	End   int
}

func (e *InvalidExtentError) Error() string {
	return fmt.Sprintf("invalid extent [%d, %d)", e.Start, e.End)
}

// Set tracks a collection of non-overlapping half-open [start, end) spans.
// Boundaries are kept as a flat sorted slice; even indices open a span and
// odd indices close one.
type Set struct {
	bounds []int
}

// NewSet returns an empty interval set.
func NewSet() *Set {
	return &Set{}
}

// findIndex returns the index of the smallest boundary >= value, or
// len(bounds) if every boundary is smaller. With inside=true the comparison
// is strict (smallest boundary > value).
func (s *Set) findIndex(value int, inside bool) int {
	if len(s.bounds) == 0 {
		return 0
	}
	low, high := 0, len(s.bounds)-1
	for low < high-1 {
		mid := (low + high) / 2
		less := s.bounds[mid] < value
		if !less && inside {
			less = s.bounds[mid] == value
		}
		if less {
			low = mid
		} else {
			high = mid
		}
	}
	cmp := func(i int) bool {
		if inside {
			return value < s.bounds[i]
		}
		return value <= s.bounds[i]
	}
	if cmp(low) {
		return low
	}
	if cmp(high) {
		return high
	}
	return len(s.bounds)
}

// AddSpan records [start, end), coalescing with any spans it touches or
// overlaps.
func (s *Set) AddSpan(start, end int) error {
	if end <= start {
		return &InvalidExtentError{Start: start, End: end}
	}

	startIdx := s.findIndex(start, false)
	if startIdx%2 == 1 {
		// start falls inside an existing span; extend that span.
		startIdx--
	}
	if startIdx == len(s.bounds) {
		s.bounds = append(s.bounds, start, end)
		return nil
	}

	endIdx := s.findIndex(end+1, false)
	if endIdx%2 == 0 {
		endIdx--
	}
	if endIdx < 0 {
		s.bounds = append([]int{start, end}, s.bounds...)
		return nil
	}

	lo := start
	if s.bounds[startIdx] < lo {
		lo = s.bounds[startIdx]
	}
	hi := end
	if endIdx < len(s.bounds) && s.bounds[endIdx] > hi {
		hi = s.bounds[endIdx]
	}

	tail := endIdx + 1
	if tail > len(s.bounds) {
		tail = len(s.bounds)
	}
	merged := make([]int, 0, len(s.bounds))
	merged = append(merged, s.bounds[:startIdx]...)
	merged = append(merged, lo, hi)
	merged = append(merged, s.bounds[tail:]...)
	s.bounds = merged
	return nil
}

// Contains reports whether point lies inside a recorded span.
func (s *Set) Contains(point int) bool {
	idx := s.findIndex(point, false)
	if idx%2 == 0 {
		return idx < len(s.bounds) && s.bounds[idx] == point
	}
	return s.bounds[idx] != point
}

// Overlaps reports whether [start, end) intersects any recorded span.
func (s *Set) Overlaps(start, end int) (bool, error) {
	if end <= start {
		return false, &InvalidExtentError{Start: start, End: end}
	}
	startIdx := s.findIndex(start, true)
	if startIdx%2 == 1 {
		return true, nil
	}
	endIdx := s.findIndex(end-1, true)
	return startIdx != endIdx, nil
}

// Spans returns the recorded spans in ascending order.
func (s *Set) Spans() [][2]int {
	out := make([][2]int, 0, len(s.bounds)/2)
	for i := 0; i+1 < len(s.bounds); i += 2 {
		out = append(out, [2]int{s.bounds[i], s.bounds[i+1]})
	}
	return out
}
