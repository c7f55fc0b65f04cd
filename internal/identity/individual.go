// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package identity models the people referenced by a narrative: civilians
// drawn from report rosters and officers drawn from free-form mentions. Each
// reference knows how to compare itself to other references, merge with
// duplicates, and render the regex surface forms that find it in text.
package identity

import (
	"errors"
	"sort"
)

// ErrIdentityConflict is returned when two references that do not describe
// the same individual are merged.
var ErrIdentityConflict = errors.New("cannot merge references to different individuals")

// Regex fragments that carry no real meaning for name matching.
var emptyPatterns = map[string]bool{
	``:      true,
	`\b-\b`: true,
	`\b-`:   true,
	`-\b`:   true,
	`-`:     true,
	`\s+`:   true,
	`\s*`:   true,
}

// cleanPatterns drops meaningless fragments from a pattern list.
func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !emptyPatterns[p] {
			out = append(out, p)
		}
	}
	return out
}

// dedupe merges duplicate references in place order: each reference absorbs
// every later duplicate, re-scanning until it stabilizes, then survives into
// the output. Output order follows first mention order.
func dedupe[T any](items []*T, equal func(a, b *T) bool, merge func(dst, src *T) error) ([]*T, error) {
	mentions := make([]*T, len(items))
	copy(mentions, items)

	var out []*T
	i := 0
	for i < len(mentions) {
		a := mentions[i]
		if a == nil {
			i++
			continue
		}
		changed := false
		for j := i + 1; j < len(mentions); j++ {
			b := mentions[j]
			if b == nil {
				continue
			}
			if equal(a, b) {
				if err := merge(a, b); err != nil {
					return nil, err
				}
				mentions[j] = nil
				changed = true
			}
		}
		if !changed {
			out = append(out, a)
			i++
		}
	}
	return out, nil
}

// stringSet helpers. Name fields are sets because a person may surface under
// several spellings (Mike vs. M.).

func newSet(items ...string) map[string]bool {
	s := make(map[string]bool)
	for _, it := range items {
		if it != "" {
			s[it] = true
		}
	}
	return s
}

func sortedKeys(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unionInto(dst, src map[string]bool) {
	for k := range src {
		dst[k] = true
	}
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

// byPatternLength orders regex patterns longest first so replacement prefers
// the most specific surface form, with a lexicographic tiebreak for
// determinism.
func byPatternLength(patterns []string) []string {
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})
	return patterns
}
