// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package annotation defines the redaction value type produced by the
// masking pipeline and the merger that folds adjacent person redactions.
package annotation

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
)

// Redaction is a half-open [Start, End) byte span of the narrative together
// with the text that replaces it.
type Redaction struct {
	Start int
	End   int
	Text  string
	Info  string
	Color string
}

type redactionJSON struct {
	Start   int             `json:"start"`
	End     int             `json:"end"`
	Content string          `json:"content"`
	Extent  int             `json:"extent"`
	Type    string          `json:"type"`
	Info    string          `json:"info,omitempty"`
	Format  *redactionStyle `json:"format,omitempty"`
}

type redactionStyle struct {
	Color string `json:"color"`
}

// MarshalJSON renders the redaction in the wire shape consumed by review
// tooling.
func (r Redaction) MarshalJSON() ([]byte, error) {
	out := redactionJSON{
		Start:   r.Start,
		End:     r.End,
		Content: r.Text,
		Extent:  len(r.Text),
		Type:    "redaction",
		Info:    r.Info,
	}
	if r.Color != "" {
		out.Format = &redactionStyle{Color: r.Color}
	}
	return json.Marshal(out)
}

// Merge folds person redactions separated by at most one whitespace
// character and carrying identical replacement text into a single redaction.
// The result is sorted by descending start offset; consumers that need
// document order sort locally (see Apply).
func Merge(narrative string, redactions []Redaction) []Redaction {
	ordered := make([]Redaction, len(redactions))
	copy(ordered, redactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	var merged []Redaction
	for _, r := range ordered {
		if len(merged) > 0 {
			right := merged[len(merged)-1]
			if right.Start-r.End <= 1 && r.Text == right.Text &&
				r.Info == right.Info && r.Info == "person" &&
				gapIsSpace(narrative, r.End, right.Start) {
				merged[len(merged)-1] = Redaction{
					Start: r.Start,
					End:   right.End,
					Text:  r.Text,
					Info:  r.Info,
					Color: r.Color,
				}
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged
}

// Apply renders the narrative with every redaction replaced by its text.
func Apply(narrative string, redactions []Redaction) string {
	ordered := make([]Redaction, len(redactions))
	copy(ordered, redactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var b strings.Builder
	pos := 0
	for _, r := range ordered {
		if r.Start < pos || r.End > len(narrative) {
			continue
		}
		b.WriteString(narrative[pos:r.Start])
		b.WriteString(r.Text)
		pos = r.End
	}
	b.WriteString(narrative[pos:])
	return b.String()
}

func gapIsSpace(narrative string, from, to int) bool {
	if from >= to || from < 0 || to > len(narrative) {
		return false
	}
	for _, c := range narrative[from:to] {
		if !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}
