// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"regexp"
	"strconv"
	"strings"

	"blind-redact/internal/nlp"
)

// Regex fragments for officer mentions, shared with the mention extractor.
const (
	// TitlePattern matches an officer title followed by whitespace.
	TitlePattern = `(?:Sheriff|Insp\.?|Inspector|Officer|Ofc\.?|` +
		`Off\.?|Sergeant|Sgt\.?|Commissioner|Comm\.?|` +
		`commissioner|comm\.?|FTO|PSA)\s+`
	// UnitCodePattern matches a unit/shift code like "3B21" or "(1A23B)".
	UnitCodePattern = `(?:\s|^)?\(?[0-9][A-Z][0-9A-Z]{2,3}\)?(?:\s|\.|$)`
	// NamePattern matches one capitalized name token.
	NamePattern = `[A-Z][A-Za-z\-\']*\s*`
	// StarPattern matches a star (badge) number.
	StarPattern = `(?:#\s*)([0-9]{3,5})\b`
)

var (
	starRe     = regexp.MustCompile(StarPattern)
	unitCodeRe = regexp.MustCompile(`^` + UnitCodePattern)
	nameTokRe  = regexp.MustCompile(`^[A-Za-z\-\']+\b`)
	trailJunk  = regexp.MustCompile(`[^A-Z]+$`)
)

var officerTitles = map[string]string{
	"OFFICER":      "Officer",
	"OFC":          "Officer",
	"OFF":          "Officer",
	"SERGEANT":     "Sergeant",
	"SGT":          "Sergeant",
	"INSPECTOR":    "Inspector",
	"INSP":         "Inspector",
	"SHERIFF":      "Sheriff",
	"COMMISSIONER": "Commissioner",
	"COMM":         "Commissioner",
	"FTO":          "FTO",
	"PSA":          "PSA",
}

// titleAbbrs maps a canonical title to its abbreviations, sorted.
func titleAbbrs(title string) []string {
	var out []string
	for abbr, t := range officerTitles {
		if t == title {
			out = append(out, abbr)
		}
	}
	return sortedKeys(newSet(out...))
}

// Officer is a reference to an officer mentioned in a narrative.
type Officer struct {
	raw string

	Title    string
	Star     string
	UnitCode string
	Names    map[string]bool

	// Assigned during dedupe.
	CodeName string
	Class    string
}

// NewOfficer parses a free-form officer mention like
// "Officer Krupke #1234" or "3B21 Sgt. Smith".
func NewOfficer(mention string) *Officer {
	o := &Officer{raw: mention, Names: newSet()}

	if m := starRe.FindStringSubmatch(mention); m != nil {
		o.Star = m[1]
	}

	for _, raw := range strings.Fields(mention) {
		p := strings.TrimSpace(strings.ToUpper(raw))
		isTitle := officerTitles[strings.Trim(p, ".")] != ""
		switch {
		case !isTitle && nameTokRe.MatchString(p) && !nlp.IsStopWord(p):
			o.Names[trailJunk.ReplaceAllString(p, "")] = true
		case isTitle:
			o.Title = officerTitles[strings.Trim(p, ".")]
		case unitCodeRe.MatchString(p):
			o.UnitCode = strings.Trim(p, "()")
		}
	}

	delete(o.Names, "")
	return o
}

// Args returns the mention string this reference was parsed from.
func (o *Officer) Args() string { return o.raw }

// Equal reports whether two references describe the same officer. Unit
// codes likely name a shift or pair, so they never prove identity, but
// differing codes disprove it.
func (o *Officer) Equal(other *Officer) bool {
	if o.UnitCode != other.UnitCode {
		return false
	}
	if o.Star != "" && o.Star == other.Star {
		return true
	}
	return intersects(o.Names, other.Names)
}

// Merge folds another reference to the same officer into this one.
func (o *Officer) Merge(other *Officer) error {
	if !o.Equal(other) {
		return ErrIdentityConflict
	}
	if o.UnitCode == "" {
		o.UnitCode = other.UnitCode
	}
	if o.Star == "" {
		o.Star = other.Star
	}
	if o.Title == "" {
		o.Title = other.Title
	}
	unionInto(o.Names, other.Names)
	return nil
}

// namePattern joins parts with a whitespace pattern, appending an optional
// star pattern.
func namePattern(parts []string, star string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	joined := strings.Join(nonEmpty, `\s+`)
	if star != "" {
		return joined + star
	}
	return joined
}

// SurfacePatterns returns regex surface forms for this officer, longest
// first: name permutations with optional title, star, and unit code.
func (o *Officer) SurfacePatterns() []string {
	reps := make(map[string]bool)

	names := sortedKeys(o.Names)
	var combined []string
	for _, n := range names {
		combined = append(combined, regexp.QuoteMeta(n))
	}
	var permuted []string
	for _, a := range combined {
		permuted = append(permuted, a)
		for _, b := range combined {
			if a != b {
				permuted = append(permuted, a+`\s+`+b)
			}
		}
	}

	unitCode := ""
	if o.UnitCode != "" {
		unitCode = `\(?` + regexp.QuoteMeta(o.UnitCode) + `\)?`
		reps[unitCode] = true
	}

	star := ""
	if o.Star != "" {
		star = `\s*#\s*` + o.Star
		reps[star] = true
	}

	for _, n := range permuted {
		reps[namePattern([]string{n}, "")] = true
		reps[namePattern([]string{n}, star)] = true
		if unitCode != "" {
			reps[namePattern([]string{unitCode, n}, star)] = true
		}
	}

	if o.Title != "" {
		for _, t := range titleAbbrs(o.Title) {
			tp := regexp.QuoteMeta(t) + `\.?`
			if o.Star != "" {
				reps[namePattern([]string{tp}, star)] = true
				if unitCode != "" {
					reps[namePattern([]string{unitCode, tp}, star)] = true
				}
			}
			for _, n := range permuted {
				reps[namePattern([]string{tp, n}, "")] = true
				reps[namePattern([]string{tp, n}, star)] = true
				if unitCode != "" {
					reps[namePattern([]string{unitCode, tp, n}, star)] = true
				}
			}
		}
	}

	var all []string
	for r := range reps {
		if r == "" {
			continue
		}
		all = append(all, `\b`+r+`\b`)
	}
	return byPatternLength(cleanPatterns(all))
}

// DedupeOfficers merges duplicate references and assigns display labels:
// titled (or starred) officers count up per title as "Officer #n"; unit
// codes alone read as "[officer pair]"; anything else is "an officer".
func DedupeOfficers(officers []*Officer) ([]*Officer, error) {
	out, err := dedupe(officers,
		func(a, b *Officer) bool { return a.Equal(b) },
		func(a, b *Officer) error { return a.Merge(b) })
	if err != nil {
		return nil, err
	}

	typeCounts := make(map[string]int)
	for _, o := range out {
		title := o.Title
		if o.Star != "" && o.Title == "" {
			title = "Officer"
		}
		switch {
		case title != "":
			typeCounts[title]++
			o.CodeName = title + " #" + strconv.Itoa(typeCounts[title])
		case o.UnitCode != "":
			o.CodeName = "[officer pair]"
		default:
			o.CodeName = "an officer"
		}
		o.Class = "masked-officer"
	}
	return out, nil
}
