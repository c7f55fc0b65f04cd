// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract infers civilian and officer mentions directly from
// narrative text, independent of any roster the caller supplies. Civilians
// are found by pairing indicator flags like "(B1)" or "S/" with the nearest
// recognized person entity; officers are found by title, badge number, and
// unit code patterns.
package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"blind-redact/internal/identity"
	"blind-redact/internal/nlp"
	"blind-redact/internal/reutil"
	"blind-redact/internal/vocab"
)

var (
	namePhraseGroup = reutil.LiteralGroup(vocab.NamePhrases)
	textIndicatorRe = regexp.MustCompile(`(?i)\b` + namePhraseGroup + `\b,?`)
	phraseOnlyRe    = regexp.MustCompile(`(?i)^` + namePhraseGroup + `\b,?`)

	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	officerMentionRe = regexp.MustCompile(officerPattern())
)

// Preprocess normalizes raw narrative text before any scanning: diacritics
// are folded to ASCII and the OCR artifact "¿" becomes an apostrophe. The
// result is the text all downstream offsets refer to.
func Preprocess(narrative string) string {
	if narrative == "" {
		return ""
	}
	narrative = strings.ReplaceAll(narrative, "¿", "'")
	folded, _, err := transform.String(asciiFold, narrative)
	if err != nil {
		folded = narrative
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mention is one indicator occurrence in the text.
type mention struct {
	start, end int
	text       string
}

// indicatorPatterns compiles the parenthesized and bare-prefix indicator
// patterns for the given type codes. "V" and "W" alias their "R/V" and
// "R/W" forms, and a literal slash in a code also matches when omitted.
func indicatorPatterns(personTypes []string) (paren, front *regexp.Regexp) {
	types := make(map[string]bool)
	for _, t := range personTypes {
		types[t] = true
	}
	if types["R/V"] || types["V"] {
		types["R/V"] = true
		types["V"] = true
	}
	if types["R/W"] || types["W"] {
		types["R/W"] = true
		types["W"] = true
	}

	alts := make([]string, 0, len(types))
	for t := range types {
		alts = append(alts, strings.ReplaceAll(t, "/", "/?"))
	}
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	if len(alts) == 0 {
		return nil, nil
	}
	group := `(?:` + strings.Join(alts, "|") + `)`

	paren = regexp.MustCompile(`(?:\A|\W)(\(` + group + `(?:-|/)?\d{1,2}\))\W`)
	front = regexp.MustCompile(`\b(` + group + `\d{0,2}(?:-|/))[a-zA-Z]`)
	return paren, front
}

// addPersonMention records an indicator occurrence as a civilian reference.
// Introductory phrases ("identified as", relationship nouns) contribute no
// indicator of their own, so they only count when a name was bound.
func addPersonMention(mentions []*identity.Civilian, indicator string, reportID int, name string) []*identity.Civilian {
	if !phraseOnlyRe.MatchString(indicator) {
		return append(mentions, identity.NewCivilian(identity.CivilianRecord{
			Indicator: indicator,
			ReportID:  reportID,
			Name:      name,
		}))
	}
	if name != "" {
		return append(mentions, identity.NewCivilian(identity.CivilianRecord{
			ReportID: reportID,
			Name:     name,
		}))
	}
	return mentions
}

// Persons infers civilian mentions from annotated narrative text. Each
// indicator occurrence is paired with the nearest person entity on either
// side of it, provided only whitespace lies between them and the entity text
// is informative; otherwise the indicator is recorded alone.
func Persons(ann *nlp.Annotations, reportID int, personTypes []string) []*identity.Civilian {
	text := ann.Text
	parenRe, frontRe := indicatorPatterns(personTypes)

	var indicators []mention
	if parenRe != nil {
		for _, sp := range reutil.FindAllGroup(parenRe, text, 1) {
			indicators = append(indicators, mention{sp[0], sp[1], text[sp[0]:sp[1]]})
		}
		for _, sp := range reutil.FindAllGroup(frontRe, text, 1) {
			indicators = append(indicators, mention{sp[0], sp[1], text[sp[0]:sp[1]]})
		}
	}
	for _, sp := range textIndicatorRe.FindAllStringIndex(text, -1) {
		indicators = append(indicators, mention{sp[0], sp[1], text[sp[0]:sp[1]]})
	}

	persons := ann.PersonEntities()
	var mentions []*identity.Civilian

	// Try binding each indicator to the entity after it, then to the entity
	// before it. Repeats that bind both ways merge away during dedupe.
	for _, after := range []bool{true, false} {
		entityAt := make(map[int]nlp.Entity, len(persons))
		for _, e := range persons {
			if after {
				entityAt[e.Start] = e
			} else {
				entityAt[e.End] = e
			}
		}

		for _, ind := range indicators {
			offset, ent, found := -1, nlp.Entity{}, false
			for pos, e := range entityAt {
				var d int
				if after {
					d = pos - ind.end
				} else {
					d = ind.start - pos
				}
				if d < 0 {
					continue
				}
				if !found || d < offset {
					offset, ent, found = d, e, true
				}
			}
			if !found {
				mentions = addPersonMention(mentions, ind.text, reportID, "")
				continue
			}

			var tween string
			if after {
				tween = text[ind.end : ind.end+offset]
			} else {
				tween = text[ind.start-offset : ind.start]
			}
			if strings.TrimSpace(tween) != "" {
				mentions = addPersonMention(mentions, ind.text, reportID, "")
				continue
			}

			name := strings.TrimSpace(ent.Text)
			if strings.Contains(strings.ToUpper(name), "UNKNOWN") {
				mentions = addPersonMention(mentions, ind.text, reportID, "")
				continue
			}

			mentions = addPersonMention(mentions, ind.text, reportID, name)
		}
	}

	return mentions
}

// officerPattern assembles the officer mention grammar: permutations of unit
// code, title, one or two name tokens, and badge number, requiring at least
// a title with a name or a badge number.
func officerPattern() string {
	unit := `(?:` + identity.UnitCodePattern + `)?`
	title := identity.TitlePattern
	name := `(?:` + identity.NamePattern + `)`
	star := identity.StarPattern

	alternates := []string{
		// (1A23B) (Ofc.) John Doe #1234
		unit + `(?:` + title + `)?` + name + `{1,2}` + star,
		// (1A23B) Ofc. John Doe (#1234)
		unit + title + name + `+(?:` + star + `)?`,
		// (1A23B) Ofc. (John Doe) #1234
		unit + title + `(?:` + name + `+)?` + star,
		// 1A23B
		identity.UnitCodePattern,
	}
	return `(?:` + strings.Join(alternates, `)|(?:`) + `)`
}

// Officers extracts officer mentions from the narrative text.
func Officers(narrative string) []*identity.Officer {
	var out []*identity.Officer
	for _, m := range officerMentionRe.FindAllString(narrative, -1) {
		out = append(out, identity.NewOfficer(m))
	}
	return out
}
