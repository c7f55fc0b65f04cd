// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reutil builds the alternation patterns shared by the narrative
// detectors and provides span-accurate scanning helpers for patterns that
// carry explicit boundary groups.
package reutil

import (
	"regexp"
	"sort"
	"strings"
)

// LiteralGroup renders literals as a non-capturing alternation group,
// longest first so greedy matching prefers the most specific literal.
func LiteralGroup(literals []string) string {
	return literalGroup(literals, "", false)
}

// NamedLiteralGroup is LiteralGroup with a named capture group.
func NamedLiteralGroup(literals []string, name string) string {
	return literalGroup(literals, name, true)
}

// CapturedLiteralGroup is LiteralGroup with an unnamed capture group.
func CapturedLiteralGroup(literals []string) string {
	return literalGroup(literals, "", true)
}

func literalGroup(literals []string, name string, capture bool) string {
	escaped := make([]string, 0, len(literals))
	for _, lit := range literals {
		escaped = append(escaped, regexp.QuoteMeta(lit))
	}
	sort.Slice(escaped, func(i, j int) bool {
		if len(escaped[i]) != len(escaped[j]) {
			return len(escaped[i]) > len(escaped[j])
		}
		return escaped[i] < escaped[j]
	})
	group := strings.Join(escaped, "|")
	switch {
	case name != "":
		return "(?P<" + name + ">" + group + ")"
	case capture:
		return "(" + group + ")"
	default:
		return "(?:" + group + ")"
	}
}

// AdjList matches a run of the given adjectives joined by spaces, commas,
// slashes, ampersands, or and/or conjunctions, optionally with a determiner
// before the final run: "black or brown", "silver/white short".
func AdjList(literals []string) string {
	adj := LiteralGroup(literals)
	chain := adj + `(?:\s+,?\s*` + adj + `,?)*`
	conj := LiteralGroup([]string{"and", "or"})
	conjSym := LiteralGroup([]string{"&", "/"})
	det := LiteralGroup([]string{"a", "an", "the", "some", "any"})
	return `\b` + chain +
		`(?:(?:\s+` + conj + `\s+|\s*` + conjSym + `\s*)` +
		`(?:` + det + `\s+)?` + chain + `)?\b`
}

// NounPhrase matches an adjective list followed by one of the given nouns,
// capturing the noun in a group named "noun".
func NounPhrase(adjectives, nouns []string) string {
	return AdjList(adjectives) + `\s+` + NamedLiteralGroup(nouns, "noun") + `\b`
}

// FindAllGroup scans text for re and returns the spans of the given capture
// group. Scanning resumes at the end of the reported group rather than the
// end of the whole match, so adjacent matches that share boundary text (a
// single separator character, say) are all found. Group 0 is the whole
// match.
func FindAllGroup(re *regexp.Regexp, text string, group int) [][2]int {
	var spans [][2]int
	pos := 0
	for pos <= len(text) {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		gs, ge := m[2*group], m[2*group+1]
		if gs < 0 {
			pos += m[1] + 1
			continue
		}
		spans = append(spans, [2]int{pos + gs, pos + ge})
		next := pos + ge
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return spans
}

// GroupIndex returns the index of a named capture group, or -1.
func GroupIndex(re *regexp.Regexp, name string) int {
	for i, n := range re.SubexpNames() {
		if n == name {
			return i
		}
	}
	return -1
}
