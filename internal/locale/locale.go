// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package locale holds per-jurisdiction gazetteers: police districts, street
// names, neighborhoods, roster indicator vocabulary, and roster name
// exclusions. Locales are registered once and passed around as explicit
// handles.
package locale

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"blind-redact/internal/reutil"
)

// Position says on which side of a name a roster indicator appears in
// narrative text.
type Position string

const (
	PositionPrefix Position = "prefix"
	PositionSuffix Position = "suffix"
)

// Definition is the declarative form of a locale, loadable from YAML.
type Definition struct {
	Name          string            `yaml:"name"`
	Districts     []string          `yaml:"districts"`
	StreetNames   []string          `yaml:"street_names"`
	Neighborhoods []string          `yaml:"neighborhoods"`
	ExcludedNames []string          `yaml:"excluded_names"` // regex patterns
	Indicators    map[string]string `yaml:"indicators"`     // type -> role label
	DefaultRole   string            `yaml:"default_role"`
	Positions     []Position        `yaml:"indicator_positions"`
}

// Locale is a compiled Definition.
type Locale struct {
	Definition

	districtRe     *regexp.Regexp
	intersectionRe *regexp.Regexp
	excludedRe     *regexp.Regexp
}

// New compiles a locale definition.
func New(def Definition) (*Locale, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("locale definition has no name")
	}
	if def.DefaultRole == "" {
		def.DefaultRole = "Person"
	}
	if len(def.Positions) == 0 {
		def.Positions = []Position{PositionPrefix, PositionSuffix}
	}

	loc := &Locale{Definition: def}

	if len(def.Districts) > 0 {
		loc.districtRe = regexp.MustCompile(
			`(?i)\b` + reutil.NamedLiteralGroup(def.Districts, "name") +
				`\s+(?P<sfx>police station|station|district|unit)\b`)
	}

	if len(def.StreetNames) > 0 {
		var variants []string
		for _, name := range def.StreetNames {
			variants = append(variants, streetVariants(name)...)
		}
		street := reutil.LiteralGroup(variants)
		var endVariants []string
		for _, sfx := range StreetSuffixes() {
			endVariants = append(endVariants, sfx, titleWords(sfx), strings.ToUpper(sfx))
		}
		endings := reutil.LiteralGroup(endVariants)
		single := street + `(?:\s+` + endings + `)?`
		conj := `(?P<conj>(?:\s+(?:and|And|AND|&)\s+)|\s*/\s*)`
		loc.intersectionRe = regexp.MustCompile(
			`\b` + single + conj + single + `\b`)
	}

	if len(def.ExcludedNames) > 0 {
		pattern := `(?i)^(?:` + strings.Join(def.ExcludedNames, "|") + `)`
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("locale %q: excluded names: %w", def.Name, err)
		}
		loc.excludedRe = re
	}

	return loc, nil
}

// Must compiles a definition, panicking on error. For built-in locales.
func Must(def Definition) *Locale {
	loc, err := New(def)
	if err != nil {
		panic(err)
	}
	return loc
}

// titleWords capitalizes the first letter of each word, leaving leading
// digits alone so "20th st" becomes "20th St" rather than "20Th St".
func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// streetVariants expands a canonical gazetteer entry like "LILAC DR" into
// the surface forms a narrative may carry: case variants, the bare name
// without its suffix token, and the abbreviation <-> full word expansion of
// the suffix.
func streetVariants(name string) []string {
	forms := map[string]bool{name: true}

	tokens := strings.Fields(name)
	if len(tokens) > 1 {
		last := strings.ToLower(tokens[len(tokens)-1])
		base := strings.Join(tokens[:len(tokens)-1], " ")
		if alts, ok := suffixAlternatives(last); ok {
			forms[base] = true
			for _, alt := range alts {
				forms[base+" "+strings.ToUpper(alt)] = true
			}
		}
	}

	var out []string
	for form := range forms {
		out = append(out,
			form,
			strings.ToUpper(form),
			titleWords(form),
		)
	}
	return out
}

// RoleLabel returns the role label for an indicator type, falling back to
// the locale default for unknown types.
func (l *Locale) RoleLabel(ptype string) string {
	if label, ok := l.Indicators[ptype]; ok {
		return label
	}
	return l.DefaultRole
}

// IndicatorTypes returns the indicator type codes known to the locale.
func (l *Locale) IndicatorTypes() []string {
	out := make([]string, 0, len(l.Indicators))
	for t := range l.Indicators {
		out = append(out, t)
	}
	return out
}

// DistrictMatcher returns the compiled district pattern, or nil.
func (l *Locale) DistrictMatcher() *regexp.Regexp { return l.districtRe }

// IntersectionMatcher returns the compiled street intersection pattern, or
// nil.
func (l *Locale) IntersectionMatcher() *regexp.Regexp { return l.intersectionRe }

// AllowsName reports whether a roster name survives filtering: blanks,
// placeholder values, and excluded-name matches are dropped.
func (l *Locale) AllowsName(name string) bool {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "", "n/a", "na", "none", "missing":
		return false
	}
	if l.excludedRe != nil && l.excludedRe.MatchString(trimmed) {
		return false
	}
	return true
}
