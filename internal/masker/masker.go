// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package masker applies the redaction rules to a narrative. Detectors run
// in priority order against a shared document context: person and officer
// names first, then locations, then demographic descriptions, so that the
// most specific rules claim their spans before broader ones run.
package masker

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"blind-redact/internal/annotation"
	"blind-redact/internal/document"
	"blind-redact/internal/identity"
	"blind-redact/internal/locale"
	"blind-redact/internal/nlp"
	"blind-redact/internal/reutil"
	"blind-redact/internal/textdist"
	"blind-redact/internal/vocab"
)

var (
	skinColorRe = regexp.MustCompile(`(?i)` +
		reutil.NounPhrase(union(vocab.SkinColors, vocab.RaceWords), vocab.PersonRef))

	hairColorRe = regexp.MustCompile(`(?i)` +
		reutil.NounPhrase(union(vocab.GeneralColors, vocab.HairColors), vocab.HairRef))

	hairStyleRe = regexp.MustCompile(`(?i)` + reutil.NounPhrase(
		union(vocab.SensitiveHairRef, vocab.HairAdjs, vocab.GeneralColors, vocab.HairColors),
		union(vocab.SensitiveHairRef, vocab.HairRef)))

	// Sensitive hairstyles redact even without an adjective or noun around
	// them.
	sensitiveHairRe = regexp.MustCompile(`(?i)` + reutil.LiteralGroup(vocab.SensitiveHairRef))

	eyeColorRe = regexp.MustCompile(`(?i)` +
		reutil.NounPhrase(union(vocab.GeneralColors, vocab.EyeColors), vocab.EyeRef))

	raceRe = regexp.MustCompile(`(?i)` + reutil.AdjList(vocab.RaceWords))

	// Case matters here: "BMA" is an abbreviation, "bma" is noise.
	raceAbbrevRe = regexp.MustCompile(`\b` + vocab.RaceAbbrev + `s?\b`)

	raceFeatureRe = regexp.MustCompile(`(?i)\b` + reutil.LiteralGroup(vocab.RaceFeatures) + `\b`)

	appearanceListRe = regexp.MustCompile(`(?i)` +
		reutil.NamedLiteralGroup(vocab.AppearanceList, "noun") + `:\s*` +
		reutil.AdjList(union(vocab.SkinColors, vocab.HairColors, vocab.HairAdjs,
			vocab.EyeColors, vocab.GeneralColors)))

	// Group 1 is the address span to redact, group 2 the street suffix that
	// survives in the replacement. The trailing whitespace alternative is
	// outside group 1 so scanning resumes before it.
	streetAddressRe = regexp.MustCompile(
		`(?i)((?:\d{1,5} [\w\s]{1,20}) (` +
			reutil.LiteralGroup(locale.StreetSuffixes()) + `\.?)\W?)(?:\s|$)`)

	// Speed readings and freeway lanes that would otherwise read as
	// addresses: "30 mph", "#2 lane".
	badAddressRe = regexp.MustCompile(`(?i)\d{1,3}\s?mph\b|\b#?\d\s?(?:[nesw]/?b\s?)?lane\b`)

	// Capitalization structure infers street names, so no case folding. The
	// boundary class excludes the period to keep "St." intact in the
	// replacement.
	presumedStreetRe = regexp.MustCompile(
		`((?:(?:\d+|[A-Z])[A-Za-z']*\s+)+(` + presumedStreetEndings() + `\.?))` +
			"[,/#!$%^&*;:{}=\\-_`~()\\s]")

	badStreetRe = regexp.MustCompile(`(?i)\b(?:#?\d\s)?(?:[nesw]/?b\s?)?lane\b`)

	countrySearchRe     = entitySearchRe(vocab.Countries)
	languageSearchRe    = entitySearchRe(vocab.Languages)
	nationalitySearchRe = entitySearchRe(vocab.Nationalities)

	parenStrip = strings.NewReplacer("(", "", ")", "")

	raceAbbrevSex = map[string]string{"F": "female", "M": "male"}
	raceAbbrevAge = map[string]string{"A": "adult", "J": "juvenile"}
)

// union merges word lists, dropping duplicates.
func union(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

// presumedStreetEndings renders every suffix in its lowercase, capitalized,
// and uppercase forms.
func presumedStreetEndings() string {
	var variants []string
	for _, sfx := range locale.StreetSuffixes() {
		variants = append(variants, sfx,
			strings.ToUpper(sfx[:1])+sfx[1:],
			strings.ToUpper(sfx))
	}
	return reutil.LiteralGroup(variants)
}

// entitySearchRe builds the lazy search pattern used to test whether an NLP
// entity contains one of the literals, keeping any prefix and suffix words.
func entitySearchRe(literals []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(.*?\s+)??\b` + reutil.LiteralGroup(literals) + `\b(\s+.*)?`)
}

// apply records a redaction, ignoring spans another detector already
// claimed.
func apply(doc *document.Context, start, end int, text string, opts document.Options) error {
	if _, err := doc.Redact(start, end, text, opts); err != nil {
		if errors.Is(err, document.ErrOverlap) {
			return nil
		}
		return err
	}
	return nil
}

// scanGroups finds all matches of re, resuming after the given capture group
// rather than the full match so trailing boundary text stays available to
// the next match. Submatch indexes are adjusted to the full text.
func scanGroups(re *regexp.Regexp, text string, resumeGroup int) [][]int {
	var out [][]int
	pos := 0
	for pos <= len(text) {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		adj := make([]int, len(m))
		for i, v := range m {
			if v >= 0 {
				adj[i] = pos + v
			} else {
				adj[i] = -1
			}
		}
		out = append(out, adj)
		next := adj[2*resumeGroup+1]
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return out
}

// redactEntities redacts NLP entities whose text contains one of the search
// literals, preserving any surrounding words of the entity in the
// replacement.
func redactEntities(doc *document.Context, searchRe *regexp.Regexp, placeholder, info string) error {
	ents := doc.Annotations().Entities
	for i := len(ents) - 1; i >= 0; i-- {
		ent := ents[i]
		if ent.Start >= ent.End || !doc.CanRedact(ent.Start, ent.End) {
			continue
		}
		m := searchRe.FindStringSubmatch(ent.Text)
		if m == nil {
			continue
		}
		replacement := m[1] + "[" + placeholder + "]" + m[2]
		if err := apply(doc, ent.Start, ent.End, replacement, document.Options{Info: info}); err != nil {
			return err
		}
	}
	return nil
}

// redactWords redacts tokens that exactly match one of the literals. Exact
// case: these lists carry proper nouns.
func redactWords(doc *document.Context, literals []string, placeholder, info string) error {
	candidates := make(map[string]bool, len(literals))
	for _, l := range literals {
		candidates[l] = true
	}
	replacement := "[" + placeholder + "]"

	toks := doc.Annotations().Tokens
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		if !candidates[tok.Text] || !doc.CanRedact(tok.Start, tok.End) {
			continue
		}
		if err := apply(doc, tok.Start, tok.End, replacement, document.Options{Info: info}); err != nil {
			return err
		}
	}
	return nil
}

// redactNounPhrase redacts matches of a noun-phrase pattern, keeping the
// noun: "black hair" -> "[color] hair".
func redactNounPhrase(doc *document.Context, re *regexp.Regexp, placeholder, info string) error {
	nounIdx := reutil.GroupIndex(re, "noun")
	text := doc.Text()
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		noun := text[m[2*nounIdx]:m[2*nounIdx+1]]
		replacement := "[" + placeholder + "] " + noun
		if err := apply(doc, m[0], m[1], replacement, document.Options{Info: info}); err != nil {
			return err
		}
	}
	return nil
}

func maskSkinColor(doc *document.Context) error {
	return redactNounPhrase(doc, skinColorRe, "race/ethnicity", "skin color")
}

func maskHairColor(doc *document.Context) error {
	return redactNounPhrase(doc, hairColorRe, "color", "hair color")
}

func maskHairStyle(doc *document.Context) error {
	for _, re := range []*regexp.Regexp{hairStyleRe, sensitiveHairRe} {
		text := doc.Text()
		for _, m := range re.FindAllStringIndex(text, -1) {
			if err := apply(doc, m[0], m[1], "[hairstyle] hair",
				document.Options{Info: "hair style"}); err != nil {
				return err
			}
		}
	}
	return nil
}

func maskEyeColor(doc *document.Context) error {
	return redactNounPhrase(doc, eyeColorRe, "color", "eye color")
}

func maskRace(doc *document.Context) error {
	text := doc.Text()
	for _, m := range raceRe.FindAllStringIndex(text, -1) {
		if err := apply(doc, m[0], m[1], "[race/ethnicity]",
			document.Options{Info: "race"}); err != nil {
			return err
		}
	}
	return nil
}

func maskRaceAbbrev(doc *document.Context) error {
	text := doc.Text()
	for _, m := range raceAbbrevRe.FindAllStringSubmatchIndex(text, -1) {
		sex := raceAbbrevSex[text[m[4]:m[5]]]
		age := raceAbbrevAge[text[m[6]:m[7]]]
		replacement := "[race/ethnicity] " + sex + " " + age
		if err := apply(doc, m[0], m[1], replacement,
			document.Options{Info: "race"}); err != nil {
			return err
		}
	}
	return nil
}

func maskRaceCorrelatedFeature(doc *document.Context) error {
	text := doc.Text()
	for _, m := range raceFeatureRe.FindAllStringIndex(text, -1) {
		if err := apply(doc, m[0], m[1], "[physical description]",
			document.Options{Info: "race"}); err != nil {
			return err
		}
	}
	return nil
}

// maskAppearanceList handles list-format descriptions like "Race: Hispanic"
// or "Hair: Black", keeping the field label in the replacement.
func maskAppearanceList(doc *document.Context) error {
	nounIdx := reutil.GroupIndex(appearanceListRe, "noun")
	text := doc.Text()
	for _, m := range appearanceListRe.FindAllStringSubmatchIndex(text, -1) {
		noun := text[m[2*nounIdx]:m[2*nounIdx+1]]
		placeholder, info := "color", "appearance list"
		switch {
		case strings.ToLower(noun) == "race" || strings.ToLower(noun) == "complexion":
			placeholder, info = "race/ethnicity", "race"
		case noun == "eyes":
			info = "eye color"
		case noun == "hair":
			info = "hair color"
		}
		replacement := noun + ": [" + placeholder + "]"
		if err := apply(doc, m[0], m[1], replacement, document.Options{Info: info}); err != nil {
			return err
		}
	}
	return nil
}

func maskStreetAddress(doc *document.Context) error {
	text := doc.Text()
	for _, m := range scanGroups(streetAddressRe, text, 1) {
		if badAddressRe.MatchString(text[m[2]:m[3]]) {
			continue
		}
		replacement := "[location] " + text[m[4]:m[5]]
		if err := apply(doc, m[2], m[3], replacement,
			document.Options{Info: "street address"}); err != nil {
			return err
		}
	}
	return nil
}

func maskDistrict(doc *document.Context, loc *locale.Locale) error {
	re := loc.DistrictMatcher()
	if re == nil {
		return nil
	}
	sfxIdx := reutil.GroupIndex(re, "sfx")
	text := doc.Text()
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		sfx := strings.ToLower(text[m[2*sfxIdx]:m[2*sfxIdx+1]])
		replacement := "[district]"
		// "[district] district" would be redundant.
		if sfx != "district" {
			replacement += " " + sfx
		}
		if err := apply(doc, m[0], m[1], replacement,
			document.Options{Info: "district name"}); err != nil {
			return err
		}
	}
	return nil
}

func maskKnownStreetName(doc *document.Context, loc *locale.Locale) error {
	re := loc.IntersectionMatcher()
	if re == nil {
		return nil
	}
	conjIdx := reutil.GroupIndex(re, "conj")
	text := doc.Text()
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		conj := text[m[2*conjIdx]:m[2*conjIdx+1]]
		replacement := "[street]" + conj + "[street]"
		if err := apply(doc, m[0], m[1], replacement,
			document.Options{Info: "known street name"}); err != nil {
			return err
		}
	}
	return nil
}

func maskPresumedStreetName(doc *document.Context) error {
	text := doc.Text()
	for _, m := range scanGroups(presumedStreetRe, text, 1) {
		if badStreetRe.MatchString(text[m[2]:m[3]]) {
			continue
		}
		replacement := "[street] " + text[m[4]:m[5]]
		if err := apply(doc, m[2], m[3], replacement,
			document.Options{Info: "presumed street name"}); err != nil {
			return err
		}
	}
	return nil
}

func maskNeighborhood(doc *document.Context, loc *locale.Locale) error {
	if len(loc.Neighborhoods) == 0 {
		return nil
	}
	return redactEntities(doc, entitySearchRe(loc.Neighborhoods), "neighborhood", "neighborhood")
}

func maskCountry(doc *document.Context) error {
	if err := redactEntities(doc, countrySearchRe, "country", "country"); err != nil {
		return err
	}
	return redactWords(doc, vocab.Countries, "country", "country")
}

func maskLanguage(doc *document.Context) error {
	if err := redactEntities(doc, languageSearchRe, "language", "language"); err != nil {
		return err
	}
	return redactWords(doc, vocab.Languages, "language", "language")
}

func maskNationality(doc *document.Context) error {
	if err := redactEntities(doc, nationalitySearchRe, "nationality/ethnicity", "nationality"); err != nil {
		return err
	}
	return redactWords(doc, vocab.Nationalities, "nationality/ethnicity", "nationality")
}

// maskOtherLiterals redacts caller-supplied literal phrases, each list
// replaced by its key: {"stadium": [...]} -> "[stadium]".
func maskOtherLiterals(doc *document.Context, literals map[string][]string) error {
	keys := make([]string, 0, len(literals))
	for k := range literals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if len(literals[key]) == 0 {
			continue
		}
		re, err := regexp.Compile(`(?i)` + reutil.LiteralGroup(literals[key]))
		if err != nil {
			return err
		}
		text := doc.Text()
		for _, m := range re.FindAllStringIndex(text, -1) {
			if err := apply(doc, m[0], m[1], "["+key+"]",
				document.Options{Info: key}); err != nil {
				return err
			}
		}
	}
	return nil
}

// addSurfaceSigns maps each surface pattern to the labels of everyone it
// could refer to. "J. Smith" may be ambiguous between two people.
func addSurfaceSigns(signs map[string]map[string]bool, patterns []string, label string) {
	for _, p := range patterns {
		if signs[p] == nil {
			signs[p] = make(map[string]bool)
		}
		signs[p][label] = true
	}
}

// maskPerson redacts every surface form in signs, longest pattern first so
// full names are claimed before bare surnames. Ambiguous forms list every
// candidate: "(S1 or V1)", "Officer #1 or Officer #2".
func maskPerson(doc *document.Context, signs map[string]map[string]bool, info string) error {
	ordered := make([]string, 0, len(signs))
	for p := range signs {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	for _, sig := range ordered {
		re, err := regexp.Compile(`(?i)` + sig)
		if err != nil {
			return err
		}
		labels := make([]string, 0, len(signs[sig]))
		for l := range signs[sig] {
			labels = append(labels, l)
		}
		sort.Strings(labels)

		var codename string
		if info == "officer" {
			codename = strings.Join(labels, " or ")
		} else {
			// "(PERSON_1 or PERSON_2)" rather than "(PERSON_1) or
			// (PERSON_2)".
			stripped := make([]string, 0, len(labels))
			for _, l := range labels {
				stripped = append(stripped, parenStrip.Replace(l))
			}
			codename = "(" + strings.Join(stripped, " or ") + ")"
		}

		text := doc.Text()
		for _, m := range re.FindAllStringIndex(text, -1) {
			start, end := m[0], m[1]
			replacement := codename
			// Terminal-apostrophe possessive, as in "Moses' coat": the
			// redaction synthetically adds the 's.
			if cur := doc.Text(); end+2 <= len(cur) && cur[end:end+2] == "' " {
				replacement = codename + "'s"
				end++
			}
			if err := apply(doc, start, end, replacement, document.Options{
				Info:                info,
				NoAutoCapitalize:    true,
				NoArticleCorrection: true,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// maskPersonFuzzy redacts proper-noun tokens within one edit of a known
// person's first or last name, catching misspellings like "Zalvala" for
// "Zavala".
func maskPersonFuzzy(doc *document.Context, persons []*identity.Civilian, info string) error {
	const minTokenLen = 5

	for _, tok := range doc.Annotations().Tokens {
		if !tok.IsProperNoun() || len(tok.Text) <= minTokenLen {
			continue
		}
		if !doc.CanRedact(tok.Start, tok.End) {
			continue
		}
		upper := strings.ToUpper(tok.Text)

		var labels []string
		for _, p := range persons {
			if fuzzyNameHit(p, upper) {
				labels = append(labels, parenStrip.Replace(p.CodeName))
			}
		}
		if len(labels) == 0 {
			continue
		}
		replacement := "(" + strings.Join(labels, " or ") + ")"
		if err := apply(doc, tok.Start, tok.End, replacement, document.Options{
			Info:                info,
			NoAutoCapitalize:    true,
			NoArticleCorrection: true,
		}); err != nil {
			return err
		}
	}
	return nil
}

func fuzzyNameHit(p *identity.Civilian, upper string) bool {
	for f := range p.First {
		for l := range p.Last {
			if f+" "+l == upper {
				return true
			}
		}
	}
	for l := range p.Last {
		if textdist.Distance(l, upper) <= 1 {
			return true
		}
	}
	for f := range p.First {
		if textdist.Distance(f, upper) <= 1 {
			return true
		}
	}
	return false
}

// Mask runs every detector against the narrative in priority order and
// returns the raw, unmerged redactions.
func Mask(loc *locale.Locale, narrative string, ann *nlp.Annotations,
	persons []*identity.Civilian, officers []*identity.Officer,
	literals map[string][]string) ([]annotation.Redaction, error) {

	doc := document.New(narrative, ann)

	officerSigns := make(map[string]map[string]bool)
	for _, o := range officers {
		addSurfaceSigns(officerSigns, o.SurfacePatterns(), o.CodeName)
	}
	personSigns := make(map[string]map[string]bool)
	for _, p := range persons {
		addSurfaceSigns(personSigns, p.SurfacePatterns(), p.CodeName)
	}

	steps := []func() error{
		func() error { return maskPerson(doc, officerSigns, "officer") },
		func() error { return maskPerson(doc, personSigns, "person") },
		func() error { return maskStreetAddress(doc) },
		func() error { return maskDistrict(doc, loc) },
		func() error { return maskKnownStreetName(doc, loc) },
		func() error { return maskPresumedStreetName(doc) },
		func() error { return maskNeighborhood(doc, loc) },
		func() error { return maskSkinColor(doc) },
		func() error { return maskHairStyle(doc) },
		func() error { return maskHairColor(doc) },
		func() error { return maskEyeColor(doc) },
		func() error { return maskAppearanceList(doc) },
		func() error { return maskRaceAbbrev(doc) },
		func() error { return maskRace(doc) },
		func() error { return maskRaceCorrelatedFeature(doc) },
		func() error { return maskCountry(doc) },
		func() error { return maskLanguage(doc) },
		func() error { return maskNationality(doc) },
		func() error { return maskPersonFuzzy(doc, persons, "person") },
		func() error { return maskOtherLiterals(doc, literals) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return doc.Redactions(), nil
}
