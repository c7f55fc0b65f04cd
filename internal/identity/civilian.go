// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"blind-redact/internal/locale"
	"blind-redact/internal/nlp"
	"blind-redact/internal/textdist"
)

// Review-UI colors cycled across masked persons.
var webColors = []string{
	"maroon", "red", "orange", "olive", "green", "purple",
	"fuchsia", "lime", "teal", "aqua", "blue", "navy",
}

// CivilianRecord is the roster form of a civilian reference. Empty strings
// mean the field is absent.
type CivilianRecord struct {
	Indicator   string `json:"indicator,omitempty"`
	ReportID    int    `json:"report_id,omitempty"`
	Name        string `json:"name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Alias       string `json:"alias,omitempty"`
	CaseNumber  string `json:"case_number,omitempty"`
	CourtNumber string `json:"court_number,omitempty"`
	CustomLabel string `json:"custom_label,omitempty"`
}

// Triplet identifies one roster mention of a person within a report.
type Triplet struct {
	ReportID int
	PType    string
	PNum     string
}

// Civilian is a reference to a civilian mentioned in a report.
type Civilian struct {
	args CivilianRecord

	// Indicator is the normalized indicator ("RV1"), or empty.
	Indicator   string
	CustomLabel string
	CaseNumber  string
	CourtNumber string
	Triplets    map[Triplet]bool

	First  map[string]bool
	Middle map[string]bool
	Last   map[string]bool
	Alias  map[string]bool

	// Assigned during dedupe.
	CodeName     string
	FullCodeName string
	Class        string
	Color        string

	unknown bool
}

var (
	nonUpperRe  = regexp.MustCompile(`[^A-Z]+`)
	nonDigitRe  = regexp.MustCompile(`[^0-9]+`)
	loneSymbol  = regexp.MustCompile(`^\W$`)
	hyphenName  = regexp.MustCompile(`^\w+-\w+`)
	spacedName  = regexp.MustCompile(`^\w+\s\w+`)
	anySpaceRe  = regexp.MustCompile(`\s`)
	indicLetter = regexp.MustCompile(`[A-Za-z]`)
)

// NewCivilian builds a civilian reference from a roster record.
func NewCivilian(rec CivilianRecord) *Civilian {
	ptype := nonUpperRe.ReplaceAllString(rec.Indicator, "")
	pnum := nonDigitRe.ReplaceAllString(rec.Indicator, "")

	c := &Civilian{
		args:        rec,
		CustomLabel: rec.CustomLabel,
		CaseNumber:  rec.CaseNumber,
		CourtNumber: rec.CourtNumber,
		Triplets:    map[Triplet]bool{{ReportID: rec.ReportID, PType: ptype, PNum: pnum}: true},
		First:       newSet(),
		Middle:      newSet(),
		Last:        newSet(),
		Alias:       newSet(),
	}
	if ptype != "" && pnum != "" {
		c.Indicator = ptype + pnum
	}
	if rec.Alias != "" {
		c.Alias[strings.ToUpper(rec.Alias)] = true
	}

	switch {
	case rec.Name != "":
		c.parseName(rec.Name)
		c.Last = addCompoundNameParts(c.Last)
	case rec.FirstName != "" || rec.MiddleName != "" || rec.LastName != "":
		c.parseFullName(rec.FirstName, rec.MiddleName, rec.LastName)
	}

	c.unknown = strings.EqualFold(rec.FirstName, "unknown") ||
		strings.EqualFold(rec.MiddleName, "unknown") ||
		strings.EqualFold(rec.LastName, "unknown")

	return c
}

// Args returns the record this reference was constructed from, so that
// NewCivilian(c.Args()) reproduces an equal reference.
func (c *Civilian) Args() CivilianRecord { return c.args }

// IsUnknown reports whether the roster marked any name part UNKNOWN.
func (c *Civilian) IsUnknown() bool { return c.unknown }

// IsChargeable reports whether this person's conduct is under charging
// review: anyone with an external case number or booked/suspect roles.
func (c *Civilian) IsChargeable() bool {
	if c.CaseNumber != "" {
		return true
	}
	for t := range c.Triplets {
		switch t.PType {
		case "B", "C", "D", "S":
			return true
		}
	}
	return false
}

// addCompoundNameParts expands hyphenated and spaced surnames into their
// parts plus joined variants, so "CHOHLAS-WOOD" also matches "CHOHLAS WOOD"
// and "CHOHLASWOOD".
func addCompoundNameParts(names map[string]bool) map[string]bool {
	out := make(map[string]bool, len(names))
	unionInto(out, names)
	for name := range names {
		if hyphenName.MatchString(name) {
			for _, part := range strings.Split(name, "-") {
				if part != "" {
					out[part] = true
				}
			}
			out[strings.ReplaceAll(name, "-", "")] = true
			out[strings.ReplaceAll(name, "-", " ")] = true
		}
		if spacedName.MatchString(name) {
			for _, part := range strings.Fields(name) {
				out[part] = true
			}
			out[anySpaceRe.ReplaceAllString(name, "")] = true
			out[anySpaceRe.ReplaceAllString(name, "-")] = true
		}
	}
	return out
}

func (c *Civilian) parseFullName(first, middle, last string) {
	clean := func(s string) string {
		return strings.ToUpper(strings.Trim(strings.TrimSpace(s), "."))
	}
	if f := clean(first); f != "" {
		c.First[f] = true
		for _, p := range strings.Fields(f) {
			c.First[p] = true
		}
	}
	if m := clean(middle); m != "" {
		c.Middle[m] = true
	}
	if l := clean(last); l != "" {
		c.Last[l] = true
		for _, p := range strings.Fields(l) {
			c.Last[p] = true
		}
	}
}

func (c *Civilian) parseName(name string) {
	var parts []string
	for _, p := range strings.Fields(name) {
		p = strings.ToUpper(strings.Trim(strings.TrimSpace(p), "."))
		if p == "" || nlp.IsStopWord(p) || loneSymbol.MatchString(p) {
			continue
		}
		parts = append(parts, p)
	}

	switch len(parts) {
	case 0:
	case 1:
		c.Last[parts[0]] = true
	case 2:
		switch {
		case strings.HasSuffix(parts[0], ","):
			// last, first
			c.Last[strings.Trim(parts[0], ",")] = true
			c.First[parts[1]] = true
		case len(parts[1]) == 1 || (len(parts[1]) == 2 && parts[1][1] == '.'):
			// last f
			c.Last[parts[0]] = true
			c.First[parts[1]] = true
		default:
			// first last
			c.First[parts[0]] = true
			c.Last[parts[1]] = true
		}
	case 3:
		switch {
		case strings.HasSuffix(parts[0], ","):
			// last, first middle
			c.Last[strings.Trim(parts[0], ",")] = true
			c.First[parts[1]] = true
			c.Middle[parts[2]] = true
		case strings.HasSuffix(parts[1], ","):
			// last last, first
			c.Last[parts[0]+" "+strings.Trim(parts[1], ",")] = true
			c.First[parts[2]] = true
		default:
			// first middle last
			c.First[parts[0]] = true
			c.Middle[parts[1]] = true
			c.Last[parts[2]] = true
		}
	default:
		// Four or more tokens is likely an erroneous parse; treat the
		// whole thing as a surname, splitting on a comma if present.
		formatted := strings.ToUpper(strings.Trim(strings.TrimSpace(name), "."))
		last := formatted
		first := ""
		if idx := strings.Index(formatted, ","); idx >= 0 {
			last = strings.TrimSpace(formatted[:idx])
			first = strings.TrimSpace(formatted[idx+1:])
		}
		c.Last[last] = true
		for _, p := range strings.Fields(last) {
			c.Last[p] = true
		}
		if first != "" {
			c.First[first] = true
			for _, p := range strings.Fields(first) {
				c.First[p] = true
			}
		}
	}

	delete(c.First, "")
	delete(c.Middle, "")
	delete(c.Last, "")
}

// nameMatch reports whether two name sets share a name within maxDist edits.
func nameMatch(s1, s2 map[string]bool, maxDist int) bool {
	if maxDist == 0 {
		return intersects(s1, s2)
	}
	for a := range s1 {
		for b := range s2 {
			if textdist.Distance(a, b) <= maxDist {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two references describe the same person.
func (c *Civilian) Equal(other *Civilian) bool {
	// A shared court number or case number settles it either way.
	if c.CourtNumber != "" && other.CourtNumber != "" {
		return c.CourtNumber == other.CourtNumber
	}
	if c.CaseNumber != "" && other.CaseNumber != "" {
		return c.CaseNumber == other.CaseNumber
	}

	if nameMatch(c.Last, other.Last, 1) {
		if len(c.First) > 0 && len(other.First) > 0 {
			if nameMatch(c.First, other.First, 1) {
				return true
			}
		} else {
			// No first name on one side: the surname match suffices.
			return true
		}
	}

	if intersects(c.Alias, other.Alias) {
		return true
	}

	// Match a real name (not an initial) against the other's aliases.
	aliasHit := func(names, aliases map[string]bool) bool {
		for name := range names {
			if len(strings.Trim(name, ".")) > 1 && aliases[name] {
				return true
			}
		}
		return false
	}
	if aliasHit(union(other.Last, other.First), c.Alias) {
		return true
	}
	if aliasHit(union(c.Last, c.First), other.Alias) {
		return true
	}

	// Nameless references match on their roster triplets.
	if (len(c.Last) == 0 && len(c.First) == 0) || (len(other.Last) == 0 && len(other.First) == 0) {
		if tripletsEqual(c.Triplets, other.Triplets) {
			return true
		}
	}

	return false
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	unionInto(out, a)
	unionInto(out, b)
	return out
}

func tripletsEqual(a, b map[Triplet]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for t := range a {
		if !b[t] {
			return false
		}
	}
	return true
}

// Merge folds another reference to the same person into this one.
func (c *Civilian) Merge(other *Civilian) error {
	if !c.Equal(other) {
		return ErrIdentityConflict
	}
	if c.CaseNumber == "" {
		c.CaseNumber = other.CaseNumber
	}
	for t := range other.Triplets {
		c.Triplets[t] = true
	}
	unionInto(c.First, other.First)
	unionInto(c.Middle, other.Middle)
	unionInto(c.Last, other.Last)
	unionInto(c.Alias, other.Alias)
	return nil
}

// SurfacePatterns returns regex surface forms for this person, longest
// first. Patterns cover name permutations, initials, comma-reversed forms,
// and indicator variants with and without slash expansion.
func (c *Civilian) SurfacePatterns() []string {
	reps := make(map[string]bool)

	lasts := escapeAll(sortedKeys(c.Last))
	firsts := escapeAll(sortedKeys(c.First))
	middles := escapeAll(sortedKeys(c.Middle))

	for _, last := range lasts {
		reps[last] = true
	}
	for _, f := range firsts {
		reps[f] = true
	}

	for _, last := range lasts {
		for _, f := range firsts {
			fi := f[:1]
			reps[f+`\s+`+last] = true          // first last
			reps[fi+`\s+`+last] = true         // f last
			reps[fi+`\.`+last] = true          // f.last
			reps[fi+`\.\s+`+last] = true       // f. last
			reps[last+`\s*,\s+`+f] = true      // last, first
			reps[last+`\s+`+fi] = true         // last f
			reps[last+`\s+`+fi+`\.`] = true    // last f.
			reps[last+`\s*,\s+`+fi] = true     // last, f
			reps[last+`\s*,\s+`+fi+`\.`] = true // last, f.
			reps[last+`\s+`+f] = true          // reversed input
		}
	}

	for _, f := range firsts {
		for _, m := range middles {
			mi := m[:1]
			for _, last := range lasts {
				reps[f+`\s+`+m+`\s+`+last] = true
				reps[f+`\s+`+mi+`\s+`+last] = true
				reps[f+`\s+`+mi+`\.\s+`+last] = true
				reps[last+`\s*,\s+`+f+`\s+`+m] = true
				reps[last+`\s*,\s+`+f+`\s+`+mi] = true
				reps[last+`\s*,\s+`+f+`\s+`+mi+`\.`] = true
				reps[m+`\s+`+last] = true
			}
		}
	}

	bounded := make(map[string]bool, len(reps))
	for r := range reps {
		bounded[r+`\b`] = true
	}

	indicators := make(map[string]bool)
	indicatorReps := make(map[string]bool)
	if c.Indicator != "" {
		esc := regexp.QuoteMeta(c.Indicator)
		slashAll := expandSlashes(esc, false)  // R/V/1
		slashMid := expandSlashes(esc, true)   // R/V1
		for _, base := range []string{esc, slashAll, slashMid} {
			indicators[`\W`+base] = true
			indicators[`\(`+base+`\)`] = true
		}
		for ind := range indicators {
			for rep := range bounded {
				indicatorReps[ind+`\s*`+rep] = true
				indicatorReps[rep+`\s*`+ind] = true
			}
		}
	}

	all := make([]string, 0, len(bounded)+len(indicators)+len(indicatorReps))
	for r := range bounded {
		all = append(all, `\b`+r)
	}
	for r := range indicators {
		all = append(all, r)
	}
	for r := range indicatorReps {
		all = append(all, r)
	}

	return byPatternLength(cleanPatterns(all))
}

// expandSlashes inserts "/" after letters: R/V/1 form, or R/V1 when
// midOnly restricts insertion to letters followed by another letter.
func expandSlashes(s string, midOnly bool) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		b.WriteRune(r)
		if indicLetter.MatchString(string(r)) {
			if !midOnly || (i+1 < len(runes) && indicLetter.MatchString(string(runes[i+1]))) {
				b.WriteByte('/')
			}
		}
	}
	return b.String()
}

func escapeAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, regexp.QuoteMeta(it))
	}
	return out
}

// DedupeCivilians merges duplicate references and assigns display labels:
// per-role counters build code names like "(RV1 / V1)", custom labels win
// outright, and persons without a role get "PERSON_n".
func DedupeCivilians(persons []*Civilian, loc *locale.Locale) ([]*Civilian, error) {
	out, err := dedupe(persons,
		func(a, b *Civilian) bool { return a.Equal(b) },
		func(a, b *Civilian) error { return a.Merge(b) })
	if err != nil {
		return nil, err
	}

	typeCounts := make(map[string]int)
	for i, p := range out {
		if p.IsChargeable() {
			p.Class = "masked-suspect"
		} else {
			p.Class = "masked-person"
		}
		p.Color = webColors[i%len(webColors)]

		if p.CustomLabel != "" {
			p.CodeName = p.CustomLabel
			p.FullCodeName = p.CustomLabel
			continue
		}

		var codeParts, fullParts []string
		for _, ptype := range sortedPTypes(p.Triplets) {
			cname := loc.RoleLabel(ptype)
			typeCounts[cname]++
			codeParts = append(codeParts, ptype+strconv.Itoa(typeCounts[cname]))
			fullParts = append(fullParts, cname+" "+strconv.Itoa(typeCounts[cname]))
		}
		if len(codeParts) == 0 {
			cname := loc.RoleLabel("")
			typeCounts[cname]++
			codeParts = append(codeParts, "PERSON_"+strconv.Itoa(typeCounts[cname]))
			fullParts = append(fullParts, cname+" "+strconv.Itoa(typeCounts[cname]))
		}

		sort.Strings(codeParts)
		sort.Strings(fullParts)
		p.CodeName = "(" + strings.Join(codeParts, " / ") + ")"
		p.FullCodeName = strings.Join(fullParts, " / ")
	}

	return out, nil
}

// sortedPTypes returns the distinct non-empty role types in the triplets.
func sortedPTypes(triplets map[Triplet]bool) []string {
	seen := make(map[string]bool)
	for t := range triplets {
		if t.PType != "" {
			seen[t.PType] = true
		}
	}
	return sortedKeys(seen)
}

