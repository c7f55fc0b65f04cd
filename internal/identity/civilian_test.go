// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"errors"
	"testing"

	"blind-redact/internal/locale"
)

func newTestCivilian(t *testing.T, rec CivilianRecord) *Civilian {
	t.Helper()
	return NewCivilian(rec)
}

func suffixCounty(t *testing.T) *locale.Locale {
	t.Helper()
	loc, err := locale.Get("Suffix County")
	if err != nil {
		t.Fatalf("Get(Suffix County): %v", err)
	}
	return loc
}

func TestParseNameCommaReversed(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Indicator: "B", Name: "Smith, John"})
	if !c.Last["SMITH"] || !c.First["JOHN"] {
		t.Errorf("parse = first %v last %v, want JOHN / SMITH", c.First, c.Last)
	}
}

func TestParseNameFirstMiddleLast(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: "Anne G. Smith"})
	if !c.First["ANNE"] || !c.Middle["G"] || !c.Last["SMITH"] {
		t.Errorf("parse = %v %v %v, want ANNE G SMITH", c.First, c.Middle, c.Last)
	}
}

func TestParseNameLastCommaFirstMiddle(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: "Doe, John Jr."})
	if !c.Last["DOE"] || !c.First["JOHN"] || !c.Middle["JR"] {
		t.Errorf("parse = %v %v %v, want DOE JOHN JR", c.First, c.Middle, c.Last)
	}
}

func TestParseNameSingleToken(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: "Walmart"})
	if !c.Last["WALMART"] || len(c.First) != 0 {
		t.Errorf("parse = first %v last %v, want surname WALMART only", c.First, c.Last)
	}
}

func TestParseNameMissingSurnameComma(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: ", Walmart"})
	if !c.Last["WALMART"] {
		t.Errorf("parse = %v, want lone comma dropped", c.Last)
	}
}

func TestParseNameCompoundSurname(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: "Garcia-Hernandez, David"})
	for _, want := range []string{"GARCIA-HERNANDEZ", "GARCIA", "HERNANDEZ", "GARCIAHERNANDEZ", "GARCIA HERNANDEZ"} {
		if !c.Last[want] {
			t.Errorf("Last missing %q: %v", want, c.Last)
		}
	}
}

func TestParseNameLongSurname(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Name: "de la Cruz, David"})
	for _, want := range []string{"DE LA CRUZ", "CRUZ", "DELACRUZ"} {
		if !c.Last[want] {
			t.Errorf("Last missing %q: %v", want, c.Last)
		}
	}
	if !c.First["DAVID"] {
		t.Errorf("First = %v, want DAVID", c.First)
	}
}

func TestIndicatorNormalization(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(B1)", "B1"},
		{"R/V1", "RV1"},
		{"S-1", "S1"},
		{"B12", "B12"},
		{"S", ""}, // no number, no combined indicator
	}
	for _, tc := range cases {
		c := newTestCivilian(t, CivilianRecord{Indicator: tc.in})
		if c.Indicator != tc.want {
			t.Errorf("NewCivilian(%q).Indicator = %q, want %q", tc.in, c.Indicator, tc.want)
		}
	}
}

func TestEqualFuzzyLastName(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Indicator: "S", Name: "Zavala, Jose"})
	b := newTestCivilian(t, CivilianRecord{Name: "Zalvala, Jose"})
	if !a.Equal(b) {
		t.Error("one-edit surname variants should be equal")
	}
}

func TestEqualFirstNameMustAgree(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Name: "Smith, Rachel"})
	b := newTestCivilian(t, CivilianRecord{Name: "Smith, Thomas"})
	if a.Equal(b) {
		t.Error("same surname with different first names should not be equal")
	}
}

func TestEqualLastNameOnlySuffices(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Name: "Smith, Rachel"})
	b := newTestCivilian(t, CivilianRecord{Name: "Smith"})
	if !a.Equal(b) {
		t.Error("surname-only reference should match the full record")
	}
}

func TestEqualCourtNumberDominates(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Name: "Smith, John", CourtNumber: "111"})
	b := newTestCivilian(t, CivilianRecord{Name: "Smith, John", CourtNumber: "222"})
	if a.Equal(b) {
		t.Error("conflicting court numbers must disprove identity")
	}
}

func TestEqualAliasIntersection(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Name: "Smith, John", Alias: "Slim"})
	b := newTestCivilian(t, CivilianRecord{Name: "Jones, Robert", Alias: "Slim"})
	if !a.Equal(b) {
		t.Error("shared alias should prove identity")
	}
}

func TestEqualNamelessUsesTriplets(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Indicator: "(B1)", ReportID: 7})
	b := newTestCivilian(t, CivilianRecord{Indicator: "(B1)", ReportID: 7, Name: "Smith, John"})
	if !a.Equal(b) {
		t.Error("nameless reference should match on triplet")
	}
	c := newTestCivilian(t, CivilianRecord{Indicator: "(B2)", ReportID: 7})
	if c.Equal(b) {
		t.Error("different triplets should not match")
	}
}

func TestMergeConflict(t *testing.T) {
	a := newTestCivilian(t, CivilianRecord{Name: "Smith, John"})
	b := newTestCivilian(t, CivilianRecord{Name: "Jones, Robert"})
	if err := a.Merge(b); !errors.Is(err, ErrIdentityConflict) {
		t.Fatalf("Merge() error = %v, want ErrIdentityConflict", err)
	}
}

func TestArgsRoundTrip(t *testing.T) {
	rec := CivilianRecord{Indicator: "(R/V1)", ReportID: 3, Name: "Garcia-Hernandez, David"}
	c := newTestCivilian(t, rec)
	again := NewCivilian(c.Args())
	if !c.Equal(again) || again.Indicator != c.Indicator {
		t.Errorf("round trip changed reference: %+v vs %+v", c, again)
	}
}

func TestSurfacePatternsCoverNameForms(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Indicator: "(B1)", Name: "Smith, John"})
	pats := c.SurfacePatterns()
	want := map[string]bool{
		`\bSMITH\b`:            false,
		`\bJOHN\s+SMITH\b`:     false,
		`\bSMITH\s*,\s+JOHN\b`: false,
		`\bJ\.\s+SMITH\b`:      false,
	}
	for _, p := range pats {
		if _, ok := want[p]; ok {
			want[p] = true
		}
	}
	for p, seen := range want {
		if !seen {
			t.Errorf("SurfacePatterns() missing %q", p)
		}
	}
	for i := 1; i < len(pats); i++ {
		if len(pats[i-1]) < len(pats[i]) {
			t.Fatalf("patterns not longest-first at %d: %q then %q", i, pats[i-1], pats[i])
		}
	}
}

func TestSurfacePatternsIndicatorVariants(t *testing.T) {
	c := newTestCivilian(t, CivilianRecord{Indicator: "(R/V1)", Name: "Smith, John"})
	pats := c.SurfacePatterns()
	found := false
	for _, p := range pats {
		if p == `\(R/V1\)` {
			found = true
		}
	}
	if !found {
		t.Errorf("SurfacePatterns() missing parenthesized slash indicator form")
	}
}

func TestDedupeCiviliansLabels(t *testing.T) {
	loc := suffixCounty(t)
	persons := []*Civilian{
		newTestCivilian(t, CivilianRecord{Indicator: "W", Name: "Talesfore, Susan J"}),
		newTestCivilian(t, CivilianRecord{Indicator: "W", Name: "Bassell, Taylor Marie"}),
	}
	// Roster indicators without numbers merge with numbered text mentions.
	persons[0].Triplets[Triplet{PType: "W", PNum: "1"}] = true
	persons[1].Triplets[Triplet{PType: "W", PNum: "2"}] = true

	out, err := DedupeCivilians(persons, loc)
	if err != nil {
		t.Fatalf("DedupeCivilians: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("DedupeCivilians() = %d persons, want 2", len(out))
	}
	if out[0].CodeName != "(W1)" || out[1].CodeName != "(W2)" {
		t.Errorf("code names = %q, %q, want (W1), (W2)", out[0].CodeName, out[1].CodeName)
	}
}

func TestDedupeCiviliansMergesAcrossIndicators(t *testing.T) {
	loc := suffixCounty(t)
	persons := []*Civilian{
		newTestCivilian(t, CivilianRecord{Indicator: "(R/V1)", Name: "Smith, John"}),
		newTestCivilian(t, CivilianRecord{Indicator: "V1", Name: "Smith, John"}),
	}
	out, err := DedupeCivilians(persons, loc)
	if err != nil {
		t.Fatalf("DedupeCivilians: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("DedupeCivilians() = %d persons, want merged 1", len(out))
	}
	if out[0].CodeName != "(RV1 / V1)" {
		t.Errorf("code name = %q, want (RV1 / V1)", out[0].CodeName)
	}
}

func TestDedupeCiviliansFallbackLabel(t *testing.T) {
	loc := suffixCounty(t)
	out, err := DedupeCivilians([]*Civilian{
		newTestCivilian(t, CivilianRecord{Name: "Chohlas-Wood, Alex"}),
	}, loc)
	if err != nil {
		t.Fatalf("DedupeCivilians: %v", err)
	}
	if out[0].CodeName != "(PERSON_1)" {
		t.Errorf("code name = %q, want (PERSON_1)", out[0].CodeName)
	}
}

func TestDedupeCiviliansCustomLabel(t *testing.T) {
	loc := suffixCounty(t)
	out, err := DedupeCivilians([]*Civilian{
		newTestCivilian(t, CivilianRecord{Indicator: "M", Name: "Chohlas-Wood, Alex", CustomLabel: "Artist 42"}),
		newTestCivilian(t, CivilianRecord{Indicator: "V", Name: "Yao, Keniel", CustomLabel: "Artist 42"}),
	}, loc)
	if err != nil {
		t.Fatalf("DedupeCivilians: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("custom labels must not force a merge: %v", out)
	}
	for _, p := range out {
		if p.CodeName != "Artist 42" {
			t.Errorf("code name = %q, want Artist 42", p.CodeName)
		}
	}
}

func TestDedupeCiviliansClass(t *testing.T) {
	loc := suffixCounty(t)
	out, err := DedupeCivilians([]*Civilian{
		newTestCivilian(t, CivilianRecord{Indicator: "S1", Name: "Smith, John"}),
		newTestCivilian(t, CivilianRecord{Indicator: "V1", Name: "Jones, Mary"}),
	}, loc)
	if err != nil {
		t.Fatalf("DedupeCivilians: %v", err)
	}
	if out[0].Class != "masked-suspect" {
		t.Errorf("suspect class = %q, want masked-suspect", out[0].Class)
	}
	if out[1].Class != "masked-person" {
		t.Errorf("victim class = %q, want masked-person", out[1].Class)
	}
}
