// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package locale

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	if _, err := Get("Suffix County"); err != nil {
		t.Fatalf("Get(Suffix County): %v", err)
	}
	if _, err := Get("suffix county"); err != nil {
		t.Errorf("lookup should be case-insensitive: %v", err)
	}

	var nf *NotFoundError
	if _, err := Get("Atlantis"); !errors.As(err, &nf) {
		t.Errorf("Get(Atlantis) = %v, want NotFoundError", err)
	}
}

func TestRoleLabel(t *testing.T) {
	loc, err := Get("Suffix County")
	if err != nil {
		t.Fatal(err)
	}
	if got := loc.RoleLabel("RV"); got != "Reporting Victim" {
		t.Errorf("RoleLabel(RV) = %q", got)
	}
	if got := loc.RoleLabel("X"); got != "Person" {
		t.Errorf("RoleLabel(X) = %q, want default", got)
	}
}

func TestAllowsName(t *testing.T) {
	loc, err := Get("Suffix County")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		want bool
	}{
		{"Chohlas-Wood, Alex", true},
		{"Walmart", true},
		{"", false},
		{"  ", false},
		{"N/A", false},
		{"na", false},
		{"None", false},
		{"missing", false},
		{"City of Suffix", false},
		{"State Of California", false},
	}
	for _, tc := range cases {
		if got := loc.AllowsName(tc.name); got != tc.want {
			t.Errorf("AllowsName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDistrictMatcher(t *testing.T) {
	loc, err := Get("Suffix County")
	if err != nil {
		t.Fatal(err)
	}
	re := loc.DistrictMatcher()
	if re == nil {
		t.Fatal("no district matcher compiled")
	}
	if !re.MatchString("booked at Central Station") {
		t.Error("Central Station should match")
	}
	if !re.MatchString("the university district officers") {
		t.Error("university district should match case-insensitively")
	}
	if re.MatchString("the central business corridor") {
		t.Error("district name without a suffix word should not match")
	}
}

func TestIntersectionMatcher(t *testing.T) {
	loc, err := Get("Suffix County")
	if err != nil {
		t.Fatal(err)
	}
	re := loc.IntersectionMatcher()
	if re == nil {
		t.Fatal("no intersection matcher compiled")
	}
	for _, s := range []string{
		"Lilac Drive and Cowpen Blvd",
		"Ocean and Hill",
		"First Street and A Street",
		"20th/Oak",
	} {
		if !re.MatchString(s) {
			t.Errorf("%q should match the intersection pattern", s)
		}
	}
	if re.MatchString("Lilac Drive near the park") {
		t.Error("a single street is not an intersection")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locales.yaml")
	doc := `locales:
  - name: Testville
    districts: [Harbor]
    street_names: ["MAIN ST"]
    neighborhoods: [Dockside]
    excluded_names: ["city of .*"]
    indicators:
      V: Victim
      S: Suspect
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	names, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(names) != 1 || names[0] != "Testville" {
		t.Fatalf("names = %v", names)
	}
	loc, err := Get("testville")
	if err != nil {
		t.Fatal(err)
	}
	if loc.RoleLabel("V") != "Victim" {
		t.Errorf("RoleLabel(V) = %q", loc.RoleLabel("V"))
	}
	if !loc.IntersectionMatcher().MatchString("Main St and Main St") {
		t.Error("configured street should compile into the matcher")
	}
}
