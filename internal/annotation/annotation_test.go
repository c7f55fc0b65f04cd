// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package annotation

import (
	"encoding/json"
	"testing"
)

func TestMergeAdjacentPersonRedactions(t *testing.T) {
	narrative := "I saw John Smith leave."
	// "John" and "Smith" masked separately with the same code name.
	in := []Redaction{
		{Start: 6, End: 10, Text: "(B1)", Info: "person"},
		{Start: 11, End: 16, Text: "(B1)", Info: "person"},
	}
	got := Merge(narrative, in)
	if len(got) != 1 {
		t.Fatalf("Merge() = %v, want a single redaction", got)
	}
	want := Redaction{Start: 6, End: 16, Text: "(B1)", Info: "person"}
	if got[0] != want {
		t.Errorf("Merge()[0] = %+v, want %+v", got[0], want)
	}
}

func TestMergeKeepsDistinctRedactions(t *testing.T) {
	narrative := "John met Mary and then Mary left with John."
	in := []Redaction{
		{Start: 0, End: 4, Text: "(V1)", Info: "person"},
		{Start: 9, End: 13, Text: "(W1)", Info: "person"},
	}
	got := Merge(narrative, in)
	if len(got) != 2 {
		t.Fatalf("Merge() = %v, want 2 redactions", got)
	}
	if got[0].Start != 9 || got[1].Start != 0 {
		t.Errorf("Merge() not sorted by descending start: %v", got)
	}
}

func TestMergeRequiresPersonInfo(t *testing.T) {
	narrative := "aa bb"
	in := []Redaction{
		{Start: 0, End: 2, Text: "[street]", Info: "street"},
		{Start: 3, End: 5, Text: "[street]", Info: "street"},
	}
	if got := Merge(narrative, in); len(got) != 2 {
		t.Errorf("Merge() = %v, want non-person redactions untouched", got)
	}
}

func TestMergeRejectsNonSpaceGap(t *testing.T) {
	narrative := "aa,bb"
	in := []Redaction{
		{Start: 0, End: 2, Text: "(V1)", Info: "person"},
		{Start: 3, End: 5, Text: "(V1)", Info: "person"},
	}
	if got := Merge(narrative, in); len(got) != 2 {
		t.Errorf("Merge() = %v, want comma gap to block merging", got)
	}
}

func TestRedactionJSON(t *testing.T) {
	r := Redaction{Start: 25, End: 37, Text: "[stadium]", Info: "stadium"}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["start"] != float64(25) || decoded["end"] != float64(37) {
		t.Errorf("span = %v..%v, want 25..37", decoded["start"], decoded["end"])
	}
	if decoded["content"] != "[stadium]" || decoded["extent"] != float64(len("[stadium]")) {
		t.Errorf("content/extent = %v/%v", decoded["content"], decoded["extent"])
	}
	if decoded["type"] != "redaction" {
		t.Errorf("type = %v, want redaction", decoded["type"])
	}
}

func TestApplyRendersRedactions(t *testing.T) {
	narrative := "I saw John Smith leave."
	in := []Redaction{
		{Start: 17, End: 22, Text: "depart", Info: "verb"},
		{Start: 6, End: 16, Text: "(B1)", Info: "person"},
	}
	got := Apply(narrative, in)
	want := "I saw (B1) depart."
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyEmpty(t *testing.T) {
	narrative := "Nothing to change."
	if got := Apply(narrative, nil); got != narrative {
		t.Errorf("Apply() = %q, want the narrative unchanged", got)
	}
}

func TestApplySkipsOverlapping(t *testing.T) {
	narrative := "abcdef"
	in := []Redaction{
		{Start: 0, End: 4, Text: "X"},
		{Start: 2, End: 6, Text: "Y"},
	}
	if got := Apply(narrative, in); got != "Xef" {
		t.Errorf("Apply() = %q, want %q", got, "Xef")
	}
}
