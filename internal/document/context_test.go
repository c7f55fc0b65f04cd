// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"strings"
	"testing"

	"blind-redact/internal/nlp"
)

func newTestContext(t *testing.T, text string) *Context {
	t.Helper()
	ann, err := nlp.NewRuleEngine(nil).Annotate(text)
	if err != nil {
		t.Fatalf("annotating %q: %v", text, err)
	}
	return New(text, ann)
}

func TestRedactBasic(t *testing.T) {
	text := "Suspect was last seen at Oracle Arena."
	ctx := newTestContext(t, text)

	red, err := ctx.Redact(25, 37, "[stadium]", Options{Info: "stadium"})
	if err != nil {
		t.Fatalf("Redact: %v", err)
	}
	if red.Start != 25 || red.End != 37 || red.Text != "[stadium]" {
		t.Errorf("redaction = %+v", red)
	}
	if got := ctx.Text(); got != "Suspect was last seen at ************." {
		t.Errorf("working text = %q", got)
	}
	if ctx.Original() != text {
		t.Error("original text must not change")
	}
}

func TestRedactOverlap(t *testing.T) {
	ctx := newTestContext(t, "aaaa bbbb cccc")
	if _, err := ctx.Redact(0, 4, "[x]", Options{}); err != nil {
		t.Fatal(err)
	}
	_, err := ctx.Redact(2, 7, "[y]", Options{})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("overlapping Redact = %v, want ErrOverlap", err)
	}
	if !ctx.CanRedact(5, 9) {
		t.Error("non-overlapping span should be redactable")
	}
	if ctx.CanRedact(3, 6) {
		t.Error("overlapping span should not be redactable")
	}
	if _, err := ctx.Redact(2, 7, "[y]", Options{Force: true}); err != nil {
		t.Errorf("forced Redact: %v", err)
	}
}

func TestRedactClampsWhitespace(t *testing.T) {
	ctx := newTestContext(t, "He saw the blue car there.")
	// Span deliberately includes the surrounding spaces.
	red, err := ctx.Redact(10, 19, "[vehicle]", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if red.Start != 11 || red.End != 19 {
		t.Errorf("clamped span = [%d, %d), want [11, 19)", red.Start, red.End)
	}
	if got := ctx.Text(); got != "He saw the ******** there." {
		t.Errorf("working text = %q", got)
	}
}

func TestRedactArticleCorrection(t *testing.T) {
	text := "He was an African American male."
	ctx := newTestContext(t, text)
	start := strings.Index(text, "African American")
	red, err := ctx.Redact(start, start+len("African American"), "[race/ethnicity]", Options{Info: "race/ethnicity"})
	if err != nil {
		t.Fatal(err)
	}
	if red.Text != "a [race/ethnicity]" {
		t.Errorf("replacement = %q, want article folded in", red.Text)
	}
	if red.Start != strings.Index(text, "an African") {
		t.Errorf("start = %d, want span extended over the article", red.Start)
	}
}

func TestRedactArticleCase(t *testing.T) {
	text := "An African American male ran."
	ctx := newTestContext(t, text)
	red, err := ctx.Redact(3, 3+len("African American"), "[race/ethnicity]", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(red.Text, "A [") {
		t.Errorf("replacement = %q, want capitalized article preserved", red.Text)
	}
	if red.Start != 0 {
		t.Errorf("start = %d, want 0", red.Start)
	}
}

func TestRedactEpentheticArticle(t *testing.T) {
	text := "She drove a 8-cylinder truck."
	ctx := newTestContext(t, text)
	start := strings.Index(text, "8-cylinder")
	red, err := ctx.Redact(start, start+len("8-cylinder"), "8-cylinder", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(red.Text, "an ") {
		t.Errorf("replacement = %q, want %q for a digit-8 word", red.Text, "an 8-cylinder")
	}
}

func TestRedactSentenceStartCapitalization(t *testing.T) {
	text := "He left. the suspect ran."
	ctx := newTestContext(t, text)
	start := strings.Index(text, "the suspect")
	red, err := ctx.Redact(start, start+len("the suspect"), "[person]", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if red.Text != "[Person]" {
		t.Errorf("replacement = %q, want sentence-start capitalization", red.Text)
	}
}

func TestRedactMidSentenceNotCapitalized(t *testing.T) {
	text := "He saw the suspect run."
	ctx := newTestContext(t, text)
	start := strings.Index(text, "the suspect")
	red, err := ctx.Redact(start, start+len("the suspect"), "[person]", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if red.Text != "[person]" {
		t.Errorf("replacement = %q, want no capitalization mid-sentence", red.Text)
	}
}
