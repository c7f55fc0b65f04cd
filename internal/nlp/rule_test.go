// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import "testing"

func TestRuleEngineTokens(t *testing.T) {
	eng := NewRuleEngine(nil)
	ann, err := eng.Annotate("He saw John Smith at 5th St.")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	var texts []string
	for _, tok := range ann.Tokens {
		texts = append(texts, tok.Text)
		if ann.Text[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %q span [%d, %d) does not slice back to itself",
				tok.Text, tok.Start, tok.End)
		}
	}
	want := []string{"He", "saw", "John", "Smith", "at", "5th", "St", "."}
	if len(texts) != len(want) {
		t.Fatalf("tokens = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, texts[i], want[i])
		}
	}

	if !ann.Tokens[2].IsProperNoun() || !ann.Tokens[3].IsProperNoun() {
		t.Error("capitalized name tokens should be tagged as proper nouns")
	}
	if ann.Tokens[1].IsProperNoun() {
		t.Error("lowercase verb should not be tagged as a proper noun")
	}
}

func TestRuleEngineSentences(t *testing.T) {
	eng := NewRuleEngine(nil)
	ann, err := eng.Annotate("First sentence. Second one! And a third?")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(ann.Sentences) != 3 {
		t.Fatalf("sentences = %d, want 3: %+v", len(ann.Sentences), ann.Sentences)
	}
	if ann.Sentences[0].Text != "First sentence." {
		t.Errorf("first sentence = %q", ann.Sentences[0].Text)
	}
	if s, ok := ann.SentenceAt(16); !ok || s.Text != "Second one!" {
		t.Errorf("SentenceAt(16) = %q, %v", s.Text, ok)
	}
}

func TestRuleEngineEntities(t *testing.T) {
	eng := NewRuleEngine(map[string]string{
		"John Smith": "PERSON",
		"Chinatown":  "GPE",
	})
	ann, err := eng.Annotate("John Smith lives near Chinatown. John Smith said so.")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	persons := ann.PersonEntities()
	if len(persons) != 2 {
		t.Fatalf("person entities = %+v, want 2", persons)
	}
	if persons[0].Start != 0 || persons[0].End != 10 {
		t.Errorf("first person span = [%d, %d), want [0, 10)", persons[0].Start, persons[0].End)
	}
	if len(ann.Entities) != 3 {
		t.Errorf("entities = %d, want 3", len(ann.Entities))
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "The", "AND", "of"} {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false, want true", w)
		}
	}
	// Surname particles must survive name parsing.
	for _, w := range []string{"de", "la", "van", "Smith"} {
		if IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = true, want false", w)
		}
	}
}
