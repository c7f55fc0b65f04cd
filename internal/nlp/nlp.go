// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nlp is the engine boundary for tokenization, sentence splitting,
// and named entity recognition. The masking pipeline consumes annotations
// through the Engine interface only, so the backing model can be swapped
// without touching detector code.
package nlp

// Token is a single token with its byte span in the source text.
type Token struct {
	Text  string
	Tag   string // Penn Treebank tag, "NNP" for proper nouns
	Start int
	End   int
}

// Entity is a named entity with its byte span in the source text.
type Entity struct {
	Text  string
	Label string // "PERSON", "GPE", ...
	Start int
	End   int
}

// Sentence is a sentence with its byte span in the source text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Annotations holds everything the pipeline needs to know about a narrative.
type Annotations struct {
	Text      string
	Tokens    []Token
	Sentences []Sentence
	Entities  []Entity
}

// Engine produces annotations for a narrative.
type Engine interface {
	Annotate(text string) (*Annotations, error)
}

// IsProperNoun reports whether the token carries a proper noun tag.
func (t Token) IsProperNoun() bool {
	return t.Tag == "NNP" || t.Tag == "NNPS"
}

// PersonEntities returns the entities labelled as persons.
func (a *Annotations) PersonEntities() []Entity {
	var out []Entity
	for _, e := range a.Entities {
		if e.Label == "PERSON" {
			out = append(out, e)
		}
	}
	return out
}

// SentenceAt returns the sentence containing the byte offset, if any.
func (a *Annotations) SentenceAt(offset int) (Sentence, bool) {
	for _, s := range a.Sentences {
		if offset >= s.Start && offset < s.End {
			return s, true
		}
	}
	return Sentence{}, false
}
