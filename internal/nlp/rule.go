// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import (
	"sort"
	"strings"
	"unicode"
)

// RuleEngine is a deterministic, model-free engine. Tokens are maximal runs
// of letters, digits, apostrophes and hyphens; capitalized alphabetic tokens
// are tagged as proper nouns; sentences split on terminal punctuation.
// Entities are produced from a literal gazetteer. It backs tests and acts as
// the engine of last resort when the statistical models are unwanted.
type RuleEngine struct {
	// EntityLiterals maps a literal surface string to its entity label.
	// Every occurrence of the literal in the text becomes an entity.
	EntityLiterals map[string]string
}

// NewRuleEngine returns a rule-based engine with the given gazetteer.
func NewRuleEngine(entityLiterals map[string]string) *RuleEngine {
	return &RuleEngine{EntityLiterals: entityLiterals}
}

// Annotate tokenizes text with the rule set above.
func (e *RuleEngine) Annotate(text string) (*Annotations, error) {
	ann := &Annotations{Text: text}
	ann.Tokens = ruleTokens(text)
	ann.Sentences = ruleSentences(text)
	ann.Entities = e.ruleEntities(text)
	return ann, nil
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

func ruleTokens(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	i := 0
	byteAt := make([]int, len(runes)+1)
	off := 0
	for j, r := range runes {
		byteAt[j] = off
		off += len(string(r))
	}
	byteAt[len(runes)] = off

	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isTokenRune(r):
			j := i
			for j < len(runes) && isTokenRune(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			tokens = append(tokens, Token{
				Text:  word,
				Tag:   ruleTag(word),
				Start: byteAt[i],
				End:   byteAt[j],
			})
			i = j
		default:
			tokens = append(tokens, Token{
				Text:  string(r),
				Tag:   ".",
				Start: byteAt[i],
				End:   byteAt[i+1],
			})
			i++
		}
	}
	return tokens
}

func ruleTag(word string) string {
	r := []rune(word)
	switch {
	case unicode.IsDigit(r[0]):
		return "CD"
	case unicode.IsUpper(r[0]):
		return "NNP"
	default:
		return "NN"
	}
}

func ruleSentences(text string) []Sentence {
	var sentences []Sentence
	start := -1
	for i, r := range text {
		if start < 0 {
			if !unicode.IsSpace(r) {
				start = i
			}
			continue
		}
		if r == '.' || r == '!' || r == '?' {
			end := i + 1
			// Absorb a closing quote.
			if end < len(text) && text[end] == '"' {
				end++
			}
			if end >= len(text) || text[end] == ' ' || text[end] == '\n' {
				sentences = append(sentences, Sentence{
					Text:  text[start:end],
					Start: start,
					End:   end,
				})
				start = -1
			}
		}
	}
	if start >= 0 {
		sentences = append(sentences, Sentence{
			Text:  text[start:],
			Start: start,
			End:   len(text),
		})
	}
	return sentences
}

func (e *RuleEngine) ruleEntities(text string) []Entity {
	var entities []Entity
	literals := make([]string, 0, len(e.EntityLiterals))
	for lit := range e.EntityLiterals {
		literals = append(literals, lit)
	}
	sort.Strings(literals)
	for _, lit := range literals {
		label := e.EntityLiterals[lit]
		from := 0
		for {
			idx := strings.Index(text[from:], lit)
			if idx < 0 {
				break
			}
			start := from + idx
			entities = append(entities, Entity{
				Text:  lit,
				Label: label,
				Start: start,
				End:   start + len(lit),
			})
			from = start + len(lit)
		}
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	})
	return entities
}
