// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// ProseEngine backs the Engine interface with the prose NLP library.
// prose reports tokens, sentences, and entities without byte offsets, so
// each item is aligned back to the source text by a forward scan.
type ProseEngine struct{}

// NewProseEngine returns an engine backed by prose's statistical models.
func NewProseEngine() *ProseEngine {
	return &ProseEngine{}
}

var (
	defaultEngine     Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared process-wide engine, created on first use.
func Default() Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewProseEngine()
	})
	return defaultEngine
}

// Annotate runs the prose pipeline over text.
func (e *ProseEngine) Annotate(text string) (*Annotations, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotating narrative: %w", err)
	}

	ann := &Annotations{Text: text}

	cursor := 0
	for _, tok := range doc.Tokens() {
		start, end, ok := align(text, cursor, tok.Text)
		if !ok {
			continue
		}
		ann.Tokens = append(ann.Tokens, Token{
			Text:  tok.Text,
			Tag:   tok.Tag,
			Start: start,
			End:   end,
		})
		cursor = end
	}

	cursor = 0
	for _, sent := range doc.Sentences() {
		// Sentence text is contiguous source text modulo surrounding
		// whitespace; anchor on its first token.
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		start, end, ok := align(text, cursor, trimmed)
		if !ok {
			continue
		}
		ann.Sentences = append(ann.Sentences, Sentence{
			Text:  trimmed,
			Start: start,
			End:   end,
		})
		cursor = end
	}

	cursor = 0
	for _, ent := range doc.Entities() {
		start, end, ok := align(text, cursor, ent.Text)
		if !ok {
			continue
		}
		ann.Entities = append(ann.Entities, Entity{
			Text:  ent.Text,
			Label: ent.Label,
			Start: start,
			End:   end,
		})
		cursor = end
	}

	return ann, nil
}

// align locates needle in text at or after from and returns its byte span.
func align(text string, from int, needle string) (int, int, bool) {
	if from > len(text) {
		return 0, 0, false
	}
	idx := strings.Index(text[from:], needle)
	if idx < 0 {
		// Tokenizers occasionally normalize quotes or whitespace inside
		// multi-word items; fall back to the first whitespace-split word.
		first := strings.Fields(needle)
		if len(first) == 0 {
			return 0, 0, false
		}
		idx = strings.Index(text[from:], first[0])
		if idx < 0 {
			return 0, 0, false
		}
		start := from + idx
		end := start + len(needle)
		if end > len(text) {
			end = len(text)
		}
		return start, end, true
	}
	start := from + idx
	return start, start + len(needle), true
}
