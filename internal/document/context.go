// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document holds the stateful text container that redactions are
// applied to. The working text keeps its length as spans are cleared, so
// later rules match against positions that still line up with the original
// narrative, and the NLP annotations computed once up front stay valid
// throughout.
package document

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"blind-redact/internal/annotation"
	"blind-redact/internal/intervals"
	"blind-redact/internal/nlp"
)

// ErrOverlap is returned when a redaction would overwrite a span that has
// already been redacted.
var ErrOverlap = errors.New("span overlaps an existing redaction")

// Sentence-terminal punctuation.
const terminals = `.!?"`

// Options adjusts how a single redaction is applied.
type Options struct {
	// Info is the annotation category ("person", "street", ...).
	Info string
	// Color is an optional display color for review tooling.
	Color string
	// NoClamp leaves span endpoints on whitespace instead of tightening
	// them to word boundaries.
	NoClamp bool
	// NoAutoCapitalize skips sentence-start capitalization of the
	// replacement.
	NoAutoCapitalize bool
	// NoArticleCorrection skips folding a preceding "a"/"an" into the
	// redaction.
	NoArticleCorrection bool
	// Force applies the redaction even over an already-cleared span.
	Force bool
}

// Context is a narrative undergoing redaction.
type Context struct {
	original   string
	text       string
	ann        *nlp.Annotations
	cleared    *intervals.Set
	redactions []annotation.Redaction
}

// New builds a context from a narrative and its NLP annotations.
func New(text string, ann *nlp.Annotations) *Context {
	return &Context{
		original: text,
		text:     text,
		ann:      ann,
		cleared:  intervals.NewSet(),
	}
}

// Text returns the working text: the original narrative with every redacted
// span overwritten by placeholder characters of the same length.
func (c *Context) Text() string { return c.text }

// Original returns the untouched narrative.
func (c *Context) Original() string { return c.original }

// Annotations returns the NLP annotations for the original narrative.
func (c *Context) Annotations() *nlp.Annotations { return c.ann }

// Redactions returns the redactions applied so far.
func (c *Context) Redactions() []annotation.Redaction { return c.redactions }

// CanRedact reports whether no part of [start, end) is already redacted.
func (c *Context) CanRedact(start, end int) bool {
	overlaps, err := c.cleared.Overlaps(start, end)
	if err != nil {
		return false
	}
	return !overlaps
}

// Redact replaces [start, end) with text, adjusting the span per opts, and
// records the resulting redaction.
func (c *Context) Redact(start, end int, text string, opts Options) (annotation.Redaction, error) {
	if !opts.Force && !c.CanRedact(start, end) {
		return annotation.Redaction{}, fmt.Errorf("invalid span %d - %d: %w", start, end, ErrOverlap)
	}

	if !opts.NoClamp {
		start = c.clampToWordBoundary(start, 1)
		// end points one past the final character of the span.
		end = c.clampToWordBoundary(end-1, -1) + 1
	}

	if !opts.NoArticleCorrection {
		text, start = c.correctIndefArticle(text, start)
	}

	if !opts.NoAutoCapitalize && c.isSentStart(start) {
		text = capitalize(text)
	}

	if err := c.clearSpan(start, end); err != nil {
		return annotation.Redaction{}, err
	}

	red := annotation.Redaction{
		Start: start,
		End:   end,
		Text:  text,
		Info:  opts.Info,
		Color: opts.Color,
	}
	c.redactions = append(c.redactions, red)
	return red, nil
}

// clearSpan overwrites [start, end) in the working text with placeholder
// characters, preserving length, and records the cleared interval.
func (c *Context) clearSpan(start, end int) error {
	if err := c.cleared.AddSpan(start, end); err != nil {
		return err
	}
	c.text = c.text[:start] + strings.Repeat("*", end-start) + c.text[end:]
	return nil
}

// clampToWordBoundary moves index off whitespace in the given direction,
// consulting the original narrative.
func (c *Context) clampToWordBoundary(index, delta int) int {
	txt := c.original
	for index > 0 && index < len(txt)-1 && isSpaceByte(txt[index]) {
		index += delta
	}
	return index
}

// correctIndefArticle folds a preceding indefinite article into the
// redaction, fixed up for the replacement text. The epenthetic 'n' of "an"
// can leak information about the underlying word.
func (c *Context) correctIndefArticle(text string, index int) (string, int) {
	correct := indefiniteArticleFor(text)

	var scanned []string
	var wordTerminal []int
	spaceStr := ""
	scanningWord := false

	txt := c.original
	ptr := index
	endPtr := ptr - 4
	if endPtr < 0 {
		endPtr = 0
	}

	for ptr >= endPtr && ptr < len(txt) {
		ch := txt[ptr]
		// Only simple spaces: newlines and tabs would overmatch.
		if ch == ' ' {
			if len(scanned) == 2 {
				break
			}
			spaceStr = string(ch) + spaceStr
			scanningWord = false
		} else {
			if !scanningWord {
				scanningWord = true
				scanned = append(scanned, "")
				wordTerminal = append(wordTerminal, ptr+1)
			}
			scanned[len(scanned)-1] = string(ch) + scanned[len(scanned)-1]
		}
		ptr--
	}

	if len(scanned) < 2 {
		return text, index
	}
	article := scanned[len(scanned)-1]
	lower := strings.ToLower(article)
	if lower != "a" && lower != "an" {
		return text, index
	}

	switch {
	case article == strings.ToUpper(article):
		correct = strings.ToUpper(correct)
	case unicode.IsUpper(rune(article[0])):
		correct = capitalize(correct)
	}

	newText := correct + spaceStr + text
	newIdx := wordTerminal[len(wordTerminal)-1] - len(article)
	return newText, newIdx
}

// isSentStart reports whether index falls within the first word of a
// sentence, by scanning back a few characters for the previous sentence's
// terminal punctuation.
func (c *Context) isSentStart(index int) bool {
	seenSpace := false
	endPtr := index - 3
	if endPtr < 0 {
		endPtr = 0
	}
	txt := c.original
	for index >= endPtr && index < len(txt) {
		ch := txt[index]
		if strings.IndexByte(terminals, ch) >= 0 {
			if tok, ok := c.tokenAt(index); ok && isPunctToken(tok) {
				// Found punctuation: the initial word starts a
				// sentence only if this token closes the previous
				// one.
				return c.closesSentence(tok)
			}
		}
		if isSpaceByte(ch) {
			seenSpace = true
		} else if seenSpace {
			// Another word before the span: not sentence-initial.
			return false
		}
		index--
	}
	return index == 0
}

// tokenAt returns the token containing the byte offset.
func (c *Context) tokenAt(index int) (nlp.Token, bool) {
	if c.ann == nil {
		return nlp.Token{}, false
	}
	for _, tok := range c.ann.Tokens {
		if index >= tok.Start && index < tok.End {
			return tok, true
		}
	}
	return nlp.Token{}, false
}

// isPunctToken reports whether the token is pure punctuation.
func isPunctToken(tok nlp.Token) bool {
	for _, ch := range tok.Text {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			return false
		}
	}
	return tok.Text != ""
}

// closesSentence reports whether tok is the last token of the sentence
// containing it.
func (c *Context) closesSentence(tok nlp.Token) bool {
	sent, ok := c.ann.SentenceAt(tok.Start)
	if !ok {
		// Terminal punctuation ends its sentence span, so look it up by
		// the final character instead.
		for _, s := range c.ann.Sentences {
			if tok.End == s.End {
				return true
			}
		}
		return false
	}
	lastEnd := -1
	for _, t := range c.ann.Tokens {
		if t.Start >= sent.Start && t.End <= sent.End {
			lastEnd = t.End
		}
	}
	return tok.End == lastEnd
}

// indefiniteArticleFor picks "a" or "an" from the word-initial orthography
// of text. Digit-initial words read as "an" only for 8.
func indefiniteArticleFor(text string) string {
	for _, ch := range text {
		if unicode.IsLetter(ch) {
			if strings.ContainsRune("aeiou", unicode.ToLower(ch)) {
				return "an"
			}
			return "a"
		}
		if unicode.IsDigit(ch) {
			if ch == '8' {
				return "an"
			}
			return "a"
		}
	}
	return "a"
}

// capitalize upper-cases the first alphabetic character of text, e.g.
// "[placeholder]" -> "[Placeholder]".
func capitalize(text string) string {
	for i, ch := range text {
		if unicode.IsLetter(ch) {
			return text[:i] + string(unicode.ToUpper(ch)) + text[i+len(string(ch)):]
		}
	}
	return text
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
