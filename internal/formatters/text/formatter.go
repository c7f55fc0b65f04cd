// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"blind-redact/internal/annotation"
	"blind-redact/internal/formatters"
	"blind-redact/internal/masker"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"blue":    color.New(color.FgBlue),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable redacted narrative with an optional redaction table"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []masker.Result, options formatters.Options) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	for i, res := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.appendResult(&builder, res, options, len(results) > 1)
	}
	return builder.String(), nil
}

func (f *Formatter) appendResult(builder *strings.Builder, res masker.Result,
	options formatters.Options, withHeader bool) {

	if withHeader {
		builder.WriteString(f.colors["white"].Sprintf("=== %s ===", res.ID))
		builder.WriteString("\n")
	}

	builder.WriteString(res.Redacted())
	if !strings.HasSuffix(res.Narrative, "\n") {
		builder.WriteString("\n")
	}

	if !options.Verbose {
		return
	}

	builder.WriteString("\n")
	builder.WriteString(f.colors["white"].Sprintf("%d redactions", len(res.Redactions)))
	builder.WriteString("\n")
	ordered := make([]annotation.Redaction, len(res.Redactions))
	copy(ordered, res.Redactions)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })
	for _, r := range ordered {
		c, ok := f.colors[r.Color]
		if !ok {
			c = f.colors["cyan"]
		}
		builder.WriteString(fmt.Sprintf("  [%d:%d] %s %s %s\n",
			r.Start, r.End,
			f.colors["yellow"].Sprintf("%-24s", r.Info),
			c.Sprint(r.Text),
			f.colors["magenta"].Sprintf("<- %q", res.Narrative[r.Start:r.End])))
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
