// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"blind-redact/internal/annotation"
	"blind-redact/internal/formatters"
	"blind-redact/internal/masker"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type resultJSON struct {
	ID         string                 `json:"id"`
	Narrative  string                 `json:"narrative,omitempty"`
	Redacted   string                 `json:"redacted"`
	Redactions []annotation.Redaction `json:"annotations"`
}

func (f *Formatter) Format(results []masker.Result, options formatters.Options) (string, error) {
	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		r := resultJSON{
			ID:         res.ID,
			Redacted:   res.Redacted(),
			Redactions: res.Redactions,
		}
		if r.Redactions == nil {
			r.Redactions = []annotation.Redaction{}
		}
		// The original text is only echoed back in verbose mode.
		if options.Verbose {
			r.Narrative = res.Narrative
		}
		out = append(out, r)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
