// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"blind-redact/internal/annotation"
	"blind-redact/internal/formatters"
	"blind-redact/internal/masker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []masker.Result {
	return []masker.Result{{
		ID:        "report-1",
		Narrative: "He had blue eyes.",
		Redactions: []annotation.Redaction{
			{Start: 7, End: 16, Text: "[color] eyes", Info: "eye color"},
		},
	}}
}

func TestFormatPlain(t *testing.T) {
	out, err := NewFormatter().Format(sample(), formatters.Options{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "He had [color] eyes.\n", out)
}

func TestFormatVerboseTable(t *testing.T) {
	out, err := NewFormatter().Format(sample(), formatters.Options{NoColor: true, Verbose: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "He had [color] eyes.\n"))
	assert.Contains(t, out, "1 redactions")
	assert.Contains(t, out, "[7:16]")
	assert.Contains(t, out, "eye color")
	assert.Contains(t, out, `<- "blue eyes"`)
}

func TestFormatMultipleResultsGetHeaders(t *testing.T) {
	results := append(sample(), masker.Result{ID: "report-2", Narrative: "Quiet day."})
	out, err := NewFormatter().Format(results, formatters.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "=== report-1 ===")
	assert.Contains(t, out, "=== report-2 ===")
	assert.Contains(t, out, "Quiet day.")
}
