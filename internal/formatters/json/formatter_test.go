// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"blind-redact/internal/annotation"
	"blind-redact/internal/formatters"
	"blind-redact/internal/masker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWireShape(t *testing.T) {
	results := []masker.Result{{
		ID:        "report-1",
		Narrative: "The suspect was Hispanic.",
		Redactions: []annotation.Redaction{
			{Start: 16, End: 24, Text: "[race/ethnicity]", Info: "race"},
		},
	}}

	out, err := NewFormatter().Format(results, formatters.Options{})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "report-1", decoded[0]["id"])
	assert.Equal(t, "The suspect was [race/ethnicity].", decoded[0]["redacted"])
	assert.NotContains(t, decoded[0], "narrative", "original text only echoed in verbose mode")

	anns, ok := decoded[0]["annotations"].([]interface{})
	require.True(t, ok)
	require.Len(t, anns, 1)
	ann := anns[0].(map[string]interface{})
	assert.Equal(t, float64(16), ann["start"])
	assert.Equal(t, float64(24), ann["end"])
	assert.Equal(t, "[race/ethnicity]", ann["content"])
	assert.Equal(t, float64(len("[race/ethnicity]")), ann["extent"])
	assert.Equal(t, "redaction", ann["type"])
	assert.Equal(t, "race", ann["info"])
}

func TestFormatEmpty(t *testing.T) {
	results := []masker.Result{{ID: "-", Narrative: "Nothing here."}}

	out, err := NewFormatter().Format(results, formatters.Options{Verbose: true})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Nothing here.", decoded[0]["narrative"])
	assert.Equal(t, []interface{}{}, decoded[0]["annotations"], "annotations must be [] rather than null")
}
