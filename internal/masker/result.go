// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masker

import "blind-redact/internal/annotation"

// Result pairs a narrative with the redactions computed for it.
type Result struct {
	// ID identifies the narrative in batch output, typically the source
	// file path or "-" for stdin.
	ID         string
	Narrative  string
	Redactions []annotation.Redaction
}

// Redacted renders the narrative with every redaction applied.
func (r Result) Redacted() string {
	return annotation.Apply(r.Narrative, r.Redactions)
}
