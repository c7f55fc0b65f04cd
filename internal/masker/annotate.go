// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masker

import (
	"blind-redact/internal/annotation"
	"blind-redact/internal/extract"
	"blind-redact/internal/identity"
	"blind-redact/internal/locale"
	"blind-redact/internal/nlp"
)

// Options adjust how Annotate treats a narrative.
type Options struct {
	// KeepOfficerNames skips inferring officer mentions from the narrative
	// text, so only roster officers are masked.
	KeepOfficerNames bool
	// CustomLiterals maps a placeholder label to literal phrases redacted
	// wherever they appear: {"stadium": ["Memorial Stadium"]}.
	CustomLiterals map[string][]string
}

// Annotate redacts a narrative: roster references are combined with person
// and officer mentions inferred from the text, duplicates merge into single
// identities with stable code names, and the full detector pipeline runs
// over the result. Redactions come back merged, sorted by descending start
// offset; annotation.Apply re-sorts into document order for rendering.
//
// The narrative is used as-is; callers normalizing raw input should run it
// through extract.Preprocess first.
func Annotate(loc *locale.Locale, engine nlp.Engine, narrative string,
	civilians []identity.CivilianRecord, officers []string, opts Options) ([]annotation.Redaction, error) {

	ann, err := engine.Annotate(narrative)
	if err != nil {
		return nil, err
	}

	var persons []*identity.Civilian
	for _, rec := range civilians {
		if !loc.AllowsName(rec.Name) {
			continue
		}
		persons = append(persons, identity.NewCivilian(rec))
	}
	persons = append(persons, extract.Persons(ann, 0, loc.IndicatorTypes())...)

	var mentions []*identity.Officer
	for _, m := range officers {
		mentions = append(mentions, identity.NewOfficer(m))
	}
	if !opts.KeepOfficerNames {
		mentions = append(mentions, extract.Officers(narrative)...)
	}

	persons, err = identity.DedupeCivilians(persons, loc)
	if err != nil {
		return nil, err
	}
	mentions, err = identity.DedupeOfficers(mentions)
	if err != nil {
		return nil, err
	}

	redactions, err := Mask(loc, narrative, ann, persons, mentions, opts.CustomLiterals)
	if err != nil {
		return nil, err
	}
	return annotation.Merge(narrative, redactions), nil
}
