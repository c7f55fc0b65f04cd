// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package locale

// USPS street suffix abbreviations and their full words. "way" is absent on
// purpose: it misfires on ordinary prose ("in the way") far more often than
// it appears as a bare suffix.
var streetSuffixPairs = [][2]string{
	{"st", "street"},
	{"ave", "avenue"},
	{"blvd", "boulevard"},
	{"dr", "drive"},
	{"rd", "road"},
	{"ct", "court"},
	{"ln", "lane"},
	{"pl", "place"},
	{"cir", "circle"},
	{"ter", "terrace"},
	{"hwy", "highway"},
	{"pkwy", "parkway"},
	{"plz", "plaza"},
	{"aly", "alley"},
	{"trl", "trail"},
	{"row", "row"},
	{"walk", "walk"},
	{"loop", "loop"},
	{"park", "park"},
}

// StreetSuffixes returns every recognized suffix form, abbreviations and
// full words.
func StreetSuffixes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, pair := range streetSuffixPairs {
		for _, form := range pair {
			if !seen[form] {
				seen[form] = true
				out = append(out, form)
			}
		}
	}
	return out
}

// suffixAlternatives returns the alternative spellings of a street suffix
// token, or false if the token is not a recognized suffix.
func suffixAlternatives(token string) ([]string, bool) {
	for _, pair := range streetSuffixPairs {
		if token == pair[0] || token == pair[1] {
			return []string{pair[0], pair[1]}, true
		}
	}
	return nil, false
}
