// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package locale

// Built-in demonstration locales. Real deployments load their own
// gazetteers from a YAML config instead.

var sampleIndicators = map[string]string{
	"V":  "Victim",
	"R":  "Reporting",
	"RV": "Reporting Victim",
	"S":  "Suspect",
	"W":  "Witness",
	"B":  "Booked",
	"M":  "Missing",
}

var sampleDistricts = []string{
	"Central", "Western", "Southern", "Lake", "Park", "University",
}

var sampleStreets = []string{
	"LILAC DR", "COWPEN BLVD", "OCEAN BLVD", "HILL ST", "FIRST ST",
	"A ST", "20TH ST", "OAK ST", "8TH AVE", "MISSION ST", "VALENCIA ST",
	"MARKET ST", "CANAL ST", "BIG FARM RD", "ELLIS CT", "PINE ST",
	"CEDAR AVE", "MAPLE DR", "SUNSET BLVD", "LAKE SHORE DR", "BAY RD",
	"HARBOR BLVD", "GRANDVIEW TER", "ORCHARD LN", "MEADOW CIR",
	"RIVERSIDE PKWY", "STATION PLZ", "WILLOW TRL", "KING ST",
	"QUEEN AVE", "EASTLAKE DR", "PINNACLE HWY",
}

var sampleNeighborhoods = []string{
	"Parkside", "Chinatown", "Eastlake", "Pinnacle Heights",
	"Little Russia", "Canal Street",
}

var sampleExcludedNames = []string{
	`city of .*`,
	`state of .*`,
	`county of .*`,
	`.* county\b.*`,
	`.* police department`,
}

func init() {
	Register(Must(Definition{
		Name:          "Suffix County",
		Districts:     sampleDistricts,
		StreetNames:   sampleStreets,
		Neighborhoods: sampleNeighborhoods,
		ExcludedNames: sampleExcludedNames,
		Indicators:    sampleIndicators,
		Positions:     []Position{PositionPrefix, PositionSuffix},
	}))
	Register(Must(Definition{
		Name:          "Prefixton",
		Districts:     sampleDistricts,
		StreetNames:   sampleStreets,
		Neighborhoods: sampleNeighborhoods,
		ExcludedNames: sampleExcludedNames,
		Indicators:    sampleIndicators,
		Positions:     []Position{PositionPrefix},
	}))
}
