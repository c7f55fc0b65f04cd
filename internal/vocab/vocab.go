// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package vocab holds the word lists driving the demographic and person
// detectors. Lists are plain slices so detectors can hand them straight to
// the pattern builders; membership tests copy them into sets.
package vocab

// SkinColors are words used to describe skin tone.
var SkinColors = []string{
	"black",
	"brown",
	"dark",
	"dark-skinned",
	"fair",
	"light",
	"light-skinned",
	"olive",
	"pale",
	"tan",
	"tanned",
	"white",
}

// RaceWords directly indicate race or ethnicity. Bare color words like
// "white" are deliberately absent: standing alone they describe vehicles and
// clothing more often than people, and only count as racial signals next to
// a person noun (see SkinColors).
var RaceWords = []string{
	"african",
	"african american",
	"african-american",
	"arab",
	"asian",
	"black",
	"caucasian",
	"chinese",
	"chink",
	"filipino",
	"hispanic",
	"indian",
	"japanese",
	"korean",
	"latin",
	"latina",
	"latino",
	"latinx",
	"middle eastern",
	"native american",
	"pacific islander",
	"samoan",
	"vietnamese",
}

// PersonRef are nouns that a skin-color adjective may attach to.
var PersonRef = []string{
	"adult",
	"boy",
	"child",
	"complexion",
	"female",
	"females",
	"gentleman",
	"girl",
	"guy",
	"individual",
	"juvenile",
	"kid",
	"lady",
	"male",
	"males",
	"man",
	"men",
	"person",
	"people",
	"subject",
	"teenager",
	"woman",
	"women",
}

// HairColors are colors specific to hair.
var HairColors = []string{
	"auburn",
	"blond",
	"blonde",
	"brunette",
	"graying",
	"greying",
	"salt and pepper",
	"salt-and-pepper",
}

// HairAdjs describe hair shape or cut. "style" and "type" let phrases like
// "afro type hair" chain into a single match.
var HairAdjs = []string{
	"bald",
	"balding",
	"buzzed",
	"curly",
	"frizzy",
	"long",
	"receding",
	"shaved",
	"short",
	"shoulder-length",
	"spiked",
	"spiky",
	"straight",
	"style",
	"type",
	"wavy",
}

// HairRef are hair nouns.
var HairRef = []string{
	"crew cut",
	"hair",
	"hair style",
	"haircut",
	"hairline",
	"hairstyle",
}

// SensitiveHairRef are hairstyles strongly correlated with race. They are
// redacted even standing alone.
var SensitiveHairRef = []string{
	"afro",
	"afros",
	"braids",
	"corn rows",
	"cornrows",
	"dread locks",
	"dreadlock",
	"dreadlocks",
	"dreads",
}

// EyeColors are colors specific to eyes.
var EyeColors = []string{
	"amber",
	"hazel",
}

// EyeRef are eye nouns.
var EyeRef = []string{
	"eye",
	"eyes",
}

// GeneralColors can describe hair, eyes, or clothing alike.
var GeneralColors = []string{
	"black",
	"blue",
	"brown",
	"dark",
	"gray",
	"green",
	"grey",
	"light",
	"red",
	"silver",
	"white",
}

// AppearanceList are field labels seen in list-format descriptions such as
// "Hair: Black".
var AppearanceList = []string{
	"complexion",
	"eye",
	"eyes",
	"hair",
	"race",
	"skin",
}

// RaceAbbrev matches three-letter race/sex/age abbreviations like "BMA".
// Group 2 is the sex letter and group 3 the age letter.
const RaceAbbrev = `([ABHW])([FM])([AJ])`

// RaceFeatures are features that read as racial signals without context.
var RaceFeatures = []string{
	"blond",
	"blonde",
	"freckled",
	"freckles",
	"redhead",
	"redheaded",
}

// Countries lists country names as they appear in narratives.
var Countries = []string{
	"Afghanistan",
	"Argentina",
	"Australia",
	"Brazil",
	"Burundi",
	"Cambodia",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"Cuba",
	"Ecuador",
	"Egypt",
	"El Salvador",
	"Eritrea",
	"Ethiopia",
	"Fiji",
	"France",
	"Germany",
	"Ghana",
	"Guatemala",
	"Haiti",
	"Honduras",
	"India",
	"Indonesia",
	"Iran",
	"Iraq",
	"Ireland",
	"Israel",
	"Italy",
	"Jamaica",
	"Japan",
	"Jordan",
	"Kenya",
	"Laos",
	"Lebanon",
	"Liberia",
	"Mexico",
	"Mongolia",
	"Morocco",
	"Myanmar",
	"Nepal",
	"Nicaragua",
	"Nigeria",
	"Pakistan",
	"Panama",
	"People's Republic of China",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Russia",
	"Samoa",
	"Saudi Arabia",
	"Senegal",
	"Somalia",
	"South Korea",
	"Spain",
	"Sudan",
	"Syria",
	"Taiwan",
	"Thailand",
	"Tonga",
	"Turkey",
	"Ukraine",
	"Venezuela",
	"Vietnam",
	"Yemen",
}

// Languages lists language names.
var Languages = []string{
	"Amharic",
	"Arabic",
	"Armenian",
	"Cantonese",
	"English",
	"Farsi",
	"French",
	"German",
	"Hindi",
	"Japanese",
	"Khmer",
	"Korean",
	"Mandarin",
	"Portuguese",
	"Punjabi",
	"Russian",
	"Spanish",
	"Tagalog",
	"Thai",
	"Urdu",
	"Vietnamese",
}

// Nationalities lists demonyms.
var Nationalities = []string{
	"American",
	"Brazilian",
	"Cambodian",
	"Canadian",
	"Chinese",
	"Colombian",
	"Cuban",
	"Ethiopian",
	"Filipino",
	"German",
	"Guatemalan",
	"Haitian",
	"Honduran",
	"Indian",
	"Indonesian",
	"Iranian",
	"Iraqi",
	"Irish",
	"Italian",
	"Jamaican",
	"Japanese",
	"Korean",
	"Laotian",
	"Lebanese",
	"Mexican",
	"Nicaraguan",
	"Nigerian",
	"Pakistani",
	"Peruvian",
	"Polish",
	"Russian",
	"Salvadoran",
	"Samoan",
	"Somali",
	"Thai",
	"Tongan",
	"Ukrainian",
	"Venezuelan",
	"Vietnamese",
}

// NamePhrases introduce a person by name or relationship in running text.
// A match binds the nearest person entity without contributing an indicator.
var NamePhrases = []string{
	"a.k.a.",
	"aka",
	"boyfriend",
	"brother",
	"co-worker",
	"cousin",
	"coworker",
	"daughter",
	"ex-boyfriend",
	"ex-girlfriend",
	"ex-husband",
	"ex-wife",
	"father",
	"friend",
	"girlfriend",
	"goes by",
	"husband",
	"identified as",
	"known as",
	"mother",
	"name of",
	"named",
	"neighbor",
	"roommate",
	"sister",
	"son",
	"suspect",
	"victim",
	"wife",
	"witness",
}
