package provider

// Country routing tables. These are named configuration, not inferred
// geography: tests enumerate them exactly.

// adzunaCountries is the set of country codes the keyed provider serves.
var adzunaCountries = map[string]struct{}{
	"at": {}, "au": {}, "be": {}, "br": {}, "ca": {}, "ch": {}, "de": {},
	"es": {}, "fr": {}, "gb": {}, "in": {}, "it": {}, "mx": {}, "nl": {},
	"nz": {}, "pl": {}, "sg": {}, "us": {}, "za": {},
}

// defaultCandidates is the shortlist queried when no specific country is
// requested. Order matters: the first entry doubles as the fallback country
// for unsupported codes.
var defaultCandidates = []string{"mx", "us", "gb"}

// rssCountries is the allowlist for the RSS provider; other codes make it
// inert.
var rssCountries = map[string]struct{}{
	"mx": {}, "es": {}, "ar": {}, "co": {},
}

// feedCountryMarkers maps a normalized location string to the marker the
// public feeds must mention for a posting to count as local to that country.
var feedCountryMarkers = map[string]string{
	"mexico":           "mexico",
	"ciudad de mexico": "mexico",
	"cdmx":             "mexico",
	"mx":               "mexico",
	"argentina":        "argentina",
	"ar":               "argentina",
	"colombia":         "colombia",
	"co":               "colombia",
	"chile":            "chile",
	"cl":               "chile",
	"spain":            "spain",
	"espana":           "spain",
	"es":               "spain",
}

// feedRegionMarkers keeps broadly-relevant postings when the requested
// location maps to no known country.
var feedRegionMarkers = []string{"latam", "remote", "global", "anywhere"}

// feedExcludeMarker is a hardcoded source-quality carve-out: postings whose
// location mentions it are always dropped. Literal rule, kept verbatim.
const feedExcludeMarker = "india"

// Candidates derives the keyed-provider country fan-out set from a request's
// country field: the shortlist for unspecified/global requests, the country
// itself when supported, and the shortlist head as fallback otherwise.
func Candidates(country string) []string {
	if country == "" || country == "global" {
		out := make([]string, 0, len(defaultCandidates))
		for _, code := range defaultCandidates {
			if _, ok := adzunaCountries[code]; ok {
				out = append(out, code)
			}
		}
		return out
	}
	if _, ok := adzunaCountries[country]; ok {
		return []string{country}
	}
	return defaultCandidates[:1]
}

// RSSCountrySupported reports whether the RSS provider serves the code.
func RSSCountrySupported(country string) bool {
	_, ok := rssCountries[country]
	return ok
}
