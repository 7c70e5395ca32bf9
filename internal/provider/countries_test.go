package provider

import (
	"reflect"
	"testing"
)

func TestCandidatesGlobalUsesShortlist(t *testing.T) {
	for _, country := range []string{"", "global"} {
		got := Candidates(country)
		want := []string{"mx", "us", "gb"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Candidates(%q) = %v, want %v", country, got, want)
		}
	}
}

func TestCandidatesSupportedCountry(t *testing.T) {
	got := Candidates("mx")
	if !reflect.DeepEqual(got, []string{"mx"}) {
		t.Fatalf("Candidates(mx) = %v, want [mx]", got)
	}
}

func TestCandidatesUnsupportedFallsBack(t *testing.T) {
	got := Candidates("xx")
	if !reflect.DeepEqual(got, []string{"mx"}) {
		t.Fatalf("Candidates(xx) = %v, want shortlist head [mx]", got)
	}
}

func TestShortlistIsSubsetOfAdzunaCountries(t *testing.T) {
	for _, code := range defaultCandidates {
		if _, ok := adzunaCountries[code]; !ok {
			t.Fatalf("shortlist entry %q is not a supported keyed-provider country", code)
		}
	}
}

func TestRSSCountryAllowlist(t *testing.T) {
	for _, code := range []string{"mx", "es", "ar", "co"} {
		if !RSSCountrySupported(code) {
			t.Fatalf("expected RSS support for %q", code)
		}
	}
	for _, code := range []string{"us", "gb", "de", "", "global"} {
		if RSSCountrySupported(code) {
			t.Fatalf("expected no RSS support for %q", code)
		}
	}
}

func TestFeedMarkersAreFixedTables(t *testing.T) {
	// The exclusion marker is a literal carve-out, not inferred geography.
	if feedExcludeMarker != "india" {
		t.Fatalf("feedExcludeMarker = %q, want the literal carve-out", feedExcludeMarker)
	}

	wantRegions := []string{"latam", "remote", "global", "anywhere"}
	if !reflect.DeepEqual(feedRegionMarkers, wantRegions) {
		t.Fatalf("feedRegionMarkers = %v, want %v", feedRegionMarkers, wantRegions)
	}

	if marker := feedCountryMarkers["cdmx"]; marker != "mexico" {
		t.Fatalf("feedCountryMarkers[cdmx] = %q, want mexico", marker)
	}
}
