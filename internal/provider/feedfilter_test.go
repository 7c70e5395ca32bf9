package provider

import (
	"fmt"
	"testing"

	"github.com/MrJJimenez/jobradar/internal/models"
)

func candidate(title, company, location, description string) feedCandidate {
	return feedCandidate{
		posting: models.JobPosting{Title: title, Company: company, Location: location, URL: "https://example.com/" + title},
		text:    title + " " + company + " " + location + " " + description,
	}
}

func TestFilterFeedCandidatesQueryMatch(t *testing.T) {
	candidates := []feedCandidate{
		candidate("Go Developer", "Acme", "Remote", "backend services in Go"),
		candidate("Designer", "Beta", "Remote", "figma all day"),
	}

	kept := filterFeedCandidates("developer", "", 50, candidates)
	if len(kept) != 1 {
		t.Fatalf("expected 1 match, got %d", len(kept))
	}
	if kept[0].Title != "Go Developer" {
		t.Fatalf("unexpected match: %+v", kept[0])
	}
}

func TestFilterFeedCandidatesQueryMatchesAccentFolded(t *testing.T) {
	candidates := []feedCandidate{
		candidate("Desarrollador", "Acme", "Ciudad de México, Mexico", "equipo en México"),
	}

	kept := filterFeedCandidates("MÉXICO", "mexico", 50, candidates)
	if len(kept) != 1 {
		t.Fatalf("expected accent-folded query to match, got %d", len(kept))
	}
}

func TestFilterFeedCandidatesCountryInclusion(t *testing.T) {
	candidates := []feedCandidate{
		candidate("Dev A", "Acme", "Mexico City, Mexico", ""),
		candidate("Dev B", "Beta", "Berlin, Germany", ""),
		candidate("Dev C", "Gamma", "Remote", ""),
	}

	kept := filterFeedCandidates("", "Ciudad de México", 50, candidates)
	if len(kept) != 1 {
		t.Fatalf("expected only the Mexico posting, got %d", len(kept))
	}
	if kept[0].Title != "Dev A" {
		t.Fatalf("unexpected posting kept: %+v", kept[0])
	}
}

func TestFilterFeedCandidatesRegionMarkersWhenLocationUnknown(t *testing.T) {
	candidates := []feedCandidate{
		candidate("Dev A", "Acme", "Remote", ""),
		candidate("Dev B", "Beta", "LATAM", ""),
		candidate("Dev C", "Gamma", "Anywhere in the world", ""),
		candidate("Dev D", "Delta", "Berlin, Germany", ""),
	}

	kept := filterFeedCandidates("", "atlantis", 50, candidates)
	if len(kept) != 3 {
		t.Fatalf("expected 3 region-marker postings, got %d", len(kept))
	}
}

// The exclusion marker is a hardcoded carve-out: it drops postings even when
// every other filter matches. Literal rule, not geography.
func TestFilterFeedCandidatesExclusionMarkerAlwaysWins(t *testing.T) {
	candidates := []feedCandidate{
		candidate("Go Developer", "Acme", "Remote - India", "golang"),
		candidate("Go Developer", "Beta", "Remote", "golang"),
	}

	kept := filterFeedCandidates("go", "", 50, candidates)
	if len(kept) != 1 {
		t.Fatalf("expected exclusion marker to drop one posting, got %d kept", len(kept))
	}
	if kept[0].Company != "Beta" {
		t.Fatalf("wrong posting survived: %+v", kept[0])
	}
}

func TestFilterFeedCandidatesStopsAtCap(t *testing.T) {
	candidates := make([]feedCandidate, 0, 200)
	for i := 0; i < 200; i++ {
		candidates = append(candidates, candidate(fmt.Sprintf("Go Dev %d", i), "Acme", "Remote", "golang"))
	}

	kept := filterFeedCandidates("go", "", 50, candidates)
	if len(kept) != 50 {
		t.Fatalf("expected exactly 50 kept postings, got %d", len(kept))
	}
}
