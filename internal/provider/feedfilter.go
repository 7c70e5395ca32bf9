package provider

import (
	"strings"

	"github.com/MrJJimenez/jobradar/internal/models"
	"github.com/MrJJimenez/jobradar/internal/textnorm"
)

// feedCandidate pairs a canonical posting with the searchable text the feed
// exposes for it (title, company, location, description concatenated).
type feedCandidate struct {
	posting models.JobPosting
	text    string
}

// filterFeedCandidates applies the two-stage feed filter: free-text substring
// match against the normalized searchable text, then geographic inclusion.
// When the requested location maps to a known country marker only postings
// mentioning that country survive; otherwise postings must mention one of the
// broad region markers. The exclusion marker always drops a posting.
// Collection stops once limit postings are kept.
func filterFeedCandidates(query string, location string, limit int, candidates []feedCandidate) []models.JobPosting {
	queryNorm := textnorm.Normalize(query)
	countryMarker, countryKnown := feedCountryMarkers[textnorm.Normalize(location)]

	kept := make([]models.JobPosting, 0, len(candidates))
	for _, candidate := range candidates {
		if limit > 0 && len(kept) >= limit {
			break
		}

		locationNorm := textnorm.Normalize(candidate.posting.Location)
		if strings.Contains(locationNorm, feedExcludeMarker) {
			continue
		}

		if queryNorm != "" && !strings.Contains(textnorm.Normalize(candidate.text), queryNorm) {
			continue
		}

		if countryKnown {
			if !strings.Contains(locationNorm, countryMarker) {
				continue
			}
		} else if !containsAnyMarker(locationNorm, feedRegionMarkers) {
			continue
		}

		kept = append(kept, candidate.posting)
	}
	return kept
}

func containsAnyMarker(value string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}
