package seen

import (
	"strings"

	"github.com/MrJJimenez/jobradar/internal/models"
)

const keySeparator = "::"

// DiffStats captures stats for A-B unseen filtering.
type DiffStats struct {
	TotalNew    int
	TotalSeen   int
	InvalidNew  int
	InvalidSeen int
	Unseen      int
}

// InvalidSkipped returns the total invalid records skipped during comparison.
func (s DiffStats) InvalidSkipped() int {
	return s.InvalidNew + s.InvalidSeen
}

// MergeStats captures stats for seen history updates.
type MergeStats struct {
	TotalSeen    int
	TotalInput   int
	InvalidSeen  int
	InvalidInput int
	Added        int
	TotalOut     int
}

// InvalidSkipped returns the total invalid records skipped during merge.
func (s MergeStats) InvalidSkipped() int {
	return s.InvalidSeen + s.InvalidInput
}

// Normalize applies the history key normalization.
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, " ")
}

// Key builds the normalized title+company+url key for a posting. History
// keys include the URL so the same role at the same company posted on two
// boards stays visible on both.
func Key(posting models.JobPosting) (string, bool) {
	title := Normalize(posting.Title)
	company := Normalize(posting.Company)
	if title == "" || company == "" {
		return "", false
	}
	return title + keySeparator + company + keySeparator + Normalize(posting.URL), true
}

// Diff returns unseen postings from newPostings using existing history keys.
func Diff(newPostings []models.JobPosting, seenPostings []models.JobPosting) ([]models.JobPosting, DiffStats) {
	stats := DiffStats{
		TotalNew:  len(newPostings),
		TotalSeen: len(seenPostings),
	}

	seenKeys := make(map[string]struct{}, len(seenPostings))
	for _, posting := range seenPostings {
		key, ok := Key(posting)
		if !ok {
			stats.InvalidSeen++
			continue
		}
		if _, exists := seenKeys[key]; exists {
			continue
		}
		seenKeys[key] = struct{}{}
	}

	newKeys := make(map[string]struct{}, len(newPostings))
	unseen := make([]models.JobPosting, 0, len(newPostings))
	for _, posting := range newPostings {
		key, ok := Key(posting)
		if !ok {
			stats.InvalidNew++
			continue
		}
		if _, exists := newKeys[key]; exists {
			continue
		}
		newKeys[key] = struct{}{}
		if _, exists := seenKeys[key]; exists {
			continue
		}
		unseen = append(unseen, posting)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends unseen input postings to the history, first occurrence wins.
func Merge(seenPostings []models.JobPosting, inputPostings []models.JobPosting) ([]models.JobPosting, MergeStats) {
	stats := MergeStats{
		TotalSeen:  len(seenPostings),
		TotalInput: len(inputPostings),
	}

	keys := make(map[string]struct{}, len(seenPostings)+len(inputPostings))
	out := make([]models.JobPosting, 0, len(seenPostings)+len(inputPostings))

	for _, posting := range seenPostings {
		key, ok := Key(posting)
		if !ok {
			stats.InvalidSeen++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, posting)
	}

	for _, posting := range inputPostings {
		key, ok := Key(posting)
		if !ok {
			stats.InvalidInput++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, posting)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}
