package models

// AggregationResult is the deduplicated posting list plus the summed
// provider-reported total. Total can exceed len(Postings) because providers
// report pre-dedup counts; that discrepancy is deliberate.
type AggregationResult struct {
	Postings []JobPosting `json:"items"`
	Total    int          `json:"total"`
}
