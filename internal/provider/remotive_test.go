package provider

import (
	"strings"
	"testing"
)

func TestParseRemotiveFeed(t *testing.T) {
	payload := `{
		"job-count": 2,
		"jobs": [
			{
				"title": "Senior Go Engineer",
				"company_name": "Acme",
				"candidate_required_location": "LATAM",
				"url": "https://remotive.com/jobs/1",
				"description": "<p>Build <b>APIs</b> in Go</p>",
				"job_type": "full_time"
			},
			{
				"title": "Data Analyst",
				"company_name": "Beta",
				"candidate_required_location": "Worldwide",
				"url": "https://remotive.com/jobs/2",
				"description": "SQL and dashboards"
			}
		]
	}`

	candidates, err := parseRemotiveFeed([]byte(payload))
	if err != nil {
		t.Fatalf("parseRemotiveFeed() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.posting.Source != SourceRemotive {
		t.Fatalf("source = %q, want %q", first.posting.Source, SourceRemotive)
	}
	if first.posting.ContractTime != "full_time" {
		t.Fatalf("contract_time = %q", first.posting.ContractTime)
	}
	if strings.Contains(first.text, "<p>") {
		t.Fatalf("description markup should be stripped from searchable text: %q", first.text)
	}
	if !strings.Contains(first.text, "Build APIs in Go") {
		t.Fatalf("searchable text missing description content: %q", first.text)
	}
}

func TestParseRemotiveFeedMalformed(t *testing.T) {
	if _, err := parseRemotiveFeed([]byte("not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
